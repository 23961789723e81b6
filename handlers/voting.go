// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/danielhkuo/quickly-plan/auth"
	"github.com/danielhkuo/quickly-plan/cliparse"
	"github.com/danielhkuo/quickly-plan/db"
	"github.com/danielhkuo/quickly-plan/locale"
	"github.com/danielhkuo/quickly-plan/middleware"
	"github.com/danielhkuo/quickly-plan/models"
	"github.com/danielhkuo/quickly-plan/store"
	"github.com/danielhkuo/quickly-plan/tally"
)

// Voter name bounds, in characters
const (
	minVoterNameLen = 2
	maxVoterNameLen = 100
)

type VotingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg}
}

// SubmitVotes handles POST /polls/:slug/votes
// The first submission issues a voter token. Sending it back in X-Voter-Token,
// or voting again with the same X-User-ID, replaces the earlier responses when
// the poll allows editing.
//
// @Summary Submit or replace a response set
// @Tags voting
// @Accept json
// @Produce json
// @Param slug path string true "Share slug"
// @Param body body models.SubmitVotesRequest true "Request body"
// @Param X-Voter-Token header string false "Token of an earlier submission"
// @Param X-User-ID header string false "Voter's user ID"
// @Param Accept-Language header string false "Language for error messages (en, de)"
// @Success 200 {object} models.SubmitVotesResponse "OK"
// @Success 201 {object} models.SubmitVotesResponse "Created"
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 401 {object} models.ErrorResponse "Invalid voter token"
// @Failure 404 {object} models.ErrorResponse "Poll not found"
// @Failure 409 {object} models.ErrorResponse "Poll closed or expired, slot full, editing disabled or edited concurrently"
// @Router /polls/{slug}/votes [post]
func (h *VotingHandler) SubmitVotes(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorMessage(w, r, http.StatusBadRequest, locale.ErrFieldRequired, map[string]any{"Field": "slug"})
		return
	}

	// Parse request
	var req models.SubmitVotesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorMessage(w, r, http.StatusBadRequest, locale.ErrInvalidJSON, nil)
		return
	}

	voterName := strings.TrimSpace(req.VoterName)
	if n := utf8.RuneCountInString(voterName); n < minVoterNameLen || n > maxVoterNameLen {
		middleware.ErrorMessage(w, r, http.StatusBadRequest, locale.ErrVoterNameLength,
			map[string]any{"Min": minVoterNameLen, "Max": maxVoterNameLen})
		return
	}

	var voterEmail *string
	if email := strings.TrimSpace(req.VoterEmail); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			middleware.ErrorMessage(w, r, http.StatusBadRequest, locale.ErrInvalidEmail, nil)
			return
		}
		voterEmail = &email
	}

	var comment *string
	if c := strings.TrimSpace(req.Comment); c != "" {
		comment = &c
	}

	if len(req.Responses) == 0 {
		middleware.ErrorMessage(w, r, http.StatusBadRequest, locale.ErrNoResponses, nil)
		return
	}

	voterToken := r.Header.Get("X-Voter-Token")
	if voterToken != "" {
		if err := auth.ValidateVoterToken(voterToken); err != nil {
			middleware.ErrorMessage(w, r, http.StatusUnauthorized, locale.ErrInvalidVoterToken, nil)
			return
		}
	}

	var userID *string
	if uid := r.Header.Get("X-User-ID"); uid != "" {
		userID = &uid
	}

	ctx := r.Context()

	// Everything below runs on tx; the capacity check and the inserts are not
	// serialized against other voters, so a slot can be overfilled by a
	// concurrent signup.
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}
	defer tx.Rollback()

	// Find poll by share slug
	poll, err := store.GetPollBySlug(ctx, tx, shareSlug)
	if errors.Is(err, store.ErrPollNotFound) {
		middleware.ErrorMessage(w, r, http.StatusNotFound, locale.ErrPollNotFound, nil)
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "share_slug", shareSlug, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}

	now := time.Now().UTC()

	// Can only vote on open polls
	if poll.Status != models.StatusOpen {
		middleware.ErrorMessage(w, r, http.StatusConflict, locale.ErrPollNotOpen, nil)
		return
	}
	if poll.IsExpired(now) {
		middleware.ErrorMessage(w, r, http.StatusConflict, locale.ErrPollExpired, nil)
		return
	}

	options, err := store.ListOptions(ctx, tx, poll.ID)
	if err != nil {
		slog.Error("failed to query options", "poll_id", poll.ID, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}

	validOptions := make(map[string]bool, len(options))
	for _, opt := range options {
		validOptions[opt.ID] = true
	}

	// Verify all responses are for valid options
	signups := 0
	for optionID, response := range req.Responses {
		if !validOptions[optionID] {
			middleware.ErrorMessage(w, r, http.StatusBadRequest, locale.ErrUnknownOption, map[string]any{"OptionID": optionID})
			return
		}
		if !response.AllowedFor(poll.Type) {
			middleware.ErrorMessage(w, r, http.StatusBadRequest, locale.ErrInvalidResponse,
				map[string]any{"Response": response, "OptionID": optionID})
			return
		}
		if response == models.ResponseYes {
			signups++
		}
	}
	if poll.Type == models.TypeOrganization && !poll.AllowMultipleSlots && signups > 1 {
		middleware.ErrorMessage(w, r, http.StatusBadRequest, locale.ErrSingleSlotOnly, nil)
		return
	}

	existing, isUpdate, err := findVoter(ctx, tx, poll.ID, voterToken, userID)
	if err != nil {
		slog.Error("failed to look up voter", "poll_id", poll.ID, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}
	if voterToken != "" && !isUpdate {
		middleware.ErrorMessage(w, r, http.StatusUnauthorized, locale.ErrInvalidVoterToken, nil)
		return
	}

	votedAt := now
	if isUpdate {
		if !poll.AllowVoteEdit {
			middleware.ErrorMessage(w, r, http.StatusConflict, locale.ErrVoteEditDisabled, nil)
			return
		}

		voterToken = existing.token
		votedAt = existing.votedAt

		_, err = tx.ExecContext(ctx, `
			DELETE FROM vote WHERE poll_id = $1 AND voter_token = $2
		`, poll.ID, voterToken)
		if err != nil {
			slog.Error("failed to delete old votes", "poll_id", poll.ID, "error", err)
			middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
			return
		}
	} else {
		voterToken, err = auth.GenerateVoterToken()
		if err != nil {
			slog.Error("failed to generate voter token", "error", err)
			middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrInternal, nil)
			return
		}
	}

	// Capacity is checked against the signups stored right now
	if poll.Type == models.TypeOrganization {
		for _, opt := range options {
			if req.Responses[opt.ID] != models.ResponseYes {
				continue
			}

			var taken int
			err := tx.QueryRowContext(ctx, `
				SELECT COUNT(*) FROM vote WHERE option_id = $1 AND response = $2
			`, opt.ID, models.ResponseYes).Scan(&taken)
			if err != nil {
				slog.Error("failed to count signups", "option_id", opt.ID, "error", err)
				middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
				return
			}

			if !tally.HasRoom(opt, taken) {
				middleware.ErrorMessage(w, r, http.StatusConflict, locale.ErrSlotFull, map[string]any{"Option": opt.Text})
				return
			}
		}
	}

	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKeySalt)
	if !isUpdate {
		earlier, err := store.CountVotersFromIP(ctx, tx, poll.ID, ipHash)
		if err != nil {
			slog.Error("failed to count voters from address", "poll_id", poll.ID, "error", err)
			middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
			return
		}
		// Repeats are logged, not rejected
		if earlier > 0 {
			slog.Warn("new voter from a known address", "poll_id", poll.ID, "ip_hash", ipHash, "earlier_voters", earlier)
		}
	}

	// Insert in option order so rows of one submission are stored predictably
	count := 0
	for _, opt := range options {
		response, ok := req.Responses[opt.ID]
		if !ok {
			continue
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO vote (id, poll_id, option_id, voter_name, voter_email, user_id, voter_token,
				response, comment, ip_hash, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`, auth.NewID(), poll.ID, opt.ID, voterName, voterEmail, userID, voterToken,
			response, comment, ipHash, votedAt, now)
		if db.IsUniqueViolation(err) {
			// Another submission with this token stored the same option first
			slog.Warn("vote insert conflicted", "poll_id", poll.ID, "option_id", opt.ID)
			middleware.ErrorMessage(w, r, http.StatusConflict, locale.ErrVoteConflict, nil)
			return
		}
		if err != nil {
			slog.Error("failed to insert vote", "poll_id", poll.ID, "option_id", opt.ID, "error", err)
			middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
			return
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}

	slog.Info("votes submitted", "poll_id", poll.ID, "vote_count", count, "is_update", isUpdate)

	status, message := http.StatusCreated, locale.ResponseVoteCounted
	if isUpdate {
		status, message = http.StatusOK, locale.ResponseVoteUpdated
	}

	middleware.JSONResponse(w, status, models.SubmitVotesResponse{
		VoterToken: voterToken,
		VoteCount:  count,
		Message:    middleware.Localize(r, message, nil),
	})
}

type voterRef struct {
	token   string
	votedAt time.Time
}

// findVoter looks up an earlier submission by voter token, or by user ID
// when no token was sent.
func findVoter(ctx context.Context, tx *sql.Tx, pollID, voterToken string, userID *string) (voterRef, bool, error) {
	var column, value string
	switch {
	case voterToken != "":
		column, value = "voter_token", voterToken
	case userID != nil:
		column, value = "user_id", *userID
	default:
		return voterRef{}, false, nil
	}

	var ref voterRef
	err := tx.QueryRowContext(ctx, `
		SELECT voter_token, created_at FROM vote
		WHERE poll_id = $1 AND `+column+` = $2
		ORDER BY created_at
		LIMIT 1
	`, pollID, value).Scan(&ref.token, &ref.votedAt)
	if err == sql.ErrNoRows {
		return voterRef{}, false, nil
	}
	if err != nil {
		return voterRef{}, false, err
	}
	return ref, true, nil
}

// voterPoll validates X-Voter-Token and loads the poll named by {slug}
func (h *VotingHandler) voterPoll(w http.ResponseWriter, r *http.Request) (models.Poll, string, bool) {
	voterToken := r.Header.Get("X-Voter-Token")
	if err := auth.ValidateVoterToken(voterToken); err != nil {
		middleware.ErrorMessage(w, r, http.StatusUnauthorized, locale.ErrInvalidVoterToken, nil)
		return models.Poll{}, "", false
	}

	shareSlug := r.PathValue("slug")
	poll, err := store.GetPollBySlug(r.Context(), h.db, shareSlug)
	if errors.Is(err, store.ErrPollNotFound) {
		middleware.ErrorMessage(w, r, http.StatusNotFound, locale.ErrPollNotFound, nil)
		return models.Poll{}, "", false
	}
	if err != nil {
		slog.Error("failed to query poll", "share_slug", shareSlug, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return models.Poll{}, "", false
	}

	return poll, voterToken, true
}

// GetMyVotes handles GET /polls/:slug/my-votes
//
// @Summary Responses stored under a voter token
// @Tags voting
// @Produce json
// @Param slug path string true "Share slug"
// @Param X-Voter-Token header string true "Voter token returned by the first submission"
// @Param Accept-Language header string false "Language for error messages (en, de)"
// @Success 200 {object} models.MyVotesResponse "OK"
// @Failure 401 {object} models.ErrorResponse "Invalid voter token"
// @Failure 404 {object} models.ErrorResponse "No votes found"
// @Router /polls/{slug}/my-votes [get]
func (h *VotingHandler) GetMyVotes(w http.ResponseWriter, r *http.Request) {
	poll, voterToken, ok := h.voterPoll(w, r)
	if !ok {
		return
	}

	votes, err := store.ListVoterVotes(r.Context(), h.db, poll.ID, voterToken)
	if err != nil {
		slog.Error("failed to query votes", "poll_id", poll.ID, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}
	if len(votes) == 0 {
		middleware.ErrorMessage(w, r, http.StatusNotFound, locale.ErrNoVotes, nil)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MyVotesResponse{
		VoterName: votes[0].VoterName,
		Votes:     votes,
	})
}

// WithdrawVotes handles DELETE /polls/:slug/votes
//
// @Summary Withdraw all of a voter's responses
// @Tags voting
// @Produce json
// @Param slug path string true "Share slug"
// @Param X-Voter-Token header string true "Voter token returned by the first submission"
// @Param Accept-Language header string false "Language for error messages (en, de)"
// @Success 200 {object} models.WithdrawVotesResponse "OK"
// @Failure 401 {object} models.ErrorResponse "Invalid voter token"
// @Failure 403 {object} models.ErrorResponse "Withdrawal disabled"
// @Failure 404 {object} models.ErrorResponse "No votes found"
// @Failure 409 {object} models.ErrorResponse "Poll is not open"
// @Router /polls/{slug}/votes [delete]
func (h *VotingHandler) WithdrawVotes(w http.ResponseWriter, r *http.Request) {
	poll, voterToken, ok := h.voterPoll(w, r)
	if !ok {
		return
	}

	if !poll.AllowVoteWithdrawal {
		middleware.ErrorMessage(w, r, http.StatusForbidden, locale.ErrWithdrawalDisabled, nil)
		return
	}
	if poll.Status != models.StatusOpen {
		middleware.ErrorMessage(w, r, http.StatusConflict, locale.ErrPollNotOpen, nil)
		return
	}

	res, err := h.db.ExecContext(r.Context(), `
		DELETE FROM vote WHERE poll_id = $1 AND voter_token = $2
	`, poll.ID, voterToken)
	if err != nil {
		slog.Error("failed to delete votes", "poll_id", poll.ID, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}

	removed, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read deleted rows", "poll_id", poll.ID, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}
	if removed == 0 {
		middleware.ErrorMessage(w, r, http.StatusNotFound, locale.ErrNoVotes, nil)
		return
	}

	slog.Info("votes withdrawn", "poll_id", poll.ID, "removed", removed)

	middleware.JSONResponse(w, http.StatusOK, models.WithdrawVotesResponse{
		Removed: int(removed),
		Message: middleware.Localize(r, locale.ResponseVoteWithdrawn, nil),
	})
}
