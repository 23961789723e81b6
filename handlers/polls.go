// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/danielhkuo/quickly-plan/auth"
	"github.com/danielhkuo/quickly-plan/cliparse"
	"github.com/danielhkuo/quickly-plan/db"
	"github.com/danielhkuo/quickly-plan/export"
	"github.com/danielhkuo/quickly-plan/locale"
	"github.com/danielhkuo/quickly-plan/middleware"
	"github.com/danielhkuo/quickly-plan/models"
	"github.com/danielhkuo/quickly-plan/store"
	"github.com/danielhkuo/quickly-plan/tally"
)

type PollHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPollHandler(db *sql.DB, cfg cliparse.Config) *PollHandler {
	return &PollHandler{db: db, cfg: cfg}
}

// execer is satisfied by *sql.DB and *sql.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CreatePoll handles POST /polls
//
// @Summary Create a draft poll
// @Tags polls
// @Accept json
// @Produce json
// @Param body body models.CreatePollRequest true "Request body"
// @Param X-User-ID header string false "Creator's user ID"
// @Param Accept-Language header string false "Language for error messages (en, de)"
// @Success 201 {object} models.CreatePollResponse "Created"
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 500 {object} models.ErrorResponse "Database error"
// @Router /polls [post]
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorMessage(w, r, http.StatusBadRequest, locale.ErrInvalidJSON, nil)
		return
	}

	// Validate input
	if req.Title == "" {
		middleware.ErrorMessage(w, r, http.StatusBadRequest, locale.ErrFieldRequired, map[string]any{"Field": "title"})
		return
	}
	if req.CreatorName == "" {
		middleware.ErrorMessage(w, r, http.StatusBadRequest, locale.ErrFieldRequired, map[string]any{"Field": "creator_name"})
		return
	}
	if !req.Type.Valid() {
		middleware.ErrorMessage(w, r, http.StatusBadRequest, locale.ErrInvalidPollType, nil)
		return
	}

	now := time.Now().UTC()
	var expiresAt *time.Time
	if req.ExpiresAt != nil {
		if !req.ExpiresAt.After(now) {
			middleware.ErrorMessage(w, r, http.StatusBadRequest, locale.ErrExpiryInPast, nil)
			return
		}
		e := req.ExpiresAt.UTC()
		expiresAt = &e
	}

	for _, opt := range req.Options {
		if msg, data := validateOption(req.Type, opt); msg != nil {
			middleware.ErrorMessage(w, r, http.StatusBadRequest, msg, data)
			return
		}
	}

	var creatorUserID *string
	if userID := r.Header.Get("X-User-ID"); userID != "" {
		creatorUserID = &userID
	}

	pollID := auth.NewID()

	// Generate admin key
	adminKey := auth.GenerateAdminKey(pollID, h.cfg.AdminKeySalt)

	tx, err := h.db.BeginTx(r.Context(), nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(r.Context(), `
		INSERT INTO poll (id, title, description, creator_name, creator_user_id, poll_type, status,
			allow_vote_edit, allow_vote_withdrawal, results_public, allow_multiple_slots,
			expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
	`, pollID, req.Title, req.Description, req.CreatorName, creatorUserID, req.Type, models.StatusDraft,
		req.AllowVoteEdit, req.AllowVoteWithdrawal, req.ResultsPublic, req.AllowMultipleSlots,
		expiresAt, now)
	if err != nil {
		slog.Error("failed to insert poll", "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}

	optionIDs := make([]string, 0, len(req.Options))
	for i, opt := range req.Options {
		optionID, err := insertOption(r.Context(), tx, pollID, req.Type, opt, i)
		if err != nil {
			slog.Error("failed to insert option", "poll_id", pollID, "error", err)
			middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
			return
		}
		optionIDs = append(optionIDs, optionID)
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}

	slog.Info("poll created", "poll_id", pollID, "type", req.Type, "creator", req.CreatorName, "options", len(optionIDs))

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		PollID:    pollID,
		AdminKey:  adminKey,
		OptionIDs: optionIDs,
	})
}

// validateOption applies the per-type option rules. A nil message means the
// option is acceptable.
func validateOption(pollType models.PollType, req models.AddOptionRequest) (*i18n.Message, map[string]any) {
	if req.Text == "" {
		return locale.ErrFieldRequired, map[string]any{"Field": "text"}
	}

	switch pollType {
	case models.TypeSchedule:
		if req.StartTime == nil {
			return locale.ErrFieldRequired, map[string]any{"Field": "start_time"}
		}
		if req.EndTime != nil && !req.EndTime.After(*req.StartTime) {
			return locale.ErrInvalidTimeRange, nil
		}
	case models.TypeOrganization:
		if req.MaxCapacity != nil && *req.MaxCapacity < 0 {
			return locale.ErrInvalidCapacity, nil
		}
	}

	return nil, nil
}

// insertOption stores an already validated option. Fields that do not apply
// to the poll type are dropped.
func insertOption(ctx context.Context, ex execer, pollID string, pollType models.PollType, req models.AddOptionRequest, order int) (string, error) {
	var startTime, endTime *time.Time
	if pollType == models.TypeSchedule {
		s := req.StartTime.UTC()
		startTime = &s
		if req.EndTime != nil {
			e := req.EndTime.UTC()
			endTime = &e
		}
	}

	var capacity *int
	if pollType == models.TypeOrganization {
		capacity = req.MaxCapacity
	}

	optionID := auth.NewID()
	_, err := ex.ExecContext(ctx, `
		INSERT INTO poll_option (id, poll_id, text, start_time, end_time, max_capacity, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, optionID, pollID, req.Text, startTime, endTime, capacity, order)
	if err != nil {
		return "", err
	}
	return optionID, nil
}

// adminPoll validates the X-Admin-Key header and loads the poll named by the
// {id} path value. It writes the error response and returns false on failure.
func (h *PollHandler) adminPoll(w http.ResponseWriter, r *http.Request) (models.Poll, bool) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorMessage(w, r, http.StatusBadRequest, locale.ErrFieldRequired, map[string]any{"Field": "poll_id"})
		return models.Poll{}, false
	}

	// Validate admin key
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(pollID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorMessage(w, r, http.StatusUnauthorized, locale.ErrInvalidAdminKey, nil)
		return models.Poll{}, false
	}

	poll, err := store.GetPollByID(r.Context(), h.db, pollID)
	if errors.Is(err, store.ErrPollNotFound) {
		middleware.ErrorMessage(w, r, http.StatusNotFound, locale.ErrPollNotFound, nil)
		return models.Poll{}, false
	}
	if err != nil {
		slog.Error("failed to query poll", "poll_id", pollID, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return models.Poll{}, false
	}

	return poll, true
}

// GetPollAdmin handles GET /polls/:id/admin
// Returns poll details for admin access using poll ID and admin key
//
// @Summary Poll with options and live capacity
// @Tags polls
// @Produce json
// @Param id path string true "Poll ID"
// @Param X-Admin-Key header string true "Admin key returned when the poll was created"
// @Param Accept-Language header string false "Language for error messages (en, de)"
// @Success 200 {object} models.PollWithOptions "OK"
// @Failure 401 {object} models.ErrorResponse "Invalid admin key"
// @Failure 404 {object} models.ErrorResponse "Poll not found"
// @Router /polls/{id}/admin [get]
func (h *PollHandler) GetPollAdmin(w http.ResponseWriter, r *http.Request) {
	poll, ok := h.adminPoll(w, r)
	if !ok {
		return
	}

	data, err := store.LoadPollData(r.Context(), h.db, poll)
	if err != nil {
		slog.Error("failed to load poll data", "poll_id", poll.ID, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, pollWithOptions(data))
}

// pollWithOptions attaches live slot capacity to organization polls
func pollWithOptions(data store.PollData) models.PollWithOptions {
	resp := models.PollWithOptions{
		Poll:    data.Poll,
		Options: data.Options,
	}
	if data.Poll.Type == models.TypeOrganization {
		resp.Capacity = make([]models.CapacityStats, len(data.Options))
		for i, opt := range data.Options {
			resp.Capacity[i] = tally.Capacity(opt, data.Votes)
		}
	}
	return resp
}

// AddOption handles POST /polls/:id/options
//
// @Summary Add an option to a draft poll
// @Tags polls
// @Accept json
// @Produce json
// @Param id path string true "Poll ID"
// @Param X-Admin-Key header string true "Admin key returned when the poll was created"
// @Param body body models.AddOptionRequest true "Request body"
// @Param Accept-Language header string false "Language for error messages (en, de)"
// @Success 201 {object} models.AddOptionResponse "Created"
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 401 {object} models.ErrorResponse "Invalid admin key"
// @Failure 409 {object} models.ErrorResponse "Poll is not a draft"
// @Router /polls/{id}/options [post]
func (h *PollHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	poll, ok := h.adminPoll(w, r)
	if !ok {
		return
	}

	// Parse request
	var req models.AddOptionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorMessage(w, r, http.StatusBadRequest, locale.ErrInvalidJSON, nil)
		return
	}

	if poll.Status != models.StatusDraft {
		middleware.ErrorMessage(w, r, http.StatusConflict, locale.ErrPollNotDraft, nil)
		return
	}

	if msg, data := validateOption(poll.Type, req); msg != nil {
		middleware.ErrorMessage(w, r, http.StatusBadRequest, msg, data)
		return
	}

	optionID, err := h.appendOption(r.Context(), poll, req)
	if err != nil {
		slog.Error("failed to insert option", "poll_id", poll.ID, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}

	slog.Info("option added", "poll_id", poll.ID, "option_id", optionID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddOptionResponse{
		OptionID: optionID,
	})
}

// maxAppendAttempts bounds retries when a concurrent AddOption takes the
// same sort order
const maxAppendAttempts = 3

// appendOption inserts req after the poll's last option. The order is read
// and written in one transaction; a unique violation on (poll_id, sort_order)
// means another request won the slot, so it retries with a fresh order.
func (h *PollHandler) appendOption(ctx context.Context, poll models.Poll, req models.AddOptionRequest) (string, error) {
	for attempt := 1; ; attempt++ {
		optionID, err := h.appendOptionTx(ctx, poll, req)
		if err == nil || !db.IsUniqueViolation(err) || attempt == maxAppendAttempts {
			return optionID, err
		}
		slog.Warn("option order taken, retrying", "poll_id", poll.ID, "attempt", attempt)
	}
}

func (h *PollHandler) appendOptionTx(ctx context.Context, poll models.Poll, req models.AddOptionRequest) (string, error) {
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var order int
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(sort_order), -1) + 1 FROM poll_option WHERE poll_id = $1
	`, poll.ID).Scan(&order)
	if err != nil {
		return "", err
	}

	optionID, err := insertOption(ctx, tx, poll.ID, poll.Type, req, order)
	if err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return optionID, nil
}

// UpdateCapacity handles PUT /polls/:id/options/:optionId/capacity
// Capacity may change in any status. Signups above a lowered limit are kept
// and the slot simply reports full.
//
// @Summary Set or clear a slot's capacity
// @Tags polls
// @Accept json
// @Produce json
// @Param id path string true "Poll ID"
// @Param optionId path string true "Option ID"
// @Param X-Admin-Key header string true "Admin key returned when the poll was created"
// @Param body body models.UpdateCapacityRequest true "Request body"
// @Param Accept-Language header string false "Language for error messages (en, de)"
// @Success 200 {object} models.CapacityStats "OK"
// @Failure 400 {object} models.ErrorResponse "Negative capacity"
// @Failure 401 {object} models.ErrorResponse "Invalid admin key"
// @Failure 404 {object} models.ErrorResponse "Option not found"
// @Failure 409 {object} models.ErrorResponse "Not an organization poll"
// @Router /polls/{id}/options/{optionId}/capacity [put]
func (h *PollHandler) UpdateCapacity(w http.ResponseWriter, r *http.Request) {
	poll, ok := h.adminPoll(w, r)
	if !ok {
		return
	}

	var req models.UpdateCapacityRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorMessage(w, r, http.StatusBadRequest, locale.ErrInvalidJSON, nil)
		return
	}

	if poll.Type != models.TypeOrganization {
		middleware.ErrorMessage(w, r, http.StatusConflict, locale.ErrCapacityNotSupported, nil)
		return
	}
	if req.MaxCapacity != nil && *req.MaxCapacity < 0 {
		middleware.ErrorMessage(w, r, http.StatusBadRequest, locale.ErrInvalidCapacity, nil)
		return
	}

	optionID := r.PathValue("optionId")
	res, err := h.db.ExecContext(r.Context(), `
		UPDATE poll_option SET max_capacity = $1
		WHERE id = $2 AND poll_id = $3
	`, req.MaxCapacity, optionID, poll.ID)
	if err != nil {
		slog.Error("failed to update capacity", "poll_id", poll.ID, "option_id", optionID, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		middleware.ErrorMessage(w, r, http.StatusNotFound, locale.ErrOptionNotFound, nil)
		return
	}

	data, err := store.LoadPollData(r.Context(), h.db, poll)
	if err != nil {
		slog.Error("failed to load poll data", "poll_id", poll.ID, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}

	for _, opt := range data.Options {
		if opt.ID == optionID {
			stats := tally.Capacity(opt, data.Votes)
			slog.Info("capacity updated", "poll_id", poll.ID, "option_id", optionID,
				"max_capacity", opt.MaxCapacity, "signups", stats.SignupCount)
			middleware.JSONResponse(w, http.StatusOK, stats)
			return
		}
	}

	// Deleted between the update and the read
	middleware.ErrorMessage(w, r, http.StatusNotFound, locale.ErrOptionNotFound, nil)
}

// PublishPoll handles POST /polls/:id/publish
//
// @Summary Open a draft poll for voting
// @Tags polls
// @Produce json
// @Param id path string true "Poll ID"
// @Param X-Admin-Key header string true "Admin key returned when the poll was created"
// @Param Accept-Language header string false "Language for error messages (en, de)"
// @Success 200 {object} models.PublishPollResponse "OK"
// @Failure 400 {object} models.ErrorResponse "Too few options"
// @Failure 401 {object} models.ErrorResponse "Invalid admin key"
// @Failure 409 {object} models.ErrorResponse "Poll is not a draft or has expired"
// @Router /polls/{id}/publish [post]
func (h *PollHandler) PublishPoll(w http.ResponseWriter, r *http.Request) {
	poll, ok := h.adminPoll(w, r)
	if !ok {
		return
	}

	if poll.Status != models.StatusDraft {
		middleware.ErrorMessage(w, r, http.StatusConflict, locale.ErrPollNotDraft, nil)
		return
	}

	now := time.Now().UTC()
	if poll.IsExpired(now) {
		middleware.ErrorMessage(w, r, http.StatusConflict, locale.ErrPollExpired, nil)
		return
	}

	var optionCount int
	err := h.db.QueryRowContext(r.Context(), `
		SELECT COUNT(*) FROM poll_option WHERE poll_id = $1
	`, poll.ID).Scan(&optionCount)
	if err != nil {
		slog.Error("failed to count options", "poll_id", poll.ID, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}

	// Organization polls may have a single slot
	minOptions := 2
	if poll.Type == models.TypeOrganization {
		minOptions = 1
	}
	if optionCount < minOptions {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			locale.LocalizeCount(locale.FromContext(r.Context()), locale.ErrTooFewOptions, minOptions, map[string]any{"Min": minOptions}))
		return
	}

	// Generate share slug
	shareSlug := auth.GenerateShareSlug(poll.ID, h.cfg.PollSlugSalt)

	// Update poll to open status
	_, err = h.db.ExecContext(r.Context(), `
		UPDATE poll
		SET status = $1, share_slug = $2, updated_at = $3
		WHERE id = $4 AND status = $5
	`, models.StatusOpen, shareSlug, now, poll.ID, models.StatusDraft)
	if err != nil {
		slog.Error("failed to publish poll", "poll_id", poll.ID, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}

	slog.Info("poll published", "poll_id", poll.ID, "share_slug", shareSlug)

	middleware.JSONResponse(w, http.StatusOK, models.PublishPollResponse{
		ShareSlug: shareSlug,
		ShareURL:  h.cfg.BaseURL + "/polls/" + shareSlug,
	})
}

// ClosePoll handles POST /polls/:id/close
//
// @Summary Close an open poll
// @Tags polls
// @Produce json
// @Param id path string true "Poll ID"
// @Param X-Admin-Key header string true "Admin key returned when the poll was created"
// @Param Accept-Language header string false "Language for error messages (en, de)"
// @Success 200 {object} models.ClosePollResponse "OK"
// @Failure 401 {object} models.ErrorResponse "Invalid admin key"
// @Failure 409 {object} models.ErrorResponse "Poll is not open"
// @Router /polls/{id}/close [post]
func (h *PollHandler) ClosePoll(w http.ResponseWriter, r *http.Request) {
	poll, ok := h.adminPoll(w, r)
	if !ok {
		return
	}

	closedAt := time.Now().UTC()
	closed, err := store.ClosePoll(r.Context(), h.db, poll.ID, closedAt)
	if err != nil {
		slog.Error("failed to close poll", "poll_id", poll.ID, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}
	if !closed {
		middleware.ErrorMessage(w, r, http.StatusConflict, locale.ErrPollNotOpen, nil)
		return
	}

	slog.Info("poll closed", "poll_id", poll.ID)

	middleware.JSONResponse(w, http.StatusOK, models.ClosePollResponse{
		ClosedAt: closedAt,
	})
}

// DeletePoll handles DELETE /polls/:id
// Options and votes go with it through ON DELETE CASCADE.
//
// @Summary Delete a poll with its options and votes
// @Tags polls
// @Produce json
// @Param id path string true "Poll ID"
// @Param X-Admin-Key header string true "Admin key returned when the poll was created"
// @Param Accept-Language header string false "Language for error messages (en, de)"
// @Success 204 "No Content"
// @Failure 401 {object} models.ErrorResponse "Invalid admin key"
// @Failure 404 {object} models.ErrorResponse "Poll not found"
// @Router /polls/{id} [delete]
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	poll, ok := h.adminPoll(w, r)
	if !ok {
		return
	}

	if _, err := h.db.ExecContext(r.Context(), `DELETE FROM poll WHERE id = $1`, poll.ID); err != nil {
		slog.Error("failed to delete poll", "poll_id", poll.ID, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}

	slog.Info("poll deleted", "poll_id", poll.ID)

	w.WriteHeader(http.StatusNoContent)
}

// ExportResults handles GET /polls/:id/export?format=csv|text
//
// @Summary Export results as CSV or text
// @Tags polls
// @Produce text/csv,plain
// @Param id path string true "Poll ID"
// @Param X-Admin-Key header string true "Admin key returned when the poll was created"
// @Param format query string false "Export format" Enums(csv, text)
// @Param Accept-Language header string false "Language for error messages (en, de)"
// @Success 200 "Export file"
// @Failure 400 {object} models.ErrorResponse "Unknown format"
// @Failure 401 {object} models.ErrorResponse "Invalid admin key"
// @Router /polls/{id}/export [get]
func (h *PollHandler) ExportResults(w http.ResponseWriter, r *http.Request) {
	poll, ok := h.adminPoll(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = export.FormatCSV
	}
	if format != export.FormatCSV && format != export.FormatText {
		middleware.ErrorMessage(w, r, http.StatusBadRequest, locale.ErrInvalidExportFormat, nil)
		return
	}

	data, err := store.LoadPollData(r.Context(), h.db, poll)
	if err != nil {
		slog.Error("failed to load poll data", "poll_id", poll.ID, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}

	results := tally.Summarize(data.Poll, data.Options, data.Votes)

	if format == export.FormatText {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		err = export.WriteText(w, poll, results, time.Now())
	} else {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(poll)+`"`)
		err = export.WriteCSV(w, results)
	}
	if err != nil {
		// Headers are already written
		slog.Error("failed to write export", "poll_id", poll.ID, "format", format, "error", err)
		return
	}

	slog.Info("results exported", "poll_id", poll.ID, "format", format)
}
