// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-plan/auth"
	"github.com/danielhkuo/quickly-plan/cliparse"
	"github.com/danielhkuo/quickly-plan/locale"
	"github.com/danielhkuo/quickly-plan/middleware"
	"github.com/danielhkuo/quickly-plan/models"
	"github.com/danielhkuo/quickly-plan/store"
	"github.com/danielhkuo/quickly-plan/tally"
)

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg}
}

// loadBySlug reads the poll named by {slug} with its options and votes
func (h *ResultsHandler) loadBySlug(w http.ResponseWriter, r *http.Request) (store.PollData, bool) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorMessage(w, r, http.StatusBadRequest, locale.ErrFieldRequired, map[string]any{"Field": "slug"})
		return store.PollData{}, false
	}

	poll, err := store.GetPollBySlug(r.Context(), h.db, shareSlug)
	if errors.Is(err, store.ErrPollNotFound) {
		middleware.ErrorMessage(w, r, http.StatusNotFound, locale.ErrPollNotFound, nil)
		return store.PollData{}, false
	}
	if err != nil {
		slog.Error("failed to query poll", "share_slug", shareSlug, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return store.PollData{}, false
	}

	data, err := store.LoadPollData(r.Context(), h.db, poll)
	if err != nil {
		slog.Error("failed to load poll data", "poll_id", poll.ID, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return store.PollData{}, false
	}

	return data, true
}

// GetPoll handles GET /polls/:slug
// Returns poll details and options; organization polls include live slot capacity
//
// @Summary Poll with options
// @Tags public
// @Produce json
// @Param slug path string true "Share slug"
// @Param Accept-Language header string false "Language for error messages (en, de)"
// @Success 200 {object} models.PollWithOptions "OK"
// @Failure 404 {object} models.ErrorResponse "Poll not found"
// @Router /polls/{slug} [get]
func (h *ResultsHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	data, ok := h.loadBySlug(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, pollWithOptions(data))
}

// GetResults handles GET /polls/:slug/results
// Results are computed from the current votes on every request. They are
// visible to everyone when the poll is public, otherwise only with X-Admin-Key.
// Voter emails are only included for the admin.
//
// @Summary Aggregated results
// @Description Computed from the current votes on every request. Voter emails are only included for the admin.
// @Tags public
// @Produce json
// @Param slug path string true "Share slug"
// @Param X-Admin-Key header string false "Admin key; required unless results are public"
// @Param Accept-Language header string false "Language for error messages (en, de)"
// @Success 200 {object} models.PollResultsResponse "OK"
// @Failure 401 {object} models.ErrorResponse "Invalid admin key"
// @Failure 403 {object} models.ErrorResponse "Results are not public"
// @Failure 404 {object} models.ErrorResponse "Poll not found"
// @Router /polls/{slug}/results [get]
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	data, ok := h.loadBySlug(w, r)
	if !ok {
		return
	}

	isAdmin := false
	if adminKey := r.Header.Get("X-Admin-Key"); adminKey != "" {
		if err := auth.ValidateAdminKey(data.Poll.ID, adminKey, h.cfg.AdminKeySalt); err != nil {
			middleware.ErrorMessage(w, r, http.StatusUnauthorized, locale.ErrInvalidAdminKey, nil)
			return
		}
		isAdmin = true
	}

	if !data.Poll.ResultsPublic && !isAdmin {
		middleware.ErrorMessage(w, r, http.StatusForbidden, locale.ErrResultsHidden, nil)
		return
	}

	results := tally.Summarize(data.Poll, data.Options, data.Votes)
	if !isAdmin {
		results = results.WithoutEmails()
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollResultsResponse{
		Poll:    data.Poll,
		Results: results,
	})
}

// GetPreview handles GET /polls/:slug/preview
// Returns compact poll data for link previews; counts only, so it is public
//
// @Summary Compact counts for link previews
// @Tags public
// @Produce json
// @Param slug path string true "Share slug"
// @Param Accept-Language header string false "Language for error messages (en, de)"
// @Success 200 {object} models.PollPreviewResponse "OK"
// @Failure 404 {object} models.ErrorResponse "Poll not found"
// @Router /polls/{slug}/preview [get]
func (h *ResultsHandler) GetPreview(w http.ResponseWriter, r *http.Request) {
	data, ok := h.loadBySlug(w, r)
	if !ok {
		return
	}

	results := tally.Summarize(data.Poll, data.Options, data.Votes)

	middleware.JSONResponse(w, http.StatusOK, models.PollPreviewResponse{
		Title:            data.Poll.Title,
		Type:             data.Poll.Type,
		Status:           data.Poll.Status,
		OptionCount:      len(data.Options),
		VoteCount:        results.TotalVotes,
		ParticipantCount: len(results.Participants),
	})
}
