// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"sort"

	"github.com/danielhkuo/quickly-plan/cliparse"
	"github.com/danielhkuo/quickly-plan/locale"
	"github.com/danielhkuo/quickly-plan/middleware"
	"github.com/danielhkuo/quickly-plan/models"
)

type DashboardHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewDashboardHandler(db *sql.DB, cfg cliparse.Config) *DashboardHandler {
	return &DashboardHandler{db: db, cfg: cfg}
}

// GetMyPolls handles GET /me/polls
// Returns polls the X-User-ID user created or voted in, newest first. A poll
// the user both created and voted in is listed once, as creator.
//
// @Summary Polls the user created or voted in
// @Tags dashboard
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param Accept-Language header string false "Language for error messages (en, de)"
// @Success 200 {object} models.GetMyPollsResponse "OK"
// @Failure 401 {object} models.ErrorResponse "Missing user ID"
// @Router /me/polls [get]
func (h *DashboardHandler) GetMyPolls(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		middleware.ErrorMessage(w, r, http.StatusUnauthorized, locale.ErrUserIDRequired, nil)
		return
	}

	created, err := h.queryPolls(r.Context(), models.RoleCreator, `
		SELECT p.id, p.title, p.poll_type, p.status, p.share_slug, p.created_at,
			(SELECT COUNT(*) FROM vote v WHERE v.poll_id = p.id) AS vote_count
		FROM poll p
		WHERE p.creator_user_id = $1
	`, userID)
	if err != nil {
		slog.Error("failed to query created polls", "user_id", userID, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}

	voted, err := h.queryPolls(r.Context(), models.RoleVoter, `
		SELECT p.id, p.title, p.poll_type, p.status, p.share_slug, p.created_at,
			COUNT(v.id) AS vote_count
		FROM poll p
		JOIN vote v ON v.poll_id = p.id
		WHERE v.user_id = $1
		GROUP BY p.id, p.title, p.poll_type, p.status, p.share_slug, p.created_at
	`, userID)
	if err != nil {
		slog.Error("failed to query voted polls", "user_id", userID, "error", err)
		middleware.ErrorMessage(w, r, http.StatusInternalServerError, locale.ErrDatabase, nil)
		return
	}

	seen := make(map[string]bool, len(created))
	polls := make([]models.UserPollSummary, 0, len(created)+len(voted))
	for _, p := range created {
		seen[p.PollID] = true
		polls = append(polls, p)
	}
	for _, p := range voted {
		if !seen[p.PollID] {
			polls = append(polls, p)
		}
	}

	sort.SliceStable(polls, func(i, j int) bool {
		return polls[i].CreatedAt.After(polls[j].CreatedAt)
	})

	middleware.JSONResponse(w, http.StatusOK, models.GetMyPollsResponse{
		Polls: polls,
	})
}

// queryPolls scans poll summaries; the query must select id, title, type,
// status, share_slug, created_at and a vote count in that order.
func (h *DashboardHandler) queryPolls(ctx context.Context, role, query string, args ...any) ([]models.UserPollSummary, error) {
	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var polls []models.UserPollSummary
	for rows.Next() {
		summary := models.UserPollSummary{Role: role}
		if err := rows.Scan(
			&summary.PollID,
			&summary.Title,
			&summary.Type,
			&summary.Status,
			&summary.ShareSlug,
			&summary.CreatedAt,
			&summary.VoteCount,
		); err != nil {
			return nil, err
		}
		polls = append(polls, summary)
	}
	return polls, rows.Err()
}
