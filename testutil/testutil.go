// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-plan/auth"
	"github.com/danielhkuo/quickly-plan/cliparse"
	"github.com/danielhkuo/quickly-plan/db"
	"github.com/danielhkuo/quickly-plan/models"
)

// SetupTestDB opens a private in-memory SQLite database with the full schema.
// Every call gets its own database, so tests can run in parallel.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := "file:" + auth.NewID() + "?mode=memory&cache=shared"
	conn, err := db.Open(db.TypeSQLite, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "file::memory:",
		DatabaseType: db.TypeSQLite,
		AdminKeySalt: "test-admin-salt",
		PollSlugSalt: "test-slug-salt",
		BaseURL:      "https://plan.example.com",
		LogFormat:    cliparse.LogFormatText,
	}
}

// PollOpts describes a poll inserted by CreateTestPollWith
type PollOpts struct {
	Type                models.PollType
	Status              string
	AllowVoteEdit       bool
	AllowVoteWithdrawal bool
	ResultsPublic       bool
	AllowMultipleSlots  bool
	ExpiresAt           *time.Time
	CreatorUserID       string
}

// CreateTestPoll creates a survey poll and returns its ID, admin key and share slug
// status should be "draft", "open", or "closed"
func CreateTestPoll(t *testing.T, db *sql.DB, cfg cliparse.Config, status string) (pollID, adminKey, shareSlug string) {
	t.Helper()
	return CreateTestPollWith(t, db, cfg, PollOpts{Type: models.TypeSurvey, Status: status})
}

// CreateTestPollWith creates a poll with the given settings. Open and closed
// polls get a share slug like a published poll would.
func CreateTestPollWith(t *testing.T, db *sql.DB, cfg cliparse.Config, opts PollOpts) (pollID, adminKey, shareSlug string) {
	t.Helper()

	if opts.Type == "" {
		opts.Type = models.TypeSurvey
	}
	if opts.Status == "" {
		opts.Status = models.StatusDraft
	}

	pollID = auth.NewID()
	adminKey = auth.GenerateAdminKey(pollID, cfg.AdminKeySalt)

	var slug *string
	if opts.Status == models.StatusOpen || opts.Status == models.StatusClosed {
		s := auth.GenerateShareSlug(pollID, cfg.PollSlugSalt)
		slug = &s
		shareSlug = s
	}

	now := time.Now().UTC()
	var closedAt *time.Time
	if opts.Status == models.StatusClosed {
		closedAt = &now
	}

	var creatorUserID *string
	if opts.CreatorUserID != "" {
		creatorUserID = &opts.CreatorUserID
	}

	var expiresAt *time.Time
	if opts.ExpiresAt != nil {
		e := opts.ExpiresAt.UTC()
		expiresAt = &e
	}

	_, err := db.Exec(`
		INSERT INTO poll (id, title, description, creator_name, creator_user_id, poll_type, status,
			allow_vote_edit, allow_vote_withdrawal, results_public, allow_multiple_slots,
			share_slug, expires_at, closed_at, created_at, updated_at)
		VALUES ($1, 'Test Poll', 'A test poll', 'TestUser', $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)
	`, pollID, creatorUserID, opts.Type, opts.Status,
		opts.AllowVoteEdit, opts.AllowVoteWithdrawal, opts.ResultsPublic, opts.AllowMultipleSlots,
		slug, expiresAt, closedAt, now)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return pollID, adminKey, shareSlug
}

// AddTestOption adds an option after the poll's existing ones and returns its ID
func AddTestOption(t *testing.T, db *sql.DB, pollID, text string) string {
	t.Helper()
	return AddTestSlot(t, db, pollID, text, nil)
}

// AddTestSlot adds an option with an optional signup capacity and returns its ID
func AddTestSlot(t *testing.T, db *sql.DB, pollID, text string, capacity *int) string {
	t.Helper()

	var order int
	if err := db.QueryRow(`SELECT COALESCE(MAX(sort_order), -1) + 1 FROM poll_option WHERE poll_id = $1`, pollID).Scan(&order); err != nil {
		t.Fatalf("Failed to read test option order: %v", err)
	}

	optionID := auth.NewID()
	_, err := db.Exec(`
		INSERT INTO poll_option (id, poll_id, text, max_capacity, sort_order)
		VALUES ($1, $2, $3, $4, $5)
	`, optionID, pollID, text, capacity, order)
	if err != nil {
		t.Fatalf("Failed to create test option: %v", err)
	}

	return optionID
}

// SubmitTestVotes stores one vote row per response for a new voter and
// returns the voter token
func SubmitTestVotes(t *testing.T, db *sql.DB, pollID, voterName string, responses map[string]models.VoteResponse) string {
	t.Helper()
	return SubmitTestVotesAs(t, db, pollID, voterName, "", responses)
}

// SubmitTestVotesAs is SubmitTestVotes for a voter with a user ID
func SubmitTestVotesAs(t *testing.T, db *sql.DB, pollID, voterName, userID string, responses map[string]models.VoteResponse) string {
	t.Helper()

	voterToken, err := auth.GenerateVoterToken()
	if err != nil {
		t.Fatalf("Failed to generate voter token: %v", err)
	}

	var uid *string
	if userID != "" {
		uid = &userID
	}

	now := time.Now().UTC()
	for optionID, response := range responses {
		_, err := db.Exec(`
			INSERT INTO vote (id, poll_id, option_id, voter_name, user_id, voter_token, response, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		`, auth.NewID(), pollID, optionID, voterName, uid, voterToken, response, now)
		if err != nil {
			t.Fatalf("Failed to create test vote: %v", err)
		}
	}

	return voterToken
}

// CountVotes returns the number of vote rows stored for a poll
func CountVotes(t *testing.T, db *sql.DB, pollID string) int {
	t.Helper()

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM vote WHERE poll_id = $1`, pollID).Scan(&n); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
