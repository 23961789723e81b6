// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-plan/auth"
	"github.com/danielhkuo/quickly-plan/models"
	"github.com/danielhkuo/quickly-plan/testutil"
)

func intPtr(n int) *int { return &n }

func timePtr(t time.Time) *time.Time { return &t }

// errorMessage decodes an error response and returns its message
func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	return resp.Message
}

func TestCreatePoll(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(db, cfg)

	start := time.Date(2030, 5, 4, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		requestBody    interface{}
		headers        map[string]string
		expectedStatus int
		expectedError  string
		checkResponse  func(t *testing.T, resp *models.CreatePollResponse)
	}{
		{
			name: "valid survey",
			requestBody: models.CreatePollRequest{
				Title:       "Team lunch",
				Description: "Where should we go?",
				CreatorName: "Alice",
				Type:        models.TypeSurvey,
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.CreatePollResponse) {
				if resp.PollID == "" {
					t.Error("Expected non-empty poll_id")
				}

				// Verify admin key is valid
				expectedKey := auth.GenerateAdminKey(resp.PollID, cfg.AdminKeySalt)
				if resp.AdminKey != expectedKey {
					t.Error("Admin key does not match expected value")
				}

				var status, pollType string
				err := db.QueryRow("SELECT status, poll_type FROM poll WHERE id = $1", resp.PollID).Scan(&status, &pollType)
				if err != nil {
					t.Fatalf("Failed to query poll: %v", err)
				}
				if status != models.StatusDraft {
					t.Errorf("Expected status 'draft', got '%s'", status)
				}
				if pollType != string(models.TypeSurvey) {
					t.Errorf("Expected type 'survey', got '%s'", pollType)
				}
			},
		},
		{
			name: "schedule with inline options",
			requestBody: models.CreatePollRequest{
				Title:       "Planning meeting",
				CreatorName: "Alice",
				Type:        models.TypeSchedule,
				Options: []models.AddOptionRequest{
					{Text: "Saturday evening", StartTime: timePtr(start), EndTime: timePtr(start.Add(2 * time.Hour))},
					{Text: "Sunday morning", StartTime: timePtr(start.Add(15 * time.Hour))},
				},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.CreatePollResponse) {
				if len(resp.OptionIDs) != 2 {
					t.Fatalf("Expected 2 option IDs, got %d", len(resp.OptionIDs))
				}

				var text string
				var order int
				var startTime time.Time
				err := db.QueryRow("SELECT text, sort_order, start_time FROM poll_option WHERE id = $1", resp.OptionIDs[1]).
					Scan(&text, &order, &startTime)
				if err != nil {
					t.Fatalf("Failed to query option: %v", err)
				}
				if text != "Sunday morning" || order != 1 {
					t.Errorf("Expected 'Sunday morning' at order 1, got '%s' at %d", text, order)
				}
				if !startTime.Equal(start.Add(15 * time.Hour)) {
					t.Errorf("Expected start time %v, got %v", start.Add(15*time.Hour), startTime)
				}
			},
		},
		{
			name: "creator user id from header",
			requestBody: models.CreatePollRequest{
				Title:       "Bake sale",
				CreatorName: "Alice",
				Type:        models.TypeOrganization,
			},
			headers:        map[string]string{"X-User-ID": "user-alice"},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.CreatePollResponse) {
				var creator *string
				if err := db.QueryRow("SELECT creator_user_id FROM poll WHERE id = $1", resp.PollID).Scan(&creator); err != nil {
					t.Fatalf("Failed to query poll: %v", err)
				}
				if creator == nil || *creator != "user-alice" {
					t.Errorf("Expected creator_user_id 'user-alice', got %v", creator)
				}
			},
		},
		{
			name: "missing title",
			requestBody: models.CreatePollRequest{
				CreatorName: "Alice",
				Type:        models.TypeSurvey,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "title is required",
		},
		{
			name: "missing creator name",
			requestBody: models.CreatePollRequest{
				Title: "Test Poll",
				Type:  models.TypeSurvey,
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "creator_name is required",
		},
		{
			name: "invalid type",
			requestBody: models.CreatePollRequest{
				Title:       "Test Poll",
				CreatorName: "Alice",
				Type:        "ranked",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "type must be one of schedule, survey or organization",
		},
		{
			name: "expiry in the past",
			requestBody: models.CreatePollRequest{
				Title:       "Test Poll",
				CreatorName: "Alice",
				Type:        models.TypeSurvey,
				ExpiresAt:   timePtr(time.Now().Add(-time.Hour)),
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "expires_at must be in the future",
		},
		{
			name: "schedule option without start time",
			requestBody: models.CreatePollRequest{
				Title:       "Test Poll",
				CreatorName: "Alice",
				Type:        models.TypeSchedule,
				Options:     []models.AddOptionRequest{{Text: "Someday"}},
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "start_time is required",
		},
		{
			name: "schedule option ending before it starts",
			requestBody: models.CreatePollRequest{
				Title:       "Test Poll",
				CreatorName: "Alice",
				Type:        models.TypeSchedule,
				Options: []models.AddOptionRequest{
					{Text: "Backwards", StartTime: timePtr(start), EndTime: timePtr(start.Add(-time.Hour))},
				},
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "end_time must be after start_time",
		},
		{
			name: "negative slot capacity",
			requestBody: models.CreatePollRequest{
				Title:       "Test Poll",
				CreatorName: "Alice",
				Type:        models.TypeOrganization,
				Options:     []models.AddOptionRequest{{Text: "Setup", MaxCapacity: intPtr(-1)}},
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "max_capacity must not be negative",
		},
		{
			name:           "invalid JSON",
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body []byte
			var err error

			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatalf("Failed to marshal request body: %v", err)
				}
			}

			req := httptest.NewRequest("POST", "/polls", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()

			handler.CreatePoll(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("Expected status %d, got %d. Body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedError != "" {
				if msg := errorMessage(t, w); msg != tt.expectedError {
					t.Errorf("Expected error %q, got %q", tt.expectedError, msg)
				}
			}

			if tt.expectedStatus == http.StatusCreated && tt.checkResponse != nil {
				var resp models.CreatePollResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestCreatePollDropsFieldsForOtherTypes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewPollHandler(db, testutil.GetTestConfig())

	start := time.Now().Add(24 * time.Hour)
	req := testutil.MakeRequest("POST", "/polls", models.CreatePollRequest{
		Title:       "Pizza toppings",
		CreatorName: "Alice",
		Type:        models.TypeSurvey,
		Options: []models.AddOptionRequest{
			{Text: "Mushrooms", StartTime: &start, MaxCapacity: intPtr(3)},
		},
	}, nil)
	w := httptest.NewRecorder()

	handler.CreatePoll(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreatePollResponse
	testutil.AssertJSON(t, w, &resp)

	var startTime *time.Time
	var capacity *int
	err := db.QueryRow("SELECT start_time, max_capacity FROM poll_option WHERE id = $1", resp.OptionIDs[0]).Scan(&startTime, &capacity)
	if err != nil {
		t.Fatalf("Failed to query option: %v", err)
	}
	if startTime != nil {
		t.Errorf("Expected survey option without start_time, got %v", *startTime)
	}
	if capacity != nil {
		t.Errorf("Expected survey option without capacity, got %d", *capacity)
	}
}

func TestAddOption(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(db, cfg)

	pollID, adminKey, _ := testutil.CreateTestPoll(t, db, cfg, models.StatusDraft)
	testutil.AddTestOption(t, db, pollID, "Existing")

	otherID := auth.NewID()

	tests := []struct {
		name           string
		pollID         string
		adminKey       string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name:           "valid option",
			pollID:         pollID,
			adminKey:       adminKey,
			requestBody:    models.AddOptionRequest{Text: "Tacos"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing text",
			pollID:         pollID,
			adminKey:       adminKey,
			requestBody:    models.AddOptionRequest{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid admin key",
			pollID:         pollID,
			adminKey:       "invalid-key",
			requestBody:    models.AddOptionRequest{Text: "Tacos"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing admin key",
			pollID:         pollID,
			requestBody:    models.AddOptionRequest{Text: "Tacos"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown poll",
			pollID:         otherID,
			adminKey:       auth.GenerateAdminKey(otherID, cfg.AdminKeySalt),
			requestBody:    models.AddOptionRequest{Text: "Tacos"},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/polls/"+tt.pollID+"/options", tt.requestBody,
				map[string]string{"X-Admin-Key": tt.adminKey})
			req.SetPathValue("id", tt.pollID)
			w := httptest.NewRecorder()

			handler.AddOption(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.AddOptionResponse
				testutil.AssertJSON(t, w, &resp)

				var order int
				if err := db.QueryRow("SELECT sort_order FROM poll_option WHERE id = $1", resp.OptionID).Scan(&order); err != nil {
					t.Fatalf("Failed to query option: %v", err)
				}
				if order != 1 {
					t.Errorf("Expected new option after the existing one (order 1), got %d", order)
				}
			}
		})
	}
}

func TestAddOptionAfterOrderGap(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(db, cfg)

	pollID, adminKey, _ := testutil.CreateTestPoll(t, db, cfg, models.StatusDraft)
	testutil.AddTestOption(t, db, pollID, "First")

	// Orders 0 and 2: a row count would hand out 2 again
	_, err := db.Exec(`
		INSERT INTO poll_option (id, poll_id, text, sort_order)
		VALUES ($1, $2, 'Second', 2)
	`, auth.NewID(), pollID)
	if err != nil {
		t.Fatalf("Failed to insert option: %v", err)
	}

	req := testutil.MakeRequest("POST", "/polls/"+pollID+"/options", models.AddOptionRequest{Text: "Third"},
		map[string]string{"X-Admin-Key": adminKey})
	req.SetPathValue("id", pollID)
	w := httptest.NewRecorder()

	handler.AddOption(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.AddOptionResponse
	testutil.AssertJSON(t, w, &resp)

	var order int
	if err := db.QueryRow("SELECT sort_order FROM poll_option WHERE id = $1", resp.OptionID).Scan(&order); err != nil {
		t.Fatalf("Failed to query option: %v", err)
	}
	if order != 3 {
		t.Errorf("Expected order 3 after the last option, got %d", order)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM poll_option WHERE poll_id = $1", pollID).Scan(&count); err != nil {
		t.Fatalf("Failed to count options: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 options, got %d", count)
	}
}

func TestAddOptionToNonDraftPoll(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(db, cfg)

	for _, status := range []string{models.StatusOpen, models.StatusClosed} {
		t.Run(status, func(t *testing.T) {
			pollID, adminKey, _ := testutil.CreateTestPoll(t, db, cfg, status)

			req := testutil.MakeRequest("POST", "/polls/"+pollID+"/options", models.AddOptionRequest{Text: "Late"},
				map[string]string{"X-Admin-Key": adminKey})
			req.SetPathValue("id", pollID)
			w := httptest.NewRecorder()

			handler.AddOption(w, req)

			testutil.AssertStatus(t, w, http.StatusConflict)
		})
	}
}

func TestUpdateCapacity(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(db, cfg)

	pollID, adminKey, _ := testutil.CreateTestPollWith(t, db, cfg, testutil.PollOpts{
		Type:   models.TypeOrganization,
		Status: models.StatusOpen,
	})
	slot := testutil.AddTestSlot(t, db, pollID, "Setup crew", intPtr(5))
	testutil.SubmitTestVotes(t, db, pollID, "Alice", map[string]models.VoteResponse{slot: models.ResponseYes})
	testutil.SubmitTestVotes(t, db, pollID, "Bob", map[string]models.VoteResponse{slot: models.ResponseYes})

	surveyID, surveyKey, _ := testutil.CreateTestPoll(t, db, cfg, models.StatusDraft)
	surveyOpt := testutil.AddTestOption(t, db, surveyID, "Choice")

	update := func(pollID, optionID, adminKey string, capacity *int) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("PUT", "/polls/"+pollID+"/options/"+optionID+"/capacity",
			models.UpdateCapacityRequest{MaxCapacity: capacity}, map[string]string{"X-Admin-Key": adminKey})
		req.SetPathValue("id", pollID)
		req.SetPathValue("optionId", optionID)
		w := httptest.NewRecorder()
		handler.UpdateCapacity(w, req)
		return w
	}

	t.Run("raise capacity", func(t *testing.T) {
		w := update(pollID, slot, adminKey, intPtr(10))
		testutil.AssertStatus(t, w, http.StatusOK)

		var stats models.CapacityStats
		testutil.AssertJSON(t, w, &stats)
		if stats.Capacity == nil || *stats.Capacity != 10 {
			t.Errorf("Expected capacity 10, got %v", stats.Capacity)
		}
		if stats.SignupCount != 2 {
			t.Errorf("Expected 2 signups, got %d", stats.SignupCount)
		}
		if stats.FillPercent != 20 {
			t.Errorf("Expected 20%% fill, got %v", stats.FillPercent)
		}
	})

	t.Run("lower below signups keeps them", func(t *testing.T) {
		w := update(pollID, slot, adminKey, intPtr(1))
		testutil.AssertStatus(t, w, http.StatusOK)

		var stats models.CapacityStats
		testutil.AssertJSON(t, w, &stats)
		if !stats.IsFull {
			t.Error("Expected slot to report full")
		}
		if stats.SignupCount != 2 {
			t.Errorf("Expected existing signups to be kept, got %d", stats.SignupCount)
		}
		if stats.FillPercent != 100 {
			t.Errorf("Expected fill capped at 100%%, got %v", stats.FillPercent)
		}
	})

	t.Run("clear capacity", func(t *testing.T) {
		w := update(pollID, slot, adminKey, nil)
		testutil.AssertStatus(t, w, http.StatusOK)

		var stats models.CapacityStats
		testutil.AssertJSON(t, w, &stats)
		if stats.Capacity != nil {
			t.Errorf("Expected unlimited capacity, got %d", *stats.Capacity)
		}
		if stats.IsFull {
			t.Error("Unlimited slot should never be full")
		}
	})

	t.Run("negative capacity", func(t *testing.T) {
		w := update(pollID, slot, adminKey, intPtr(-2))
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("unknown option", func(t *testing.T) {
		w := update(pollID, "no-such-option", adminKey, intPtr(3))
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("option of another poll", func(t *testing.T) {
		w := update(pollID, surveyOpt, adminKey, intPtr(3))
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("survey poll", func(t *testing.T) {
		w := update(surveyID, surveyOpt, surveyKey, intPtr(3))
		testutil.AssertStatus(t, w, http.StatusConflict)
	})

	t.Run("invalid admin key", func(t *testing.T) {
		w := update(pollID, slot, "wrong", intPtr(3))
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})
}

func TestPublishPoll(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(db, cfg)

	publish := func(pollID, adminKey string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("POST", "/polls/"+pollID+"/publish", nil, map[string]string{"X-Admin-Key": adminKey})
		req.SetPathValue("id", pollID)
		w := httptest.NewRecorder()
		handler.PublishPoll(w, req)
		return w
	}

	t.Run("survey with two options", func(t *testing.T) {
		pollID, adminKey, _ := testutil.CreateTestPoll(t, db, cfg, models.StatusDraft)
		testutil.AddTestOption(t, db, pollID, "A")
		testutil.AddTestOption(t, db, pollID, "B")

		w := publish(pollID, adminKey)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.PublishPollResponse
		testutil.AssertJSON(t, w, &resp)

		expectedSlug := auth.GenerateShareSlug(pollID, cfg.PollSlugSalt)
		if resp.ShareSlug != expectedSlug {
			t.Errorf("Expected slug %s, got %s", expectedSlug, resp.ShareSlug)
		}
		if resp.ShareURL != "https://plan.example.com/polls/"+expectedSlug {
			t.Errorf("Unexpected share URL %s", resp.ShareURL)
		}

		var status string
		if err := db.QueryRow("SELECT status FROM poll WHERE id = $1", pollID).Scan(&status); err != nil {
			t.Fatalf("Failed to query poll: %v", err)
		}
		if status != models.StatusOpen {
			t.Errorf("Expected status 'open', got '%s'", status)
		}

		// Publishing twice is a conflict
		w = publish(pollID, adminKey)
		testutil.AssertStatus(t, w, http.StatusConflict)
	})

	t.Run("survey with one option", func(t *testing.T) {
		pollID, adminKey, _ := testutil.CreateTestPoll(t, db, cfg, models.StatusDraft)
		testutil.AddTestOption(t, db, pollID, "Only")

		w := publish(pollID, adminKey)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
		if msg := errorMessage(t, w); msg != "Poll must have at least 2 options" {
			t.Errorf("Unexpected error %q", msg)
		}
	})

	t.Run("organization with one slot", func(t *testing.T) {
		pollID, adminKey, _ := testutil.CreateTestPollWith(t, db, cfg, testutil.PollOpts{Type: models.TypeOrganization})
		testutil.AddTestSlot(t, db, pollID, "Cleanup", intPtr(4))

		w := publish(pollID, adminKey)
		testutil.AssertStatus(t, w, http.StatusOK)
	})

	t.Run("organization without slots", func(t *testing.T) {
		pollID, adminKey, _ := testutil.CreateTestPollWith(t, db, cfg, testutil.PollOpts{Type: models.TypeOrganization})

		w := publish(pollID, adminKey)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
		if msg := errorMessage(t, w); msg != "Poll must have at least 1 option" {
			t.Errorf("Unexpected error %q", msg)
		}
	})

	t.Run("expired draft", func(t *testing.T) {
		pollID, adminKey, _ := testutil.CreateTestPollWith(t, db, cfg, testutil.PollOpts{
			ExpiresAt: timePtr(time.Now().Add(-time.Minute)),
		})
		testutil.AddTestOption(t, db, pollID, "A")
		testutil.AddTestOption(t, db, pollID, "B")

		w := publish(pollID, adminKey)
		testutil.AssertStatus(t, w, http.StatusConflict)
	})
}

func TestClosePoll(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(db, cfg)

	tests := []struct {
		status         string
		expectedStatus int
	}{
		{models.StatusOpen, http.StatusOK},
		{models.StatusDraft, http.StatusConflict},
		{models.StatusClosed, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			pollID, adminKey, _ := testutil.CreateTestPoll(t, db, cfg, tt.status)

			req := testutil.MakeRequest("POST", "/polls/"+pollID+"/close", nil, map[string]string{"X-Admin-Key": adminKey})
			req.SetPathValue("id", pollID)
			w := httptest.NewRecorder()

			handler.ClosePoll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.ClosePollResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.ClosedAt.IsZero() {
				t.Error("Expected closed_at to be set")
			}

			var status string
			var closedAt *time.Time
			if err := db.QueryRow("SELECT status, closed_at FROM poll WHERE id = $1", pollID).Scan(&status, &closedAt); err != nil {
				t.Fatalf("Failed to query poll: %v", err)
			}
			if status != models.StatusClosed || closedAt == nil {
				t.Errorf("Expected closed poll with closed_at, got %s / %v", status, closedAt)
			}
		})
	}
}

func TestDeletePoll(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(db, cfg)

	pollID, adminKey, _ := testutil.CreateTestPoll(t, db, cfg, models.StatusOpen)
	opt := testutil.AddTestOption(t, db, pollID, "A")
	testutil.SubmitTestVotes(t, db, pollID, "Alice", map[string]models.VoteResponse{opt: models.ResponseYes})

	t.Run("invalid admin key", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/polls/"+pollID, nil, map[string]string{"X-Admin-Key": "nope"})
		req.SetPathValue("id", pollID)
		w := httptest.NewRecorder()

		handler.DeletePoll(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("deletes votes and options", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/polls/"+pollID, nil, map[string]string{"X-Admin-Key": adminKey})
		req.SetPathValue("id", pollID)
		w := httptest.NewRecorder()

		handler.DeletePoll(w, req)

		testutil.AssertStatus(t, w, http.StatusNoContent)
		if n := testutil.CountVotes(t, db, pollID); n != 0 {
			t.Errorf("Expected votes to be deleted, %d left", n)
		}
		var options int
		if err := db.QueryRow("SELECT COUNT(*) FROM poll_option WHERE poll_id = $1", pollID).Scan(&options); err != nil {
			t.Fatalf("Failed to count options: %v", err)
		}
		if options != 0 {
			t.Errorf("Expected options to be deleted, %d left", options)
		}
	})

	t.Run("already deleted", func(t *testing.T) {
		req := testutil.MakeRequest("DELETE", "/polls/"+pollID, nil, map[string]string{"X-Admin-Key": adminKey})
		req.SetPathValue("id", pollID)
		w := httptest.NewRecorder()

		handler.DeletePoll(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestGetPollAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(db, cfg)

	get := func(pollID, adminKey string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("GET", "/polls/"+pollID+"/admin", nil, map[string]string{"X-Admin-Key": adminKey})
		req.SetPathValue("id", pollID)
		w := httptest.NewRecorder()
		handler.GetPollAdmin(w, req)
		return w
	}

	t.Run("organization includes capacity", func(t *testing.T) {
		pollID, adminKey, _ := testutil.CreateTestPollWith(t, db, cfg, testutil.PollOpts{
			Type:   models.TypeOrganization,
			Status: models.StatusOpen,
		})
		slot := testutil.AddTestSlot(t, db, pollID, "Drinks", intPtr(2))
		testutil.SubmitTestVotes(t, db, pollID, "Alice", map[string]models.VoteResponse{slot: models.ResponseYes})

		w := get(pollID, adminKey)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.PollWithOptions
		testutil.AssertJSON(t, w, &resp)
		if resp.Poll.ID != pollID {
			t.Errorf("Expected poll %s, got %s", pollID, resp.Poll.ID)
		}
		if len(resp.Capacity) != 1 {
			t.Fatalf("Expected capacity for 1 slot, got %d", len(resp.Capacity))
		}
		if resp.Capacity[0].SignupCount != 1 || resp.Capacity[0].FillPercent != 50 {
			t.Errorf("Expected 1 signup at 50%%, got %+v", resp.Capacity[0])
		}
	})

	t.Run("survey has no capacity", func(t *testing.T) {
		pollID, adminKey, _ := testutil.CreateTestPoll(t, db, cfg, models.StatusDraft)
		testutil.AddTestOption(t, db, pollID, "A")

		w := get(pollID, adminKey)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.PollWithOptions
		testutil.AssertJSON(t, w, &resp)
		if len(resp.Options) != 1 {
			t.Errorf("Expected 1 option, got %d", len(resp.Options))
		}
		if resp.Capacity != nil {
			t.Errorf("Expected no capacity for survey, got %v", resp.Capacity)
		}
	})

	t.Run("key for another poll", func(t *testing.T) {
		pollID, _, _ := testutil.CreateTestPoll(t, db, cfg, models.StatusDraft)
		_, otherKey, _ := testutil.CreateTestPoll(t, db, cfg, models.StatusDraft)

		w := get(pollID, otherKey)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})
}

func TestExportResults(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	handler := NewPollHandler(db, cfg)

	pollID, adminKey, shareSlug := testutil.CreateTestPoll(t, db, cfg, models.StatusOpen)
	a := testutil.AddTestOption(t, db, pollID, "Pasta")
	b := testutil.AddTestOption(t, db, pollID, "Curry")
	testutil.SubmitTestVotes(t, db, pollID, "Alice", map[string]models.VoteResponse{a: models.ResponseYes, b: models.ResponseMaybe})

	export := func(format string) *httptest.ResponseRecorder {
		path := "/polls/" + pollID + "/export"
		if format != "" {
			path += "?format=" + format
		}
		req := testutil.MakeRequest("GET", path, nil, map[string]string{"X-Admin-Key": adminKey})
		req.SetPathValue("id", pollID)
		w := httptest.NewRecorder()
		handler.ExportResults(w, req)
		return w
	}

	t.Run("csv by default", func(t *testing.T) {
		w := export("")
		testutil.AssertStatus(t, w, http.StatusOK)

		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
			t.Errorf("Expected text/csv, got %s", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "poll-"+shareSlug+".csv") {
			t.Errorf("Unexpected Content-Disposition %q", cd)
		}

		lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
		if lines[0] != "participant,email,voted_at,Pasta,Curry" {
			t.Errorf("Unexpected header %q", lines[0])
		}
		if !strings.HasPrefix(lines[1], "Alice,,") || !strings.HasSuffix(lines[1], ",yes,maybe") {
			t.Errorf("Unexpected participant row %q", lines[1])
		}
	})

	t.Run("text", func(t *testing.T) {
		w := export("text")
		testutil.AssertStatus(t, w, http.StatusOK)

		body := w.Body.String()
		if !strings.Contains(body, "Leading: Pasta") {
			t.Errorf("Expected leading option in summary, got %q", body)
		}
		if !strings.Contains(body, "2 votes from 1 participant") {
			t.Errorf("Expected vote totals in summary, got %q", body)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		w := export("xml")
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}
