// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/danielhkuo/quickly-plan/cliparse"
	_ "github.com/danielhkuo/quickly-plan/docs"
	"github.com/danielhkuo/quickly-plan/handlers"
	"github.com/danielhkuo/quickly-plan/locale"
	"github.com/danielhkuo/quickly-plan/middleware"
)

type route struct {
	pattern string
	handler http.HandlerFunc
}

// apiRoutes lists the documented API endpoints. Each one carries swag
// annotations on its handler.
func apiRoutes(db *sql.DB, cfg cliparse.Config) []route {
	pollHandler := handlers.NewPollHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)
	dashboardHandler := handlers.NewDashboardHandler(db, cfg)

	return []route{
		// Poll management (admin operations)
		{"POST /polls", pollHandler.CreatePoll},
		{"GET /polls/{id}/admin", pollHandler.GetPollAdmin},
		{"POST /polls/{id}/options", pollHandler.AddOption},
		{"PUT /polls/{id}/options/{optionId}/capacity", pollHandler.UpdateCapacity},
		{"POST /polls/{id}/publish", pollHandler.PublishPoll},
		{"POST /polls/{id}/close", pollHandler.ClosePoll},
		{"DELETE /polls/{id}", pollHandler.DeletePoll},
		{"GET /polls/{id}/export", pollHandler.ExportResults},

		// Voting operations (public)
		{"POST /polls/{slug}/votes", votingHandler.SubmitVotes},
		{"DELETE /polls/{slug}/votes", votingHandler.WithdrawVotes},
		{"GET /polls/{slug}/my-votes", votingHandler.GetMyVotes},

		// Results retrieval (public)
		{"GET /polls/{slug}", resultsHandler.GetPoll},
		{"GET /polls/{slug}/results", resultsHandler.GetResults},
		{"GET /polls/{slug}/preview", resultsHandler.GetPreview},

		// User dashboard
		{"GET /me/polls", dashboardHandler.GetMyPolls},
	}
}

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	for _, rt := range apiRoutes(db, cfg) {
		mux.HandleFunc(rt.pattern, middleware.WithLogging(rt.handler))
	}

	// API docs
	mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-plan API v1"))
	})

	return mux
}

// NewHandler wraps the router with CORS and per-request localization.
func NewHandler(db *sql.DB, cfg cliparse.Config, bundle *locale.Bundle) http.Handler {
	return middleware.CORS(middleware.WithLocale(bundle, NewRouter(db, cfg)))
}
