// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the quickly-plan API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

NewHandler adds CORS and Accept-Language localization on top, and is what
the server runs:

	h := router.NewHandler(db, cfg, bundle)

# Endpoints

Health and docs:

	GET /health
	GET /swagger/ - Swagger UI, OpenAPI document at /swagger/doc.json

Poll management (admin, requires X-Admin-Key):

	POST   /polls                                  - Create poll (draft)
	GET    /polls/{id}/admin                       - Poll, options and capacity
	POST   /polls/{id}/options                     - Add option (draft only)
	PUT    /polls/{id}/options/{optionId}/capacity - Set or clear slot capacity
	POST   /polls/{id}/publish                     - Open for voting
	POST   /polls/{id}/close                       - Stop accepting votes
	DELETE /polls/{id}                             - Delete poll and votes
	GET    /polls/{id}/export?format=csv|text      - Download results

Voting (public, uses share slug):

	POST   /polls/{slug}/votes    - Submit or replace responses
	DELETE /polls/{slug}/votes    - Withdraw responses (X-Voter-Token)
	GET    /polls/{slug}/my-votes - Responses under X-Voter-Token

Results (public):

	GET /polls/{slug}         - Poll info and options
	GET /polls/{slug}/results - Aggregated results
	GET /polls/{slug}/preview - Compact preview data

Dashboard (requires X-User-ID):

	GET /me/polls - Polls the user created or voted in
*/
package router
