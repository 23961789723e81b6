// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the quickly-plan API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - PollHandler: Poll lifecycle, options, capacity and export
  - VotingHandler: Vote submission, edits and withdrawal
  - ResultsHandler: Poll info, live results and previews
  - DashboardHandler: Polls a user created or voted on

Handlers are created via constructor functions that accept *sql.DB and Config:

	pollHandler := handlers.NewPollHandler(db, cfg)

# Poll Lifecycle

Polls progress through three states: draft → open → closed

	POST /polls                                → CreatePoll (returns admin_key)
	POST /polls/{id}/options                   → AddOption (draft only)
	PUT  /polls/{id}/options/{optionId}/capacity → UpdateCapacity (organization polls)
	POST /polls/{id}/publish                   → PublishPoll (generates share_slug)
	POST /polls/{id}/close                     → ClosePoll
	GET  /polls/{id}/export                    → ExportResults (csv or text)

Admin operations require the X-Admin-Key header. Open polls with an
expiry are closed by the expiry package, and votes arriving after the
deadline are refused even before the sweep runs.

# Voting Flow

Voters interact via the share slug:

	POST   /polls/{slug}/votes    → SubmitVotes (create or update)
	DELETE /polls/{slug}/votes    → WithdrawVotes
	GET    /polls/{slug}/my-votes → GetMyVotes

The first submission returns a voter_token; later calls send it back in
X-Voter-Token. Signed-in clients may send X-User-ID instead.

# Results

Results are tallied from the stored votes on every request:

	results := tally.Summarize(poll, options, votes)

Organization polls report per-slot capacity instead of a winner.
*/
package handlers
