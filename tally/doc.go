// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally turns a poll's options and raw vote rows into results.

Everything here is a pure function over data already loaded from the
database. Nothing is cached; results are recomputed on every request.

# Scoring

Each response carries a weight:

	yes   = 2
	maybe = 1
	no    = 0

Aggregate counts responses per option and sets score = 2*yes + maybe.
Winner picks the highest score; the first option in order wins ties.
Organization polls have no winner.

# Signup Slots

Capacity reports signups, fill percent and fullness for one slot of an
organization poll. A capacity of 0 is treated like no capacity at all.

# Participants

Participants groups votes by user id, or by entered name for anonymous
voters, and orders them by their first vote.

	results := tally.Summarize(poll, options, votes)
*/
package tally
