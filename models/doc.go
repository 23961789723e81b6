// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: title, type, flags, expires_at, inline options
  - AddOptionRequest: text, start_time, end_time, max_capacity
  - UpdateCapacityRequest: max_capacity (null clears the limit)
  - SubmitVotesRequest: voter_name, voter_email, responses (option_id -> response)

# Response Types

  - CreatePollResponse: poll_id, admin_key, option_ids
  - AddOptionResponse: option_id
  - PublishPollResponse: share_slug, share_url
  - SubmitVotesResponse: voter_token, vote_count, message
  - PollResultsResponse: poll, results
  - ErrorResponse: error, message

# Domain Types

  - Poll: poll metadata, type, flags and lifecycle state
  - PollOption: time slot, free-text choice, or signup slot
  - Vote: one voter's response to one option

# Result Types

Produced by package tally on every results request:

  - OptionStats: yes/maybe/no counts and score per option
  - CapacityStats: signups, fill percent and fullness of a signup slot
  - Participant: a voter's votes grouped across options
  - PollResults: everything above plus the winning option

# Constants

Poll types:

	TypeSchedule     = "schedule"
	TypeSurvey       = "survey"
	TypeOrganization = "organization"

Responses:

	ResponseYes   = "yes"
	ResponseMaybe = "maybe"
	ResponseNo    = "no"

Status values:

	StatusDraft  = "draft"
	StatusOpen   = "open"
	StatusClosed = "closed"
*/
package models
