// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package locale

import "github.com/nicksnyder/go-i18n/v2/i18n"

// Request errors
var (
	ErrInvalidJSON = &i18n.Message{
		ID:    "error.invalidJSON",
		Other: "Invalid JSON",
	}
	ErrFieldRequired = &i18n.Message{
		ID:    "error.fieldRequired",
		Other: "{{.Field}} is required",
	}
	ErrInvalidPollType = &i18n.Message{
		ID:    "error.invalidPollType",
		Other: "type must be one of schedule, survey or organization",
	}
	ErrExpiryInPast = &i18n.Message{
		ID:    "error.expiryInPast",
		Other: "expires_at must be in the future",
	}
	ErrInvalidTimeRange = &i18n.Message{
		ID:    "error.invalidTimeRange",
		Other: "end_time must be after start_time",
	}
	ErrInvalidCapacity = &i18n.Message{
		ID:    "error.invalidCapacity",
		Other: "max_capacity must not be negative",
	}
	ErrVoterNameLength = &i18n.Message{
		ID:    "error.voterNameLength",
		Other: "voter_name must be between {{.Min}} and {{.Max}} characters",
	}
	ErrInvalidEmail = &i18n.Message{
		ID:    "error.invalidEmail",
		Other: "voter_email is not a valid email address",
	}
	ErrNoResponses = &i18n.Message{
		ID:    "error.noResponses",
		Other: "responses must not be empty",
	}
	ErrUnknownOption = &i18n.Message{
		ID:    "error.unknownOption",
		Other: "Unknown option {{.OptionID}}",
	}
	ErrInvalidResponse = &i18n.Message{
		ID:    "error.invalidResponse",
		Other: "Response {{.Response}} is not allowed for option {{.OptionID}}",
	}
	ErrInvalidExportFormat = &i18n.Message{
		ID:    "error.invalidExportFormat",
		Other: "format must be csv or text",
	}
	ErrTooFewOptions = &i18n.Message{
		ID:    "error.tooFewOptions",
		One:   "Poll must have at least {{.Min}} option",
		Other: "Poll must have at least {{.Min}} options",
	}
)

// Authorization errors
var (
	ErrInvalidAdminKey = &i18n.Message{
		ID:    "error.invalidAdminKey",
		Other: "Invalid admin key",
	}
	ErrInvalidVoterToken = &i18n.Message{
		ID:    "error.invalidVoterToken",
		Other: "Invalid voter token",
	}
	ErrUserIDRequired = &i18n.Message{
		ID:    "error.userIDRequired",
		Other: "X-User-ID header is required",
	}
	ErrResultsHidden = &i18n.Message{
		ID:    "error.resultsHidden",
		Other: "Results of this poll are not public",
	}
)

// Lookup and state errors
var (
	ErrPollNotFound = &i18n.Message{
		ID:    "error.pollNotFound",
		Other: "Poll not found",
	}
	ErrOptionNotFound = &i18n.Message{
		ID:    "error.optionNotFound",
		Other: "Option not found",
	}
	ErrNoVotes = &i18n.Message{
		ID:    "error.noVotes",
		Other: "No votes found for this voter",
	}
	ErrPollNotDraft = &i18n.Message{
		ID:    "error.pollNotDraft",
		Other: "Poll is not in draft status",
	}
	ErrPollNotOpen = &i18n.Message{
		ID:    "error.pollNotOpen",
		Other: "Poll is not open",
	}
	ErrPollExpired = &i18n.Message{
		ID:    "error.pollExpired",
		Other: "Poll has expired",
	}
	ErrSingleSlotOnly = &i18n.Message{
		ID:    "error.singleSlotOnly",
		Other: "This poll allows signing up for one slot only",
	}
	ErrCapacityNotSupported = &i18n.Message{
		ID:    "error.capacityNotSupported",
		Other: "Only organization polls have slot capacities",
	}
	ErrSlotFull = &i18n.Message{
		ID:    "error.slotFull",
		Other: "{{.Option}} is full",
	}
	ErrVoteEditDisabled = &i18n.Message{
		ID:    "error.voteEditDisabled",
		Other: "You have already voted and this poll does not allow changing votes",
	}
	ErrWithdrawalDisabled = &i18n.Message{
		ID:    "error.withdrawalDisabled",
		Other: "This poll does not allow withdrawing votes",
	}
	ErrVoteConflict = &i18n.Message{
		ID:    "error.voteConflict",
		Other: "Your votes changed while saving, please try again",
	}
)

// Server errors
var (
	ErrDatabase = &i18n.Message{
		ID:    "error.database",
		Other: "Database error",
	}
	ErrInternal = &i18n.Message{
		ID:    "error.internal",
		Other: "Internal server error",
	}
)

// Success messages
var (
	ResponseVoteCounted = &i18n.Message{
		ID:    "response.vote.counted",
		Other: "Your vote has been counted.",
	}
	ResponseVoteUpdated = &i18n.Message{
		ID:    "response.vote.updated",
		Other: "Your vote has been updated.",
	}
	ResponseVoteWithdrawn = &i18n.Message{
		ID:    "response.vote.withdrawn",
		Other: "Your vote has been withdrawn.",
	}
)
