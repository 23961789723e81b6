// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Poll status constants
const (
	StatusDraft  = "draft"
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// PollType selects how options are presented and how votes are scored.
type PollType string

const (
	TypeSchedule     PollType = "schedule"
	TypeSurvey       PollType = "survey"
	TypeOrganization PollType = "organization"
)

// Valid reports whether t is one of the known poll types.
func (t PollType) Valid() bool {
	switch t {
	case TypeSchedule, TypeSurvey, TypeOrganization:
		return true
	}
	return false
}

// VoteResponse is a voter's answer for one option. Organization polls only
// use ResponseYes, meaning "signed up".
type VoteResponse string

const (
	ResponseYes   VoteResponse = "yes"
	ResponseMaybe VoteResponse = "maybe"
	ResponseNo    VoteResponse = "no"
)

// Valid reports whether r is one of the known responses.
func (r VoteResponse) Valid() bool {
	switch r {
	case ResponseYes, ResponseMaybe, ResponseNo:
		return true
	}
	return false
}

// AllowedFor reports whether r may be submitted on a poll of type t.
func (r VoteResponse) AllowedFor(t PollType) bool {
	if t == TypeOrganization {
		return r == ResponseYes
	}
	return r.Valid()
}

// Request types

type CreatePollRequest struct {
	Title               string             `json:"title"`
	Description         string             `json:"description"`
	CreatorName         string             `json:"creator_name"`
	Type                PollType           `json:"type" enums:"schedule,survey,organization"`
	AllowVoteEdit       bool               `json:"allow_vote_edit"`
	AllowVoteWithdrawal bool               `json:"allow_vote_withdrawal"`
	ResultsPublic       bool               `json:"results_public"`
	AllowMultipleSlots  bool               `json:"allow_multiple_slots"`
	ExpiresAt           *time.Time         `json:"expires_at,omitempty"`
	Options             []AddOptionRequest `json:"options,omitempty"`
}

type AddOptionRequest struct {
	Text        string     `json:"text"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	MaxCapacity *int       `json:"max_capacity,omitempty"`
}

// A null max_capacity clears the limit.
type UpdateCapacityRequest struct {
	MaxCapacity *int `json:"max_capacity"`
}

// option_id -> response
type SubmitVotesRequest struct {
	VoterName  string                  `json:"voter_name"`
	VoterEmail string                  `json:"voter_email,omitempty"`
	Responses  map[string]VoteResponse `json:"responses"`
	Comment    string                  `json:"comment,omitempty"`
}

// Response types

type CreatePollResponse struct {
	PollID    string   `json:"poll_id"`
	AdminKey  string   `json:"admin_key"`
	OptionIDs []string `json:"option_ids,omitempty"`
}

type AddOptionResponse struct {
	OptionID string `json:"option_id"`
}

type PublishPollResponse struct {
	ShareSlug string `json:"share_slug"`
	ShareURL  string `json:"share_url"`
}

type ClosePollResponse struct {
	ClosedAt time.Time `json:"closed_at"`
}

type SubmitVotesResponse struct {
	VoterToken string `json:"voter_token"`
	VoteCount  int    `json:"vote_count"`
	Message    string `json:"message"`
}

type WithdrawVotesResponse struct {
	Removed int    `json:"removed"`
	Message string `json:"message"`
}

type MyVotesResponse struct {
	VoterName string `json:"voter_name"`
	Votes     []Vote `json:"votes"`
}

type PollPreviewResponse struct {
	Title            string   `json:"title"`
	Type             PollType `json:"type" enums:"schedule,survey,organization"`
	Status           string   `json:"status" enums:"draft,open,closed"`
	OptionCount      int      `json:"option_count"`
	VoteCount        int      `json:"vote_count"`
	ParticipantCount int      `json:"participant_count"`
}

type UserPollSummary struct {
	PollID    string    `json:"poll_id"`
	Title     string    `json:"title"`
	Type      PollType  `json:"type" enums:"schedule,survey,organization"`
	Status    string    `json:"status" enums:"draft,open,closed"`
	ShareSlug *string   `json:"share_slug,omitempty"`
	Role      string    `json:"role" enums:"creator,voter"`
	VoteCount int       `json:"vote_count"`
	CreatedAt time.Time `json:"created_at"`
}

type GetMyPollsResponse struct {
	Polls []UserPollSummary `json:"polls"`
}

// Dashboard roles
const (
	RoleCreator = "creator"
	RoleVoter   = "voter"
)

// Domain types

type Poll struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	CreatorName         string     `json:"creator_name"`
	CreatorUserID       *string    `json:"-"`
	Type                PollType   `json:"type" enums:"schedule,survey,organization"`
	Status              string     `json:"status" enums:"draft,open,closed"`
	AllowVoteEdit       bool       `json:"allow_vote_edit"`
	AllowVoteWithdrawal bool       `json:"allow_vote_withdrawal"`
	ResultsPublic       bool       `json:"results_public"`
	AllowMultipleSlots  bool       `json:"allow_multiple_slots"`
	ShareSlug           *string    `json:"share_slug,omitempty"`
	ExpiresAt           *time.Time `json:"expires_at,omitempty"`
	ClosedAt            *time.Time `json:"closed_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// IsExpired reports whether the poll's expiry is at or before now.
func (p Poll) IsExpired(now time.Time) bool {
	return p.ExpiresAt != nil && !now.Before(*p.ExpiresAt)
}

type PollOption struct {
	ID          string     `json:"id"`
	PollID      string     `json:"poll_id"`
	Text        string     `json:"text"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	MaxCapacity *int       `json:"max_capacity,omitempty"`
	Order       int        `json:"order"`
}

type PollWithOptions struct {
	Poll     Poll            `json:"poll"`
	Options  []PollOption    `json:"options"`
	Capacity []CapacityStats `json:"capacity,omitempty"`
}

type Vote struct {
	ID         string       `json:"id"`
	PollID     string       `json:"poll_id"`
	OptionID   string       `json:"option_id"`
	VoterName  string       `json:"voter_name"`
	VoterEmail *string      `json:"voter_email,omitempty"`
	UserID     *string      `json:"user_id,omitempty"`
	VoterToken string       `json:"-"` // Never expose in JSON
	Response   VoteResponse `json:"response" enums:"yes,maybe,no"`
	Comment    *string      `json:"comment,omitempty"`
	IPHash     *string      `json:"-"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// Result types

type OptionStats struct {
	OptionID   string         `json:"option_id"`
	Text       string         `json:"text"`
	Order      int            `json:"order"`
	YesCount   int            `json:"yes_count"`
	MaybeCount int            `json:"maybe_count"`
	NoCount    int            `json:"no_count"`
	Score      int            `json:"score"`
	Capacity   *CapacityStats `json:"capacity,omitempty"`
}

type CapacityStats struct {
	OptionID    string  `json:"option_id"`
	SignupCount int     `json:"signup_count"`
	Capacity    *int    `json:"capacity"`
	FillPercent float64 `json:"fill_percent"`
	IsFull      bool    `json:"is_full"`
}

type Participant struct {
	Key     string    `json:"key"`
	Name    string    `json:"name"`
	UserID  *string   `json:"user_id,omitempty"`
	VotedAt time.Time `json:"voted_at"`
	Votes   []Vote    `json:"votes"`
}

type PollResults struct {
	PollID          string        `json:"poll_id"`
	Type            PollType      `json:"type" enums:"schedule,survey,organization"`
	Options         []OptionStats `json:"options"`
	WinningOptionID *string       `json:"winning_option_id,omitempty"`
	Participants    []Participant `json:"participants"`
	TotalVotes      int           `json:"total_votes"`
	OrphanVotes     int           `json:"orphan_votes"`
}

// WithoutEmails returns a copy of r with voter emails removed from every
// participant's votes.
func (r PollResults) WithoutEmails() PollResults {
	out := r
	out.Participants = make([]Participant, len(r.Participants))
	for i, p := range r.Participants {
		votes := make([]Vote, len(p.Votes))
		for j, v := range p.Votes {
			v.VoterEmail = nil
			votes[j] = v
		}
		p.Votes = votes
		out.Participants[i] = p
	}
	return out
}

type PollResultsResponse struct {
	Poll    Poll        `json:"poll"`
	Results PollResults `json:"results"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
