// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"sort"

	"github.com/danielhkuo/quickly-plan/models"
)

// ParticipantKey identifies the voter behind v. Signed-in voters are keyed by
// user id; anonymous voters by their exact entered name, so two anonymous
// voters with the same name share one participant.
func ParticipantKey(v models.Vote) string {
	if v.UserID != nil && *v.UserID != "" {
		return "user:" + *v.UserID
	}
	return "name:" + v.VoterName
}

// Participants groups votes by voter, ordered by first vote time.
func Participants(votes []models.Vote) []models.Participant {
	byKey := make(map[string]*models.Participant)
	for _, v := range votes {
		key := ParticipantKey(v)
		p, ok := byKey[key]
		if !ok {
			p = &models.Participant{Key: key}
			byKey[key] = p
		}
		p.Votes = append(p.Votes, v)
	}

	out := make([]models.Participant, 0, len(byKey))
	for _, p := range byKey {
		sort.SliceStable(p.Votes, func(i, j int) bool {
			a, b := p.Votes[i], p.Votes[j]
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.ID < b.ID
		})
		first := p.Votes[0]
		p.Name = first.VoterName
		p.UserID = first.UserID
		p.VotedAt = first.CreatedAt
		out = append(out, *p)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].VotedAt.Equal(out[j].VotedAt) {
			return out[i].VotedAt.Before(out[j].VotedAt)
		}
		return out[i].Key < out[j].Key
	})

	return out
}

// ResponseFor returns p's response for optionID, preferring the most recent
// vote when duplicates exist.
func ResponseFor(p models.Participant, optionID string) (models.VoteResponse, bool) {
	for i := len(p.Votes) - 1; i >= 0; i-- {
		if p.Votes[i].OptionID == optionID {
			return p.Votes[i].Response, true
		}
	}
	return "", false
}
