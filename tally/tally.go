// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"sort"

	"github.com/danielhkuo/quickly-plan/models"
)

// Response weights
const (
	WeightYes   = 2
	WeightMaybe = 1
	WeightNo    = 0
)

// Aggregate computes per-option counts and scores.
// Options are ordered by Order (stable); votes for unknown options are ignored.
func Aggregate(options []models.PollOption, votes []models.Vote) []models.OptionStats {
	ordered := sortedOptions(options)

	stats := make([]models.OptionStats, len(ordered))
	index := make(map[string]int, len(ordered))
	for i, opt := range ordered {
		stats[i] = models.OptionStats{
			OptionID: opt.ID,
			Text:     opt.Text,
			Order:    opt.Order,
		}
		index[opt.ID] = i
	}

	for _, v := range votes {
		i, ok := index[v.OptionID]
		if !ok {
			continue
		}
		count(&stats[i], v.Response)
	}

	for i := range stats {
		stats[i].Score = score(stats[i])
	}

	return stats
}

// count adds one response to s. Responses outside the enum are dropped.
func count(s *models.OptionStats, r models.VoteResponse) {
	switch r {
	case models.ResponseYes:
		s.YesCount++
	case models.ResponseMaybe:
		s.MaybeCount++
	case models.ResponseNo:
		s.NoCount++
	}
}

func score(s models.OptionStats) int {
	return WeightYes*s.YesCount + WeightMaybe*s.MaybeCount + WeightNo*s.NoCount
}

// Winner returns the option with the highest score. Ties go to the first
// option in stats order. Organization polls have no winner.
func Winner(pollType models.PollType, stats []models.OptionStats) (string, bool) {
	if pollType == models.TypeOrganization || len(stats) == 0 {
		return "", false
	}

	best := 0
	for i := 1; i < len(stats); i++ {
		if stats[i].Score > stats[best].Score {
			best = i
		}
	}
	return stats[best].OptionID, true
}

// Summarize builds the full results view for a poll from its options and
// raw vote rows. It never fails; bad rows are excluded from the stats.
func Summarize(poll models.Poll, options []models.PollOption, votes []models.Vote) models.PollResults {
	stats := Aggregate(options, votes)

	known := make(map[string]bool, len(options))
	for _, opt := range options {
		known[opt.ID] = true
	}
	counted := make([]models.Vote, 0, len(votes))
	for _, v := range votes {
		if known[v.OptionID] {
			counted = append(counted, v)
		}
	}

	if poll.Type == models.TypeOrganization {
		byOption := groupByOption(counted)
		for i, opt := range sortedOptions(options) {
			c := Capacity(opt, byOption[opt.ID])
			stats[i].Capacity = &c
		}
	}

	results := models.PollResults{
		PollID:       poll.ID,
		Type:         poll.Type,
		Options:      stats,
		Participants: Participants(counted),
		TotalVotes:   len(votes),
		OrphanVotes:  len(votes) - len(counted),
	}
	if id, ok := Winner(poll.Type, stats); ok {
		results.WinningOptionID = &id
	}

	return results
}

func sortedOptions(options []models.PollOption) []models.PollOption {
	ordered := make([]models.PollOption, len(options))
	copy(ordered, options)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})
	return ordered
}

func groupByOption(votes []models.Vote) map[string][]models.Vote {
	out := make(map[string][]models.Vote)
	for _, v := range votes {
		out[v.OptionID] = append(out[v.OptionID], v)
	}
	return out
}
