// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import "github.com/danielhkuo/quickly-plan/models"

// Capacity reports signups for one organization slot.
//
// A MaxCapacity of nil or 0 both mean unlimited: fill stays at 0 and the
// slot is never full. Signups above capacity report 100% and full.
func Capacity(option models.PollOption, votes []models.Vote) models.CapacityStats {
	signups := 0
	for _, v := range votes {
		if v.OptionID == option.ID && v.Response == models.ResponseYes {
			signups++
		}
	}

	stats := models.CapacityStats{
		OptionID:    option.ID,
		SignupCount: signups,
		Capacity:    option.MaxCapacity,
	}

	if limit := capacityLimit(option); limit > 0 {
		stats.FillPercent = min(float64(signups)/float64(limit)*100, 100)
		stats.IsFull = signups >= limit
	}

	return stats
}

// HasRoom reports whether one more signup fits into option given the
// current signup count.
func HasRoom(option models.PollOption, signups int) bool {
	limit := capacityLimit(option)
	return limit <= 0 || signups < limit
}

func capacityLimit(option models.PollOption) int {
	if option.MaxCapacity == nil {
		return 0
	}
	return *option.MaxCapacity
}
