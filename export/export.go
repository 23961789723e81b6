// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-plan/models"
	"github.com/danielhkuo/quickly-plan/tally"
)

// Supported export formats
const (
	FormatCSV  = "csv"
	FormatText = "text"
)

const fillBarWidth = 10

// Filename is the download name for a poll's CSV export
func Filename(poll models.Poll) string {
	name := poll.ID
	if poll.ShareSlug != nil {
		name = *poll.ShareSlug
	}
	return "poll-" + name + ".csv"
}

// WriteCSV writes the participant matrix: one row per participant with their
// response to each option, followed by per-option totals. Organization polls
// get signup and capacity rows as well.
func WriteCSV(w io.Writer, results models.PollResults) error {
	cw := csv.NewWriter(w)

	header := []string{"participant", "email", "voted_at"}
	for _, opt := range results.Options {
		header = append(header, opt.Text)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, p := range results.Participants {
		row := []string{p.Name, participantEmail(p), p.VotedAt.UTC().Format(time.RFC3339)}
		for _, opt := range results.Options {
			response, _ := tally.ResponseFor(p, opt.OptionID)
			row = append(row, string(response))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	footers := []footer{
		{"score", func(s models.OptionStats) string { return strconv.Itoa(s.Score) }},
		{"yes", func(s models.OptionStats) string { return strconv.Itoa(s.YesCount) }},
		{"maybe", func(s models.OptionStats) string { return strconv.Itoa(s.MaybeCount) }},
		{"no", func(s models.OptionStats) string { return strconv.Itoa(s.NoCount) }},
	}
	if results.Type == models.TypeOrganization {
		footers = append(footers, footer{"signups", signupCell}, footer{"capacity", capacityCell})
	}

	for _, f := range footers {
		row := []string{f.label, "", ""}
		for _, s := range results.Options {
			row = append(row, f.value(s))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv footer: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// footer is a totals row below the participant matrix
type footer struct {
	label string
	value func(models.OptionStats) string
}

func signupCell(s models.OptionStats) string {
	if s.Capacity == nil {
		return "0"
	}
	return strconv.Itoa(s.Capacity.SignupCount)
}

// capacityCell is empty for unlimited slots
func capacityCell(s models.OptionStats) string {
	if s.Capacity == nil || s.Capacity.Capacity == nil {
		return ""
	}
	return strconv.Itoa(*s.Capacity.Capacity)
}

// participantEmail returns the first email the participant left, if any
func participantEmail(p models.Participant) string {
	for _, v := range p.Votes {
		if v.VoterEmail != nil {
			return *v.VoterEmail
		}
	}
	return ""
}

// WriteText writes a plain-text summary meant for terminals and e-mails.
// Relative times are computed against now.
func WriteText(w io.Writer, poll models.Poll, results models.PollResults, now time.Time) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s, %s)\n", poll.Title, poll.Type, poll.Status)
	fmt.Fprintf(&b, "%s %s from %s %s\n",
		humanize.Comma(int64(results.TotalVotes)), plural(results.TotalVotes, "vote", "votes"),
		humanize.Comma(int64(len(results.Participants))), plural(len(results.Participants), "participant", "participants"))
	if poll.ExpiresAt != nil && poll.Status == models.StatusOpen {
		fmt.Fprintf(&b, "Closes %s\n", humanize.RelTime(*poll.ExpiresAt, now, "ago", "from now"))
	}

	if results.WinningOptionID != nil {
		for _, s := range results.Options {
			if s.OptionID == *results.WinningOptionID {
				label := "Leading"
				if poll.Status == models.StatusClosed {
					label = "Winner"
				}
				fmt.Fprintf(&b, "%s: %s\n", label, s.Text)
				break
			}
		}
	}
	b.WriteString("\n")

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	for i, s := range results.Options {
		if results.Type == models.TypeOrganization {
			fmt.Fprintf(tw, "%s\t%s\n", humanize.Ordinal(i+1)+" "+s.Text, capacityLine(s.Capacity))
			continue
		}
		fmt.Fprintf(tw, "%s\tyes %d\tmaybe %d\tno %d\tscore %d\n",
			humanize.Ordinal(i+1)+" "+s.Text, s.YesCount, s.MaybeCount, s.NoCount, s.Score)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to format options: %w", err)
	}

	if len(results.Participants) > 0 {
		b.WriteString("\nParticipants:\n")
		tw = tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
		for _, p := range results.Participants {
			fmt.Fprintf(tw, "  %s\tvoted %s\n", p.Name, humanize.RelTime(p.VotedAt, now, "ago", "from now"))
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("failed to format participants: %w", err)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// capacityLine renders "3/5 signed up [######----] 60%" or, for unlimited
// slots, "3 signed up".
func capacityLine(c *models.CapacityStats) string {
	if c == nil {
		return "0 signed up"
	}
	if c.Capacity == nil || *c.Capacity == 0 {
		return fmt.Sprintf("%s signed up", humanize.Comma(int64(c.SignupCount)))
	}

	filled := int(c.FillPercent / 100 * fillBarWidth)
	bar := strings.Repeat("#", filled) + strings.Repeat("-", fillBarWidth-filled)
	line := fmt.Sprintf("%d/%d signed up [%s] %s%%", c.SignupCount, *c.Capacity, bar, humanize.FtoaWithDigits(c.FillPercent, 1))
	if c.IsFull {
		line += " full"
	}
	return line
}

func plural(n int, one, other string) string {
	if n == 1 {
		return one
	}
	return other
}
