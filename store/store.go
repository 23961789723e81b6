// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/quickly-plan/models"
)

var ErrPollNotFound = errors.New("poll not found")

// Queryer is satisfied by *sql.DB and *sql.Tx.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const pollColumns = `id, title, description, creator_name, creator_user_id, poll_type, status,
	allow_vote_edit, allow_vote_withdrawal, results_public, allow_multiple_slots,
	share_slug, expires_at, closed_at, created_at, updated_at`

func scanPoll(row interface{ Scan(...any) error }) (models.Poll, error) {
	var p models.Poll
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.CreatorName, &p.CreatorUserID, &p.Type, &p.Status,
		&p.AllowVoteEdit, &p.AllowVoteWithdrawal, &p.ResultsPublic, &p.AllowMultipleSlots,
		&p.ShareSlug, &p.ExpiresAt, &p.ClosedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// GetPollByID looks up a poll by its internal ID.
func GetPollByID(ctx context.Context, q Queryer, pollID string) (models.Poll, error) {
	return getPoll(ctx, q, "id", pollID)
}

// GetPollBySlug looks up a published poll by its share slug.
func GetPollBySlug(ctx context.Context, q Queryer, slug string) (models.Poll, error) {
	return getPoll(ctx, q, "share_slug", slug)
}

func getPoll(ctx context.Context, q Queryer, column, value string) (models.Poll, error) {
	row := q.QueryRowContext(ctx, `SELECT `+pollColumns+` FROM poll WHERE `+column+` = $1`, value)
	p, err := scanPoll(row)
	if err == sql.ErrNoRows {
		return models.Poll{}, ErrPollNotFound
	}
	if err != nil {
		return models.Poll{}, errors.Wrapf(err, "query poll by %s", column)
	}
	return p, nil
}

// ListOptions returns a poll's options sorted by their display order.
func ListOptions(ctx context.Context, q Queryer, pollID string) ([]models.PollOption, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, poll_id, text, start_time, end_time, max_capacity, sort_order
		FROM poll_option
		WHERE poll_id = $1
		ORDER BY sort_order, id
	`, pollID)
	if err != nil {
		return nil, errors.Wrap(err, "query options")
	}
	defer rows.Close()

	options := []models.PollOption{}
	for rows.Next() {
		var opt models.PollOption
		var capacity sql.NullInt64
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Text, &opt.StartTime, &opt.EndTime, &capacity, &opt.Order); err != nil {
			return nil, errors.Wrap(err, "scan option")
		}
		if capacity.Valid {
			c := int(capacity.Int64)
			opt.MaxCapacity = &c
		}
		options = append(options, opt)
	}

	return options, errors.Wrap(rows.Err(), "iterate options")
}

// ListVotes returns every vote row of a poll in no particular order.
func ListVotes(ctx context.Context, q Queryer, pollID string) ([]models.Vote, error) {
	return listVotes(ctx, q, `WHERE poll_id = $1`, pollID)
}

// ListVoterVotes returns the votes submitted under one voter token.
func ListVoterVotes(ctx context.Context, q Queryer, pollID, voterToken string) ([]models.Vote, error) {
	return listVotes(ctx, q, `WHERE poll_id = $1 AND voter_token = $2 ORDER BY created_at, id`, pollID, voterToken)
}

func listVotes(ctx context.Context, q Queryer, where string, args ...any) ([]models.Vote, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, poll_id, option_id, voter_name, voter_email, user_id, voter_token,
		       response, comment, ip_hash, created_at, updated_at
		FROM vote
		`+where, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query votes")
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(
			&v.ID, &v.PollID, &v.OptionID, &v.VoterName, &v.VoterEmail, &v.UserID, &v.VoterToken,
			&v.Response, &v.Comment, &v.IPHash, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "scan vote")
		}
		votes = append(votes, v)
	}

	return votes, errors.Wrap(rows.Err(), "iterate votes")
}

// PollData is everything needed to render a poll's results.
type PollData struct {
	Poll    models.Poll
	Options []models.PollOption
	Votes   []models.Vote
}

// LoadPollData reads a poll, then its options and votes in two concurrent
// queries. The two reads share no snapshot, so a vote written in between
// may or may not show up.
func LoadPollData(ctx context.Context, q Queryer, poll models.Poll) (PollData, error) {
	data := PollData{Poll: poll}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		options, err := ListOptions(gctx, q, poll.ID)
		data.Options = options
		return err
	})
	g.Go(func() error {
		votes, err := ListVotes(gctx, q, poll.ID)
		data.Votes = votes
		return err
	})

	if err := g.Wait(); err != nil {
		return PollData{}, errors.WithMessagef(err, "load poll %s", poll.ID)
	}
	return data, nil
}

// CountVotersFromIP returns how many distinct voters of the poll submitted
// from the address behind ipHash
func CountVotersFromIP(ctx context.Context, q Queryer, pollID, ipHash string) (int, error) {
	var n int
	err := q.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT voter_token) FROM vote
		WHERE poll_id = $1 AND ip_hash = $2
	`, pollID, ipHash).Scan(&n)
	return n, errors.Wrap(err, "count voters from ip")
}

// ListExpiredOpenPolls returns the IDs of open polls whose expiry is at or
// before now. Expiry is compared in Go so both drivers behave the same.
func ListExpiredOpenPolls(ctx context.Context, q Queryer, now time.Time) ([]string, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, expires_at FROM poll
		WHERE status = $1 AND expires_at IS NOT NULL
	`, models.StatusOpen)
	if err != nil {
		return nil, errors.Wrap(err, "query open polls")
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		var expiresAt time.Time
		if err := rows.Scan(&id, &expiresAt); err != nil {
			return nil, errors.Wrap(err, "scan open poll")
		}
		if !now.Before(expiresAt) {
			ids = append(ids, id)
		}
	}

	return ids, errors.Wrap(rows.Err(), "iterate open polls")
}

// ClosePoll moves an open poll to closed. It reports false when the poll
// was not open.
func ClosePoll(ctx context.Context, db *sql.DB, pollID string, closedAt time.Time) (bool, error) {
	res, err := db.ExecContext(ctx, `
		UPDATE poll
		SET status = $1, closed_at = $2, updated_at = $2
		WHERE id = $3 AND status = $4
	`, models.StatusClosed, closedAt, pollID, models.StatusOpen)
	if err != nil {
		return false, errors.Wrap(err, "close poll")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "close poll rows affected")
	}
	return n > 0, nil
}
