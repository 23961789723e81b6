// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package expiry

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/danielhkuo/quickly-plan/store"
)

// Sweeper closes open polls that crossed expires_at.
type Sweeper struct {
	DB       *sql.DB
	Interval time.Duration
	// Now defaults to time.Now
	Now func() time.Time
}

// RunOnce closes every open poll whose expiry is at or before now and
// returns how many it closed. A poll closed concurrently by its admin is
// skipped, not counted.
func (s Sweeper) RunOnce(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now().UTC()
	}

	ids, err := store.ListExpiredOpenPolls(ctx, s.DB, now)
	if err != nil {
		return 0, errors.WithMessage(err, "expiry sweep")
	}

	closed := 0
	for _, id := range ids {
		ok, err := store.ClosePoll(ctx, s.DB, id, now)
		if err != nil {
			return closed, errors.WithMessagef(err, "expire poll %s", id)
		}
		if ok {
			closed++
			slog.Info("poll expired", "poll_id", id)
		}
	}

	if closed > 0 {
		slog.Info("expiry sweep completed", "closed_count", closed)
	}
	return closed, nil
}

// Run sweeps once immediately, then every Interval until ctx is done.
// Sweep failures are logged and retried on the next tick.
func (s Sweeper) Run(ctx context.Context) {
	if s.Interval <= 0 {
		return
	}

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	slog.Info("expiry sweeper started", "interval", s.Interval.String())

	for {
		if _, err := s.RunOnce(ctx); err != nil && ctx.Err() == nil {
			slog.Error("expiry sweep failed", "error", err)
		}
		select {
		case <-ctx.Done():
			slog.Info("expiry sweeper stopped")
			return
		case <-ticker.C:
		}
	}
}
