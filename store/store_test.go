// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-plan/models"
	"github.com/danielhkuo/quickly-plan/store"
	"github.com/danielhkuo/quickly-plan/testutil"
)

func TestGetPoll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	ctx := context.Background()

	expiresAt := time.Date(2030, 1, 2, 15, 4, 5, 0, time.UTC)
	pollID, _, slug := testutil.CreateTestPollWith(t, db, cfg, testutil.PollOpts{
		Type:          models.TypeOrganization,
		Status:        models.StatusOpen,
		ResultsPublic: true,
		ExpiresAt:     &expiresAt,
		CreatorUserID: "user-1",
	})

	byID, err := store.GetPollByID(ctx, db, pollID)
	require.NoError(t, err)
	assert.Equal(t, "Test Poll", byID.Title)
	assert.Equal(t, models.TypeOrganization, byID.Type)
	assert.True(t, byID.ResultsPublic)
	assert.False(t, byID.AllowVoteEdit)
	require.NotNil(t, byID.CreatorUserID)
	assert.Equal(t, "user-1", *byID.CreatorUserID)
	require.NotNil(t, byID.ExpiresAt)
	assert.True(t, expiresAt.Equal(*byID.ExpiresAt))
	assert.Nil(t, byID.ClosedAt)

	bySlug, err := store.GetPollBySlug(ctx, db, slug)
	require.NoError(t, err)
	assert.Equal(t, pollID, bySlug.ID)

	_, err = store.GetPollByID(ctx, db, "missing")
	assert.ErrorIs(t, err, store.ErrPollNotFound)

	_, err = store.GetPollBySlug(ctx, db, "missing")
	assert.ErrorIs(t, err, store.ErrPollNotFound)
}

func TestListOptions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	ctx := context.Background()

	pollID, _, _ := testutil.CreateTestPoll(t, db, cfg, models.StatusDraft)

	options, err := store.ListOptions(ctx, db, pollID)
	require.NoError(t, err)
	assert.NotNil(t, options)
	assert.Empty(t, options)

	first := testutil.AddTestSlot(t, db, pollID, "Setup", nil)
	second := testutil.AddTestSlot(t, db, pollID, "Cleanup", intPtr(3))

	options, err = store.ListOptions(ctx, db, pollID)
	require.NoError(t, err)
	require.Len(t, options, 2)

	assert.Equal(t, first, options[0].ID)
	assert.Equal(t, 0, options[0].Order)
	assert.Nil(t, options[0].MaxCapacity)

	assert.Equal(t, second, options[1].ID)
	require.NotNil(t, options[1].MaxCapacity)
	assert.Equal(t, 3, *options[1].MaxCapacity)
}

func TestListVoterVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	ctx := context.Background()

	pollID, _, _ := testutil.CreateTestPoll(t, db, cfg, models.StatusOpen)
	a := testutil.AddTestOption(t, db, pollID, "A")
	b := testutil.AddTestOption(t, db, pollID, "B")

	alice := testutil.SubmitTestVotes(t, db, pollID, "Alice", map[string]models.VoteResponse{a: models.ResponseYes, b: models.ResponseNo})
	testutil.SubmitTestVotes(t, db, pollID, "Bob", map[string]models.VoteResponse{a: models.ResponseMaybe})

	votes, err := store.ListVoterVotes(ctx, db, pollID, alice)
	require.NoError(t, err)
	require.Len(t, votes, 2)
	for _, v := range votes {
		assert.Equal(t, "Alice", v.VoterName)
		assert.Equal(t, alice, v.VoterToken)
	}

	votes, err = store.ListVoterVotes(ctx, db, pollID, "unknown")
	require.NoError(t, err)
	assert.Empty(t, votes)

	all, err := store.ListVotes(ctx, db, pollID)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCountVotersFromIP(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	ctx := context.Background()

	pollID, _, _ := testutil.CreateTestPoll(t, db, cfg, models.StatusOpen)
	a := testutil.AddTestOption(t, db, pollID, "A")
	b := testutil.AddTestOption(t, db, pollID, "B")

	both := map[string]models.VoteResponse{a: models.ResponseYes, b: models.ResponseNo}
	alice := testutil.SubmitTestVotes(t, db, pollID, "Alice", both)
	bob := testutil.SubmitTestVotes(t, db, pollID, "Bob", both)
	carol := testutil.SubmitTestVotes(t, db, pollID, "Carol", both)

	for token, hash := range map[string]string{alice: "hash-1", bob: "hash-1", carol: "hash-2"} {
		_, err := db.Exec(`UPDATE vote SET ip_hash = $1 WHERE voter_token = $2`, hash, token)
		require.NoError(t, err)
	}

	// Two rows per voter, counted once
	n, err := store.CountVotersFromIP(ctx, db, pollID, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = store.CountVotersFromIP(ctx, db, pollID, "hash-3")
	require.NoError(t, err)
	assert.Zero(t, n)

	otherID, _, _ := testutil.CreateTestPoll(t, db, cfg, models.StatusOpen)
	n, err = store.CountVotersFromIP(ctx, db, otherID, "hash-1")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLoadPollData(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	ctx := context.Background()

	pollID, _, _ := testutil.CreateTestPoll(t, db, cfg, models.StatusOpen)
	a := testutil.AddTestOption(t, db, pollID, "A")
	testutil.AddTestOption(t, db, pollID, "B")
	testutil.SubmitTestVotes(t, db, pollID, "Alice", map[string]models.VoteResponse{a: models.ResponseYes})

	// Votes on another poll stay out
	otherID, _, _ := testutil.CreateTestPoll(t, db, cfg, models.StatusOpen)
	other := testutil.AddTestOption(t, db, otherID, "C")
	testutil.SubmitTestVotes(t, db, otherID, "Bob", map[string]models.VoteResponse{other: models.ResponseYes})

	poll, err := store.GetPollByID(ctx, db, pollID)
	require.NoError(t, err)

	data, err := store.LoadPollData(ctx, db, poll)
	require.NoError(t, err)
	assert.Equal(t, pollID, data.Poll.ID)
	assert.Len(t, data.Options, 2)
	require.Len(t, data.Votes, 1)
	assert.Equal(t, a, data.Votes[0].OptionID)
}

func TestClosePoll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	ctx := context.Background()

	pollID, _, _ := testutil.CreateTestPoll(t, db, cfg, models.StatusOpen)
	draftID, _, _ := testutil.CreateTestPoll(t, db, cfg, models.StatusDraft)
	closedAt := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

	ok, err := store.ClosePoll(ctx, db, pollID, closedAt)
	require.NoError(t, err)
	assert.True(t, ok)

	poll, err := store.GetPollByID(ctx, db, pollID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusClosed, poll.Status)
	require.NotNil(t, poll.ClosedAt)
	assert.True(t, closedAt.Equal(*poll.ClosedAt))

	ok, err = store.ClosePoll(ctx, db, pollID, closedAt.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, ok, "already closed")

	ok, err = store.ClosePoll(ctx, db, draftID, closedAt)
	require.NoError(t, err)
	assert.False(t, ok, "drafts cannot be closed")
}

func intPtr(i int) *int { return &i }
