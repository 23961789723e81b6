// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-plan/db"
	"github.com/danielhkuo/quickly-plan/testutil"
)

func TestOpenUnsupportedType(t *testing.T) {
	conn, err := db.Open("mysql", "root@/plan")
	assert.Nil(t, conn)
	assert.ErrorContains(t, err, `unsupported database type "mysql"`)
}

func TestCreateSchemaIsIdempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	require.NoError(t, db.CreateSchema(conn))
}

func TestIsUniqueViolation(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	insert := func(id, slug string) error {
		_, err := conn.Exec(`
			INSERT INTO poll (id, title, creator_name, poll_type, share_slug)
			VALUES ($1, 'T', 'C', 'survey', $2)
		`, id, slug)
		return err
	}

	require.NoError(t, insert("p1", "slug-1"))

	err := insert("p1", "slug-2")
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err), "duplicate primary key")

	err = insert("p2", "slug-1")
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err), "duplicate share slug")

	err = insert("p3", "slug-3")
	require.NoError(t, err)

	_, err = conn.Exec(`INSERT INTO poll (id, title, creator_name, poll_type) VALUES ('p4', 'T', 'C', 'quiz')`)
	require.Error(t, err)
	assert.False(t, db.IsUniqueViolation(err), "check constraint")

	option := func(id string, order int) error {
		_, err := conn.Exec(`
			INSERT INTO poll_option (id, poll_id, text, sort_order)
			VALUES ($1, 'p1', 'O', $2)
		`, id, order)
		return err
	}

	require.NoError(t, option("o1", 0))
	require.NoError(t, option("o2", 1))
	err = option("o3", 1)
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err), "duplicate option order")

	assert.False(t, db.IsUniqueViolation(errors.New("boom")))
	assert.False(t, db.IsUniqueViolation(nil))
}
