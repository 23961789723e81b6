// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Drivers

Open selects the driver by database type:

	conn, err := db.Open(db.TypePostgres, "postgres://...")
	conn, err := db.Open(db.TypeSQLite, "file:quickly-plan.db")

Postgres uses github.com/lib/pq; SQLite uses the pure-Go modernc.org/sqlite,
which is also what the test suite runs against.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - poll: Poll metadata, type, flags and lifecycle state
  - poll_option: Time slots, choices or signup slots per poll
  - vote: One response per voter per option

# Relationships

	poll 1──* poll_option
	poll 1──* vote
	poll_option 1──* vote

All foreign keys use ON DELETE CASCADE.

# Errors

IsUniqueViolation recognizes duplicate-key errors from both drivers.
*/
package db
