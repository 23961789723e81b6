// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quickly-plan API server.

quickly-plan runs three kinds of polls behind one share link: schedule polls
(pick time slots with yes/maybe/no), surveys (yes/maybe/no per choice) and
organization polls (sign up for slots with optional capacity limits).
Results are tallied live from the stored votes on every request.

# Commands

	quickly-plan [flags]            - serve the API (same as "serve")
	quickly-plan serve [flags]      - serve the API
	quickly-plan migrate [flags]    - create the schema and exit
	quickly-plan export <poll-id>   - print results (--format csv|text)

A .env file in the working directory is loaded first; variables already set
in the environment win.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string
  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC
  - POLL_SLUG_SALT (-slug-salt): Secret for share slug generation

Optional settings:

  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - PORT (-p): Server port (default: 3318)
  - BASE_URL (-base-url): Prefix for share links
  - LOG_FORMAT (-log-format): auto, text or json
  - EXPIRY_SWEEP_INTERVAL (-sweep-interval): How often expired polls close; 0 disables

# Architecture

  - handlers: HTTP request handlers (polls, voting, results, dashboard)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, localization, JSON helpers
  - tally: Score aggregation and slot capacity
  - store: Shared poll, option and vote queries
  - export: CSV and text result exports
  - expiry: Background sweeper closing expired polls
  - locale: Localized API messages
  - models: Domain and request/response types
  - auth: IDs, admin keys, voter tokens and share slugs
  - db: Connections and schema
  - cliparse: Configuration parsing
  - docs: OpenAPI description served at /swagger/

See package documentation for each component.
*/
package main
