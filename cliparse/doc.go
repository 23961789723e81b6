// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

LoadEnv reads an optional .env file, then ParseFlags returns a Config struct
with all settings:

	if err := cliparse.LoadEnv(); err != nil {
		return err
	}
	cfg, err := cliparse.ParseFlags(args)

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminKeySalt: Secret for admin key HMAC (required)
  - PollSlugSalt: Secret for share slug generation (required)
  - BaseURL: Prefix for share links (default: http://localhost:3318)
  - LogFormat: auto, text or json (default: auto)
  - ExpirySweepInterval: How often expired polls are closed (default: 1m, 0 disables)

# CLI Flags

	-p                Server port
	-d                Database URL
	-t                Database type
	--base-url        Public base URL
	--log-format      Log format
	--sweep-interval  Expiry sweep interval
	--admin-salt      Admin key salt
	--slug-salt       Poll slug salt

# Environment Variables

Flags fall back to environment variables:

	PORT                  → -p
	DATABASE_URL          → -d
	DATABASE_TYPE         → -t
	BASE_URL              → --base-url
	LOG_FORMAT            → --log-format
	EXPIRY_SWEEP_INTERVAL → --sweep-interval
	ADMIN_KEY_SALT        → --admin-salt
	POLL_SLUG_SALT        → --slug-salt

CLI flags take precedence over environment variables, and variables already
in the environment take precedence over the .env file.

# Validation

ParseFlags returns an error if required values are missing or malformed:

  - DATABASE_URL must be provided
  - ADMIN_KEY_SALT must be provided
  - POLL_SLUG_SALT must be provided
  - DATABASE_TYPE and LOG_FORMAT must be one of the known values
*/
package cliparse
