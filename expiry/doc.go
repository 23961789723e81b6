// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package expiry closes polls once their expires_at has passed.
//
// The vote handler already refuses votes on expired polls; the sweeper makes
// the closed status visible to readers and the dashboard.
package expiry
