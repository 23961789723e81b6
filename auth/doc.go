// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth issues and checks the credentials a poll hands out. Admin keys
are never stored; they are recomputed on every request.

# Admin Keys

CreatePoll returns an admin key once. It is the unpadded base64url HMAC-SHA256
of "admin:" + poll ID under ADMIN_KEY_SALT:

	key := auth.GenerateAdminKey(pollID, cfg.AdminKeySalt)

Handlers under /polls/{id}/... recompute it and compare in constant time via
ValidateAdminKey; any mismatch is ErrInvalidAdminKey and a 401. Rotating the
salt invalidates every outstanding key.

# Voter Tokens

A voter's first SubmitVotes call returns a fresh 32-character token from
GenerateVoterToken. Sending it back in X-Voter-Token lets the same voter:

  - replace their response set, when the poll allows vote edits
  - read it back through GetMyVotes
  - withdraw it, when the poll allows withdrawal

ValidateVoterToken rejects anything GenerateVoterToken could not have made,
so a garbled header fails with 401 before the database is touched.

# Share Slugs

PublishPoll derives the public slug from the poll ID under POLL_SLUG_SALT:

	slug := auth.GenerateShareSlug(pollID, cfg.PollSlugSalt)

The first 64 bits of the HMAC are rendered in base62, at most 11 characters.

# Client Addresses

Vote rows keep HashIP(clientIP, salt), a 16 hex character HMAC scoped with
"ip:". Submissions compare it to flag new voters arriving from an address the
poll has already seen.

# IDs

Polls, options and votes use random UUIDs from NewID.
*/
package auth
