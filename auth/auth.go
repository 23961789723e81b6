// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidAdminKey   = errors.New("invalid admin key")
	ErrInvalidVoterToken = errors.New("invalid voter token")
)

// NewID returns a random UUID string for polls, options and votes
func NewID() string {
	return uuid.NewString()
}

// GenerateAdminKey creates an HMAC-based admin key for a poll
// This is deterministic and verifiable, so it never needs to be stored
func GenerateAdminKey(pollID, salt string) string {
	return signURLSafe("admin:"+pollID, salt)
}

// ValidateAdminKey checks if the provided admin key is valid for the poll
func ValidateAdminKey(pollID, adminKey, salt string) error {
	if adminKey == "" {
		return ErrInvalidAdminKey
	}
	expected := GenerateAdminKey(pollID, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// GenerateVoterToken creates a random secure token for a voter
// It groups one voter's rows and authorizes later edits and withdrawals
func GenerateVoterToken() (string, error) {
	b := make([]byte, 24) // 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate voter token: %w", err)
	}
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// ValidateVoterToken rejects tokens that could not have come from GenerateVoterToken
func ValidateVoterToken(token string) error {
	if len(token) != 32 {
		return ErrInvalidVoterToken
	}
	if _, err := base64.RawURLEncoding.DecodeString(token); err != nil {
		return ErrInvalidVoterToken
	}
	return nil
}

// GenerateShareSlug creates a short, deterministic URL slug for a poll
// Uses HMAC for determinism and base62 encoding for URL-friendliness
func GenerateShareSlug(pollID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(pollID))
	sum := h.Sum(nil)

	return base62Encode(sum[:8])
}

const base62Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// base62Encode reads up to 8 bytes as a big-endian integer and renders it
// in base62 (0-9, a-z, A-Z)
func base62Encode(data []byte) string {
	if len(data) > 8 {
		data = data[:8]
	}

	var num uint64
	for _, b := range data {
		num = num<<8 | uint64(b)
	}

	var buf [11]byte // max length for uint64
	i := len(buf)
	for {
		i--
		buf[i] = base62Alphabet[num%62]
		num /= 62
		if num == 0 {
			break
		}
	}
	return string(buf[i:])
}

// HashIP returns a keyed hash of a client address for spotting repeat voters.
// The "ip:" scope keeps it apart from admin keys signed with the same salt.
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte("ip:" + ip))
	sum := h.Sum(nil)
	// 64 bits is enough to spot repeat voters
	return hex.EncodeToString(sum[:8])
}

func signURLSafe(message, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(message))
	return strings.TrimRight(base64.URLEncoding.EncodeToString(h.Sum(nil)), "=")
}
