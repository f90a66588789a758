// Package cache stores downloaded puzzle inputs and memoised solver results.
//
// Three backends implement [Cache]:
//   - [FileCache]: JSON entry files under the user cache directory (CLI default)
//   - [RedisCache]: a shared Redis instance, for several machines or CI runners
//   - [NullCache]: disables caching (--refresh, tests)
//
// Keys are produced by a [Keyer] so every backend uses the same layout.
// A [ScopedKeyer] prefixes keys per puzzle account, because two accounts
// receive different inputs for the same day.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored bytes and whether the key was present.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 keeps the entry forever.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Entry lifetimes.
const (
	// TTLInput keeps puzzle inputs forever; they never change once unlocked.
	TTLInput time.Duration = 0

	// TTLResult bounds memoised answers so edits to a solver are picked up
	// eventually even without --refresh.
	TTLResult = 7 * 24 * time.Hour
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
