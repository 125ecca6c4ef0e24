// Package cache stores solved move strings keyed by the hash of the maze
// image, so a maze seen twice is answered without decoding it again.
//
// Three backends implement [Cache]:
//
//   - [FileCache] keeps one JSON file per entry under a local directory,
//     for the CLI.
//   - [RedisCache] shares entries between server replicas.
//   - [NullCache] stores nothing, for --no-cache and tests.
//
// Keys are produced by a [Keyer] so that every option that changes the
// answer (alphabet, layout) is part of the key.
package cache

import (
	"context"
	"time"
)

// Default time-to-live values for cached entries.
const (
	// TTLMoves is how long a solved move string stays cached. A given
	// image always yields the same answer, so the value is generous.
	TTLMoves = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key-value store with expiration.
//
// Get reports a miss with ok == false and a nil error; errors are reserved
// for backend failures. A ttl of zero means no expiration.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by backends that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) error
}
