// Package session keeps per-visit page state between the requests of one browser session.
//
// A page's list is always re-fetched from the backend; only what the original UI held in
// component state lives here: the form, the selected record, the pending delete and the
// notification. Entries expire after the configured TTL.
package session

import (
	"context"
	"errors"
)

// ErrNoSession is returned when a store is used without a session id.
var ErrNoSession = errors.New("session: missing session id")

// Store persists JSON-serializable values per (session id, key).
type Store interface {
	// Load decodes the value stored under key into dst. It reports false when absent.
	Load(ctx context.Context, sessionID, key string, dst any) (bool, error)
	// Save stores v under key and refreshes its expiry.
	Save(ctx context.Context, sessionID, key string, v any) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, sessionID, key string) error
	// Ping reports whether the store is usable.
	Ping(ctx context.Context) error
}
