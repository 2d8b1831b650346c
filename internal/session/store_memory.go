package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/taibuivan/librarydesk/internal/platform/constants"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore is a process-local [Store].
//
// Values are stored JSON-encoded so callers observe the same copy semantics as
// with [RedisStore].
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryStore returns a store whose entries live for ttl. Expired entries are
// swept in the background until ctx is cancelled.
func NewMemoryStore(ctx context.Context, ttl time.Duration) *MemoryStore {
	store := &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}

	go func() {
		ticker := time.NewTicker(constants.SessionCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				store.sweep()
			case <-ctx.Done():
				return
			}
		}
	}()

	return store
}

func (s *MemoryStore) Load(_ context.Context, sessionID, key string, dst any) (bool, error) {
	if sessionID == "" {
		return false, ErrNoSession
	}

	s.mu.Lock()
	entry, ok := s.entries[memoryKey(sessionID, key)]
	s.mu.Unlock()

	if !ok || s.now().After(entry.expiresAt) {
		return false, nil
	}
	if err := json.Unmarshal(entry.value, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID, key string, v any) error {
	if sessionID == "" {
		return ErrNoSession
	}

	value, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.entries[memoryKey(sessionID, key)] = memoryEntry{value: value, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID, key string) error {
	if sessionID == "" {
		return ErrNoSession
	}

	s.mu.Lock()
	delete(s.entries, memoryKey(sessionID, key))
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

// Len returns the number of stored entries, expired ones included until swept.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) sweep() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for k, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, k)
		}
	}
}

func memoryKey(sessionID, key string) string {
	return sessionID + ":" + key
}
