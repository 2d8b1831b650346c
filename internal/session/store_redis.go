package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/librarydesk/internal/platform/constants"
	redisstore "github.com/taibuivan/librarydesk/internal/platform/redis"
)

// RedisStore is a [Store] shared by every console replica.
//
// Keys follow console:session:{sid}:{key}; every save refreshes the TTL.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, sessionID, key string, dst any) (bool, error) {
	if sessionID == "" {
		return false, ErrNoSession
	}

	raw, err := s.client.Get(ctx, redisKey(sessionID, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("session: load %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("session: decode %s: %w", key, err)
	}
	return true, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID, key string, v any) error {
	if sessionID == "" {
		return ErrNoSession
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("session: encode %s: %w", key, err)
	}

	if err := s.client.Set(ctx, redisKey(sessionID, key), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("session: save %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID, key string) error {
	if sessionID == "" {
		return ErrNoSession
	}

	if err := s.client.Del(ctx, redisKey(sessionID, key)).Err(); err != nil {
		return fmt.Errorf("session: delete %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return redisstore.Ping(ctx, s.client)
}

func redisKey(sessionID, key string) string {
	return constants.RedisPrefixSession + sessionID + ":" + key
}
