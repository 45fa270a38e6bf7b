package session

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTokenStore keeps auth sessions in redis so they survive server
// restarts and expire with the configured TTL.
type RedisTokenStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisTokenStore(rdb *redis.Client, ttl time.Duration) *RedisTokenStore {
	return &RedisTokenStore{rdb: rdb, ttl: ttl}
}

func (s *RedisTokenStore) Put(ctx context.Context, token string, userID uint) error {
	return s.rdb.Set(ctx, AuthKey(token), userID, s.ttl).Err()
}

func (s *RedisTokenStore) Lookup(ctx context.Context, token string) (uint, bool, error) {
	v, err := s.rdb.Get(ctx, AuthKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, false, err
	}
	return uint(id), true, nil
}

func (s *RedisTokenStore) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, AuthKey(token)).Err()
}

// MemoryTokenStore backs tests.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]uint
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]uint)}
}

func (s *MemoryTokenStore) Put(_ context.Context, token string, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = userID
	return nil
}

func (s *MemoryTokenStore) Lookup(_ context.Context, token string) (uint, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.tokens[token]
	return id, ok, nil
}

func (s *MemoryTokenStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}
