package session

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCartStore keeps each session's cart in a redis hash with a
// sliding TTL, so abandoned carts expire on their own.
type RedisCartStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCartStore(rdb *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{rdb: rdb, ttl: ttl}
}

func (s *RedisCartStore) Get(ctx context.Context, sessionID string) (Cart, error) {
	raw, err := s.rdb.HGetAll(ctx, CartKey(sessionID)).Result()
	if err != nil {
		return nil, err
	}
	cart := make(Cart, len(raw))
	for k, v := range raw {
		pid, err := strconv.ParseUint(k, 10, 32)
		if err != nil {
			continue
		}
		qty, err := strconv.Atoi(v)
		if err != nil || qty <= 0 {
			continue
		}
		cart[uint(pid)] = qty
	}
	return cart, nil
}

func (s *RedisCartStore) Add(ctx context.Context, sessionID string, productID uint, qty int) error {
	key := CartKey(sessionID)
	field := strconv.FormatUint(uint64(productID), 10)
	if err := s.rdb.HIncrBy(ctx, key, field, int64(qty)).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, s.ttl).Err()
}

func (s *RedisCartStore) SetQuantity(ctx context.Context, sessionID string, productID uint, qty int) error {
	if qty <= 0 {
		return s.Remove(ctx, sessionID, productID)
	}
	key := CartKey(sessionID)
	field := strconv.FormatUint(uint64(productID), 10)
	if err := s.rdb.HSet(ctx, key, field, qty).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, s.ttl).Err()
}

func (s *RedisCartStore) Remove(ctx context.Context, sessionID string, productID uint) error {
	field := strconv.FormatUint(uint64(productID), 10)
	return s.rdb.HDel(ctx, CartKey(sessionID), field).Err()
}

func (s *RedisCartStore) Clear(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, CartKey(sessionID)).Err()
}
