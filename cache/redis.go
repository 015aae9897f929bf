package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisStore is a direct pass-through to the official client. Errors
// from the client are returned unchanged; connection management is the
// client's own.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore dials the external store at addr, selecting the given
// logical database.
func NewRedisStore(addr string, db int64) Store {
	return &redisStore{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   int(db),
		}),
	}
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *redisStore) Increment(ctx context.Context, key string) (int64, error) {
	return s.client.Incr(ctx, key).Result()
}

func (s *redisStore) PushList(ctx context.Context, key string, value []byte) error {
	return s.client.RPush(ctx, key, value).Err()
}

func (s *redisStore) ListRange(ctx context.Context, key string, start, stop int64) ([][]byte, error) {
	values, err := s.client.LRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, err
	}

	bs := make([][]byte, len(values))
	for i, v := range values {
		bs[i] = []byte(v)
	}
	return bs, nil
}

func (s *redisStore) Flush(ctx context.Context) error {
	return s.client.FlushDB(ctx).Err()
}
