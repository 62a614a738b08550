package helpers

import (
	"context"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes a redis client
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

const statsKeyPrefix = "stats:op:"

// CountOp increments the per-operation request counter. Fail-open: a
// dead Redis never blocks request handling.
func CountOp(ctx context.Context, rdb *redis.Client, op string) {
	if rdb == nil || op == "" {
		return
	}
	_ = rdb.Incr(ctx, statsKeyPrefix+op).Err()
}

// ReadOpStats returns all per-operation counters keyed by operation name.
func ReadOpStats(ctx context.Context, rdb *redis.Client) (map[string]int64, error) {
	if rdb == nil {
		return map[string]int64{}, nil
	}
	out := map[string]int64{}
	iter := rdb.Scan(ctx, 0, statsKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		val, err := rdb.Get(ctx, key).Result()
		if err != nil {
			continue
		}
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			continue
		}
		out[strings.TrimPrefix(key, statsKeyPrefix)] = n
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
