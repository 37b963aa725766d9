package ratelimit

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

type redisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRedisFromURL connects to the store and pings it so a bad URL fails at
// startup, not on the first request.
func NewRedisFromURL(url string, limit int, window time.Duration) (Limiter, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedis(client, limit, window), nil
}

func NewRedis(client *redis.Client, limit int, window time.Duration) Limiter {
	return &redisLimiter{client: client, limit: limit, window: window}
}

// Allow keeps one sorted set per key, scored by request time in nanoseconds.
// Entries older than the window are pruned, then the request is admitted and
// recorded only if the set is still under the limit. Denied requests are not
// recorded, so the window tracks admitted traffic.
func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()
	cutoff := strconv.FormatInt(now.Add(-l.window).UnixNano(), 10)
	k := "ratelimit:" + key

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, k, "0", cutoff)
	count := pipe.ZCard(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	if count.Val() >= int64(l.limit) {
		return false, nil
	}

	record := l.client.TxPipeline()
	record.ZAdd(ctx, k, &redis.Z{
		Score:  float64(now.UnixNano()),
		Member: now.UnixNano(),
	})
	record.Expire(ctx, k, l.window)
	if _, err := record.Exec(ctx); err != nil {
		return false, err
	}

	return true, nil
}
