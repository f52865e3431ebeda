package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/rafaelleal24/glowin/internal/adapters/http/middleware"
)

// fixedWindow counts a hit and returns {count, remaining window in ms}.
var fixedWindow = goredis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return {count, redis.call('PTTL', KEYS[1])}
`)

type RateLimiter struct {
	client *Client
}

func NewRateLimiter(client *Client) middleware.RateLimiter {
	return &RateLimiter{client: client}
}

func (r *RateLimiter) Take(ctx context.Context, key string, limit int, window time.Duration) (middleware.Quota, error) {
	redisKey := r.client.Key("ratelimit", key)
	res, err := fixedWindow.Run(ctx, r.client.rdb, []string{redisKey}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return middleware.Quota{}, fmt.Errorf("rate limit %s: %w", redisKey, err)
	}
	if len(res) != 2 {
		return middleware.Quota{}, fmt.Errorf("rate limit %s: unexpected reply %v", redisKey, res)
	}

	count, ttl := int(res[0]), time.Duration(res[1])*time.Millisecond
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return middleware.Quota{
		Allowed:   count <= limit,
		Remaining: remaining,
		ResetIn:   ttl,
	}, nil
}
