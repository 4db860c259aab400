package rate

import (
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed-window limiter backed by a shared Redis
// counter. Use it when several processes share one API quota: each
// window admits at most `limit` requests across all of them.
//
// Limiting is best-effort: when Redis is unreachable the limiter fails
// open and lets the request through, as dropping requests because the
// limiter's own backend is down would turn a soft dependency into a
// hard one.
type RedisLimiter struct {
	client *redis.Client
	key    string
	limit  int64
	window time.Duration
	now    func() time.Time
}

var _ Limiter = &RedisLimiter{}

func NewRedisLimiter(
	client *redis.Client,
	key string,
	limit int64,
	window time.Duration,
) *RedisLimiter {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Second
	}
	return &RedisLimiter{
		client: client,
		key:    key,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (l *RedisLimiter) Limit(req *http.Request) {
	ctx := req.Context()

	for {
		if ctx.Err() != nil {
			return
		}

		window := l.now().UnixNano() / int64(l.window)
		windowKey := fmt.Sprintf("%s:%d", l.key, window)

		n, err := l.client.Incr(ctx, windowKey).Result()
		if err != nil {
			return
		}
		if n == 1 {
			// first request in this window owns the key lifetime;
			// double the window so a slow clock doesn't orphan it
			l.client.Expire(ctx, windowKey, 2*l.window)
		}
		if n <= l.limit {
			return
		}

		remainder := l.window - time.Duration(l.now().UnixNano()%int64(l.window))
		select {
		case <-ctx.Done():
			return
		case <-time.After(remainder):
		}
	}
}
