package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/cannaconscious/booking-api/internal/httperr"
)

// RateLimiter is a fixed-window limiter backed by Redis, keyed by client IP.
// It sits in front of the public form endpoints only.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	log    *logrus.Logger
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func NewRateLimiter(rdb *redis.Client, limit int, windowSecs int, log *logrus.Logger) *RateLimiter {
	if limit <= 0 {
		limit = 20
	}
	if windowSecs <= 0 {
		windowSecs = 60
	}
	return &RateLimiter{
		rdb:    rdb,
		limit:  limit,
		window: time.Duration(windowSecs) * time.Second,
		log:    log,
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rl:" + c.ClientIP()

		count, err := rl.incr(c.Request.Context(), key)
		if err != nil {
			// fail open: a limiter outage must not take the forms down
			rl.log.WithError(err).Warn("rate limiter unavailable")
			c.Next()
			return
		}

		if count > int64(rl.limit) {
			httperr.Write(c, http.StatusTooManyRequests, "rate_limited", "Too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) incr(ctx context.Context, key string) (int64, error) {
	res, err := fixedWindowScript.Run(ctx, rl.rdb, []string{key}, rl.window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}

	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, nil
	}
}
