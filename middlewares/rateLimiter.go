package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"follower-tracker/kvstore"
)

// RateLimitRedisStore is set by main when Redis is configured. When nil, the
// limiter passes every request through.
var RateLimitRedisStore *kvstore.RedisStore

// APIRateLimitMiddleware throttles an endpoint to maxRequest calls per IP
// per minute. Every /update hit fans out to Bilibili and YouTube, so the
// limiter keeps a misbehaving trigger from hammering the platform APIs.
func APIRateLimitMiddleware(maxRequest int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RateLimitRedisStore == nil {
				next.ServeHTTP(w, r)
				return
			}

			ip := getIPAddress(r)
			key := "rate:" + ip + ":" + r.URL.Path
			ctx := RateLimitRedisStore.Ctx

			count, err := RateLimitRedisStore.Client.Incr(ctx, key).Result()
			if err != nil {
				// In case of error, let the request pass.
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(maxRequest, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(maxRequest-count, 10))

			// If this is the first request, set an expiry of 1 minute.
			if count == 1 {
				RateLimitRedisStore.Client.Expire(ctx, key, time.Minute)
			}

			ttl, err := RateLimitRedisStore.Client.TTL(ctx, key).Result()
			if err == nil && ttl > 0 {
				w.Header().Set("X-RateLimit-Reset", strconv.Itoa(int(ttl.Seconds())))
			} else {
				w.Header().Set("X-RateLimit-Reset", "60")
			}

			if count > maxRequest {
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte("Rate limit exceeded. Try again later."))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
