package middlewares

import (
	"context"
	"encoding/json"
	"net"
	"net/http"

	"github.com/sbilibin2017/contact-form/internal/logger"
	"github.com/sbilibin2017/contact-form/internal/models"
)

//go:generate mockgen -source=ratelimit.go -destination=ratelimit_mock.go -package=middlewares

// HitCounter records a hit for a client and returns the hits in the current window.
type HitCounter interface {
	Hit(ctx context.Context, client string) (int64, error)
}

// RateLimitMiddleware rejects requests once a client exceeds limit hits per window.
// Counter failures let the request through.
func RateLimitMiddleware(counter HitCounter, limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := clientIP(r)

			hits, err := counter.Hit(r.Context(), client)
			if err != nil {
				logger.Log.Errorw("rate limit check failed", "client", client, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if hits > limit {
				logger.Log.Warnw("rate limit exceeded", "client", client, "hits", hits, "limit", limit)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse{
					Success: false,
					Error:   "Too many requests",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port from RemoteAddr. With TRUST_PROXY set, chi's RealIP has
// already replaced RemoteAddr with the forwarded client address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
