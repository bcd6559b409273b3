package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
)

// getRateLimitForEndpoint determines which rate limit to apply based on config.
func (mw *Middleware) getRateLimitForEndpoint(path string) (int, time.Duration) {
	// Auth endpoints - strictest limits
	if strings.HasPrefix(path, "/api/auth") {
		return mw.cfg.RateLimit.AuthLimit, mw.cfg.RateLimit.AuthWindow
	}

	// Admin endpoints
	if strings.HasPrefix(path, "/api/admin") {
		return mw.cfg.RateLimit.AdminLimit, mw.cfg.RateLimit.AdminWindow
	}

	// Default limit for everything else
	return mw.cfg.RateLimit.GeneralLimit, mw.cfg.RateLimit.GeneralWindow
}

// getClientIP extracts the real client IP from request headers.
func (mw *Middleware) getClientIP(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs, take the first one
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}

	return ip
}

// normalizeEndpoint groups dynamic routes by their base path so rate-limit
// buckets don't explode per resource id: everything past the second path
// segment (ids, tracking codes, sub-actions) is dropped. The rate limit tier
// is chosen by prefix before normalization, so collapsing /api/admin/* into
// one bucket still applies the admin limit.
func normalizeEndpoint(path string) string {
	path = strings.TrimSuffix(path, "/")

	parts := strings.Split(path, "/")
	if len(parts) > 3 {
		return strings.Join(parts[:3], "/")
	}
	return path
}

// RateLimit throttles requests per client IP and endpoint group using Redis
// counters. When Redis is unavailable the limiter fails open.
func (mw *Middleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limit, window := mw.getRateLimitForEndpoint(r.URL.Path)

			key := fmt.Sprintf("%s:%s", mw.getClientIP(r), normalizeEndpoint(r.URL.Path))
			count, err := mw.cacheService.IncrementRateLimit(key, window)
			if err != nil {
				mw.logger.Warn("Rate limiter unavailable, failing open", gecho.Field("error", err))
				next.ServeHTTP(w, r)
				return
			}

			if count > int64(limit) {
				w.Header().Set("Retry-After", fmt.Sprintf("%.0f", window.Seconds()))
				gecho.TooManyRequests(w,
					gecho.WithMessage("Rate limit exceeded"),
					gecho.Send(),
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
