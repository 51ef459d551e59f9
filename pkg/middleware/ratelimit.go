package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/realestate-seo-api/pkg/apiErrors"
	"github.com/vfg2006/realestate-seo-api/pkg/log"
	"github.com/vfg2006/realestate-seo-api/pkg/metrics"
)

// RateDecision é o resultado da contagem de uma chave dentro da janela
type RateDecision struct {
	Allowed   bool
	Count     int
	WindowEnd time.Time
}

// RateLimiter conta requisições por chave em janelas fixas
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) RateDecision
}

// RateLimit limita requisições por IP; sem limiter ou com limite <= 0 nada é bloqueado
func RateLimit(limiter RateLimiter, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil || limit <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := limiter.Allow(r.Context(), "ip:"+clientIP(r), limit, window)

			remaining := max(limit-decision.Count, 0)
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if !decision.WindowEnd.IsZero() {
				w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(decision.WindowEnd.Unix(), 10))
			}

			if !decision.Allowed {
				metrics.RecordRateLimitHit(r.URL.Path)
				log.ForContext(r.Context()).WithFields(log.Fields{
					"path":  r.URL.Path,
					"count": decision.Count,
				}).Warn("Limite de requisições excedido")

				retryAfter := int(time.Until(decision.WindowEnd).Seconds()) + 1
				if retryAfter > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				}

				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if forwarded := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); forwarded != "" {
		if ip := strings.TrimSpace(strings.Split(forwarded, ",")[0]); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err != nil {
		host = strings.TrimSpace(r.RemoteAddr)
	}
	if host == "" {
		return "unknown"
	}

	return host
}
