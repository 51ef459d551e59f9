package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/realestate-seo-api/pkg/metrics"
)

// Instrument registra contagem e latência da rota usando o padrão registrado no router
func Instrument(method, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			metrics.RecordRequest(method, route, lrw.statusCode, time.Since(startTime))
		})
	}
}
