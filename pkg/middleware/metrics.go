package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Gabryellzs/blecks-david-sub000/pkg/metrics"
)

// MetricsMiddleware registra contagem e duração das requisições HTTP no
// coletor Prometheus da aplicação
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			metrics.ObserveHTTPRequest(
				r.Method,
				r.URL.Path,
				strconv.Itoa(lrw.statusCode),
				time.Since(startTime),
			)
		})
	}
}
