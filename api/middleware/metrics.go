package middleware

import (
	"net/http"
	"time"

	"github.com/werealtor/aixx/pkg/metrics"
)

// Metrics records request counts and latency for every handled route.
func Metrics(m *metrics.RequestMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m == nil {
				next.ServeHTTP(w, r)
				return
			}

			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(rec, r)

			if rec.status == 0 {
				rec.status = http.StatusOK
			}
			m.Observe(r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}
