package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/werealtor/aixx/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestID tags every request with a UUID, echoed back in the
// response header and attached to the context logger. Inbound ids are
// reused only when they parse as UUIDs; anything else is replaced so
// log correlation keys stay well formed.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := requestID(r)

			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requestID(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get(requestIDHeader))
	if raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			return id.String()
		}
	}
	return uuid.NewString()
}
