package controllers

import (
	"context"
	"net/http"

	"github.com/werealtor/aixx/api/responses"
	"github.com/werealtor/aixx/pkg/config"
	pkgerrors "github.com/werealtor/aixx/pkg/errors"
	"github.com/werealtor/aixx/pkg/logger"
)

// Pinger is the dependency health surface checked by readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Xxkit-Env", cfg.App.Env)
		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when every registered dependency
// answers its ping. Nil pingers are skipped so optional dependencies do
// not block readiness.
func HealthReady(cfg *config.Config, logg *logger.Logger, pingers ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Xxkit-Env", cfg.App.Env)

		for _, p := range pingers {
			if p == nil {
				continue
			}
			if err := p.Ping(r.Context()); err != nil {
				typed := pkgerrors.Wrap(pkgerrors.CodeDependency, err, "dependency not ready")
				if logg != nil {
					logg.Warn(logg.WithField(r.Context(), "error", err.Error()), "readiness probe failed")
				}
				responses.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"error": typed.Message()})
				return
			}
		}

		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
