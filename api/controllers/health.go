package controllers

import (
	"context"
	"net/http"

	"github.com/kwojtas/vanstock-backend/api/responses"
	"github.com/kwojtas/vanstock-backend/pkg/config"
	pkgerrors "github.com/kwojtas/vanstock-backend/pkg/errors"
	"github.com/kwojtas/vanstock-backend/pkg/logger"
)

// Pinger is the reachability check both backing stores expose.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-VanStock-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness only when both the database and the
// session store answer a ping.
func HealthReady(cfg *config.Config, database, sessions Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("X-VanStock-Env", cfg.App.Env)

		if database == nil || sessions == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "health checks not configured"))
			return
		}
		if err := database.Ping(ctx); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
			return
		}
		if err := sessions.Ping(ctx); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "session store unreachable"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
