package controllers

import (
	"net/http"

	"github.com/chronos-atelier/chronos-backend/api/responses"
	"github.com/chronos-atelier/chronos-backend/internal/bootstrap"
	"github.com/chronos-atelier/chronos-backend/pkg/config"
	pkgerrors "github.com/chronos-atelier/chronos-backend/pkg/errors"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Chronos-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only after the warm-up pass has completed.
func HealthReady(cfg *config.Config, loader *bootstrap.Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Chronos-Env", cfg.App.Env)

		if loader != nil && !loader.Ready() {
			err := pkgerrors.New(pkgerrors.CodeDependency, "warming up")
			responses.WriteError(r.Context(), nil, w, err)
			return
		}

		payload := map[string]any{"status": "ready"}
		if loader != nil {
			if failures := loader.Failures(); len(failures) > 0 {
				degraded := make([]string, 0, len(failures))
				for name := range failures {
					degraded = append(degraded, name)
				}
				payload["degraded"] = degraded
			}
		}
		responses.WriteSuccess(w, payload)
	}
}
