package controllers

import (
	"net/http"

	"github.com/chronos-atelier/chronos-backend/api/responses"
	"github.com/chronos-atelier/chronos-backend/api/validators"
	"github.com/chronos-atelier/chronos-backend/internal/settings"
	pkgerrors "github.com/chronos-atelier/chronos-backend/pkg/errors"
	"github.com/chronos-atelier/chronos-backend/pkg/logger"
)

// SettingsGet returns the landing-page settings merged over the defaults.
// A read failure degrades to the default copy so the landing page renders.
func SettingsGet(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Get(r.Context())
		if err != nil {
			if logg != nil {
				logg.Error(r.Context(), "settings read degraded to defaults", err)
			}
			fallback := settings.Defaults()
			responses.WriteSuccess(w, &fallback)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// SettingsUpdate overwrites the landing-page settings.
func SettingsUpdate(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body settings.SettingsInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Update(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
