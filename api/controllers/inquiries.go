package controllers

import (
	"net/http"

	"github.com/chronos-atelier/chronos-backend/api/responses"
	"github.com/chronos-atelier/chronos-backend/api/validators"
	"github.com/chronos-atelier/chronos-backend/internal/inquiries"
	pkgerrors "github.com/chronos-atelier/chronos-backend/pkg/errors"
	"github.com/chronos-atelier/chronos-backend/pkg/logger"
)

// InquiriesSubmit stores one contact-form submission.
func InquiriesSubmit(svc inquiries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "inquiries service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body inquiries.SubmitRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Submit(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// InquiriesList returns every stored inquiry for the back office.
func InquiriesList(svc inquiries.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "inquiries service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
