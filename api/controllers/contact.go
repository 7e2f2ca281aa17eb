package controllers

import (
	"net/http"

	"github.com/werealtor/aixx/api/responses"
	"github.com/werealtor/aixx/api/validators"
	contactsvc "github.com/werealtor/aixx/internal/contact"
	pkgerrors "github.com/werealtor/aixx/pkg/errors"
	"github.com/werealtor/aixx/pkg/logger"
)

// ContactSubmit handles the storefront contact form.
func ContactSubmit(svc contactsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contact service unavailable"))
			return
		}

		var payload contactRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := contactsvc.SubmitInput{
			Name:    payload.Name,
			Email:   payload.Email,
			Message: payload.Message,
		}
		if err := svc.Submit(r.Context(), input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.CacheNoStore(w)
		responses.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// Field presence is checked by the service so the client sees the exact
// "Missing fields" message rather than a per-field validator string.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
