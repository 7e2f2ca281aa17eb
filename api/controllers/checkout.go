package controllers

import (
	"net/http"

	"github.com/werealtor/aixx/api/responses"
	"github.com/werealtor/aixx/api/validators"
	checkoutsvc "github.com/werealtor/aixx/internal/checkout"
	pkgerrors "github.com/werealtor/aixx/pkg/errors"
	"github.com/werealtor/aixx/pkg/logger"
)

// CheckoutCreate records the cart as order rows and opens a payment
// session, returning its identifier.
func CheckoutCreate(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		// An unparseable body reads as an empty cart, so the client sees
		// "Empty cart" rather than a decoder message.
		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			payload = checkoutRequest{}
		}

		input := checkoutsvc.Input{
			Cart:   payload.Cart,
			UserID: payload.UserID,
			Origin: r.Header.Get("Origin"),
		}
		result, err := svc.Execute(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.CacheNoStore(w)
		responses.WriteJSON(w, http.StatusOK, map[string]string{"sessionId": result.SessionID})
	}
}

type checkoutRequest struct {
	Cart   []checkoutsvc.LineItem `json:"cart"`
	UserID string                 `json:"userId"`
}
