package controllers

import (
	"net/http"
	"time"

	"github.com/werealtor/aixx/api/responses"
	"github.com/werealtor/aixx/api/validators"
	ordersvc "github.com/werealtor/aixx/internal/orders"
	"github.com/werealtor/aixx/pkg/db/models"
	pkgerrors "github.com/werealtor/aixx/pkg/errors"
	"github.com/werealtor/aixx/pkg/logger"
)

// OrdersList returns a user's order lines, newest first.
func OrdersList(repo ordersvc.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders repository unavailable"))
			return
		}

		userID := validators.QueryStringOr(r, "user_id", "anonymous")

		rows, err := repo.ListByUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "orders lookup failed"))
			return
		}

		out := make([]orderResponse, len(rows))
		for i, row := range rows {
			out[i] = newOrderResponse(row)
		}

		responses.CacheNoStore(w)
		responses.WriteJSON(w, http.StatusOK, out)
	}
}

type orderResponse struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Variant   int       `json:"variant"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

func newOrderResponse(row models.Order) orderResponse {
	return orderResponse{
		ID:        row.ID,
		UserID:    row.UserID,
		ProductID: row.ProductID,
		Variant:   row.Variant,
		Quantity:  row.Quantity,
		Price:     row.Price,
		Total:     row.Total,
		CreatedAt: row.CreatedAt,
	}
}
