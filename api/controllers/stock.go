package controllers

import (
	"net/http"

	"github.com/werealtor/aixx/api/responses"
	"github.com/werealtor/aixx/api/validators"
	stocksvc "github.com/werealtor/aixx/internal/stock"
	pkgerrors "github.com/werealtor/aixx/pkg/errors"
	"github.com/werealtor/aixx/pkg/logger"
)

const stockCacheSeconds = 60

// StockCheck reports available quantity for a product/variant pair.
// Unknown pairs report zero; only a missing id is an error.
func StockCheck(repo stocksvc.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stock repository unavailable"))
			return
		}

		id := r.URL.Query().Get("id")
		if id == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "Missing id"))
			return
		}
		variant := validators.QueryIntOr(r, "variant", 0)

		qty, err := repo.GetQuantity(r.Context(), id, variant)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "stock lookup failed"))
			return
		}

		responses.CacheFor(w, stockCacheSeconds)
		responses.WriteJSON(w, http.StatusOK, map[string]int{"stock": qty})
	}
}
