package controllers

import (
	"net/http"

	"github.com/werealtor/aixx/api/responses"
	"github.com/werealtor/aixx/internal/catalog"
	pkgerrors "github.com/werealtor/aixx/pkg/errors"
	"github.com/werealtor/aixx/pkg/logger"
)

const catalogCacheSeconds = 300

// CatalogDocument serves the product catalog exactly as loaded at boot.
func CatalogDocument(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		responses.CacheFor(w, catalogCacheSeconds)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(cat.Raw()); err != nil && logg != nil {
			logg.Warn(logg.WithField(r.Context(), "error", err.Error()), "catalog write failed")
		}
	}
}
