package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/werealtor/aixx/api/controllers"
	"github.com/werealtor/aixx/api/middleware"
	"github.com/werealtor/aixx/internal/catalog"
	checkoutsvc "github.com/werealtor/aixx/internal/checkout"
	contactsvc "github.com/werealtor/aixx/internal/contact"
	"github.com/werealtor/aixx/internal/orders"
	"github.com/werealtor/aixx/internal/stock"
	uploadsvc "github.com/werealtor/aixx/internal/uploads"
	"github.com/werealtor/aixx/pkg/config"
	"github.com/werealtor/aixx/pkg/logger"
	"github.com/werealtor/aixx/pkg/metrics"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	Metrics  *metrics.RequestMetrics
	Registry *prometheus.Registry

	DB  controllers.Pinger
	GCS controllers.Pinger

	ContactService  contactsvc.Service
	UploadService   uploadsvc.Service
	CheckoutService checkoutsvc.Service
	StockRepo       stock.Repository
	OrdersRepo      orders.Repository
	Catalog         *catalog.Catalog
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.GCS))
	})

	r.Post("/contact", controllers.ContactSubmit(deps.ContactService, logg))
	r.Post("/upload", controllers.UploadCustomImage(deps.UploadService, cfg.Upload.MaxUploadMB, logg))
	r.Post("/checkout", controllers.CheckoutCreate(deps.CheckoutService, logg))
	r.Get("/check-stock", controllers.StockCheck(deps.StockRepo, logg))
	r.Get("/orders", controllers.OrdersList(deps.OrdersRepo, logg))
	r.Get("/config.json", controllers.CatalogDocument(deps.Catalog, logg))

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	return r
}
