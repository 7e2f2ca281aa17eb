package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/werealtor/aixx/api/routes"
	"github.com/werealtor/aixx/internal/catalog"
	"github.com/werealtor/aixx/internal/checkout"
	"github.com/werealtor/aixx/internal/contact"
	"github.com/werealtor/aixx/internal/orders"
	"github.com/werealtor/aixx/internal/stock"
	"github.com/werealtor/aixx/internal/uploads"
	"github.com/werealtor/aixx/pkg/config"
	"github.com/werealtor/aixx/pkg/db"
	"github.com/werealtor/aixx/pkg/email"
	"github.com/werealtor/aixx/pkg/logger"
	"github.com/werealtor/aixx/pkg/metrics"
	"github.com/werealtor/aixx/pkg/migrate"
	"github.com/werealtor/aixx/pkg/storage/gcs"
	"github.com/werealtor/aixx/pkg/stripe"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	gcsClient, err := gcs.NewClient(context.Background(), cfg.GCS, cfg.GCP, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap object storage", err)
		os.Exit(1)
	}

	stripeClient, err := stripe.NewClient(context.Background(), cfg.Stripe, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap stripe", err)
		os.Exit(1)
	}

	mailClient, err := email.NewClient(context.Background(), cfg.Sendgrid, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap sendgrid", err)
		os.Exit(1)
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logg.Error(context.Background(), "failed to load catalog", err)
		os.Exit(1)
	}

	contactService, err := contact.NewService(
		contact.NewRepository(dbClient.DB()),
		mailSender(mailClient),
		cfg.Sendgrid.ContactReceiver,
		logg,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create contact service", err)
		os.Exit(1)
	}

	uploadService, err := uploads.NewService(
		uploads.NewRepository(dbClient.DB()),
		gcsClient,
		cfg.Upload.MaxUploadMB,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create upload service", err)
		os.Exit(1)
	}

	ordersRepo := orders.NewRepository(dbClient.DB())
	checkoutService, err := checkout.NewService(
		ordersRepo,
		checkout.NewSessionCreator(stripeClient),
		cfg.CORS.DefaultOrigin,
		logg,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:          cfg,
			Logger:          logg,
			Metrics:         metrics.NewRequestMetrics(registry),
			Registry:        registry,
			DB:              dbClient,
			GCS:             gcsClient,
			ContactService:  contactService,
			UploadService:   uploadService,
			CheckoutService: checkoutService,
			StockRepo:       stock.NewRepository(dbClient.DB()),
			OrdersRepo:      ordersRepo,
			Catalog:         cat,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

// mailSender avoids handing the contact service a non-nil interface
// wrapping a nil client when SendGrid is not configured.
func mailSender(c *email.Client) email.Sender {
	if c == nil {
		return nil
	}
	return c
}
