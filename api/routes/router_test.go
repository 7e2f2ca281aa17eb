package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werealtor/aixx/internal/catalog"
	checkoutsvc "github.com/werealtor/aixx/internal/checkout"
	contactsvc "github.com/werealtor/aixx/internal/contact"
	uploadsvc "github.com/werealtor/aixx/internal/uploads"
	"github.com/werealtor/aixx/pkg/config"
	"github.com/werealtor/aixx/pkg/db/models"
	"github.com/werealtor/aixx/pkg/logger"
	"github.com/werealtor/aixx/pkg/metrics"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubContact struct{}

func (stubContact) Submit(context.Context, contactsvc.SubmitInput) error { return nil }

type stubUploads struct{}

func (stubUploads) Store(context.Context, uploadsvc.StoreInput) (*uploadsvc.StoreResult, error) {
	return &uploadsvc.StoreResult{URL: "https://cdn.xxkit.com/1-a.png"}, nil
}

type stubCheckout struct{}

func (stubCheckout) Execute(context.Context, checkoutsvc.Input) (*checkoutsvc.Result, error) {
	return &checkoutsvc.Result{SessionID: "cs_test_1"}, nil
}

type stubStock struct{}

func (stubStock) GetQuantity(context.Context, string, int) (int, error) { return 5, nil }

type stubOrders struct{}

func (stubOrders) Create(context.Context, *models.Order) error { return nil }

func (stubOrders) ListByUser(context.Context, string) ([]models.Order, error) { return nil, nil }

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	catalogPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(`{"products":[]}`), 0o644))
	cat, err := catalog.Load(catalogPath)
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.Upload.MaxUploadMB = 10
	cfg.CORS.AllowedOrigins = []string{"https://xxkit.com"}

	return NewRouter(Deps{
		Config:          cfg,
		Logger:          logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
		Metrics:         metrics.NewRequestMetrics(registry),
		Registry:        registry,
		DB:              stubPinger{},
		GCS:             stubPinger{},
		ContactService:  stubContact{},
		UploadService:   stubUploads{},
		CheckoutService: stubCheckout{},
		StockRepo:       stubStock{},
		OrdersRepo:      stubOrders{},
		Catalog:         cat,
	})
}

func TestRouterEndpoints(t *testing.T) {
	router := testRouter(t)

	do := func(method, target, body string) *httptest.ResponseRecorder {
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, target, reader)
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("health", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(http.MethodGet, "/health/live", "").Code)
		assert.Equal(t, http.StatusOK, do(http.MethodGet, "/health/ready", "").Code)
	})

	t.Run("contact", func(t *testing.T) {
		rec := do(http.MethodPost, "/contact", `{"name":"Al","email":"a@b.co","message":"hi"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	})

	t.Run("checkout", func(t *testing.T) {
		rec := do(http.MethodPost, "/checkout", `{"cart":[{"id":"sku1"}]}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"sessionId":"cs_test_1"}`, rec.Body.String())
	})

	t.Run("check-stock", func(t *testing.T) {
		rec := do(http.MethodGet, "/check-stock?id=sku1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"stock":5}`, rec.Body.String())
	})

	t.Run("orders", func(t *testing.T) {
		rec := do(http.MethodGet, "/orders?user_id=u1", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("catalog", func(t *testing.T) {
		rec := do(http.MethodGet, "/config.json", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"products":[]}`, rec.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		rec := do(http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "http_requests_total")
	})

	t.Run("unknown route", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, do(http.MethodGet, "/nope", "").Code)
	})
}

func TestRouterCORSPreflight(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/contact", nil)
	req.Header.Set("Origin", "https://xxkit.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://xxkit.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
