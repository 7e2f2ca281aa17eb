package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werealtor/aixx/pkg/db/models"
)

type stubOrdersRepo struct {
	rows      []models.Order
	err       error
	gotUserID string
}

func (s *stubOrdersRepo) Create(ctx context.Context, order *models.Order) error {
	return nil
}

func (s *stubOrdersRepo) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	s.gotUserID = userID
	if s.err != nil {
		return nil, s.err
	}
	return s.rows, nil
}

func TestOrdersList(t *testing.T) {
	makeRequest := func(stub *stubOrdersRepo, target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		OrdersList(stub, testLogger()).ServeHTTP(rec, req)
		return rec
	}

	t.Run("success", func(t *testing.T) {
		created := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
		stub := &stubOrdersRepo{rows: []models.Order{
			{ID: 2, UserID: "u1", ProductID: "sku2", Quantity: 1, Price: 4.5, Total: 4.5, CreatedAt: created},
			{ID: 1, UserID: "u1", ProductID: "sku1", Quantity: 2, Price: 9.99, Total: 19.98, CreatedAt: created.Add(-time.Minute)},
		}}
		rec := makeRequest(stub, "/orders?user_id=u1")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "u1", stub.gotUserID)

		var body []orderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 2)
		assert.Equal(t, "sku2", body[0].ProductID)
		assert.InDelta(t, 19.98, body[1].Total, 1e-9)
	})

	t.Run("user defaults to anonymous", func(t *testing.T) {
		stub := &stubOrdersRepo{}
		makeRequest(stub, "/orders")
		assert.Equal(t, "anonymous", stub.gotUserID)
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		rec := makeRequest(&stubOrdersRepo{}, "/orders?user_id=u9")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("lookup failure is classified", func(t *testing.T) {
		stub := &stubOrdersRepo{err: assertableError("pq: down")}
		rec := makeRequest(stub, "/orders?user_id=u1")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"orders lookup failed"}`, rec.Body.String())
	})
}
