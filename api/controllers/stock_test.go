package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStockRepo struct {
	quantities map[string]int
	err        error

	gotProductID string
	gotVariant   int
}

func (s *stubStockRepo) GetQuantity(ctx context.Context, productID string, variant int) (int, error) {
	s.gotProductID = productID
	s.gotVariant = variant
	if s.err != nil {
		return 0, s.err
	}
	return s.quantities[productID], nil
}

func TestStockCheck(t *testing.T) {
	makeRequest := func(stub *stubStockRepo, target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		StockCheck(stub, testLogger()).ServeHTTP(rec, req)
		return rec
	}

	t.Run("known pair", func(t *testing.T) {
		stub := &stubStockRepo{quantities: map[string]int{"phone-case-A": 7}}
		rec := makeRequest(stub, "/check-stock?id=phone-case-A&variant=2")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "max-age=60", rec.Header().Get("Cache-Control"))
		assert.JSONEq(t, `{"stock":7}`, rec.Body.String())
		assert.Equal(t, "phone-case-A", stub.gotProductID)
		assert.Equal(t, 2, stub.gotVariant)
	})

	t.Run("unknown pair reads as zero", func(t *testing.T) {
		rec := makeRequest(&stubStockRepo{}, "/check-stock?id=phone-case-A&variant=2")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"stock":0}`, rec.Body.String())
	})

	t.Run("variant defaults to zero", func(t *testing.T) {
		stub := &stubStockRepo{}
		makeRequest(stub, "/check-stock?id=sku1&variant=red")
		assert.Equal(t, 0, stub.gotVariant)
	})

	t.Run("missing id", func(t *testing.T) {
		rec := makeRequest(&stubStockRepo{}, "/check-stock")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Missing id"}`, rec.Body.String())
	})

	t.Run("lookup failure is classified", func(t *testing.T) {
		stub := &stubStockRepo{err: assertableError("pq: connection reset")}
		rec := makeRequest(stub, "/check-stock?id=sku1")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"stock lookup failed"}`, rec.Body.String())
	})
}
