package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkoutsvc "github.com/werealtor/aixx/internal/checkout"
	pkgerrors "github.com/werealtor/aixx/pkg/errors"
)

type stubCheckoutService struct {
	input     checkoutsvc.Input
	sessionID string
	err       error
}

func (s *stubCheckoutService) Execute(ctx context.Context, input checkoutsvc.Input) (*checkoutsvc.Result, error) {
	s.input = input
	if s.err != nil {
		return nil, s.err
	}
	return &checkoutsvc.Result{SessionID: s.sessionID}, nil
}

func TestCheckoutCreate(t *testing.T) {
	makeRequest := func(stub *stubCheckoutService, body, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		rec := httptest.NewRecorder()
		CheckoutCreate(stub, testLogger()).ServeHTTP(rec, req)
		return rec
	}

	t.Run("success", func(t *testing.T) {
		stub := &stubCheckoutService{sessionID: "cs_test_42"}
		rec := makeRequest(stub,
			`{"cart":[{"id":"sku1","price":9.99,"quantity":2}],"userId":"u1"}`,
			"https://shop.example.com")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		assert.JSONEq(t, `{"sessionId":"cs_test_42"}`, rec.Body.String())

		assert.Equal(t, "u1", stub.input.UserID)
		assert.Equal(t, "https://shop.example.com", stub.input.Origin)
		require.Len(t, stub.input.Cart, 1)
		assert.Equal(t, "sku1", stub.input.Cart[0].ID)
	})

	t.Run("empty cart", func(t *testing.T) {
		stub := &stubCheckoutService{err: pkgerrors.New(pkgerrors.CodeValidation, "Empty cart")}
		rec := makeRequest(stub, `{"cart":[],"userId":"u1"}`, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Empty cart"}`, rec.Body.String())
	})

	t.Run("stripe not configured", func(t *testing.T) {
		stub := &stubCheckoutService{err: pkgerrors.New(pkgerrors.CodeDependency, "Stripe not configured")}
		rec := makeRequest(stub, `{"cart":[{"id":"sku1"}]}`, "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Stripe not configured"}`, rec.Body.String())
	})

	t.Run("malformed body reads as empty cart", func(t *testing.T) {
		stub := &stubCheckoutService{err: pkgerrors.New(pkgerrors.CodeValidation, "Empty cart")}
		rec := makeRequest(stub, `{"cart":`, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Empty cart"}`, rec.Body.String())
		assert.Empty(t, stub.input.Cart, "decoder failures must hand the service an empty cart")
	})
}
