package checkout

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v84"

	"github.com/werealtor/aixx/api/validators"
	"github.com/werealtor/aixx/internal/orders"
	"github.com/werealtor/aixx/pkg/db/models"
	pkgerrors "github.com/werealtor/aixx/pkg/errors"
	"github.com/werealtor/aixx/pkg/logger"
)

const (
	maxUserIDLen    = 100
	maxProductIDLen = 50
	maxItemNameLen  = 200
	defaultUserID   = "anonymous"
)

// LineItem is one raw cart entry. Variant, price, and quantity arrive as
// whatever the client serialized (number, string, or absent) and are
// coerced with defaults rather than rejected.
type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Variant  any    `json:"variant"`
	Price    any    `json:"price"`
	Quantity any    `json:"quantity"`
}

// Input is one checkout attempt.
type Input struct {
	Cart   []LineItem
	UserID string
	Origin string
}

// Result carries the payment session identifier.
type Result struct {
	SessionID string
}

// Service persists order lines and creates the payment session.
type Service interface {
	Execute(ctx context.Context, input Input) (*Result, error)
}

type service struct {
	ordersRepo    orders.Repository
	sessions      SessionCreator
	defaultOrigin string
	logg          *logger.Logger
}

// NewService wires the checkout dependencies. sessions may be nil when
// Stripe is not configured; checkout then fails after persisting lines.
func NewService(ordersRepo orders.Repository, sessions SessionCreator, defaultOrigin string, logg *logger.Logger) (Service, error) {
	if ordersRepo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if defaultOrigin == "" {
		return nil, fmt.Errorf("default origin required")
	}
	return &service{
		ordersRepo:    ordersRepo,
		sessions:      sessions,
		defaultOrigin: defaultOrigin,
		logg:          logg,
	}, nil
}

// Execute records one order row per cart line, then creates the Stripe
// Checkout Session. Line inserts are independent: a failing line is
// logged and skipped, and rows persist even when session creation later
// fails.
func (s *service) Execute(ctx context.Context, input Input) (*Result, error) {
	if len(input.Cart) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Empty cart")
	}

	userID := input.UserID
	if userID == "" {
		userID = defaultUserID
	}
	userID = validators.SanitizeString(userID, maxUserIDLen)

	for i, item := range input.Cart {
		qty := intOr(item.Quantity, 1)
		price := numberOr(item.Price, 0)
		total, _ := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(qty))).Float64()

		row := &models.Order{
			UserID:    userID,
			ProductID: validators.SanitizeString(item.ID, maxProductIDLen),
			Variant:   intOr(item.Variant, 0),
			Quantity:  qty,
			Price:     price,
			Total:     total,
		}
		if err := s.ordersRepo.Create(ctx, row); err != nil && s.logg != nil {
			lineCtx := s.logg.WithFields(ctx, map[string]any{
				"line":       i,
				"product_id": row.ProductID,
				"error":      err.Error(),
			})
			s.logg.Warn(lineCtx, "order line insert failed")
		}
	}

	if s.sessions == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "Stripe not configured")
	}

	origin := input.Origin
	if origin == "" {
		origin = s.defaultOrigin
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(origin + "/success"),
		CancelURL:          stripe.String(origin + "/cancel"),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          buildLineItems(input.Cart),
	}

	sess, err := s.sessions.Create(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "Stripe create session failed")
	}

	return &Result{SessionID: sess.ID}, nil
}

func buildLineItems(cart []LineItem) []*stripe.CheckoutSessionLineItemParams {
	items := make([]*stripe.CheckoutSessionLineItemParams, 0, len(cart))
	for _, item := range cart {
		name := item.Name
		if name == "" {
			name = item.ID
		}
		unitAmount := decimal.NewFromFloat(numberOr(item.Price, 0)).
			Mul(decimal.NewFromInt(100)).
			Round(0).
			IntPart()
		items = append(items, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("usd"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(validators.SanitizeString(name, maxItemNameLen)),
				},
				UnitAmount: stripe.Int64(unitAmount),
			},
			Quantity: stripe.Int64(int64(intOr(item.Quantity, 1))),
		})
	}
	return items
}

// numberOr coerces a decoded JSON value to a number, falling back for
// absent, non-numeric, and zero values.
func numberOr(v any, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		if n != 0 {
			return n
		}
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil && f != 0 {
			return f
		}
	}
	return fallback
}

func intOr(v any, fallback int) int {
	return int(numberOr(v, float64(fallback)))
}
