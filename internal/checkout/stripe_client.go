package checkout

import (
	"context"

	"github.com/stripe/stripe-go/v84"
	"github.com/stripe/stripe-go/v84/checkout/session"

	pkgstripe "github.com/werealtor/aixx/pkg/stripe"
)

// SessionCreator exposes the subset of Stripe operations checkout needs.
type SessionCreator interface {
	Create(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type stripeClientWrapper struct{}

// NewSessionCreator wraps the provided Stripe client so checkout can be
// tested. It returns nil when Stripe is not configured.
func NewSessionCreator(api *pkgstripe.Client) SessionCreator {
	if !api.Configured() {
		return nil
	}
	return &stripeClientWrapper{}
}

func (w *stripeClientWrapper) Create(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	if params != nil {
		params.Context = ctx
	}
	return session.New(params)
}
