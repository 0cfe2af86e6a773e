package utils

import (
	"os"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// PaymentGateway creates payment intents with an external processor. The
// amount is expressed in minor currency units.
type PaymentGateway interface {
	CreateIntent(amount int64) (clientSecret string, err error)
}

// StripeGateway implements PaymentGateway against the Stripe API.
type StripeGateway struct{}

// NewStripeGateway configures the Stripe client from STRIPE_SECRET_KEY.
func NewStripeGateway() *StripeGateway {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	return &StripeGateway{}
}

// CreateIntent requests a card payment intent and returns the client secret
// needed to complete the payment client-side.
func (g *StripeGateway) CreateIntent(amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
