package service

import (
	"context"
	"errors"
	"math"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// ErrPaymentProvider wraps any failure from the payment provider.
// Provider calls are never retried here: without an idempotency key a
// retry could double-charge, so the failure goes back to the caller.
var ErrPaymentProvider = errors.New("payment provider error")

// PaymentService is the bridge to the payment provider. It mints a
// client-side payment handle for a given amount; the provider reports
// actual payment success out of band via the client.
type PaymentService struct {
	sc  *client.API
	log zerolog.Logger
}

// NewPaymentService creates a new PaymentService around an initialized
// Stripe client.
func NewPaymentService(sc *client.API, log zerolog.Logger) *PaymentService {
	return &PaymentService{
		sc:  sc,
		log: log.With().Str("component", "payment_service").Logger(),
	}
}

// MinorUnits converts a price in major currency units to the
// provider's minor-unit integer representation: multiply by 100 and
// truncate.
func MinorUnits(price float64) int64 {
	return int64(math.Trunc(price * 100))
}

// CreateIntent requests a card PaymentIntent in USD for the given
// price and returns its client secret.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(MinorUnits(price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	pi, err := s.sc.PaymentIntents.New(params)
	if err != nil {
		s.log.Error().Err(err).Float64("price", price).Msg("PaymentIntent creation failed")
		return "", errors.Join(ErrPaymentProvider, err)
	}

	return pi.ClientSecret, nil
}
