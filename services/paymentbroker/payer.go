package paymentbroker

import (
	"context"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
)

//go:generate mockgen -source=payer.go -package paymentbroker -destination payer_mock.go Payer
type Payer interface {
	UseAPIKey(key string)
	CreatePaymentIntent(ctx context.Context, params stripe.PaymentIntentParams) (stripe.PaymentIntent, error)
	GetPaymentIntent(ctx context.Context, uid string, params stripe.PaymentIntentParams) (stripe.PaymentIntent, error)
}

type stripePayer struct{}

func NewPayer() Payer {
	return &stripePayer{}
}

func (p *stripePayer) UseAPIKey(apiKey string) {
	stripe.Key = apiKey
}

func (p *stripePayer) CreatePaymentIntent(ctx context.Context, params stripe.PaymentIntentParams) (stripe.PaymentIntent, error) {
	params.Context = ctx
	intent, err := paymentintent.New(&params)
	if err != nil {
		return stripe.PaymentIntent{}, err
	}

	return *intent, nil
}

func (p *stripePayer) GetPaymentIntent(ctx context.Context, uid string, params stripe.PaymentIntentParams) (stripe.PaymentIntent, error) {
	params.Context = ctx
	intent, err := paymentintent.Get(uid, &params)
	if err != nil {
		return stripe.PaymentIntent{}, err
	}

	return *intent, nil
}
