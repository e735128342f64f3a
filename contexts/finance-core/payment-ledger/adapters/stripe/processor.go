package stripeadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"parcelhub/contexts/finance-core/payment-ledger/domain/entities"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// Processor creates card payment intents through the Stripe API. It performs
// a single request per call; the backend's network retries are disabled.
type Processor struct {
	client paymentintent.Client
	logger *slog.Logger
}

type Config struct {
	SecretKey string
	// APIURL overrides the Stripe API base, for stripe-mock or a proxy.
	APIURL string
}

func NewProcessor(cfg Config, logger *slog.Logger) (*Processor, error) {
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, errors.New("stripe secret key is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	backendConfig := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
	}
	if strings.TrimSpace(cfg.APIURL) != "" {
		backendConfig.URL = stripe.String(strings.TrimRight(cfg.APIURL, "/"))
	}

	return &Processor{
		client: paymentintent.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
			Key: cfg.SecretKey,
		},
		logger: logger,
	}, nil
}

func (p *Processor) CreateIntent(ctx context.Context, amountMinor int64, currency string) (entities.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinor),
		Currency:           stripe.String(strings.ToLower(currency)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := p.client.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			p.logger.Warn("stripe rejected payment intent",
				"event", "stripe_payment_intent_rejected",
				"module", "finance-core/payment-ledger",
				"layer", "adapter",
				"stripe_code", string(stripeErr.Code),
				"http_status", stripeErr.HTTPStatusCode,
			)
		}
		return entities.PaymentIntent{}, err
	}

	return entities.PaymentIntent{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		AmountMinor:  intent.Amount,
		Currency:     string(intent.Currency),
	}, nil
}
