package service

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/mk-munna/wedmate-matrimony-server-project-12/internal/domain"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/events"
	"github.com/mk-munna/wedmate-matrimony-server-project-12/pkg/logger"
)

// PaymentService creates Stripe payment intents for contact-request
// checkouts. The intent itself is opaque to this service: the client
// completes the card flow with the returned secret.
type PaymentService interface {
	CreateIntent(ctx context.Context, amount int64) (string, error)
}

type paymentService struct {
	stripe   *client.API
	currency string
	eventBus events.Publisher
}

func NewPaymentService(secretKey, currency string, eventBus events.Publisher) PaymentService {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &paymentService{
		stripe:   api,
		currency: currency,
		eventBus: eventBus,
	}
}

func (s *paymentService) CreateIntent(ctx context.Context, amount int64) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(s.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := s.stripe.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	event := events.PaymentIntentCreatedEvent{
		IntentID: intent.ID,
		Amount:   amount,
		Currency: s.currency,
	}
	if err := s.eventBus.Publish(ctx, events.PaymentIntentCreated, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish payment intent created event", "error", err, "intent_id", intent.ID)
	}

	return intent.ClientSecret, nil
}
