package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shoppingcart/internal/core/ports"

	log "github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// DefaultCurrency is used when a charge request names none.
const DefaultCurrency = "usd"

var (
	ErrRefundNotAccepted = errors.New("refund was not accepted by the processor")
	ErrChargeNotCaptured = errors.New("charge was not captured by the processor")
)

// StripeGateway calls the Stripe API. Refunds target the PaymentIntent captured
// at checkout; charges create and confirm an off-session PaymentIntent.
type StripeGateway struct {
	api    *client.API
	logger *log.Entry
}

// NewStripeGateway creates a gateway for secretKey. backends may be nil to use
// the public Stripe endpoints.
func NewStripeGateway(secretKey string, backends *stripe.Backends, logger *log.Entry) *StripeGateway {
	if logger == nil {
		logger = log.New().WithField("component", "stripe-gateway")
	}

	api := &client.API{}
	api.Init(secretKey, backends)

	return &StripeGateway{
		api:    api,
		logger: logger,
	}
}

func (g *StripeGateway) CreateRefund(ctx context.Context, req ports.RefundRequest) (ports.RefundResult, error) {
	if strings.TrimSpace(req.PaymentReference) == "" {
		return ports.RefundResult{}, errors.New("refund requires a payment reference")
	}

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(req.PaymentReference),
		Amount:        stripe.Int64(req.Amount.MinorUnits()),
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.IdempotencyKey)

	refund, err := g.api.Refunds.New(params)
	if err != nil {
		return ports.RefundResult{}, fmt.Errorf("stripe refund %s: %w", req.PaymentReference, err)
	}

	if refund.Status == stripe.RefundStatusFailed || refund.Status == stripe.RefundStatusCanceled {
		return ports.RefundResult{}, fmt.Errorf("%w: refund %s is %s", ErrRefundNotAccepted, refund.ID, refund.Status)
	}

	g.logger.WithFields(log.Fields{
		"payment_reference": req.PaymentReference,
		"refund_id":         refund.ID,
		"status":            refund.Status,
	}).Info("Refund created")

	return ports.RefundResult{
		RefundID: refund.ID,
		Status:   string(refund.Status),
	}, nil
}

func (g *StripeGateway) CreateCharge(ctx context.Context, req ports.ChargeRequest) (ports.ChargeResult, error) {
	currency := strings.ToLower(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(req.Amount.MinorUnits()),
		Currency:    stripe.String(currency),
		Description: stripe.String(req.Description),
	}
	if req.PaymentMethod != "" {
		params.PaymentMethod = stripe.String(req.PaymentMethod)
		params.Confirm = stripe.Bool(true)
		params.OffSession = stripe.Bool(true)
	}
	if req.Customer != "" {
		params.Customer = stripe.String(req.Customer)
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.IdempotencyKey)

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return ports.ChargeResult{}, fmt.Errorf("stripe charge: %w", err)
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return ports.ChargeResult{}, fmt.Errorf("%w: payment intent %s is %s", ErrChargeNotCaptured, intent.ID, intent.Status)
	}

	g.logger.WithFields(log.Fields{
		"payment_reference": intent.ID,
		"amount_minor":      req.Amount.MinorUnits(),
	}).Info("Charge captured")

	return ports.ChargeResult{
		PaymentReference: intent.ID,
		Status:           string(intent.Status),
	}, nil
}

var _ ports.PaymentGateway = (*StripeGateway)(nil)
