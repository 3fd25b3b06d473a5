package ports

import (
	"context"

	"shoppingcart/internal/core/domain/model/kernel"
)

// RefundRequest asks the payment processor to return money for a captured payment.
type RefundRequest struct {
	PaymentReference string
	Amount           kernel.Money
	// IdempotencyKey makes retries safe: the processor issues at most one refund per key.
	IdempotencyKey string
}

type RefundResult struct {
	RefundID string
	Status   string
}

// ChargeRequest asks the payment processor to capture money outside checkout,
// used to settle delayed payments.
type ChargeRequest struct {
	Amount         kernel.Money
	Currency       string
	Description    string
	IdempotencyKey string
	// Customer and PaymentMethod identify the stored card to charge off-session.
	Customer      string
	PaymentMethod string
}

type ChargeResult struct {
	PaymentReference string
	Status           string
}

// PaymentGateway is the payment processor as consumed by the order lifecycle.
type PaymentGateway interface {
	CreateRefund(ctx context.Context, req RefundRequest) (RefundResult, error)
	CreateCharge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
}
