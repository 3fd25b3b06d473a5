package commands

import (
	"errors"
	"strings"

	"shoppingcart/internal/pkg/guard"
)

var ErrSettleDelayedPaymentCommandIsNotConstructed = errors.New(
	"SettleDelayedPaymentCommand must be created via NewSettleDelayedPaymentCommand constructor",
)

// SettleDelayedPaymentCommand charges the customer of a DelayedPayment order.
// Customer and PaymentMethod name the stored card at the payment provider and
// may be empty when the provider resolves the payer itself.
type SettleDelayedPaymentCommand struct {
	orderID       int64
	customer      string
	paymentMethod string

	guard guard.ConstructorGuard
}

func NewSettleDelayedPaymentCommand(orderID int64, customer, paymentMethod string) (SettleDelayedPaymentCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return SettleDelayedPaymentCommand{}, err
	}

	return SettleDelayedPaymentCommand{
		orderID:       orderID,
		customer:      strings.TrimSpace(customer),
		paymentMethod: strings.TrimSpace(paymentMethod),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c SettleDelayedPaymentCommand) Validate() error {
	return c.guard.Validate(ErrSettleDelayedPaymentCommandIsNotConstructed)
}

func (c SettleDelayedPaymentCommand) OrderID() int64        { return c.orderID }
func (c SettleDelayedPaymentCommand) Customer() string      { return c.customer }
func (c SettleDelayedPaymentCommand) PaymentMethod() string { return c.paymentMethod }
