package commands

import (
	"errors"
	"fmt"
	"strings"

	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/pkg/errs"
	"shoppingcart/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand carries the result of a checkout payment attempt.
// Outcome is one of Approved, Rejected or DelayedPayment; Approved requires
// the payment reference issued by the provider.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID          int64
	outcome          order.PaymentStatus
	paymentReference string
	sessionID        string

	guard guard.ConstructorGuard
}

func NewRecordPaymentCommand(
	orderID int64,
	outcome order.PaymentStatus,
	paymentReference string,
	sessionID string,
) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		orderID:          orderID,
		paymentReference: strings.TrimSpace(paymentReference),
		sessionID:        strings.TrimSpace(sessionID),
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateOrderID(orderID),
		cmd.setOutcome(outcome),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return cmd, nil
}

func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

func (c RecordPaymentCommand) OrderID() int64               { return c.orderID }
func (c RecordPaymentCommand) Outcome() order.PaymentStatus { return c.outcome }
func (c RecordPaymentCommand) PaymentReference() string     { return c.paymentReference }
func (c RecordPaymentCommand) SessionID() string            { return c.sessionID }

func (c *RecordPaymentCommand) setOutcome(outcome order.PaymentStatus) error {
	switch outcome {
	case order.PaymentStatusApproved:
		if c.paymentReference == "" {
			return order.ErrPaymentReferenceRequired
		}
	case order.PaymentStatusRejected, order.PaymentStatusDelayedPayment:
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"payment outcome is invalid",
			fmt.Errorf("%s is not a payment outcome", outcome),
		)
	}
	c.outcome = outcome
	return nil
}
