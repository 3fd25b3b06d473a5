package commands

import (
	"errors"
	"fmt"

	"shoppingcart/internal/pkg/errs"
	"shoppingcart/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand asks for an order to be cancelled, refunding a captured payment.
type CancelOrderCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID int64) (CancelOrderCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() int64 {
	return c.orderID
}

func validateOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order id is invalid",
			fmt.Errorf("%d is not greater than 0", orderID),
		)
	}
	return nil
}
