package commands

import (
	"errors"

	"shoppingcart/internal/pkg/guard"
)

var ErrRefundOrderCommandIsNotConstructed = errors.New(
	"RefundOrderCommand must be created via NewRefundOrderCommand constructor",
)

// RefundOrderCommand closes a returned Shipped order whose payment was captured.
type RefundOrderCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewRefundOrderCommand(orderID int64) (RefundOrderCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return RefundOrderCommand{}, err
	}

	return RefundOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RefundOrderCommand) Validate() error {
	return c.guard.Validate(ErrRefundOrderCommandIsNotConstructed)
}

func (c RefundOrderCommand) OrderID() int64 {
	return c.orderID
}
