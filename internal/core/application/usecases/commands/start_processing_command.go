package commands

import (
	"errors"

	"shoppingcart/internal/pkg/guard"
)

var ErrStartProcessingCommandIsNotConstructed = errors.New(
	"StartProcessingCommand must be created via NewStartProcessingCommand constructor",
)

type StartProcessingCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewStartProcessingCommand(orderID int64) (StartProcessingCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return StartProcessingCommand{}, err
	}

	return StartProcessingCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c StartProcessingCommand) Validate() error {
	return c.guard.Validate(ErrStartProcessingCommandIsNotConstructed)
}

func (c StartProcessingCommand) OrderID() int64 {
	return c.orderID
}
