package commands

import (
	"errors"
	"strings"

	"shoppingcart/internal/pkg/errs"
	"shoppingcart/internal/pkg/guard"
)

var ErrShipOrderCommandIsNotConstructed = errors.New(
	"ShipOrderCommand must be created via NewShipOrderCommand constructor",
)

type ShipOrderCommand struct {
	orderID        int64
	carrier        string
	trackingNumber string

	guard guard.ConstructorGuard
}

func NewShipOrderCommand(orderID int64, carrier, trackingNumber string) (ShipOrderCommand, error) {
	carrier, trackingNumber = strings.TrimSpace(carrier), strings.TrimSpace(trackingNumber)

	var carrierErr, trackingErr error
	if carrier == "" {
		carrierErr = errs.NewValueIsRequiredError("carrier")
	}
	if trackingNumber == "" {
		trackingErr = errs.NewValueIsRequiredError("tracking number")
	}
	if err := errors.Join(validateOrderID(orderID), carrierErr, trackingErr); err != nil {
		return ShipOrderCommand{}, err
	}

	return ShipOrderCommand{
		orderID:        orderID,
		carrier:        carrier,
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c ShipOrderCommand) Validate() error {
	return c.guard.Validate(ErrShipOrderCommandIsNotConstructed)
}

func (c ShipOrderCommand) OrderID() int64         { return c.orderID }
func (c ShipOrderCommand) Carrier() string        { return c.carrier }
func (c ShipOrderCommand) TrackingNumber() string { return c.trackingNumber }
