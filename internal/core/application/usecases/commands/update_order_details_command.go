package commands

import (
	"errors"
	"strings"

	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/pkg/guard"
)

var ErrUpdateOrderDetailsCommandIsNotConstructed = errors.New(
	"UpdateOrderDetailsCommand must be created via NewUpdateOrderDetailsCommand constructor",
)

// UpdateOrderDetailsCommand replaces the shipping contact of an order. Carrier
// and tracking number are only overwritten when non-empty.
type UpdateOrderDetailsCommand struct {
	orderID        int64
	contact        order.Contact
	carrier        string
	trackingNumber string

	guard guard.ConstructorGuard
}

func NewUpdateOrderDetailsCommand(
	orderID int64,
	contact order.Contact,
	carrier string,
	trackingNumber string,
) (UpdateOrderDetailsCommand, error) {
	if err := errors.Join(validateOrderID(orderID), contact.Validate()); err != nil {
		return UpdateOrderDetailsCommand{}, err
	}

	return UpdateOrderDetailsCommand{
		orderID:        orderID,
		contact:        contact,
		carrier:        strings.TrimSpace(carrier),
		trackingNumber: strings.TrimSpace(trackingNumber),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDetailsCommandIsNotConstructed)
}

func (c UpdateOrderDetailsCommand) OrderID() int64         { return c.orderID }
func (c UpdateOrderDetailsCommand) Contact() order.Contact { return c.contact }
func (c UpdateOrderDetailsCommand) Carrier() string        { return c.carrier }
func (c UpdateOrderDetailsCommand) TrackingNumber() string { return c.trackingNumber }
