package commands

import (
	"context"

	"shoppingcart/internal/core/domain/model/order"
)

const operationShip = "ship"

// ShipOrderCommandHandler hands a Processing order to the carrier.
type ShipOrderCommandHandler struct {
	mutator orderMutator
}

func NewShipOrderCommandHandler(uowFactory OrderUoWFactory, deps LifecycleDeps) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		mutator: newOrderMutator(uowFactory, nil, deps),
	}
}

func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.mutator.run(ctx, operationShip, cmd.OrderID(),
		func(_ context.Context, _ OrderUoW, header *order.Header) (outcome, error) {
			if err := header.Ship(cmd.Carrier(), cmd.TrackingNumber(), h.mutator.deps.Now()); err != nil {
				return outcome{}, err
			}
			return outcome{changed: true}, nil
		})
	return err
}
