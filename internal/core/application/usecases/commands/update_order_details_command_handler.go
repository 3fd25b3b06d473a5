package commands

import (
	"context"

	"shoppingcart/internal/core/domain/model/order"
)

const operationUpdate = "update"

type UpdateOrderDetailsCommandHandler struct {
	mutator orderMutator
}

func NewUpdateOrderDetailsCommandHandler(uowFactory OrderUoWFactory, deps LifecycleDeps) UpdateOrderDetailsCommandHandler {
	return UpdateOrderDetailsCommandHandler{
		mutator: newOrderMutator(uowFactory, nil, deps),
	}
}

func (h *UpdateOrderDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderDetailsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.mutator.run(ctx, operationUpdate, cmd.OrderID(),
		func(_ context.Context, _ OrderUoW, header *order.Header) (outcome, error) {
			if err := header.UpdateContact(cmd.Contact()); err != nil {
				return outcome{}, err
			}
			header.UpdateShipment(cmd.Carrier(), cmd.TrackingNumber())
			return outcome{changed: true}, nil
		})
	return err
}
