package commands

import (
	"context"

	"shoppingcart/internal/core/domain/model/order"
)

const operationProcessing = "processing"

type StartProcessingCommandHandler struct {
	mutator orderMutator
}

func NewStartProcessingCommandHandler(uowFactory OrderUoWFactory, deps LifecycleDeps) StartProcessingCommandHandler {
	return StartProcessingCommandHandler{
		mutator: newOrderMutator(uowFactory, nil, deps),
	}
}

func (h *StartProcessingCommandHandler) Handle(ctx context.Context, cmd StartProcessingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.mutator.run(ctx, operationProcessing, cmd.OrderID(),
		func(_ context.Context, _ OrderUoW, header *order.Header) (outcome, error) {
			if header.Status() == order.StatusProcessing {
				return outcome{}, nil
			}
			if err := header.StartProcessing(); err != nil {
				return outcome{}, err
			}
			return outcome{changed: true}, nil
		})
	return err
}
