package commands

import (
	"context"

	"shoppingcart/internal/core/domain/model/order"
)

const operationPayment = "payment"

// RecordPaymentCommandHandler applies a checkout payment outcome to an order.
type RecordPaymentCommandHandler struct {
	mutator orderMutator
}

func NewRecordPaymentCommandHandler(uowFactory OrderUoWFactory, deps LifecycleDeps) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		mutator: newOrderMutator(uowFactory, nil, deps),
	}
}

// Handle is idempotent: repeating the outcome already recorded changes nothing.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.mutator.run(ctx, operationPayment, cmd.OrderID(),
		func(_ context.Context, _ OrderUoW, header *order.Header) (outcome, error) {
			if header.PaymentStatus() == cmd.Outcome() &&
				(cmd.Outcome() != order.PaymentStatusApproved || header.PaymentIntentID() == cmd.PaymentReference()) {
				return outcome{}, nil
			}

			var err error
			switch cmd.Outcome() {
			case order.PaymentStatusApproved:
				err = header.ApprovePayment(cmd.PaymentReference(), h.mutator.deps.Now())
			case order.PaymentStatusRejected:
				err = header.RejectPayment()
			default:
				err = header.GrantDelayedPayment()
			}
			if err != nil {
				return outcome{}, err
			}

			if cmd.SessionID() != "" {
				header.SetSessionID(cmd.SessionID())
			}
			return outcome{changed: true}, nil
		})
	return err
}
