package commands

import (
	"context"
	"errors"

	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/core/ports"

	log "github.com/sirupsen/logrus"
)

const operationExpire = "expire"

// ExpirePendingOrdersCommandHandler cancels orders that never received a
// payment. Each order is cancelled in its own unit of work, so one failing
// order does not block the rest of the batch. An order whose payment arrived
// after it was selected is left alone: expiry never refunds.
type ExpirePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	mutator    orderMutator
}

func NewExpirePendingOrdersCommandHandler(uowFactory OrderUoWFactory, deps LifecycleDeps) ExpirePendingOrdersCommandHandler {
	return ExpirePendingOrdersCommandHandler{
		uowFactory: uowFactory,
		mutator:    newOrderMutator(uowFactory, nil, deps),
	}
}

// Handle returns how many orders were cancelled. Per-order failures are joined
// into the returned error.
func (h *ExpirePendingOrdersCommandHandler) Handle(ctx context.Context, cmd ExpirePendingOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	ids, err := h.findExpired(ctx, cmd)
	if err != nil {
		return 0, err
	}

	var (
		expired int
		failed  []error
	)
	for _, id := range ids {
		cancelled, err := h.expire(ctx, id)
		if err != nil {
			h.mutator.deps.Logger.WithFields(log.Fields{"order_id": id, "error": err}).Warn("Failed to expire order")
			failed = append(failed, err)
			continue
		}
		if cancelled {
			expired++
		}
	}

	if expired > 0 {
		h.mutator.deps.Logger.WithField("expired", expired).Info("Expired pending orders")
	}
	return expired, errors.Join(failed...)
}

func (h *ExpirePendingOrdersCommandHandler) findExpired(ctx context.Context, cmd ExpirePendingOrdersCommand) ([]int64, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	headers, err := uow.OrderHeaderRepository().Find(ctx, ports.OrderHeaderFilter{
		Status:        order.StatusPending,
		PaymentStatus: order.PaymentStatusPending,
		PlacedBefore:  h.mutator.deps.Now().Add(-cmd.OlderThan()),
		Limit:         cmd.BatchSize(),
	})
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(headers))
	for _, header := range headers {
		ids = append(ids, header.ID())
	}
	return ids, nil
}

func (h *ExpirePendingOrdersCommandHandler) expire(ctx context.Context, orderID int64) (bool, error) {
	var cancelled bool
	_, err := h.mutator.run(ctx, operationExpire, orderID,
		func(_ context.Context, _ OrderUoW, header *order.Header) (outcome, error) {
			cancelled = false
			if header.Status() != order.StatusPending || header.PaymentStatus() != order.PaymentStatusPending {
				return outcome{}, nil
			}
			if err := header.Cancel(); err != nil {
				return outcome{}, err
			}
			cancelled = true
			return outcome{changed: true}, nil
		})
	return cancelled && err == nil, err
}
