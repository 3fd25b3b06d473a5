package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/core/ports"
	"shoppingcart/internal/metrics"
	"shoppingcart/internal/pkg/errs"

	log "github.com/sirupsen/logrus"
)

// LifecycleDeps are the collaborators shared by every order lifecycle handler.
// Zero fields fall back to defaults: no events, no metrics, the standard logger,
// DefaultRetryConfig and time.Now.
type LifecycleDeps struct {
	Publisher ports.OrderEventPublisher
	Metrics   *metrics.OrderMetrics
	Logger    *log.Entry
	Retry     RetryConfig
	Now       func() time.Time
}

func (d LifecycleDeps) withDefaults() LifecycleDeps {
	if d.Publisher == nil {
		d.Publisher = noopPublisher{}
	}
	if d.Logger == nil {
		d.Logger = log.New().WithField("component", "order-lifecycle")
	}
	if d.Retry.MaxAttempts == 0 {
		d.Retry = DefaultRetryConfig()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, ports.OrderStatusChanged) error { return nil }

// outcome describes what a mutation did to the header.
type outcome struct {
	// changed is false when the header already was in the requested state.
	changed  bool
	refunded bool
}

// mutation applies one lifecycle step to a header loaded inside an open unit of work.
type mutation func(ctx context.Context, uow OrderUoW, header *order.Header) (outcome, error)

// orderMutator runs mutations with the load, update, save and retry steps
// every lifecycle operation shares.
type orderMutator struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
	deps       LifecycleDeps
}

func newOrderMutator(uowFactory OrderUoWFactory, gateway ports.PaymentGateway, deps LifecycleDeps) orderMutator {
	return orderMutator{
		uowFactory: uowFactory,
		gateway:    gateway,
		deps:       deps.withDefaults(),
	}
}

// run applies fn to order orderID and commits the result. A failed save re-runs
// the whole procedure with a fresh unit of work, so fn must be safe to repeat.
func (m *orderMutator) run(ctx context.Context, operation string, orderID int64, fn mutation) (*order.Header, error) {
	started := m.deps.Now()

	var (
		header *order.Header
		result outcome
	)
	err := executeWithRetry(ctx, m.deps.Retry, m.deps.Logger,
		func() { m.deps.Metrics.RecordPersistRetry(operation) },
		operation, orderID,
		func(ctx context.Context) error {
			h, o, err := m.attempt(ctx, orderID, fn)
			if err != nil {
				return err
			}
			header, result = h, o
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	m.deps.Metrics.ObserveDuration(operation, m.deps.Now().Sub(started))
	if result.changed {
		m.afterCommit(ctx, operation, header, result)
	}
	return header, nil
}

func (m *orderMutator) attempt(ctx context.Context, orderID int64, fn mutation) (*order.Header, outcome, error) {
	uow := m.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, outcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	headers := uow.OrderHeaderRepository()
	header, err := headers.GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, outcome{}, err
	}

	result, err := fn(ctx, uow, header)
	if err != nil {
		return nil, outcome{}, err
	}
	if !result.changed {
		return header, result, nil
	}

	if err := headers.Update(ctx, header); err != nil {
		return nil, outcome{}, err
	}
	if err := uow.Save(ctx); err != nil {
		return nil, outcome{}, asPersistenceError(fmt.Sprintf("save order %d", orderID), err)
	}
	return header, result, nil
}

// refund returns the captured payment of header through the gateway and
// records it. The idempotency key is derived from the order, so re-running
// after a failed save never refunds twice.
func (m *orderMutator) refund(ctx context.Context, header *order.Header) error {
	if m.gateway == nil {
		return errs.NewGatewayError("refund", errors.New("no payment gateway configured"))
	}

	res, err := m.gateway.CreateRefund(ctx, ports.RefundRequest{
		PaymentReference: header.PaymentIntentID(),
		Amount:           header.Total(),
		IdempotencyKey:   header.RefundIdempotencyKey(),
	})
	if err != nil {
		m.deps.Metrics.RecordGatewayFailure("refund")
		return errs.NewGatewayError(fmt.Sprintf("refund order %d", header.ID()), err)
	}

	return header.MarkRefunded(res.RefundID)
}

func (m *orderMutator) afterCommit(ctx context.Context, operation string, header *order.Header, result outcome) {
	m.deps.Metrics.RecordTransition(operation, header.Status().String())
	if result.refunded {
		m.deps.Metrics.RecordRefund(header.Total().Amount().InexactFloat64())
	}

	publish(ctx, m.deps, operation, header)
}

// publish emits the committed state of header. Failures are logged only:
// the change is already durable.
func publish(ctx context.Context, deps LifecycleDeps, operation string, header *order.Header) {
	event := ports.OrderStatusChanged{
		OrderID:       header.ID(),
		UserID:        header.UserID(),
		Operation:     operation,
		Status:        header.Status().String(),
		PaymentStatus: header.PaymentStatus().String(),
		RefundID:      header.RefundID(),
		OccurredAt:    deps.Now().UTC(),
	}
	if err := deps.Publisher.Publish(ctx, event); err != nil {
		deps.Logger.WithFields(log.Fields{
			"order_id":  header.ID(),
			"operation": operation,
			"error":     err,
		}).Warn("Failed to publish order event")
	}
}

func asPersistenceError(operation string, err error) error {
	if errors.Is(err, errs.ErrPersistence) {
		return err
	}
	return errs.NewPersistenceError(operation, err)
}
