package commands_test

import (
	"context"
	"errors"
	"testing"

	"shoppingcart/internal/adapters/out/payment"
	"shoppingcart/internal/core/application/usecases/commands"
	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/core/ports"
	"shoppingcart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_RejectedPaymentSkipsRefund(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCancelOrderCommand(1)
	require.NoError(t, err)

	header := storedHeader(t, 1, order.StatusPending, order.PaymentStatusRejected, "")

	m := newOrderUoWMocks()
	gateway := new(MockPaymentGateway)
	publisher := new(MockOrderEventPublisher)

	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("OrderHeaderRepository").Return(m.headers).Once(),
		m.headers.On("GetForUpdate", ctx, int64(1)).Return(header, nil).Once(),
		m.headers.On("Update", ctx, header).Return(nil).Once(),
		m.uow.On("Save", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, mock.MatchedBy(func(e ports.OrderStatusChanged) bool {
			return e.OrderID == 1 && e.Operation == "cancel" && e.Status == "Cancelled" && e.RefundID == ""
		})).Return(nil).Once(),
	)

	handler := commands.NewCancelOrderCommandHandler(m.factory, gateway, testDeps(publisher))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, header.Status())
	assert.Equal(t, order.PaymentStatusRejected, header.PaymentStatus())
	gateway.AssertNotCalled(t, "CreateRefund", mock.Anything, mock.Anything)
	m.uow.AssertNumberOfCalls(t, "Save", 1)
	m.assert(t)
	publisher.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ApprovedPaymentIsRefunded(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCancelOrderCommand(2)
	require.NoError(t, err)

	header := storedHeader(t, 2, order.StatusConfirmed, order.PaymentStatusApproved, "pi_123")

	m := newOrderUoWMocks()
	gateway := new(MockPaymentGateway)
	publisher := new(MockOrderEventPublisher)

	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("OrderHeaderRepository").Return(m.headers).Once(),
		m.headers.On("GetForUpdate", ctx, int64(2)).Return(header, nil).Once(),
		gateway.On("CreateRefund", ctx, mock.MatchedBy(func(req ports.RefundRequest) bool {
			return req.PaymentReference == "pi_123" &&
				req.Amount.IsEqual(testMoney(t, "45.50")) &&
				req.IdempotencyKey == "order-2-refund"
		})).Return(ports.RefundResult{RefundID: "re_42", Status: "succeeded"}, nil).Once(),
		m.headers.On("Update", ctx, mock.MatchedBy(func(h *order.Header) bool {
			return h.Status() == order.StatusCancelled && h.PaymentStatus() == order.PaymentStatusRefunded
		})).Return(nil).Once(),
		m.uow.On("Save", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, mock.MatchedBy(func(e ports.OrderStatusChanged) bool {
			return e.OrderID == 2 && e.PaymentStatus == "Refunded" && e.RefundID == "re_42"
		})).Return(nil).Once(),
	)

	handler := commands.NewCancelOrderCommandHandler(m.factory, gateway, testDeps(publisher))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, header.Status())
	assert.Equal(t, order.PaymentStatusRefunded, header.PaymentStatus())
	assert.Equal(t, "re_42", header.RefundID())
	gateway.AssertNumberOfCalls(t, "CreateRefund", 1)
	m.assert(t)
	gateway.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_GatewayFailureCommitsNothing(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCancelOrderCommand(2)
	require.NoError(t, err)

	header := storedHeader(t, 2, order.StatusProcessing, order.PaymentStatusApproved, "pi_123")

	m := newOrderUoWMocks()
	gateway := new(MockPaymentGateway)
	publisher := new(MockOrderEventPublisher)

	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("OrderHeaderRepository").Return(m.headers).Once(),
		m.headers.On("GetForUpdate", ctx, int64(2)).Return(header, nil).Once(),
		gateway.On("CreateRefund", ctx, mock.Anything).
			Return(ports.RefundResult{}, errors.New("card_declined")).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCancelOrderCommandHandler(m.factory, gateway, testDeps(publisher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrGateway)
	assert.Contains(t, err.Error(), "card_declined")
	assert.Equal(t, order.StatusProcessing, header.Status())
	assert.Equal(t, order.PaymentStatusApproved, header.PaymentStatus())
	m.headers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Save", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	gateway.AssertNumberOfCalls(t, "CreateRefund", 1)
	m.assert(t)
}

func TestCancelOrderCommandHandler_Handle_AlreadyCancelledIsNoop(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCancelOrderCommand(3)
	require.NoError(t, err)

	header := storedHeader(t, 3, order.StatusCancelled, order.PaymentStatusRefunded, "pi_9")

	m := newOrderUoWMocks()
	gateway := new(MockPaymentGateway)
	publisher := new(MockOrderEventPublisher)

	mock.InOrder(
		m.factory.On("Create").Return(m.uow).Once(),
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("OrderHeaderRepository").Return(m.headers).Once(),
		m.headers.On("GetForUpdate", ctx, int64(3)).Return(header, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCancelOrderCommandHandler(m.factory, gateway, testDeps(publisher))
	require.NoError(t, handler.Handle(ctx, cmd))

	gateway.AssertNotCalled(t, "CreateRefund", mock.Anything, mock.Anything)
	m.uow.AssertNotCalled(t, "Save", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	m.assert(t)
}

func TestCancelOrderCommandHandler_Handle_ShippedOrRefundedOrderIsRejected(t *testing.T) {
	for _, status := range []order.Status{order.StatusShipped, order.StatusRefunded} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := context.Background()
			cmd, err := commands.NewCancelOrderCommand(4)
			require.NoError(t, err)

			header := storedHeader(t, 4, status, order.PaymentStatusApproved, "pi_4")

			m := newOrderUoWMocks()
			gateway := new(MockPaymentGateway)
			m.expectRejectedMutation(ctx, header)

			handler := commands.NewCancelOrderCommandHandler(m.factory, gateway, testDeps(nil))
			err = handler.Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, status, header.Status())
			gateway.AssertNotCalled(t, "CreateRefund", mock.Anything, mock.Anything)
			m.uow.AssertNotCalled(t, "Save", mock.Anything)
			m.assert(t)
		})
	}
}

func TestCancelOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCancelOrderCommand(404)
	require.NoError(t, err)

	m := newOrderUoWMocks()
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.uow.On("OrderHeaderRepository").Return(m.headers).Once()
	m.headers.On("GetForUpdate", ctx, int64(404)).Return(nil, errs.NewObjectNotFoundError("order", int64(404))).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCancelOrderCommandHandler(m.factory, new(MockPaymentGateway), testDeps(nil))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	m.factory.AssertNumberOfCalls(t, "Create", 1)
	m.assert(t)
}

func TestCancelOrderCommandHandler_Handle_RetryAfterSaveFailureRefundsOnce(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCancelOrderCommand(2)
	require.NoError(t, err)

	firstLoad := storedHeader(t, 2, order.StatusConfirmed, order.PaymentStatusApproved, "pi_123")
	secondLoad := storedHeader(t, 2, order.StatusConfirmed, order.PaymentStatusApproved, "pi_123")

	m := newOrderUoWMocks()
	gateway := payment.NewMemoryGateway(quietLogger())

	m.factory.On("Create").Return(m.uow).Twice()
	m.uow.On("Begin", ctx).Return(nil).Twice()
	m.uow.On("OrderHeaderRepository").Return(m.headers).Twice()
	m.headers.On("GetForUpdate", ctx, int64(2)).Return(firstLoad, nil).Once()
	m.headers.On("GetForUpdate", ctx, int64(2)).Return(secondLoad, nil).Once()
	m.headers.On("Update", ctx, mock.Anything).Return(nil).Twice()
	m.uow.On("Save", ctx).Return(errs.NewPersistenceError("commit transaction", errors.New("serialization failure"))).Once()
	m.uow.On("Save", ctx).Return(nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Twice()

	handler := commands.NewCancelOrderCommandHandler(m.factory, gateway, testDeps(nil))
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, 2, gateway.RefundCalls)
	assert.Equal(t, 1, gateway.RefundsIssued())
	assert.True(t, gateway.RefundedAmount("pi_123").IsEqual(testMoney(t, "45.50")))
	assert.Equal(t, firstLoad.RefundID(), secondLoad.RefundID())
	assert.Equal(t, order.StatusCancelled, secondLoad.Status())
	m.assert(t)
}

func TestCancelOrderCommandHandler_Handle_SaveKeepsFailing(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCancelOrderCommand(1)
	require.NoError(t, err)

	m := newOrderUoWMocks()
	m.factory.On("Create").Return(m.uow).Times(3)
	m.uow.On("Begin", ctx).Return(nil).Times(3)
	m.uow.On("OrderHeaderRepository").Return(m.headers).Times(3)
	for i := 0; i < 3; i++ {
		header := storedHeader(t, 1, order.StatusPending, order.PaymentStatusPending, "")
		m.headers.On("GetForUpdate", ctx, int64(1)).Return(header, nil).Once()
	}
	m.headers.On("Update", ctx, mock.Anything).Return(nil).Times(3)
	m.uow.On("Save", ctx).Return(errors.New("connection refused")).Times(3)
	m.uow.On("Rollback", ctx).Return(nil).Times(3)

	handler := commands.NewCancelOrderCommandHandler(m.factory, new(MockPaymentGateway), testDeps(nil))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPersistence)
	m.uow.AssertNumberOfCalls(t, "Save", 3)
	m.assert(t)
}

func TestCancelOrderCommandHandler_Handle_PublishFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCancelOrderCommand(1)
	require.NoError(t, err)

	header := storedHeader(t, 1, order.StatusPending, order.PaymentStatusPending, "")

	m := newOrderUoWMocks()
	publisher := new(MockOrderEventPublisher)

	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.uow.On("OrderHeaderRepository").Return(m.headers).Once()
	m.headers.On("GetForUpdate", ctx, int64(1)).Return(header, nil).Once()
	m.headers.On("Update", ctx, header).Return(nil).Once()
	m.uow.On("Save", ctx).Return(nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()
	publisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker unavailable")).Once()

	handler := commands.NewCancelOrderCommandHandler(m.factory, new(MockPaymentGateway), testDeps(publisher))
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.StatusCancelled, header.Status())
	publisher.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	handler := commands.NewCancelOrderCommandHandler(factory, new(MockPaymentGateway), testDeps(nil))

	err := handler.Handle(context.Background(), commands.CancelOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
