package commands_test

import (
	"context"
	"io"
	"testing"
	"time"

	"shoppingcart/internal/core/application/usecases/commands"
	"shoppingcart/internal/core/domain/model/kernel"
	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/core/ports"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const customerID = "3d5b7c1e-9f2a-4c8d-b6e0-7a1f3c5e9d24"

var now = time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

func testContact(t *testing.T) order.Contact {
	t.Helper()
	c, err := order.NewContact("Grace Hopper", "+1 555 0100", "1 Navy Way", "Arlington", "VA", "22202")
	require.NoError(t, err)
	return c
}

func testMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

// storedHeader rebuilds an order the way a repository returns it.
func storedHeader(t *testing.T, id int64, status order.Status, paymentStatus order.PaymentStatus, paymentRef string) *order.Header {
	t.Helper()
	h, err := order.RestoreHeader(order.HeaderState{
		ID:              id,
		UserID:          customerID,
		OrderDate:       now.Add(-48 * time.Hour),
		Total:           testMoney(t, "45.50"),
		Status:          status,
		PaymentStatus:   paymentStatus,
		PaymentIntentID: paymentRef,
		Contact:         testContact(t),
	})
	require.NoError(t, err)
	return h
}

func quietLogger() *log.Entry {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger.WithField("component", "test")
}

// testDeps returns lifecycle dependencies with a frozen clock and near-instant retries.
func testDeps(publisher ports.OrderEventPublisher) commands.LifecycleDeps {
	return commands.LifecycleDeps{
		Publisher: publisher,
		Logger:    quietLogger(),
		Retry: commands.RetryConfig{
			MaxAttempts:   3,
			InitialDelay:  time.Millisecond,
			MaxDelay:      time.Millisecond,
			BackoffFactor: 1,
		},
		Now: func() time.Time { return now },
	}
}

// orderUoWMocks wires one unit of work whose header repository is returned
// to every caller.
type orderUoWMocks struct {
	factory *MockOrderUoWFactory
	uow     *MockOrderUoW
	headers *MockOrderHeaderRepository
}

func newOrderUoWMocks() orderUoWMocks {
	return orderUoWMocks{
		factory: new(MockOrderUoWFactory),
		uow:     new(MockOrderUoW),
		headers: new(MockOrderHeaderRepository),
	}
}

func (m orderUoWMocks) assert(t *testing.T) {
	t.Helper()
	m.factory.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.headers.AssertExpectations(t)
}

// expectCommittedMutation registers one successful load, update and save of header.
func (m orderUoWMocks) expectCommittedMutation(ctx context.Context, header *order.Header) {
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.uow.On("OrderHeaderRepository").Return(m.headers).Once()
	m.headers.On("GetForUpdate", ctx, header.ID()).Return(header, nil).Once()
	m.headers.On("Update", ctx, header).Return(nil).Once()
	m.uow.On("Save", ctx).Return(nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()
}

// expectRejectedMutation registers a load of header that ends without saving.
func (m orderUoWMocks) expectRejectedMutation(ctx context.Context, header *order.Header) {
	m.factory.On("Create").Return(m.uow).Once()
	m.uow.On("Begin", ctx).Return(nil).Once()
	m.uow.On("OrderHeaderRepository").Return(m.headers).Once()
	m.headers.On("GetForUpdate", ctx, header.ID()).Return(header, nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()
}
