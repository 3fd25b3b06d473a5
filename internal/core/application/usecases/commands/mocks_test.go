package commands_test

import (
	"context"

	"shoppingcart/internal/core/application/usecases/commands"
	"shoppingcart/internal/core/domain/model/catalog"
	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]*catalog.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) Get(ctx context.Context, id int64) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) Add(ctx context.Context, c *catalog.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) GetAll(ctx context.Context, _ ...ports.ProductInclude) ([]*catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Get(ctx context.Context, id int64, _ ...ports.ProductInclude) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) GetMany(ctx context.Context, ids []int64) (map[int64]*catalog.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Add(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderHeaderRepository struct{ mock.Mock }

func (m *MockOrderHeaderRepository) GetAll(ctx context.Context, _ ...ports.OrderHeaderInclude) ([]*order.Header, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Header), args.Error(1)
}

func (m *MockOrderHeaderRepository) Get(ctx context.Context, id int64, _ ...ports.OrderHeaderInclude) (*order.Header, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Header), args.Error(1)
}

func (m *MockOrderHeaderRepository) GetForUpdate(ctx context.Context, id int64, _ ...ports.OrderHeaderInclude) (*order.Header, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Header), args.Error(1)
}

func (m *MockOrderHeaderRepository) Find(
	ctx context.Context,
	filter ports.OrderHeaderFilter,
	_ ...ports.OrderHeaderInclude,
) ([]*order.Header, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Header), args.Error(1)
}

func (m *MockOrderHeaderRepository) Add(ctx context.Context, h *order.Header) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockOrderHeaderRepository) Update(ctx context.Context, h *order.Header) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockOrderHeaderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderDetailRepository struct{ mock.Mock }

func (m *MockOrderDetailRepository) GetAll(ctx context.Context, _ ...ports.OrderDetailInclude) ([]*order.Detail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Detail), args.Error(1)
}

func (m *MockOrderDetailRepository) Get(ctx context.Context, id int64, _ ...ports.OrderDetailInclude) (*order.Detail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Detail), args.Error(1)
}

func (m *MockOrderDetailRepository) GetAllByOrder(
	ctx context.Context,
	orderHeaderID int64,
	_ ...ports.OrderDetailInclude,
) ([]*order.Detail, error) {
	args := m.Called(ctx, orderHeaderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Detail), args.Error(1)
}

func (m *MockOrderDetailRepository) Add(ctx context.Context, d *order.Detail) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockOrderDetailRepository) Update(ctx context.Context, d *order.Detail) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockOrderDetailRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Save(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockCatalogUoW struct{ MockTx }

func (m *MockCatalogUoW) CategoryRepository() ports.CategoryRepository {
	args := m.Called()
	return args.Get(0).(ports.CategoryRepository)
}

func (m *MockCatalogUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockOrderUoW struct{ MockTx }

func (m *MockOrderUoW) OrderHeaderRepository() ports.OrderHeaderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderHeaderRepository)
}

func (m *MockOrderUoW) OrderDetailRepository() ports.OrderDetailRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderDetailRepository)
}

func (m *MockOrderUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreateRefund(ctx context.Context, req ports.RefundRequest) (ports.RefundResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.RefundResult), args.Error(1)
}

func (m *MockPaymentGateway) CreateCharge(ctx context.Context, req ports.ChargeRequest) (ports.ChargeResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.ChargeResult), args.Error(1)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) Publish(ctx context.Context, event ports.OrderStatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
