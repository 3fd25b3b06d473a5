// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shoppingcart/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Save(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	OrderHeaderRepoFactory interface {
		OrderHeaderRepository() ports.OrderHeaderRepository
	}

	OrderDetailRepoFactory interface {
		OrderDetailRepository() ports.OrderDetailRepository
	}

	// CatalogUoW manages transactions for category operations, which need to
	// consult products before deleting a category.
	CatalogUoW interface {
		TxManager
		CategoryRepoFactory
		ProductRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OrderUoW manages transactions across an order header, its lines and the
	// products they reference.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   header, err := uow.OrderHeaderRepository().GetForUpdate(ctx, id)
	//   // ... transition the header
	//   err = uow.OrderHeaderRepository().Update(ctx, header)
	//
	//   err = uow.Save(ctx)
	OrderUoW interface {
		TxManager
		OrderHeaderRepoFactory
		OrderDetailRepoFactory
		ProductRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// NewCatalogUoWFactory narrows a full unit of work factory to the catalog handlers.
func NewCatalogUoWFactory(factory ports.UnitOfWorkFactory) CatalogUoWFactory {
	return catalogUoWFactory{factory: factory}
}

// NewOrderUoWFactory narrows a full unit of work factory to the order handlers.
func NewOrderUoWFactory(factory ports.UnitOfWorkFactory) OrderUoWFactory {
	return orderUoWFactory{factory: factory}
}

type catalogUoWFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f catalogUoWFactory) Create() CatalogUoW {
	return f.factory.Create()
}

type orderUoWFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f orderUoWFactory) Create() OrderUoW {
	return f.factory.Create()
}
