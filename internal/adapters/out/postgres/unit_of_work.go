// Package postgres provides the GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes atomically.
//
// Usage Patterns:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.CategoryRepository().Add(ctx, category); err != nil {
//	    return err
//	}
//
//	return uow.Save(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides an isolated transaction
//   - Multiple goroutines should use separate UnitOfWork instances
//   - OrderHeaderRepository.Get locks the header row until Save or Rollback
package postgres

import (
	"context"

	"shoppingcart/internal/adapters/out/postgres/categoryrepo"
	"shoppingcart/internal/adapters/out/postgres/orderrepo"
	"shoppingcart/internal/adapters/out/postgres/productrepo"
	"shoppingcart/internal/adapters/out/postgres/userrepo"
	"shoppingcart/internal/core/ports"
	"shoppingcart/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:      f.db,
		tracked: make([]any, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and tracks the aggregates
// staged through its repositories.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	tracked []any
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance do not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errs.NewPersistenceError("begin transaction", tx.Error)
	}

	uow.tx = tx
	uow.tracked = uow.tracked[:0]
	return nil
}

// Save commits every change staged since Begin. When nothing was staged the
// transaction is closed without writing. Save without an open transaction is a no-op.
func (uow *GormUnitOfWork) Save(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	tx := uow.tx
	uow.tx = nil

	if len(uow.tracked) == 0 {
		if err := tx.Rollback().Error; err != nil {
			return errs.NewPersistenceError("close transaction", err)
		}
		return nil
	}

	if err := tx.Commit().Error; err != nil {
		return errs.NewPersistenceError("commit transaction", err)
	}
	uow.tracked = uow.tracked[:0]
	return nil
}

// Rollback discards all changes made within the current transaction.
// Rollback after Save, or without Begin, does nothing.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracked = uow.tracked[:0]
	if err != nil {
		return errs.NewPersistenceError("rollback transaction", err)
	}
	return nil
}

// TrackAggregate registers an aggregate staged within this unit of work.
// Repositories call it after every successful Add, Update or Delete.
func (uow *GormUnitOfWork) TrackAggregate(aggregate any) {
	uow.tracked = append(uow.tracked, aggregate)
}

// Staged reports how many changes wait for Save.
func (uow *GormUnitOfWork) Staged() int {
	return len(uow.tracked)
}

func (uow *GormUnitOfWork) CategoryRepository() ports.CategoryRepository {
	return categoryrepo.NewGormCategoryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderHeaderRepository() ports.OrderHeaderRepository {
	return orderrepo.NewGormOrderHeaderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OrderDetailRepository() ports.OrderDetailRepository {
	return orderrepo.NewGormOrderDetailRepository(uow.conn(), uow)
}

// conn returns the open transaction, or the main connection when none is active.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
