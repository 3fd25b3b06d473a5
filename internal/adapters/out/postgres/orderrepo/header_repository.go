package orderrepo

import (
	"context"
	"errors"
	"slices"

	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/core/ports"
	"shoppingcart/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// GormOrderHeaderRepository implements ports.OrderHeaderRepository using GORM.
type GormOrderHeaderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormOrderHeaderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderHeaderRepository {
	return &GormOrderHeaderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderHeaderRepository) GetAll(ctx context.Context, includes ...ports.OrderHeaderInclude) ([]*order.Header, error) {
	var dtos []OrderHeaderDTO
	if err := r.query(ctx, includes).Order("id").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("load order headers", err)
	}
	return headersToDomain(dtos)
}

func (r *GormOrderHeaderRepository) Get(ctx context.Context, id int64, includes ...ports.OrderHeaderInclude) (*order.Header, error) {
	return r.first(r.query(ctx, includes), id)
}

// GetForUpdate retrieves a header by id and locks its row for the rest of the transaction.
func (r *GormOrderHeaderRepository) GetForUpdate(ctx context.Context, id int64, includes ...ports.OrderHeaderInclude) (*order.Header, error) {
	return r.first(r.query(ctx, includes).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderHeaderRepository) first(q *gorm.DB, id int64) (*order.Header, error) {
	var dto OrderHeaderDTO
	if err := q.First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, errs.NewPersistenceError("load order header", err)
	}
	return headerToDomain(dto)
}

func (r *GormOrderHeaderRepository) Find(
	ctx context.Context,
	filter ports.OrderHeaderFilter,
	includes ...ports.OrderHeaderInclude,
) ([]*order.Header, error) {
	q := r.query(ctx, includes)
	if filter.Status != order.StatusUnknown {
		q = q.Where("order_status = ?", int(filter.Status))
	}
	if filter.PaymentStatus != order.PaymentStatusUnknown {
		q = q.Where("payment_status = ?", int(filter.PaymentStatus))
	}
	if !filter.PlacedBefore.IsZero() {
		q = q.Where("order_date < ?", filter.PlacedBefore.UTC())
	}
	if filter.UserID != "" {
		q = q.Where("application_user_id = ?", filter.UserID)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var dtos []OrderHeaderDTO
	if err := q.Order("id").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("find order headers", err)
	}
	return headersToDomain(dtos)
}

// Add stages a new header and assigns the generated id to it.
func (r *GormOrderHeaderRepository) Add(ctx context.Context, h *order.Header) error {
	if err := h.Validate(); err != nil {
		return err
	}
	if h.ID() != 0 {
		return order.ErrHeaderIDAlreadySet
	}

	dto := headerFromDomain(h)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("add order header", err)
	}
	if err := h.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(h)
	return nil
}

func (r *GormOrderHeaderRepository) Update(ctx context.Context, h *order.Header) error {
	if err := h.Validate(); err != nil {
		return err
	}

	dto := headerFromDomain(h)
	result := r.db.WithContext(ctx).
		Model(&OrderHeaderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return errs.NewPersistenceError("update order header", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	r.tracker.TrackAggregate(h)
	return nil
}

func (r *GormOrderHeaderRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&OrderHeaderDTO{}, "id = ?", id)
	if result.Error != nil {
		return errs.NewPersistenceError("delete order header", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}

	r.tracker.TrackAggregate(id)
	return nil
}

func (r *GormOrderHeaderRepository) query(ctx context.Context, includes []ports.OrderHeaderInclude) *gorm.DB {
	q := r.db.WithContext(ctx)
	if slices.Contains(includes, ports.OrderHeaderIncludeUser) {
		q = q.Preload("User")
	}
	return q
}

func headersToDomain(dtos []OrderHeaderDTO) ([]*order.Header, error) {
	headers := make([]*order.Header, 0, len(dtos))
	for _, dto := range dtos {
		h, err := headerToDomain(dto)
		if err != nil {
			return nil, err
		}
		headers = append(headers, h)
	}
	return headers, nil
}
