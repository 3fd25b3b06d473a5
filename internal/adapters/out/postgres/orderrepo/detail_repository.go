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

// GormOrderDetailRepository implements ports.OrderDetailRepository using GORM.
type GormOrderDetailRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormOrderDetailRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderDetailRepository {
	return &GormOrderDetailRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderDetailRepository) GetAll(ctx context.Context, includes ...ports.OrderDetailInclude) ([]*order.Detail, error) {
	var dtos []OrderDetailDTO
	if err := r.query(ctx, includes).Order("id").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("load order details", err)
	}
	return detailsToDomain(dtos)
}

func (r *GormOrderDetailRepository) Get(ctx context.Context, id int64, includes ...ports.OrderDetailInclude) (*order.Detail, error) {
	var dto OrderDetailDTO
	if err := r.query(ctx, includes).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order detail", id)
		}
		return nil, errs.NewPersistenceError("load order detail", err)
	}
	return detailToDomain(dto)
}

func (r *GormOrderDetailRepository) GetAllByOrder(
	ctx context.Context,
	orderHeaderID int64,
	includes ...ports.OrderDetailInclude,
) ([]*order.Detail, error) {
	var dtos []OrderDetailDTO
	if err := r.query(ctx, includes).Where("order_header_id = ?", orderHeaderID).Order("id").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("load order details", err)
	}
	return detailsToDomain(dtos)
}

func (r *GormOrderDetailRepository) Add(ctx context.Context, d *order.Detail) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.ID() != 0 {
		return order.ErrDetailIDAlreadySet
	}

	dto := detailFromDomain(d)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("add order detail", err)
	}
	if err := d.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(d)
	return nil
}

func (r *GormOrderDetailRepository) Update(ctx context.Context, d *order.Detail) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := detailFromDomain(d)
	result := r.db.WithContext(ctx).
		Model(&OrderDetailDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return errs.NewPersistenceError("update order detail", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order detail", dto.ID)
	}

	r.tracker.TrackAggregate(d)
	return nil
}

func (r *GormOrderDetailRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&OrderDetailDTO{}, "id = ?", id)
	if result.Error != nil {
		return errs.NewPersistenceError("delete order detail", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order detail", id)
	}

	r.tracker.TrackAggregate(id)
	return nil
}

func (r *GormOrderDetailRepository) query(ctx context.Context, includes []ports.OrderDetailInclude) *gorm.DB {
	q := r.db.WithContext(ctx)
	if slices.Contains(includes, ports.OrderDetailIncludeProduct) {
		q = q.Preload("Product")
	}
	return q
}

func detailsToDomain(dtos []OrderDetailDTO) ([]*order.Detail, error) {
	details := make([]*order.Detail, 0, len(dtos))
	for _, dto := range dtos {
		d, err := detailToDomain(dto)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}
