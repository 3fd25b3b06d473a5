package productrepo

import (
	"context"
	"errors"
	"slices"

	"shoppingcart/internal/core/domain/model/catalog"
	"shoppingcart/internal/core/ports"
	"shoppingcart/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormProductRepository) GetAll(ctx context.Context, includes ...ports.ProductInclude) ([]*catalog.Product, error) {
	var dtos []ProductDTO
	if err := r.query(ctx, includes).Order("id").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("load products", err)
	}
	return toDomainList(dtos)
}

func (r *GormProductRepository) Get(ctx context.Context, id int64, includes ...ports.ProductInclude) (*catalog.Product, error) {
	var dto ProductDTO
	if err := r.query(ctx, includes).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id)
		}
		return nil, errs.NewPersistenceError("load product", err)
	}
	return ToDomain(dto)
}

func (r *GormProductRepository) GetMany(ctx context.Context, ids []int64) (map[int64]*catalog.Product, error) {
	result := make(map[int64]*catalog.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("load products", err)
	}

	products, err := toDomainList(dtos)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		result[p.ID()] = p
	}

	for _, id := range ids {
		if _, ok := result[id]; !ok {
			return nil, errs.NewObjectNotFoundError("product", id)
		}
	}
	return result, nil
}

func (r *GormProductRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, errs.NewPersistenceError("count products by category", err)
	}
	return count, nil
}

func (r *GormProductRepository) Add(ctx context.Context, p *catalog.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID() != 0 {
		return catalog.ErrProductIDAlreadySet
	}

	dto := FromDomain(p)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("add product", err)
	}
	if err := p.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(p)
	return nil
}

func (r *GormProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := FromDomain(p)
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return errs.NewPersistenceError("update product", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", dto.ID)
	}

	r.tracker.TrackAggregate(p)
	return nil
}

func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id)
	if result.Error != nil {
		return errs.NewPersistenceError("delete product", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id)
	}

	r.tracker.TrackAggregate(id)
	return nil
}

func (r *GormProductRepository) query(ctx context.Context, includes []ports.ProductInclude) *gorm.DB {
	q := r.db.WithContext(ctx)
	if slices.Contains(includes, ports.ProductIncludeCategory) {
		q = q.Preload("Category")
	}
	return q
}

func toDomainList(dtos []ProductDTO) ([]*catalog.Product, error) {
	products := make([]*catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
