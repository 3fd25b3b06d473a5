package categoryrepo

import (
	"context"
	"errors"

	"shoppingcart/internal/core/domain/model/catalog"
	"shoppingcart/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCategoryRepository implements ports.CategoryRepository using GORM.
type GormCategoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

// NewGormCategoryRepository creates a new GORM category repository.
func NewGormCategoryRepository(db *gorm.DB, tracker aggregateTracker) *GormCategoryRepository {
	return &GormCategoryRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCategoryRepository) GetAll(ctx context.Context) ([]*catalog.Category, error) {
	var dtos []CategoryDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("load categories", err)
	}

	categories := make([]*catalog.Category, 0, len(dtos))
	for _, dto := range dtos {
		c, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *GormCategoryRepository) Get(ctx context.Context, id int64) (*catalog.Category, error) {
	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", id)
		}
		return nil, errs.NewPersistenceError("load category", err)
	}
	return ToDomain(dto)
}

// Add stages an insert and assigns the generated id to the category.
func (r *GormCategoryRepository) Add(ctx context.Context, c *catalog.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.IsNew() {
		return catalog.ErrCategoryIDAlreadySet
	}

	dto := FromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("add category", err)
	}
	if err := c.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(c)
	return nil
}

func (r *GormCategoryRepository) Update(ctx context.Context, c *catalog.Category) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := FromDomain(c)
	result := r.db.WithContext(ctx).
		Model(&CategoryDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return errs.NewPersistenceError("update category", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category", dto.ID)
	}

	r.tracker.TrackAggregate(c)
	return nil
}

func (r *GormCategoryRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&CategoryDTO{}, "id = ?", id)
	if result.Error != nil {
		return errs.NewPersistenceError("delete category", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category", id)
	}

	r.tracker.TrackAggregate(id)
	return nil
}
