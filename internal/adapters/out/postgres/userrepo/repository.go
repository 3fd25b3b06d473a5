package userrepo

import (
	"context"
	"errors"

	"shoppingcart/internal/core/domain/model/user"
	"shoppingcart/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormUserRepository) GetAll(ctx context.Context) ([]*user.ApplicationUser, error) {
	var dtos []UserDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("load users", err)
	}

	users := make([]*user.ApplicationUser, 0, len(dtos))
	for _, dto := range dtos {
		u, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *GormUserRepository) Get(ctx context.Context, id string) (*user.ApplicationUser, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id)
		}
		return nil, errs.NewPersistenceError("load user", err)
	}
	return ToDomain(dto)
}

func (r *GormUserRepository) Add(ctx context.Context, u *user.ApplicationUser) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := FromDomain(u)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("add user", err)
	}

	r.tracker.TrackAggregate(u)
	return nil
}

func (r *GormUserRepository) Update(ctx context.Context, u *user.ApplicationUser) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := FromDomain(u)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return errs.NewPersistenceError("update user", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", dto.ID)
	}

	r.tracker.TrackAggregate(u)
	return nil
}

func (r *GormUserRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&UserDTO{}, "id = ?", id)
	if result.Error != nil {
		return errs.NewPersistenceError("delete user", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", id)
	}

	r.tracker.TrackAggregate(id)
	return nil
}
