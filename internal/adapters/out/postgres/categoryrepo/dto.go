// Package categoryrepo persists catalog categories with GORM.
package categoryrepo

import (
	"shoppingcart/internal/core/domain/model/catalog"
)

// CategoryDTO represents the database structure for categories.
type CategoryDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:100;not null"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

// FromDomain converts a category to its database representation.
func FromDomain(c *catalog.Category) CategoryDTO {
	return CategoryDTO{
		ID:   c.ID(),
		Name: c.Name(),
	}
}

// ToDomain restores a category from its database representation.
func ToDomain(dto CategoryDTO) (*catalog.Category, error) {
	return catalog.RestoreCategory(dto.ID, dto.Name)
}
