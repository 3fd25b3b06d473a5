// Package productrepo persists catalog products with GORM.
package productrepo

import (
	"shoppingcart/internal/adapters/out/postgres/categoryrepo"
	"shoppingcart/internal/core/domain/model/catalog"
	"shoppingcart/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for products. Category is only
// populated when the category include is requested.
type ProductDTO struct {
	ID          int64                     `gorm:"primaryKey;autoIncrement"`
	Name        string                    `gorm:"size:200;not null"`
	Description string                    `gorm:"type:text"`
	Price       decimal.Decimal           `gorm:"type:numeric(12,2);not null"`
	CategoryID  int64                     `gorm:"not null;index"`
	Category    *categoryrepo.CategoryDTO `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func FromDomain(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().Amount(),
		CategoryID:  p.CategoryID(),
	}
}

// ToDomain restores a product and, when it was preloaded, its category.
func ToDomain(dto ProductDTO) (*catalog.Product, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	p, err := catalog.RestoreProduct(dto.ID, dto.Name, dto.Description, price, dto.CategoryID)
	if err != nil {
		return nil, err
	}

	if dto.Category != nil {
		c, err := categoryrepo.ToDomain(*dto.Category)
		if err != nil {
			return nil, err
		}
		if err := p.AttachCategory(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}
