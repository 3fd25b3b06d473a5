package postgres

import (
	"fmt"

	"shoppingcart/internal/adapters/out/postgres/categoryrepo"
	"shoppingcart/internal/adapters/out/postgres/orderrepo"
	"shoppingcart/internal/adapters/out/postgres/productrepo"
	"shoppingcart/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Tables lists every table in dependency order, parents first.
var Tables = []string{"categories", "products", "application_users", "order_headers", "order_details"}

// Migrate creates or updates the schema for every persisted aggregate.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&categoryrepo.CategoryDTO{},
		&productrepo.ProductDTO{},
		&userrepo.UserDTO{},
		&orderrepo.OrderHeaderDTO{},
		&orderrepo.OrderDetailDTO{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
