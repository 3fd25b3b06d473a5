package commands

import (
	"context"

	"shoppingcart/internal/core/domain/model/catalog"
)

// CreateOrUpdateCategoryCommandHandler stages exactly one Add (new category) or
// one Update (existing category) and saves once.
type CreateOrUpdateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateOrUpdateCategoryCommandHandler(uowFactory CatalogUoWFactory) CreateOrUpdateCategoryCommandHandler {
	return CreateOrUpdateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the id of the created or updated category.
func (h *CreateOrUpdateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateOrUpdateCategoryCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var (
		category *catalog.Category
		err      error
	)
	if cmd.IsCreate() {
		category, err = catalog.NewCategory(cmd.Name())
	} else {
		category, err = catalog.RestoreCategory(cmd.ID(), cmd.Name())
	}
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	categoryRepo := uow.CategoryRepository()
	if cmd.IsCreate() {
		err = categoryRepo.Add(ctx, category)
	} else {
		err = categoryRepo.Update(ctx, category)
	}
	if err != nil {
		return 0, err
	}

	if err = uow.Save(ctx); err != nil {
		return 0, asPersistenceError("save category", err)
	}

	return category.ID(), nil
}
