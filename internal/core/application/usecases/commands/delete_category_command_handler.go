package commands

import (
	"context"
	"fmt"

	"shoppingcart/internal/pkg/errs"
)

// DeleteCategoryCommandHandler removes a category no product references.
type DeleteCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteCategoryCommandHandler(uowFactory CatalogUoWFactory) DeleteCategoryCommandHandler {
	return DeleteCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with errs.ErrObjectNotFound for an unknown id and with
// errs.ErrValueIsInvalid while products still reference the category. In both
// cases nothing is deleted and nothing is saved.
func (h *DeleteCategoryCommandHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	categoryRepo := uow.CategoryRepository()
	category, err := categoryRepo.Get(ctx, cmd.ID())
	if err != nil {
		return err
	}

	inUse, err := uow.ProductRepository().CountByCategory(ctx, category.ID())
	if err != nil {
		return err
	}
	if inUse > 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"category is in use",
			fmt.Errorf("%d products reference category %d", inUse, category.ID()),
		)
	}

	if err := categoryRepo.Delete(ctx, category.ID()); err != nil {
		return err
	}

	if err := uow.Save(ctx); err != nil {
		return asPersistenceError("delete category", err)
	}
	return nil
}
