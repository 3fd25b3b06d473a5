package commands_test

import (
	"context"
	"errors"
	"testing"

	"shoppingcart/internal/core/application/usecases/commands"
	"shoppingcart/internal/core/domain/model/catalog"
	"shoppingcart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrUpdateCategoryCommandHandler_Handle_Create(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCreateOrUpdateCategoryCommand(0, "Books")
	require.NoError(t, err)

	categoryRepo := new(MockCategoryRepository)
	uow := new(MockCatalogUoW)
	factory := new(MockCatalogUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CategoryRepository").Return(categoryRepo).Once(),
		categoryRepo.On("Add", ctx, mock.MatchedBy(func(c *catalog.Category) bool {
			return c.Name() == "Books" && c.IsNew()
		})).Run(func(args mock.Arguments) {
			_ = args.Get(1).(*catalog.Category).AssignID(11)
		}).Return(nil).Once(),
		uow.On("Save", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateOrUpdateCategoryCommandHandler(factory)
	id, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	categoryRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	categoryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrUpdateCategoryCommandHandler_Handle_Update(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCreateOrUpdateCategoryCommand(4, "Fiction")
	require.NoError(t, err)

	categoryRepo := new(MockCategoryRepository)
	uow := new(MockCatalogUoW)
	factory := new(MockCatalogUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CategoryRepository").Return(categoryRepo).Once(),
		categoryRepo.On("Update", ctx, mock.MatchedBy(func(c *catalog.Category) bool {
			return c.ID() == 4 && c.Name() == "Fiction"
		})).Return(nil).Once(),
		uow.On("Save", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateOrUpdateCategoryCommandHandler(factory)
	id, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
	categoryRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	categoryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrUpdateCategoryCommandHandler_Handle_InvalidCommand(t *testing.T) {
	ctx := context.Background()

	_, err := commands.NewCreateOrUpdateCategoryCommand(0, "   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	factory := new(MockCatalogUoWFactory)
	handler := commands.NewCreateOrUpdateCategoryCommandHandler(factory)
	_, err = handler.Handle(ctx, commands.CreateOrUpdateCategoryCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrUpdateCategoryCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrUpdateCategoryCommandHandler_Handle_SaveError(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewCreateOrUpdateCategoryCommand(0, "Books")
	require.NoError(t, err)

	categoryRepo := new(MockCategoryRepository)
	uow := new(MockCatalogUoW)
	factory := new(MockCatalogUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CategoryRepository").Return(categoryRepo).Once()
	categoryRepo.On("Add", ctx, mock.Anything).Return(nil).Once()
	uow.On("Save", ctx).Return(errors.New("connection reset")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCreateOrUpdateCategoryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPersistence)
	assert.Contains(t, err.Error(), "connection reset")
	uow.AssertExpectations(t)
}
