package queries_test

import (
	"context"
	"errors"
	"testing"

	"shoppingcart/internal/core/application/usecases/queries"
	"shoppingcart/internal/core/domain/model/catalog"
	"shoppingcart/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCategoryRepository struct {
	mock.Mock
	ports.CategoryRepository
}

func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]*catalog.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Category), args.Error(1)
}

type MockReadUoW struct {
	mock.Mock
}

func (m *MockReadUoW) CategoryRepository() ports.CategoryRepository {
	return m.Called().Get(0).(ports.CategoryRepository)
}

func (m *MockReadUoW) OrderHeaderRepository() ports.OrderHeaderRepository {
	return m.Called().Get(0).(ports.OrderHeaderRepository)
}

func (m *MockReadUoW) OrderDetailRepository() ports.OrderDetailRepository {
	return m.Called().Get(0).(ports.OrderDetailRepository)
}

type MockReadUoWFactory struct{ mock.Mock }

func (m *MockReadUoWFactory) Create() queries.ReadUoW {
	return m.Called().Get(0).(queries.ReadUoW)
}

func TestListCategoriesQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	books, err := catalog.RestoreCategory(2, "Books")
	require.NoError(t, err)
	music, err := catalog.RestoreCategory(1, "Music")
	require.NoError(t, err)

	repo := new(MockCategoryRepository)
	uow := new(MockReadUoW)
	factory := new(MockReadUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("CategoryRepository").Return(repo).Once(),
		repo.On("GetAll", ctx).Return([]*catalog.Category{books, music}, nil).Once(),
	)

	handler := queries.NewListCategoriesQueryHandler(factory)
	res, err := handler.Handle(ctx, queries.NewListCategoriesQuery())

	require.NoError(t, err)
	assert.Equal(t, []queries.ListCategoriesQueryResponse{
		{ID: 2, Name: "Books"},
		{ID: 1, Name: "Music"},
	}, res)
	repo.AssertExpectations(t)
}

func TestListCategoriesQueryHandler_Handle_Empty(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCategoryRepository)
	uow := new(MockReadUoW)
	factory := new(MockReadUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("CategoryRepository").Return(repo).Once()
	repo.On("GetAll", ctx).Return(nil, nil).Once()

	handler := queries.NewListCategoriesQueryHandler(factory)
	res, err := handler.Handle(ctx, queries.NewListCategoriesQuery())

	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestListCategoriesQueryHandler_Handle_Errors(t *testing.T) {
	ctx := context.Background()

	factory := new(MockReadUoWFactory)
	handler := queries.NewListCategoriesQueryHandler(factory)

	_, err := handler.Handle(ctx, queries.ListCategoriesQuery{})
	require.ErrorIs(t, err, queries.ErrListCategoriesQueryIsNotConstructed)
	factory.AssertNotCalled(t, "Create")

	repo := new(MockCategoryRepository)
	uow := new(MockReadUoW)
	factory.On("Create").Return(uow).Once()
	uow.On("CategoryRepository").Return(repo).Once()
	repo.On("GetAll", ctx).Return(nil, errors.New("boom")).Once()

	_, err = handler.Handle(ctx, queries.NewListCategoriesQuery())
	require.EqualError(t, err, "boom")
}
