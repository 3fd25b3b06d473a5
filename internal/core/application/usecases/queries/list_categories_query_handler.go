package queries

import (
	"context"
)

type ListCategoriesQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewListCategoriesQueryHandler(uowFactory ReadUoWFactory) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{uowFactory: uowFactory}
}

// Handle returns an empty slice, never nil, when there are no categories.
func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]ListCategoriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categories, err := h.uowFactory.Create().CategoryRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]ListCategoriesQueryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, ListCategoriesQueryResponse{ID: c.ID(), Name: c.Name()})
	}
	return res, nil
}
