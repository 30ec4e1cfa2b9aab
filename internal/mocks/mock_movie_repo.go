package mocks

import (
	"context"

	"github.com/metinatakli/movie-discovery/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetByCategoryFunc func(ctx context.Context, category domain.Category) (*domain.CategoryPage, error)
	SearchFunc        func(ctx context.Context, keyword string, page int) (*domain.CategoryPage, error)
}

func (m *MockMovieRepo) GetByCategory(ctx context.Context, category domain.Category) (*domain.CategoryPage, error) {
	return m.GetByCategoryFunc(ctx, category)
}

func (m *MockMovieRepo) Search(ctx context.Context, keyword string, page int) (*domain.CategoryPage, error) {
	return m.SearchFunc(ctx, keyword, page)
}
