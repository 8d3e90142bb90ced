package port

import (
	"context"

	"todotrack/internal/core/domain"
)

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, category domain.Category) (domain.Category, error)
	Delete(ctx context.Context, id int) error
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, category domain.Category) (domain.Category, error)
	Delete(ctx context.Context, id int) error
}
