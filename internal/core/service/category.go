package service

import (
	"context"
	"strings"
	"time"

	"todotrack/internal/core/domain"
	"todotrack/internal/core/port"
)

type CategoryService struct {
	repo port.CategoryRepository
}

func NewCategoryService(repo port.CategoryRepository) *CategoryService {
	return &CategoryService{repo}
}

func (cs *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return cs.repo.GetAll(ctx)
}

func (cs *CategoryService) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	category.Name = strings.TrimSpace(category.Name)

	if category.Name == "" {
		return domain.Category{}, &domain.ValidationError{Field: "name", Message: "name is required"}
	}

	if category.Color == "" {
		category.Color = "#64748b"
	}

	category.CreatedAt = time.Now()

	return cs.repo.Create(ctx, category)
}

func (cs *CategoryService) Delete(ctx context.Context, id int) error {
	return cs.repo.Delete(ctx, id)
}
