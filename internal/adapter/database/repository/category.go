package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"todotrack/internal/adapter/database"
	"todotrack/internal/core/domain"
	"todotrack/internal/core/port"
)

type CategoryRepository struct {
	db      *database.DB
	scanner *database.Scanner
}

func NewCategoryRepository(db *database.DB) port.CategoryRepository {
	return &CategoryRepository{
		db:      db,
		scanner: database.NewScanner(),
	}
}

func (cr *CategoryRepository) GetAll(ctx context.Context) ([]domain.Category, error) {
	query := cr.db.QueryBuilder.Select("*").
		From("categories").
		OrderBy("id DESC")

	sqlStr, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := cr.db.QueryContext(ctx, sqlStr, args...)

	if err != nil {
		return nil, storageErr(err)
	}

	defer rows.Close()

	var categories []domain.Category
	if err := cr.scanner.ScanRowsToSlice(rows, &categories); err != nil {
		return nil, storageErr(err)
	}

	return categories, nil
}

func (cr *CategoryRepository) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	query, args, err := cr.db.QueryBuilder.Insert("categories").
		Columns("name", "color", "created_at").
		Values(category.Name, category.Color, category.CreatedAt).
		ToSql()

	if err != nil {
		return domain.Category{}, err
	}

	result, err := cr.db.ExecContext(ctx, query, args...)

	if err != nil {
		return domain.Category{}, storageErr(err)
	}

	if id, err := result.LastInsertId(); err == nil {
		category.ID = int(id)
	}

	return category, nil
}

func (cr *CategoryRepository) Delete(ctx context.Context, id int) error {
	query, args, err := cr.db.QueryBuilder.Delete("categories").
		Where(sq.Eq{"id": id}).
		ToSql()

	if err != nil {
		return err
	}

	result, err := cr.db.ExecContext(ctx, query, args...)

	if err != nil {
		return storageErr(err)
	}

	rowsAffected, _ := result.RowsAffected()

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
