package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"todotrack/internal/adapter/database"
	"todotrack/internal/core/domain"
	"todotrack/internal/core/port"
)

const DefaultActivityLimit = 50

type ActivityRepository struct {
	db      *database.DB
	scanner *database.Scanner
}

func NewActivityRepository(db *database.DB) port.ActivityRepository {
	return &ActivityRepository{
		db:      db,
		scanner: database.NewScanner(),
	}
}

func (ar *ActivityRepository) Create(ctx context.Context, entry domain.ActivityLog) (domain.ActivityLog, error) {
	query, args, err := ar.db.QueryBuilder.Insert("activity_logs").
		Columns("user_id", "action", "description", "todo_title", "created_at").
		Values(entry.UserId, string(entry.Action), entry.Description, entry.TodoTitle, entry.CreatedAt).
		ToSql()

	if err != nil {
		return domain.ActivityLog{}, err
	}

	result, err := ar.db.ExecContext(ctx, query, args...)

	if err != nil {
		return domain.ActivityLog{}, storageErr(err)
	}

	if id, err := result.LastInsertId(); err == nil {
		entry.ID = int(id)
	}

	return entry, nil
}

func (ar *ActivityRepository) Recent(ctx context.Context, userId int, limit int) ([]domain.ActivityLog, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	query := ar.db.QueryBuilder.Select("*").
		From("activity_logs").
		Where(sq.Eq{"user_id": userId}).
		OrderBy("created_at DESC, id DESC").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := ar.db.QueryContext(ctx, sqlStr, args...)

	if err != nil {
		return nil, storageErr(err)
	}

	defer rows.Close()

	var entries []domain.ActivityLog
	if err := ar.scanner.ScanRowsToSlice(rows, &entries); err != nil {
		return nil, storageErr(err)
	}

	return entries, nil
}
