package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"todotrack/internal/adapter/database"
	"todotrack/internal/core/domain"
	"todotrack/internal/core/port"
	tel "todotrack/internal/core/telemetry"
	"todotrack/internal/core/util"
)

// ownedBy is the single authorization guard: every statement that touches
// todos carries this predicate, so a row owned by another user is
// indistinguishable from a row that does not exist.
func ownedBy(userId int) sq.Eq {
	return sq.Eq{"user_id": userId}
}

// storageErr folds driver failures into ErrStorageUnavailable so the
// transport layer can answer with a retryable status.
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}

type TodoRepository struct {
	db        *database.DB
	scanner   *database.Scanner
	telemetry port.Telemetry
}

func NewTodoRepository(db *database.DB, telemetry port.Telemetry) port.TodoRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &TodoRepository{
		db:        db,
		scanner:   database.NewScanner(),
		telemetry: telemetry,
	}
}

func (tr *TodoRepository) GetAllWithCursor(ctx context.Context, userId int, limit int, cursor string) ([]domain.Todo, bool, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "GetAllWithCursor", "todo", map[string]interface{}{
		"db.table":          "todos",
		"user.id":           userId,
		"pagination.limit":  limit,
		"pagination.cursor": cursor,
	})
	defer span.End()

	op := tel.StartOperation(tr.telemetry, ctx, "GetAllWithCursor", "todo")

	actualLimit := limit + 1

	query := tr.db.QueryBuilder.Select("*").
		From("todos").
		Where(ownedBy(userId)).
		OrderBy("created_at DESC, id DESC").
		Limit(uint64(actualLimit))

	if cursor != "" {
		datetimeStr, id, err := util.DecodeCursor(cursor)
		if err != nil {
			span.SetStatus("error", err.Error())
			span.RecordError(err)
			op.End(err)
			return []domain.Todo{}, false, err
		}

		datetime, err := time.Parse(time.RFC3339, datetimeStr)
		if err != nil {
			span.SetStatus("error", err.Error())
			span.RecordError(err)
			op.End(err)
			return []domain.Todo{}, false, err
		}

		query = query.Where(sq.Or{
			sq.Lt{"created_at": datetime},
			sq.And{
				sq.Eq{"created_at": datetime},
				sq.Lt{"id": id},
			},
		})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		op.End(err)
		return []domain.Todo{}, false, err
	}

	tr.telemetry.RecordRepositoryQuery(ctx, "GetAllWithCursor", "todo", sqlStr, args)

	rows, err := tr.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		op.End(err)
		return []domain.Todo{}, false, storageErr(err)
	}
	defer rows.Close()

	var todos []domain.Todo
	if err := tr.scanner.ScanRowsToSlice(rows, &todos); err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		op.End(err)
		return []domain.Todo{}, false, storageErr(err)
	}

	hasNext := len(todos) == actualLimit
	if hasNext {
		todos = todos[:limit]
	}

	span.SetAttributes(map[string]interface{}{
		"db.rows_returned": len(todos),
		"db.has_next":      hasNext,
	})

	span.SetStatus("ok", "")
	op.End(nil)

	return todos, hasNext, nil
}

func (tr *TodoRepository) GetAll(ctx context.Context, userId int) ([]domain.Todo, error) {
	query := tr.db.QueryBuilder.Select("*").
		From("todos").
		Where(ownedBy(userId)).
		OrderBy("created_at DESC, id DESC")

	sqlStr, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := tr.db.QueryContext(ctx, sqlStr, args...)

	if err != nil {
		return nil, storageErr(err)
	}

	defer rows.Close()

	var todos []domain.Todo
	if err := tr.scanner.ScanRowsToSlice(rows, &todos); err != nil {
		return nil, storageErr(err)
	}

	return todos, nil
}

func (tr *TodoRepository) GetByUUID(ctx context.Context, userId int, uid string) (domain.Todo, error) {
	query := tr.db.QueryBuilder.Select("*").
		From("todos").
		Where(sq.Eq{"uuid": uid}).
		Where(ownedBy(userId)).
		Limit(1)

	sqlStr, args, err := query.ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	rows, err := tr.db.QueryContext(ctx, sqlStr, args...)

	if err != nil {
		return domain.Todo{}, storageErr(err)
	}

	defer rows.Close()

	var todo domain.Todo
	err = tr.scanner.ScanRowToStruct(rows, &todo)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Todo{}, domain.ErrNotFound
	}

	if err != nil {
		return domain.Todo{}, storageErr(err)
	}

	return todo, nil
}

func (tr *TodoRepository) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "Create", "todo", map[string]interface{}{
		"db.table":   "todos",
		"todo.uuid":  todo.UUID.String(),
		"user.id":    todo.UserId,
		"todo.title": todo.Title,
	})
	defer span.End()

	op := tel.StartOperation(tr.telemetry, ctx, "Create", "todo")

	uid := todo.UUID.String()

	query, args, err := tr.db.QueryBuilder.Insert("todos").
		Columns("uuid", "title", "description", "due_date", "priority", "category_id",
			"reminder_enabled", "reminder_at", "completed", "user_id", "created_at", "updated_at").
		Values(uid, todo.Title, todo.Description, todo.DueDate, todo.Priority, todo.CategoryID,
			todo.ReminderEnabled, todo.ReminderAt, todo.Completed, todo.UserId, todo.CreatedAt, todo.UpdatedAt).
		ToSql()

	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		op.End(err)
		return domain.Todo{}, err
	}

	tr.telemetry.RecordRepositoryQuery(ctx, "Create", "todo", query, args)

	if _, err := tr.db.ExecContext(ctx, query, args...); err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		op.End(err)
		return domain.Todo{}, storageErr(err)
	}

	saved, err := tr.GetByUUID(ctx, todo.UserId, uid)
	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		op.End(err)
		return domain.Todo{}, err
	}

	tr.telemetry.RecordBusinessEvent(ctx, "created", "todo", uid, saved.UserId, map[string]interface{}{
		"title":    saved.Title,
		"priority": saved.Priority,
	})

	span.SetStatus("ok", "")
	op.End(nil)

	return saved, nil
}

func (tr *TodoRepository) Update(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "Update", "todo", map[string]interface{}{
		"db.table":  "todos",
		"todo.uuid": todo.UUID.String(),
		"user.id":   todo.UserId,
	})
	defer span.End()

	op := tel.StartOperation(tr.telemetry, ctx, "Update", "todo")

	fields := todo.ToMap()
	delete(fields, "id")
	delete(fields, "uuid")
	delete(fields, "user_id")
	delete(fields, "created_at")

	query, args, err := tr.db.QueryBuilder.Update("todos").
		SetMap(fields).
		Where(sq.Eq{"uuid": todo.UUID.String()}).
		Where(ownedBy(todo.UserId)).
		ToSql()

	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		op.End(err)
		return domain.Todo{}, err
	}

	tr.telemetry.RecordRepositoryQuery(ctx, "Update", "todo", query, args)

	result, err := tr.db.ExecContext(ctx, query, args...)
	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		op.End(err)
		return domain.Todo{}, storageErr(err)
	}

	rowsAffected, _ := result.RowsAffected()

	if rowsAffected == 0 {
		span.SetStatus("error", domain.ErrNotFound.Error())
		op.End(domain.ErrNotFound)
		return domain.Todo{}, domain.ErrNotFound
	}

	updated, err := tr.GetByUUID(ctx, todo.UserId, todo.UUID.String())
	if err != nil {
		span.SetStatus("error", err.Error())
		span.RecordError(err)
		op.End(err)
		return domain.Todo{}, err
	}

	tr.telemetry.RecordBusinessEvent(ctx, "updated", "todo", todo.UUID.String(), updated.UserId, map[string]interface{}{
		"completed": updated.Completed,
	})

	span.SetStatus("ok", "")
	op.End(nil)

	return updated, nil
}

func (tr *TodoRepository) Delete(ctx context.Context, userId int, uid string) error {
	query, args, err := tr.db.QueryBuilder.Delete("todos").
		Where(sq.Eq{"uuid": uid}).
		Where(ownedBy(userId)).
		ToSql()

	if err != nil {
		return err
	}

	result, err := tr.db.ExecContext(ctx, query, args...)

	if err != nil {
		return storageErr(err)
	}

	rowsAffected, _ := result.RowsAffected()

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// DeleteAll removes every todo of one owner in a single statement, so rows
// created after the statement executes are never swept up by it.
func (tr *TodoRepository) DeleteAll(ctx context.Context, userId int) error {
	query, args, err := tr.db.QueryBuilder.Delete("todos").
		Where(ownedBy(userId)).
		ToSql()

	if err != nil {
		return err
	}

	if _, err := tr.db.ExecContext(ctx, query, args...); err != nil {
		return storageErr(err)
	}

	return nil
}
