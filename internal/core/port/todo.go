package port

import (
	"context"

	"todotrack/internal/core/domain"
	"todotrack/internal/core/model/response"
)

type TodoRepository interface {
	GetAllWithCursor(ctx context.Context, userId int, limit int, cursor string) ([]domain.Todo, bool, error)
	GetAll(ctx context.Context, userId int) ([]domain.Todo, error)
	GetByUUID(ctx context.Context, userId int, uid string) (domain.Todo, error)
	Create(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	Update(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	Delete(ctx context.Context, userId int, uid string) error
	DeleteAll(ctx context.Context, userId int) error
}

type TodoService interface {
	List(ctx context.Context, userId int, limit int, cursor string) (*response.CursorResponse, error)
	Create(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	Update(ctx context.Context, userId int, uid string, patch domain.Todo) (domain.Todo, error)
	ToggleComplete(ctx context.Context, userId int, uid string, completed bool) (domain.Todo, error)
	Delete(ctx context.Context, userId int, uid string) error
	DeleteAll(ctx context.Context, userId int) error
}
