package port

import (
	"context"

	"todotrack/internal/core/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int) (domain.User, error)
	GetByLogin(ctx context.Context, login string) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
}
