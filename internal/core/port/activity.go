package port

import (
	"context"

	"todotrack/internal/core/domain"
)

type ActivityRepository interface {
	Create(ctx context.Context, entry domain.ActivityLog) (domain.ActivityLog, error)
	Recent(ctx context.Context, userId int, limit int) ([]domain.ActivityLog, error)
}

// ActivityRecorder is the side-observation contract used by the todo store:
// Record is best-effort and must never fail the triggering mutation.
type ActivityRecorder interface {
	Record(ctx context.Context, userId int, action domain.ActivityAction, description, todoTitle string) (domain.ActivityLog, error)
	Recent(ctx context.Context, userId int, limit int) ([]domain.ActivityLog, error)
}
