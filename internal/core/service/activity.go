package service

import (
	"context"
	"time"

	"todotrack/internal/core/domain"
	"todotrack/internal/core/port"
)

// ActivityService appends and reads the per-user activity feed. It sits
// behind the ActivityRecorder port so mutations elsewhere can log without
// knowing how entries are stored.
type ActivityService struct {
	repo port.ActivityRepository
}

func NewActivityService(repo port.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

func (as *ActivityService) Record(ctx context.Context, userId int, action domain.ActivityAction, description, todoTitle string) (domain.ActivityLog, error) {
	if !action.Valid() {
		return domain.ActivityLog{}, &domain.ValidationError{Field: "action", Message: "unknown activity action"}
	}

	entry := domain.ActivityLog{
		UserId:      userId,
		Action:      action,
		Description: description,
		TodoTitle:   todoTitle,
		CreatedAt:   time.Now(),
	}

	return as.repo.Create(ctx, entry)
}

func (as *ActivityService) Recent(ctx context.Context, userId int, limit int) ([]domain.ActivityLog, error) {
	return as.repo.Recent(ctx, userId, limit)
}
