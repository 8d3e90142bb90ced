package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"todotrack/internal/core/domain"
	"todotrack/internal/core/model/response"
	"todotrack/internal/core/port"
	"todotrack/internal/core/util"
)

const listCacheTTL = 30 * time.Second

// TodoService owns the todo lifecycle: validation, ownership-scoped
// mutations, read-time temporal annotation, and best-effort activity
// recording. The recorder never participates in the mutation's outcome.
type TodoService struct {
	repo     port.TodoRepository
	recorder port.ActivityRecorder
	cache    port.CacheRepository
	sf       singleflight.Group
}

// NewTodoService creates a TodoService. Recorder and cache may be nil;
// activity recording and list caching are then disabled.
func NewTodoService(repo port.TodoRepository, recorder port.ActivityRecorder, cache port.CacheRepository) *TodoService {
	return &TodoService{
		repo:     repo,
		recorder: recorder,
		cache:    cache,
	}
}

func (ts *TodoService) List(ctx context.Context, userId int, limit int, cursor string) (*response.CursorResponse, error) {
	// Only the first page is cached; cursors fan out too much to be worth it.
	if ts.cache != nil && cursor == "" {
		key := listCacheKey(userId, limit)

		v, err, _ := ts.sf.Do(key, func() (interface{}, error) {
			if cached, err := ts.cache.Get(ctx, key); err == nil && cached != nil {
				var resp response.CursorResponse
				if err := json.Unmarshal(cached, &resp); err == nil {
					return &resp, nil
				}
			}

			resp, err := ts.list(ctx, userId, limit, "")
			if err != nil {
				return nil, err
			}

			if encoded, err := json.Marshal(resp); err == nil {
				if err := ts.cache.Set(ctx, key, encoded, listCacheTTL); err != nil {
					slog.Warn("Todo list cache set failed", "error", err)
				}
			}

			return resp, nil
		})

		if err != nil {
			return nil, err
		}

		return v.(*response.CursorResponse), nil
	}

	return ts.list(ctx, userId, limit, cursor)
}

func (ts *TodoService) list(ctx context.Context, userId int, limit int, cursor string) (*response.CursorResponse, error) {
	rows, hasNext, err := ts.repo.GetAllWithCursor(ctx, userId, limit, cursor)

	data := make([]response.TodoResponse, 0)

	if err != nil {
		dataBytes, _ := util.Serialize(data)

		resp := response.CursorResponse{Size: 0, Data: dataBytes}
		return &resp, err
	}

	now := time.Now()

	for _, todo := range rows {
		data = append(data, ToTodoResponse(todo, now))
	}

	var nextCursor string

	if hasNext && len(rows) > 0 {
		last := rows[len(rows)-1]
		nextCursor = util.EncodeCursor(last.CreatedAt.Format(time.RFC3339Nano), last.ID)
	}

	dataBytes, _ := util.Serialize(data)

	resp := response.CursorResponse{
		Size: len(data),
		Data: dataBytes,
	}
	resp.Pagination.HasNext = hasNext
	resp.Pagination.NextCursor = nextCursor

	return &resp, nil
}

func (ts *TodoService) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	now := time.Now()

	newTodo := domain.Todo{
		UUID:            uuid.New(),
		Title:           strings.TrimSpace(todo.Title),
		Description:     todo.Description,
		DueDate:         todo.DueDate,
		Priority:        todo.Priority,
		CategoryID:      todo.CategoryID,
		ReminderEnabled: todo.ReminderEnabled,
		ReminderAt:      todo.ReminderAt,
		Completed:       todo.Completed,
		UserId:          todo.UserId,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if newTodo.Priority == "" {
		newTodo.Priority = domain.PriorityMedium
	}

	if !newTodo.ReminderEnabled {
		newTodo.ReminderAt = nil
	}

	if err := newTodo.Validate(); err != nil {
		return domain.Todo{}, err
	}

	saved, err := ts.repo.Create(ctx, newTodo)

	if err != nil {
		slog.Error("Repository create failed", "error", err, "title", newTodo.Title)
		return domain.Todo{}, err
	}

	ts.record(ctx, saved.UserId, domain.ActionCreate, fmt.Sprintf("Created todo %q", saved.Title), saved.Title)
	ts.invalidateListCache(ctx, saved.UserId)

	return saved, nil
}

// Update replaces the mutable fields of a todo. Flipping completed from
// false to true is recorded as COMPLETE; everything else as UPDATE.
func (ts *TodoService) Update(ctx context.Context, userId int, uid string, patch domain.Todo) (domain.Todo, error) {
	existing, err := ts.repo.GetByUUID(ctx, userId, uid)

	if err != nil {
		return domain.Todo{}, err
	}

	merged := existing
	merged.Title = strings.TrimSpace(patch.Title)
	merged.Description = patch.Description
	merged.DueDate = patch.DueDate
	merged.CategoryID = patch.CategoryID
	merged.ReminderEnabled = patch.ReminderEnabled
	merged.ReminderAt = patch.ReminderAt
	merged.Completed = patch.Completed
	merged.UpdatedAt = time.Now()

	if patch.Priority != "" {
		merged.Priority = patch.Priority
	}

	if !merged.ReminderEnabled {
		merged.ReminderAt = nil
	}

	if err := merged.Validate(); err != nil {
		return domain.Todo{}, err
	}

	updated, err := ts.repo.Update(ctx, merged)

	if err != nil {
		return domain.Todo{}, err
	}

	if !existing.Completed && updated.Completed {
		ts.record(ctx, userId, domain.ActionComplete, fmt.Sprintf("Completed todo %q", updated.Title), updated.Title)
	} else {
		ts.record(ctx, userId, domain.ActionUpdate, fmt.Sprintf("Updated todo %q", updated.Title), updated.Title)
	}

	ts.invalidateListCache(ctx, userId)

	return updated, nil
}

// ToggleComplete flips the completed flag and nothing else. Asking for the
// state the todo is already in is a no-op: nothing is written and no
// activity entry is recorded.
func (ts *TodoService) ToggleComplete(ctx context.Context, userId int, uid string, completed bool) (domain.Todo, error) {
	existing, err := ts.repo.GetByUUID(ctx, userId, uid)

	if err != nil {
		return domain.Todo{}, err
	}

	if existing.Completed == completed {
		return existing, nil
	}

	toggled := existing
	toggled.Completed = completed
	toggled.UpdatedAt = time.Now()

	updated, err := ts.repo.Update(ctx, toggled)

	if err != nil {
		return domain.Todo{}, err
	}

	if completed {
		ts.record(ctx, userId, domain.ActionComplete, fmt.Sprintf("Completed todo %q", updated.Title), updated.Title)
	} else {
		ts.record(ctx, userId, domain.ActionUpdate, fmt.Sprintf("Reopened todo %q", updated.Title), updated.Title)
	}

	ts.invalidateListCache(ctx, userId)

	return updated, nil
}

func (ts *TodoService) Delete(ctx context.Context, userId int, uid string) error {
	existing, err := ts.repo.GetByUUID(ctx, userId, uid)

	if err != nil {
		return err
	}

	if err := ts.repo.Delete(ctx, userId, uid); err != nil {
		return err
	}

	ts.record(ctx, userId, domain.ActionDelete, fmt.Sprintf("Deleted todo %q", existing.Title), existing.Title)
	ts.invalidateListCache(ctx, userId)

	return nil
}

func (ts *TodoService) DeleteAll(ctx context.Context, userId int) error {
	if err := ts.repo.DeleteAll(ctx, userId); err != nil {
		return err
	}

	ts.record(ctx, userId, domain.ActionDelete, "Deleted all todos", "")
	ts.invalidateListCache(ctx, userId)

	return nil
}

// record appends an activity entry best-effort. The triggering mutation has
// already committed; a recording failure is logged and swallowed.
func (ts *TodoService) record(ctx context.Context, userId int, action domain.ActivityAction, description, todoTitle string) {
	if ts.recorder == nil {
		return
	}

	if _, err := ts.recorder.Record(ctx, userId, action, description, todoTitle); err != nil {
		slog.Error("Activity record failed", "action", action, "user_id", userId, "error", err)
	}
}

func (ts *TodoService) invalidateListCache(ctx context.Context, userId int) {
	if ts.cache == nil {
		return
	}

	if err := ts.cache.DeleteByPrefix(ctx, listCachePrefix(userId)); err != nil {
		slog.Warn("Todo list cache invalidation failed", "user_id", userId, "error", err)
	}
}

func listCachePrefix(userId int) string {
	return fmt.Sprintf("todo:list:%d:", userId)
}

func listCacheKey(userId, limit int) string {
	return fmt.Sprintf("%s%d", listCachePrefix(userId), limit)
}

// ToTodoResponse annotates a stored todo with the state derived from the
// evaluation instant: overdue, reminder fired, and the due-date countdown.
func ToTodoResponse(todo domain.Todo, now time.Time) response.TodoResponse {
	return response.TodoResponse{
		UUID:            todo.UUID,
		Title:           todo.Title,
		Description:     todo.Description,
		DueDate:         todo.DueDate,
		Priority:        todo.Priority,
		CategoryID:      todo.CategoryID,
		ReminderEnabled: todo.ReminderEnabled,
		ReminderAt:      todo.ReminderAt,
		Completed:       todo.Completed,
		Overdue:         todo.IsOverdue(now),
		ReminderDue:     todo.IsReminderDue(now),
		DueCountdown:    domain.Countdown(todo.DueDate, now),
		CreatedAt:       todo.CreatedAt,
		UpdatedAt:       todo.UpdatedAt,
	}
}
