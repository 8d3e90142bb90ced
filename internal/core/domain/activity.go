package domain

import "time"

type ActivityAction string

const (
	ActionCreate   ActivityAction = "CREATE"
	ActionUpdate   ActivityAction = "UPDATE"
	ActionComplete ActivityAction = "COMPLETE"
	ActionDelete   ActivityAction = "DELETE"
)

func (a ActivityAction) Valid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionComplete, ActionDelete:
		return true
	}
	return false
}

// ActivityLog is an append-only audit entry. TodoTitle is a denormalized
// snapshot so entries stay readable after the todo itself is deleted.
type ActivityLog struct {
	ID          int
	UserId      int
	Action      ActivityAction
	Description string
	TodoTitle   string
	CreatedAt   time.Time
}

func (a *ActivityLog) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":          a.ID,
		"user_id":     a.UserId,
		"action":      string(a.Action),
		"description": a.Description,
		"todo_title":  a.TodoTitle,
		"created_at":  a.CreatedAt,
	}
}
