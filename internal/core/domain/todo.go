package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Priorities in ascending order of urgency. Reports group in this order.
var Priorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Todo struct {
	ID              int
	UUID            uuid.UUID
	Title           string `validate:"required,max=255"`
	Description     string `validate:"max=1000"`
	DueDate         time.Time
	Priority        string `validate:"omitempty,oneof=low medium high urgent"`
	CategoryID      *int
	ReminderEnabled bool
	ReminderAt      *time.Time
	Completed       bool
	UserId          int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate enforces the write-time invariants: non-empty title, a due date,
// a known priority, and reminder_at present whenever reminders are enabled.
func (t *Todo) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}

	if t.DueDate.IsZero() {
		return &ValidationError{Field: "due_date", Message: "due date is required"}
	}

	if t.Priority != "" && !ValidPriority(t.Priority) {
		return &ValidationError{Field: "priority", Message: "priority must be one of low, medium, high, urgent"}
	}

	if t.ReminderEnabled && t.ReminderAt == nil {
		return &ValidationError{Field: "reminder_at", Message: "reminder date/time is required when reminders are enabled"}
	}

	return nil
}

func (t *Todo) BelongsToUser(userID int) bool {
	return t.UserId == userID
}

// IsOverdue reports whether the todo's due date has passed at the given
// instant. Completed todos are never overdue.
func (t *Todo) IsOverdue(now time.Time) bool {
	return !t.Completed && t.DueDate.Before(now)
}

// IsReminderDue reports whether an enabled reminder has fired at the given
// instant. Firing is derived on every read; nothing is persisted.
func (t *Todo) IsReminderDue(now time.Time) bool {
	return t.ReminderEnabled && t.ReminderAt != nil && t.ReminderAt.Before(now)
}

func (t *Todo) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":               t.ID,
		"uuid":             t.UUID,
		"title":            t.Title,
		"description":      t.Description,
		"due_date":         t.DueDate,
		"priority":         t.Priority,
		"category_id":      t.CategoryID,
		"reminder_enabled": t.ReminderEnabled,
		"reminder_at":      t.ReminderAt,
		"completed":        t.Completed,
		"user_id":          t.UserId,
		"created_at":       t.CreatedAt,
		"updated_at":       t.UpdatedAt,
	}
}
