package response

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	UUID      uuid.UUID `json:"uuid"`
	Username  string    `json:"username,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// TodoResponse carries the stored fields plus the read-time derived state
// (overdue, reminder_due, due_countdown) computed against the request clock.
type TodoResponse struct {
	UUID            uuid.UUID  `json:"uuid"`
	Title           string     `json:"title,omitempty"`
	Description     string     `json:"description,omitempty"`
	DueDate         time.Time  `json:"due_date"`
	Priority        string     `json:"priority,omitempty"`
	CategoryID      *int       `json:"category_id,omitempty"`
	ReminderEnabled bool       `json:"reminder_enabled"`
	ReminderAt      *time.Time `json:"reminder_at,omitempty"`
	Completed       bool       `json:"completed"`
	Overdue         bool       `json:"overdue"`
	ReminderDue     bool       `json:"reminder_due"`
	DueCountdown    string     `json:"due_countdown,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ActivityResponse struct {
	ID          int       `json:"id"`
	Action      string    `json:"action"`
	Description string    `json:"description,omitempty"`
	TodoTitle   string    `json:"todo_title,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CategoryResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type ReportSummary struct {
	Total           int `json:"total"`
	Completed       int `json:"completed"`
	Active          int `json:"active"`
	Overdue         int `json:"overdue"`
	CompletionRate  int `json:"completionRate"`
	RecentCompleted int `json:"recentCompleted"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

type PriorityCount struct {
	Priority string `json:"priority"`
	Count    int    `json:"count"`
}

type ReportResponse struct {
	Summary    ReportSummary   `json:"summary"`
	ByCategory []CategoryCount `json:"byCategory"`
	ByPriority []PriorityCount `json:"byPriority"`
}

type CursorResponse struct {
	Size       int             `json:"size"`
	Data       json.RawMessage `json:"data"`
	Pagination struct {
		HasNext    bool   `json:"has_next"`
		NextCursor string `json:"next_cursor"`
	} `json:"pagination"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ResponseError struct {
	Code    string            `json:"code"`
	Errors  []ValidationError `json:"errors"`
	Details any               `json:"details,omitempty"`
}

type SuccessResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error ResponseError `json:"error"`
}
