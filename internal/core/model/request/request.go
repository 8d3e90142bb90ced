package request

import "time"

type SignUpRequest struct {
	Username string `json:"username,omitempty" validate:"required,min=3,max=100"`
	Email    string `json:"email,omitempty" validate:"required,email,max=255"`
	Password string `json:"password,omitempty" validate:"required,min=6,max=100"`
}

// LoginRequest accepts a username or an email in the username field, the way
// the login form submits it.
type LoginRequest struct {
	Username string `json:"username,omitempty" validate:"required,max=255"`
	Password string `json:"password,omitempty" validate:"required,min=6,max=100"`
}

type TodoRequest struct {
	Title           string     `json:"title,omitempty" validate:"required,max=255"`
	Description     string     `json:"description,omitempty" validate:"max=1000"`
	DueDate         time.Time  `json:"due_date,omitempty" validate:"required"`
	Priority        string     `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	CategoryID      *int       `json:"category_id,omitempty"`
	ReminderEnabled bool       `json:"reminder_enabled,omitempty"`
	ReminderAt      *time.Time `json:"reminder_at,omitempty"`
	Completed       bool       `json:"completed,omitempty"`
}

type ToggleCompleteRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

type ActivityRequest struct {
	Action      string `json:"action,omitempty" validate:"required,oneof=CREATE UPDATE COMPLETE DELETE"`
	Description string `json:"description,omitempty" validate:"max=1000"`
	TodoTitle   string `json:"todo_title,omitempty" validate:"max=255"`
}

type CategoryRequest struct {
	Name  string `json:"name,omitempty" validate:"required,max=100"`
	Color string `json:"color,omitempty" validate:"required,max=32"`
}
