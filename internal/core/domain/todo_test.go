package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"todotrack/internal/core/domain"
)

func validTodo() domain.Todo {
	return domain.Todo{
		Title:    "Write report",
		DueDate:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Priority: domain.PriorityMedium,
		UserId:   1,
	}
}

func TestValidate_Success(t *testing.T) {
	todo := validTodo()
	assert.NoError(t, todo.Validate())
}

func TestValidate_BlankTitle(t *testing.T) {
	todo := validTodo()
	todo.Title = "   "

	err := todo.Validate()

	assert.Error(t, err)

	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "title", validationErr.Field)
}

func TestValidate_MissingDueDate(t *testing.T) {
	todo := validTodo()
	todo.DueDate = time.Time{}

	err := todo.Validate()

	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "due_date", validationErr.Field)
}

func TestValidate_UnknownPriority(t *testing.T) {
	todo := validTodo()
	todo.Priority = "critical"

	err := todo.Validate()

	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "priority", validationErr.Field)
}

func TestValidate_ReminderEnabledWithoutDate(t *testing.T) {
	todo := validTodo()
	todo.ReminderEnabled = true
	todo.ReminderAt = nil

	err := todo.Validate()

	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "reminder_at", validationErr.Field)
}

func TestValidate_ReminderEnabledWithDate(t *testing.T) {
	todo := validTodo()
	at := todo.DueDate.Add(-time.Hour)
	todo.ReminderEnabled = true
	todo.ReminderAt = &at

	assert.NoError(t, todo.Validate())
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	todo := validTodo()
	todo.DueDate = now.Add(-time.Minute)

	assert.True(t, todo.IsOverdue(now))
}

func TestIsOverdue_FutureDueDate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	todo := validTodo()
	todo.DueDate = now.Add(time.Minute)

	assert.False(t, todo.IsOverdue(now))
}

func TestIsOverdue_CompletedNeverOverdue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	todo := validTodo()
	todo.DueDate = now.Add(-24 * time.Hour)
	todo.Completed = true

	assert.False(t, todo.IsOverdue(now))
}

func TestIsReminderDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	todo := validTodo()

	todo.ReminderEnabled = true
	todo.ReminderAt = &past
	assert.True(t, todo.IsReminderDue(now))

	todo.ReminderAt = &future
	assert.False(t, todo.IsReminderDue(now))

	todo.ReminderEnabled = false
	todo.ReminderAt = &past
	assert.False(t, todo.IsReminderDue(now))

	todo.ReminderEnabled = true
	todo.ReminderAt = nil
	assert.False(t, todo.IsReminderDue(now))
}
