package factory

import (
	"time"

	fab "github.com/Goldziher/fabricator"
	"github.com/google/uuid"
)

// NewTodo builds a todo with sane defaults: a fresh uuid, a pending state,
// and a due date one day out.
func NewTodo[T any](customData ...map[string]any) T {
	instance := fab.New(*new(T))

	defaults := map[string]any{
		"UUID":      uuid.New(),
		"Priority":  "medium",
		"Completed": false,
		"DueDate":   time.Now().Add(24 * time.Hour),
		"CreatedAt": time.Now(),
		"UpdatedAt": time.Now(),
	}

	for _, data := range customData {
		for key := range defaults {
			if _, exists := data[key]; exists {
				delete(defaults, key)
			}
		}
	}

	customData = append([]map[string]any{defaults}, customData...)

	return instance.Build(customData...)
}
