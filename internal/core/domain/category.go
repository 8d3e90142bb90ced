package domain

import "time"

type Category struct {
	ID        int
	Name      string `validate:"required,max=100"`
	Color     string `validate:"required,max=32"`
	CreatedAt time.Time
}
