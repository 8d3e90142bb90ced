package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                int
	UUID              uuid.UUID
	Username          string `validate:"required,min=3,max=100"`
	Email             string `validate:"required,email,max=255"`
	EncryptedPassword string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
