package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"todotrack/internal/core/domain"
	"todotrack/internal/core/model/request"
	"todotrack/internal/core/port"
	"todotrack/internal/core/util"
)

type AuthService struct {
	repo port.UserRepository
}

func NewAuthService(repo port.UserRepository) *AuthService {
	return &AuthService{repo}
}

func (us *AuthService) Registration(ctx context.Context, req *request.SignUpRequest) (*domain.User, error) {
	oldUser, err := us.repo.GetByLogin(ctx, req.Username)

	if err == nil && oldUser.Username != "" {
		return nil, fmt.Errorf("user already exists")
	}

	oldUser, err = us.repo.GetByLogin(ctx, req.Email)

	if err == nil && oldUser.Email != "" {
		return nil, fmt.Errorf("user already exists")
	}

	encrypted, err := util.GenerateEncrypt(req.Password)

	if err != nil {
		return nil, fmt.Errorf("error creating encrypted password")
	}

	user := domain.User{
		UUID:              uuid.New(),
		Username:          req.Username,
		Email:             req.Email,
		EncryptedPassword: string(encrypted),
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	savedUser, err := us.repo.Create(ctx, user)

	if err != nil {
		return nil, err
	}

	return &savedUser, nil
}

// Authenticate accepts either the username or the email in the login field.
// All failure modes collapse into ErrUnauthenticated.
func (us *AuthService) Authenticate(ctx context.Context, req *request.LoginRequest) (*domain.User, error) {
	user, err := us.repo.GetByLogin(ctx, req.Username)

	if err != nil {
		slog.Error("Auth#Authenticate", "get_by_login", err)
		return nil, domain.ErrUnauthenticated
	}

	if err := util.ComparePassword(req.Password, user.EncryptedPassword); err != nil {
		slog.Error("Auth#Authenticate", "compare_password", err)
		return nil, domain.ErrUnauthenticated
	}

	return &user, nil
}
