package handler

import (
	"log/slog"
	"net/http"

	. "todotrack/internal/adapter/http/helper"
	"todotrack/internal/adapter/http/validation"
	"todotrack/internal/core/model/request"
	"todotrack/internal/core/model/response"
	"todotrack/internal/core/port"
	"todotrack/internal/core/util"
	"todotrack/pkg/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc port.AuthService
}

func NewAuthHandler(svc port.AuthService) *AuthHandler {
	return &AuthHandler{
		svc: svc,
	}
}

func (a *AuthHandler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.BindBody[request.SignUpRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	user, err := a.svc.Registration(ctx, &params)

	if err != nil {
		slog.Error("SignUp failed", "error", err)
		SendBadRequestError(c, "registration", err.Error())
		return
	}

	userResponse := response.UserResponse{
		UUID:      user.UUID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	SendSuccess(c, http.StatusCreated, userResponse)
}

// Auth accepts username or email plus password and answers with a signed
// token and the user profile.
func (a *AuthHandler) Auth(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.BindBody[request.LoginRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	user, err := a.svc.Authenticate(ctx, &params)

	if err != nil {
		slog.Error("Auth failed", "error", err)
		SendUnauthorizedError(c, "Invalid username or password")
		return
	}

	token, err := auth.CreateJwtTokenForUser(user.ID)

	if err != nil {
		SendUnauthorizedError(c, "Failed to generate access token")
		return
	}

	c.JSON(http.StatusOK, response.AuthResponse{
		Token: token,
		User: response.UserResponse{
			UUID:     user.UUID,
			Username: user.Username,
			Email:    user.Email,
		},
	})
}
