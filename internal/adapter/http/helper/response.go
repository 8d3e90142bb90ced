package helper

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todotrack/internal/adapter/http/validation"
	"todotrack/internal/core/domain"
	"todotrack/internal/core/model/response"
)

func SendSuccess(c *gin.Context, statusCode int, data any, message ...string) {
	response := response.SuccessResponse{
		Data: data,
	}

	if len(message) > 0 && message[0] != "" {
		response.Message = message[0]
	}

	c.JSON(statusCode, response)
}

func SendError(c *gin.Context, statusCode int, code string, errors []response.ValidationError, details ...any) {
	errorResponse := response.ErrorResponse{
		Error: response.ResponseError{
			Code:   code,
			Errors: errors,
		},
	}

	if len(details) > 0 {
		errorResponse.Error.Details = details[0]
	}

	c.JSON(statusCode, errorResponse)
}

func SendValidationError(c *gin.Context, err error) {
	validationErrors := validation.FormatValidationErrors(err)
	SendError(c, http.StatusBadRequest, "VALIDATION_ERROR", validationErrors)
}

func SendInternalError(c *gin.Context, message string, details ...any) {
	errors := []response.ValidationError{
		{
			Field:   "server",
			Message: message,
		},
	}

	SendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", errors, details...)
}

func SendUnauthorizedError(c *gin.Context, message string) {
	errors := []response.ValidationError{
		{
			Field:   "auth",
			Message: message,
		},
	}

	SendError(c, http.StatusUnauthorized, "UNAUTHORIZED", errors)
}

func SendBadRequestError(c *gin.Context, field string, message string) {
	errors := []response.ValidationError{
		{
			Field:   field,
			Message: message,
		},
	}

	SendError(c, http.StatusBadRequest, "BAD_REQUEST", errors)
}

func SendNotFoundError(c *gin.Context, message string) {
	errors := []response.ValidationError{
		{
			Field:   "resource",
			Message: message,
		},
	}

	SendError(c, http.StatusNotFound, "NOT_FOUND", errors)
}

func SendStorageUnavailableError(c *gin.Context) {
	errors := []response.ValidationError{
		{
			Field:   "storage",
			Message: "storage is temporarily unavailable",
		},
	}

	SendError(c, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", errors)
}

// SendDomainError maps the service error taxonomy onto HTTP statuses:
// validation 400, unknown owner/id 404, bad credentials 401, storage 503.
// Anything unrecognized is a 500.
func SendDomainError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		SendBadRequestError(c, validationErr.Field, validationErr.Message)
	case errors.Is(err, domain.ErrNotFound):
		SendNotFoundError(c, "record not found")
	case errors.Is(err, domain.ErrUnauthenticated):
		SendUnauthorizedError(c, "invalid credentials")
	case errors.Is(err, domain.ErrStorageUnavailable):
		SendStorageUnavailableError(c)
	default:
		SendInternalError(c, "unexpected error")
	}
}
