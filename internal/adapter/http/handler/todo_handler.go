package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	. "todotrack/internal/adapter/http/helper"
	"todotrack/internal/adapter/http/validation"
	"todotrack/internal/core/domain"
	"todotrack/internal/core/model/request"
	"todotrack/internal/core/port"
	"todotrack/internal/core/service"
	"todotrack/internal/core/util"
	"todotrack/pkg/config"
	"todotrack/pkg/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type TodoHandler struct {
	svc    port.TodoService
	Logger *config.AppLogger
}

func NewTodoHandler(svc port.TodoService, logger *config.AppLogger) *TodoHandler {
	return &TodoHandler{
		svc:    svc,
		Logger: logger,
	}
}

func (t *TodoHandler) GetAllTodos(c *gin.Context) {
	ctx, span := telemetry.CreateChildSpan(c.Request.Context(), "handler.todo.GetAllTodos", []attribute.KeyValue{
		attribute.String("handler.operation", "GetAllTodos"),
		attribute.String("handler.method", c.Request.Method),
		attribute.String("handler.path", c.FullPath()),
	})

	defer span.End()

	userId := c.GetInt("x-user-id")
	cursor := c.Query("cursor")
	limit, _ := strconv.Atoi(c.Query("limit"))

	if limit <= 0 {
		limit = 10
	}

	span.SetAttributes(
		attribute.Int("user.id", userId),
		attribute.String("todo.cursor", cursor),
		attribute.Int("todo.limit", limit),
	)

	data, err := t.svc.List(ctx, userId, limit, cursor)

	if err != nil {
		telemetry.AddSpanError(span, err)

		t.Logger.Logger.Ctx(ctx).Error("Failed to get todos",
			zap.Error(err),
			zap.Int("user_id", userId),
		)

		SendDomainError(c, err)
		return
	}

	span.SetAttributes(
		attribute.Int("http.status_code", http.StatusOK),
		attribute.String("response.type", "success"),
	)

	c.JSON(http.StatusOK, data)
}

func (t *TodoHandler) CreateTodo(c *gin.Context) {
	ctx := c.Request.Context()

	userId := c.GetInt("x-user-id")

	params, err := util.BindBody[request.TodoRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	todo := domain.Todo{
		Title:           params.Title,
		Description:     params.Description,
		DueDate:         params.DueDate,
		Priority:        params.Priority,
		CategoryID:      params.CategoryID,
		ReminderEnabled: params.ReminderEnabled,
		ReminderAt:      params.ReminderAt,
		Completed:       params.Completed,
		UserId:          userId,
	}

	todo, err = t.svc.Create(ctx, todo)

	if err != nil {
		slog.Error("Error creating todo", "error", err)
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusCreated, service.ToTodoResponse(todo, time.Now()))
}

func (t *TodoHandler) UpdateTodo(c *gin.Context) {
	ctx := c.Request.Context()

	userId := c.GetInt("x-user-id")

	params, err := util.BindBody[request.TodoRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	patch := domain.Todo{
		Title:           params.Title,
		Description:     params.Description,
		DueDate:         params.DueDate,
		Priority:        params.Priority,
		CategoryID:      params.CategoryID,
		ReminderEnabled: params.ReminderEnabled,
		ReminderAt:      params.ReminderAt,
		Completed:       params.Completed,
	}

	todo, err := t.svc.Update(ctx, userId, c.Param("uuid"), patch)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": service.ToTodoResponse(todo, time.Now())})
}

// ToggleComplete flips only the completed flag. Repeating the current state
// answers 200 without writing anything.
func (t *TodoHandler) ToggleComplete(c *gin.Context) {
	ctx := c.Request.Context()

	userId := c.GetInt("x-user-id")

	params, err := util.BindBody[request.ToggleCompleteRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	todo, err := t.svc.ToggleComplete(ctx, userId, c.Param("uuid"), *params.Completed)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": service.ToTodoResponse(todo, time.Now())})
}

func (t *TodoHandler) DeleteByUUID(c *gin.Context) {
	ctx := c.Request.Context()

	userId := c.GetInt("x-user-id")

	err := t.svc.Delete(ctx, userId, c.Param("uuid"))

	if err != nil {
		SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Todo deleted successfully",
	})
}

func (t *TodoHandler) DeleteAll(c *gin.Context) {
	ctx := c.Request.Context()

	userId := c.GetInt("x-user-id")

	if err := t.svc.DeleteAll(ctx, userId); err != nil {
		SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "All todos deleted successfully",
	})
}
