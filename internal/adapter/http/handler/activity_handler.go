package handler

import (
	"net/http"
	"strconv"

	. "todotrack/internal/adapter/http/helper"
	"todotrack/internal/adapter/http/validation"
	"todotrack/internal/core/domain"
	"todotrack/internal/core/model/request"
	"todotrack/internal/core/model/response"
	"todotrack/internal/core/port"
	"todotrack/internal/core/util"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	svc port.ActivityRecorder
}

func NewActivityHandler(svc port.ActivityRecorder) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

func (a *ActivityHandler) GetRecent(c *gin.Context) {
	ctx := c.Request.Context()

	userId := c.GetInt("x-user-id")
	limit, _ := strconv.Atoi(c.Query("limit"))

	entries, err := a.svc.Recent(ctx, userId, limit)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	data := make([]response.ActivityResponse, 0, len(entries))

	for _, entry := range entries {
		data = append(data, response.ActivityResponse{
			ID:          entry.ID,
			Action:      string(entry.Action),
			Description: entry.Description,
			TodoTitle:   entry.TodoTitle,
			CreatedAt:   entry.CreatedAt,
		})
	}

	SendSuccess(c, http.StatusOK, data)
}

// Create accepts a client-submitted entry, for actions the client observed
// locally (an import, a bulk edit) that never passed through the store.
func (a *ActivityHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	userId := c.GetInt("x-user-id")

	params, err := util.BindBody[request.ActivityRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	entry, err := a.svc.Record(ctx, userId, domain.ActivityAction(params.Action), params.Description, params.TodoTitle)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusCreated, response.ActivityResponse{
		ID:          entry.ID,
		Action:      string(entry.Action),
		Description: entry.Description,
		TodoTitle:   entry.TodoTitle,
		CreatedAt:   entry.CreatedAt,
	})
}
