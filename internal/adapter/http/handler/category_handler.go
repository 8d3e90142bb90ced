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

type CategoryHandler struct {
	svc port.CategoryService
}

func NewCategoryHandler(svc port.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := h.svc.List(ctx)

	if err != nil {
		SendDomainError(c, err)
		return
	}

	data := make([]response.CategoryResponse, 0, len(categories))

	for _, category := range categories {
		data = append(data, response.CategoryResponse{
			ID:    category.ID,
			Name:  category.Name,
			Color: category.Color,
		})
	}

	SendSuccess(c, http.StatusOK, data)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.BindBody[request.CategoryRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	category, err := h.svc.Create(ctx, domain.Category{
		Name:  params.Name,
		Color: params.Color,
	})

	if err != nil {
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusCreated, response.CategoryResponse{
		ID:    category.ID,
		Name:  category.Name,
		Color: category.Color,
	})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))

	if err != nil {
		SendBadRequestError(c, "id", "Invalid category id")
		return
	}

	if err := h.svc.Delete(ctx, id); err != nil {
		SendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category deleted successfully",
	})
}
