package handler

import (
	"net/http"

	. "todotrack/internal/adapter/http/helper"
	"todotrack/internal/core/port"
	"todotrack/pkg/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type ReportHandler struct {
	svc port.ReportService
}

func NewReportHandler(svc port.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (r *ReportHandler) GetReport(c *gin.Context) {
	userId := c.GetInt("x-user-id")

	ctx, span := telemetry.CreateChildSpan(c.Request.Context(), "handler.report.GetReport", []attribute.KeyValue{
		attribute.Int("user.id", userId),
	})

	defer span.End()

	report, err := r.svc.Report(ctx, userId)

	if err != nil {
		telemetry.AddSpanError(span, err)
		SendDomainError(c, err)
		return
	}

	SendSuccess(c, http.StatusOK, report)
}
