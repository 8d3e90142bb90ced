package port

import (
	"context"

	"todotrack/internal/core/model/response"
)

type ReportService interface {
	Report(ctx context.Context, userId int) (response.ReportResponse, error)
}
