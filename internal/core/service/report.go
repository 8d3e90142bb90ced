package service

import (
	"context"
	"math"
	"time"

	"todotrack/internal/core/domain"
	"todotrack/internal/core/model/response"
	"todotrack/internal/core/port"
)

const recentCompletedWindow = 7 * 24 * time.Hour

// ReportService aggregates a user's todos into summary counts and
// per-category / per-priority groupings. Everything is computed from the
// stored rows at request time; nothing is persisted.
type ReportService struct {
	todos      port.TodoRepository
	categories port.CategoryRepository
}

func NewReportService(todos port.TodoRepository, categories port.CategoryRepository) *ReportService {
	return &ReportService{todos: todos, categories: categories}
}

func (rs *ReportService) Report(ctx context.Context, userId int) (response.ReportResponse, error) {
	todos, err := rs.todos.GetAll(ctx, userId)

	if err != nil {
		return response.ReportResponse{}, err
	}

	categories, err := rs.categories.GetAll(ctx)

	if err != nil {
		return response.ReportResponse{}, err
	}

	return BuildReport(todos, categories, time.Now()), nil
}

// BuildReport computes the full report from an in-memory snapshot. Overdue
// uses the same rule as the read path; the empty set yields all zero counts
// and a zero completion rate.
func BuildReport(todos []domain.Todo, categories []domain.Category, now time.Time) response.ReportResponse {
	summary := response.ReportSummary{Total: len(todos)}

	recentSince := now.Add(-recentCompletedWindow)
	categoryCounts := make(map[int]int)
	priorityCounts := make(map[string]int)

	for _, todo := range todos {
		if todo.Completed {
			summary.Completed++

			if todo.UpdatedAt.After(recentSince) {
				summary.RecentCompleted++
			}
		}

		if todo.IsOverdue(now) {
			summary.Overdue++
		}

		if todo.CategoryID != nil {
			categoryCounts[*todo.CategoryID]++
		}

		priorityCounts[todo.Priority]++
	}

	summary.Active = summary.Total - summary.Completed

	if summary.Total > 0 {
		summary.CompletionRate = int(math.Round(100 * float64(summary.Completed) / float64(summary.Total)))
	}

	byCategory := make([]response.CategoryCount, 0)

	for _, category := range categories {
		if count := categoryCounts[category.ID]; count > 0 {
			byCategory = append(byCategory, response.CategoryCount{
				Name:  category.Name,
				Color: category.Color,
				Count: count,
			})
		}
	}

	byPriority := make([]response.PriorityCount, 0)

	for _, priority := range domain.Priorities {
		if count := priorityCounts[priority]; count > 0 {
			byPriority = append(byPriority, response.PriorityCount{
				Priority: priority,
				Count:    count,
			})
		}
	}

	return response.ReportResponse{
		Summary:    summary,
		ByCategory: byCategory,
		ByPriority: byPriority,
	}
}
