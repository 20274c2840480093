package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklens/worklens-backend-go/internal/domain/analytics"
	"github.com/worklens/worklens-backend-go/internal/domain/leave"
	"github.com/worklens/worklens-backend-go/internal/domain/project"
	"github.com/worklens/worklens-backend-go/internal/domain/task"
	"github.com/worklens/worklens-backend-go/internal/pkg/metrics"
	"github.com/worklens/worklens-backend-go/internal/pkg/period"
)

// exportTrendMonths is the trend window bundled into export payloads.
const exportTrendMonths = 6

type AnalyticsServiceImpl struct {
	taskRepo    task.TaskRepository
	leaveRepo   leave.LeaveRepository
	projectRepo project.ProjectRepository
	calc        *Calculator
	now         func() time.Time
}

// NewAnalyticsService wires the repositories to the pure calculator.
// The clock is injected so every computation anchors to an explicit
// reference date instead of reading global time.
func NewAnalyticsService(
	taskRepo task.TaskRepository,
	leaveRepo leave.LeaveRepository,
	projectRepo project.ProjectRepository,
	calc *Calculator,
	now func() time.Time,
) analytics.AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsServiceImpl{
		taskRepo:    taskRepo,
		leaveRepo:   leaveRepo,
		projectRepo: projectRepo,
		calc:        calc,
		now:         now,
	}
}

// getUserIDFromContext extracts user_id from JWT claims
func (s *AnalyticsServiceImpl) getUserIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// GetMetrics computes the snapshot for one period
func (s *AnalyticsServiceImpl) GetMetrics(ctx context.Context, req analytics.MetricsRequest) (analytics.MetricsSnapshot, error) {
	if err := req.Validate(); err != nil {
		return analytics.MetricsSnapshot{}, err
	}

	userID, err := s.getUserIDFromContext(ctx)
	if err != nil {
		return analytics.MetricsSnapshot{}, err
	}

	tasks, err := s.taskRepo.ListByUser(ctx, userID, req.Year, req.ProjectID)
	if err != nil {
		return analytics.MetricsSnapshot{}, fmt.Errorf("failed to get tasks: %w", err)
	}
	leaves, err := s.leaveRepo.ListByUser(ctx, userID, req.Year)
	if err != nil {
		return analytics.MetricsSnapshot{}, fmt.Errorf("failed to get leaves: %w", err)
	}

	snap, err := s.calc.Calculate(tasks, leaves, req.Period, req.Year, s.now())
	if err != nil {
		return analytics.MetricsSnapshot{}, err
	}

	metrics.CalculationsTotal.WithLabelValues(periodKind(req.Period)).Inc()
	return snap, nil
}

// GetTrend builds the rolling per-month series
func (s *AnalyticsServiceImpl) GetTrend(ctx context.Context, req analytics.TrendRequest) ([]analytics.TrendPoint, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, err := s.getUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	// Year 0 skips the year scope: a trend window can span two
	// calendar years.
	tasks, err := s.taskRepo.ListByUser(ctx, userID, 0, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	leaves, err := s.leaveRepo.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaves: %w", err)
	}

	trend, err := s.calc.BuildTrend(tasks, leaves, req.Months, s.now())
	if err != nil {
		return nil, err
	}

	metrics.TrendsTotal.Inc()
	return trend, nil
}

// GetExport shapes the snapshot plus raw records into a download payload
func (s *AnalyticsServiceImpl) GetExport(ctx context.Context, req analytics.ExportRequest) (analytics.ExportPayload, error) {
	if err := req.Validate(); err != nil {
		return analytics.ExportPayload{}, err
	}

	userID, err := s.getUserIDFromContext(ctx)
	if err != nil {
		return analytics.ExportPayload{}, err
	}

	p, err := period.Resolve(req.Period, req.Year)
	if err != nil {
		return analytics.ExportPayload{}, err
	}

	tasks, err := s.taskRepo.ListByUser(ctx, userID, req.Year, req.ProjectID)
	if err != nil {
		return analytics.ExportPayload{}, fmt.Errorf("failed to get tasks: %w", err)
	}
	leaves, err := s.leaveRepo.ListByUser(ctx, userID, req.Year)
	if err != nil {
		return analytics.ExportPayload{}, fmt.Errorf("failed to get leaves: %w", err)
	}
	projects, err := s.projectRepo.ListByUser(ctx, userID)
	if err != nil {
		return analytics.ExportPayload{}, fmt.Errorf("failed to get projects: %w", err)
	}

	now := s.now()
	snap, err := s.calc.Calculate(tasks, leaves, req.Period, req.Year, now)
	if err != nil {
		return analytics.ExportPayload{}, err
	}
	trend, err := s.calc.BuildTrend(tasks, leaves, exportTrendMonths, now)
	if err != nil {
		return analytics.ExportPayload{}, err
	}

	payload := s.calc.Shape(
		snap,
		trend,
		s.calc.FilterTasks(tasks, p),
		s.calc.FilterLeaves(leaves, p),
		projects,
		now,
	)
	return payload, nil
}

// periodKind buckets a selector for metric labels, keeping cardinality
// fixed regardless of user input.
func periodKind(selector string) string {
	p, err := period.Resolve(selector, 2000)
	switch {
	case err != nil:
		return "invalid"
	case p.AllTime:
		return "all"
	case p.FullYear:
		return "year"
	case len(p.Months) == 3:
		return "quarter"
	default:
		return "month"
	}
}
