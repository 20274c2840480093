package analytics

import (
	"log/slog"
	"math"
	"time"

	"github.com/worklens/worklens-backend-go/internal/domain/analytics"
	"github.com/worklens/worklens-backend-go/internal/domain/leave"
	"github.com/worklens/worklens-backend-go/internal/domain/project"
	"github.com/worklens/worklens-backend-go/internal/domain/task"
	"github.com/worklens/worklens-backend-go/internal/pkg/metrics"
	"github.com/worklens/worklens-backend-go/internal/pkg/period"
	"golang.org/x/sync/errgroup"
)

// Calculator is the pure aggregation engine: every method is a function
// of its inputs plus an explicit reference date, so identical calls
// yield identical output and concurrent use needs no locking.
type Calculator struct {
	clampProductivity bool
	logger            *slog.Logger
}

// NewCalculator builds a calculator. clampProductivity restores the
// legacy min(1, x) behavior some call sites relied on; the default
// (false) reports productivity above 100% as an overwork signal.
func NewCalculator(clampProductivity bool, logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{
		clampProductivity: clampProductivity,
		logger:            logger,
	}
}

// FilterTasks returns the tasks belonging to a period. Matching keys
// off the task's month label only; records never carry a year, so a
// multi-year input set will fold same-named months together. Callers
// are expected to supply single-year datasets.
func (c *Calculator) FilterTasks(tasks []task.Task, p period.Period) []task.Task {
	if !p.Scoped() {
		return tasks
	}
	filtered := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if p.ContainsMonth(t.MonthLabel()) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// FilterLeaves returns the leave records whose date falls inside the
// period. Malformed dates are skipped with a warning; partial results
// beat an aborted dashboard.
func (c *Calculator) FilterLeaves(leaves []leave.Leave, p period.Period) []leave.Leave {
	if !p.Scoped() {
		return leaves
	}
	filtered := make([]leave.Leave, 0, len(leaves))
	for _, l := range leaves {
		d, ok := l.ParseDate()
		if !ok {
			c.logger.Warn("skipping leave record with malformed date",
				slog.String("leave_id", l.ID),
				slog.String("date", l.Date),
				slog.Any("error", analytics.ErrMalformedRecord),
			)
			metrics.SkippedRecordsTotal.Inc()
			continue
		}
		if p.ContainsDate(d) {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

// Calculate aggregates tasks and leaves into a metrics snapshot for the
// selected period. Empty input yields an all-zero snapshot; an
// unrecognized selector is the only error.
func (c *Calculator) Calculate(tasks []task.Task, leaves []leave.Leave, selector string, referenceYear int, referenceDate time.Time) (analytics.MetricsSnapshot, error) {
	p, err := period.Resolve(selector, referenceYear)
	if err != nil {
		return analytics.MetricsSnapshot{}, err
	}
	return c.calculate(tasks, leaves, p, referenceDate), nil
}

func (c *Calculator) calculate(tasks []task.Task, leaves []leave.Leave, p period.Period, referenceDate time.Time) analytics.MetricsSnapshot {
	periodTasks := c.FilterTasks(tasks, p)
	periodLeaves := c.FilterLeaves(leaves, p)

	snap := analytics.MetricsSnapshot{
		Month: p.Label,
		Year:  p.Year,
	}

	snap.TotalTasks = len(periodTasks)
	for _, t := range periodTasks {
		snap.TotalApprovedHours += t.ApprovedHours
		snap.TotalWorkingHours += t.TotalHours
	}
	snap.TotalWorkingDays = int(math.Ceil(snap.TotalWorkingHours / 8))

	if p.Scoped() {
		snap.TotalWorkingDaysInMonth = p.Weekdays()
	} else {
		// All-time and year views anchor the working-day denominator to
		// the reference date's month. Long-standing behavior that
		// downstream displays depend on; do not "fix".
		snap.TotalWorkingDaysInMonth = period.CountWeekdays(referenceDate.Year(), referenceDate.Month())
	}

	snap.TotalLeaves = len(periodLeaves)
	snap.EffectiveWorkingDays = snap.TotalWorkingDaysInMonth - snap.TotalLeaves
	if snap.EffectiveWorkingDays < 0 {
		snap.EffectiveWorkingDays = 0
	}

	if snap.EffectiveWorkingDays > 0 {
		snap.Productivity = (snap.TotalWorkingHours / 8) / float64(snap.EffectiveWorkingDays)
		if c.clampProductivity && snap.Productivity > 1 {
			snap.Productivity = 1
		}
	}

	return snap
}

// BuildTrend computes one snapshot per month for the periodCount months
// ending at the reference date, oldest first. Months with no matching
// records still appear as zero-valued points; the series never has
// gaps. Snapshots are computed concurrently but written by index, so
// chronological order and idempotence hold.
func (c *Calculator) BuildTrend(tasks []task.Task, leaves []leave.Leave, periodCount int, referenceDate time.Time) ([]analytics.TrendPoint, error) {
	if periodCount <= 0 {
		return []analytics.TrendPoint{}, nil
	}

	anchor := time.Date(referenceDate.Year(), referenceDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	points := make([]analytics.TrendPoint, periodCount)

	g := new(errgroup.Group)
	for i := range points {
		m := anchor.AddDate(0, i-(periodCount-1), 0)
		g.Go(func() error {
			snap, err := c.Calculate(tasks, leaves, period.MonthName(m.Month()), m.Year(), m)
			if err != nil {
				return err
			}
			points[i] = analytics.TrendPoint{
				MetricsSnapshot: snap,
				Label:           period.ShortLabel(m.Month(), m.Year()),
				WorkedDays:      snap.TotalWorkingHours / 8,
				AvailableDays:   snap.EffectiveWorkingDays,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return points, nil
}

// Shape flattens a snapshot, a trend series, and the raw records into
// independent tabular sections for the download writers. Task rows get
// an issue-tracker link when the owning project has the integration
// configured; a missing config just leaves the link empty.
func (c *Calculator) Shape(snap analytics.MetricsSnapshot, trend []analytics.TrendPoint, tasks []task.Task, leaves []leave.Leave, projects []project.Project, generatedAt time.Time) analytics.ExportPayload {
	byName := make(map[string]project.Project, len(projects))
	for _, p := range projects {
		byName[p.Name] = p
	}

	payload := analytics.ExportPayload{
		Period:      snap.Month,
		Year:        snap.Year,
		GeneratedAt: generatedAt.Format(time.RFC3339),
		Summary: []analytics.SummaryRow{
			{Metric: "total_tasks", Value: float64(snap.TotalTasks)},
			{Metric: "total_approved_hours", Value: snap.TotalApprovedHours},
			{Metric: "total_working_hours", Value: snap.TotalWorkingHours},
			{Metric: "total_working_days", Value: float64(snap.TotalWorkingDays)},
			{Metric: "total_working_days_in_month", Value: float64(snap.TotalWorkingDaysInMonth)},
			{Metric: "total_leaves", Value: float64(snap.TotalLeaves)},
			{Metric: "effective_working_days", Value: float64(snap.EffectiveWorkingDays)},
			{Metric: "productivity", Value: snap.Productivity},
		},
		Tasks:  make([]analytics.TaskRow, 0, len(tasks)),
		Leaves: make([]analytics.LeaveRow, 0, len(leaves)),
	}

	for _, t := range tasks {
		row := analytics.TaskRow{
			ID:            t.ID,
			Type:          t.Type,
			Description:   t.Description,
			Project:       t.Project,
			Month:         t.MonthLabel(),
			Status:        string(t.Status),
			TotalHours:    t.TotalHours,
			ApprovedHours: t.ApprovedHours,
			Completed:     t.Completed,
		}
		if p, ok := byName[t.Project]; ok && t.Number != nil {
			row.TrackerLink = p.TrackerLink(*t.Number)
		}
		payload.Tasks = append(payload.Tasks, row)
	}

	for _, l := range leaves {
		payload.Leaves = append(payload.Leaves, analytics.LeaveRow{
			Date:     l.Date,
			Category: string(l.Category),
		})
	}

	for _, tp := range trend {
		payload.Trend = append(payload.Trend, analytics.TrendRow{
			Label:             tp.Label,
			TotalTasks:        tp.TotalTasks,
			TotalWorkingHours: tp.TotalWorkingHours,
			WorkedDays:        tp.WorkedDays,
			AvailableDays:     tp.AvailableDays,
			Productivity:      tp.Productivity,
		})
	}

	return payload
}
