package analytics

import (
	"fmt"
	"time"

	"github.com/worklens/worklens-backend-go/internal/pkg/validator"
)

// ========================================
// REQUESTS
// ========================================

type MetricsRequest struct {
	Period    string  `json:"period"`
	Year      int     `json:"year"`
	ProjectID *string `json:"project_id,omitempty"`
}

func (r *MetricsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Period) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period is required",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2000 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2000 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TrendRequest struct {
	Months    int     `json:"months"`
	ProjectID *string `json:"project_id,omitempty"`
}

func (r *TrendRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Months < 1 || r.Months > 36 {
		errs = append(errs, validator.ValidationError{
			Field:   "months",
			Message: "months must be between 1 and 36",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExportRequest struct {
	Period    string  `json:"period"`
	Year      int     `json:"year"`
	ProjectID *string `json:"project_id,omitempty"`
}

func (r *ExportRequest) Validate() error {
	m := MetricsRequest{Period: r.Period, Year: r.Year}
	return m.Validate()
}

// ========================================
// METRICS SNAPSHOT
// ========================================

// MetricsSnapshot is the point-in-time aggregation for one period.
// TotalWorkingDays is derived from logged hours (ceil(hours/8)), while
// TotalWorkingDaysInMonth counts calendar weekdays in the resolved
// range. Productivity is deliberately not clamped: values above 1.0 are
// a valid overwork signal.
type MetricsSnapshot struct {
	TotalTasks              int     `json:"total_tasks"`
	TotalApprovedHours      float64 `json:"total_approved_hours"`
	TotalWorkingHours       float64 `json:"total_working_hours"`
	TotalWorkingDays        int     `json:"total_working_days"`
	TotalWorkingDaysInMonth int     `json:"total_working_days_in_month"`
	TotalLeaves             int     `json:"total_leaves"`
	EffectiveWorkingDays    int     `json:"effective_working_days"`
	Productivity            float64 `json:"productivity"`
	Month                   string  `json:"month"`
	Year                    int     `json:"year"`
}

// TrendPoint is one period of a rolling time series, carrying both the
// hour-derived worked days and the leave-adjusted available days so
// ratio charts can plot them against each other.
type TrendPoint struct {
	MetricsSnapshot
	Label         string  `json:"label"` // e.g. "Jan '24"
	WorkedDays    float64 `json:"worked_days"`
	AvailableDays int     `json:"available_days"`
}

// ========================================
// EXPORT PAYLOAD
// ========================================

// ExportPayload is the flat, format-agnostic record set handed to the
// download writers. Each section is an independent table.
type ExportPayload struct {
	Period      string       `json:"period"`
	Year        int          `json:"year"`
	GeneratedAt string       `json:"generated_at"`
	Summary     []SummaryRow `json:"summary"`
	Tasks       []TaskRow    `json:"tasks"`
	Leaves      []LeaveRow   `json:"leaves"`
	Trend       []TrendRow   `json:"trend,omitempty"`
}

// SummaryRow keeps metric values numeric so shaping and reading back a
// snapshot is lossless.
type SummaryRow struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
}

type TaskRow struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Description   string  `json:"description"`
	Project       string  `json:"project"`
	Month         string  `json:"month"`
	Status        string  `json:"status"`
	TotalHours    float64 `json:"total_hours"`
	ApprovedHours float64 `json:"approved_hours"`
	Completed     bool    `json:"completed"`
	TrackerLink   string  `json:"tracker_link,omitempty"`
}

type LeaveRow struct {
	Date     string `json:"date"`
	Category string `json:"category"`
}

type TrendRow struct {
	Label             string  `json:"label"`
	TotalTasks        int     `json:"total_tasks"`
	TotalWorkingHours float64 `json:"total_working_hours"`
	WorkedDays        float64 `json:"worked_days"`
	AvailableDays     int     `json:"available_days"`
	Productivity      float64 `json:"productivity"`
}

// SummaryValue returns a summary metric by name, 0 when absent.
func (p ExportPayload) SummaryValue(metric string) float64 {
	for _, row := range p.Summary {
		if row.Metric == metric {
			return row.Value
		}
	}
	return 0
}
