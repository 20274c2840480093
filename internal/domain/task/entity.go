package task

import (
	"strings"
	"time"

	"github.com/worklens/worklens-backend-go/internal/pkg/period"
)

// Status is the normalized task lifecycle state.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Task is a single work-log record. Hour fields are never negative and
// default to 0 when the source omitted them, so aggregation stays total.
type Task struct {
	ID            string
	Type          string
	Description   string
	TotalHours    float64
	ApprovedHours float64
	Project       string
	ProjectID     *string
	Month         string
	Date          *time.Time
	Number        *int
	Status        Status
	Completed     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MonthLabel returns the label used for period matching: the stored
// free-text month when present, otherwise one derived from Date.
// The derived path is the preferred input going forward; the literal
// label is kept first for compatibility with existing records.
func (t Task) MonthLabel() string {
	if t.Month != "" {
		return t.Month
	}
	if t.Date != nil {
		return period.MonthName(t.Date.Month())
	}
	return ""
}

// NormalizeStatus folds the status vocabularies of source systems into
// the closed set. Unrecognized values fall back to not started rather
// than failing the record.
func NormalizeStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "in_progress", "in-progress", "in progress", "doing", "active", "wip", "started", "ongoing":
		return StatusInProgress
	case "done", "completed", "complete", "closed", "finished", "resolved":
		return StatusDone
	case "not_started", "not-started", "not started", "todo", "to do", "open", "backlog", "new", "pending":
		return StatusNotStarted
	default:
		return StatusNotStarted
	}
}

// Normalize applies boundary normalization to a raw record: status
// vocabulary, the derived completed flag, and negative-hour clamping.
func (t *Task) Normalize(rawStatus string) {
	t.Status = NormalizeStatus(rawStatus)
	t.Completed = t.Status == StatusDone
	if t.TotalHours < 0 {
		t.TotalHours = 0
	}
	if t.ApprovedHours < 0 {
		t.ApprovedHours = 0
	}
}
