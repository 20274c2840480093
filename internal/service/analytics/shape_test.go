package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklens/worklens-backend-go/internal/domain/analytics"
	"github.com/worklens/worklens-backend-go/internal/domain/leave"
	"github.com/worklens/worklens-backend-go/internal/domain/project"
	"github.com/worklens/worklens-backend-go/internal/domain/task"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestShape_SummaryRoundTrip(t *testing.T) {
	calc := testCalculator()

	tasks := []task.Task{
		{TotalHours: 37.5, ApprovedHours: 30.25, Month: "January"},
		{TotalHours: 4, ApprovedHours: 5, Month: "January"},
	}
	leaves := []leave.Leave{{Date: "2024-01-15", Category: leave.CategoryVacation}}

	snap, err := calc.Calculate(tasks, leaves, "January", 2024, testRef)
	require.NoError(t, err)

	payload := calc.Shape(snap, nil, tasks, leaves, nil, testRef)

	// Reading the summary back yields the exact snapshot values.
	assert.Equal(t, float64(snap.TotalTasks), payload.SummaryValue("total_tasks"))
	assert.Equal(t, snap.TotalApprovedHours, payload.SummaryValue("total_approved_hours"))
	assert.Equal(t, snap.TotalWorkingHours, payload.SummaryValue("total_working_hours"))
	assert.Equal(t, float64(snap.TotalWorkingDays), payload.SummaryValue("total_working_days"))
	assert.Equal(t, float64(snap.TotalWorkingDaysInMonth), payload.SummaryValue("total_working_days_in_month"))
	assert.Equal(t, float64(snap.TotalLeaves), payload.SummaryValue("total_leaves"))
	assert.Equal(t, float64(snap.EffectiveWorkingDays), payload.SummaryValue("effective_working_days"))
	assert.Equal(t, snap.Productivity, payload.SummaryValue("productivity"))
	assert.Equal(t, snap.Month, payload.Period)
	assert.Equal(t, snap.Year, payload.Year)
}

func TestShape_TrackerLinks(t *testing.T) {
	calc := testCalculator()

	projects := []project.Project{
		{
			Name:           "Apollo",
			TrackerBaseURL: strPtr("https://tracker.example.com/"),
			TrackerKey:     strPtr("APO"),
		},
		{Name: "Bare"}, // no integration configured
	}
	tasks := []task.Task{
		{ID: "1", Project: "Apollo", Number: intPtr(42), Month: "January"},
		{ID: "2", Project: "Bare", Number: intPtr(7), Month: "January"},
		{ID: "3", Project: "Apollo", Month: "January"},   // no external number
		{ID: "4", Project: "Unknown", Number: intPtr(1)}, // project not supplied
	}

	payload := calc.Shape(analytics.MetricsSnapshot{}, nil, tasks, nil, projects, testRef)
	require.Len(t, payload.Tasks, 4)

	assert.Equal(t, "https://tracker.example.com/browse/APO-42", payload.Tasks[0].TrackerLink)
	assert.Empty(t, payload.Tasks[1].TrackerLink, "missing config degrades to absent link")
	assert.Empty(t, payload.Tasks[2].TrackerLink)
	assert.Empty(t, payload.Tasks[3].TrackerLink)
}

func TestShape_Sections(t *testing.T) {
	calc := testCalculator()

	tasks := []task.Task{{ID: "1", Month: "January", TotalHours: 8, Status: task.StatusDone, Completed: true}}
	leaves := []leave.Leave{{Date: "2024-01-15", Category: leave.CategorySick}}

	snap, err := calc.Calculate(tasks, leaves, "January", 2024, testRef)
	require.NoError(t, err)
	trend, err := calc.BuildTrend(tasks, leaves, 3, testRef)
	require.NoError(t, err)

	payload := calc.Shape(snap, trend, tasks, leaves, nil, testRef)

	require.Len(t, payload.Leaves, 1)
	assert.Equal(t, "2024-01-15", payload.Leaves[0].Date)
	assert.Equal(t, "sick", payload.Leaves[0].Category)

	require.Len(t, payload.Trend, 3)
	assert.Equal(t, trend[0].Label, payload.Trend[0].Label)

	generated, perr := time.Parse(time.RFC3339, payload.GeneratedAt)
	require.NoError(t, perr)
	assert.True(t, generated.Equal(testRef))
}
