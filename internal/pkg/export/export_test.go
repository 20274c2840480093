package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklens/worklens-backend-go/internal/domain/analytics"
	"github.com/xuri/excelize/v2"
)

func samplePayload() analytics.ExportPayload {
	return analytics.ExportPayload{
		Period:      "January",
		Year:        2024,
		GeneratedAt: "2024-06-15T12:00:00Z",
		Summary: []analytics.SummaryRow{
			{Metric: "total_tasks", Value: 2},
			{Metric: "total_working_hours", Value: 41.5},
			{Metric: "productivity", Value: 0.2255},
		},
		Tasks: []analytics.TaskRow{
			{
				ID:          "t1",
				Type:        "feature",
				Project:     "Apollo",
				Month:       "January",
				Status:      "done",
				TotalHours:  37.5,
				Completed:   true,
				TrackerLink: "https://tracker.example.com/browse/APO-42",
			},
		},
		Leaves: []analytics.LeaveRow{{Date: "2024-01-15", Category: "sick"}},
		Trend: []analytics.TrendRow{
			{Label: "Jan '24", TotalTasks: 2, TotalWorkingHours: 41.5, WorkedDays: 5.1875, AvailableDays: 22, Productivity: 0.2358},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, samplePayload()))

	out := buf.String()
	assert.Contains(t, out, "Period,January")
	assert.Contains(t, out, "total_working_hours,41.5")
	assert.Contains(t, out, "https://tracker.example.com/browse/APO-42")
	assert.Contains(t, out, "2024-01-15,sick")
	assert.Contains(t, out, "Jan '24")

	// Four section separators: summary table, tasks, leaves, trend.
	assert.Equal(t, 4, strings.Count(out, "\n\n"))
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, samplePayload()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Summary", "Tasks", "Leaves", "Trend"}, f.GetSheetList())

	period, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "January", period)

	link, err := f.GetCellValue("Tasks", "J2")
	require.NoError(t, err)
	assert.Equal(t, "https://tracker.example.com/browse/APO-42", link)

	date, err := f.GetCellValue("Leaves", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", date)
}
