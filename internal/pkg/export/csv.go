// Package export serializes an analytics export payload into the
// downloadable tabular formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/worklens/worklens-backend-go/internal/domain/analytics"
)

var taskHeader = []string{"ID", "Type", "Description", "Project", "Month", "Status", "Total Hours", "Approved Hours", "Completed", "Tracker Link"}
var leaveHeader = []string{"Date", "Category"}
var trendHeader = []string{"Label", "Total Tasks", "Total Working Hours", "Worked Days", "Available Days", "Productivity"}

// WriteCSV writes the payload as a single CSV document with one table
// per section, separated by a blank line.
func WriteCSV(w io.Writer, p analytics.ExportPayload) error {
	cw := csv.NewWriter(w)

	records := [][]string{
		{"Period", p.Period},
		{"Year", strconv.Itoa(p.Year)},
		{"Generated At", p.GeneratedAt},
		{},
		{"Metric", "Value"},
	}
	for _, row := range p.Summary {
		records = append(records, []string{row.Metric, formatFloat(row.Value)})
	}

	records = append(records, nil, taskHeader)
	for _, t := range p.Tasks {
		records = append(records, []string{
			t.ID,
			t.Type,
			t.Description,
			t.Project,
			t.Month,
			t.Status,
			formatFloat(t.TotalHours),
			formatFloat(t.ApprovedHours),
			strconv.FormatBool(t.Completed),
			t.TrackerLink,
		})
	}

	records = append(records, nil, leaveHeader)
	for _, l := range p.Leaves {
		records = append(records, []string{l.Date, l.Category})
	}

	if len(p.Trend) > 0 {
		records = append(records, nil, trendHeader)
		for _, tr := range p.Trend {
			records = append(records, []string{
				tr.Label,
				strconv.Itoa(tr.TotalTasks),
				formatFloat(tr.TotalWorkingHours),
				formatFloat(tr.WorkedDays),
				strconv.Itoa(tr.AvailableDays),
				formatFloat(tr.Productivity),
			})
		}
	}

	for _, record := range records {
		if len(record) == 0 {
			// csv.Writer refuses empty records; write the separator raw.
			cw.Flush()
			if err := cw.Error(); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
			continue
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatFloat renders a metric value without trailing zeros, so shaped
// numbers survive a round trip through the file unchanged.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
