package export

import (
	"fmt"
	"io"

	"github.com/worklens/worklens-backend-go/internal/domain/analytics"
	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary = "Summary"
	sheetTasks   = "Tasks"
	sheetLeaves  = "Leaves"
	sheetTrend   = "Trend"
)

// WriteXLSX writes the payload as a spreadsheet with one sheet per
// section.
func WriteXLSX(w io.Writer, p analytics.ExportPayload) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}

	summaryRows := [][]interface{}{
		{"Period", p.Period},
		{"Year", p.Year},
		{"Generated At", p.GeneratedAt},
		{},
		{"Metric", "Value"},
	}
	for _, row := range p.Summary {
		summaryRows = append(summaryRows, []interface{}{row.Metric, row.Value})
	}
	if err := writeSheet(f, sheetSummary, summaryRows); err != nil {
		return err
	}

	taskRows := [][]interface{}{toInterfaces(taskHeader)}
	for _, t := range p.Tasks {
		taskRows = append(taskRows, []interface{}{
			t.ID, t.Type, t.Description, t.Project, t.Month, t.Status,
			t.TotalHours, t.ApprovedHours, t.Completed, t.TrackerLink,
		})
	}
	if err := addSheet(f, sheetTasks, taskRows); err != nil {
		return err
	}

	leaveRows := [][]interface{}{toInterfaces(leaveHeader)}
	for _, l := range p.Leaves {
		leaveRows = append(leaveRows, []interface{}{l.Date, l.Category})
	}
	if err := addSheet(f, sheetLeaves, leaveRows); err != nil {
		return err
	}

	if len(p.Trend) > 0 {
		trendRows := [][]interface{}{toInterfaces(trendHeader)}
		for _, tr := range p.Trend {
			trendRows = append(trendRows, []interface{}{
				tr.Label, tr.TotalTasks, tr.TotalWorkingHours,
				tr.WorkedDays, tr.AvailableDays, tr.Productivity,
			})
		}
		if err := addSheet(f, sheetTrend, trendRows); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func addSheet(f *excelize.File, name string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	return writeSheet(f, name, rows)
}

func writeSheet(f *excelize.File, name string, rows [][]interface{}) error {
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("failed to resolve cell: %w", err)
			}
			if err := f.SetCellValue(name, cell, value); err != nil {
				return fmt.Errorf("failed to set cell %s!%s: %w", name, cell, err)
			}
		}
	}
	return nil
}

func toInterfaces(values []string) []interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}
