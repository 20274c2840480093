package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklens/worklens-backend-go/internal/domain/leave"
	"github.com/worklens/worklens-backend-go/internal/domain/task"
)

func TestGenerateDemoTasks_DeterministicBySeed(t *testing.T) {
	projects := GetDefaultProjects()

	first := GenerateDemoTasks(42, 50, 2024, projects)
	second := GenerateDemoTasks(42, 50, 2024, projects)
	assert.Equal(t, first, second)

	other := GenerateDemoTasks(43, 50, 2024, projects)
	assert.NotEqual(t, first, other)
}

func TestGenerateDemoTasks_RecordsAreWellFormed(t *testing.T) {
	projects := GetDefaultProjects()
	tasks := GenerateDemoTasks(7, 100, 2024, projects)
	require.Len(t, tasks, 100)

	trackerProjects := make(map[string]bool)
	for _, p := range projects {
		trackerProjects[p.Name] = p.HasTracker()
	}

	for _, tk := range tasks {
		assert.NotEmpty(t, tk.ID)
		require.NotNil(t, tk.Date)
		assert.Equal(t, 2024, tk.Date.Year())
		assert.Equal(t, tk.Month, tk.MonthLabel())
		assert.Greater(t, tk.TotalHours, 0.0)
		assert.Contains(t, []task.Status{task.StatusNotStarted, task.StatusInProgress, task.StatusDone}, tk.Status)
		assert.Equal(t, tk.Status == task.StatusDone, tk.Completed)

		if tk.Number != nil {
			assert.True(t, trackerProjects[tk.Project])
		}
	}
}

func TestGenerateDemoLeaves_Deterministic(t *testing.T) {
	first := GenerateDemoLeaves(42, 20, 2024)
	second := GenerateDemoLeaves(42, 20, 2024)
	assert.Equal(t, first, second)
}

func TestGenerateDemoLeaves_RecordsParseAndValidate(t *testing.T) {
	leaves := GenerateDemoLeaves(7, 30, 2023)
	require.Len(t, leaves, 30)

	for _, l := range leaves {
		d, ok := l.ParseDate()
		require.True(t, ok, "leave date %q should parse", l.Date)
		assert.Equal(t, 2023, d.Year())
		assert.True(t, leave.ValidCategory(l.Category))
	}
}

func TestGetDefaultProjects_TrackerConfig(t *testing.T) {
	projects := GetDefaultProjects()
	require.NotEmpty(t, projects)

	withTracker := 0
	for _, p := range projects {
		if p.HasTracker() {
			withTracker++
			assert.NotEmpty(t, p.TrackerLink(123))
		}
	}
	assert.Equal(t, 1, withTracker)
}
