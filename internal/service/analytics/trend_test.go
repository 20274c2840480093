package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklens/worklens-backend-go/internal/domain/task"
)

func TestBuildTrend_LengthAndOrder(t *testing.T) {
	calc := testCalculator()

	ref := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	trend, err := calc.BuildTrend(nil, nil, 6, ref)
	require.NoError(t, err)
	require.Len(t, trend, 6)

	wantLabels := []string{"Oct '23", "Nov '23", "Dec '23", "Jan '24", "Feb '24", "Mar '24"}
	for i, want := range wantLabels {
		assert.Equal(t, want, trend[i].Label)
	}
}

func TestBuildTrend_GaplessZeroPeriods(t *testing.T) {
	calc := testCalculator()

	// Only January carries data; the other months still appear.
	tasks := []task.Task{{TotalHours: 16, Month: "January"}}

	ref := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	trend, err := calc.BuildTrend(tasks, nil, 3, ref)
	require.NoError(t, err)
	require.Len(t, trend, 3)

	assert.Equal(t, 1, trend[0].TotalTasks, "Jan '24")
	assert.Equal(t, 0, trend[1].TotalTasks, "Feb '24 appears with zero fields")
	assert.Equal(t, 0, trend[2].TotalTasks, "Mar '24 appears with zero fields")
	assert.Equal(t, 2.0, trend[0].WorkedDays)
	assert.Equal(t, trend[0].EffectiveWorkingDays, trend[0].AvailableDays)
}

func TestBuildTrend_Idempotent(t *testing.T) {
	calc := testCalculator()

	tasks := []task.Task{
		{TotalHours: 8, ApprovedHours: 8, Month: "January"},
		{TotalHours: 12, ApprovedHours: 10, Month: "February"},
	}
	ref := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)

	first, err := calc.BuildTrend(tasks, nil, 4, ref)
	require.NoError(t, err)
	second, err := calc.BuildTrend(tasks, nil, 4, ref)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildTrend_CrossYearWindow(t *testing.T) {
	calc := testCalculator()

	ref := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	trend, err := calc.BuildTrend(nil, nil, 2, ref)
	require.NoError(t, err)
	require.Len(t, trend, 2)

	assert.Equal(t, "Dec '23", trend[0].Label)
	assert.Equal(t, 2023, trend[0].Year)
	assert.Equal(t, "Jan '24", trend[1].Label)
	assert.Equal(t, 2024, trend[1].Year)
}

func TestBuildTrend_NonPositiveCount(t *testing.T) {
	calc := testCalculator()

	trend, err := calc.BuildTrend(nil, nil, 0, testRef)
	require.NoError(t, err)
	assert.Empty(t, trend)
}
