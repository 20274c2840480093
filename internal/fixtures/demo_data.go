// Package fixtures generates deterministic demo records for local
// development and the seed command.
package fixtures

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/worklens/worklens-backend-go/internal/domain/leave"
	"github.com/worklens/worklens-backend-go/internal/domain/project"
	"github.com/worklens/worklens-backend-go/internal/domain/task"
	"github.com/worklens/worklens-backend-go/internal/pkg/period"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// demoID draws a UUID from the seeded source, so identical seeds yield
// identical records.
func demoID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		panic("failed to generate fixture id: " + err.Error())
	}
	return id.String()
}

var demoTaskTypes = []string{"Feature", "Bug", "Chore", "Review", "Meeting"}

var demoDescriptions = []string{
	"Implement API endpoint",
	"Fix production incident",
	"Refactor data access layer",
	"Code review session",
	"Sprint planning",
	"Write integration tests",
	"Update dependency versions",
	"Investigate performance regression",
}

var demoStatuses = []string{"done", "completed", "in progress", "ongoing", "todo", "pending"}

var demoLeaveCategories = []leave.Category{
	leave.CategoryVacation,
	leave.CategorySick,
	leave.CategoryPersonal,
	leave.CategoryOther,
}

// ==========================================
// DEFAULT PROJECTS
// ==========================================

// GetDefaultProjects returns demo projects for a new workspace, one of
// them wired to an issue tracker. IDs are left empty; the repository
// assigns them on insert.
func GetDefaultProjects() []project.Project {
	return []project.Project{
		{
			Name:           "Platform",
			TrackerBaseURL: strPtr("https://tracker.example.com"),
			TrackerKey:     strPtr("PLT"),
		},
		{
			Name: "Internal Tools",
		},
		{
			Name: "Support",
		},
	}
}

// ==========================================
// DEMO TASKS
// ==========================================

// GenerateDemoTasks produces count tasks spread across the given year.
// The same seed always yields the same records.
func GenerateDemoTasks(seed int64, count int, year int, projects []project.Project) []task.Task {
	rng := rand.New(rand.NewSource(seed))
	tasks := make([]task.Task, 0, count)

	for i := 0; i < count; i++ {
		month := rng.Intn(12)
		day := 1 + rng.Intn(28)
		date := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)

		hours := float64(1 + rng.Intn(16))
		approved := hours
		if rng.Intn(4) == 0 {
			approved = hours * 0.75
		}

		t := task.Task{
			ID:            demoID(rng),
			Type:          demoTaskTypes[rng.Intn(len(demoTaskTypes))],
			Description:   demoDescriptions[rng.Intn(len(demoDescriptions))],
			TotalHours:    hours,
			ApprovedHours: approved,
			Month:         period.MonthName(time.Month(month + 1)),
			Date:          &date,
		}

		if len(projects) > 0 {
			p := projects[rng.Intn(len(projects))]
			t.Project = p.Name
			if p.ID != "" {
				t.ProjectID = &p.ID
			}
			if p.HasTracker() {
				t.Number = intPtr(100 + rng.Intn(900))
			}
		}

		t.Normalize(demoStatuses[rng.Intn(len(demoStatuses))])
		tasks = append(tasks, t)
	}

	return tasks
}

// ==========================================
// DEMO LEAVES
// ==========================================

// GenerateDemoLeaves produces count leave days spread across the given
// year, deterministic for a seed.
func GenerateDemoLeaves(seed int64, count int, year int) []leave.Leave {
	rng := rand.New(rand.NewSource(seed))
	leaves := make([]leave.Leave, 0, count)

	for i := 0; i < count; i++ {
		month := 1 + rng.Intn(12)
		day := 1 + rng.Intn(28)
		leaves = append(leaves, leave.Leave{
			ID:       demoID(rng),
			Date:     fmt.Sprintf("%04d-%02d-%02d", year, month, day),
			Category: demoLeaveCategories[rng.Intn(len(demoLeaveCategories))],
		})
	}

	return leaves
}
