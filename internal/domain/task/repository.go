package task

import "context"

// TaskRepository defines data access for work-log records
type TaskRepository interface {
	Create(ctx context.Context, userID string, t Task) (Task, error)
	ListByUser(ctx context.Context, userID string, year int, projectID *string) ([]Task, error)
}
