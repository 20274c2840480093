package project

import "context"

// ProjectRepository defines data access for projects
type ProjectRepository interface {
	Create(ctx context.Context, userID string, p Project) (Project, error)
	ListByUser(ctx context.Context, userID string) ([]Project, error)
}
