package leave

import "context"

// LeaveRepository defines data access for absence records
type LeaveRepository interface {
	Create(ctx context.Context, userID string, l Leave) (Leave, error)
	ListByUser(ctx context.Context, userID string, year int) ([]Leave, error)
}
