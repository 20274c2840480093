package postgresql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/worklens/worklens-backend-go/internal/domain/leave"
)

// The category guard runs before any query, so it is testable without a
// database connection.
func TestLeaveRepository_Create_RejectsUnknownCategory(t *testing.T) {
	repo := NewLeaveRepository(nil)

	_, err := repo.Create(context.Background(), "user-1", leave.Leave{
		Date:     "2024-01-15",
		Category: leave.Category("holiday"),
	})

	assert.ErrorIs(t, err, leave.ErrInvalidCategory)
}
