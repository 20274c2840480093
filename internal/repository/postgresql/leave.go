package postgresql

import (
	"context"
	"fmt"

	"github.com/worklens/worklens-backend-go/internal/domain/leave"
	"github.com/worklens/worklens-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// Create implements leave.LeaveRepository. The category is checked
// against the closed set before touching the database.
func (r *leaveRepositoryImpl) Create(ctx context.Context, userID string, l leave.Leave) (leave.Leave, error) {
	if !leave.ValidCategory(l.Category) {
		return leave.Leave{}, leave.ErrInvalidCategory
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (id, user_id, leave_date, category, created_at)
		VALUES (uuidv7(), $1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, userID, l.Date, string(l.Category)).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return l, nil
}

// ListByUser implements leave.LeaveRepository. A zero year skips the
// year scope. Dates come back as their stored text form; the engine
// parses and skips anything malformed.
func (r *leaveRepositoryImpl) ListByUser(ctx context.Context, userID string, year int) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, leave_date, category, created_at
		FROM leaves
		WHERE user_id = $1
			AND ($2 = 0 OR leave_date LIKE $2::text || '-%')
		ORDER BY leave_date ASC
	`

	rows, err := q.Query(ctx, query, userID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		var l leave.Leave
		var category string
		if err := rows.Scan(&l.ID, &l.Date, &category, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		l.Category = leave.Category(category)
		leaves = append(leaves, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return leaves, nil
}
