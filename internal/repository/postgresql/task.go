package postgresql

import (
	"context"
	"fmt"

	"github.com/worklens/worklens-backend-go/internal/domain/task"
	"github.com/worklens/worklens-backend-go/internal/pkg/database"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, userID string, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (id, user_id, project_id, type, description, total_hours, approved_hours, month, task_date, number, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		userID,
		t.ProjectID,
		t.Type,
		t.Description,
		t.TotalHours,
		t.ApprovedHours,
		t.Month,
		t.Date,
		t.Number,
		string(t.Status),
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

// ListByUser implements task.TaskRepository. A zero year skips the year
// scope; a nil projectID includes every project. Hours are coalesced to
// 0 and statuses normalized at this boundary so the engine never sees
// nulls or source vocabularies.
func (r *taskRepositoryImpl) ListByUser(ctx context.Context, userID string, year int, projectID *string) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			t.id,
			t.type,
			COALESCE(t.description, ''),
			COALESCE(t.total_hours, 0),
			COALESCE(t.approved_hours, 0),
			COALESCE(p.name, ''),
			t.project_id,
			COALESCE(t.month, ''),
			t.task_date,
			t.number,
			t.status,
			t.created_at,
			t.updated_at
		FROM tasks t
		LEFT JOIN projects p ON t.project_id = p.id
		WHERE t.user_id = $1
			AND ($2 = 0 OR EXTRACT(YEAR FROM t.task_date) = $2 OR t.task_date IS NULL)
			AND ($3::uuid IS NULL OR t.project_id = $3)
		ORDER BY t.created_at ASC
	`

	rows, err := q.Query(ctx, query, userID, year, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		var rawStatus string
		err := rows.Scan(
			&t.ID,
			&t.Type,
			&t.Description,
			&t.TotalHours,
			&t.ApprovedHours,
			&t.Project,
			&t.ProjectID,
			&t.Month,
			&t.Date,
			&t.Number,
			&rawStatus,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		t.Normalize(rawStatus)
		tasks = append(tasks, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tasks, nil
}
