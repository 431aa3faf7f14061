package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/asistia/homecare-backend-go/internal/domain/assignment"
	"github.com/asistia/homecare-backend-go/internal/domain/schedule"
	"github.com/asistia/homecare-backend-go/internal/pkg/database"
)

type assignmentRepository struct {
	db *database.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *database.DB) assignment.Repository {
	return &assignmentRepository{db: db}
}

const assignmentColumns = `id, worker_id, service_user_id, start_date, end_date, assigned_monthly_hours, schedule, active, created_at, updated_at`

// The weekly schedule is stored as a jsonb column; day totals are computed
// before persisting, so reads never have to recompute.
func scanAssignment(row pgx.Row) (assignment.Assignment, error) {
	var a assignment.Assignment
	var scheduleJSON []byte

	err := row.Scan(
		&a.ID,
		&a.WorkerID,
		&a.ServiceUserID,
		&a.StartDate,
		&a.EndDate,
		&a.AssignedMonthlyHours,
		&scheduleJSON,
		&a.Active,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return assignment.Assignment{}, err
	}

	if scheduleJSON != nil {
		if err := json.Unmarshal(scheduleJSON, &a.Schedule); err != nil {
			return assignment.Assignment{}, fmt.Errorf("failed to unmarshal schedule: %w", err)
		}
	}
	if a.Schedule == nil {
		a.Schedule = schedule.NewWeeklySchedule()
	}

	return a, nil
}

// Create inserts a new assignment
func (r *assignmentRepository) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	scheduleJSON, err := json.Marshal(a.Schedule)
	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("failed to marshal schedule: %w", err)
	}

	query := `
		INSERT INTO assignments (` + assignmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = q.Exec(ctx, query,
		a.ID,
		a.WorkerID,
		a.ServiceUserID,
		a.StartDate,
		a.EndDate,
		a.AssignedMonthlyHours,
		scheduleJSON,
		a.Active,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return a, nil
}

// GetByID retrieves an assignment by ID
func (r *assignmentRepository) GetByID(ctx context.Context, id string) (*assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = $1`

	a, err := scanAssignment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return &a, nil
}

// ListByWorker retrieves all assignments of one worker
func (r *assignmentRepository) ListByWorker(ctx context.Context, workerID string) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE worker_id = $1 ORDER BY start_date DESC`

	rows, err := q.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	return collectAssignments(rows)
}

// List retrieves assignments, optionally only active ones
func (r *assignmentRepository) List(ctx context.Context, activeOnly bool) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + ` FROM assignments`
	if activeOnly {
		query += ` WHERE active = true`
	}
	query += ` ORDER BY start_date DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	return collectAssignments(rows)
}

func collectAssignments(rows pgx.Rows) ([]assignment.Assignment, error) {
	var assignments []assignment.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// Update persists changes to an assignment
func (r *assignmentRepository) Update(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	a.UpdatedAt = time.Now()

	scheduleJSON, err := json.Marshal(a.Schedule)
	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("failed to marshal schedule: %w", err)
	}

	query := `
		UPDATE assignments
		SET start_date = $2, end_date = $3, assigned_monthly_hours = $4,
		    schedule = $5, active = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query,
		a.ID,
		a.StartDate,
		a.EndDate,
		a.AssignedMonthlyHours,
		scheduleJSON,
		a.Active,
		a.UpdatedAt,
	)
	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("failed to update assignment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return assignment.Assignment{}, assignment.ErrAssignmentNotFound
	}

	return a, nil
}

// Delete removes an assignment
func (r *assignmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return assignment.ErrAssignmentNotFound
	}

	return nil
}
