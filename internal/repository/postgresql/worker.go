package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/asistia/homecare-backend-go/internal/domain/worker"
	"github.com/asistia/homecare-backend-go/internal/pkg/database"
)

type workerRepository struct {
	db *database.DB
}

// NewWorkerRepository creates a new worker repository
func NewWorkerRepository(db *database.DB) worker.Repository {
	return &workerRepository{db: db}
}

const workerColumns = `id, full_name, email, phone, address, postal_code, city, weekly_hours, active, created_at, updated_at`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	err := row.Scan(
		&w.ID,
		&w.FullName,
		&w.Email,
		&w.Phone,
		&w.Address,
		&w.PostalCode,
		&w.City,
		&w.WeeklyHours,
		&w.Active,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	return w, err
}

// Create inserts a new worker
func (r *workerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	now := time.Now()
	w.CreatedAt = now
	w.UpdatedAt = now

	query := `
		INSERT INTO workers (` + workerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := q.Exec(ctx, query,
		w.ID,
		w.FullName,
		w.Email,
		w.Phone,
		w.Address,
		w.PostalCode,
		w.City,
		w.WeeklyHours,
		w.Active,
		w.CreatedAt,
		w.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return worker.Worker{}, worker.ErrEmailExists
		}
		return worker.Worker{}, fmt.Errorf("failed to create worker: %w", err)
	}

	return w, nil
}

// GetByID retrieves a worker by ID
func (r *workerRepository) GetByID(ctx context.Context, id string) (*worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = $1`

	w, err := scanWorker(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, worker.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	return &w, nil
}

// List retrieves workers, optionally only active ones
func (r *workerRepository) List(ctx context.Context, activeOnly bool) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM workers`
	if activeOnly {
		query += ` WHERE active = true`
	}
	query += ` ORDER BY full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	return workers, rows.Err()
}

// Update persists changes to a worker
func (r *workerRepository) Update(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	w.UpdatedAt = time.Now()

	query := `
		UPDATE workers
		SET full_name = $2, email = $3, phone = $4, address = $5, postal_code = $6,
		    city = $7, weekly_hours = $8, active = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query,
		w.ID,
		w.FullName,
		w.Email,
		w.Phone,
		w.Address,
		w.PostalCode,
		w.City,
		w.WeeklyHours,
		w.Active,
		w.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return worker.Worker{}, worker.ErrEmailExists
		}
		return worker.Worker{}, fmt.Errorf("failed to update worker: %w", err)
	}
	if result.RowsAffected() == 0 {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}

	return w, nil
}

// Delete removes a worker
func (r *workerRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	if result.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}
