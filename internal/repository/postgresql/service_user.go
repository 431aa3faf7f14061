package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/asistia/homecare-backend-go/internal/domain/serviceuser"
	"github.com/asistia/homecare-backend-go/internal/pkg/database"
)

type serviceUserRepository struct {
	db *database.DB
}

// NewServiceUserRepository creates a new service user repository
func NewServiceUserRepository(db *database.DB) serviceuser.Repository {
	return &serviceUserRepository{db: db}
}

const serviceUserColumns = `id, full_name, phone, address, postal_code, city, notes, active, created_at, updated_at`

func scanServiceUser(row pgx.Row) (serviceuser.ServiceUser, error) {
	var u serviceuser.ServiceUser
	err := row.Scan(
		&u.ID,
		&u.FullName,
		&u.Phone,
		&u.Address,
		&u.PostalCode,
		&u.City,
		&u.Notes,
		&u.Active,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// Create inserts a new service user
func (r *serviceUserRepository) Create(ctx context.Context, u serviceuser.ServiceUser) (serviceuser.ServiceUser, error) {
	q := GetQuerier(ctx, r.db)

	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	query := `
		INSERT INTO service_users (` + serviceUserColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := q.Exec(ctx, query,
		u.ID,
		u.FullName,
		u.Phone,
		u.Address,
		u.PostalCode,
		u.City,
		u.Notes,
		u.Active,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		return serviceuser.ServiceUser{}, fmt.Errorf("failed to create service user: %w", err)
	}

	return u, nil
}

// GetByID retrieves a service user by ID
func (r *serviceUserRepository) GetByID(ctx context.Context, id string) (*serviceuser.ServiceUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + serviceUserColumns + ` FROM service_users WHERE id = $1`

	u, err := scanServiceUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, serviceuser.ErrServiceUserNotFound
		}
		return nil, fmt.Errorf("failed to get service user: %w", err)
	}

	return &u, nil
}

// List retrieves service users, optionally only active ones
func (r *serviceUserRepository) List(ctx context.Context, activeOnly bool) ([]serviceuser.ServiceUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + serviceUserColumns + ` FROM service_users`
	if activeOnly {
		query += ` WHERE active = true`
	}
	query += ` ORDER BY full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query service users: %w", err)
	}
	defer rows.Close()

	var users []serviceuser.ServiceUser
	for rows.Next() {
		u, err := scanServiceUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// Update persists changes to a service user
func (r *serviceUserRepository) Update(ctx context.Context, u serviceuser.ServiceUser) (serviceuser.ServiceUser, error) {
	q := GetQuerier(ctx, r.db)

	u.UpdatedAt = time.Now()

	query := `
		UPDATE service_users
		SET full_name = $2, phone = $3, address = $4, postal_code = $5,
		    city = $6, notes = $7, active = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := q.Exec(ctx, query,
		u.ID,
		u.FullName,
		u.Phone,
		u.Address,
		u.PostalCode,
		u.City,
		u.Notes,
		u.Active,
		u.UpdatedAt,
	)
	if err != nil {
		return serviceuser.ServiceUser{}, fmt.Errorf("failed to update service user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return serviceuser.ServiceUser{}, serviceuser.ErrServiceUserNotFound
	}

	return u, nil
}

// Delete removes a service user
func (r *serviceUserRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM service_users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return serviceuser.ErrServiceUserNotFound
	}

	return nil
}
