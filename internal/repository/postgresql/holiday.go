package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/asistia/homecare-backend-go/internal/domain/holiday"
	"github.com/asistia/homecare-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

// NewHolidayRepository creates a new holiday repository
func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepository{db: db}
}

const holidayColumns = `id, day, month, year, name, type, created_at`

func scanHoliday(row pgx.Row) (holiday.Holiday, error) {
	var h holiday.Holiday
	var holidayType string

	err := row.Scan(
		&h.ID,
		&h.Day,
		&h.Month,
		&h.Year,
		&h.Name,
		&holidayType,
		&h.CreatedAt,
	)
	if err != nil {
		return holiday.Holiday{}, err
	}

	h.Type = holiday.HolidayType(holidayType)
	return h, nil
}

// Create inserts a new holiday
func (r *holidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	h.CreatedAt = time.Now()

	query := `
		INSERT INTO holidays (` + holidayColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, query,
		h.ID,
		h.Day,
		h.Month,
		h.Year,
		h.Name,
		string(h.Type),
		h.CreatedAt,
	)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return h, nil
}

// GetByMonth retrieves the holidays falling in one calendar month
func (r *holidayRepository) GetByMonth(ctx context.Context, month, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + holidayColumns + ` FROM holidays WHERE month = $1 AND year = $2 ORDER BY day`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

// ListByYear retrieves every holiday of one year
func (r *holidayRepository) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + holidayColumns + ` FROM holidays WHERE year = $1 ORDER BY month, day`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

func collectHolidays(rows pgx.Rows) ([]holiday.Holiday, error) {
	var holidays []holiday.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// Delete removes a holiday
func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if result.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}
