package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// SettingsRepository implements secondary.SettingsRepository with SQLite.
// It owns the capacity-policy state: per-date ceilings and holidays.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SQLite settings repository.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetDailyLimit returns the stored ceiling for a date and whether one exists.
func (r *SettingsRepository) GetDailyLimit(ctx context.Context, date string) (int, bool, error) {
	var limit int
	err := r.db.QueryRowContext(ctx,
		"SELECT job_limit FROM daily_limits WHERE date = ?", date,
	).Scan(&limit)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get daily limit: %w", err)
	}
	return limit, true, nil
}

// SetDailyLimit stores (or overwrites) the ceiling for a date.
func (r *SettingsRepository) SetDailyLimit(ctx context.Context, date string, limit int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO daily_limits (date, job_limit) VALUES (?, ?)
		 ON CONFLICT(date) DO UPDATE SET job_limit = excluded.job_limit, updated_at = CURRENT_TIMESTAMP`,
		date, limit,
	)
	if err != nil {
		return fmt.Errorf("failed to set daily limit: %w", err)
	}
	return nil
}

// ListDailyLimits returns all stored per-date ceilings.
func (r *SettingsRepository) ListDailyLimits(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT date, job_limit FROM daily_limits")
	if err != nil {
		return nil, fmt.Errorf("failed to list daily limits: %w", err)
	}
	defer rows.Close()

	limits := make(map[string]int)
	for rows.Next() {
		var date string
		var limit int
		if err := rows.Scan(&date, &limit); err != nil {
			return nil, err
		}
		limits[date] = limit
	}
	return limits, rows.Err()
}

// IsHoliday reports holiday membership for a date.
func (r *SettingsRepository) IsHoliday(ctx context.Context, date string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM holidays WHERE date = ?", date,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check holiday: %w", err)
	}
	return count > 0, nil
}

// SetHoliday adds or removes a date from the holiday set.
func (r *SettingsRepository) SetHoliday(ctx context.Context, date string, holiday bool) error {
	var err error
	if holiday {
		_, err = r.db.ExecContext(ctx,
			"INSERT INTO holidays (date) VALUES (?) ON CONFLICT(date) DO NOTHING", date)
	} else {
		_, err = r.db.ExecContext(ctx, "DELETE FROM holidays WHERE date = ?", date)
	}
	if err != nil {
		return fmt.Errorf("failed to set holiday: %w", err)
	}
	return nil
}
