package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/dispatch/internal/ports/secondary"
)

// PersonnelRepository implements secondary.PersonnelRepository with SQLite.
type PersonnelRepository struct {
	db *sql.DB
}

// NewPersonnelRepository creates a new SQLite personnel repository.
func NewPersonnelRepository(db *sql.DB) *PersonnelRepository {
	return &PersonnelRepository{db: db}
}

const personnelSelectCols = "id, employee_id, name, type, status, emirates_id, created_at"

func scanPersonnel(scanner interface {
	Scan(dest ...any) error
}) (*secondary.PersonnelRecord, error) {
	var createdAt time.Time
	record := &secondary.PersonnelRecord{}
	err := scanner.Scan(
		&record.ID, &record.EmployeeID, &record.Name, &record.Type,
		&record.Status, &record.EmiratesID, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)
	return record, nil
}

// Create persists a new crew member.
func (r *PersonnelRepository) Create(ctx context.Context, p *secondary.PersonnelRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO personnel (id, employee_id, name, type, status, emirates_id) VALUES (?, ?, ?, ?, ?, ?)",
		p.ID, p.EmployeeID, p.Name, p.Type, p.Status, p.EmiratesID,
	)
	if err != nil {
		return fmt.Errorf("failed to create personnel: %w", err)
	}
	return nil
}

// GetByID retrieves a crew member by ID.
func (r *PersonnelRepository) GetByID(ctx context.Context, id string) (*secondary.PersonnelRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+personnelSelectCols+" FROM personnel WHERE id = ?", id,
	)

	record, err := scanPersonnel(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("personnel %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get personnel: %w", err)
	}
	return record, nil
}

// List retrieves crew members matching the given filters.
func (r *PersonnelRepository) List(ctx context.Context, filters secondary.PersonnelRecordFilters) ([]*secondary.PersonnelRecord, error) {
	query := "SELECT " + personnelSelectCols + " FROM personnel WHERE 1=1"
	args := []any{}

	if filters.Type != "" {
		query += " AND type = ?"
		args = append(args, filters.Type)
	}
	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}

	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list personnel: %w", err)
	}
	defer rows.Close()

	var records []*secondary.PersonnelRecord
	for rows.Next() {
		record, err := scanPersonnel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan personnel: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// UpdateStatus updates a crew member's availability status.
func (r *PersonnelRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE personnel SET status = ? WHERE id = ?", status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update personnel status: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("personnel %s not found", id)
	}
	return nil
}

// Delete removes a crew member from persistence.
func (r *PersonnelRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM personnel WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete personnel: %w", err)
	}
	return nil
}

// NextID returns the next available personnel ID.
func (r *PersonnelRepository) NextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM personnel",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next personnel ID: %w", err)
	}
	return fmt.Sprintf("PER-%03d", maxID+1), nil
}
