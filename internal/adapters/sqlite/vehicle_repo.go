package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/dispatch/internal/ports/secondary"
)

// VehicleRepository implements secondary.VehicleRepository with SQLite.
type VehicleRepository struct {
	db *sql.DB
}

// NewVehicleRepository creates a new SQLite vehicle repository.
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

const vehicleSelectCols = "id, name, plate, status, created_at"

func scanVehicle(scanner interface {
	Scan(dest ...any) error
}) (*secondary.VehicleRecord, error) {
	var createdAt time.Time
	record := &secondary.VehicleRecord{}
	err := scanner.Scan(&record.ID, &record.Name, &record.Plate, &record.Status, &createdAt)
	if err != nil {
		return nil, err
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)
	return record, nil
}

// Create persists a new vehicle.
func (r *VehicleRepository) Create(ctx context.Context, v *secondary.VehicleRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO vehicles (id, name, plate, status) VALUES (?, ?, ?, ?)",
		v.ID, v.Name, v.Plate, v.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// GetByID retrieves a vehicle by ID.
func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*secondary.VehicleRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+vehicleSelectCols+" FROM vehicles WHERE id = ?", id,
	)

	record, err := scanVehicle(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("vehicle %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return record, nil
}

// List retrieves vehicles matching the given filters.
func (r *VehicleRepository) List(ctx context.Context, filters secondary.VehicleRecordFilters) ([]*secondary.VehicleRecord, error) {
	query := "SELECT " + vehicleSelectCols + " FROM vehicles WHERE 1=1"
	args := []any{}

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}

	query += " ORDER BY name"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var records []*secondary.VehicleRecord
	for rows.Next() {
		record, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// UpdateStatus updates a vehicle's availability status.
func (r *VehicleRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE vehicles SET status = ? WHERE id = ?", status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle status: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("vehicle %s not found", id)
	}
	return nil
}

// Delete removes a vehicle from persistence.
func (r *VehicleRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM vehicles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}

// NextID returns the next available vehicle ID.
func (r *VehicleRepository) NextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM vehicles",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next vehicle ID: %w", err)
	}
	return fmt.Sprintf("VEH-%03d", maxID+1), nil
}
