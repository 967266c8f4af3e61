// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/dispatch/internal/core/job"
	"github.com/example/dispatch/internal/ports/secondary"
)

// JobRepository implements secondary.JobRepository with SQLite.
type JobRepository struct {
	db *sql.DB
}

// NewJobRepository creates a new SQLite job repository.
func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobSelectCols = "job_no, title, shipper_name, location, shipment_details, description, " +
	"priority, agent_name, loading_type, main_category, sub_category, shuttle, long_carry, " +
	"special_requests, volume_cbm, job_time, job_date, status, is_locked, assigned_to, " +
	"is_warehouse_activity, is_import_clearance, team_leader, vehicle, writer_crew, requester_id, created_at"

// scanJob scans a job row into a JobRecord.
func scanJob(scanner interface {
	Scan(dest ...any) error
}) (*secondary.JobRecord, error) {
	var (
		title           sql.NullString
		shipperName     sql.NullString
		location        sql.NullString
		shipmentDetails sql.NullString
		description     sql.NullString
		agentName       sql.NullString
		loadingType     sql.NullString
		mainCategory    sql.NullString
		subCategory     sql.NullString
		specialRequests sql.NullString
		jobTime         sql.NullString
		assignedTo      sql.NullString
		teamLeader      sql.NullString
		vehicle         sql.NullString
		writerCrew      sql.NullString
		requesterID     sql.NullString
		createdAt       time.Time
	)

	record := &secondary.JobRecord{}
	err := scanner.Scan(
		&record.JobNo, &title, &shipperName, &location, &shipmentDetails, &description,
		&record.Priority, &agentName, &loadingType, &mainCategory, &subCategory,
		&record.Shuttle, &record.LongCarry, &specialRequests, &record.VolumeCBM,
		&jobTime, &record.JobDate, &record.Status, &record.Locked, &assignedTo,
		&record.WarehouseActivity, &record.ImportClearance,
		&teamLeader, &vehicle, &writerCrew, &requesterID, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.Title = title.String
	record.ShipperName = shipperName.String
	record.Location = location.String
	record.ShipmentDetails = shipmentDetails.String
	record.Description = description.String
	record.AgentName = agentName.String
	record.LoadingType = loadingType.String
	record.MainCategory = mainCategory.String
	record.SubCategory = subCategory.String
	record.SpecialRequests = specialRequests.String
	record.JobTime = jobTime.String
	record.AssignedTo = assignedTo.String
	record.TeamLeader = teamLeader.String
	record.Vehicle = vehicle.String
	record.RequesterID = requesterID.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	if writerCrew.Valid && writerCrew.String != "" {
		if err := json.Unmarshal([]byte(writerCrew.String), &record.WriterCrew); err != nil {
			return nil, fmt.Errorf("failed to decode writer crew for %s: %w", record.JobNo, err)
		}
	}

	return record, nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func encodeCrew(crew []string) (sql.NullString, error) {
	if crew == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(crew)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

// Create persists a new job.
func (r *JobRepository) Create(ctx context.Context, rec *secondary.JobRecord) error {
	crew, err := encodeCrew(rec.WriterCrew)
	if err != nil {
		return fmt.Errorf("failed to encode writer crew: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO jobs (job_no, title, shipper_name, location, shipment_details, description,
			priority, agent_name, loading_type, main_category, sub_category, shuttle, long_carry,
			special_requests, volume_cbm, job_time, job_date, status, is_locked, assigned_to,
			is_warehouse_activity, is_import_clearance, team_leader, vehicle, writer_crew, requester_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.JobNo, nullable(rec.Title), nullable(rec.ShipperName), nullable(rec.Location),
		nullable(rec.ShipmentDetails), nullable(rec.Description), rec.Priority,
		nullable(rec.AgentName), nullable(rec.LoadingType), nullable(rec.MainCategory),
		nullable(rec.SubCategory), rec.Shuttle, rec.LongCarry, nullable(rec.SpecialRequests),
		rec.VolumeCBM, nullable(rec.JobTime), rec.JobDate, rec.Status, rec.Locked,
		nullable(rec.AssignedTo), rec.WarehouseActivity, rec.ImportClearance,
		nullable(rec.TeamLeader), nullable(rec.Vehicle), crew, nullable(rec.RequesterID),
	)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// GetByNo retrieves a job by its job number.
func (r *JobRepository) GetByNo(ctx context.Context, jobNo string) (*secondary.JobRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+jobSelectCols+" FROM jobs WHERE job_no = ?",
		jobNo,
	)

	record, err := scanJob(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("job %s not found", jobNo)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return record, nil
}

// Exists reports whether a job number is already taken.
func (r *JobRepository) Exists(ctx context.Context, jobNo string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM jobs WHERE job_no = ?", jobNo).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check job existence: %w", err)
	}
	return count > 0, nil
}

// List retrieves jobs matching the given filters.
func (r *JobRepository) List(ctx context.Context, filters secondary.JobRecordFilters) ([]*secondary.JobRecord, error) {
	query := "SELECT " + jobSelectCols + " FROM jobs WHERE 1=1"
	args := []any{}

	if filters.Date != "" {
		query += " AND job_date = ?"
		args = append(args, filters.Date)
	}
	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}
	if filters.ExcludeStatus != "" {
		query += " AND status != ?"
		args = append(args, filters.ExcludeStatus)
	}
	if filters.RequesterID != "" {
		query += " AND requester_id = ?"
		args = append(args, filters.RequesterID)
	}
	if filters.WarehouseOnly {
		query += " AND is_warehouse_activity = 1"
	}
	if filters.ImportOnly {
		query += " AND is_import_clearance = 1"
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var records []*secondary.JobRecord
	for rows.Next() {
		record, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// CountOnDate counts jobs on a date, excluding the given status.
func (r *JobRepository) CountOnDate(ctx context.Context, date, excludeStatus string) (int, error) {
	query := "SELECT COUNT(*) FROM jobs WHERE job_date = ?"
	args := []any{date}
	if excludeStatus != "" {
		query += " AND status != ?"
		args = append(args, excludeStatus)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count jobs on %s: %w", date, err)
	}
	return count, nil
}

// UpdateStatus updates a job's lifecycle status.
func (r *JobRepository) UpdateStatus(ctx context.Context, jobNo, status string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE jobs SET status = ? WHERE job_no = ?",
		status, jobNo,
	)
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}
	return requireRowAffected(result, jobNo)
}

// UpdateAllocation writes allocation fields onto a job.
func (r *JobRepository) UpdateAllocation(ctx context.Context, jobNo, teamLeader, vehicle string, writerCrew []string) error {
	crew, err := encodeCrew(writerCrew)
	if err != nil {
		return fmt.Errorf("failed to encode writer crew: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE jobs SET team_leader = ?, vehicle = ?, writer_crew = ? WHERE job_no = ?",
		nullable(teamLeader), nullable(vehicle), crew, jobNo,
	)
	if err != nil {
		return fmt.Errorf("failed to update allocation: %w", err)
	}
	return requireRowAffected(result, jobNo)
}

// SetLocked writes the lock flag.
func (r *JobRepository) SetLocked(ctx context.Context, jobNo string, locked bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE jobs SET is_locked = ? WHERE job_no = ?",
		locked, jobNo,
	)
	if err != nil {
		return fmt.Errorf("failed to update lock: %w", err)
	}
	return requireRowAffected(result, jobNo)
}

// Delete removes a job from persistence.
func (r *JobRepository) Delete(ctx context.Context, jobNo string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM jobs WHERE job_no = ?", jobNo)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

// MaxJobNumber returns the highest numeric job-number suffix in the store.
func (r *JobRepository) MaxJobNumber(ctx context.Context) (int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT job_no FROM jobs")
	if err != nil {
		return 0, fmt.Errorf("failed to scan job numbers: %w", err)
	}
	defer rows.Close()

	max := 0
	for rows.Next() {
		var no string
		if err := rows.Scan(&no); err != nil {
			return 0, err
		}
		if n := job.ParseJobNumber(no); n > max {
			max = n
		}
	}
	return max, rows.Err()
}

func requireRowAffected(result sql.Result, jobNo string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("job %s not found", jobNo)
	}
	return nil
}
