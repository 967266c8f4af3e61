package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates the database with development fixtures: a starting
// crew, a small fleet, today's explicit ceiling, and one active job.
func SeedFixtures(database *sql.DB) error {
	now := time.Now().Format(time.RFC3339)
	today := time.Now().Format("2006-01-02")

	// Personnel
	personnel := []struct{ id, employeeID, name, ptype, emiratesID string }{
		{"PER-001", "EMP-101", "Ahmed Khan", "Team Leader", "784-1980-1234567-1"},
		{"PER-002", "EMP-202", "Suresh Kumar", "Writer Crew", "784-1992-7654321-2"},
		{"PER-003", "EMP-203", "John Doe", "Writer Crew", "784-1995-1212121-3"},
		{"PER-004", "EMP-104", "Zeeshan Ali", "Team Leader", "784-1988-3333333-4"},
	}
	for _, p := range personnel {
		if _, err := database.Exec(
			"INSERT INTO personnel (id, employee_id, name, type, status, emirates_id, created_at) VALUES (?, ?, ?, ?, 'Available', ?, ?)",
			p.id, p.employeeID, p.name, p.ptype, p.emiratesID, now,
		); err != nil {
			return fmt.Errorf("seed personnel: %w", err)
		}
	}

	// Fleet
	vehicles := []struct{ id, name, plate, status string }{
		{"VEH-001", "Truck 01", "DXB-10244", "Available"},
		{"VEH-002", "Van 04", "SHJ-44599", "Maintenance"},
		{"VEH-003", "Lorry 09", "AUH-99881", "Available"},
	}
	for _, v := range vehicles {
		if _, err := database.Exec(
			"INSERT INTO vehicles (id, name, plate, status, created_at) VALUES (?, ?, ?, ?, ?)",
			v.id, v.name, v.plate, v.status, now,
		); err != nil {
			return fmt.Errorf("seed vehicles: %w", err)
		}
	}

	// Capacity: explicit ceiling of 10 for today
	if _, err := database.Exec(
		"INSERT INTO daily_limits (date, job_limit) VALUES (?, 10)", today,
	); err != nil {
		return fmt.Errorf("seed daily limit: %w", err)
	}

	// One active job so boards aren't empty
	if _, err := database.Exec(
		`INSERT INTO jobs (job_no, title, shipper_name, location, shipment_details, description,
			priority, agent_name, loading_type, main_category, sub_category,
			special_requests, volume_cbm, job_time, job_date, status, assigned_to,
			team_leader, vehicle, writer_crew, requester_id, created_at)
		 VALUES ('AE-9001', 'AE-9001', 'Writer Relocations HQ', 'Dubai South', 'Office Equipment', 'Internal HQ move',
			'MEDIUM', 'Internal', 'Warehouse Removal', 'Corporate', 'Export',
			'{"handyman":true,"manpower":true,"documents":true,"packingList":true}', 20, '08:00', ?, 'ACTIVE', 'Team Alpha',
			'Ahmed Khan', 'Truck 01', '["Suresh Kumar","John Doe"]', 'USR-001', ?)`,
		today, now,
	); err != nil {
		return fmt.Errorf("seed jobs: %w", err)
	}

	return nil
}
