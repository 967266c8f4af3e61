// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB()
// and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/dispatch/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository tests.
// Uses db.GetSchemaSQL() to prevent test schemas from drifting.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedJob inserts a minimal test job and returns its job number.
func seedJob(t *testing.T, db *sql.DB, jobNo, date, status string) string {
	t.Helper()
	if jobNo == "" {
		jobNo = "AE-9001"
	}
	if date == "" {
		date = "2026-01-15"
	}
	if status == "" {
		status = "ACTIVE"
	}
	_, err := db.Exec(
		"INSERT INTO jobs (job_no, title, job_date, status, priority) VALUES (?, ?, ?, ?, 'LOW')",
		jobNo, jobNo, date, status,
	)
	if err != nil {
		t.Fatalf("failed to seed job: %v", err)
	}
	return jobNo
}

// seedPersonnel inserts a test crew member and returns their ID.
func seedPersonnel(t *testing.T, db *sql.DB, id, name, ptype string) string {
	t.Helper()
	if id == "" {
		id = "PER-001"
	}
	if name == "" {
		name = "Ahmed Khan"
	}
	if ptype == "" {
		ptype = "Team Leader"
	}
	_, err := db.Exec(
		"INSERT INTO personnel (id, employee_id, name, type, status, emirates_id) VALUES (?, ?, ?, ?, 'Available', ?)",
		id, "EMP-"+id, name, ptype, "784-"+id,
	)
	if err != nil {
		t.Fatalf("failed to seed personnel: %v", err)
	}
	return id
}

// seedVehicle inserts a test vehicle and returns its ID.
func seedVehicle(t *testing.T, db *sql.DB, id, name, plate string) string {
	t.Helper()
	if id == "" {
		id = "VEH-001"
	}
	if name == "" {
		name = "Truck 01"
	}
	if plate == "" {
		plate = "DXB-" + id
	}
	_, err := db.Exec(
		"INSERT INTO vehicles (id, name, plate, status) VALUES (?, ?, ?, 'Available')",
		id, name, plate,
	)
	if err != nil {
		t.Fatalf("failed to seed vehicle: %v", err)
	}
	return id
}
