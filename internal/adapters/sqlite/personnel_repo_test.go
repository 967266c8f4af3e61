package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/dispatch/internal/adapters/sqlite"
	"github.com/example/dispatch/internal/ports/secondary"
)

func TestPersonnelRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPersonnelRepository(db)
	ctx := context.Background()

	p := &secondary.PersonnelRecord{
		ID:         "PER-001",
		EmployeeID: "EMP-001",
		Name:       "Ahmed Khan",
		Type:       "Team Leader",
		Status:     "Available",
		EmiratesID: "784-1990-1234567-1",
	}

	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, "PER-001")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.Name != "Ahmed Khan" {
		t.Errorf("expected name 'Ahmed Khan', got '%s'", retrieved.Name)
	}
	if retrieved.Type != "Team Leader" {
		t.Errorf("expected type 'Team Leader', got '%s'", retrieved.Type)
	}
}

func TestPersonnelRepository_Create_DuplicateEmployeeID(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPersonnelRepository(db)
	ctx := context.Background()

	seedPersonnel(t, db, "PER-001", "Ahmed Khan", "")

	err := repo.Create(ctx, &secondary.PersonnelRecord{
		ID:         "PER-002",
		EmployeeID: "EMP-PER-001", // collides with seeded employee_id
		Name:       "Other Person",
		Type:       "Writer Crew",
		Status:     "Available",
		EmiratesID: "784-other",
	})
	if err == nil {
		t.Fatal("expected unique constraint error, got nil")
	}
}

func TestPersonnelRepository_List_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPersonnelRepository(db)
	ctx := context.Background()

	seedPersonnel(t, db, "PER-001", "Ahmed Khan", "Team Leader")
	seedPersonnel(t, db, "PER-002", "Ravi Kumar", "Writer Crew")
	seedPersonnel(t, db, "PER-003", "John Paul", "Writer Crew")

	all, err := repo.List(ctx, secondary.PersonnelRecordFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 crew members, got %d", len(all))
	}

	writers, err := repo.List(ctx, secondary.PersonnelRecordFilters{Type: "Writer Crew"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(writers) != 2 {
		t.Errorf("expected 2 writer crew, got %d", len(writers))
	}

	if err := repo.UpdateStatus(ctx, "PER-002", "Sick Leave"); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	available, err := repo.List(ctx, secondary.PersonnelRecordFilters{Status: "Available"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(available) != 2 {
		t.Errorf("expected 2 available crew members, got %d", len(available))
	}
}

func TestPersonnelRepository_UpdateStatus_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPersonnelRepository(db)
	ctx := context.Background()

	if err := repo.UpdateStatus(ctx, "PER-999", "Available"); err == nil {
		t.Error("expected error updating missing personnel, got nil")
	}
}

func TestPersonnelRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPersonnelRepository(db)
	ctx := context.Background()

	seedPersonnel(t, db, "PER-001", "", "")

	if err := repo.Delete(ctx, "PER-001"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, "PER-001"); err == nil {
		t.Error("expected error after delete, got nil")
	}
}

func TestPersonnelRepository_NextID(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPersonnelRepository(db)
	ctx := context.Background()

	id, err := repo.NextID(ctx)
	if err != nil {
		t.Fatalf("NextID failed: %v", err)
	}
	if id != "PER-001" {
		t.Errorf("expected PER-001 on empty store, got %s", id)
	}

	seedPersonnel(t, db, "PER-001", "Ahmed Khan", "")
	seedPersonnel(t, db, "PER-007", "Ravi Kumar", "")

	id, err = repo.NextID(ctx)
	if err != nil {
		t.Fatalf("NextID failed: %v", err)
	}
	if id != "PER-008" {
		t.Errorf("expected PER-008, got %s", id)
	}
}
