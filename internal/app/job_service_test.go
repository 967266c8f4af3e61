package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/dispatch/internal/core/capacity"
	"github.com/example/dispatch/internal/ports/primary"
	"github.com/example/dispatch/internal/ports/secondary"
)

func newTestJobService() (*JobServiceImpl, *mockJobRepository, *mockSettingsRepository) {
	jobRepo := newMockJobRepository()
	settingsRepo := newMockSettingsRepository()
	svc := NewJobService(jobRepo, settingsRepo, capacity.StandardDefaults())
	svc.now = func() time.Time {
		return time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	}
	return svc, jobRepo, settingsRepo
}

func seedJobRecord(repo *mockJobRepository, jobNo, date, status string, locked bool) {
	repo.jobs[jobNo] = &secondary.JobRecord{
		JobNo:   jobNo,
		Title:   jobNo,
		JobDate: date,
		Status:  status,
		Locked:  locked,
	}
}

func TestCreateJob_UserEntersApprovalQueue(t *testing.T) {
	svc, _, _ := newTestJobService()
	ctx := context.Background()

	resp, err := svc.CreateJob(ctx, primary.CreateJobRequest{
		ShipperName:   "Al Noor Trading",
		JobDate:       "2026-01-20",
		RequesterID:   "USR-001",
		RequesterRole: "USER",
	})
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}
	if resp.Job.Status != "PENDING_ADD" {
		t.Errorf("expected status PENDING_ADD, got %s", resp.Job.Status)
	}
	if resp.Job.RequesterID != "USR-001" {
		t.Errorf("expected requester USR-001, got %s", resp.Job.RequesterID)
	}
}

func TestCreateJob_AdminBypassesApproval(t *testing.T) {
	svc, _, _ := newTestJobService()
	ctx := context.Background()

	resp, err := svc.CreateJob(ctx, primary.CreateJobRequest{
		JobDate:       "2026-01-20",
		RequesterID:   "ADM-001",
		RequesterRole: "ADMIN",
	})
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}
	if resp.Job.Status != "ACTIVE" {
		t.Errorf("expected status ACTIVE, got %s", resp.Job.Status)
	}
}

func TestCreateJob_DefaultsApplied(t *testing.T) {
	svc, _, _ := newTestJobService()
	ctx := context.Background()

	resp, err := svc.CreateJob(ctx, primary.CreateJobRequest{
		RequesterRole: "ADMIN",
	})
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}
	if resp.JobNo != "AE-9001" {
		t.Errorf("expected generated number AE-9001, got %s", resp.JobNo)
	}
	if resp.Job.Title != "AE-9001" {
		t.Errorf("expected title to default to the job number, got %s", resp.Job.Title)
	}
	if resp.Job.JobDate != "2026-01-15" {
		t.Errorf("expected date to default to today, got %s", resp.Job.JobDate)
	}
	if resp.Job.Priority != "LOW" {
		t.Errorf("expected default priority LOW, got %s", resp.Job.Priority)
	}
	if resp.Job.ShipmentDetails != "N/A" || resp.Job.Description != "N/A" {
		t.Errorf("expected N/A placeholders, got %q / %q", resp.Job.ShipmentDetails, resp.Job.Description)
	}
	if resp.Job.AssignedTo != "Unassigned" {
		t.Errorf("expected AssignedTo 'Unassigned', got %s", resp.Job.AssignedTo)
	}
}

func TestCreateJob_NumberSeriesContinues(t *testing.T) {
	svc, jobRepo, _ := newTestJobService()
	ctx := context.Background()

	seedJobRecord(jobRepo, "AE-9007", "2026-01-10", "ACTIVE", false)

	resp, err := svc.CreateJob(ctx, primary.CreateJobRequest{
		JobDate:       "2026-01-20",
		RequesterRole: "ADMIN",
	})
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}
	if resp.JobNo != "AE-9008" {
		t.Errorf("expected AE-9008, got %s", resp.JobNo)
	}
}

func TestCreateJob_CustomNumberTaken(t *testing.T) {
	svc, jobRepo, _ := newTestJobService()
	ctx := context.Background()

	seedJobRecord(jobRepo, "AE-9001", "2026-01-10", "ACTIVE", false)

	_, err := svc.CreateJob(ctx, primary.CreateJobRequest{
		JobNo:         "AE-9001",
		JobDate:       "2026-01-20",
		RequesterRole: "ADMIN",
	})
	var verr *primary.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateJob_CapacityCeiling(t *testing.T) {
	svc, _, settingsRepo := newTestJobService()
	ctx := context.Background()

	settingsRepo.limits["2026-01-20"] = 2

	// The first two creations fill the ceiling
	for i := 0; i < 2; i++ {
		if _, err := svc.CreateJob(ctx, primary.CreateJobRequest{
			JobDate:       "2026-01-20",
			RequesterRole: "USER",
		}); err != nil {
			t.Fatalf("CreateJob %d failed: %v", i+1, err)
		}
	}

	// The third is refused, even for an admin
	_, err := svc.CreateJob(ctx, primary.CreateJobRequest{
		JobDate:       "2026-01-20",
		RequesterRole: "ADMIN",
	})
	var cerr *primary.CapacityError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected CapacityError, got %v", err)
	}
	if cerr.EffectiveLimit != 2 {
		t.Errorf("expected effective limit 2, got %d", cerr.EffectiveLimit)
	}
	if cerr.Holiday {
		t.Error("expected a ceiling error, not a holiday error")
	}
}

func TestCreateJob_RejectedJobsFreeTheirSlot(t *testing.T) {
	svc, jobRepo, settingsRepo := newTestJobService()
	ctx := context.Background()

	settingsRepo.limits["2026-01-20"] = 1
	seedJobRecord(jobRepo, "AE-9001", "2026-01-20", "REJECTED", false)

	// The rejected job does not occupy the single slot
	resp, err := svc.CreateJob(ctx, primary.CreateJobRequest{
		JobDate:       "2026-01-20",
		RequesterRole: "USER",
	})
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}
	if resp.Job.Status != "PENDING_ADD" {
		t.Errorf("expected PENDING_ADD, got %s", resp.Job.Status)
	}
}

func TestCreateJob_HolidayBlocksEveryone(t *testing.T) {
	svc, _, settingsRepo := newTestJobService()
	ctx := context.Background()

	settingsRepo.holidays["2026-12-02"] = true

	_, err := svc.CreateJob(ctx, primary.CreateJobRequest{
		JobDate:       "2026-12-02",
		RequesterRole: "ADMIN",
	})
	var cerr *primary.CapacityError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected CapacityError, got %v", err)
	}
	if !cerr.Holiday {
		t.Error("expected a holiday error")
	}
}

func TestCreateJob_FallbackLimitWhenNothingStored(t *testing.T) {
	svc, _, _ := newTestJobService()
	ctx := context.Background()

	// No stored ceiling: the fallback of 5 applies
	for i := 0; i < 5; i++ {
		if _, err := svc.CreateJob(ctx, primary.CreateJobRequest{
			JobDate:       "2026-01-20",
			RequesterRole: "USER",
		}); err != nil {
			t.Fatalf("CreateJob %d failed: %v", i+1, err)
		}
	}

	_, err := svc.CreateJob(ctx, primary.CreateJobRequest{
		JobDate:       "2026-01-20",
		RequesterRole: "USER",
	})
	var cerr *primary.CapacityError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected CapacityError after 5 jobs, got %v", err)
	}
	if cerr.EffectiveLimit != 5 {
		t.Errorf("expected fallback limit 5, got %d", cerr.EffectiveLimit)
	}
}

func TestGetJob_NotFound(t *testing.T) {
	svc, _, _ := newTestJobService()
	ctx := context.Background()

	_, err := svc.GetJob(ctx, "AE-9999")
	var nferr *primary.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nferr.Kind != "job" {
		t.Errorf("expected kind 'job', got %s", nferr.Kind)
	}
}

func TestUpdateAllocation_MergesFieldwise(t *testing.T) {
	svc, jobRepo, _ := newTestJobService()
	ctx := context.Background()

	seedJobRecord(jobRepo, "AE-9001", "2026-01-20", "ACTIVE", false)
	jobRepo.jobs["AE-9001"].TeamLeader = "Ahmed Khan"
	jobRepo.jobs["AE-9001"].Vehicle = "Truck 01"

	vehicle := "Truck 02"
	updated, err := svc.UpdateAllocation(ctx, primary.UpdateAllocationRequest{
		JobNo:      "AE-9001",
		Allocation: primary.Allocation{Vehicle: &vehicle},
	})
	if err != nil {
		t.Fatalf("UpdateAllocation failed: %v", err)
	}
	if updated.TeamLeader != "Ahmed Khan" {
		t.Errorf("nil field should keep team leader, got %s", updated.TeamLeader)
	}
	if updated.Vehicle != "Truck 02" {
		t.Errorf("expected vehicle 'Truck 02', got %s", updated.Vehicle)
	}
}

func TestUpdateAllocation_EmptyValueClears(t *testing.T) {
	svc, jobRepo, _ := newTestJobService()
	ctx := context.Background()

	seedJobRecord(jobRepo, "AE-9001", "2026-01-20", "ACTIVE", false)
	jobRepo.jobs["AE-9001"].TeamLeader = "Ahmed Khan"

	empty := ""
	updated, err := svc.UpdateAllocation(ctx, primary.UpdateAllocationRequest{
		JobNo:      "AE-9001",
		Allocation: primary.Allocation{TeamLeader: &empty},
	})
	if err != nil {
		t.Fatalf("UpdateAllocation failed: %v", err)
	}
	if updated.TeamLeader != "" {
		t.Errorf("expected team leader cleared, got %s", updated.TeamLeader)
	}
}

func TestUpdateAllocation_UnknownJob(t *testing.T) {
	svc, _, _ := newTestJobService()
	ctx := context.Background()

	leader := "Ahmed Khan"
	_, err := svc.UpdateAllocation(ctx, primary.UpdateAllocationRequest{
		JobNo:      "AE-9999",
		Allocation: primary.Allocation{TeamLeader: &leader},
	})
	var nferr *primary.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestToggleLock(t *testing.T) {
	svc, jobRepo, _ := newTestJobService()
	ctx := context.Background()

	seedJobRecord(jobRepo, "AE-9001", "2026-01-20", "ACTIVE", false)

	locked, err := svc.ToggleLock(ctx, primary.ToggleLockRequest{JobNo: "AE-9001", ActorRole: "ADMIN"})
	if err != nil {
		t.Fatalf("ToggleLock failed: %v", err)
	}
	if !locked.Locked {
		t.Error("expected job to be locked after first toggle")
	}

	unlocked, err := svc.ToggleLock(ctx, primary.ToggleLockRequest{JobNo: "AE-9001", ActorRole: "ADMIN"})
	if err != nil {
		t.Fatalf("ToggleLock failed: %v", err)
	}
	if unlocked.Locked {
		t.Error("expected job to be unlocked after second toggle")
	}
}

func TestToggleLock_UserForbidden(t *testing.T) {
	svc, jobRepo, _ := newTestJobService()
	ctx := context.Background()

	seedJobRecord(jobRepo, "AE-9001", "2026-01-20", "ACTIVE", false)

	_, err := svc.ToggleLock(ctx, primary.ToggleLockRequest{JobNo: "AE-9001", ActorRole: "USER"})
	var ferr *primary.ForbiddenError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected ForbiddenError, got %v", err)
	}
}

func TestDeleteJob_AdminHardDeletes(t *testing.T) {
	svc, jobRepo, _ := newTestJobService()
	ctx := context.Background()

	seedJobRecord(jobRepo, "AE-9001", "2026-01-20", "ACTIVE", true) // locked

	if err := svc.DeleteJob(ctx, primary.DeleteJobRequest{JobNo: "AE-9001", ActorRole: "ADMIN"}); err != nil {
		t.Fatalf("DeleteJob failed: %v", err)
	}
	if _, ok := jobRepo.jobs["AE-9001"]; ok {
		t.Error("expected job removed from the store")
	}
}

func TestDeleteJob_UserQueuesDeleteRequest(t *testing.T) {
	svc, jobRepo, _ := newTestJobService()
	ctx := context.Background()

	seedJobRecord(jobRepo, "AE-9001", "2026-01-20", "ACTIVE", false)

	if err := svc.DeleteJob(ctx, primary.DeleteJobRequest{JobNo: "AE-9001", ActorRole: "USER"}); err != nil {
		t.Fatalf("DeleteJob failed: %v", err)
	}
	if got := jobRepo.jobs["AE-9001"].Status; got != "PENDING_DELETE" {
		t.Errorf("expected PENDING_DELETE, got %s", got)
	}
}

func TestDeleteJob_LockedRefusesUser(t *testing.T) {
	svc, jobRepo, _ := newTestJobService()
	ctx := context.Background()

	seedJobRecord(jobRepo, "AE-9001", "2026-01-20", "ACTIVE", true)

	err := svc.DeleteJob(ctx, primary.DeleteJobRequest{JobNo: "AE-9001", ActorRole: "USER"})
	var lerr *primary.LockedError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LockedError, got %v", err)
	}
	if got := jobRepo.jobs["AE-9001"].Status; got != "ACTIVE" {
		t.Errorf("locked refusal must not change status, got %s", got)
	}
}

func TestDeleteJob_NotFound(t *testing.T) {
	svc, _, _ := newTestJobService()
	ctx := context.Background()

	err := svc.DeleteJob(ctx, primary.DeleteJobRequest{JobNo: "AE-9999", ActorRole: "ADMIN"})
	var nferr *primary.NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDecideApproval_ApprovePendingAdd(t *testing.T) {
	svc, jobRepo, _ := newTestJobService()
	ctx := context.Background()

	seedJobRecord(jobRepo, "AE-9001", "2026-01-20", "PENDING_ADD", false)

	leader := "Ahmed Khan"
	crew := []string{"Ravi Kumar"}
	updated, err := svc.DecideApproval(ctx, primary.DecideApprovalRequest{
		JobNo:      "AE-9001",
		Approved:   true,
		Allocation: primary.Allocation{TeamLeader: &leader, WriterCrew: &crew},
		ActorRole:  "ADMIN",
	})
	if err != nil {
		t.Fatalf("DecideApproval failed: %v", err)
	}
	if updated.Status != "ACTIVE" {
		t.Errorf("expected ACTIVE, got %s", updated.Status)
	}
	if updated.TeamLeader != "Ahmed Khan" {
		t.Errorf("expected allocation merged, got leader %q", updated.TeamLeader)
	}
	if len(updated.WriterCrew) != 1 || updated.WriterCrew[0] != "Ravi Kumar" {
		t.Errorf("expected writer crew [Ravi Kumar], got %v", updated.WriterCrew)
	}
}

func TestDecideApproval_RejectPendingAdd(t *testing.T) {
	svc, jobRepo, _ := newTestJobService()
	ctx := context.Background()

	seedJobRecord(jobRepo, "AE-9001", "2026-01-20", "PENDING_ADD", false)

	updated, err := svc.DecideApproval(ctx, primary.DecideApprovalRequest{
		JobNo:     "AE-9001",
		Approved:  false,
		ActorRole: "ADMIN",
	})
	if err != nil {
		t.Fatalf("DecideApproval failed: %v", err)
	}
	if updated.Status != "REJECTED" {
		t.Errorf("expected REJECTED, got %s", updated.Status)
	}
	// The rejected job stays in the store
	if _, ok := jobRepo.jobs["AE-9001"]; !ok {
		t.Error("rejected job must be retained")
	}
}

func TestDecideApproval_ApprovePendingDeleteRemoves(t *testing.T) {
	svc, jobRepo, _ := newTestJobService()
	ctx := context.Background()

	seedJobRecord(jobRepo, "AE-9001", "2026-01-20", "PENDING_DELETE", false)

	updated, err := svc.DecideApproval(ctx, primary.DecideApprovalRequest{
		JobNo:     "AE-9001",
		Approved:  true,
		ActorRole: "ADMIN",
	})
	if err != nil {
		t.Fatalf("DecideApproval failed: %v", err)
	}
	if updated != nil {
		t.Errorf("expected nil job after removal, got %+v", updated)
	}
	if _, ok := jobRepo.jobs["AE-9001"]; ok {
		t.Error("expected job removed from the store")
	}
}

func TestDecideApproval_RejectPendingDeleteRestores(t *testing.T) {
	svc, jobRepo, _ := newTestJobService()
	ctx := context.Background()

	seedJobRecord(jobRepo, "AE-9001", "2026-01-20", "PENDING_DELETE", false)

	updated, err := svc.DecideApproval(ctx, primary.DecideApprovalRequest{
		JobNo:     "AE-9001",
		Approved:  false,
		ActorRole: "ADMIN",
	})
	if err != nil {
		t.Fatalf("DecideApproval failed: %v", err)
	}
	if updated.Status != "ACTIVE" {
		t.Errorf("expected ACTIVE, got %s", updated.Status)
	}
}

func TestDecideApproval_UserForbidden(t *testing.T) {
	svc, jobRepo, _ := newTestJobService()
	ctx := context.Background()

	seedJobRecord(jobRepo, "AE-9001", "2026-01-20", "PENDING_ADD", false)

	_, err := svc.DecideApproval(ctx, primary.DecideApprovalRequest{
		JobNo:     "AE-9001",
		Approved:  true,
		ActorRole: "USER",
	})
	var ferr *primary.ForbiddenError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected ForbiddenError, got %v", err)
	}
}

func TestDecideApproval_NonPendingJob(t *testing.T) {
	svc, jobRepo, _ := newTestJobService()
	ctx := context.Background()

	seedJobRecord(jobRepo, "AE-9001", "2026-01-20", "ACTIVE", false)

	_, err := svc.DecideApproval(ctx, primary.DecideApprovalRequest{
		JobNo:     "AE-9001",
		Approved:  true,
		ActorRole: "ADMIN",
	})
	var terr *primary.InvalidTransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if terr.Status != "ACTIVE" {
		t.Errorf("expected status ACTIVE in error, got %s", terr.Status)
	}
}

func TestListJobs_Filters(t *testing.T) {
	svc, jobRepo, _ := newTestJobService()
	ctx := context.Background()

	seedJobRecord(jobRepo, "AE-9001", "2026-01-20", "ACTIVE", false)
	seedJobRecord(jobRepo, "AE-9002", "2026-01-20", "REJECTED", false)
	seedJobRecord(jobRepo, "AE-9003", "2026-01-21", "PENDING_ADD", false)

	jobs, err := svc.ListJobs(ctx, primary.JobFilters{Date: "2026-01-20", ExcludeStatus: "REJECTED"})
	if err != nil {
		t.Fatalf("ListJobs failed: %v", err)
	}
	if len(jobs) != 1 || jobs[0].JobNo != "AE-9001" {
		t.Errorf("expected [AE-9001], got %d jobs", len(jobs))
	}
}
