package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/example/dispatch/internal/core/capacity"
	"github.com/example/dispatch/internal/core/job"
	"github.com/example/dispatch/internal/ports/primary"
	"github.com/example/dispatch/internal/ports/secondary"
)

// JobServiceImpl implements the JobService interface. It is the lifecycle
// engine: every job mutation funnels through here, consulting the capacity
// policy and the authorization predicate before touching the store.
//
// A single mutex serializes mutations so the capacity guard's
// read-count/compare/write sequence is atomic; concurrent creation requests
// cannot race past the same ceiling.
type JobServiceImpl struct {
	mu           sync.Mutex
	jobRepo      secondary.JobRepository
	settingsRepo secondary.SettingsRepository
	defaults     capacity.Defaults
	now          func() time.Time
}

// NewJobService creates a new JobService with injected dependencies.
func NewJobService(
	jobRepo secondary.JobRepository,
	settingsRepo secondary.SettingsRepository,
	defaults capacity.Defaults,
) *JobServiceImpl {
	return &JobServiceImpl{
		jobRepo:      jobRepo,
		settingsRepo: settingsRepo,
		defaults:     defaults,
		now:          time.Now,
	}
}

// CreateJob creates a new relocation job after the capacity guard passes.
// The guard runs for every requester role; elevated requesters are exempt
// only from approval gating, never from the ceiling or holiday blackouts.
func (s *JobServiceImpl) CreateJob(ctx context.Context, req primary.CreateJobRequest) (*primary.CreateJobResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	date := req.JobDate
	if date == "" {
		date = s.now().Format("2006-01-02")
	}

	check, err := s.checkCapacity(ctx, date)
	if err != nil {
		return nil, err
	}
	if !check.Allowed {
		return nil, &primary.CapacityError{
			Date:           date,
			EffectiveLimit: check.EffectiveLimit,
			Holiday:        check.Holiday,
		}
	}

	jobNo := req.JobNo
	if jobNo != "" {
		taken, err := s.jobRepo.Exists(ctx, jobNo)
		if err != nil {
			return nil, fmt.Errorf("failed to validate job number: %w", err)
		}
		if taken {
			return nil, &primary.ValidationError{Reason: fmt.Sprintf("job number %s is already taken", jobNo)}
		}
	} else {
		max, err := s.jobRepo.MaxJobNumber(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to generate job number: %w", err)
		}
		jobNo = job.GenerateJobNo(max)
	}

	flags, err := json.Marshal(req.SpecialRequests)
	if err != nil {
		return nil, fmt.Errorf("failed to encode special requests: %w", err)
	}

	record := &secondary.JobRecord{
		JobNo:             jobNo,
		Title:             orDefault(req.Title, jobNo),
		ShipperName:       req.ShipperName,
		Location:          req.Location,
		ShipmentDetails:   orDefault(req.ShipmentDetails, "N/A"),
		Description:       orDefault(req.Description, "N/A"),
		Priority:          orDefault(req.Priority, "LOW"),
		AgentName:         req.AgentName,
		LoadingType:       req.LoadingType,
		MainCategory:      req.MainCategory,
		SubCategory:       req.SubCategory,
		Shuttle:           req.Shuttle,
		LongCarry:         req.LongCarry,
		SpecialRequests:   string(flags),
		VolumeCBM:         req.VolumeCBM,
		JobTime:           req.JobTime,
		JobDate:           date,
		Status:            string(job.InitialStatus(job.Role(req.RequesterRole))),
		AssignedTo:        orDefault(req.AssignedTo, "Unassigned"),
		WarehouseActivity: req.WarehouseActivity,
		ImportClearance:   req.ImportClearance,
		RequesterID:       req.RequesterID,
	}

	if err := s.jobRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	created, err := s.jobRepo.GetByNo(ctx, jobNo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created job: %w", err)
	}

	return &primary.CreateJobResponse{
		JobNo: created.JobNo,
		Job:   recordToJob(created),
	}, nil
}

// GetJob retrieves a job by its job number.
func (s *JobServiceImpl) GetJob(ctx context.Context, jobNo string) (*primary.Job, error) {
	record, err := s.getJob(ctx, jobNo)
	if err != nil {
		return nil, err
	}
	return recordToJob(record), nil
}

// ListJobs lists jobs with optional filters.
func (s *JobServiceImpl) ListJobs(ctx context.Context, filters primary.JobFilters) ([]*primary.Job, error) {
	records, err := s.jobRepo.List(ctx, secondary.JobRecordFilters{
		Date:          filters.Date,
		Status:        filters.Status,
		ExcludeStatus: filters.ExcludeStatus,
		RequesterID:   filters.RequesterID,
		WarehouseOnly: filters.WarehouseOnly,
		ImportOnly:    filters.ImportOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	jobs := make([]*primary.Job, len(records))
	for i, r := range records {
		jobs[i] = recordToJob(r)
	}
	return jobs, nil
}

// UpdateAllocation merges a dispatch allocation onto a job. The merge is
// field-wise: nil fields keep their current value, non-nil fields overwrite.
// Callable in any status; the engine does not cross-check availability.
func (s *JobServiceImpl) UpdateAllocation(ctx context.Context, req primary.UpdateAllocationRequest) (*primary.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getJob(ctx, req.JobNo)
	if err != nil {
		return nil, err
	}

	teamLeader := record.TeamLeader
	vehicle := record.Vehicle
	crew := record.WriterCrew
	if req.Allocation.TeamLeader != nil {
		teamLeader = *req.Allocation.TeamLeader
	}
	if req.Allocation.Vehicle != nil {
		vehicle = *req.Allocation.Vehicle
	}
	if req.Allocation.WriterCrew != nil {
		crew = *req.Allocation.WriterCrew
	}

	if err := s.jobRepo.UpdateAllocation(ctx, req.JobNo, teamLeader, vehicle, crew); err != nil {
		return nil, fmt.Errorf("failed to update allocation: %w", err)
	}

	updated, err := s.jobRepo.GetByNo(ctx, req.JobNo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated job: %w", err)
	}
	return recordToJob(updated), nil
}

// ToggleLock flips a job's lock flag. Admin only.
func (s *JobServiceImpl) ToggleLock(ctx context.Context, req primary.ToggleLockRequest) (*primary.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if guard := job.CanToggleLock(job.LockContext{
		JobNo:     req.JobNo,
		ActorRole: job.Role(req.ActorRole),
	}); !guard.Allowed {
		return nil, &primary.ForbiddenError{Reason: guard.Reason}
	}

	record, err := s.getJob(ctx, req.JobNo)
	if err != nil {
		return nil, err
	}

	if err := s.jobRepo.SetLocked(ctx, req.JobNo, !record.Locked); err != nil {
		return nil, fmt.Errorf("failed to toggle lock: %w", err)
	}

	updated, err := s.jobRepo.GetByNo(ctx, req.JobNo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated job: %w", err)
	}
	return recordToJob(updated), nil
}

// DeleteJob requests removal of a job. An elevated actor hard-deletes
// immediately, locked or not; anyone else moves the job to PENDING_DELETE,
// unless the job is locked, in which case nothing changes.
func (s *JobServiceImpl) DeleteJob(ctx context.Context, req primary.DeleteJobRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getJob(ctx, req.JobNo)
	if err != nil {
		return err
	}

	role := job.Role(req.ActorRole)
	if guard := job.CanRequestDelete(job.DeleteContext{
		JobNo:     req.JobNo,
		IsLocked:  record.Locked,
		ActorRole: role,
	}); !guard.Allowed {
		return &primary.LockedError{JobNo: req.JobNo}
	}

	if job.IsElevated(role) {
		if err := s.jobRepo.Delete(ctx, req.JobNo); err != nil {
			return fmt.Errorf("failed to delete job: %w", err)
		}
		return nil
	}

	if err := s.jobRepo.UpdateStatus(ctx, req.JobNo, string(job.StatusPendingDelete)); err != nil {
		return fmt.Errorf("failed to queue delete request: %w", err)
	}
	return nil
}

// DecideApproval approves or rejects a pending job. Approving a
// PENDING_ADD job may merge an allocation payload in the same operation;
// approving a PENDING_DELETE job removes the record and returns nil.
func (s *JobServiceImpl) DecideApproval(ctx context.Context, req primary.DecideApprovalRequest) (*primary.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getJob(ctx, req.JobNo)
	if err != nil {
		return nil, err
	}

	status := job.Status(record.Status)
	role := job.Role(req.ActorRole)
	if !job.IsElevated(role) {
		return nil, &primary.ForbiddenError{
			Reason: fmt.Sprintf("only an admin can approve or reject job %s", req.JobNo),
		}
	}
	if !job.IsPending(status) {
		return nil, &primary.InvalidTransitionError{JobNo: req.JobNo, Status: record.Status}
	}

	decision := job.ApplyDecision(status, req.Approved)
	switch decision.Effect {
	case job.EffectRemove:
		if err := s.jobRepo.Delete(ctx, req.JobNo); err != nil {
			return nil, fmt.Errorf("failed to delete job: %w", err)
		}
		return nil, nil

	case job.EffectSetStatus:
		if decision.MergeAllocation && !req.Allocation.IsZero() {
			teamLeader := record.TeamLeader
			vehicle := record.Vehicle
			crew := record.WriterCrew
			if req.Allocation.TeamLeader != nil {
				teamLeader = *req.Allocation.TeamLeader
			}
			if req.Allocation.Vehicle != nil {
				vehicle = *req.Allocation.Vehicle
			}
			if req.Allocation.WriterCrew != nil {
				crew = *req.Allocation.WriterCrew
			}
			if err := s.jobRepo.UpdateAllocation(ctx, req.JobNo, teamLeader, vehicle, crew); err != nil {
				return nil, fmt.Errorf("failed to merge allocation: %w", err)
			}
		}
		if err := s.jobRepo.UpdateStatus(ctx, req.JobNo, string(decision.NewStatus)); err != nil {
			return nil, fmt.Errorf("failed to update job status: %w", err)
		}

		updated, err := s.jobRepo.GetByNo(ctx, req.JobNo)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch updated job: %w", err)
		}
		return recordToJob(updated), nil
	}

	return nil, &primary.InvalidTransitionError{JobNo: req.JobNo, Status: record.Status}
}

// checkCapacity evaluates the capacity guard for a date.
func (s *JobServiceImpl) checkCapacity(ctx context.Context, date string) (*primary.ScheduleCheck, error) {
	holiday, err := s.settingsRepo.IsHoliday(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to check holiday: %w", err)
	}
	stored, hasStored, err := s.settingsRepo.GetDailyLimit(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to read daily limit: %w", err)
	}
	count, err := s.jobRepo.CountOnDate(ctx, date, string(job.StatusRejected))
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	result := capacity.CanSchedule(date, count, capacity.PolicyContext{
		IsHoliday:   holiday,
		StoredLimit: stored,
		HasStored:   hasStored,
	}, s.defaults)

	return &primary.ScheduleCheck{
		Date:           date,
		Allowed:        result.Allowed,
		EffectiveLimit: result.EffectiveLimit,
		CurrentCount:   count,
		Holiday:        holiday,
	}, nil
}

// getJob fetches a job record, mapping a missing record to NotFoundError.
func (s *JobServiceImpl) getJob(ctx context.Context, jobNo string) (*secondary.JobRecord, error) {
	exists, err := s.jobRepo.Exists(ctx, jobNo)
	if err != nil {
		return nil, fmt.Errorf("failed to look up job: %w", err)
	}
	if !exists {
		return nil, &primary.NotFoundError{Kind: "job", ID: jobNo}
	}
	return s.jobRepo.GetByNo(ctx, jobNo)
}

// recordToJob converts a persistence record to the port representation.
func recordToJob(r *secondary.JobRecord) *primary.Job {
	j := &primary.Job{
		JobNo:             r.JobNo,
		Title:             r.Title,
		ShipperName:       r.ShipperName,
		Location:          r.Location,
		ShipmentDetails:   r.ShipmentDetails,
		Description:       r.Description,
		Priority:          r.Priority,
		AgentName:         r.AgentName,
		LoadingType:       r.LoadingType,
		MainCategory:      r.MainCategory,
		SubCategory:       r.SubCategory,
		Shuttle:           r.Shuttle,
		LongCarry:         r.LongCarry,
		VolumeCBM:         r.VolumeCBM,
		JobTime:           r.JobTime,
		JobDate:           r.JobDate,
		Status:            r.Status,
		Locked:            r.Locked,
		AssignedTo:        r.AssignedTo,
		WarehouseActivity: r.WarehouseActivity,
		ImportClearance:   r.ImportClearance,
		TeamLeader:        r.TeamLeader,
		Vehicle:           r.Vehicle,
		WriterCrew:        r.WriterCrew,
		RequesterID:       r.RequesterID,
		CreatedAt:         r.CreatedAt,
	}
	if r.SpecialRequests != "" {
		// Flags written by this engine always decode; tolerate hand-edited rows.
		_ = json.Unmarshal([]byte(r.SpecialRequests), &j.SpecialRequests)
	}
	return j
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
