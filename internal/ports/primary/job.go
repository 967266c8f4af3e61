package primary

import "context"

// JobService defines the primary port for job lifecycle operations.
// All mutations consult the capacity policy and the authorization
// predicate before touching the store.
type JobService interface {
	// CreateJob creates a new relocation job. Admin requesters get an
	// ACTIVE job; everyone else enters the approval queue as PENDING_ADD.
	// Returns *CapacityError when the date's ceiling or a holiday blocks it.
	CreateJob(ctx context.Context, req CreateJobRequest) (*CreateJobResponse, error)

	// GetJob retrieves a job by its job number.
	GetJob(ctx context.Context, jobNo string) (*Job, error)

	// ListJobs lists jobs with optional filters.
	ListJobs(ctx context.Context, filters JobFilters) ([]*Job, error)

	// UpdateAllocation merges a dispatch allocation (team leader, vehicle,
	// crew) onto a job. Callable in any status; fields left nil are kept.
	UpdateAllocation(ctx context.Context, req UpdateAllocationRequest) (*Job, error)

	// ToggleLock flips a job's lock flag. Admin only.
	ToggleLock(ctx context.Context, req ToggleLockRequest) (*Job, error)

	// DeleteJob requests removal of a job. Admins hard-delete immediately;
	// other actors move the job to PENDING_DELETE. A locked job refuses
	// non-admin requests with *LockedError.
	DeleteJob(ctx context.Context, req DeleteJobRequest) error

	// DecideApproval approves or rejects a pending job. Approving a
	// PENDING_DELETE job removes it, in which case the returned job is nil.
	DecideApproval(ctx context.Context, req DecideApprovalRequest) (*Job, error)
}

// SpecialRequests are the optional service flags attached to a job.
type SpecialRequests struct {
	Handyman         bool `json:"handyman"`
	Manpower         bool `json:"manpower"`
	Overtime         bool `json:"overtime"`
	Documents        bool `json:"documents"`
	PackingList      bool `json:"packingList"`
	CrateCertificate bool `json:"crateCertificate"`
	WalkThrough      bool `json:"walkThrough"`
}

// Allocation is the typed partial allocation payload. Nil fields mean
// "leave unchanged"; a non-nil empty value clears the field.
type Allocation struct {
	TeamLeader *string
	Vehicle    *string
	WriterCrew *[]string
}

// IsZero reports whether the payload carries no changes at all.
func (a Allocation) IsZero() bool {
	return a.TeamLeader == nil && a.Vehicle == nil && a.WriterCrew == nil
}

// CreateJobRequest contains parameters for creating a job.
type CreateJobRequest struct {
	JobNo           string // Optional; generated when empty, must be unique when set
	Title           string
	ShipperName     string
	Location        string
	ShipmentDetails string
	Description     string
	Priority        string // LOW, MEDIUM, HIGH; defaults to LOW
	AgentName       string
	LoadingType     string
	MainCategory    string
	SubCategory     string
	Shuttle         bool
	LongCarry       bool
	SpecialRequests SpecialRequests
	VolumeCBM       float64
	JobTime         string // Hour slot, e.g. "08:00"
	JobDate         string // ISO date; defaults to today when empty
	AssignedTo      string
	WarehouseActivity bool
	ImportClearance   bool

	RequesterID   string
	RequesterRole string // ADMIN or USER
}

// CreateJobResponse contains the result of creating a job.
type CreateJobResponse struct {
	JobNo string
	Job   *Job
}

// UpdateAllocationRequest contains parameters for an allocation merge.
type UpdateAllocationRequest struct {
	JobNo      string
	Allocation Allocation
}

// ToggleLockRequest contains parameters for a lock toggle.
type ToggleLockRequest struct {
	JobNo     string
	ActorRole string
}

// DeleteJobRequest contains parameters for a delete request.
type DeleteJobRequest struct {
	JobNo     string
	ActorRole string
}

// DecideApprovalRequest contains parameters for an approval decision.
// Allocation is merged only when approving a PENDING_ADD job; leaving it
// zero skips allocation and still transitions the job.
type DecideApprovalRequest struct {
	JobNo      string
	Approved   bool
	Allocation Allocation
	ActorRole  string
}

// Job represents a relocation job at the port boundary.
type Job struct {
	JobNo           string
	Title           string
	ShipperName     string
	Location        string
	ShipmentDetails string
	Description     string
	Priority        string
	AgentName       string
	LoadingType     string
	MainCategory    string
	SubCategory     string
	Shuttle         bool
	LongCarry       bool
	SpecialRequests SpecialRequests
	VolumeCBM       float64
	JobTime         string
	JobDate         string
	Status          string
	Locked          bool
	AssignedTo      string
	WarehouseActivity bool
	ImportClearance   bool

	TeamLeader string
	Vehicle    string
	WriterCrew []string

	RequesterID string
	CreatedAt   string
}

// JobFilters contains filter options for listing jobs.
type JobFilters struct {
	Date          string
	Status        string
	ExcludeStatus string // used pervasively to hide REJECTED jobs
	RequesterID   string
	WarehouseOnly bool
	ImportOnly    bool
}
