// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// drives external systems.
package secondary

import "context"

// JobRepository defines the secondary port for job persistence.
// The store enforces only identity uniqueness of the job number; every
// lifecycle rule lives in the application services.
type JobRepository interface {
	// Create persists a new job.
	Create(ctx context.Context, job *JobRecord) error

	// GetByNo retrieves a job by its job number.
	GetByNo(ctx context.Context, jobNo string) (*JobRecord, error)

	// Exists reports whether a job number is already taken.
	Exists(ctx context.Context, jobNo string) (bool, error)

	// List retrieves jobs matching the given filters.
	List(ctx context.Context, filters JobRecordFilters) ([]*JobRecord, error)

	// CountOnDate counts jobs on a date, excluding the given status
	// (pass the rejected status to count capacity occupancy).
	CountOnDate(ctx context.Context, date, excludeStatus string) (int, error)

	// UpdateStatus updates a job's lifecycle status.
	UpdateStatus(ctx context.Context, jobNo, status string) error

	// UpdateAllocation writes allocation fields onto a job. Nil slices and
	// pointers follow the record's merge semantics at the service layer;
	// the repository writes exactly what it is given.
	UpdateAllocation(ctx context.Context, jobNo, teamLeader, vehicle string, writerCrew []string) error

	// SetLocked writes the lock flag.
	SetLocked(ctx context.Context, jobNo string, locked bool) error

	// Delete removes a job from persistence.
	Delete(ctx context.Context, jobNo string) error

	// MaxJobNumber returns the highest numeric job-number suffix in the
	// store, or 0 when no generated-format numbers exist.
	MaxJobNumber(ctx context.Context) (int, error)
}

// JobRecord represents a job as stored in persistence.
type JobRecord struct {
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
	SpecialRequests string // JSON-encoded service flags
	VolumeCBM       float64
	JobTime         string
	JobDate         string
	Status          string
	Locked          bool
	AssignedTo      string
	WarehouseActivity bool
	ImportClearance   bool
	TeamLeader      string
	Vehicle         string
	WriterCrew      []string
	RequesterID     string
	CreatedAt       string
}

// JobRecordFilters contains filter options for querying jobs.
type JobRecordFilters struct {
	Date          string
	Status        string
	ExcludeStatus string
	RequesterID   string
	WarehouseOnly bool
	ImportOnly    bool
}

// SettingsRepository defines the secondary port for capacity-policy state:
// per-date ceilings and the holiday set.
type SettingsRepository interface {
	// GetDailyLimit returns the stored ceiling for a date and whether one
	// is stored at all.
	GetDailyLimit(ctx context.Context, date string) (int, bool, error)

	// SetDailyLimit stores (or overwrites) the ceiling for a date.
	SetDailyLimit(ctx context.Context, date string, limit int) error

	// ListDailyLimits returns all stored per-date ceilings.
	ListDailyLimits(ctx context.Context) (map[string]int, error)

	// IsHoliday reports holiday membership for a date.
	IsHoliday(ctx context.Context, date string) (bool, error)

	// SetHoliday adds or removes a date from the holiday set.
	SetHoliday(ctx context.Context, date string, holiday bool) error
}

// PersonnelRepository defines the secondary port for personnel persistence.
type PersonnelRepository interface {
	// Create persists a new crew member.
	Create(ctx context.Context, p *PersonnelRecord) error

	// GetByID retrieves a crew member by ID.
	GetByID(ctx context.Context, id string) (*PersonnelRecord, error)

	// List retrieves crew members matching the given filters.
	List(ctx context.Context, filters PersonnelRecordFilters) ([]*PersonnelRecord, error)

	// UpdateStatus updates a crew member's availability status.
	UpdateStatus(ctx context.Context, id, status string) error

	// Delete removes a crew member from persistence.
	Delete(ctx context.Context, id string) error

	// NextID returns the next available personnel ID.
	NextID(ctx context.Context) (string, error)
}

// PersonnelRecord represents a crew member as stored in persistence.
type PersonnelRecord struct {
	ID         string
	EmployeeID string
	Name       string
	Type       string
	Status     string
	EmiratesID string
	CreatedAt  string
}

// PersonnelRecordFilters contains filter options for querying personnel.
type PersonnelRecordFilters struct {
	Type   string
	Status string
}

// VehicleRepository defines the secondary port for vehicle persistence.
type VehicleRepository interface {
	// Create persists a new vehicle.
	Create(ctx context.Context, v *VehicleRecord) error

	// GetByID retrieves a vehicle by ID.
	GetByID(ctx context.Context, id string) (*VehicleRecord, error)

	// List retrieves vehicles matching the given filters.
	List(ctx context.Context, filters VehicleRecordFilters) ([]*VehicleRecord, error)

	// UpdateStatus updates a vehicle's availability status.
	UpdateStatus(ctx context.Context, id, status string) error

	// Delete removes a vehicle from persistence.
	Delete(ctx context.Context, id string) error

	// NextID returns the next available vehicle ID.
	NextID(ctx context.Context) (string, error)
}

// VehicleRecord represents a vehicle as stored in persistence.
type VehicleRecord struct {
	ID        string
	Name      string
	Plate     string
	Status    string
	CreatedAt string
}

// VehicleRecordFilters contains filter options for querying vehicles.
type VehicleRecordFilters struct {
	Status string
}
