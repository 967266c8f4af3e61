package primary

import "context"

// ResourceService defines the primary port for the personnel and fleet
// registries. All mutations are admin only.
type ResourceService interface {
	// AddPersonnel registers a crew member. Name, employee ID, and
	// Emirates ID are mandatory.
	AddPersonnel(ctx context.Context, req AddPersonnelRequest) (*Personnel, error)

	// RemovePersonnel removes a crew member by ID. Job allocations that
	// reference the member by name are left untouched.
	RemovePersonnel(ctx context.Context, req RemoveResourceRequest) error

	// SetPersonnelStatus updates a crew member's availability.
	SetPersonnelStatus(ctx context.Context, req SetResourceStatusRequest) (*Personnel, error)

	// ListPersonnel lists crew members with optional filters.
	ListPersonnel(ctx context.Context, filters PersonnelFilters) ([]*Personnel, error)

	// AddVehicle registers a vehicle. Name and plate are mandatory.
	AddVehicle(ctx context.Context, req AddVehicleRequest) (*Vehicle, error)

	// RemoveVehicle removes a vehicle by ID.
	RemoveVehicle(ctx context.Context, req RemoveResourceRequest) error

	// SetVehicleStatus updates a vehicle's availability.
	SetVehicleStatus(ctx context.Context, req SetResourceStatusRequest) (*Vehicle, error)

	// ListVehicles lists vehicles with optional filters.
	ListVehicles(ctx context.Context, filters VehicleFilters) ([]*Vehicle, error)
}

// AddPersonnelRequest contains parameters for registering personnel.
type AddPersonnelRequest struct {
	Name       string
	Type       string // "Team Leader" or "Writer Crew"
	EmployeeID string
	EmiratesID string
	ActorRole  string
}

// AddVehicleRequest contains parameters for registering a vehicle.
type AddVehicleRequest struct {
	Name      string
	Plate     string
	ActorRole string
}

// RemoveResourceRequest contains parameters for removing a resource.
type RemoveResourceRequest struct {
	ID        string
	ActorRole string
}

// SetResourceStatusRequest contains parameters for a status update.
type SetResourceStatusRequest struct {
	ID        string
	Status    string
	ActorRole string
}

// Personnel represents a crew member at the port boundary.
type Personnel struct {
	ID         string
	EmployeeID string
	Name       string
	Type       string
	Status     string
	EmiratesID string
}

// Vehicle represents a fleet vehicle at the port boundary.
type Vehicle struct {
	ID     string
	Name   string
	Plate  string
	Status string
}

// PersonnelFilters contains filter options for listing personnel.
type PersonnelFilters struct {
	Type   string
	Status string
}

// VehicleFilters contains filter options for listing vehicles.
type VehicleFilters struct {
	Status string
}
