package app

import (
	"context"
	"fmt"

	"github.com/example/dispatch/internal/core/job"
	"github.com/example/dispatch/internal/core/resource"
	"github.com/example/dispatch/internal/ports/primary"
	"github.com/example/dispatch/internal/ports/secondary"
)

// ResourceServiceImpl implements the ResourceService interface.
//
// Allocation fields on jobs reference resources by name and are treated as
// denormalized snapshots: removing a resource never touches jobs that still
// name it. See DESIGN.md.
type ResourceServiceImpl struct {
	personnelRepo secondary.PersonnelRepository
	vehicleRepo   secondary.VehicleRepository
}

// NewResourceService creates a new ResourceService with injected dependencies.
func NewResourceService(
	personnelRepo secondary.PersonnelRepository,
	vehicleRepo secondary.VehicleRepository,
) *ResourceServiceImpl {
	return &ResourceServiceImpl{
		personnelRepo: personnelRepo,
		vehicleRepo:   vehicleRepo,
	}
}

func requireAdmin(role, action string) error {
	if !job.IsElevated(job.Role(role)) {
		return &primary.ForbiddenError{Reason: fmt.Sprintf("only an admin can %s", action)}
	}
	return nil
}

// AddPersonnel registers a crew member.
func (s *ResourceServiceImpl) AddPersonnel(ctx context.Context, req primary.AddPersonnelRequest) (*primary.Personnel, error) {
	if err := requireAdmin(req.ActorRole, "manage the crew registry"); err != nil {
		return nil, err
	}
	if err := resource.ValidatePersonnel(resource.PersonnelRegistration{
		Name:       req.Name,
		Type:       req.Type,
		EmployeeID: req.EmployeeID,
		EmiratesID: req.EmiratesID,
	}); err != nil {
		return nil, &primary.ValidationError{Reason: err.Error()}
	}

	id, err := s.personnelRepo.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate personnel ID: %w", err)
	}

	record := &secondary.PersonnelRecord{
		ID:         id,
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Type:       req.Type,
		Status:     resource.PersonnelAvailable,
		EmiratesID: req.EmiratesID,
	}
	if err := s.personnelRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to register personnel: %w", err)
	}

	created, err := s.personnelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created personnel: %w", err)
	}
	return recordToPersonnel(created), nil
}

// RemovePersonnel removes a crew member by ID.
func (s *ResourceServiceImpl) RemovePersonnel(ctx context.Context, req primary.RemoveResourceRequest) error {
	if err := requireAdmin(req.ActorRole, "manage the crew registry"); err != nil {
		return err
	}
	if _, err := s.personnelRepo.GetByID(ctx, req.ID); err != nil {
		return &primary.NotFoundError{Kind: "personnel", ID: req.ID}
	}
	if err := s.personnelRepo.Delete(ctx, req.ID); err != nil {
		return fmt.Errorf("failed to remove personnel: %w", err)
	}
	return nil
}

// SetPersonnelStatus updates a crew member's availability.
func (s *ResourceServiceImpl) SetPersonnelStatus(ctx context.Context, req primary.SetResourceStatusRequest) (*primary.Personnel, error) {
	if err := requireAdmin(req.ActorRole, "manage the crew registry"); err != nil {
		return nil, err
	}
	if !resource.ValidPersonnelStatus(req.Status) {
		return nil, &primary.ValidationError{Reason: fmt.Sprintf("unknown personnel status %q", req.Status)}
	}
	if _, err := s.personnelRepo.GetByID(ctx, req.ID); err != nil {
		return nil, &primary.NotFoundError{Kind: "personnel", ID: req.ID}
	}
	if err := s.personnelRepo.UpdateStatus(ctx, req.ID, req.Status); err != nil {
		return nil, fmt.Errorf("failed to update personnel status: %w", err)
	}

	updated, err := s.personnelRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated personnel: %w", err)
	}
	return recordToPersonnel(updated), nil
}

// ListPersonnel lists crew members with optional filters.
func (s *ResourceServiceImpl) ListPersonnel(ctx context.Context, filters primary.PersonnelFilters) ([]*primary.Personnel, error) {
	records, err := s.personnelRepo.List(ctx, secondary.PersonnelRecordFilters{
		Type:   filters.Type,
		Status: filters.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list personnel: %w", err)
	}

	result := make([]*primary.Personnel, len(records))
	for i, r := range records {
		result[i] = recordToPersonnel(r)
	}
	return result, nil
}

// AddVehicle registers a vehicle.
func (s *ResourceServiceImpl) AddVehicle(ctx context.Context, req primary.AddVehicleRequest) (*primary.Vehicle, error) {
	if err := requireAdmin(req.ActorRole, "manage the fleet registry"); err != nil {
		return nil, err
	}
	if err := resource.ValidateVehicle(resource.VehicleRegistration{
		Name:  req.Name,
		Plate: req.Plate,
	}); err != nil {
		return nil, &primary.ValidationError{Reason: err.Error()}
	}

	id, err := s.vehicleRepo.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate vehicle ID: %w", err)
	}

	record := &secondary.VehicleRecord{
		ID:     id,
		Name:   req.Name,
		Plate:  req.Plate,
		Status: resource.VehicleAvailable,
	}
	if err := s.vehicleRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to register vehicle: %w", err)
	}

	created, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created vehicle: %w", err)
	}
	return recordToVehicle(created), nil
}

// RemoveVehicle removes a vehicle by ID.
func (s *ResourceServiceImpl) RemoveVehicle(ctx context.Context, req primary.RemoveResourceRequest) error {
	if err := requireAdmin(req.ActorRole, "manage the fleet registry"); err != nil {
		return err
	}
	if _, err := s.vehicleRepo.GetByID(ctx, req.ID); err != nil {
		return &primary.NotFoundError{Kind: "vehicle", ID: req.ID}
	}
	if err := s.vehicleRepo.Delete(ctx, req.ID); err != nil {
		return fmt.Errorf("failed to remove vehicle: %w", err)
	}
	return nil
}

// SetVehicleStatus updates a vehicle's availability.
func (s *ResourceServiceImpl) SetVehicleStatus(ctx context.Context, req primary.SetResourceStatusRequest) (*primary.Vehicle, error) {
	if err := requireAdmin(req.ActorRole, "manage the fleet registry"); err != nil {
		return nil, err
	}
	if !resource.ValidVehicleStatus(req.Status) {
		return nil, &primary.ValidationError{Reason: fmt.Sprintf("unknown vehicle status %q", req.Status)}
	}
	if _, err := s.vehicleRepo.GetByID(ctx, req.ID); err != nil {
		return nil, &primary.NotFoundError{Kind: "vehicle", ID: req.ID}
	}
	if err := s.vehicleRepo.UpdateStatus(ctx, req.ID, req.Status); err != nil {
		return nil, fmt.Errorf("failed to update vehicle status: %w", err)
	}

	updated, err := s.vehicleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated vehicle: %w", err)
	}
	return recordToVehicle(updated), nil
}

// ListVehicles lists vehicles with optional filters.
func (s *ResourceServiceImpl) ListVehicles(ctx context.Context, filters primary.VehicleFilters) ([]*primary.Vehicle, error) {
	records, err := s.vehicleRepo.List(ctx, secondary.VehicleRecordFilters{
		Status: filters.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	result := make([]*primary.Vehicle, len(records))
	for i, r := range records {
		result[i] = recordToVehicle(r)
	}
	return result, nil
}

func recordToPersonnel(r *secondary.PersonnelRecord) *primary.Personnel {
	return &primary.Personnel{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Name:       r.Name,
		Type:       r.Type,
		Status:     r.Status,
		EmiratesID: r.EmiratesID,
	}
}

func recordToVehicle(r *secondary.VehicleRecord) *primary.Vehicle {
	return &primary.Vehicle{
		ID:     r.ID,
		Name:   r.Name,
		Plate:  r.Plate,
		Status: r.Status,
	}
}
