// Package resource contains the pure business logic for the personnel and
// fleet registries. This is part of the Functional Core - no I/O, only
// pure functions.
package resource

import "fmt"

// Personnel types.
const (
	TypeTeamLeader = "Team Leader"
	TypeWriterCrew = "Writer Crew"
)

// Personnel statuses.
const (
	PersonnelAvailable     = "Available"
	PersonnelAnnualLeave   = "Annual Leave"
	PersonnelSickLeave     = "Sick Leave"
	PersonnelPersonalLeave = "Personal Leave"
)

// Vehicle statuses.
const (
	VehicleAvailable    = "Available"
	VehicleOutOfService = "Out of Service"
	VehicleMaintenance  = "Maintenance"
)

// ValidPersonnelType reports whether t is a known personnel type.
func ValidPersonnelType(t string) bool {
	return t == TypeTeamLeader || t == TypeWriterCrew
}

// ValidPersonnelStatus reports whether s is a known personnel status.
func ValidPersonnelStatus(s string) bool {
	switch s {
	case PersonnelAvailable, PersonnelAnnualLeave, PersonnelSickLeave, PersonnelPersonalLeave:
		return true
	}
	return false
}

// ValidVehicleStatus reports whether s is a known vehicle status.
func ValidVehicleStatus(s string) bool {
	switch s {
	case VehicleAvailable, VehicleOutOfService, VehicleMaintenance:
		return true
	}
	return false
}

// PersonnelRegistration is the input to personnel registration validation.
type PersonnelRegistration struct {
	Name       string
	Type       string
	EmployeeID string
	EmiratesID string
}

// ValidatePersonnel checks the mandatory fields for registering personnel.
// Presence-only: uniqueness of EmployeeID/EmiratesID is enforced by the
// store's constraints, not here.
func ValidatePersonnel(reg PersonnelRegistration) error {
	if reg.Name == "" || reg.EmiratesID == "" || reg.EmployeeID == "" {
		return fmt.Errorf("name, Emirates ID, and employee ID are mandatory")
	}
	if !ValidPersonnelType(reg.Type) {
		return fmt.Errorf("personnel type must be %q or %q, got %q", TypeTeamLeader, TypeWriterCrew, reg.Type)
	}
	return nil
}

// VehicleRegistration is the input to vehicle registration validation.
type VehicleRegistration struct {
	Name  string
	Plate string
}

// ValidateVehicle checks the mandatory fields for registering a vehicle.
func ValidateVehicle(reg VehicleRegistration) error {
	if reg.Name == "" || reg.Plate == "" {
		return fmt.Errorf("vehicle name and plate number are mandatory")
	}
	return nil
}
