package app

import (
	"context"
	"fmt"

	"github.com/example/dispatch/internal/core/job"
	"github.com/example/dispatch/internal/ports/secondary"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.JobRepository       = (*mockJobRepository)(nil)
	_ secondary.SettingsRepository  = (*mockSettingsRepository)(nil)
	_ secondary.PersonnelRepository = (*mockPersonnelRepository)(nil)
	_ secondary.VehicleRepository   = (*mockVehicleRepository)(nil)
)

// mockJobRepository implements secondary.JobRepository for testing.
type mockJobRepository struct {
	jobs map[string]*secondary.JobRecord

	createErr error
	getErr    error
	deleteErr error
	updateErr error
}

func newMockJobRepository() *mockJobRepository {
	return &mockJobRepository{jobs: make(map[string]*secondary.JobRecord)}
}

func (m *mockJobRepository) Create(ctx context.Context, rec *secondary.JobRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.jobs[rec.JobNo]; ok {
		return fmt.Errorf("job %s already exists", rec.JobNo)
	}
	clone := *rec
	m.jobs[rec.JobNo] = &clone
	return nil
}

func (m *mockJobRepository) GetByNo(ctx context.Context, jobNo string) (*secondary.JobRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	rec, ok := m.jobs[jobNo]
	if !ok {
		return nil, fmt.Errorf("job %s not found", jobNo)
	}
	clone := *rec
	return &clone, nil
}

func (m *mockJobRepository) Exists(ctx context.Context, jobNo string) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	_, ok := m.jobs[jobNo]
	return ok, nil
}

func (m *mockJobRepository) List(ctx context.Context, filters secondary.JobRecordFilters) ([]*secondary.JobRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var records []*secondary.JobRecord
	for _, rec := range m.jobs {
		if filters.Date != "" && rec.JobDate != filters.Date {
			continue
		}
		if filters.Status != "" && rec.Status != filters.Status {
			continue
		}
		if filters.ExcludeStatus != "" && rec.Status == filters.ExcludeStatus {
			continue
		}
		if filters.RequesterID != "" && rec.RequesterID != filters.RequesterID {
			continue
		}
		if filters.WarehouseOnly && !rec.WarehouseActivity {
			continue
		}
		if filters.ImportOnly && !rec.ImportClearance {
			continue
		}
		clone := *rec
		records = append(records, &clone)
	}
	return records, nil
}

func (m *mockJobRepository) CountOnDate(ctx context.Context, date, excludeStatus string) (int, error) {
	if m.getErr != nil {
		return 0, m.getErr
	}
	count := 0
	for _, rec := range m.jobs {
		if rec.JobDate == date && (excludeStatus == "" || rec.Status != excludeStatus) {
			count++
		}
	}
	return count, nil
}

func (m *mockJobRepository) UpdateStatus(ctx context.Context, jobNo, status string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	rec, ok := m.jobs[jobNo]
	if !ok {
		return fmt.Errorf("job %s not found", jobNo)
	}
	rec.Status = status
	return nil
}

func (m *mockJobRepository) UpdateAllocation(ctx context.Context, jobNo, teamLeader, vehicle string, writerCrew []string) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	rec, ok := m.jobs[jobNo]
	if !ok {
		return fmt.Errorf("job %s not found", jobNo)
	}
	rec.TeamLeader = teamLeader
	rec.Vehicle = vehicle
	rec.WriterCrew = writerCrew
	return nil
}

func (m *mockJobRepository) SetLocked(ctx context.Context, jobNo string, locked bool) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	rec, ok := m.jobs[jobNo]
	if !ok {
		return fmt.Errorf("job %s not found", jobNo)
	}
	rec.Locked = locked
	return nil
}

func (m *mockJobRepository) Delete(ctx context.Context, jobNo string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.jobs, jobNo)
	return nil
}

func (m *mockJobRepository) MaxJobNumber(ctx context.Context) (int, error) {
	if m.getErr != nil {
		return 0, m.getErr
	}
	max := 0
	for no := range m.jobs {
		if n := job.ParseJobNumber(no); n > max {
			max = n
		}
	}
	return max, nil
}

// mockSettingsRepository implements secondary.SettingsRepository for testing.
type mockSettingsRepository struct {
	limits   map[string]int
	holidays map[string]bool

	getErr error
	setErr error
}

func newMockSettingsRepository() *mockSettingsRepository {
	return &mockSettingsRepository{
		limits:   make(map[string]int),
		holidays: make(map[string]bool),
	}
}

func (m *mockSettingsRepository) GetDailyLimit(ctx context.Context, date string) (int, bool, error) {
	if m.getErr != nil {
		return 0, false, m.getErr
	}
	limit, ok := m.limits[date]
	return limit, ok, nil
}

func (m *mockSettingsRepository) SetDailyLimit(ctx context.Context, date string, limit int) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.limits[date] = limit
	return nil
}

func (m *mockSettingsRepository) ListDailyLimits(ctx context.Context) (map[string]int, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	limits := make(map[string]int, len(m.limits))
	for k, v := range m.limits {
		limits[k] = v
	}
	return limits, nil
}

func (m *mockSettingsRepository) IsHoliday(ctx context.Context, date string) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	return m.holidays[date], nil
}

func (m *mockSettingsRepository) SetHoliday(ctx context.Context, date string, holiday bool) error {
	if m.setErr != nil {
		return m.setErr
	}
	if holiday {
		m.holidays[date] = true
	} else {
		delete(m.holidays, date)
	}
	return nil
}

// mockPersonnelRepository implements secondary.PersonnelRepository for testing.
type mockPersonnelRepository struct {
	personnel map[string]*secondary.PersonnelRecord
	nextID    int

	createErr error
}

func newMockPersonnelRepository() *mockPersonnelRepository {
	return &mockPersonnelRepository{personnel: make(map[string]*secondary.PersonnelRecord)}
}

func (m *mockPersonnelRepository) Create(ctx context.Context, p *secondary.PersonnelRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.personnel {
		if existing.EmployeeID == p.EmployeeID || existing.EmiratesID == p.EmiratesID {
			return fmt.Errorf("UNIQUE constraint failed")
		}
	}
	clone := *p
	m.personnel[p.ID] = &clone
	return nil
}

func (m *mockPersonnelRepository) GetByID(ctx context.Context, id string) (*secondary.PersonnelRecord, error) {
	rec, ok := m.personnel[id]
	if !ok {
		return nil, fmt.Errorf("personnel %s not found", id)
	}
	clone := *rec
	return &clone, nil
}

func (m *mockPersonnelRepository) List(ctx context.Context, filters secondary.PersonnelRecordFilters) ([]*secondary.PersonnelRecord, error) {
	var records []*secondary.PersonnelRecord
	for _, rec := range m.personnel {
		if filters.Type != "" && rec.Type != filters.Type {
			continue
		}
		if filters.Status != "" && rec.Status != filters.Status {
			continue
		}
		clone := *rec
		records = append(records, &clone)
	}
	return records, nil
}

func (m *mockPersonnelRepository) UpdateStatus(ctx context.Context, id, status string) error {
	rec, ok := m.personnel[id]
	if !ok {
		return fmt.Errorf("personnel %s not found", id)
	}
	rec.Status = status
	return nil
}

func (m *mockPersonnelRepository) Delete(ctx context.Context, id string) error {
	delete(m.personnel, id)
	return nil
}

func (m *mockPersonnelRepository) NextID(ctx context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("PER-%03d", m.nextID), nil
}

// mockVehicleRepository implements secondary.VehicleRepository for testing.
type mockVehicleRepository struct {
	vehicles map[string]*secondary.VehicleRecord
	nextID   int

	createErr error
}

func newMockVehicleRepository() *mockVehicleRepository {
	return &mockVehicleRepository{vehicles: make(map[string]*secondary.VehicleRecord)}
}

func (m *mockVehicleRepository) Create(ctx context.Context, v *secondary.VehicleRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.vehicles {
		if existing.Plate == v.Plate {
			return fmt.Errorf("UNIQUE constraint failed")
		}
	}
	clone := *v
	m.vehicles[v.ID] = &clone
	return nil
}

func (m *mockVehicleRepository) GetByID(ctx context.Context, id string) (*secondary.VehicleRecord, error) {
	rec, ok := m.vehicles[id]
	if !ok {
		return nil, fmt.Errorf("vehicle %s not found", id)
	}
	clone := *rec
	return &clone, nil
}

func (m *mockVehicleRepository) List(ctx context.Context, filters secondary.VehicleRecordFilters) ([]*secondary.VehicleRecord, error) {
	var records []*secondary.VehicleRecord
	for _, rec := range m.vehicles {
		if filters.Status != "" && rec.Status != filters.Status {
			continue
		}
		clone := *rec
		records = append(records, &clone)
	}
	return records, nil
}

func (m *mockVehicleRepository) UpdateStatus(ctx context.Context, id, status string) error {
	rec, ok := m.vehicles[id]
	if !ok {
		return fmt.Errorf("vehicle %s not found", id)
	}
	rec.Status = status
	return nil
}

func (m *mockVehicleRepository) Delete(ctx context.Context, id string) error {
	delete(m.vehicles, id)
	return nil
}

func (m *mockVehicleRepository) NextID(ctx context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("VEH-%03d", m.nextID), nil
}
