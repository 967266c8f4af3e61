package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/dispatch/internal/core/capacity"
	"github.com/example/dispatch/internal/core/job"
	"github.com/example/dispatch/internal/ports/primary"
	"github.com/example/dispatch/internal/ports/secondary"
)

// CapacityServiceImpl implements the CapacityService interface.
type CapacityServiceImpl struct {
	settingsRepo secondary.SettingsRepository
	jobRepo      secondary.JobRepository
	defaults     capacity.Defaults
}

// NewCapacityService creates a new CapacityService with injected dependencies.
func NewCapacityService(
	settingsRepo secondary.SettingsRepository,
	jobRepo secondary.JobRepository,
	defaults capacity.Defaults,
) *CapacityServiceImpl {
	return &CapacityServiceImpl{
		settingsRepo: settingsRepo,
		jobRepo:      jobRepo,
		defaults:     defaults,
	}
}

// CanSchedule answers whether one more job fits on the date.
func (s *CapacityServiceImpl) CanSchedule(ctx context.Context, date string) (*primary.ScheduleCheck, error) {
	day, err := s.loadDay(ctx, date)
	if err != nil {
		return nil, err
	}

	result := capacity.CanSchedule(date, day.BookedCount, capacity.PolicyContext{
		IsHoliday:   day.Holiday,
		StoredLimit: day.StoredLimit,
		HasStored:   day.HasStored,
	}, s.defaults)

	return &primary.ScheduleCheck{
		Date:           date,
		Allowed:        result.Allowed,
		EffectiveLimit: result.EffectiveLimit,
		CurrentCount:   day.BookedCount,
		Holiday:        day.Holiday,
	}, nil
}

// SetDailyLimit stores an explicit per-date ceiling. Admin only. The engine
// enforces only non-negativity; upper bounds are presentation guidance.
func (s *CapacityServiceImpl) SetDailyLimit(ctx context.Context, req primary.SetDailyLimitRequest) error {
	if !job.IsElevated(job.Role(req.ActorRole)) {
		return &primary.ForbiddenError{Reason: "only an admin can change daily limits"}
	}
	if err := capacity.ValidateLimit(req.Limit); err != nil {
		return &primary.ValidationError{Reason: err.Error()}
	}
	if err := s.settingsRepo.SetDailyLimit(ctx, req.Date, req.Limit); err != nil {
		return fmt.Errorf("failed to store daily limit: %w", err)
	}
	return nil
}

// ToggleHoliday flips holiday membership for a date. The stored ceiling is
// forced to 0 on marking and reset to the restore default on unmarking;
// the stored value is authoritative because a later unmark re-reads it.
func (s *CapacityServiceImpl) ToggleHoliday(ctx context.Context, req primary.ToggleHolidayRequest) (*primary.DayCapacity, error) {
	if !job.IsElevated(job.Role(req.ActorRole)) {
		return nil, &primary.ForbiddenError{Reason: "only an admin can manage holidays"}
	}

	wasHoliday, err := s.settingsRepo.IsHoliday(ctx, req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to check holiday: %w", err)
	}

	toggle := capacity.ApplyHolidayToggle(wasHoliday, s.defaults)
	if err := s.settingsRepo.SetHoliday(ctx, req.Date, toggle.NowHoliday); err != nil {
		return nil, fmt.Errorf("failed to update holiday: %w", err)
	}
	if err := s.settingsRepo.SetDailyLimit(ctx, req.Date, toggle.StoredLimit); err != nil {
		return nil, fmt.Errorf("failed to update stored limit: %w", err)
	}

	return s.GetDay(ctx, req.Date)
}

// GetDay reports the capacity state of one date.
func (s *CapacityServiceImpl) GetDay(ctx context.Context, date string) (*primary.DayCapacity, error) {
	return s.loadDay(ctx, date)
}

// ListDays reports capacity state for a run of dates starting at from.
func (s *CapacityServiceImpl) ListDays(ctx context.Context, from string, days int) ([]*primary.DayCapacity, error) {
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, &primary.ValidationError{Reason: fmt.Sprintf("invalid date %q, want YYYY-MM-DD", from)}
	}

	result := make([]*primary.DayCapacity, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		day, err := s.loadDay(ctx, date)
		if err != nil {
			return nil, err
		}
		result = append(result, day)
	}
	return result, nil
}

func (s *CapacityServiceImpl) loadDay(ctx context.Context, date string) (*primary.DayCapacity, error) {
	holiday, err := s.settingsRepo.IsHoliday(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to check holiday: %w", err)
	}
	stored, hasStored, err := s.settingsRepo.GetDailyLimit(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to read daily limit: %w", err)
	}
	booked, err := s.jobRepo.CountOnDate(ctx, date, string(job.StatusRejected))
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	return &primary.DayCapacity{
		Date:        date,
		StoredLimit: stored,
		HasStored:   hasStored,
		Holiday:     holiday,
		EffectiveLimit: capacity.EffectiveLimit(capacity.PolicyContext{
			IsHoliday:   holiday,
			StoredLimit: stored,
			HasStored:   hasStored,
		}, s.defaults),
		BookedCount: booked,
	}, nil
}
