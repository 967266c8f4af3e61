package primary

import "context"

// CapacityService defines the primary port for the daily capacity policy.
type CapacityService interface {
	// CanSchedule answers whether one more job fits on the date, along
	// with the effective ceiling after the holiday override.
	CanSchedule(ctx context.Context, date string) (*ScheduleCheck, error)

	// SetDailyLimit stores an explicit per-date ceiling. Admin only.
	SetDailyLimit(ctx context.Context, req SetDailyLimitRequest) error

	// ToggleHoliday flips holiday membership for a date. Marking forces
	// the stored ceiling to 0; unmarking restores the policy default.
	// Admin only.
	ToggleHoliday(ctx context.Context, req ToggleHolidayRequest) (*DayCapacity, error)

	// GetDay reports the capacity state of one date.
	GetDay(ctx context.Context, date string) (*DayCapacity, error)

	// ListDays reports capacity state for a run of dates starting at from.
	ListDays(ctx context.Context, from string, days int) ([]*DayCapacity, error)
}

// ScheduleCheck is the result of a capacity guard query.
type ScheduleCheck struct {
	Date           string
	Allowed        bool
	EffectiveLimit int
	CurrentCount   int // non-rejected jobs already on the date
	Holiday        bool
}

// SetDailyLimitRequest contains parameters for storing a daily ceiling.
type SetDailyLimitRequest struct {
	Date      string
	Limit     int
	ActorRole string
}

// ToggleHolidayRequest contains parameters for a holiday toggle.
type ToggleHolidayRequest struct {
	Date      string
	ActorRole string
}

// DayCapacity describes one date's capacity policy state.
type DayCapacity struct {
	Date           string
	StoredLimit    int
	HasStored      bool
	Holiday        bool
	EffectiveLimit int
	BookedCount    int
}
