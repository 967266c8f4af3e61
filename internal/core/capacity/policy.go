// Package capacity contains the pure business logic for daily scheduling
// ceilings and holiday blackouts. This is part of the Functional Core -
// no I/O, only pure functions.
package capacity

import "fmt"

// Defaults carries the two policy defaults observed in the scheduling rules.
// FallbackLimit applies at query time when a date has no stored ceiling.
// RestoreLimit is written back as the stored ceiling when a holiday is
// unmarked. They are deliberately distinct knobs; see DESIGN.md.
type Defaults struct {
	FallbackLimit int
	RestoreLimit  int
}

// StandardDefaults returns the observed policy defaults.
func StandardDefaults() Defaults {
	return Defaults{FallbackLimit: 5, RestoreLimit: 10}
}

// PolicyContext is the input to capacity guard evaluation for one date.
type PolicyContext struct {
	IsHoliday   bool
	StoredLimit int  // meaningful only when HasStored is true
	HasStored   bool // whether a per-date ceiling is stored for the date
}

// EffectiveLimit computes the enforced daily ceiling for a date.
// Holiday wins over everything; a stored per-date ceiling wins over the
// fallback default.
func EffectiveLimit(ctx PolicyContext, d Defaults) int {
	if ctx.IsHoliday {
		return 0
	}
	if ctx.HasStored {
		return ctx.StoredLimit
	}
	return d.FallbackLimit
}

// ScheduleResult is the outcome of a capacity guard evaluation.
type ScheduleResult struct {
	Allowed        bool
	EffectiveLimit int
	Reason         string // Human-readable reason (populated when not allowed)
}

// CanSchedule evaluates whether one more job fits on the date given the
// current count of non-rejected jobs already scheduled there.
func CanSchedule(date string, currentCount int, ctx PolicyContext, d Defaults) ScheduleResult {
	limit := EffectiveLimit(ctx, d)
	if ctx.IsHoliday {
		return ScheduleResult{
			Allowed:        false,
			EffectiveLimit: 0,
			Reason:         fmt.Sprintf("cannot schedule jobs on %s: public holiday", date),
		}
	}
	if currentCount >= limit {
		return ScheduleResult{
			Allowed:        false,
			EffectiveLimit: limit,
			Reason:         fmt.Sprintf("daily limit of %d reached for %s", limit, date),
		}
	}
	return ScheduleResult{Allowed: true, EffectiveLimit: limit}
}

// ValidateLimit checks a caller-supplied daily ceiling. The engine enforces
// only non-negativity; any upper bound is presentation guidance.
func ValidateLimit(n int) error {
	if n < 0 {
		return fmt.Errorf("daily limit must be non-negative, got %d", n)
	}
	return nil
}

// HolidayToggleResult describes the authoritative side effect a holiday
// toggle has on the stored per-date ceiling.
type HolidayToggleResult struct {
	NowHoliday  bool
	StoredLimit int // value to write as the stored ceiling for the date
}

// ApplyHolidayToggle flips holiday membership for a date and computes the
// stored-ceiling side effect: marking forces the stored limit to 0,
// unmarking resets it to the restore default. The stored value matters
// because a later unmark re-reads it.
func ApplyHolidayToggle(wasHoliday bool, d Defaults) HolidayToggleResult {
	if wasHoliday {
		return HolidayToggleResult{NowHoliday: false, StoredLimit: d.RestoreLimit}
	}
	return HolidayToggleResult{NowHoliday: true, StoredLimit: 0}
}
