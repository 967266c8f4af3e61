package primary

import "fmt"

// CapacityError reports a creation blocked by the daily ceiling or a
// holiday blackout for the requested date.
type CapacityError struct {
	Date           string
	EffectiveLimit int
	Holiday        bool
}

func (e *CapacityError) Error() string {
	if e.Holiday {
		return fmt.Sprintf("cannot schedule jobs on %s: public holiday", e.Date)
	}
	return fmt.Sprintf("daily limit of %d reached for %s", e.EffectiveLimit, e.Date)
}

// LockedError reports a delete request refused because the job is locked
// and the actor is not an admin.
type LockedError struct {
	JobNo string
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("job %s is locked and cannot be removed", e.JobNo)
}

// NotFoundError reports an operation referencing an unknown entity.
type NotFoundError struct {
	Kind string // "job", "personnel", "vehicle"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// InvalidTransitionError reports an approval decision attempted on a job
// that is not in a pending state.
type InvalidTransitionError struct {
	JobNo  string
	Status string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("job %s is %s, not awaiting a decision", e.JobNo, e.Status)
}

// ValidationError reports a rejected registration or update payload.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ForbiddenError reports an operation refused by the authorization predicate.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	return e.Reason
}
