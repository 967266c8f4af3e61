// Package job contains the pure business logic for job lifecycle operations.
// This is part of the Functional Core - no I/O, only pure functions.
package job

// Status represents the possible lifecycle states of a job.
type Status string

const (
	StatusPendingAdd    Status = "PENDING_ADD"
	StatusPendingDelete Status = "PENDING_DELETE"
	StatusActive        Status = "ACTIVE"
	StatusCompleted     Status = "COMPLETED"
	StatusRejected      Status = "REJECTED"
)

// Role represents the role of the actor driving an operation.
type Role string

const (
	// RoleAdmin is the elevated role: exempt from approval gating,
	// not exempt from capacity guards.
	RoleAdmin Role = "ADMIN"
	// RoleUser is the standard requester role.
	RoleUser Role = "USER"
)

// IsElevated reports whether the role carries administrative privileges.
// This is the single authorization predicate for all mutating operations.
func IsElevated(role Role) bool {
	return role == RoleAdmin
}

// InitialStatus returns the status a newly created job enters.
// Admin-created jobs skip the approval queue entirely.
func InitialStatus(role Role) Status {
	if IsElevated(role) {
		return StatusActive
	}
	return StatusPendingAdd
}

// IsPending reports whether a status is awaiting an approval decision.
func IsPending(s Status) bool {
	return s == StatusPendingAdd || s == StatusPendingDelete
}

// IsTerminal reports whether a status accepts no further transitions
// from within the engine.
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusRejected
}

// CountsTowardCapacity reports whether a job in the given status occupies
// a slot against its date's daily ceiling. Rejected jobs are retained in
// the store but never count.
func CountsTowardCapacity(s Status) bool {
	return s != StatusRejected
}

// DecisionEffect describes what an approval decision does to a job.
type DecisionEffect int

const (
	// EffectNone means the decision is invalid for the job's status.
	EffectNone DecisionEffect = iota
	// EffectSetStatus means the job transitions to NewStatus.
	EffectSetStatus
	// EffectRemove means the job is removed from the store.
	EffectRemove
)

// DecisionResult is the outcome of applying an approval decision.
type DecisionResult struct {
	Effect DecisionEffect
	// NewStatus is meaningful only when Effect is EffectSetStatus.
	NewStatus Status
	// MergeAllocation is true when an allocation payload supplied with
	// the decision should be merged into the job.
	MergeAllocation bool
}

// ApplyDecision computes the effect of an admin approval decision on a job
// in the given status. Jobs outside the pending states accept no decision.
func ApplyDecision(current Status, approved bool) DecisionResult {
	switch current {
	case StatusPendingAdd:
		if approved {
			return DecisionResult{Effect: EffectSetStatus, NewStatus: StatusActive, MergeAllocation: true}
		}
		return DecisionResult{Effect: EffectSetStatus, NewStatus: StatusRejected}
	case StatusPendingDelete:
		if approved {
			return DecisionResult{Effect: EffectRemove}
		}
		return DecisionResult{Effect: EffectSetStatus, NewStatus: StatusActive}
	}
	return DecisionResult{Effect: EffectNone}
}
