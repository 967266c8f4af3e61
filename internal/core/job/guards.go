// Package job contains the pure business logic for job lifecycle operations.
// This is part of the Functional Core - no I/O, only pure functions.
package job

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// DeleteContext provides context for job deletion guards.
type DeleteContext struct {
	JobNo     string
	IsLocked  bool
	ActorRole Role
}

// CanRequestDelete evaluates whether the actor may act on a delete request.
// Rule: a locked job refuses non-elevated delete requests outright; an
// elevated actor deletes unconditionally, lock or not.
func CanRequestDelete(ctx DeleteContext) GuardResult {
	if ctx.IsLocked && !IsElevated(ctx.ActorRole) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("job %s is locked and cannot be removed", ctx.JobNo),
		}
	}
	return GuardResult{Allowed: true}
}

// LockContext provides context for lock toggle guards.
type LockContext struct {
	JobNo     string
	ActorRole Role
}

// CanToggleLock evaluates whether the actor may flip a job's lock flag.
// Rule: only elevated actors manage locks.
func CanToggleLock(ctx LockContext) GuardResult {
	if !IsElevated(ctx.ActorRole) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("only an admin can lock or unlock job %s", ctx.JobNo),
		}
	}
	return GuardResult{Allowed: true}
}

// DecisionContext provides context for approval decision guards.
type DecisionContext struct {
	JobNo     string
	Status    Status
	ActorRole Role
}

// CanDecide evaluates whether the actor may approve or reject the job.
// Rules: only elevated actors decide, and only pending jobs accept a decision.
func CanDecide(ctx DecisionContext) GuardResult {
	if !IsElevated(ctx.ActorRole) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("only an admin can approve or reject job %s", ctx.JobNo),
		}
	}
	if !IsPending(ctx.Status) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("job %s is %s, not awaiting a decision", ctx.JobNo, ctx.Status),
		}
	}
	return GuardResult{Allowed: true}
}
