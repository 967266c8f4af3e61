// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// ActorKey is the context key for the actor ID.
// Exported so it can be used consistently across packages.
type ActorKey struct{}

// RoleKey is the context key for the actor role.
type RoleKey struct{}

// WithActor returns a context with the actor ID and role embedded.
// The role should be "ADMIN" or "USER" as resolved by the host's
// authentication layer; the engine only reads it.
func WithActor(ctx context.Context, actorID, role string) context.Context {
	ctx = context.WithValue(ctx, ActorKey{}, actorID)
	return context.WithValue(ctx, RoleKey{}, role)
}

// ActorFromContext returns the actor ID from context, or empty string if not set.
func ActorFromContext(ctx context.Context) string {
	if v := ctx.Value(ActorKey{}); v != nil {
		return v.(string)
	}
	return ""
}

// RoleFromContext returns the actor role from context, or empty string if not set.
func RoleFromContext(ctx context.Context) string {
	if v := ctx.Value(RoleKey{}); v != nil {
		return v.(string)
	}
	return ""
}
