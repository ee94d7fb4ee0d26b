// Package shared carries request-scoped values across layers.
package shared

import (
	"context"

	"github.com/meridian-ops/meridian-ops/internal/browse"
)

type contextKey string

const (
	roleKey contextKey = "meridian.role"
	userKey contextKey = "meridian.user"
)

// ContextWithRole stores the acting role in the context.
func ContextWithRole(ctx context.Context, role browse.Role) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromContext returns the acting role. Absent or unknown roles
// resolve to viewer, the most restricted baseline.
func RoleFromContext(ctx context.Context) browse.Role {
	role, ok := ctx.Value(roleKey).(browse.Role)
	if !ok || !browse.KnownRole(role) {
		return browse.RoleViewer
	}
	return role
}

// ContextWithUser stores the acting user's display identifier.
func ContextWithUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the acting user, or "console" when the
// upstream gateway did not forward one.
func UserFromContext(ctx context.Context) string {
	user, ok := ctx.Value(userKey).(string)
	if !ok || user == "" {
		return "console"
	}
	return user
}
