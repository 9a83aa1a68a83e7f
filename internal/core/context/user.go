// Package context provides request-scoped values extraction.
package context

import (
	"context"
)

// Well-known roles.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleSupplier = "supplier"
)

// UserContext contains authenticated principal information.
// Back-office users carry UserID and a role; supplier portal sessions
// additionally carry the SupplierID they are restricted to.
type UserContext struct {
	UserID     string
	Email      string
	Role       string
	SupplierID string
}

type userContextKey struct{}

// WithUser adds UserContext to context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns UserContext from context.
func GetUser(ctx context.Context) *UserContext {
	if v, ok := ctx.Value(userContextKey{}).(*UserContext); ok {
		return v
	}
	return nil
}

// GetUserID returns user ID from context or empty string.
func GetUserID(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.UserID
	}
	return ""
}

// GetSupplierID returns the supplier the session is scoped to, or empty.
func GetSupplierID(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.SupplierID
	}
	return ""
}

// HasRole checks if the authenticated principal has the given role.
func HasRole(ctx context.Context, role string) bool {
	u := GetUser(ctx)
	return u != nil && u.Role == role
}
