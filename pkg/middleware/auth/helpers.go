package auth

import "context"

// GetUser returns the authenticated user stashed in ctx, or the zero
// User for anonymous calls.
func (m *Middleware) GetUser(ctx context.Context) User {
	u, _ := ctx.Value(userCtxKey).(User)
	return u
}

// IsAuthenticated reports whether ctx carries a named user.
func (m *Middleware) IsAuthenticated(ctx context.Context) bool {
	return m.GetUser(ctx).Username != ""
}

// IsAdmin reports whether the user holds the configured admin role.
func (m *Middleware) IsAdmin(ctx context.Context) bool {
	return m.adminRole != "" && m.GetUser(ctx).Role.Name == m.adminRole
}

// IsRole reports whether the user holds role. Admin passes any role
// check.
func (m *Middleware) IsRole(ctx context.Context, role Role) bool {
	u := m.GetUser(ctx)
	if u.Username == "" {
		return false
	}
	return u.Role.Name == role.Name || m.IsAdmin(ctx)
}

// IsUser reports whether the user is username. Admin passes any user
// check.
func (m *Middleware) IsUser(ctx context.Context, username string) bool {
	u := m.GetUser(ctx)
	if u.Username == "" {
		return false
	}
	return u.Username == username || m.IsAdmin(ctx)
}
