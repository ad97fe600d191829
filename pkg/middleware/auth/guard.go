package auth

import (
	"github.com/colinhacks/trpc-1/pkg/procedure"
	"github.com/colinhacks/trpc-1/pkg/rpcerr"
)

// Require is a procedure middleware that rejects unauthenticated calls.
func (m *Middleware) Require() procedure.Middleware {
	return func(p procedure.Params) procedure.Result {
		if !m.IsAuthenticated(p.Ctx) {
			return procedure.Fail(rpcerr.New(rpcerr.CodeUnauthorized, "authentication required"))
		}
		return p.Next()
	}
}

// RequireRole admits calls whose user holds one of the roles. The admin
// role always passes.
func (m *Middleware) RequireRole(roles ...string) procedure.Middleware {
	return func(p procedure.Params) procedure.Result {
		u := m.GetUser(p.Ctx)
		if u.Username == "" {
			return procedure.Fail(rpcerr.New(rpcerr.CodeUnauthorized, "authentication required"))
		}
		if m.IsAdmin(p.Ctx) {
			return p.Next()
		}
		for _, r := range roles {
			if u.Role.Name == r {
				return p.Next()
			}
		}
		return procedure.Fail(rpcerr.New(rpcerr.CodeForbidden, "role not permitted"))
	}
}

// RequireUser admits calls from the named users (or the admin role).
func (m *Middleware) RequireUser(users ...string) procedure.Middleware {
	return func(p procedure.Params) procedure.Result {
		u := m.GetUser(p.Ctx)
		if u.Username == "" {
			return procedure.Fail(rpcerr.New(rpcerr.CodeUnauthorized, "authentication required"))
		}
		if m.IsAdmin(p.Ctx) {
			return p.Next()
		}
		for _, x := range users {
			if u.Username == x {
				return p.Next()
			}
		}
		return procedure.Fail(rpcerr.New(rpcerr.CodeForbidden, "user not permitted"))
	}
}
