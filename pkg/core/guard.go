// core/guard.go
package core

import (
	"github.com/colinhacks/trpc-1/pkg/manifest"
	"github.com/colinhacks/trpc-1/pkg/middleware/auth"
	"github.com/colinhacks/trpc-1/pkg/procedure"
	"github.com/colinhacks/trpc-1/pkg/rpcerr"
)

// guards maps a manifest guard to procedure middlewares. With no auth
// middleware wired, any guarded route rejects outright.
func guards(g manifest.Guard, a *auth.Middleware) []procedure.Middleware {
	if a == nil {
		if g.RequireAuth || len(g.Users) > 0 || len(g.Roles) > 0 {
			return []procedure.Middleware{denyAll()}
		}
		return nil
	}

	var mws []procedure.Middleware
	if g.RequireAuth && len(g.Users) == 0 && len(g.Roles) == 0 {
		mws = append(mws, a.Require())
	}
	if len(g.Users) > 0 {
		mws = append(mws, a.RequireUser(g.Users...))
	}
	if len(g.Roles) > 0 {
		mws = append(mws, a.RequireRole(g.Roles...))
	}
	return mws
}

func denyAll() procedure.Middleware {
	return func(p procedure.Params) procedure.Result {
		return procedure.Fail(rpcerr.New(rpcerr.CodeUnauthorized, "authentication not configured"))
	}
}
