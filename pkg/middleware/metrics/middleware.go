// middleware/metrics/middleware.go
package metrics

import (
	"time"

	"github.com/colinhacks/trpc-1/pkg/middleware/auth"
	"github.com/colinhacks/trpc-1/pkg/procedure"
	"github.com/colinhacks/trpc-1/pkg/rpcerr"
)

// Collect produces the procedure middleware that records the
// counters/histogram. ca may be nil when no auth is wired.
func Collect(ca *auth.Middleware) procedure.Middleware {
	return func(p procedure.Params) procedure.Result {
		startTime := time.Now()

		res := p.Next()

		code := "OK"
		if err := res.Err(); err != nil {
			code = string(err.Code)
		} else if !res.Succeeded() {
			code = string(rpcerr.CodeInternal)
		}

		role := ""
		if ca != nil {
			role = ca.GetUser(p.Ctx).Role.Name
		}

		// path label from the manifest route; bounded cardinality
		totalCalls.WithLabelValues(code, p.Path, string(p.Type)).Inc()
		totalCallsFromRole.WithLabelValues(role).Inc()
		callDuration.Observe(time.Since(startTime).Seconds())

		return res
	}
}
