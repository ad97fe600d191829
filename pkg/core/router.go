// core/router.go
package core

import (
	"context"
	"net/http"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"

	"github.com/colinhacks/trpc-1/pkg/manifest"
	"github.com/colinhacks/trpc-1/pkg/middleware/auth"
	"github.com/colinhacks/trpc-1/pkg/middleware/logger"
	pmetrics "github.com/colinhacks/trpc-1/pkg/middleware/metrics"
	"github.com/colinhacks/trpc-1/pkg/procedure"
	httpx "github.com/colinhacks/trpc-1/pkg/transport/httpx"
)

type BuildDeps struct {
	Auth    *auth.Middleware
	LogMW   *logger.Middleware
	Metrics http.Handler
	Router  httpx.Router
}

// BuildRouter mounts one handler per manifest route. Each route derives
// its procedure with the ambient middlewares (metrics, call log, guard)
// prepended, so they run before anything declared on the procedure
// itself.
func BuildRouter(cfg manifest.Config, d BuildDeps) http.Handler {
	r := d.Router
	r.Use(chimd.RequestID, chimd.Recoverer, chimd.Heartbeat("/ping"))
	if d.Auth != nil {
		r.Use(d.Auth.Middleware())
	}
	if d.LogMW != nil {
		r.Use(d.LogMW.Middleware(d.Auth))
	}

	if d.Metrics != nil {
		r.Handle(http.MethodGet, "/metrics", d.Metrics)
	}

	for _, rt := range cfg.Routes {
		h := wrapRoute(rt, d)
		if rt.Policy.TimeoutMS > 0 {
			t := time.Duration(rt.Policy.TimeoutMS) * time.Millisecond
			h = withTimeout(h, t)
		}

		switch procedure.CallType(rt.Type) {
		case procedure.Query:
			r.Get(rt.Path, h)
		default:
			r.Post(rt.Path, h)
		}
	}
	return r.Mux()
}

func withTimeout(next http.HandlerFunc, d time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), d)
		defer cancel()
		next(w, r.WithContext(ctx))
	}
}

// ambient returns the middlewares prepended to every route's procedure,
// outermost first: metrics, call log, then the manifest guard.
func ambient(rt manifest.Route, d BuildDeps) []procedure.Middleware {
	mws := []procedure.Middleware{pmetrics.Collect(d.Auth)}
	if d.LogMW != nil {
		mws = append(mws, d.LogMW.Calls())
	}
	mws = append(mws, guards(rt.Guard, d.Auth)...)
	return mws
}
