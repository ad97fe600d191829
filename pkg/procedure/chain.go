// pkg/procedure/chain.go
package procedure

import (
	"context"

	"github.com/colinhacks/trpc-1/pkg/rpcerr"
)

// Params is the bundle a middleware receives for one link of the chain.
type Params struct {
	// Ctx is the effective context for this link: the original call
	// context unless the upstream link passed WithContext to Next.
	Ctx      context.Context
	Type     CallType
	Path     string
	RawInput any

	// Next invokes the rest of the chain. A middleware that never calls
	// Next short-circuits the call; whatever it returns instead is the
	// chain's result.
	Next NextFunc
}

// Middleware runs logic before/after the rest of the chain, or
// short-circuits it. It must return either the Result of Next or a
// Result built with OK / Fail.
type Middleware func(p Params) Result

// NextFunc is the continuation handed to each middleware.
type NextFunc func(opts ...NextOption) Result

// NextOption adjusts one hop of the chain.
type NextOption func(*nextConfig)

type nextConfig struct {
	ctx context.Context
}

// WithContext replaces the context seen by the next link. Context
// transformation is opt-in per hop: omitting the override means the
// original call context flows on, and the last override before a hop
// wins. Derive a child context rather than mutating shared state.
func WithContext(ctx context.Context) NextOption {
	return func(c *nextConfig) { c.ctx = ctx }
}

// Result is the tagged outcome of one chain link: success carrying data
// and the effective context, or a classified failure. The zero Result
// marks a middleware that returned without producing either.
type Result struct {
	ok   bool
	ctx  context.Context
	data any
	err  *rpcerr.Error
}

// OK builds a successful step result.
func OK(ctx context.Context, data any) Result {
	return Result{ok: true, ctx: ctx, data: data}
}

// Fail builds a failed step result. err is normalized through
// rpcerr.Coerce, so classified errors keep their code.
func Fail(err error) Result {
	return Result{err: rpcerr.Coerce(err)}
}

// Succeeded reports whether the link produced data.
func (r Result) Succeeded() bool { return r.ok }

// Data returns the success payload.
func (r Result) Data() any { return r.data }

// Err returns the classified failure, or nil.
func (r Result) Err() *rpcerr.Error { return r.err }

// Context returns the effective context recorded for this link.
func (r Result) Context() context.Context { return r.ctx }

// empty is the "middleware returned the zero value" diagnostic case.
func (r Result) empty() bool { return !r.ok && r.err == nil }

// invokeSafely runs one link and never lets a panic escape. Panic
// values are coerced so a classified panic keeps its code.
func invokeSafely(step func() Result) (res Result) {
	defer func() {
		if v := recover(); v != nil {
			res = Result{err: rpcerr.Coerce(v)}
		}
	}()
	return step()
}

// run drives links[0..n-1] for one call. Each continuation starts from
// the original call context and applies only the override its caller
// passed; execution order is exactly declaration order. links always
// ends with the procedure's terminal link, so the chain is never empty.
func run(ctx context.Context, links []Middleware, opts CallOptions) Result {
	var next func(i int) NextFunc
	next = func(i int) NextFunc {
		return func(nopts ...NextOption) Result {
			if i >= len(links) {
				return Fail(rpcerr.New(rpcerr.CodeInternal, "no link to run"))
			}
			cfg := nextConfig{ctx: ctx}
			for _, o := range nopts {
				o(&cfg)
			}
			hop := cfg.ctx
			return invokeSafely(func() Result {
				res := links[i](Params{
					Ctx:      hop,
					Type:     opts.Type,
					Path:     opts.Path,
					RawInput: opts.RawInput,
					Next:     next(i + 1),
				})
				if res.ok && res.ctx == nil {
					res.ctx = hop
				}
				return res
			})
		}
	}
	return next(0)()
}
