// pkg/procedure/procedure.go
package procedure

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/colinhacks/trpc-1/pkg/rpcerr"
	"github.com/colinhacks/trpc-1/pkg/validate"
)

// cache env once
var skipOutputValidation = os.Getenv("TRPC_SKIP_OUTPUT_VALIDATION") == "true"

// SetSkipOutputValidation flips the process-wide output-validation
// escape hatch. It affects procedures constructed afterwards only; the
// decision is baked into each procedure at New time.
func SetSkipOutputValidation(v bool) { skipOutputValidation = v }

// Resolver is the terminal business-logic function of a procedure. It
// receives the parsed input, never the raw value.
type Resolver func(ctx context.Context, input any, t CallType) (any, error)

// Options declares a procedure. Input and Output are opaque validator
// values resolved through validate.Resolve; either may be nil (no input
// expected / output passes through).
type Options struct {
	Input       any
	Output      any
	Resolver    Resolver
	Middlewares []Middleware
}

// CallOptions carries the per-invocation data from the transport.
type CallOptions struct {
	RawInput any
	Path     string
	Type     CallType
}

// Procedure is an immutable declared unit of remote functionality:
// resolved validators, a resolver, and an ordered middleware chain.
// Adding middleware always produces a new instance (see Derive), so a
// base procedure can be reused across composition points and concurrent
// calls without interference.
type Procedure struct {
	middlewares []Middleware
	resolver    Resolver
	parseInput  validate.ParseFunc
	parseOutput validate.ParseFunc
}

// New builds a procedure, resolving both validators exactly once. An
// unresolvable validator is a configuration error reported here, never
// per call.
func New(opts Options) (*Procedure, error) {
	if opts.Resolver == nil {
		return nil, errors.New("procedure: resolver required")
	}

	parseInput := validate.NoInput()
	if opts.Input != nil {
		pf, err := validate.Resolve(opts.Input)
		if err != nil {
			return nil, fmt.Errorf("procedure: input validator: %w", err)
		}
		parseInput = pf
	}

	parseOutput := validate.Identity()
	if opts.Output != nil && !skipOutputValidation {
		pf, err := validate.Resolve(opts.Output)
		if err != nil {
			return nil, fmt.Errorf("procedure: output validator: %w", err)
		}
		parseOutput = pf
	}

	mws := make([]Middleware, len(opts.Middlewares))
	copy(mws, opts.Middlewares)

	return &Procedure{
		middlewares: mws,
		resolver:    opts.Resolver,
		parseInput:  parseInput,
		parseOutput: parseOutput,
	}, nil
}

// MustNew is New for declaration-time wiring.
func MustNew(opts Options) *Procedure {
	p, err := New(opts)
	if err != nil {
		panic(err)
	}
	return p
}

// Derive returns a new procedure with mws prepended to the existing
// chain, sharing the resolver and resolved validators. The receiver is
// never mutated; prepended middleware always runs before middleware
// declared directly on the procedure.
func (p *Procedure) Derive(mws ...Middleware) *Procedure {
	combined := make([]Middleware, 0, len(mws)+len(p.middlewares))
	combined = append(combined, mws...)
	combined = append(combined, p.middlewares...)
	return &Procedure{
		middlewares: combined,
		resolver:    p.resolver,
		parseInput:  p.parseInput,
		parseOutput: p.parseOutput,
	}
}

// Call executes the full chain for one invocation: declared middleware
// in order, then the terminal link (parse input, resolve, parse
// output). It returns the validated output, or the single classified
// error for the call with its original code and cause intact.
func (p *Procedure) Call(ctx context.Context, opts CallOptions) (any, error) {
	links := make([]Middleware, 0, len(p.middlewares)+1)
	links = append(links, p.middlewares...)
	links = append(links, p.terminal)

	res := run(ctx, links, opts)
	switch {
	case res.Succeeded():
		return res.Data(), nil
	case res.empty():
		return nil, rpcerr.New(rpcerr.CodeInternal, "middleware returned no result; did it forget to call next()?")
	default:
		return nil, res.Err()
	}
}

// terminal is the synthetic last link of every chain.
func (p *Procedure) terminal(mp Params) Result {
	in, err := p.parseInput(mp.Ctx, mp.RawInput)
	if err != nil {
		return Fail(badRequest(err))
	}

	// Resolver failures are not re-wrapped here: Fail coerces, so a
	// classified error raised by the resolver keeps its code, and a
	// panic is caught by the safe invoker around this link.
	out, err := p.resolver(mp.Ctx, in, mp.Type)
	if err != nil {
		return Fail(err)
	}

	parsed, err := p.parseOutput(mp.Ctx, out)
	if err != nil {
		return Fail(rpcerr.Wrap(rpcerr.CodeInternal, "output validation failed", err))
	}
	return OK(mp.Ctx, parsed)
}

// badRequest classifies an input-validation failure, keeping an already
// BAD_REQUEST-classified error (e.g. the no-input contract) as is.
func badRequest(err error) *rpcerr.Error {
	var ce *rpcerr.Error
	if errors.As(err, &ce) && ce.Code == rpcerr.CodeBadRequest {
		return ce
	}
	return rpcerr.Wrap(rpcerr.CodeBadRequest, "input validation failed", err)
}
