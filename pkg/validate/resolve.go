// pkg/validate/resolve.go
package validate

import (
	"context"
	"errors"

	"github.com/colinhacks/trpc-1/pkg/rpcerr"
)

// ErrNoValidator is returned when a validator value exposes none of the
// supported capabilities. This is a construction-time programmer error,
// never a per-call one.
var ErrNoValidator = errors.New("validate: no validator function found")

// ParseFunc is the uniform parse shape every validator resolves to.
type ParseFunc func(ctx context.Context, raw any) (any, error)

// Func is a plain callable validator.
type Func func(raw any) (any, error)

// ParserContext is the context-aware parse capability, preferred over
// Parser when both are present.
type ParserContext interface {
	ParseContext(ctx context.Context, raw any) (any, error)
}

// Parser is the synchronous parse capability.
type Parser interface {
	Parse(raw any) (any, error)
}

// Checker validates a value in place; the raw value passes through
// unchanged on success.
type Checker interface {
	Validate(raw any) error
}

// Coercer creates/coerces a value from raw input.
type Coercer interface {
	Create(raw any) (any, error)
}

// Resolve probes v's capabilities once and returns the bound parse
// function. Precedence: plain callable, ParseContext, Parse, Validate,
// Create. Callers cache the result for the procedure's lifetime; the
// hot path never re-probes.
func Resolve(v any) (ParseFunc, error) {
	switch p := v.(type) {
	case nil:
		return nil, ErrNoValidator
	case Func:
		return func(_ context.Context, raw any) (any, error) { return p(raw) }, nil
	case func(any) (any, error):
		return func(_ context.Context, raw any) (any, error) { return p(raw) }, nil
	case ParserContext:
		return p.ParseContext, nil
	case Parser:
		return func(_ context.Context, raw any) (any, error) { return p.Parse(raw) }, nil
	case Checker:
		return func(_ context.Context, raw any) (any, error) {
			if err := p.Validate(raw); err != nil {
				return nil, err
			}
			return raw, nil
		}, nil
	case Coercer:
		return func(_ context.Context, raw any) (any, error) { return p.Create(raw) }, nil
	default:
		return nil, ErrNoValidator
	}
}

// NoInput is the effective parser for procedures that declare no input
// validator: absent input parses to nil, anything else is a caller
// contract violation.
func NoInput() ParseFunc {
	return func(_ context.Context, raw any) (any, error) {
		if raw == nil {
			return nil, nil
		}
		return nil, rpcerr.New(rpcerr.CodeBadRequest, "no input expected")
	}
}

// Identity passes the value through unchanged. Used when output
// validation is skipped or no output validator is declared.
func Identity() ParseFunc {
	return func(_ context.Context, raw any) (any, error) { return raw, nil }
}
