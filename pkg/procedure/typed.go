// pkg/procedure/typed.go
package procedure

import (
	"context"
	"fmt"

	"github.com/colinhacks/trpc-1/pkg/rpcerr"
)

// TypedResolver adapts a typed resolver function into the untyped chain
// shape. The input validator is expected to produce a TIn (e.g.
// validate.Typed[TIn]); a mismatch is an internal wiring error.
func TypedResolver[TIn, TOut any](fn func(ctx context.Context, in TIn, t CallType) (TOut, error)) Resolver {
	return func(ctx context.Context, in any, t CallType) (any, error) {
		var tin TIn
		if in != nil {
			v, ok := in.(TIn)
			if !ok {
				return nil, rpcerr.New(rpcerr.CodeInternal,
					fmt.Sprintf("parsed input is %T, resolver expects %T", in, tin))
			}
			tin = v
		}
		return fn(ctx, tin, t)
	}
}
