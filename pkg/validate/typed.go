// pkg/validate/typed.go
package validate

import (
	"context"

	"github.com/colinhacks/trpc-1/pkg/codec"
)

// SelfChecker lets an input/output type carry its own field rules.
type SelfChecker interface {
	Validate() error
}

// typedValidator round-trips raw input through a strict codec into T.
type typedValidator[T any] struct {
	c codec.Codec
}

// ParseContext implements ParserContext. Unknown fields fail the
// decode; a T implementing SelfChecker is additionally consulted.
func (v typedValidator[T]) ParseContext(_ context.Context, raw any) (any, error) {
	var dst T
	if err := codec.Redecode(v.c, raw, &dst); err != nil {
		return nil, err
	}
	if sc, ok := any(dst).(SelfChecker); ok {
		if err := sc.Validate(); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// Typed returns the house validator for T backed by c. It resolves
// through the same capability probe as any third-party validator.
func Typed[T any](c codec.Codec) ParserContext {
	if c == nil {
		c = codec.JSONStrict
	}
	return typedValidator[T]{c: c}
}
