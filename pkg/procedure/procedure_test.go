package procedure

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colinhacks/trpc-1/pkg/rpcerr"
	"github.com/colinhacks/trpc-1/pkg/validate"
)

type greeting struct {
	Name string `json:"name"`
}

func greetProc(t *testing.T) *Procedure {
	t.Helper()
	return MustNew(Options{
		Input: validate.Typed[greeting](nil),
		Resolver: func(_ context.Context, in any, _ CallType) (any, error) {
			return "hello " + in.(greeting).Name, nil
		},
	})
}

// TestCall_EndToEnd verifies the declared input validator and resolver
// cooperate on a well formed call.
func TestCall_EndToEnd(t *testing.T) {
	t.Parallel()

	out, err := greetProc(t).Call(context.Background(), CallOptions{
		RawInput: map[string]any{"name": "Bob"},
		Path:     "greeting.hello",
		Type:     Query,
	})
	require.NoError(t, err)
	assert.Equal(t, "hello Bob", out)
}

// TestCall_InvalidInput verifies a shape mismatch surfaces as
// BAD_REQUEST with the validator failure as cause.
func TestCall_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := greetProc(t).Call(context.Background(), CallOptions{
		RawInput: map[string]any{"name": float64(5)},
		Type:     Query,
	})
	require.Error(t, err)
	assert.Equal(t, rpcerr.CodeBadRequest, rpcerr.CodeOf(err))

	var ce *rpcerr.Error
	require.ErrorAs(t, err, &ce)
	assert.NotNil(t, ce.Cause)
}

// TestCall_ResolverGetsParsedInput verifies the resolver never sees the
// raw wire value, only the validator's output.
func TestCall_ResolverGetsParsedInput(t *testing.T) {
	t.Parallel()

	p := MustNew(Options{
		Input: validate.Func(func(any) (any, error) { return "parsed", nil }),
		Resolver: func(_ context.Context, in any, _ CallType) (any, error) {
			return in, nil
		},
	})

	out, err := p.Call(context.Background(), CallOptions{RawInput: "raw", Type: Query})
	require.NoError(t, err)
	assert.Equal(t, "parsed", out)
}

// TestCall_NoInputContract verifies a procedure without a declared input
// accepts nil and rejects anything else.
func TestCall_NoInputContract(t *testing.T) {
	t.Parallel()

	p := MustNew(Options{
		Resolver: func(_ context.Context, in any, _ CallType) (any, error) {
			assert.Nil(t, in)
			return "ok", nil
		},
	})

	out, err := p.Call(context.Background(), CallOptions{Type: Query})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)

	_, err = p.Call(context.Background(), CallOptions{
		RawInput: map[string]any{"x": 1},
		Type:     Query,
	})
	require.Error(t, err)
	assert.Equal(t, rpcerr.CodeBadRequest, rpcerr.CodeOf(err))
}

// TestCall_ResolverErrorKeepsCode verifies a classified resolver error
// is returned untouched, not re-wrapped as BAD_REQUEST or INTERNAL.
func TestCall_ResolverErrorKeepsCode(t *testing.T) {
	t.Parallel()

	want := rpcerr.New(rpcerr.CodeNotFound, "no such user")
	p := MustNew(Options{
		Resolver: func(context.Context, any, CallType) (any, error) {
			return nil, want
		},
	})

	_, err := p.Call(context.Background(), CallOptions{Type: Query})
	require.Error(t, err)
	assert.Equal(t, rpcerr.CodeNotFound, rpcerr.CodeOf(err))
	assert.ErrorIs(t, err, want)
}

// TestCall_ResolverPanicRecovered verifies a panicking resolver becomes
// an INTERNAL error instead of crashing the call.
func TestCall_ResolverPanicRecovered(t *testing.T) {
	t.Parallel()

	p := MustNew(Options{
		Resolver: func(context.Context, any, CallType) (any, error) {
			panic(errors.New("resolver blew up"))
		},
	})

	_, err := p.Call(context.Background(), CallOptions{Type: Mutation})
	require.Error(t, err)
	assert.Equal(t, rpcerr.CodeInternal, rpcerr.CodeOf(err))
}

// TestCall_OutputValidationFailure verifies an output rejection maps to
// INTERNAL with the validator failure preserved as cause.
func TestCall_OutputValidationFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("not a string")
	p := MustNew(Options{
		Output: validate.Func(func(any) (any, error) { return nil, cause }),
		Resolver: func(context.Context, any, CallType) (any, error) {
			return 42, nil
		},
	})

	_, err := p.Call(context.Background(), CallOptions{Type: Query})
	require.Error(t, err)
	assert.Equal(t, rpcerr.CodeInternal, rpcerr.CodeOf(err))
	assert.ErrorIs(t, err, cause)
}

// TestCall_OutputTransform verifies the output validator's return value
// replaces the resolver's, mirroring coercing validators.
func TestCall_OutputTransform(t *testing.T) {
	t.Parallel()

	p := MustNew(Options{
		Output: validate.Func(func(v any) (any, error) { return v.(int) + 1, nil }),
		Resolver: func(context.Context, any, CallType) (any, error) {
			return 1, nil
		},
	})

	out, err := p.Call(context.Background(), CallOptions{Type: Query})
	require.NoError(t, err)
	assert.Equal(t, 2, out)
}

// TestSkipOutputValidation verifies the process-wide toggle is read at
// construction time: procedures built while it is on never run their
// output validator, and procedures built before keep theirs.
func TestSkipOutputValidation(t *testing.T) {
	prev := skipOutputValidation
	defer SetSkipOutputValidation(prev)

	failing := validate.Func(func(any) (any, error) {
		return nil, errors.New("always rejects")
	})
	resolver := func(context.Context, any, CallType) (any, error) { return "v", nil }

	SetSkipOutputValidation(false)
	strict := MustNew(Options{Output: failing, Resolver: resolver})

	SetSkipOutputValidation(true)
	relaxed := MustNew(Options{Output: failing, Resolver: resolver})

	_, err := strict.Call(context.Background(), CallOptions{Type: Query})
	assert.Error(t, err)

	out, err := relaxed.Call(context.Background(), CallOptions{Type: Query})
	require.NoError(t, err)
	assert.Equal(t, "v", out)
}

// TestNew_ConfigurationErrors verifies declaration-time failures: a
// missing resolver and validators with no recognizable capability.
func TestNew_ConfigurationErrors(t *testing.T) {
	t.Parallel()

	_, err := New(Options{})
	assert.Error(t, err)

	resolver := func(context.Context, any, CallType) (any, error) { return nil, nil }

	_, err = New(Options{Input: struct{}{}, Resolver: resolver})
	require.Error(t, err)
	assert.ErrorIs(t, err, validate.ErrNoValidator)

	_, err = New(Options{Output: struct{}{}, Resolver: resolver})
	require.Error(t, err)
	assert.ErrorIs(t, err, validate.ErrNoValidator)
}

// TestDerive_PrependsWithoutMutating verifies derived middleware runs
// first and the base procedure is left untouched.
func TestDerive_PrependsWithoutMutating(t *testing.T) {
	t.Parallel()

	var trace []string
	base := MustNew(Options{
		Resolver: func(context.Context, any, CallType) (any, error) {
			trace = append(trace, "R")
			return nil, nil
		},
		Middlewares: []Middleware{recordMW(&trace, "Y")},
	})

	derived := base.Derive(recordMW(&trace, "X"))
	require.NotSame(t, base, derived)

	_, err := derived.Call(context.Background(), CallOptions{Type: Query})
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "R"}, trace)

	trace = nil
	_, err = base.Call(context.Background(), CallOptions{Type: Query})
	require.NoError(t, err)
	assert.Equal(t, []string{"Y", "R"}, trace)
}

// TestDerive_Chained verifies stacked derivations keep prepend order.
func TestDerive_Chained(t *testing.T) {
	t.Parallel()

	var trace []string
	base := MustNew(Options{
		Resolver: func(context.Context, any, CallType) (any, error) {
			trace = append(trace, "R")
			return nil, nil
		},
	})

	p := base.Derive(recordMW(&trace, "inner")).Derive(recordMW(&trace, "outer"))
	_, err := p.Call(context.Background(), CallOptions{Type: Query})
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner", "R"}, trace)
}

// TestTypedResolver verifies the generic adapter decodes nil to the
// zero input and rejects mismatched parsed types.
func TestTypedResolver(t *testing.T) {
	t.Parallel()

	r := TypedResolver(func(_ context.Context, in greeting, _ CallType) (string, error) {
		return "hi " + in.Name, nil
	})

	out, err := r(context.Background(), greeting{Name: "Ana"}, Query)
	require.NoError(t, err)
	assert.Equal(t, "hi Ana", out)

	out, err = r(context.Background(), nil, Query)
	require.NoError(t, err)
	assert.Equal(t, "hi ", out)

	_, err = r(context.Background(), "wrong type", Query)
	require.Error(t, err)
	assert.Equal(t, rpcerr.CodeInternal, rpcerr.CodeOf(err))
}
