// pkg/rpcerr/errors.go
package rpcerr

import "errors"

// Code is the closed taxonomy of call failure kinds. Resolvers and
// middleware raise whichever code fits; the core itself only produces
// CodeBadRequest and CodeInternal.
type Code string

const (
	CodeBadRequest         Code = "BAD_REQUEST"
	CodeUnauthorized       Code = "UNAUTHORIZED"
	CodeForbidden          Code = "FORBIDDEN"
	CodeNotFound           Code = "NOT_FOUND"
	CodeTimeout            Code = "TIMEOUT"
	CodeConflict           Code = "CONFLICT"
	CodePrecondition       Code = "PRECONDITION_FAILED"
	CodePayloadTooLarge    Code = "PAYLOAD_TOO_LARGE"
	CodeMethodNotSupported Code = "METHOD_NOT_SUPPORTED"
	CodeInternal           Code = "INTERNAL_SERVER_ERROR"
)

// Error is a classified call error: a stable code, a message, and the
// original failure (if any) as Cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return string(e.Code) + ": " + e.Message
	}
	return string(e.Code)
}

// Unwrap exposes Cause to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// New returns a classified error with no cause.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Wrap classifies cause under code. The cause survives intact and is
// reachable via errors.Unwrap.
func Wrap(code Code, msg string, cause error) *Error {
	return &Error{Code: code, Message: msg, Cause: cause}
}

// Coerce maps an arbitrary failure to a classified error. Already
// classified errors (directly or anywhere in the unwrap chain) pass
// through unchanged; everything else becomes INTERNAL_SERVER_ERROR with
// the original value attached as cause. Classification happens exactly
// once per failure: re-coercing a coerced error is the identity.
func Coerce(v any) *Error {
	switch err := v.(type) {
	case nil:
		return nil
	case *Error:
		return err
	case error:
		var ce *Error
		if errors.As(err, &ce) {
			return ce
		}
		return &Error{Code: CodeInternal, Message: "internal server error", Cause: err}
	default:
		return &Error{Code: CodeInternal, Message: "internal server error", Cause: &panicError{val: v}}
	}
}

// CodeOf returns the classified code of err, or CodeInternal for
// unclassified errors. Nil maps to the empty code.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return CodeInternal
}

// panicError carries a non-error panic value through the error channel.
type panicError struct{ val any }

func (p *panicError) Error() string {
	if s, ok := p.val.(string); ok {
		return s
	}
	return "unexpected panic value"
}

// PanicValue recovers the raw value behind a coerced non-error panic.
func PanicValue(err error) (any, bool) {
	var pe *panicError
	if errors.As(err, &pe) {
		return pe.val, true
	}
	return nil, false
}
