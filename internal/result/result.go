// Package result holds the success/failure value returned by every
// aggregation operation.
package result

import (
	"errors"
	"fmt"
)

// Kind classifies why an operation failed.
type Kind int

const (
	// Transport covers network errors, non-2xx responses and undecodable payloads.
	Transport Kind = iota
	// NotFound means the upstream answered but the entity does not exist.
	NotFound
	// MissingParam means the caller omitted a required argument; no request was made.
	MissingParam
)

func (k Kind) String() string {
	switch k {
	case Transport:
		return "transport"
	case NotFound:
		return "not_found"
	case MissingParam:
		return "missing_param"
	default:
		return "unknown"
	}
}

// Failure is the failure variant of a Result.
type Failure struct {
	Kind    Kind
	Message string
	Err     error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// TransportFailure wraps an underlying client error.
func TransportFailure(err error) *Failure {
	msg := "request failed"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &Failure{Kind: Transport, Message: msg, Err: err}
}

// NotFoundFailure builds a not-found failure with a formatted message.
func NotFoundFailure(format string, args ...any) *Failure {
	return &Failure{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

// MissingParamFailure builds a failure for a caller-contract violation.
func MissingParamFailure(format string, args ...any) *Failure {
	return &Failure{Kind: MissingParam, Message: fmt.Sprintf(format, args...)}
}

// Result holds either a value or a *Failure, never both.
type Result[T any] struct {
	value   T
	failure *Failure
}

// Ok wraps a success value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail wraps a failure. A nil failure is replaced by a generic transport failure
// so that a Result built with Fail is never successful.
func Fail[T any](f *Failure) Result[T] {
	if f == nil {
		f = TransportFailure(errors.New("unknown failure"))
	}
	return Result[T]{failure: f}
}

// IsOk reports whether r is the success variant.
func (r Result[T]) IsOk() bool {
	return r.failure == nil
}

// Value returns the success value and true, or the zero value and false.
func (r Result[T]) Value() (T, bool) {
	if r.failure != nil {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Failure returns the failure, or nil on success.
func (r Result[T]) Failure() *Failure {
	return r.failure
}

// Get converts the result back into Go's (value, error) pair.
func (r Result[T]) Get() (T, error) {
	if r.failure != nil {
		var zero T
		return zero, r.failure
	}
	return r.value, nil
}

// Message returns the failure message, or "" on success.
func (r Result[T]) Message() string {
	if r.failure == nil {
		return ""
	}
	return r.failure.Message
}
