package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an operation failure for transport mapping. NotFound
// deliberately covers both "no such row" and "caller is not the owner" so
// attempt existence never leaks across users.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthorized
	KindNotFound
	KindInvalidState
	KindPolicyViolation
	KindStorage
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the classification from an error chain, KindUnknown when
// the error did not come from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool        { return KindOf(err) == KindNotFound }
func IsUnauthorized(err error) bool    { return KindOf(err) == KindUnauthorized }
func IsInvalidState(err error) bool    { return KindOf(err) == KindInvalidState }
func IsPolicyViolation(err error) bool { return KindOf(err) == KindPolicyViolation }
func IsStorage(err error) bool         { return KindOf(err) == KindStorage }
