// Package errs defines the error taxonomy shared by all core services.
// Handlers map kinds to HTTP statuses; services never return a bare error
// for a condition the caller is expected to act on.
package errs

import (
	"context"
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	// KindNotFound: a referenced entity does not exist.
	KindNotFound
	// KindDuplicateName: uniqueness violation on a player or game name.
	KindDuplicateName
	// KindInvalidResult: a result payload is malformed or violates the
	// game's scoring rules.
	KindInvalidResult
	// KindTransient: storage failure or timeout, safe to retry.
	KindTransient
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindDuplicateName:
		return "duplicate_name"
	case KindInvalidResult:
		return "invalid_result"
	case KindTransient:
		return "transient"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		if e.Msg != "" {
			return e.Msg + ": " + e.Err.Error()
		}
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds a new error of the given kind.
func E(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, err error, msg string) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf reports the kind of err, or KindUnknown if it carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func NotFound(format string, args ...interface{}) error {
	return E(KindNotFound, format, args...)
}

func DuplicateName(format string, args ...interface{}) error {
	return E(KindDuplicateName, format, args...)
}

func InvalidResult(format string, args ...interface{}) error {
	return E(KindInvalidResult, format, args...)
}

func Transient(err error, msg string) error {
	return Wrap(KindTransient, err, msg)
}

// Storage classifies an error coming back from the database layer.
// Context expiry and cancellation are transient from the caller's point of
// view: nothing was committed and the call may be retried.
func Storage(err error, msg string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return Transient(err, msg+" (storage timeout)")
	}
	return Transient(err, msg)
}
