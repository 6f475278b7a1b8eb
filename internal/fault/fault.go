// Package fault defines the error kinds shared by the ledger engine.
//
// Every balance-affecting operation fails with exactly one of these kinds so
// callers can mechanically distinguish "retry the whole operation" from "fix
// the input" without string matching.
package fault

import (
	"errors"
	"fmt"
)

type Kind int8

const (
	// KindValidation rejects malformed input before any mutation.
	KindValidation Kind = iota
	// KindInsufficientFunds rejects a debit larger than the current balance.
	KindInsufficientFunds
	// KindNotFound reports an unknown account or destination.
	KindNotFound
	// KindConflict reports a concurrent version mismatch; the caller should
	// re-read current state and retry the entire operation.
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInsufficientFunds:
		return "insufficient_funds"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	}
	return "unknown"
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the caller may retry the whole operation with
// backoff. Validation and insufficient-funds failures are terminal.
func (e *Error) Retryable() bool {
	return e.Kind == KindNotFound || e.Kind == KindConflict
}

func Validationf(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func InsufficientFundsf(format string, args ...interface{}) error {
	return &Error{Kind: KindInsufficientFunds, Msg: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind to an underlying error.
func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the kind of err, or ok=false when err carries no kind.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}

func IsValidation(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindValidation
}

func IsInsufficientFunds(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindInsufficientFunds
}

func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}

func IsConflict(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindConflict
}
