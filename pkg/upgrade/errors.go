package upgrade

import (
	"errors"
	"fmt"
)

// Kind distinguishes a negotiation failure from a handshake failure.
type Kind int

const (
	// KindSelect means multistream-select itself failed: no common
	// protocol, or a wire-level framing error.
	KindSelect Kind = iota
	// KindApply means negotiation succeeded but the upgrade's own
	// handshake failed; the wrapped error is opaque to the driver.
	KindApply
)

func (k Kind) String() string {
	if k == KindSelect {
		return "select"
	}
	return "apply"
}

// ErrDenied is returned by a Denied upgrade (or any combinator falling
// back to Denied, e.g. an absent Optional) if its handshake is ever
// invoked despite offering no protocols.
var ErrDenied = errors.New("upgrade: denied upgrade offers no protocols")

// Error is the upgrade-level error: either a Select failure (no
// common protocol, or a multistream-select framing error) or an Apply
// failure (the negotiated upgrade's own handshake error).
type Error struct {
	Kind Kind
	err  error
}

// SelectError wraps a multistream-select failure.
func SelectError(err error) *Error {
	return &Error{Kind: KindSelect, err: err}
}

// ApplyError wraps a handshake failure, verbatim and un-inspected.
func ApplyError(err error) *Error {
	return &Error{Kind: KindApply, err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("upgrade: %s: %v", e.Kind, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

// IsSelect reports whether err is an *Error of KindSelect.
func IsSelect(err error) bool {
	var ue *Error
	return errors.As(err, &ue) && ue.Kind == KindSelect
}

// IsApply reports whether err is an *Error of KindApply.
func IsApply(err error) bool {
	var ue *Error
	return errors.As(err, &ue) && ue.Kind == KindApply
}
