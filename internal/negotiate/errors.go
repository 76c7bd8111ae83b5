package negotiate

import (
	"errors"
	"fmt"
)

// ErrNoProtocols is the immediate Select failure for an upgrade that
// offers the empty set (Denied, or an absent Optional): an empty
// offered set must fail negotiation immediately rather than ever
// reaching the wire.
var ErrNoProtocols = errors.New("negotiate: upgrade offers no protocols")

// NegotiationError wraps a multistream-select failure (no common
// protocol, wire framing error, or deadline) distinct from a handshake
// failure. The driver always wraps it in upgrade.SelectError before
// returning it to the caller.
type NegotiationError struct {
	Role string // "inbound" or "outbound"
	err  error
}

func (e *NegotiationError) Error() string {
	return fmt.Sprintf("negotiate: %s: %v", e.Role, e.err)
}

func (e *NegotiationError) Unwrap() error {
	return e.err
}
