package upgrade

import (
	"context"
	"net"

	"github.com/dep2p/go-dep2p-upgrade/internal/log"
	"github.com/dep2p/go-dep2p-upgrade/pkg/protocol"
)

// Endpoint identifies which side of a connection a FromFn handshake is
// running on. It mirrors Direction but is named separately since a
// HandshakeFunc is endpoint-symmetric: the same function runs for both
// inbound and outbound upgrades, told which side it is via this
// parameter rather than by being wrapped in two separate types.
type Endpoint int

const (
	EndpointInbound Endpoint = iota
	EndpointOutbound
)

func (e Endpoint) String() string {
	if e == EndpointOutbound {
		return "outbound"
	}
	return "inbound"
}

// HandshakeFunc runs an arbitrary upgrade handshake over conn for the
// already-selected protocol.
type HandshakeFunc func(ctx context.Context, conn net.Conn, selected protocol.Protocol, endpoint Endpoint) (any, error)

// FromFn adapts a HandshakeFunc and a raw list of protocol names into an
// InboundOutboundUpgrader. Names that fail protocol.TryFromOwned are
// dropped from the offered set and logged, rather than rejecting
// construction, to tolerate legacy/malformed names without surfacing
// them as an error.
type FromFn struct {
	protocols []protocol.Protocol
	f         HandshakeFunc
}

// NewFromFn validates names against protocol.TryFromOwned, filtering
// out and logging any that fail, then builds a FromFn offering the
// survivors.
func NewFromFn(names []string, f HandshakeFunc) FromFn {
	logger := log.Logger("upgrade.fromfn")
	protocols := make([]protocol.Protocol, 0, len(names))
	for _, n := range names {
		p, err := protocol.TryFromOwned(n)
		if err != nil {
			logger.Warn("dropping malformed protocol name", "name", n, "error", err)
			continue
		}
		protocols = append(protocols, p)
	}
	return FromFn{protocols: protocols, f: f}
}

var _ InboundOutboundUpgrader = FromFn{}

func (u FromFn) Protocols() []protocol.Protocol {
	return u.protocols
}

func (u FromFn) UpgradeInbound(ctx context.Context, conn net.Conn, selected protocol.Protocol) (any, error) {
	return u.f(ctx, conn, selected, EndpointInbound)
}

func (u FromFn) UpgradeOutbound(ctx context.Context, conn net.Conn, selected protocol.Protocol) (any, error) {
	return u.f(ctx, conn, selected, EndpointOutbound)
}
