// Package upgrade defines the upgrade contracts (direction-specific
// handshake interfaces) and the combinators used to compose upgrades
// before they reach the negotiation driver in internal/negotiate.
//
// An Output is deliberately typed as `any`: this core imposes no trait
// bound on it, mirroring how a
// security upgrade yields a (PeerId, SecureStream) pair and a muxer
// upgrade yields a (PeerId, StreamMuxer) pair without either being
// known to this package.
package upgrade

import (
	"context"
	"net"

	"github.com/dep2p/go-dep2p-upgrade/pkg/protocol"
)

// Direction distinguishes an inbound (listener) from an outbound
// (dialer) connection or substream.
type Direction int

const (
	DirInbound Direction = iota
	DirOutbound
)

func (d Direction) String() string {
	if d == DirInbound {
		return "inbound"
	}
	return "outbound"
}

// Upgrade enumerates the protocols a value supports. Enumeration must
// be deterministic across calls within a session and, for any
// non-trivial upgrade, non-empty — Denied exists precisely to express
// the empty case.
type Upgrade interface {
	Protocols() []protocol.Protocol
}

// InboundUpgrader is an Upgrade that can perform the inbound (listener
// side) handshake once a protocol has been negotiated.
type InboundUpgrader interface {
	Upgrade
	UpgradeInbound(ctx context.Context, conn net.Conn, selected protocol.Protocol) (any, error)
}

// OutboundUpgrader is an Upgrade that can perform the outbound (dialer
// side) handshake once a protocol has been negotiated.
type OutboundUpgrader interface {
	Upgrade
	UpgradeOutbound(ctx context.Context, conn net.Conn, selected protocol.Protocol) (any, error)
}

// InboundOutboundUpgrader is satisfied by values that implement both
// directions, e.g. Ready, Pending, Denied, FromFn. Select, Map, MapErr
// and Optional come as separate Inbound and Outbound types instead.
type InboundOutboundUpgrader interface {
	InboundUpgrader
	OutboundUpgrader
}
