package upgrade

import (
	"context"
	"net"

	"github.com/dep2p/go-dep2p-upgrade/pkg/protocol"
)

// Denied offers the empty protocol set. A negotiation driver presented
// with Denied must fail immediately with a Select error before ever
// reaching the wire; its handshake
// methods exist only to satisfy the interfaces and should never be
// reached in a correct driver.
type Denied struct{}

var _ InboundOutboundUpgrader = Denied{}

func (Denied) Protocols() []protocol.Protocol {
	return nil
}

func (Denied) UpgradeInbound(context.Context, net.Conn, protocol.Protocol) (any, error) {
	return nil, ErrDenied
}

func (Denied) UpgradeOutbound(context.Context, net.Conn, protocol.Protocol) (any, error) {
	return nil, ErrDenied
}
