package upgrade

import (
	"context"
	"net"

	"github.com/dep2p/go-dep2p-upgrade/pkg/protocol"
)

// Pending offers one protocol but never completes its handshake. It
// reserves a protocol name without committing to a handshake
// implementation; the Go realization of "never completes" is "blocks
// until ctx is cancelled".
type Pending struct {
	proto protocol.Protocol
}

// NewPending builds a Pending upgrade offering p.
func NewPending(p protocol.Protocol) Pending {
	return Pending{proto: p}
}

var _ InboundOutboundUpgrader = Pending{}

func (p Pending) Protocols() []protocol.Protocol {
	return []protocol.Protocol{p.proto}
}

func (p Pending) UpgradeInbound(ctx context.Context, _ net.Conn, _ protocol.Protocol) (any, error) {
	return p.block(ctx)
}

func (p Pending) UpgradeOutbound(ctx context.Context, _ net.Conn, _ protocol.Protocol) (any, error) {
	return p.block(ctx)
}

func (p Pending) block(ctx context.Context) (any, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
