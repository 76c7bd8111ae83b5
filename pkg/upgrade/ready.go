package upgrade

import (
	"context"
	"net"

	"github.com/dep2p/go-dep2p-upgrade/pkg/protocol"
)

// Ready offers exactly one protocol and completes its handshake
// immediately with a fixed value, on either direction. It never fails.
type Ready struct {
	proto protocol.Protocol
	value any
}

// NewReady builds a Ready upgrade offering p and resolving to value.
func NewReady(p protocol.Protocol, value any) Ready {
	return Ready{proto: p, value: value}
}

var (
	_ InboundOutboundUpgrader = Ready{}
)

func (r Ready) Protocols() []protocol.Protocol {
	return []protocol.Protocol{r.proto}
}

func (r Ready) UpgradeInbound(_ context.Context, _ net.Conn, _ protocol.Protocol) (any, error) {
	return r.value, nil
}

func (r Ready) UpgradeOutbound(_ context.Context, _ net.Conn, _ protocol.Protocol) (any, error) {
	return r.value, nil
}
