package upgrade

import (
	"context"
	"net"

	"github.com/dep2p/go-dep2p-upgrade/pkg/protocol"
)

// MapInbound applies f to the output of an inbound upgrade once its
// handshake succeeds. Protocols and failures pass through unchanged.
type MapInbound struct {
	inner InboundUpgrader
	f     func(any) any
}

// NewMapInbound wraps inner, transforming its successful output with f.
func NewMapInbound(inner InboundUpgrader, f func(any) any) MapInbound {
	return MapInbound{inner: inner, f: f}
}

var _ InboundUpgrader = MapInbound{}

func (m MapInbound) Protocols() []protocol.Protocol {
	return m.inner.Protocols()
}

func (m MapInbound) UpgradeInbound(ctx context.Context, conn net.Conn, selected protocol.Protocol) (any, error) {
	v, err := m.inner.UpgradeInbound(ctx, conn, selected)
	if err != nil {
		return nil, err
	}
	return m.f(v), nil
}

// MapOutbound is the outbound counterpart of MapInbound.
type MapOutbound struct {
	inner OutboundUpgrader
	f     func(any) any
}

// NewMapOutbound wraps inner, transforming its successful output with f.
func NewMapOutbound(inner OutboundUpgrader, f func(any) any) MapOutbound {
	return MapOutbound{inner: inner, f: f}
}

var _ OutboundUpgrader = MapOutbound{}

func (m MapOutbound) Protocols() []protocol.Protocol {
	return m.inner.Protocols()
}

func (m MapOutbound) UpgradeOutbound(ctx context.Context, conn net.Conn, selected protocol.Protocol) (any, error) {
	v, err := m.inner.UpgradeOutbound(ctx, conn, selected)
	if err != nil {
		return nil, err
	}
	return m.f(v), nil
}

// MapErrInbound applies g to an inbound upgrade's failure. Protocols and
// successful output pass through unchanged.
type MapErrInbound struct {
	inner InboundUpgrader
	g     func(error) error
}

// NewMapErrInbound wraps inner, transforming its failure with g.
func NewMapErrInbound(inner InboundUpgrader, g func(error) error) MapErrInbound {
	return MapErrInbound{inner: inner, g: g}
}

var _ InboundUpgrader = MapErrInbound{}

func (m MapErrInbound) Protocols() []protocol.Protocol {
	return m.inner.Protocols()
}

func (m MapErrInbound) UpgradeInbound(ctx context.Context, conn net.Conn, selected protocol.Protocol) (any, error) {
	v, err := m.inner.UpgradeInbound(ctx, conn, selected)
	if err != nil {
		return nil, m.g(err)
	}
	return v, nil
}

// MapErrOutbound is the outbound counterpart of MapErrInbound.
type MapErrOutbound struct {
	inner OutboundUpgrader
	g     func(error) error
}

// NewMapErrOutbound wraps inner, transforming its failure with g.
func NewMapErrOutbound(inner OutboundUpgrader, g func(error) error) MapErrOutbound {
	return MapErrOutbound{inner: inner, g: g}
}

var _ OutboundUpgrader = MapErrOutbound{}

func (m MapErrOutbound) Protocols() []protocol.Protocol {
	return m.inner.Protocols()
}

func (m MapErrOutbound) UpgradeOutbound(ctx context.Context, conn net.Conn, selected protocol.Protocol) (any, error) {
	v, err := m.inner.UpgradeOutbound(ctx, conn, selected)
	if err != nil {
		return nil, m.g(err)
	}
	return v, nil
}
