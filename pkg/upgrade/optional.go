package upgrade

import (
	"context"
	"net"

	"github.com/dep2p/go-dep2p-upgrade/pkg/protocol"
)

// OptionalInbound offers an inner upgrade's protocols when present, and
// behaves like Denied otherwise. A nil inner upgrade is "absent".
type OptionalInbound struct {
	inner InboundUpgrader
}

// NewOptionalInbound wraps inner. Pass a nil inner to build an absent
// Optional, equivalent to Denied.
func NewOptionalInbound(inner InboundUpgrader) OptionalInbound {
	return OptionalInbound{inner: inner}
}

var _ InboundUpgrader = OptionalInbound{}

func (o OptionalInbound) Protocols() []protocol.Protocol {
	if o.inner == nil {
		return nil
	}
	return o.inner.Protocols()
}

func (o OptionalInbound) UpgradeInbound(ctx context.Context, conn net.Conn, selected protocol.Protocol) (any, error) {
	if o.inner == nil {
		return nil, ErrDenied
	}
	return o.inner.UpgradeInbound(ctx, conn, selected)
}

// OptionalOutbound is the outbound counterpart of OptionalInbound.
type OptionalOutbound struct {
	inner OutboundUpgrader
}

// NewOptionalOutbound wraps inner. Pass a nil inner to build an absent
// Optional, equivalent to Denied.
func NewOptionalOutbound(inner OutboundUpgrader) OptionalOutbound {
	return OptionalOutbound{inner: inner}
}

var _ OutboundUpgrader = OptionalOutbound{}

func (o OptionalOutbound) Protocols() []protocol.Protocol {
	if o.inner == nil {
		return nil
	}
	return o.inner.Protocols()
}

func (o OptionalOutbound) UpgradeOutbound(ctx context.Context, conn net.Conn, selected protocol.Protocol) (any, error) {
	if o.inner == nil {
		return nil, ErrDenied
	}
	return o.inner.UpgradeOutbound(ctx, conn, selected)
}
