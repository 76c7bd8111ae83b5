package upgrade

import (
	"context"
	"net"

	"github.com/dep2p/go-dep2p-upgrade/pkg/protocol"
)

// Either tags which side of a Select negotiated. Left is true when the
// left-hand upgrade's protocol won.
type Either struct {
	Left  bool
	Value any
}

// unionProtocols returns left's protocols followed by right's,
// deduplicated by name with left winning ties: duplicate protocol
// names across left and right are offered only once on the wire, and
// if both sides could have matched, the left side wins. This chooses
// left-bias over rejecting duplicates at construction time.
func unionProtocols(left, right []protocol.Protocol) []protocol.Protocol {
	seen := make(map[string]struct{}, len(left)+len(right))
	out := make([]protocol.Protocol, 0, len(left)+len(right))
	for _, p := range left {
		if _, ok := seen[p.AsStr()]; ok {
			continue
		}
		seen[p.AsStr()] = struct{}{}
		out = append(out, p)
	}
	for _, p := range right {
		if _, ok := seen[p.AsStr()]; ok {
			continue
		}
		seen[p.AsStr()] = struct{}{}
		out = append(out, p)
	}
	return out
}

func leftOffers(protocols []protocol.Protocol, selected protocol.Protocol) bool {
	for _, p := range protocols {
		if p.Equal(selected) {
			return true
		}
	}
	return false
}

// SelectInbound is the left-biased disjunction of two inbound upgrades.
type SelectInbound struct {
	left, right InboundUpgrader
}

// NewSelectInbound builds Select(left, right); left wins protocol-name
// ties with right.
func NewSelectInbound(left, right InboundUpgrader) SelectInbound {
	return SelectInbound{left: left, right: right}
}

var _ InboundUpgrader = SelectInbound{}

func (s SelectInbound) Protocols() []protocol.Protocol {
	return unionProtocols(s.left.Protocols(), s.right.Protocols())
}

func (s SelectInbound) UpgradeInbound(ctx context.Context, conn net.Conn, selected protocol.Protocol) (any, error) {
	if leftOffers(s.left.Protocols(), selected) {
		v, err := s.left.UpgradeInbound(ctx, conn, selected)
		if err != nil {
			return nil, err
		}
		return Either{Left: true, Value: v}, nil
	}
	v, err := s.right.UpgradeInbound(ctx, conn, selected)
	if err != nil {
		return nil, err
	}
	return Either{Left: false, Value: v}, nil
}

// SelectOutbound is the left-biased disjunction of two outbound
// upgrades.
type SelectOutbound struct {
	left, right OutboundUpgrader
}

// NewSelectOutbound builds Select(left, right); left wins protocol-name
// ties with right.
func NewSelectOutbound(left, right OutboundUpgrader) SelectOutbound {
	return SelectOutbound{left: left, right: right}
}

var _ OutboundUpgrader = SelectOutbound{}

func (s SelectOutbound) Protocols() []protocol.Protocol {
	return unionProtocols(s.left.Protocols(), s.right.Protocols())
}

func (s SelectOutbound) UpgradeOutbound(ctx context.Context, conn net.Conn, selected protocol.Protocol) (any, error) {
	if leftOffers(s.left.Protocols(), selected) {
		v, err := s.left.UpgradeOutbound(ctx, conn, selected)
		if err != nil {
			return nil, err
		}
		return Either{Left: true, Value: v}, nil
	}
	v, err := s.right.UpgradeOutbound(ctx, conn, selected)
	if err != nil {
		return nil, err
	}
	return Either{Left: false, Value: v}, nil
}
