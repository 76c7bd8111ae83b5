package negotiate

import (
	"context"
	"fmt"
	"net"
	"time"

	mss "github.com/multiformats/go-multistream"

	"github.com/dep2p/go-dep2p-upgrade/internal/log"
	"github.com/dep2p/go-dep2p-upgrade/pkg/protocol"
	"github.com/dep2p/go-dep2p-upgrade/pkg/upgrade"
)

// Driver applies an upgrade.Upgrade over a raw connection: it builds
// the offered protocol set, drives multistream-select in the requested
// role, and invokes the winning protocol's handshake.
type Driver struct {
	cfg Config
	log *log.ComponentLogger
}

// NewDriver builds a Driver from cfg, defaulting an unset Clock to the
// real wall clock.
func NewDriver(cfg Config) *Driver {
	if cfg.Clock == nil {
		cfg.Clock = NewConfig().Clock
	}
	return &Driver{cfg: cfg, log: log.Logger("negotiate")}
}

func (d *Driver) deadline(ctx context.Context) time.Time {
	deadline := d.cfg.Clock.Now().Add(d.cfg.NegotiateTimeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		deadline = dl
	}
	return deadline
}

// offeredProtocols builds the wire-offered set from up's enumerator.
// Protocol values are validated at construction, but a zero value can
// still reach an enumeration (a struct literal, an unset field);
// malformed entries are dropped with a diagnostic rather than failing
// the whole negotiation, and the survivors keep enumerator order.
func (d *Driver) offeredProtocols(up upgrade.Upgrade) []protocol.Protocol {
	enumerated := up.Protocols()
	out := make([]protocol.Protocol, 0, len(enumerated))
	for _, p := range enumerated {
		if _, err := protocol.TryFromOwned(p.AsStr()); err != nil {
			d.log.Warn("dropping malformed protocol from offered set", "name", p.AsStr(), "error", err)
			continue
		}
		out = append(out, p)
	}
	return out
}

// ApplyInbound runs multistream-select in the listener role, offering
// up's protocols, then invokes up's inbound handshake for whichever one
// the dialer selected.
func (d *Driver) ApplyInbound(ctx context.Context, conn net.Conn, up upgrade.InboundUpgrader) (protocol.Protocol, any, error) {
	protocols := d.offeredProtocols(up)
	if len(protocols) == 0 {
		return protocol.Protocol{}, nil, upgrade.SelectError(&NegotiationError{Role: "inbound", err: ErrNoProtocols})
	}

	if err := conn.SetDeadline(d.deadline(ctx)); err != nil {
		return protocol.Protocol{}, nil, upgrade.SelectError(&NegotiationError{Role: "inbound", err: err})
	}

	muxer := mss.NewMultistreamMuxer[string]()
	for _, p := range protocols {
		muxer.AddHandler(p.AsStr(), nil)
	}

	selectedStr, _, err := muxer.Negotiate(conn)
	if err != nil {
		conn.SetDeadline(time.Time{})
		return protocol.Protocol{}, nil, upgrade.SelectError(&NegotiationError{Role: "inbound", err: err})
	}

	selected, ok := findProtocol(protocols, selectedStr)
	if !ok {
		conn.SetDeadline(time.Time{})
		return protocol.Protocol{}, nil, upgrade.SelectError(&NegotiationError{
			Role: "inbound",
			err:  fmt.Errorf("negotiated protocol %q not offered", selectedStr),
		})
	}

	// The deadline bounds the select exchange only; the handshake runs
	// without it.
	if err := conn.SetDeadline(time.Time{}); err != nil {
		return protocol.Protocol{}, nil, upgrade.SelectError(&NegotiationError{Role: "inbound", err: err})
	}

	value, err := up.UpgradeInbound(ctx, conn, selected)
	if err != nil {
		return selected, nil, upgrade.ApplyError(err)
	}
	return selected, value, nil
}

// ApplyOutbound runs multistream-select in the dialer role, proposing
// up's protocols, then invokes up's outbound handshake for whichever
// one the listener accepted. version chooses the wire variant; V1Lazy
// is silently demoted to V1 when more than one protocol is offered.
func (d *Driver) ApplyOutbound(ctx context.Context, conn net.Conn, up upgrade.OutboundUpgrader, version Version) (protocol.Protocol, any, error) {
	protocols := d.offeredProtocols(up)
	if len(protocols) == 0 {
		return protocol.Protocol{}, nil, upgrade.SelectError(&NegotiationError{Role: "outbound", err: ErrNoProtocols})
	}

	if version == V1Lazy && len(protocols) != 1 {
		d.log.Debug("v1lazy requested with multiple candidates, falling back to v1", "count", len(protocols))
		version = V1
	}

	if version == V1Lazy {
		// Lazy negotiation defers the select exchange onto the
		// handshake's own reads and writes, so no select deadline is
		// set here: it would bleed into the handshake.
		selected := protocols[0]
		lazy := newLazyConn(conn, mss.NewMSSelect(conn, selected.AsStr()))
		value, err := up.UpgradeOutbound(ctx, lazy, selected)
		if err != nil {
			return selected, nil, upgrade.ApplyError(err)
		}
		return selected, value, nil
	}

	if err := conn.SetDeadline(d.deadline(ctx)); err != nil {
		return protocol.Protocol{}, nil, upgrade.SelectError(&NegotiationError{Role: "outbound", err: err})
	}

	names := make([]string, len(protocols))
	for i, p := range protocols {
		names[i] = p.AsStr()
	}

	selectedStr, err := mss.SelectOneOf(names, conn)
	if err != nil {
		conn.SetDeadline(time.Time{})
		return protocol.Protocol{}, nil, upgrade.SelectError(&NegotiationError{Role: "outbound", err: err})
	}

	selected, ok := findProtocol(protocols, selectedStr)
	if !ok {
		conn.SetDeadline(time.Time{})
		return protocol.Protocol{}, nil, upgrade.SelectError(&NegotiationError{
			Role: "outbound",
			err:  fmt.Errorf("negotiated protocol %q not offered", selectedStr),
		})
	}

	// The deadline bounds the select exchange only; the handshake runs
	// without it.
	if err := conn.SetDeadline(time.Time{}); err != nil {
		return protocol.Protocol{}, nil, upgrade.SelectError(&NegotiationError{Role: "outbound", err: err})
	}

	value, err := up.UpgradeOutbound(ctx, conn, selected)
	if err != nil {
		return selected, nil, upgrade.ApplyError(err)
	}
	return selected, value, nil
}

func findProtocol(protocols []protocol.Protocol, name string) (protocol.Protocol, bool) {
	for _, p := range protocols {
		if p.EqualString(name) {
			return p, true
		}
	}
	return protocol.Protocol{}, false
}
