package webrtcmux

import (
	"go.uber.org/fx"
)

// Factory builds Connections sharing a common Config. ICE/SDP signaling
// that produces the underlying PeerConnection is out of this module's
// scope; Factory only ever adapts an already-connected one.
type Factory struct {
	cfg Config
}

// NewFactory builds a Factory from cfg.
func NewFactory(cfg Config) *Factory {
	return &Factory{cfg: cfg}
}

// NewConnection adapts pc using the factory's Config.
func (f *Factory) NewConnection(pc PeerConnection) *Connection {
	return NewConnection(pc, f.cfg)
}

// Module returns the Fx module providing a *Factory.
func Module() fx.Option {
	return fx.Module("webrtcmux",
		fx.Provide(ProvideFactory),
	)
}

// ProvideFactory constructs a Factory with the default Config for
// dependency injection.
func ProvideFactory() *Factory {
	return NewFactory(NewConfig())
}
