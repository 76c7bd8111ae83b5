package webrtcmux

import (
	"github.com/pion/datachannel"
	"github.com/pion/webrtc/v4"
)

// WrapPeerConnection adapts a real *webrtc.PeerConnection (its data
// channels opened with SettingEngine.DetachDataChannels() enabled, so
// Detach works) into the PeerConnection interface Connection consumes.
func WrapPeerConnection(pc *webrtc.PeerConnection) PeerConnection {
	return pionPeerConnection{pc: pc}
}

type pionPeerConnection struct {
	pc *webrtc.PeerConnection
}

func (p pionPeerConnection) OnDataChannel(f func(DataChannel)) {
	p.pc.OnDataChannel(func(dc *webrtc.DataChannel) {
		f(pionDataChannel{dc: dc})
	})
}

func (p pionPeerConnection) CreateDataChannel(label string, options *webrtc.DataChannelInit) (DataChannel, error) {
	dc, err := p.pc.CreateDataChannel(label, options)
	if err != nil {
		return nil, err
	}
	return pionDataChannel{dc: dc}, nil
}

func (p pionPeerConnection) Close() error {
	return p.pc.Close()
}

type pionDataChannel struct {
	dc *webrtc.DataChannel
}

func (d pionDataChannel) Label() string { return d.dc.Label() }

func (d pionDataChannel) OnOpen(f func()) { d.dc.OnOpen(f) }

func (d pionDataChannel) Detach() (datachannel.ReadWriteCloser, error) {
	return d.dc.Detach()
}

func (d pionDataChannel) Close() error { return d.dc.Close() }
