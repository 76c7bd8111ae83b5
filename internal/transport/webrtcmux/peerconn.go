package webrtcmux

import (
	"github.com/pion/datachannel"
	"github.com/pion/webrtc/v4"
)

// PeerConnection is the slice of *webrtc.PeerConnection's surface
// Connection depends on. It exists so tests can drive Connection
// against a fake peer connection rather than a real ICE/DTLS session —
// see DESIGN.md.
type PeerConnection interface {
	OnDataChannel(f func(DataChannel))
	CreateDataChannel(label string, options *webrtc.DataChannelInit) (DataChannel, error)
	Close() error
}

// DataChannel is the slice of *webrtc.DataChannel's surface Connection
// depends on.
type DataChannel interface {
	Label() string
	OnOpen(f func())
	Detach() (datachannel.ReadWriteCloser, error)
	Close() error
}
