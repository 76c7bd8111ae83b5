package webrtcmux_test

import (
	"bytes"
	"io"
	"sync"

	"github.com/pion/datachannel"
	"github.com/pion/webrtc/v4"

	"github.com/dep2p/go-dep2p-upgrade/internal/transport/webrtcmux"
)

// fakePeerConnection is a minimal in-memory double for
// webrtcmux.PeerConnection. It never touches real ICE/DTLS; data
// channels "open" as soon as they're created, and their read/write
// sides are loopback byte pipes, which is enough to exercise
// Connection's queueing, singleflight, and close semantics.
type fakePeerConnection struct {
	mu         sync.Mutex
	onDC       func(webrtcmux.DataChannel)
	closed     bool
	closeErr   error
	noAutoOpen bool // when true, locally-created channels never signal open
}

func (f *fakePeerConnection) OnDataChannel(cb func(webrtcmux.DataChannel)) {
	f.mu.Lock()
	f.onDC = cb
	f.mu.Unlock()
}

// CreateDataChannel simulates a locally-initiated channel, which opens
// immediately since the fake has no real SCTP handshake to wait on,
// unless noAutoOpen suppresses it to simulate a stuck open.
func (f *fakePeerConnection) CreateDataChannel(label string, _ *webrtc.DataChannelInit) (webrtcmux.DataChannel, error) {
	dc := newFakeDataChannel(label)
	f.mu.Lock()
	autoOpen := !f.noAutoOpen
	f.mu.Unlock()
	if autoOpen {
		dc.triggerOpen()
	}
	return dc, nil
}

func (f *fakePeerConnection) Close() error {
	f.mu.Lock()
	f.closed = true
	err := f.closeErr
	f.mu.Unlock()
	return err
}

// deliverRemoteOpen simulates the remote side opening a data channel
// that reaches open-state, invoking the registered OnDataChannel
// handler synchronously as pion would from its own goroutine.
func (f *fakePeerConnection) deliverRemoteOpen(label string) *fakeDataChannel {
	f.mu.Lock()
	cb := f.onDC
	f.mu.Unlock()

	dc := newFakeDataChannel(label)
	if cb != nil {
		cb(dc)
	}
	dc.triggerOpen()
	return dc
}

type fakeDataChannel struct {
	label string

	mu       sync.Mutex
	onOpen   func()
	opened   bool
	closed   bool
	detached bool

	buf *bytes.Buffer
}

func newFakeDataChannel(label string) *fakeDataChannel {
	return &fakeDataChannel{label: label, buf: bytes.NewBuffer(nil)}
}

func (d *fakeDataChannel) Label() string { return d.label }

func (d *fakeDataChannel) OnOpen(f func()) {
	d.mu.Lock()
	d.onOpen = f
	already := d.opened
	d.mu.Unlock()
	if already && f != nil {
		f()
	}
}

func (d *fakeDataChannel) triggerOpen() {
	d.mu.Lock()
	d.opened = true
	cb := d.onOpen
	d.mu.Unlock()
	if cb != nil {
		cb()
	}
}

func (d *fakeDataChannel) Detach() (datachannel.ReadWriteCloser, error) {
	d.mu.Lock()
	d.detached = true
	d.mu.Unlock()
	return fakeReadWriteCloser{d}, nil
}

func (d *fakeDataChannel) Close() error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	return nil
}

func (d *fakeDataChannel) isClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// fakeReadWriteCloser satisfies datachannel.ReadWriteCloser over the
// fake channel's loopback buffer.
type fakeReadWriteCloser struct {
	dc *fakeDataChannel
}

func (f fakeReadWriteCloser) Read(p []byte) (int, error) {
	f.dc.mu.Lock()
	defer f.dc.mu.Unlock()
	if f.dc.buf.Len() == 0 {
		return 0, io.EOF
	}
	return f.dc.buf.Read(p)
}

func (f fakeReadWriteCloser) ReadDataChannel(p []byte) (int, bool, error) {
	n, err := f.Read(p)
	return n, false, err
}

func (f fakeReadWriteCloser) Write(p []byte) (int, error) {
	f.dc.mu.Lock()
	defer f.dc.mu.Unlock()
	return f.dc.buf.Write(p)
}

func (f fakeReadWriteCloser) WriteDataChannel(p []byte, _ bool) (int, error) {
	return f.Write(p)
}

func (f fakeReadWriteCloser) Close() error {
	return f.dc.Close()
}
