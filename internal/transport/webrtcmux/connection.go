package webrtcmux

import (
	"context"
	"net"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/dep2p/go-dep2p-upgrade/internal/log"
)

// State is a Connection's position in the Open -> Closing -> Closed
// state machine.
type State int

const (
	StateOpen State = iota
	StateClosing
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateClosing:
		return "closing"
	case StateClosed:
		return "closed"
	default:
		return "open"
	}
}

const (
	dataChannelLabel = "data"
	outboundGroupKey = "outbound"
	closeGroupKey    = "close"
)

// Connection adapts a PeerConnection into a stream muxer. It installs
// a one-shot OnDataChannel handler at construction; calling
// NewConnection a second time over the same PeerConnection is
// undefined, mirroring the underlying library's single-handler
// contract.
//
// mu is the fast lock guarding the mutable scaffolding (state,
// read-buffer hint, the inbound-closed flag). sfOutbound and sfClose
// each bound their operation to at most one in-flight attempt at a
// time: concurrent callers share one attempt's result, and the next
// non-overlapping call starts fresh. pcMu is the async-style lock
// guarding the peer connection's own mutation (CreateDataChannel,
// Close): it is the single lock an outbound-open and a close share, so
// the two can never interleave on pc, and it is always released before
// awaiting the data channel's open callback. The peer connection's own
// calls are never made while holding mu, and mu is never acquired while
// holding pcMu.
type Connection struct {
	pc PeerConnection

	mu            sync.Mutex
	state         State
	readBufCap    int
	inboundClosed bool

	inbound chan *Substream

	pcMu       sync.Mutex
	sfOutbound singleflight.Group
	sfClose    singleflight.Group

	closedSignal chan struct{}

	id  string
	log *log.ComponentLogger
}

// NewConnection wraps pc, installing the inbound data-channel handler.
// Each Connection gets a correlation ID so diagnostics about dropped or
// overflowed data channels (logged from pion's own callback goroutines)
// can be traced back to the right connection.
func NewConnection(pc PeerConnection, cfg Config) *Connection {
	if cfg.ReadBufferCapacity <= 0 {
		cfg.ReadBufferCapacity = DefaultReadBufferCapacity
	}
	c := &Connection{
		pc:           pc,
		readBufCap:   cfg.ReadBufferCapacity,
		inbound:      make(chan *Substream, InboundQueueCapacity),
		closedSignal: make(chan struct{}),
		id:           uuid.NewString(),
		log:          log.Logger("webrtcmux"),
	}
	pc.OnDataChannel(c.handleIncomingDataChannel)
	return c
}

// SetReadBufferCapacity changes the read-buf hint applied to Substreams
// produced afterward. Previously produced Substreams are unaffected.
func (c *Connection) SetReadBufferCapacity(n int) {
	if n <= 0 {
		return
	}
	c.mu.Lock()
	c.readBufCap = n
	c.mu.Unlock()
}

func (c *Connection) readBufferCapacity() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readBufCap
}

// State reports the connection's current position in the state
// machine.
func (c *Connection) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Connection) handleIncomingDataChannel(dc DataChannel) {
	dc.OnOpen(func() {
		rwc, err := dc.Detach()
		if err != nil {
			c.log.Warn("detach failed, dropping data channel", "conn_id", log.TruncateID(c.id, 8), "label", dc.Label(), "error", err)
			_ = dc.Close()
			return
		}
		sub := newSubstream(rwc, c.readBufferCapacity())
		c.offerInbound(dc, sub)
	})
}

// offerInbound enqueues sub for a future AcceptStream, or drops dc if
// the queue is closed or full: every accepted channel is either
// delivered in order or closed on overflow, exclusively.
func (c *Connection) offerInbound(dc DataChannel, sub *Substream) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inboundClosed {
		_ = dc.Close()
		return
	}
	select {
	case c.inbound <- sub:
	default:
		c.log.Warn("inbound queue full, closing data channel", "conn_id", log.TruncateID(c.id, 8), "label", dc.Label(), "capacity", InboundQueueCapacity)
		_ = dc.Close()
	}
}

// AcceptStream drains one element from the inbound queue, in the order
// its open-handlers fired. It returns InternalError once the
// connection has closed and the buffered backlog is exhausted.
func (c *Connection) AcceptStream(ctx context.Context) (*Substream, error) {
	select {
	case sub, ok := <-c.inbound:
		if !ok {
			return nil, InternalError("connection closed")
		}
		return sub, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// OpenStream creates a new outbound data channel labeled "data" and
// waits for it to open. Concurrent callers share the single in-flight
// attempt and its result; the next call that starts after it completes
// begins a fresh attempt.
func (c *Connection) OpenStream(ctx context.Context) (*Substream, error) {
	ch := c.sfOutbound.DoChan(outboundGroupKey, func() (any, error) {
		return c.openOutboundOnce()
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Substream), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Connection) openOutboundOnce() (*Substream, error) {
	c.pcMu.Lock()
	dc, err := c.pc.CreateDataChannel(dataChannelLabel, nil)
	c.pcMu.Unlock()
	if err != nil {
		return nil, WebRTCError(err)
	}

	opened := make(chan struct{})
	dc.OnOpen(func() { close(opened) })

	select {
	case <-opened:
	case <-c.closedSignal:
		return nil, InternalError("connection closed while opening stream")
	}

	rwc, err := dc.Detach()
	if err != nil {
		return nil, WebRTCError(err)
	}
	return newSubstream(rwc, c.readBufferCapacity()), nil
}

// Close closes the underlying peer connection. On success the inbound
// queue is closed — already-buffered Substreams still drain through
// AcceptStream, but no new ones will be offered. On failure the close
// attempt is cleared so a subsequent Close retries.
func (c *Connection) Close(ctx context.Context) error {
	ch := c.sfClose.DoChan(closeGroupKey, func() (any, error) {
		return nil, c.closeOnce()
	})
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Connection) closeOnce() error {
	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		return nil
	}
	c.state = StateClosing
	c.mu.Unlock()

	c.pcMu.Lock()
	err := c.pc.Close()
	c.pcMu.Unlock()
	if err != nil {
		return WebRTCError(err)
	}

	c.mu.Lock()
	c.inboundClosed = true
	c.state = StateClosed
	close(c.inbound)
	c.mu.Unlock()
	close(c.closedSignal)
	return nil
}

// WatchAddressChange always blocks until ctx ends; the core never
// produces address changes on its own.
func (c *Connection) WatchAddressChange(ctx context.Context) (net.Addr, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
