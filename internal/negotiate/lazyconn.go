package negotiate

import (
	"net"

	mss "github.com/multiformats/go-multistream"
)

// lazyConn adapts a multistream LazyConn (negotiation deferred to the
// first read/write) back into a net.Conn, so a lazily-negotiated
// protocol's handshake sees the same interface an eagerly-negotiated
// one does. Everything but Read/Write/Close passes through to the
// underlying connection unchanged.
type lazyConn struct {
	net.Conn
	lazy mss.LazyConn
}

func newLazyConn(underlying net.Conn, lazy mss.LazyConn) net.Conn {
	return &lazyConn{Conn: underlying, lazy: lazy}
}

func (c *lazyConn) Read(b []byte) (int, error) {
	return c.lazy.Read(b)
}

func (c *lazyConn) Write(b []byte) (int, error) {
	return c.lazy.Write(b)
}

func (c *lazyConn) Close() error {
	return c.lazy.Close()
}
