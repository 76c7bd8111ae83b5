package webrtcmux

import (
	"sync"
	"sync/atomic"

	"github.com/pion/datachannel"
)

// Substream is a byte-oriented bidirectional stream over a detached
// data channel. Data channels deliver discrete messages; Substream
// smooths them into an ordinary io.Reader by holding the remainder of
// an over-large message in a scratch buffer for subsequent reads.
// Closing a Substream closes only that stream, not its parent
// Connection.
type Substream struct {
	rwc    datachannel.ReadWriteCloser
	bufCap int

	mu         sync.Mutex
	scratch    []byte
	pendingErr error

	closed atomic.Bool
}

func newSubstream(rwc datachannel.ReadWriteCloser, bufCap int) *Substream {
	if bufCap <= 0 {
		bufCap = DefaultReadBufferCapacity
	}
	return &Substream{rwc: rwc, bufCap: bufCap}
}

// Read implements io.Reader, draining any buffered remainder of a
// prior message before reading a new one.
func (s *Substream) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.scratch) > 0 {
		n := copy(p, s.scratch)
		s.scratch = s.scratch[n:]
		if len(s.scratch) == 0 && s.pendingErr != nil {
			err := s.pendingErr
			s.pendingErr = nil
			return n, err
		}
		return n, nil
	}
	if s.pendingErr != nil {
		err := s.pendingErr
		s.pendingErr = nil
		return 0, err
	}

	buf := make([]byte, s.bufCap)
	n, err := s.rwc.Read(buf)
	if n == 0 {
		return 0, err
	}
	copied := copy(p, buf[:n])
	if copied < n {
		s.scratch = append(s.scratch[:0], buf[copied:n]...)
		s.pendingErr = err
		return copied, nil
	}
	return copied, err
}

// Write implements io.Writer.
func (s *Substream) Write(p []byte) (int, error) {
	return s.rwc.Write(p)
}

// Flush flushes any data channel send buffer, when the underlying
// implementation exposes one.
func (s *Substream) Flush() error {
	type flusher interface{ Flush() error }
	if f, ok := s.rwc.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close closes this stream only; it is idempotent.
func (s *Substream) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	return s.rwc.Close()
}
