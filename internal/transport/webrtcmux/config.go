package webrtcmux

// InboundQueueCapacity is the fixed size of the inbound data-channel
// queue.
const InboundQueueCapacity = 10

// DefaultReadBufferCapacity is the scratch-buffer size a Substream uses
// to smooth message-oriented data-channel reads into a byte stream,
// when Config.ReadBufferCapacity is not positive.
const DefaultReadBufferCapacity = 4096

// Config configures a Connection.
type Config struct {
	// ReadBufferCapacity is the initial read-buf hint applied to every
	// Substream the Connection produces until SetReadBufferCapacity
	// changes it. A value <= 0 selects DefaultReadBufferCapacity.
	ReadBufferCapacity int
}

// NewConfig returns the default Connection configuration.
func NewConfig() Config {
	return Config{ReadBufferCapacity: DefaultReadBufferCapacity}
}
