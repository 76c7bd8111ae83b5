package negotiate

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Config configures a Driver.
type Config struct {
	// NegotiateTimeout bounds how long multistream-select itself may
	// take; it is applied as a connection deadline around the select
	// exchange only, cleared before the handshake runs.
	NegotiateTimeout time.Duration

	// Clock computes the negotiation deadline. Tests inject a
	// clock.NewMock() to assert timeout behavior without sleeping.
	Clock clock.Clock
}

// NewConfig returns the default Driver configuration.
func NewConfig() Config {
	return Config{
		NegotiateTimeout: 60 * time.Second,
		Clock:            clock.New(),
	}
}
