package negotiate

// Version selects the multistream-select wire variant used by
// ApplyOutbound.
type Version int

const (
	// V1 negotiates eagerly: SelectOneOf blocks until the remote
	// acknowledges the chosen protocol before the handshake starts.
	V1 Version = iota
	// V1Lazy defers the multistream-select handshake onto the first
	// read or write the upgrade's own handshake performs, saving a
	// round trip. It is sound only when exactly one protocol is
	// offered, since there is no remote round trip to fall back to a
	// second candidate. Requesting it with more than one candidate
	// falls back to V1.
	V1Lazy
)

func (v Version) String() string {
	if v == V1Lazy {
		return "v1lazy"
	}
	return "v1"
}
