package webrtcmux

import "fmt"

// Kind distinguishes a delegated pion/webrtc failure from an invariant
// violation inside the adapter itself.
type Kind int

const (
	// KindWebRTC wraps a failure returned by the underlying
	// peer-connection library.
	KindWebRTC Kind = iota
	// KindInternal marks an invariant violation inside the adapter:
	// the inbound queue is closed, or a pending outbound open observed
	// the connection close before its data channel opened.
	KindInternal
)

func (k Kind) String() string {
	if k == KindWebRTC {
		return "webrtc"
	}
	return "internal"
}

// Error is the muxer adapter's error type, distinguishing a delegated
// WebRTC library failure from an internal invariant violation.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

// WebRTCError wraps a failure from the underlying peer-connection
// library, verbatim and un-inspected.
func WebRTCError(err error) *Error {
	return &Error{Kind: KindWebRTC, err: err}
}

// InternalError reports an invariant violation inside the adapter.
func InternalError(msg string) *Error {
	return &Error{Kind: KindInternal, msg: msg}
}

func (e *Error) Error() string {
	if e.Kind == KindWebRTC {
		return fmt.Sprintf("webrtcmux: webrtc: %v", e.err)
	}
	return fmt.Sprintf("webrtcmux: internal: %s", e.msg)
}

func (e *Error) Unwrap() error {
	return e.err
}

// IsWebRTC reports whether err is an *Error of KindWebRTC.
func IsWebRTC(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == KindWebRTC
}

// IsInternal reports whether err is an *Error of KindInternal.
func IsInternal(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == KindInternal
}
