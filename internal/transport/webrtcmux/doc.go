// Package webrtcmux adapts an already-established WebRTC peer
// connection into a stream muxer: data channels become Substreams, and
// the adapter offers the same Accept/Open/Close/address-change surface
// a conventional stream multiplexer offers.
//
// ICE gathering, SDP offer/answer exchange, and DTLS establishment are
// the caller's responsibility; this package only ever sees an already-
// connected *webrtc.PeerConnection.
package webrtcmux
