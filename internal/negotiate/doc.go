// Package negotiate drives multistream-select over a raw connection to
// pick a protocol and apply the matching upgrade's handshake.
//
// It builds the offered set from an upgrade.Upgrade's enumerator, runs
// multistream-select in either listener or dialer role, then invokes
// the selected protocol's handshake and maps failures into
// upgrade.Error.
package negotiate
