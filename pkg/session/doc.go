// Package session owns the connection to one amplifier.
//
// A Session moves between two states:
//
//	DISCONNECTED --Connect--> CONNECTED --Close--> DISCONNECTED
//
// Connect dials through a transport.Dialer; a failed dial leaves the
// session disconnected with nothing held open. Close is idempotent.
// Sessions are not safe for concurrent use.
package session
