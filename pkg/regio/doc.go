// Package regio performs typed reads and writes of amplifier registers.
//
// Values map onto the fieldbus data tables as follows:
//
//	ReadFlag       one discrete input
//	Read8/Write8   eight coils, LSB first, carried as a signed 8-bit value
//	Read32/Write32 two holding registers, high word first
//	WriteTrigger   one holding register (command triggers)
//
// Every failure is returned as an *IOError and logged at error level.
// Calls made while the session is disconnected fail with
// session.ErrNotConnected and never reach the transport.
package regio
