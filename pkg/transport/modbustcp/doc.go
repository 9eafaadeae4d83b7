// Package modbustcp implements transport.Dialer over Modbus/TCP using
// github.com/grid-x/modbus.
//
// The underlying client speaks in raw PDU bytes. This package converts
// register payloads to big-endian uint16 words and bit payloads to one
// byte per bit, so callers above the transport never handle packed data.
package modbustcp
