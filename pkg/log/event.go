package log

import (
	"strings"
	"time"
)

// Event is one trace record. CBOR encoding uses integer keys for
// compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction is OUT for requests and IN for responses.
	Direction Direction `cbor:"3,keyasint"`

	// Category classifies the event.
	Category Category `cbor:"4,keyasint"`

	// RemoteAddr is the amplifier address (host:port).
	RemoteAddr string `cbor:"5,keyasint,omitempty"`

	// UnitID is the Modbus unit id.
	UnitID uint8 `cbor:"6,keyasint,omitempty"`

	// Exactly one of these is set.
	Register    *RegisterEvent    `cbor:"10,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"11,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"12,keyasint,omitempty"`
}

// Direction indicates the direction of a register transaction.
type Direction uint8

const (
	// DirectionIn indicates a response from the amplifier.
	DirectionIn Direction = 0
	// DirectionOut indicates a request to the amplifier.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryRegister indicates a register transaction.
	CategoryRegister Category = 0
	// CategoryState indicates a session state change.
	CategoryState Category = 1
	// CategoryError indicates an error outside a transaction.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryRegister:
		return "REGISTER"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Operation is the fieldbus function used for a transaction.
type Operation uint8

const (
	OpReadCoils Operation = iota + 1
	OpReadDiscreteInputs
	OpReadHoldingRegisters
	OpWriteCoils
	OpWriteRegisters
	OpWriteSingleRegister
)

// String returns the operation name.
func (o Operation) String() string {
	switch o {
	case OpReadCoils:
		return "READ_COILS"
	case OpReadDiscreteInputs:
		return "READ_DISCRETE_INPUTS"
	case OpReadHoldingRegisters:
		return "READ_HOLDING_REGISTERS"
	case OpWriteCoils:
		return "WRITE_COILS"
	case OpWriteRegisters:
		return "WRITE_REGISTERS"
	case OpWriteSingleRegister:
		return "WRITE_SINGLE_REGISTER"
	default:
		return "UNKNOWN"
	}
}

// ParseOperation parses the output of Operation.String, case-insensitively.
func ParseOperation(s string) (Operation, bool) {
	for op := OpReadCoils; op <= OpWriteSingleRegister; op++ {
		if strings.EqualFold(op.String(), strings.TrimSpace(s)) {
			return op, true
		}
	}
	return 0, false
}

// IsWrite reports whether the operation modifies the amplifier.
func (o Operation) IsWrite() bool {
	return o == OpWriteCoils || o == OpWriteRegisters || o == OpWriteSingleRegister
}

// RegisterEvent captures one side of a register transaction.
type RegisterEvent struct {
	// Op is the fieldbus function.
	Op Operation `cbor:"1,keyasint"`

	// Address is the first register or bit address.
	Address uint16 `cbor:"2,keyasint"`

	// Quantity is the number of registers or bits.
	Quantity uint16 `cbor:"3,keyasint"`

	// Symbol is the register symbol name, when known.
	Symbol string `cbor:"4,keyasint,omitempty"`

	// Words carries register values (write requests, read responses).
	Words []uint16 `cbor:"5,keyasint,omitempty"`

	// Bits carries bit values, one byte per bit.
	Bits []byte `cbor:"6,keyasint,omitempty"`

	// Duration is the round trip time (responses only).
	Duration *time.Duration `cbor:"7,keyasint,omitempty"`

	// Err is the transport error text (responses only).
	Err string `cbor:"8,keyasint,omitempty"`
}

// StateChangeEvent captures a session lifecycle change.
type StateChangeEvent struct {
	// OldState is the previous state.
	OldState string `cbor:"1,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData captures an error that did not reach the transport.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`

	// Address is the register involved, if any.
	Address *uint16 `cbor:"3,keyasint,omitempty"`
}
