package register

import (
	"fmt"
	"strings"
)

// Symbol identifies one motion parameter register.
type Symbol uint8

const (
	// SymbolPosition is the absolute position register pair.
	SymbolPosition Symbol = iota + 1

	// SymbolMovingFlag is the busy discrete input.
	SymbolMovingFlag

	// SymbolInitialVelocity is the start velocity register pair.
	SymbolInitialVelocity

	// SymbolMaxVelocity is the slew velocity register pair.
	SymbolMaxVelocity

	// SymbolMicrostepResolution is the microstep subdivision register.
	SymbolMicrostepResolution

	// SymbolSaveSettings is the save-to-NVM trigger register.
	SymbolSaveSettings

	// SymbolReadAxisVelocity is the current velocity register pair.
	SymbolReadAxisVelocity
)

// allSymbols lists every symbol in declaration order.
var allSymbols = [...]Symbol{
	SymbolPosition,
	SymbolMovingFlag,
	SymbolInitialVelocity,
	SymbolMaxVelocity,
	SymbolMicrostepResolution,
	SymbolSaveSettings,
	SymbolReadAxisVelocity,
}

// Symbols returns all symbols in declaration order.
func Symbols() []Symbol {
	out := make([]Symbol, len(allSymbols))
	copy(out, allSymbols[:])
	return out
}

// String returns the profile key of the symbol.
func (s Symbol) String() string {
	switch s {
	case SymbolPosition:
		return "position"
	case SymbolMovingFlag:
		return "moving-flag"
	case SymbolInitialVelocity:
		return "initial-velocity"
	case SymbolMaxVelocity:
		return "max-velocity"
	case SymbolMicrostepResolution:
		return "microstep-resolution"
	case SymbolSaveSettings:
		return "save-settings"
	case SymbolReadAxisVelocity:
		return "read-axis-velocity"
	default:
		return fmt.Sprintf("symbol(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the known symbols.
func (s Symbol) Valid() bool {
	return s >= SymbolPosition && s <= SymbolReadAxisVelocity
}

// ParseSymbol maps a profile key to its symbol. Matching ignores case and
// surrounding whitespace.
func ParseSymbol(key string) (Symbol, bool) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "position":
		return SymbolPosition, true
	case "moving-flag":
		return SymbolMovingFlag, true
	case "initial-velocity":
		return SymbolInitialVelocity, true
	case "max-velocity":
		return SymbolMaxVelocity, true
	case "microstep-resolution":
		return SymbolMicrostepResolution, true
	case "save-settings":
		return SymbolSaveSettings, true
	case "read-axis-velocity":
		return SymbolReadAxisVelocity, true
	default:
		return 0, false
	}
}

// Address is a Modbus register address.
type Address uint16

// String formats the address as four hex digits.
func (a Address) String() string {
	return fmt.Sprintf("0x%04X", uint16(a))
}
