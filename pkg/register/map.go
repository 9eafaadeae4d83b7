package register

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSymbol is returned when a Symbol value outside the known set is
// resolved.
var ErrUnknownSymbol = errors.New("unknown register symbol")

// Default addresses used when no profile is supplied.
const (
	DefaultMicrostepResolution Address = 0x0048
	DefaultMovingFlag          Address = 0x004A
	DefaultPosition            Address = 0x0057
	DefaultSaveSettings        Address = 0x0076
	DefaultReadAxisVelocity    Address = 0x0085
	DefaultInitialVelocity     Address = 0x0089
	DefaultMaxVelocity         Address = 0x008A
)

// UnboundError reports symbols that have no address in a Map.
type UnboundError struct {
	Symbols []Symbol
}

func (e *UnboundError) Error() string {
	names := make([]string, len(e.Symbols))
	for i, s := range e.Symbols {
		names[i] = s.String()
	}
	return "register address not configured: " + strings.Join(names, ", ")
}

// Binding pairs a symbol with its address.
type Binding struct {
	Symbol  Symbol
	Address Address
}

// Map binds symbols to register addresses. A Map is immutable once built
// and may be shared freely.
type Map struct {
	addrs [len(allSymbols) + 1]Address
	bound [len(allSymbols) + 1]bool
}

// NewMap builds a Map from the given bindings. Invalid symbols are ignored.
// The result may be partial; use Validate to require every symbol.
func NewMap(bindings map[Symbol]Address) *Map {
	m := &Map{}
	for sym, addr := range bindings {
		if !sym.Valid() {
			continue
		}
		m.addrs[sym] = addr
		m.bound[sym] = true
	}
	return m
}

// DefaultMap returns the built-in address table.
func DefaultMap() *Map {
	return NewMap(map[Symbol]Address{
		SymbolMicrostepResolution: DefaultMicrostepResolution,
		SymbolMovingFlag:          DefaultMovingFlag,
		SymbolPosition:            DefaultPosition,
		SymbolSaveSettings:        DefaultSaveSettings,
		SymbolReadAxisVelocity:    DefaultReadAxisVelocity,
		SymbolInitialVelocity:     DefaultInitialVelocity,
		SymbolMaxVelocity:         DefaultMaxVelocity,
	})
}

// Resolve returns the address bound to sym.
func (m *Map) Resolve(sym Symbol) (Address, error) {
	if !sym.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSymbol, sym)
	}
	if m == nil || !m.bound[sym] {
		return 0, &UnboundError{Symbols: []Symbol{sym}}
	}
	return m.addrs[sym], nil
}

// Has reports whether sym has an address.
func (m *Map) Has(sym Symbol) bool {
	return m != nil && sym.Valid() && m.bound[sym]
}

// Validate returns an *UnboundError naming every symbol without an address.
func (m *Map) Validate() error {
	var missing []Symbol
	for _, sym := range allSymbols {
		if !m.Has(sym) {
			missing = append(missing, sym)
		}
	}
	if len(missing) > 0 {
		return &UnboundError{Symbols: missing}
	}
	return nil
}

// Lookup returns the symbol bound to addr. When several symbols share an
// address the first in declaration order wins.
func (m *Map) Lookup(addr Address) (Symbol, bool) {
	for _, sym := range allSymbols {
		if m.Has(sym) && m.addrs[sym] == addr {
			return sym, true
		}
	}
	return 0, false
}

// Bindings returns the bound symbols in declaration order.
func (m *Map) Bindings() []Binding {
	var out []Binding
	for _, sym := range allSymbols {
		if m.Has(sym) {
			out = append(out, Binding{Symbol: sym, Address: m.addrs[sym]})
		}
	}
	return out
}

// Equal reports whether both maps bind the same symbols to the same
// addresses.
func (m *Map) Equal(other *Map) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.addrs == other.addrs && m.bound == other.bound
}
