package register

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMap(t *testing.T) {
	m := DefaultMap()
	require.NoError(t, m.Validate())

	want := map[Symbol]Address{
		SymbolMicrostepResolution: 0x0048,
		SymbolMovingFlag:          0x004A,
		SymbolPosition:            0x0057,
		SymbolSaveSettings:        0x0076,
		SymbolReadAxisVelocity:    0x0085,
		SymbolInitialVelocity:     0x0089,
		SymbolMaxVelocity:         0x008A,
	}
	for sym, addr := range want {
		got, err := m.Resolve(sym)
		require.NoError(t, err, sym.String())
		assert.Equal(t, addr, got, sym.String())
	}
}

func TestResolveUnbound(t *testing.T) {
	m := NewMap(map[Symbol]Address{SymbolPosition: 0x0057})

	addr, err := m.Resolve(SymbolPosition)
	require.NoError(t, err)
	assert.Equal(t, Address(0x0057), addr)

	_, err = m.Resolve(SymbolMaxVelocity)
	var unbound *UnboundError
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, []Symbol{SymbolMaxVelocity}, unbound.Symbols)
}

func TestResolveUnknownSymbol(t *testing.T) {
	_, err := DefaultMap().Resolve(Symbol(42))
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestResolveNilMap(t *testing.T) {
	var m *Map
	_, err := m.Resolve(SymbolPosition)
	var unbound *UnboundError
	assert.ErrorAs(t, err, &unbound)
}

func TestValidateListsMissingInOrder(t *testing.T) {
	m := NewMap(map[Symbol]Address{
		SymbolPosition:     0x0057,
		SymbolMovingFlag:   0x004A,
		SymbolSaveSettings: 0x0076,
	})

	err := m.Validate()
	var unbound *UnboundError
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, []Symbol{
		SymbolInitialVelocity,
		SymbolMaxVelocity,
		SymbolMicrostepResolution,
		SymbolReadAxisVelocity,
	}, unbound.Symbols)
	assert.Contains(t, err.Error(), "initial-velocity, max-velocity")
}

func TestNewMapIgnoresInvalidSymbols(t *testing.T) {
	m := NewMap(map[Symbol]Address{Symbol(0): 1, Symbol(99): 2})
	assert.Empty(t, m.Bindings())
}

func TestBindingsOrder(t *testing.T) {
	bindings := DefaultMap().Bindings()
	require.Len(t, bindings, 7)
	for i, sym := range Symbols() {
		assert.Equal(t, sym, bindings[i].Symbol)
	}
}

func TestMapEqual(t *testing.T) {
	a := DefaultMap()
	b := DefaultMap()
	assert.True(t, a.Equal(b))

	c := NewMap(map[Symbol]Address{SymbolPosition: 0x0057})
	assert.False(t, a.Equal(c))

	var nilMap *Map
	assert.False(t, a.Equal(nilMap))
	assert.True(t, nilMap.Equal(nil))
}

func TestParseSymbol(t *testing.T) {
	for _, sym := range Symbols() {
		got, ok := ParseSymbol(sym.String())
		require.True(t, ok, sym.String())
		assert.Equal(t, sym, got)
	}

	got, ok := ParseSymbol("  Max-Velocity ")
	assert.True(t, ok)
	assert.Equal(t, SymbolMaxVelocity, got)

	_, ok = ParseSymbol("encoder-count")
	assert.False(t, ok)
}

func TestAddressString(t *testing.T) {
	assert.Equal(t, "0x008A", Address(0x8A).String())
	assert.Equal(t, "0xFFFF", Address(0xFFFF).String())
}

func TestLookup(t *testing.T) {
	m := DefaultMap()

	sym, ok := m.Lookup(0x008A)
	require.True(t, ok)
	assert.Equal(t, SymbolMaxVelocity, sym)

	_, ok = m.Lookup(0x1234)
	assert.False(t, ok)

	shared := NewMap(map[Symbol]Address{
		SymbolMaxVelocity: 0x10,
		SymbolPosition:    0x10,
	})
	sym, ok = shared.Lookup(0x10)
	require.True(t, ok)
	assert.Equal(t, SymbolPosition, sym)

	var nilMap *Map
	_, ok = nilMap.Lookup(0x57)
	assert.False(t, ok)
}
