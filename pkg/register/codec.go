package register

// SplitWide splits a 32-bit value into its high and low words. The high
// word is sent first.
func SplitWide(v int32) [2]uint16 {
	return [2]uint16{uint16(v >> 16), uint16(v)}
}

// JoinWide joins a high and a low word into a signed 32-bit value.
// Wraparound into negative values is intended.
func JoinWide(high, low uint16) int32 {
	return int32(uint32(high)<<16 | uint32(low))
}

// FlagFromBit decodes a single bit as read from the transport. Only the
// value 1 counts as set.
func FlagFromBit(b byte) bool {
	return b == 1
}

// SmallWidth is the number of coils backing an 8-bit register.
const SmallWidth = 8

// SmallFromBits packs SmallWidth coil states, least significant bit
// first, into an 8-bit register value. Only bits equal to 1 are set;
// missing trailing bits read as 0.
func SmallFromBits(bits []byte) int8 {
	var b byte
	for i := 0; i < SmallWidth && i < len(bits); i++ {
		if bits[i] == 1 {
			b |= 1 << i
		}
	}
	return int8(b)
}

// SmallToBits expands an 8-bit register value into SmallWidth coil
// states (0 or 1), least significant bit first.
func SmallToBits(v int8) []byte {
	bits := make([]byte, SmallWidth)
	for i := range bits {
		bits[i] = (byte(v) >> i) & 1
	}
	return bits
}
