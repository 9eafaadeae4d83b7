package modbustcp

import (
	"encoding/binary"
	"fmt"
)

// bytesToWords decodes a big-endian register payload.
func bytesToWords(b []byte, quantity uint16) ([]uint16, error) {
	if len(b) != int(quantity)*2 {
		return nil, fmt.Errorf("register payload: got %d bytes, want %d", len(b), int(quantity)*2)
	}
	words := make([]uint16, quantity)
	for i := range words {
		words[i] = binary.BigEndian.Uint16(b[2*i:])
	}
	return words, nil
}

// wordsToBytes encodes registers as a big-endian payload.
func wordsToBytes(words []uint16) []byte {
	b := make([]byte, 2*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint16(b[2*i:], w)
	}
	return b
}

// unpackBits expands a packed coil/input payload, LSB of the first byte
// first, into one 0/1 byte per bit.
func unpackBits(b []byte, quantity uint16) ([]byte, error) {
	need := (int(quantity) + 7) / 8
	if len(b) < need {
		return nil, fmt.Errorf("bit payload: got %d bytes, want %d", len(b), need)
	}
	bits := make([]byte, quantity)
	for i := range bits {
		bits[i] = (b[i/8] >> (uint(i) % 8)) & 1
	}
	return bits, nil
}

// packBits is the inverse of unpackBits. Non-zero values are on.
func packBits(values []byte) []byte {
	b := make([]byte, (len(values)+7)/8)
	for i, v := range values {
		if v != 0 {
			b[i/8] |= 1 << (uint(i) % 8)
		}
	}
	return b
}
