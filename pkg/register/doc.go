// Package register defines the symbolic registers of an MDrive-style motor
// amplifier and the address table that binds them to numeric Modbus
// addresses.
//
// # Symbols
//
// The set of symbols is closed. Each symbol has a profile key:
//
//	position              absolute position, 32-bit, two holding registers
//	moving-flag           busy flag, one discrete input
//	initial-velocity      start velocity, 32-bit
//	max-velocity          slew velocity, 32-bit
//	microstep-resolution  step subdivision, 8-bit, coil access
//	save-settings         command trigger, single holding register
//	read-axis-velocity    current axis velocity, 32-bit
//
// # Word Order
//
// 32-bit values occupy two consecutive 16-bit registers with the high word
// at the lower address:
//
//	address+0: bits 31..16
//	address+1: bits 15..0
//
// Values are reinterpreted as two's complement, so negative positions
// round-trip through [SplitWide] and [JoinWide].
package register
