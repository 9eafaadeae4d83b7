// Package transport defines the fieldbus contract the register layer is
// written against.
//
// The contract mirrors the Modbus data model:
//
//	Data table        | Width  | Access     | Methods
//	Discrete inputs   | 1 bit  | read-only  | ReadDiscreteInputs
//	Coils             | 1 bit  | read/write | ReadCoils, WriteCoils
//	Holding registers | 16 bit | read/write | ReadHoldingRegisters, WriteRegisters, WriteSingleRegister
//
// Bit reads return one byte per bit holding 0 or 1. Register reads return
// one uint16 per register in device order.
//
// Timeouts, framing and unit addressing belong to the implementation; the
// register layer performs exactly one call per operation and never retries.
// The Modbus/TCP implementation lives in package modbustcp. Mocks generated
// by mockery live in package mocks.
package transport
