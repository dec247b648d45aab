// Package vm implements SimpleASM's fetch/decode/execute loop over a
// register file and a 16-bit memory map.
package vm

import "github.com/simpleasm/simpleasm/internal/value"

// RegisterFile is the sixteen-entry bank of register cells: one
// 16-bit storage cell per selector, shared between its byte and word
// views. Width is a tag on the operand, not on the storage.
type RegisterFile struct {
	cells [16]uint16
}

// Read returns the register's value, narrowed to its Byte view when asked.
func (f *RegisterFile) Read(reg value.Register) uint64 {
	cell := f.cells[reg.Selector]
	if reg.Width == value.Byte {
		return uint64(cell & 0xFF)
	}
	return uint64(cell)
}

// Write stores v into the register's cell. A byte write preserves the
// cell's upper byte; a word write overwrites the whole cell — the
// register-width invariant.
func (f *RegisterFile) Write(reg value.Register, v uint64) {
	if reg.Width == value.Byte {
		f.cells[reg.Selector] = (f.cells[reg.Selector] &^ 0xFF) | uint16(v&0xFF)
		return
	}
	f.cells[reg.Selector] = uint16(v & 0xFFFF)
}
