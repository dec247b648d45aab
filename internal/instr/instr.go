// Package instr defines SimpleASM's instruction model: the thirteen-variant
// MOV/Nop tagged union, its validity invariants, and the wire encoding and
// decoding that is the single source of truth for opcode numbering
// (these byte values are a contract, not an implementation
// detail, because they appear on disk).
package instr

import "github.com/simpleasm/simpleasm/internal/value"

// Instr is a sum type over SimpleASM's instruction forms. Every concrete
// type below carries instrNode()'s marker method so unrelated types
// cannot satisfy the interface by accident.
type Instr interface {
	instrNode()
}

// Nop performs no operation.
type Nop struct{}

func (Nop) instrNode() {}

// MovI2R moves an immediate value into a register.
type MovI2R struct {
	Src value.Immediate
	Dst value.Register
}

func (MovI2R) instrNode() {}

// MovI2RP moves an immediate value into the memory cell addressed by a
// register (the register is used as a pointer; Dst.Width must be Word).
type MovI2RP struct {
	Src value.Immediate
	Dst value.Register
}

func (MovI2RP) instrNode() {}

// MovI2IP moves an immediate value into the memory cell at a literal
// address (Dst must be Word width).
type MovI2IP struct {
	Src value.Immediate
	Dst value.Immediate
}

func (MovI2IP) instrNode() {}

// MovIP2R moves the value at a literal memory address into a register.
// Src must be Word width; the number of bytes read is Dst.Width.
type MovIP2R struct {
	Src value.Immediate
	Dst value.Register
}

func (MovIP2R) instrNode() {}

// MovIP2RP moves a single byte from the memory cell at a literal address
// into the memory cell addressed by a register. Both Src and Dst must be
// Word width (elevated to an explicit byte-only move rather
// than a width-silent single-byte copy).
type MovIP2RP struct {
	Src value.Immediate
	Dst value.Register
}

func (MovIP2RP) instrNode() {}

// MovIP2IP moves a single byte between two literal memory addresses. Both
// Src and Dst must be Word width.
type MovIP2IP struct {
	Src value.Immediate
	Dst value.Immediate
}

func (MovIP2IP) instrNode() {}

// MovR2R moves a register's value into another register. Src and Dst must
// share the same width.
type MovR2R struct {
	Src value.Register
	Dst value.Register
}

func (MovR2R) instrNode() {}

// MovR2RP moves a register's value into the memory cell addressed by
// another register. Dst must be Word width.
type MovR2RP struct {
	Src value.Register
	Dst value.Register
}

func (MovR2RP) instrNode() {}

// MovR2IP moves a register's value into the memory cell at a literal
// address. Dst must be Word width.
type MovR2IP struct {
	Src value.Register
	Dst value.Immediate
}

func (MovR2IP) instrNode() {}

// MovRP2R moves the value at the memory cell addressed by a register into
// another register. Src must be Word width; the number of bytes read is
// Dst.Width.
type MovRP2R struct {
	Src value.Register
	Dst value.Register
}

func (MovRP2R) instrNode() {}

// MovRP2RP moves a single byte between the memory cells addressed by two
// registers. Both Src and Dst must be Word width.
type MovRP2RP struct {
	Src value.Register
	Dst value.Register
}

func (MovRP2RP) instrNode() {}

// MovRP2IP moves a single byte from the memory cell addressed by a
// register into the memory cell at a literal address. Both Src and Dst
// must be Word width.
type MovRP2IP struct {
	Src value.Register
	Dst value.Immediate
}

func (MovRP2IP) instrNode() {}
