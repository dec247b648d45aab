// Package assembler lowers a parsed expression list into SimpleASM's wire
// format, in two phases: emit (walk expressions,
// building instructions and deferring label references) and resolve (patch
// deferred references once every label's offset is known).
package assembler

import (
	"github.com/simpleasm/simpleasm/internal/instr"
	"github.com/simpleasm/simpleasm/internal/value"
)

// Slot identifies which immediate-bearing field of a two-operand
// instruction a deferred label reference patches.
type Slot int

const (
	SlotSrc Slot = iota
	SlotDst
)

type pendingRef struct {
	Name       string
	InstrIndex int
	Slot       Slot
	Width      value.Width
}

// Context is the compile context threaded through the emit and resolve
// phases: the growing instruction list, the label definition table, and
// the side table of deferred label references ("label
// references as deferred writes").
type Context struct {
	Instrs  []instr.Instr
	labels  map[string]int
	pending []pendingRef
}

// NewContext builds an empty compile context.
func NewContext() *Context {
	return &Context{labels: make(map[string]int)}
}

// Bytes encodes every instruction in emission order — the ROM file is
// exactly this concatenation.
func (c *Context) Bytes() []byte {
	var out []byte
	for _, ins := range c.Instrs {
		out = append(out, instr.Encode(ins)...)
	}
	return out
}
