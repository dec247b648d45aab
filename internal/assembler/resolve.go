package assembler

import (
	"github.com/simpleasm/simpleasm/internal/instr"
	"github.com/simpleasm/simpleasm/internal/toolerr"
	"github.com/simpleasm/simpleasm/internal/value"
)

func truncateToWidth(offset int, w value.Width) uint64 {
	if w == value.Byte {
		return uint64(offset) & 0xFF
	}
	return uint64(offset) & 0xFFFF
}

// patchSlot returns a copy of ins with the given slot's immediate field
// replaced by imm. Only instructions that carry an immediate in that slot
// can be patched; every caller here derives slot from the same lowering
// that produced ins, so the type switch always finds a match in practice.
func patchSlot(ins instr.Instr, slot Slot, imm value.Immediate) instr.Instr {
	switch v := ins.(type) {
	case instr.MovI2R:
		v.Src = imm
		return v
	case instr.MovI2RP:
		v.Src = imm
		return v
	case instr.MovI2IP:
		if slot == SlotSrc {
			v.Src = imm
		} else {
			v.Dst = imm
		}
		return v
	case instr.MovIP2R:
		v.Src = imm
		return v
	case instr.MovIP2RP:
		v.Src = imm
		return v
	case instr.MovIP2IP:
		if slot == SlotSrc {
			v.Src = imm
		} else {
			v.Dst = imm
		}
		return v
	case instr.MovR2IP:
		v.Dst = imm
		return v
	case instr.MovRP2IP:
		v.Dst = imm
		return v
	default:
		return ins
	}
}

// resolve computes each instruction's byte offset by prefix-summing
// encoded lengths, then patches every deferred label reference with its
// target's offset. A label that is referenced but never defined fails the
// whole assembly. Out-of-range offsets are not rejected —
// they silently truncate to the patched slot's width, matching the
// reference behavior's documented quirk.
func (c *Context) resolve() error {
	offsets := make([]int, len(c.Instrs)+1)
	for i, ins := range c.Instrs {
		offsets[i+1] = offsets[i] + instr.Length(ins)
	}

	for _, ref := range c.pending {
		target, ok := c.labels[ref.Name]
		if !ok {
			return toolerr.New(toolerr.LabelNotDefined, "label %q is referenced but never defined", ref.Name)
		}
		offset := offsets[target]
		imm := value.NewImmediateUnchecked(ref.Width, truncateToWidth(offset, ref.Width))
		c.Instrs[ref.InstrIndex] = patchSlot(c.Instrs[ref.InstrIndex], ref.Slot, imm)
	}
	return nil
}
