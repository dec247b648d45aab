package instr

import (
	"github.com/simpleasm/simpleasm/internal/toolerr"
	"github.com/simpleasm/simpleasm/internal/value"
)

func noOpcode() error {
	return toolerr.New(toolerr.NoOpcode, "no bytes to decode an opcode from")
}

func noRegs(op byte) error {
	return toolerr.New(toolerr.NoRegs, "opcode 0x%02X is missing its register-selector byte", op)
}

func noValue(op byte, k int) error {
	return toolerr.New(toolerr.NoValue, "opcode 0x%02X is missing immediate byte %d", op, k)
}

func noSuchOpcode(op byte) error {
	return toolerr.New(toolerr.NoSuchOpcode, "0x%02X does not match any assigned opcode", op)
}

func leRead(data []byte) uint64 {
	if len(data) == 1 {
		return uint64(data[0])
	}
	return uint64(data[0]) | uint64(data[1])<<8
}

// Decode is the inverse of Encode: given a byte slice starting at an
// instruction boundary, it reads exactly as many bytes as the opcode
// requires, reconstructs a validated Instr, and returns it. Trailing bytes
// beyond what the opcode consumes are ignored (round-trip
// law) — callers that need to know how much was consumed should call
// Length on the result.
func Decode(data []byte) (Instr, error) {
	if len(data) == 0 {
		return nil, noOpcode()
	}
	op := data[0]

	switch op {
	case OpNop:
		if len(data) < 2 {
			return nil, noRegs(op)
		}
		return NewNop(), nil

	case OpMovI2R_B, OpMovI2R_W:
		if len(data) < 2 {
			return nil, noRegs(op)
		}
		w := widthOf(op, OpMovI2R_B)
		if len(data) < 3 {
			return nil, noValue(op, 1)
		}
		need := 1
		if w == value.Word {
			need = 2
		}
		if len(data) < 2+need {
			return nil, noValue(op, need)
		}
		imm := value.NewImmediateUnchecked(w, leRead(data[2:2+need]))
		dst := value.NewRegister(destSelector(data[1]), w)
		return NewMovI2R(imm, dst)

	case OpMovI2RP_B, OpMovI2RP_W:
		if len(data) < 2 {
			return nil, noRegs(op)
		}
		w := widthOf(op, OpMovI2RP_B)
		need := 1
		if w == value.Word {
			need = 2
		}
		if len(data) < 2+need {
			return nil, noValue(op, need)
		}
		imm := value.NewImmediateUnchecked(w, leRead(data[2:2+need]))
		dst := value.NewRegister(destSelector(data[1]), value.Word)
		return NewMovI2RP(imm, dst)

	case OpMovI2IP_B, OpMovI2IP_W:
		if len(data) < 2 {
			return nil, noRegs(op)
		}
		w := widthOf(op, OpMovI2IP_B)
		need := 1
		if w == value.Word {
			need = 2
		}
		if len(data) < 2+need {
			return nil, noValue(op, need)
		}
		srcVal := leRead(data[2 : 2+need])
		// The source immediate always occupies two bytes on the wire (the
		// byte form pads its high byte with zero), so the address starts at 4.
		dstStart := 4
		if len(data) < dstStart+2 {
			return nil, noValue(op, need+1)
		}
		dstVal := leRead(data[dstStart : dstStart+2])
		src := value.NewImmediateUnchecked(w, srcVal)
		dst := value.NewImmediateUnchecked(value.Word, dstVal)
		return NewMovI2IP(src, dst)

	case OpMovIP2R_B, OpMovIP2R_W:
		if len(data) < 2 {
			return nil, noRegs(op)
		}
		if len(data) < 4 {
			return nil, noValue(op, 2)
		}
		w := widthOf(op, OpMovIP2R_B)
		src := value.NewImmediateUnchecked(value.Word, leRead(data[2:4]))
		dst := value.NewRegister(destSelector(data[1]), w)
		return NewMovIP2R(src, dst)

	case OpMovIP2RP:
		if len(data) < 2 {
			return nil, noRegs(op)
		}
		if len(data) < 4 {
			return nil, noValue(op, 2)
		}
		src := value.NewImmediateUnchecked(value.Word, leRead(data[2:4]))
		dst := value.NewRegister(destSelector(data[1]), value.Word)
		return NewMovIP2RP(src, dst)

	case OpMovIP2IP:
		if len(data) < 2 {
			return nil, noRegs(op)
		}
		if len(data) < 6 {
			return nil, noValue(op, 4)
		}
		src := value.NewImmediateUnchecked(value.Word, leRead(data[2:4]))
		dst := value.NewImmediateUnchecked(value.Word, leRead(data[4:6]))
		return NewMovIP2IP(src, dst)

	case OpMovR2R_B, OpMovR2R_W:
		if len(data) < 2 {
			return nil, noRegs(op)
		}
		w := widthOf(op, OpMovR2R_B)
		src := value.NewRegister(srcSelector(data[1]), w)
		dst := value.NewRegister(destSelector(data[1]), w)
		return NewMovR2R(src, dst)

	case OpMovR2RP_B, OpMovR2RP_W:
		if len(data) < 2 {
			return nil, noRegs(op)
		}
		w := widthOf(op, OpMovR2RP_B)
		src := value.NewRegister(srcSelector(data[1]), w)
		dst := value.NewRegister(destSelector(data[1]), value.Word)
		return NewMovR2RP(src, dst)

	case OpMovR2IP_B, OpMovR2IP_W:
		if len(data) < 2 {
			return nil, noRegs(op)
		}
		if len(data) < 4 {
			return nil, noValue(op, 2)
		}
		w := widthOf(op, OpMovR2IP_B)
		src := value.NewRegister(srcOnlySelector(data[1]), w)
		dst := value.NewImmediateUnchecked(value.Word, leRead(data[2:4]))
		return NewMovR2IP(src, dst)

	case OpMovRP2R_B, OpMovRP2R_W:
		if len(data) < 2 {
			return nil, noRegs(op)
		}
		w := widthOf(op, OpMovRP2R_B)
		src := value.NewRegister(srcSelector(data[1]), value.Word)
		dst := value.NewRegister(destSelector(data[1]), w)
		return NewMovRP2R(src, dst)

	case OpMovRP2RP:
		if len(data) < 2 {
			return nil, noRegs(op)
		}
		src := value.NewRegister(srcSelector(data[1]), value.Word)
		dst := value.NewRegister(destSelector(data[1]), value.Word)
		return NewMovRP2RP(src, dst)

	case OpMovRP2IP:
		if len(data) < 2 {
			return nil, noRegs(op)
		}
		if len(data) < 4 {
			return nil, noValue(op, 2)
		}
		src := value.NewRegister(srcOnlySelector(data[1]), value.Word)
		dst := value.NewImmediateUnchecked(value.Word, leRead(data[2:4]))
		return NewMovRP2IP(src, dst)

	default:
		return nil, noSuchOpcode(op)
	}
}

func widthOf(op, byteVariant byte) value.Width {
	if op == byteVariant {
		return value.Byte
	}
	return value.Word
}

func destSelector(b byte) value.Selector {
	return value.Selector(b >> 4 & 0xF)
}

func srcSelector(b byte) value.Selector {
	return value.Selector(b & 0xF)
}

func srcOnlySelector(b byte) value.Selector {
	return value.Selector(b & 0xF)
}
