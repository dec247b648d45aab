package instr

import "github.com/simpleasm/simpleasm/internal/value"

func packDestOnly(dest value.Selector) byte {
	return byte(dest) << 4
}

func packSrcOnly(src value.Selector) byte {
	return byte(src)
}

func packBoth(src, dest value.Selector) byte {
	return (byte(src) & 0xF) | (byte(dest)&0xF)<<4
}

func leWord(v uint64) (lo, hi byte) {
	return byte(v), byte(v >> 8)
}

// Encode serializes i into its fixed wire layout. Encode never fails —
// every Instr value reaching this function was already validated by its
// constructor in validate.go.
func Encode(i Instr) []byte {
	switch v := i.(type) {
	case Nop:
		return []byte{OpNop, 0x00}

	case MovI2R:
		lo, hi := leWord(v.Src.Value)
		if v.Src.Width == value.Byte {
			return []byte{OpMovI2R_B, packDestOnly(v.Dst.Selector), lo, 0}
		}
		return []byte{OpMovI2R_W, packDestOnly(v.Dst.Selector), lo, hi}

	case MovI2RP:
		lo, hi := leWord(v.Src.Value)
		if v.Src.Width == value.Byte {
			return []byte{OpMovI2RP_B, packDestOnly(v.Dst.Selector), lo, 0}
		}
		return []byte{OpMovI2RP_W, packDestOnly(v.Dst.Selector), lo, hi}

	case MovI2IP:
		srcLo, srcHi := leWord(v.Src.Value)
		dstLo, dstHi := leWord(v.Dst.Value)
		if v.Src.Width == value.Byte {
			return []byte{OpMovI2IP_B, 0x00, srcLo, 0, dstLo, dstHi}
		}
		return []byte{OpMovI2IP_W, 0x00, srcLo, srcHi, dstLo, dstHi}

	case MovIP2R:
		srcLo, srcHi := leWord(v.Src.Value)
		op := OpMovIP2R_B
		if v.Dst.Width == value.Word {
			op = OpMovIP2R_W
		}
		return []byte{op, packDestOnly(v.Dst.Selector), srcLo, srcHi}

	case MovIP2RP:
		srcLo, srcHi := leWord(v.Src.Value)
		return []byte{OpMovIP2RP, packDestOnly(v.Dst.Selector), srcLo, srcHi}

	case MovIP2IP:
		srcLo, srcHi := leWord(v.Src.Value)
		dstLo, dstHi := leWord(v.Dst.Value)
		return []byte{OpMovIP2IP, 0x00, srcLo, srcHi, dstLo, dstHi}

	case MovR2R:
		op := OpMovR2R_B
		if v.Src.Width == value.Word {
			op = OpMovR2R_W
		}
		return []byte{op, packBoth(v.Src.Selector, v.Dst.Selector)}

	case MovR2RP:
		op := OpMovR2RP_B
		if v.Src.Width == value.Word {
			op = OpMovR2RP_W
		}
		return []byte{op, packBoth(v.Src.Selector, v.Dst.Selector)}

	case MovR2IP:
		dstLo, dstHi := leWord(v.Dst.Value)
		op := OpMovR2IP_B
		if v.Src.Width == value.Word {
			op = OpMovR2IP_W
		}
		return []byte{op, packSrcOnly(v.Src.Selector), dstLo, dstHi}

	case MovRP2R:
		op := OpMovRP2R_B
		if v.Dst.Width == value.Word {
			op = OpMovRP2R_W
		}
		return []byte{op, packBoth(v.Src.Selector, v.Dst.Selector)}

	case MovRP2RP:
		return []byte{OpMovRP2RP, packBoth(v.Src.Selector, v.Dst.Selector)}

	case MovRP2IP:
		dstLo, dstHi := leWord(v.Dst.Value)
		return []byte{OpMovRP2IP, packSrcOnly(v.Src.Selector), dstLo, dstHi}
	}
	panic("instr: Encode given an unrecognised Instr implementation")
}

// Length returns the number of bytes Encode(i) produces, without building
// the slice. The assembler's resolve phase uses this to prefix-sum
// instruction offsets before any label is patched.
func Length(i Instr) int {
	switch v := i.(type) {
	case Nop:
		return 2
	case MovI2R:
		return 4
	case MovI2RP:
		return 4
	case MovI2IP:
		return 6
	case MovIP2R:
		return 4
	case MovIP2RP:
		return 4
	case MovIP2IP:
		return 6
	case MovR2R:
		return 2
	case MovR2RP:
		return 2
	case MovR2IP:
		return 4
	case MovRP2R:
		return 2
	case MovRP2RP:
		return 2
	case MovRP2IP:
		return 4
	default:
		_ = v
		panic("instr: Length given an unrecognised Instr implementation")
	}
}
