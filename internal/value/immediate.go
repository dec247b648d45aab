package value

import "github.com/simpleasm/simpleasm/internal/toolerr"

// Immediate is a literal value carrying a width tag, satisfying the
// invariant Fits(Width, Value).
type Immediate struct {
	Width Width
	Value uint64
}

// NewImmediate is the checked constructor: it fails with NumberOOB when
// value does not fit width.
func NewImmediate(w Width, value uint64) (Immediate, error) {
	if !Fits(w, value) {
		return Immediate{}, toolerr.New(toolerr.NumberOOB, "value 0x%X does not fit in a %s", value, w)
	}
	return Immediate{Width: w, Value: value}, nil
}

// NewImmediateUnchecked builds an Immediate without validating Fits. It
// exists for the assembler's label-patching step, where the caller already
// knows the slot's width and the value being written is a truncated 16-bit
// byte offset (patch replacement is an unchecked
// construction).
func NewImmediateUnchecked(w Width, value uint64) Immediate {
	return Immediate{Width: w, Value: value}
}

// NarrowSigned re-interprets a signed literal as two's-complement truncated
// to width w: widen to 64 bits, then narrow with no overflow check. A
// literal too large for w silently loses its high bits.
func NarrowSigned(literal int64, w Width) uint64 {
	u := uint64(literal)
	if w == Byte {
		return u & 0xFF
	}
	return u & 0xFFFF
}
