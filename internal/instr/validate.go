package instr

import (
	"github.com/simpleasm/simpleasm/internal/toolerr"
	"github.com/simpleasm/simpleasm/internal/value"
)

func invalidOperands(format string, args ...any) error {
	return toolerr.New(toolerr.InvalidOperands, format, args...)
}

func requireWord(w value.Width, role string) error {
	if w != value.Word {
		return invalidOperands("%s operand used as a pointer must be word width", role)
	}
	return nil
}

// NewNop builds the no-operand instruction. Infallible.
func NewNop() Instr { return Nop{} }

// NewMovI2R validates and builds an immediate-to-register move: the
// immediate and register widths must match.
func NewMovI2R(src value.Immediate, dst value.Register) (Instr, error) {
	if src.Width != dst.Width {
		return nil, invalidOperands("immediate width %s does not match destination register width %s", src.Width, dst.Width)
	}
	return MovI2R{Src: src, Dst: dst}, nil
}

// NewMovI2RP validates and builds an immediate-to-register-pointer move:
// the destination register must be word width (it holds an address).
func NewMovI2RP(src value.Immediate, dst value.Register) (Instr, error) {
	if err := requireWord(dst.Width, "destination"); err != nil {
		return nil, err
	}
	return MovI2RP{Src: src, Dst: dst}, nil
}

// NewMovI2IP validates and builds an immediate-to-memory move: the
// destination address immediate must be word width.
func NewMovI2IP(src, dst value.Immediate) (Instr, error) {
	if err := requireWord(dst.Width, "destination"); err != nil {
		return nil, err
	}
	return MovI2IP{Src: src, Dst: dst}, nil
}

// NewMovIP2R validates and builds a memory-to-register move: the source
// address immediate must be word width.
func NewMovIP2R(src value.Immediate, dst value.Register) (Instr, error) {
	if err := requireWord(src.Width, "source"); err != nil {
		return nil, err
	}
	return MovIP2R{Src: src, Dst: dst}, nil
}

// NewMovIP2RP validates and builds a memory-to-register-pointer move: both
// the source address immediate and the destination register must be word
// width.
func NewMovIP2RP(src value.Immediate, dst value.Register) (Instr, error) {
	if err := requireWord(src.Width, "source"); err != nil {
		return nil, err
	}
	if err := requireWord(dst.Width, "destination"); err != nil {
		return nil, err
	}
	return MovIP2RP{Src: src, Dst: dst}, nil
}

// NewMovIP2IP validates and builds a memory-to-memory move: both address
// immediates must be word width.
func NewMovIP2IP(src, dst value.Immediate) (Instr, error) {
	if err := requireWord(src.Width, "source"); err != nil {
		return nil, err
	}
	if err := requireWord(dst.Width, "destination"); err != nil {
		return nil, err
	}
	return MovIP2IP{Src: src, Dst: dst}, nil
}

// NewMovR2R validates and builds a register-to-register move: the two
// register widths must match.
func NewMovR2R(src, dst value.Register) (Instr, error) {
	if src.Width != dst.Width {
		return nil, invalidOperands("source register width %s does not match destination register width %s", src.Width, dst.Width)
	}
	return MovR2R{Src: src, Dst: dst}, nil
}

// NewMovR2RP validates and builds a register-to-register-pointer move: the
// destination register must be word width.
func NewMovR2RP(src, dst value.Register) (Instr, error) {
	if err := requireWord(dst.Width, "destination"); err != nil {
		return nil, err
	}
	return MovR2RP{Src: src, Dst: dst}, nil
}

// NewMovR2IP validates and builds a register-to-memory move: the
// destination address immediate must be word width.
func NewMovR2IP(src value.Register, dst value.Immediate) (Instr, error) {
	if err := requireWord(dst.Width, "destination"); err != nil {
		return nil, err
	}
	return MovR2IP{Src: src, Dst: dst}, nil
}

// NewMovRP2R validates and builds a register-pointer-to-register move: the
// source register must be word width.
func NewMovRP2R(src, dst value.Register) (Instr, error) {
	if err := requireWord(src.Width, "source"); err != nil {
		return nil, err
	}
	return MovRP2R{Src: src, Dst: dst}, nil
}

// NewMovRP2RP validates and builds a register-pointer-to-register-pointer
// move: both registers must be word width.
func NewMovRP2RP(src, dst value.Register) (Instr, error) {
	if err := requireWord(src.Width, "source"); err != nil {
		return nil, err
	}
	if err := requireWord(dst.Width, "destination"); err != nil {
		return nil, err
	}
	return MovRP2RP{Src: src, Dst: dst}, nil
}

// NewMovRP2IP validates and builds a register-pointer-to-memory move: the
// source register and the destination address immediate must both be word
// width.
func NewMovRP2IP(src value.Register, dst value.Immediate) (Instr, error) {
	if err := requireWord(src.Width, "source"); err != nil {
		return nil, err
	}
	if err := requireWord(dst.Width, "destination"); err != nil {
		return nil, err
	}
	return MovRP2IP{Src: src, Dst: dst}, nil
}
