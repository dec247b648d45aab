package assembler

import (
	"github.com/simpleasm/simpleasm/internal/instr"
	"github.com/simpleasm/simpleasm/internal/lexer"
	"github.com/simpleasm/simpleasm/internal/parser"
	"github.com/simpleasm/simpleasm/internal/toolerr"
	"github.com/simpleasm/simpleasm/internal/value"
)

type operandKind int

const (
	operandNumber operandKind = iota
	operandRegister
)

// resolvedOperand is an operand token after shape classification: whether
// it names a register or a number, whether it is a label forward
// reference rather than a literal, and whether it was bracketed
// (indirection).
type resolvedOperand struct {
	kind      operandKind
	reg       value.Register
	literal   uint64
	isLabel   bool
	labelName string
	indirect  bool
}

func invalidOperands(tok lexer.Token, format string, args ...any) error {
	args = append(args, tok)
	return toolerr.At(toolerr.InvalidOperands, tok.Line, tok.Column, format+": %v", args...)
}

// resolveOperand classifies a raw operand token: a
// bracketed group of exactly one token is indirection around that token;
// otherwise the token itself is the operand. An identifier naming a
// register resolves to that register; any other identifier is treated as
// a forward label reference.
func resolveOperand(tok lexer.Token) (resolvedOperand, error) {
	indirect := false
	leaf := tok
	if tok.Type == lexer.TokenGroup {
		if len(tok.Inner) != 1 {
			return resolvedOperand{}, invalidOperands(tok, "a bracketed operand must contain exactly one token")
		}
		indirect = true
		leaf = tok.Inner[0]
		if leaf.Type == lexer.TokenGroup {
			return resolvedOperand{}, invalidOperands(tok, "nested bracket groups are not supported")
		}
	}

	switch leaf.Type {
	case lexer.TokenIdent:
		if reg, ok := registerFromName(leaf.Literal); ok {
			return resolvedOperand{kind: operandRegister, reg: reg, indirect: indirect}, nil
		}
		return resolvedOperand{kind: operandNumber, isLabel: true, labelName: leaf.Literal, indirect: indirect}, nil
	case lexer.TokenNumber:
		return resolvedOperand{kind: operandNumber, literal: leaf.Number, indirect: indirect}, nil
	default:
		return resolvedOperand{}, invalidOperands(tok, "an operand must be a number, identifier, or register")
	}
}

// valueImmediate turns a resolved number operand into an Immediate. If
// constrained is true, w is the width the position requires (an address
// slot, forced Word, or an immediate-into-register slot, forced to the
// destination register's width). Otherwise the width is the smallest that
// fits the literal (the general lowering rule) — and, for an
// as-yet-unresolved label, defaults to Word since label values are byte
// offsets that are usually too large for a single byte.
func (c *Context) valueImmediate(op resolvedOperand, w value.Width, constrained bool, instrIndex int, slot Slot) (value.Immediate, error) {
	if op.isLabel {
		width := w
		if !constrained {
			width = value.Word
		}
		c.pending = append(c.pending, pendingRef{Name: op.labelName, InstrIndex: instrIndex, Slot: slot, Width: width})
		return value.NewImmediateUnchecked(width, 0), nil
	}

	width := w
	if !constrained {
		fitted, err := value.SmallestFitting(op.literal)
		if err != nil {
			return value.Immediate{}, err
		}
		width = fitted
	}
	return value.NewImmediate(width, op.literal)
}

func (c *Context) addressImmediate(op resolvedOperand, instrIndex int, slot Slot) (value.Immediate, error) {
	return c.valueImmediate(op, value.Word, true, instrIndex, slot)
}

func (c *Context) registerWidthImmediate(op resolvedOperand, w value.Width, instrIndex int, slot Slot) (value.Immediate, error) {
	return c.valueImmediate(op, w, true, instrIndex, slot)
}

func (c *Context) smallestFitImmediate(op resolvedOperand, instrIndex int, slot Slot) (value.Immediate, error) {
	return c.valueImmediate(op, 0, false, instrIndex, slot)
}

// lowerMov chooses one of the twelve MOV variants by inspecting the shapes
// of the two operand tokens, per the Mov lowering table.
func (c *Context) lowerMov(m parser.Mov, instrIndex int) (instr.Instr, error) {
	src, err := resolveOperand(m.Src)
	if err != nil {
		return nil, err
	}
	dst, err := resolveOperand(m.Dst)
	if err != nil {
		return nil, err
	}

	if dst.kind == operandNumber && !dst.indirect {
		return nil, invalidOperands(m.Dst, "a bare number or label cannot be a move destination")
	}

	switch {
	case src.kind == operandNumber && !src.indirect && dst.kind == operandRegister && !dst.indirect:
		imm, err := c.registerWidthImmediate(src, dst.reg.Width, instrIndex, SlotSrc)
		if err != nil {
			return nil, err
		}
		return instr.NewMovI2R(imm, dst.reg)

	case src.kind == operandNumber && !src.indirect && dst.kind == operandRegister && dst.indirect:
		imm, err := c.smallestFitImmediate(src, instrIndex, SlotSrc)
		if err != nil {
			return nil, err
		}
		return instr.NewMovI2RP(imm, dst.reg)

	case src.kind == operandNumber && !src.indirect && dst.kind == operandNumber && dst.indirect:
		srcImm, err := c.smallestFitImmediate(src, instrIndex, SlotSrc)
		if err != nil {
			return nil, err
		}
		dstImm, err := c.addressImmediate(dst, instrIndex, SlotDst)
		if err != nil {
			return nil, err
		}
		return instr.NewMovI2IP(srcImm, dstImm)

	case src.kind == operandNumber && src.indirect && dst.kind == operandRegister && !dst.indirect:
		srcImm, err := c.addressImmediate(src, instrIndex, SlotSrc)
		if err != nil {
			return nil, err
		}
		return instr.NewMovIP2R(srcImm, dst.reg)

	case src.kind == operandNumber && src.indirect && dst.kind == operandRegister && dst.indirect:
		srcImm, err := c.addressImmediate(src, instrIndex, SlotSrc)
		if err != nil {
			return nil, err
		}
		return instr.NewMovIP2RP(srcImm, dst.reg)

	case src.kind == operandNumber && src.indirect && dst.kind == operandNumber && dst.indirect:
		srcImm, err := c.addressImmediate(src, instrIndex, SlotSrc)
		if err != nil {
			return nil, err
		}
		dstImm, err := c.addressImmediate(dst, instrIndex, SlotDst)
		if err != nil {
			return nil, err
		}
		return instr.NewMovIP2IP(srcImm, dstImm)

	case src.kind == operandRegister && !src.indirect && dst.kind == operandRegister && !dst.indirect:
		return instr.NewMovR2R(src.reg, dst.reg)

	case src.kind == operandRegister && !src.indirect && dst.kind == operandRegister && dst.indirect:
		return instr.NewMovR2RP(src.reg, dst.reg)

	case src.kind == operandRegister && !src.indirect && dst.kind == operandNumber && dst.indirect:
		dstImm, err := c.addressImmediate(dst, instrIndex, SlotDst)
		if err != nil {
			return nil, err
		}
		return instr.NewMovR2IP(src.reg, dstImm)

	case src.kind == operandRegister && src.indirect && dst.kind == operandRegister && !dst.indirect:
		return instr.NewMovRP2R(src.reg, dst.reg)

	case src.kind == operandRegister && src.indirect && dst.kind == operandRegister && dst.indirect:
		return instr.NewMovRP2RP(src.reg, dst.reg)

	case src.kind == operandRegister && src.indirect && dst.kind == operandNumber && dst.indirect:
		dstImm, err := c.addressImmediate(dst, instrIndex, SlotDst)
		if err != nil {
			return nil, err
		}
		return instr.NewMovRP2IP(src.reg, dstImm)

	default:
		return nil, invalidOperands(m.Src, "unsupported combination of source and destination operand shapes")
	}
}

// emit walks the expression list, building the instruction list and
// recording label definitions and deferred references. No bytes are
// produced yet — offsets aren't known until every instruction exists.
func (c *Context) emit(exprs []parser.Expr) error {
	for _, e := range exprs {
		switch v := e.(type) {
		case parser.Label:
			c.labels[v.Name] = len(c.Instrs)

		case parser.Nop:
			c.Instrs = append(c.Instrs, instr.NewNop())

		case parser.Mov:
			ins, err := c.lowerMov(v, len(c.Instrs))
			if err != nil {
				return err
			}
			c.Instrs = append(c.Instrs, ins)
		}
	}
	return nil
}
