// Package parser reads a lexer.Token stream and emits the Expr values that
// the assembler lowers into machine instructions.
package parser

import "github.com/simpleasm/simpleasm/internal/lexer"

// Expr is a sum type over the three statement shapes SimpleASM source
// produces. Each concrete type below carries exprNode()'s marker method so
// unrelated types cannot satisfy the interface by accident.
type Expr interface {
	exprNode()
}

// Label binds Name to the index of the next emitted instruction.
type Label struct {
	Name   string
	Line   int
	Column int
}

func (Label) exprNode() {}

// Nop is a no-operand statement.
type Nop struct {
	Line   int
	Column int
}

func (Nop) exprNode() {}

// Mov is a two-operand statement. Src and Dst are the raw tokens as
// written; the assembler inspects their shapes to choose the lowered
// instruction (see lowerMov in internal/assembler).
type Mov struct {
	Src    lexer.Token
	Dst    lexer.Token
	Line   int
	Column int
}

func (Mov) exprNode() {}
