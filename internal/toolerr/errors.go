// Package toolerr defines the single error sum type shared by every stage of
// the SimpleASM toolchain: lexer, parser, assembler, and VM decoder all
// return *Error values tagged with one of the Kind constants below, rather
// than stage-local error types.
package toolerr

import (
	"errors"
	"fmt"
)

// Kind identifies which of the toolchain's fixed error conditions occurred.
type Kind int

const (
	// InvalidOperands marks an instruction whose operand kinds or widths
	// violate the construction invariants (e.g. a pointer operand that is
	// not word-width, or mismatched register/immediate widths).
	InvalidOperands Kind = iota
	// NumberOOB marks a value that does not fit the width it was
	// constructed against (e.g. Immediate(Byte, 0x100)).
	NumberOOB
	// EOL marks an unexpected end of input while lexing or scanning —
	// typically an unclosed bracket group.
	EOL
	// MissingToken marks a required token (a second mov operand, or the
	// comma separating them) that was not present.
	MissingToken
	// UnexpectedToken marks a token that cannot start a statement.
	UnexpectedToken
	// UnknownInstruction marks a mnemonic that is not "nop" or "mov".
	UnknownInstruction
	// LabelNotDefined marks a reference to a label that was never bound
	// to an instruction index during assembly.
	LabelNotDefined
	// NoOpcode marks an attempt to decode an empty byte slice.
	NoOpcode
	// NoRegs marks a decode that ran out of input before reading the
	// register-selector byte an opcode requires.
	NoRegs
	// NoValue marks a decode that ran out of input before reading an
	// immediate byte an opcode requires.
	NoValue
	// NoSuchOpcode marks a byte that does not match any assigned opcode.
	NoSuchOpcode
	// Misc wraps an underlying I/O or other foreign error.
	Misc
)

// String returns the Kind's name, used by Error.Error() and by tests that
// assert on the failure category rather than the exact message.
func (k Kind) String() string {
	switch k {
	case InvalidOperands:
		return "InvalidOperands"
	case NumberOOB:
		return "NumberOOB"
	case EOL:
		return "EOL"
	case MissingToken:
		return "MissingToken"
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnknownInstruction:
		return "UnknownInstruction"
	case LabelNotDefined:
		return "LabelNotDefined"
	case NoOpcode:
		return "NoOpcode"
	case NoRegs:
		return "NoRegs"
	case NoValue:
		return "NoValue"
	case NoSuchOpcode:
		return "NoSuchOpcode"
	case Misc:
		return "Misc"
	default:
		return "Unknown"
	}
}

// Error is the toolchain's single error value type. It is a plain data
// struct carrying enough context to localize the failure, not an opaque
// wrapped string — callers that need to branch on the failure category
// switch on Kind rather than comparing messages.
type Error struct {
	Kind    Kind
	Message string
	Line    int // 1-based; 0 when the error has no source position (decode/VM errors)
	Column  int // 1-based; 0 when the error has no source position
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Line > 0 {
		if e.Column > 0 {
			return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Line, e.Column, e.Message)
		}
		return fmt.Sprintf("%s at line %d: %s", e.Kind, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped foreign error, if any, to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// New builds an Error with no source position.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// At builds an Error tagged with a 1-based line and column.
func At(kind Kind, line, column int, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Line: line, Column: column}
}

// Wrap builds a Misc Error around a foreign error (file I/O, mainly).
func Wrap(err error, format string, args ...any) *Error {
	return &Error{Kind: Misc, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// Is reports whether err is a *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// Position extracts the 1-based line and column err carries, if it is (or
// wraps) a *Error with a source position. Used by the diagnostic-recording
// wrappers to locate an entry without each caller re-deriving it.
func Position(err error) (line, column int) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, 0
	}
	return e.Line, e.Column
}
