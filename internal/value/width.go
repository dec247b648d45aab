// Package value holds the shared operand vocabulary of SimpleASM: widths,
// registers, and immediates. Nothing in this package knows about
// instructions, source text, or bytecode — it is the leaf layer every other
// package builds on.
package value

import "github.com/simpleasm/simpleasm/internal/toolerr"

// Width is an operand size selector: 8-bit (Byte) or 16-bit (Word).
type Width int

const (
	Byte Width = iota
	Word
)

// String returns "byte" or "word", used in error messages.
func (w Width) String() string {
	if w == Byte {
		return "byte"
	}
	return "word"
}

// Bytes returns the operand's size in bytes: 1 for Byte, 2 for Word.
func (w Width) Bytes() int {
	if w == Byte {
		return 1
	}
	return 2
}

// Fits reports whether n can be represented in width w: [0, 0xFF] for Byte,
// [0, 0xFFFF] for Word.
func Fits(w Width, n uint64) bool {
	if w == Byte {
		return n <= 0xFF
	}
	return n <= 0xFFFF
}

// SmallestFitting returns the narrowest Width that fits n: Byte if n fits in
// 8 bits, else Word. Values that don't fit in 16 bits either return a
// NumberOOB error rather than silently truncating.
func SmallestFitting(n uint64) (Width, error) {
	if n <= 0xFF {
		return Byte, nil
	}
	if n <= 0xFFFF {
		return Word, nil
	}
	return Word, toolerr.New(toolerr.NumberOOB, "value 0x%X does not fit in a word", n)
}
