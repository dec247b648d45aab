package diag

import "fmt"

// Location identifies a position in the assembled source file. It is a value
// type — safe to copy and compare.
type Location struct {
	line   int // 1-based line number.
	column int // 1-based column number, or 0 for "entire line".
}

// Loc creates a Location from a 1-based line and column.
func Loc(line, column int) Location {
	return Location{line: line, column: column}
}

// Line returns the 1-based line number.
func (l Location) Line() int { return l.line }

// Column returns the 1-based column number, or 0 for "entire line".
func (l Location) Column() int { return l.column }

// String returns "line:column", or just "line" if column is 0.
func (l Location) String() string {
	if l.column == 0 {
		return fmt.Sprintf("%d", l.line)
	}
	return fmt.Sprintf("%d:%d", l.line, l.column)
}
