package lexer

import (
	"fmt"
	"strconv"

	"github.com/simpleasm/simpleasm/internal/diag"
	"github.com/simpleasm/simpleasm/internal/toolerr"
	"github.com/simpleasm/simpleasm/internal/value"
)

type lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte

	line   int
	column int
}

func newLexer(input string) *lexer {
	l := &lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

// skipComment consumes a "//" line comment or a "/* ... */" block comment,
// assuming l.ch == '/' and the comment marker has already been confirmed by
// the caller via peekChar. Returns EOL if a block comment is never closed.
func (l *lexer) skipComment() error {
	if l.peekChar() == '/' {
		for l.ch != '\n' && l.ch != 0 {
			l.readChar()
		}
		return nil
	}
	// Block comment: "/*".
	l.readChar() // '/'
	l.readChar() // '*'
	for {
		if l.ch == 0 {
			return toolerr.At(toolerr.EOL, l.line, l.column, "unterminated block comment")
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return nil
		}
		l.readChar()
	}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

func (l *lexer) readIdent() string {
	start := l.position
	for isIdentChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isBaseDigit(ch byte, base int) bool {
	switch base {
	case 2:
		return ch == '0' || ch == '1'
	case 8:
		return ch >= '0' && ch <= '7'
	case 16:
		return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
	default:
		return isDigit(ch)
	}
}

// readNumber consumes a numeric literal — decimal, 0x, 0o, 0b, with an
// optional leading '-' already confirmed by the caller to be followed by a
// digit — and returns the bit pattern to embed in the Number token.
// Negative literals are narrowed to the smallest immediate width that fits
// their magnitude right here in the lexer; positive literals
// pass their raw value through and are width-fitted later during lowering.
func (l *lexer) readNumber(line, column int) (Token, error) {
	negative := false
	if l.ch == '-' {
		negative = true
		l.readChar()
	}

	base := 10
	digitsStart := l.position
	if l.ch == '0' {
		switch l.peekChar() {
		case 'x', 'X':
			base = 16
			l.readChar()
			l.readChar()
			digitsStart = l.position
		case 'o', 'O':
			base = 8
			l.readChar()
			l.readChar()
			digitsStart = l.position
		case 'b', 'B':
			base = 2
			l.readChar()
			l.readChar()
			digitsStart = l.position
		}
	}
	for isBaseDigit(l.ch, base) {
		l.readChar()
	}
	digits := l.input[digitsStart:l.position]
	if digits == "" {
		return Token{}, toolerr.At(toolerr.EOL, line, column, "numeric literal has no digits")
	}

	magnitude, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return Token{}, toolerr.At(toolerr.NumberOOB, line, column, "numeric literal %q does not fit a 64-bit magnitude", digits)
	}

	if !negative {
		return Token{Type: TokenNumber, Number: magnitude, Line: line, Column: column}, nil
	}

	// No overflow check: a magnitude wider than 16 bits is narrowed to a
	// word and silently loses its high bits.
	width, err := value.SmallestFitting(magnitude)
	if err != nil {
		width = value.Word
	}
	narrowed := value.NarrowSigned(-int64(magnitude), width)
	return Token{Type: TokenNumber, Number: narrowed, Line: line, Column: column}, nil
}

func closerFor(open byte) (byte, Delim) {
	switch open {
	case '(':
		return ')', Paren
	case '[':
		return ']', Brack
	case '{':
		return '}', Brace
	default:
		return 0, 0
	}
}

// Lex tokenizes a complete source buffer into a flat token stream, with
// bracketed runs nested as Group tokens.
func Lex(input string) ([]Token, error) {
	l := newLexer(input)
	tokens, err := l.lexUntil(0, false)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// LexWithDiag runs Lex, additionally recording a trace entry with the
// resulting token count (or an error entry on failure) into ctx. ctx may be
// nil, in which case this behaves exactly like Lex.
func LexWithDiag(input string, ctx *diag.Context) ([]Token, error) {
	ctx.SetPhase("lex")
	tokens, err := Lex(input)
	if err != nil {
		line, column := toolerr.Position(err)
		ctx.Error(diag.Loc(line, column), err.Error())
		return nil, err
	}
	ctx.Trace(diag.Loc(1, 0), fmt.Sprintf("lexed %d tokens", len(tokens)))
	return tokens, nil
}

// lexUntil reads tokens until EOF (hasCloser == false) or until it consumes
// the matching closer byte (hasCloser == true), at which point the closer
// itself is consumed and excluded from the returned tokens.
func (l *lexer) lexUntil(closer byte, hasCloser bool) ([]Token, error) {
	var tokens []Token

	for {
		l.skipWhitespace()

		if l.ch == 0 {
			if hasCloser {
				return nil, toolerr.At(toolerr.EOL, l.line, l.column, "unclosed group, expected %q", closer)
			}
			return tokens, nil
		}

		if hasCloser && l.ch == closer {
			l.readChar()
			return tokens, nil
		}

		line, column := l.line, l.column

		switch {
		case l.ch == '/' && (l.peekChar() == '/' || l.peekChar() == '*'):
			if err := l.skipComment(); err != nil {
				return nil, err
			}

		case l.ch == '(' || l.ch == '[' || l.ch == '{':
			open := l.ch
			closeByte, delim := closerFor(open)
			l.readChar()
			inner, err := l.lexUntil(closeByte, true)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Type: TokenGroup, Delim: delim, Inner: inner, Line: line, Column: column})

		case isLetter(l.ch):
			ident := l.readIdent()
			tokens = append(tokens, Token{Type: TokenIdent, Literal: ident, Line: line, Column: column})

		case isDigit(l.ch) || (l.ch == '-' && isDigit(l.peekChar())):
			tok, err := l.readNumber(line, column)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		default:
			ch := l.ch
			l.readChar()
			tokens = append(tokens, Token{Type: TokenPunct, Literal: string(ch), Line: line, Column: column})
		}
	}
}
