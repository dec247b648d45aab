package parser

import (
	"fmt"

	"github.com/simpleasm/simpleasm/internal/diag"
	"github.com/simpleasm/simpleasm/internal/lexer"
	"github.com/simpleasm/simpleasm/internal/toolerr"
)

type Parser struct {
	tokens []lexer.Token
	pos    int
}

func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) current() (lexer.Token, bool) {
	if p.atEnd() {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) advance() (lexer.Token, bool) {
	tok, ok := p.current()
	if ok {
		p.pos++
	}
	return tok, ok
}

func isPunct(tok lexer.Token, ch byte) bool {
	return tok.Type == lexer.TokenPunct && tok.Literal == string(ch)
}

// Parse consumes the entire token stream and returns every statement in
// source order.
func Parse(tokens []lexer.Token) ([]Expr, error) {
	p := New(tokens)
	var exprs []Expr
	for !p.atEnd() {
		expr, err := p.parseOne()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ParseWithDiag runs Parse, additionally recording a trace entry with the
// resulting statement count (or an error entry on failure) into ctx. ctx may
// be nil, in which case this behaves exactly like Parse.
func ParseWithDiag(tokens []lexer.Token, ctx *diag.Context) ([]Expr, error) {
	ctx.SetPhase("parse")
	exprs, err := Parse(tokens)
	if err != nil {
		line, column := toolerr.Position(err)
		ctx.Error(diag.Loc(line, column), err.Error())
		return nil, err
	}
	ctx.Trace(diag.Loc(1, 0), fmt.Sprintf("parsed %d statements", len(exprs)))
	return exprs, nil
}

func (p *Parser) parseOne() (Expr, error) {
	tok, _ := p.advance()

	if tok.Type != lexer.TokenIdent {
		return nil, toolerr.At(toolerr.UnexpectedToken, tok.Line, tok.Column, "expected a label, mnemonic, or identifier, found %v", tok)
	}

	if next, ok := p.current(); ok && isPunct(next, ':') {
		p.advance()
		return Label{Name: tok.Literal, Line: tok.Line, Column: tok.Column}, nil
	}

	switch tok.Literal {
	case "nop":
		return Nop{Line: tok.Line, Column: tok.Column}, nil
	case "mov":
		return p.parseMov(tok)
	default:
		return nil, toolerr.At(toolerr.UnknownInstruction, tok.Line, tok.Column, "unknown instruction %q", tok.Literal)
	}
}

func (p *Parser) parseMov(mnemonic lexer.Token) (Expr, error) {
	src, ok := p.advance()
	if !ok {
		return nil, toolerr.At(toolerr.MissingToken, mnemonic.Line, mnemonic.Column, "mov requires a source operand")
	}

	comma, ok := p.advance()
	if !ok || !isPunct(comma, ',') {
		line, col := mnemonic.Line, mnemonic.Column
		if ok {
			line, col = comma.Line, comma.Column
		}
		return nil, toolerr.At(toolerr.MissingToken, line, col, "mov requires a comma between its operands")
	}

	dst, ok := p.advance()
	if !ok {
		return nil, toolerr.At(toolerr.MissingToken, comma.Line, comma.Column, "mov requires a destination operand")
	}

	return Mov{Src: src, Dst: dst, Line: mnemonic.Line, Column: mnemonic.Column}, nil
}
