package assembler

import (
	"fmt"

	"github.com/simpleasm/simpleasm/internal/diag"
	"github.com/simpleasm/simpleasm/internal/lexer"
	"github.com/simpleasm/simpleasm/internal/parser"
	"github.com/simpleasm/simpleasm/internal/toolerr"
)

// Assemble runs the complete toolchain over source text: lex, parse, emit,
// resolve, and encode. The first error at any stage aborts the whole
// assembly — no error is recovered locally.
func Assemble(source string) ([]byte, error) {
	return AssembleWithDiag(source, nil)
}

// AssembleWithDiag runs the same pipeline as Assemble, additionally
// recording trace entries into dctx (one from lexing, one from parsing, and
// one byte-count summary under the "resolve" phase once resolution succeeds;
// the emit phase records no trace of its own) and an error entry on
// whichever stage fails. dctx may be nil, in which case this behaves exactly
// like Assemble.
func AssembleWithDiag(source string, dctx *diag.Context) ([]byte, error) {
	tokens, err := lexer.LexWithDiag(source, dctx)
	if err != nil {
		return nil, err
	}
	exprs, err := parser.ParseWithDiag(tokens, dctx)
	if err != nil {
		return nil, err
	}

	dctx.SetPhase("emit")
	ctx := NewContext()
	if err := ctx.emit(exprs); err != nil {
		line, column := toolerr.Position(err)
		dctx.Error(diag.Loc(line, column), err.Error())
		return nil, err
	}

	dctx.SetPhase("resolve")
	if err := ctx.resolve(); err != nil {
		line, column := toolerr.Position(err)
		dctx.Error(diag.Loc(line, column), err.Error())
		return nil, err
	}

	rom := ctx.Bytes()
	dctx.Trace(diag.Loc(0, 0), fmt.Sprintf("emitted %d bytes from %d instructions", len(rom), len(ctx.Instrs)))
	return rom, nil
}
