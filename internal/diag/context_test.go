package diag

import "testing"

func TestNewContext(t *testing.T) {
	t.Run("starts empty with no phase", func(t *testing.T) {
		ctx := NewContext()
		if ctx.Phase() != "" {
			t.Errorf("expected empty phase, got %q", ctx.Phase())
		}
		if ctx.Count() != 0 {
			t.Errorf("expected 0 entries, got %d", ctx.Count())
		}
		if ctx.HasErrors() {
			t.Error("expected HasErrors to be false on an empty context")
		}
	})
}

func TestContext_Phases(t *testing.T) {
	t.Run("SetPhase changes Phase", func(t *testing.T) {
		ctx := NewContext()
		ctx.SetPhase("lex")
		if ctx.Phase() != "lex" {
			t.Errorf("expected phase %q, got %q", "lex", ctx.Phase())
		}
		ctx.SetPhase("parse")
		if ctx.Phase() != "parse" {
			t.Errorf("expected phase %q, got %q", "parse", ctx.Phase())
		}
	})

	t.Run("entries inherit the phase active when recorded", func(t *testing.T) {
		ctx := NewContext()
		ctx.SetPhase("emit")
		ctx.Error(Loc(1, 0), "duplicate label")
		ctx.SetPhase("resolve")
		ctx.Error(Loc(3, 0), "label never defined")

		entries := ctx.Entries()
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if entries[0].Phase() != "emit" {
			t.Errorf("expected first entry phase %q, got %q", "emit", entries[0].Phase())
		}
		if entries[1].Phase() != "resolve" {
			t.Errorf("expected second entry phase %q, got %q", "resolve", entries[1].Phase())
		}
	})
}

func TestContext_Errors(t *testing.T) {
	ctx := NewContext()
	ctx.Trace(Loc(0, 0), "lexed 12 tokens")
	ctx.Error(Loc(2, 5), "unresolved label 'loop'")

	if ctx.Count() != 2 {
		t.Fatalf("expected 2 entries, got %d", ctx.Count())
	}
	if !ctx.HasErrors() {
		t.Fatal("expected HasErrors to be true")
	}
	errs := ctx.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 error entry, got %d", len(errs))
	}
	if errs[0].Message() != "unresolved label 'loop'" {
		t.Errorf("unexpected message: %q", errs[0].Message())
	}
}

func TestLocation_String(t *testing.T) {
	t.Run("with column", func(t *testing.T) {
		if got := Loc(12, 5).String(); got != "12:5" {
			t.Errorf("expected %q, got %q", "12:5", got)
		}
	})

	t.Run("without column", func(t *testing.T) {
		if got := Loc(12, 0).String(); got != "12" {
			t.Errorf("expected %q, got %q", "12", got)
		}
	})
}
