package value

import (
	"testing"

	"github.com/simpleasm/simpleasm/internal/toolerr"
)

func TestNewImmediate(t *testing.T) {
	t.Run("accepts values within width", func(t *testing.T) {
		imm, err := NewImmediate(Byte, 0xFF)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if imm.Value != 0xFF || imm.Width != Byte {
			t.Fatalf("got %+v", imm)
		}
	})

	t.Run("rejects byte overflow with NumberOOB", func(t *testing.T) {
		_, err := NewImmediate(Byte, 0x100)
		if !toolerr.Is(err, toolerr.NumberOOB) {
			t.Fatalf("expected NumberOOB, got %v", err)
		}
	})

	t.Run("rejects word overflow with NumberOOB", func(t *testing.T) {
		_, err := NewImmediate(Word, 0x10000)
		if !toolerr.Is(err, toolerr.NumberOOB) {
			t.Fatalf("expected NumberOOB, got %v", err)
		}
	})
}

func TestNewImmediateUnchecked(t *testing.T) {
	imm := NewImmediateUnchecked(Word, 0x10000)
	if imm.Value != 0x10000 {
		t.Fatalf("unchecked constructor must not clamp: got %v", imm.Value)
	}
}

func TestNarrowSigned(t *testing.T) {
	cases := []struct {
		name    string
		literal int64
		w       Width
		want    uint64
	}{
		{"byte -1", -1, Byte, 0xFF},
		{"word -1", -1, Word, 0xFFFF},
		{"word -2", -2, Word, 0xFFFE},
		{"positive passthrough", 5, Byte, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NarrowSigned(c.literal, c.w); got != c.want {
				t.Errorf("NarrowSigned(%d, %s) = 0x%X, want 0x%X", c.literal, c.w, got, c.want)
			}
		})
	}
}
