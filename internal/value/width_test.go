package value

import (
	"testing"

	"github.com/simpleasm/simpleasm/internal/toolerr"
)

func TestFits(t *testing.T) {
	cases := []struct {
		w    Width
		n    uint64
		want bool
	}{
		{Byte, 0, true},
		{Byte, 0xFF, true},
		{Byte, 0x100, false},
		{Word, 0xFFFF, true},
		{Word, 0x10000, false},
	}
	for _, c := range cases {
		if got := Fits(c.w, c.n); got != c.want {
			t.Errorf("Fits(%s, 0x%X) = %v, want %v", c.w, c.n, got, c.want)
		}
	}
}

func TestSmallestFitting(t *testing.T) {
	t.Run("byte fits", func(t *testing.T) {
		w, err := SmallestFitting(0x10)
		if err != nil || w != Byte {
			t.Fatalf("got (%v, %v), want (Byte, nil)", w, err)
		}
	})

	t.Run("word fits", func(t *testing.T) {
		w, err := SmallestFitting(0x600D)
		if err != nil || w != Word {
			t.Fatalf("got (%v, %v), want (Word, nil)", w, err)
		}
	})

	t.Run("overflow is tightened into an error", func(t *testing.T) {
		_, err := SmallestFitting(0x10000)
		if !toolerr.Is(err, toolerr.NumberOOB) {
			t.Fatalf("expected NumberOOB, got %v", err)
		}
	})
}
