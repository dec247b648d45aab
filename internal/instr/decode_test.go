package instr

import (
	"testing"

	"github.com/simpleasm/simpleasm/internal/toolerr"
)

func TestDecode_ErrorTaxonomy(t *testing.T) {
	t.Run("empty input is NoOpcode", func(t *testing.T) {
		_, err := Decode(nil)
		if !toolerr.Is(err, toolerr.NoOpcode) {
			t.Fatalf("got %v, want NoOpcode", err)
		}
	})

	t.Run("missing register byte is NoRegs", func(t *testing.T) {
		_, err := Decode([]byte{OpMovI2R_W})
		if !toolerr.Is(err, toolerr.NoRegs) {
			t.Fatalf("got %v, want NoRegs", err)
		}
	})

	t.Run("truncated immediate is NoValue", func(t *testing.T) {
		_, err := Decode([]byte{OpMovI2R_W, 0x00, 0x0D})
		if !toolerr.Is(err, toolerr.NoValue) {
			t.Fatalf("got %v, want NoValue", err)
		}
	})

	t.Run("unassigned opcode is NoSuchOpcode", func(t *testing.T) {
		_, err := Decode([]byte{0xFF, 0x00})
		if !toolerr.Is(err, toolerr.NoSuchOpcode) {
			t.Fatalf("got %v, want NoSuchOpcode", err)
		}
	})

	t.Run("Nop needs its filler byte", func(t *testing.T) {
		_, err := Decode([]byte{OpNop})
		if !toolerr.Is(err, toolerr.NoRegs) {
			t.Fatalf("got %v, want NoRegs", err)
		}
	})

	t.Run("trailing bytes are ignored", func(t *testing.T) {
		i, err := Decode([]byte{OpNop, 0x00, 0xAA, 0xBB, 0xCC})
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if i != (Nop{}) {
			t.Fatalf("got %#v, want Nop{}", i)
		}
	})
}

// TestDecode_RejectsReconstructedInvalidOperands exercises the path where
// bytes decode cleanly but the register selector they name is special and
// thus forced to word width, conflicting with a byte-width opcode variant.
func TestDecode_RejectsReconstructedInvalidOperands(t *testing.T) {
	// Selector 0xE is RIP, a special register that NewRegister forces to
	// Word width regardless of the width the opcode asked for.
	data := []byte{OpMovI2R_B, 0xE0, 0x01, 0x00}
	_, err := Decode(data)
	if !toolerr.Is(err, toolerr.InvalidOperands) {
		t.Fatalf("got %v, want InvalidOperands", err)
	}
}
