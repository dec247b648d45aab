package instr

import (
	"bytes"
	"testing"

	"github.com/simpleasm/simpleasm/internal/value"
)

func mustReg(t *testing.T, sel value.Selector, w value.Width) value.Register {
	t.Helper()
	return value.NewRegister(sel, w)
}

func mustImm(t *testing.T, w value.Width, n uint64) value.Immediate {
	t.Helper()
	imm, err := value.NewImmediate(w, n)
	if err != nil {
		t.Fatalf("NewImmediate(%s, 0x%X): %v", w, n, err)
	}
	return imm
}

// TestRoundTrip exercises decompile(compile(i)) == i across one instance of
// every instruction variant (the round-trip law).
func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		i    Instr
	}{
		{"Nop", Nop{}},
		{"MovI2R byte", mov(t, func() (Instr, error) {
			return NewMovI2R(mustImm(t, value.Byte, 0x12), mustReg(t, 0, value.Byte))
		})},
		{"MovI2R word", mov(t, func() (Instr, error) {
			return NewMovI2R(mustImm(t, value.Word, 0x600D), mustReg(t, 3, value.Word))
		})},
		{"MovI2RP byte", mov(t, func() (Instr, error) {
			return NewMovI2RP(mustImm(t, value.Byte, 0x7F), mustReg(t, 1, value.Word))
		})},
		{"MovI2RP word", mov(t, func() (Instr, error) {
			return NewMovI2RP(mustImm(t, value.Word, 0xBEEF), mustReg(t, 2, value.Word))
		})},
		{"MovI2IP byte", mov(t, func() (Instr, error) {
			return NewMovI2IP(mustImm(t, value.Byte, 0x01), mustImm(t, value.Word, 0x8000))
		})},
		{"MovI2IP word", mov(t, func() (Instr, error) {
			return NewMovI2IP(mustImm(t, value.Word, 0xCAFE), mustImm(t, value.Word, 0x9000))
		})},
		{"MovIP2R byte", mov(t, func() (Instr, error) {
			return NewMovIP2R(mustImm(t, value.Word, 0x8000), mustReg(t, 4, value.Byte))
		})},
		{"MovIP2R word", mov(t, func() (Instr, error) {
			return NewMovIP2R(mustImm(t, value.Word, 0x8000), mustReg(t, 4, value.Word))
		})},
		{"MovIP2RP", mov(t, func() (Instr, error) {
			return NewMovIP2RP(mustImm(t, value.Word, 0x8000), mustReg(t, 5, value.Word))
		})},
		{"MovIP2IP", mov(t, func() (Instr, error) {
			return NewMovIP2IP(mustImm(t, value.Word, 0x8000), mustImm(t, value.Word, 0x9000))
		})},
		{"MovR2R byte", mov(t, func() (Instr, error) {
			return NewMovR2R(mustReg(t, 1, value.Byte), mustReg(t, 2, value.Byte))
		})},
		{"MovR2R word", mov(t, func() (Instr, error) {
			return NewMovR2R(mustReg(t, 1, value.Word), mustReg(t, 2, value.Word))
		})},
		{"MovR2RP byte src", mov(t, func() (Instr, error) {
			return NewMovR2RP(mustReg(t, 1, value.Byte), mustReg(t, 2, value.Word))
		})},
		{"MovR2RP word src", mov(t, func() (Instr, error) {
			return NewMovR2RP(mustReg(t, 1, value.Word), mustReg(t, 2, value.Word))
		})},
		{"MovR2IP byte", mov(t, func() (Instr, error) {
			return NewMovR2IP(mustReg(t, 6, value.Byte), mustImm(t, value.Word, 0x8100))
		})},
		{"MovR2IP word", mov(t, func() (Instr, error) {
			return NewMovR2IP(mustReg(t, 6, value.Word), mustImm(t, value.Word, 0x8100))
		})},
		{"MovRP2R byte dst", mov(t, func() (Instr, error) {
			return NewMovRP2R(mustReg(t, 7, value.Word), mustReg(t, 8, value.Byte))
		})},
		{"MovRP2R word dst", mov(t, func() (Instr, error) {
			return NewMovRP2R(mustReg(t, 7, value.Word), mustReg(t, 8, value.Word))
		})},
		{"MovRP2RP", mov(t, func() (Instr, error) {
			return NewMovRP2RP(mustReg(t, 7, value.Word), mustReg(t, 8, value.Word))
		})},
		{"MovRP2IP", mov(t, func() (Instr, error) {
			return NewMovRP2IP(mustReg(t, 9, value.Word), mustImm(t, value.Word, 0x8200))
		})},
		{"Mov uses special register", mov(t, func() (Instr, error) {
			return NewMovR2R(mustReg(t, value.RIP, value.Word), mustReg(t, value.RSB, value.Word))
		})},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			encoded := Encode(c.i)
			if got := Length(c.i); got != len(encoded) {
				t.Errorf("Length() = %d, but Encode() produced %d bytes", got, len(encoded))
			}
			decoded, err := Decode(encoded)
			if err != nil {
				t.Fatalf("Decode(%x): %v", encoded, err)
			}
			if decoded != c.i {
				t.Errorf("round trip mismatch: got %#v, want %#v", decoded, c.i)
			}
			if reencoded := Encode(decoded); !bytes.Equal(reencoded, encoded) {
				t.Errorf("re-encoding decoded value gave %x, want %x", reencoded, encoded)
			}
		})
	}
}

func mov(t *testing.T, build func() (Instr, error)) Instr {
	t.Helper()
	i, err := build()
	if err != nil {
		t.Fatalf("constructor: %v", err)
	}
	return i
}

// TestEncode_Scenario2 pins a worked example:
// "mov 0x600D, r0" assembles to a word-width immediate-to-register move.
func TestEncode_Scenario2(t *testing.T) {
	i, err := NewMovI2R(mustImm(t, value.Word, 0x600D), mustReg(t, 0, value.Word))
	if err != nil {
		t.Fatalf("NewMovI2R: %v", err)
	}
	want := []byte{0x02, 0x00, 0x0D, 0x60}
	if got := Encode(i); !bytes.Equal(got, want) {
		t.Errorf("Encode() = % x, want % x", got, want)
	}
}
