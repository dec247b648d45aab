package vm

import (
	"testing"

	"github.com/simpleasm/simpleasm/internal/assembler"
	"github.com/simpleasm/simpleasm/internal/toolerr"
	"github.com/simpleasm/simpleasm/internal/value"
)

func assembleOrFatal(t *testing.T, src string) []byte {
	t.Helper()
	rom, err := assembler.Assemble(src)
	if err != nil {
		t.Fatalf("Assemble(%q): %v", src, err)
	}
	return rom
}

// TestStep_Scenario4 checks that running "mov 0x600D, r0"
// for one step leaves r0 = 0x600D and RIP at the instruction's length, 4.
func TestStep_Scenario4(t *testing.T) {
	rom := assembleOrFatal(t, "mov 0x600D, r0")
	m := New(rom, 0x8000)

	if err := m.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}

	r0 := value.NewRegister(0, value.Word)
	if got := m.Regs.Read(r0); got != 0x600D {
		t.Errorf("r0 = 0x%X, want 0x600D", got)
	}
	if got := m.RIP(); got != 4 {
		t.Errorf("RIP = 0x%X, want 0x04", got)
	}
}

// TestStep_Scenario5 checks that four moves establish two
// address registers, then write a byte through the first and a word
// through the second as pointers.
func TestStep_Scenario5(t *testing.T) {
	rom := assembleOrFatal(t, "mov 0x8000, r0\nmov 0x8002, r1\nmov 0x60, [r0]\nmov 0x600D, [r1]")
	m := New(rom, 0x8000)

	if err := m.Run(4); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := map[uint16]byte{0x8000: 0x60, 0x8001: 0x00, 0x8002: 0x0D, 0x8003: 0x60}
	for addr, wantByte := range want {
		got, err := m.Mem.ReadByte(addr)
		if err != nil {
			t.Fatalf("ReadByte(0x%X): %v", addr, err)
		}
		if got != wantByte {
			t.Errorf("RAM[0x%X] = 0x%02X, want 0x%02X", addr, got, wantByte)
		}
	}

	r0 := value.NewRegister(0, value.Word)
	r1 := value.NewRegister(1, value.Word)
	if got := m.Regs.Read(r0); got != 0x8000 {
		t.Errorf("r0 = 0x%X, want 0x8000", got)
	}
	if got := m.Regs.Read(r1); got != 0x8002 {
		t.Errorf("r1 = 0x%X, want 0x8002", got)
	}
}

// TestStep_Scenario6 checks that reading a word through a
// literal RAM address already populated ahead of time.
func TestStep_Scenario6(t *testing.T) {
	rom := assembleOrFatal(t, "mov [0xF337], r0")
	m := New(rom, 0x8000)

	if err := m.Mem.WriteByte(0xF337, 0x0D); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	if err := m.Mem.WriteByte(0xF338, 0x60); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}

	if err := m.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}

	r0 := value.NewRegister(0, value.Word)
	if got := m.Regs.Read(r0); got != 0x600D {
		t.Errorf("r0 = 0x%X, want 0x600D", got)
	}
}

func TestRegisterFile_ByteWritePreservesUpperByte(t *testing.T) {
	var f RegisterFile
	word := value.NewRegister(3, value.Word)
	byteView := value.NewRegister(3, value.Byte)

	f.Write(word, 0xBEEF)
	f.Write(byteView, 0x11)

	if got := f.Read(word); got != 0xBE11 {
		t.Errorf("after byte write, word view = 0x%X, want 0xBE11", got)
	}
	if got := f.Read(byteView); got != 0x11 {
		t.Errorf("byte view = 0x%X, want 0x11", got)
	}

	f.Write(word, 0xCAFE)
	if got := f.Read(word); got != 0xCAFE {
		t.Errorf("word write did not overwrite whole cell: got 0x%X, want 0xCAFE", got)
	}
}

func TestMemoryMap_DisplayAndIORegionsAreUnimplemented(t *testing.T) {
	m := NewMemoryMap(nil, 0x100)

	if _, err := m.ReadByte(0x6000); !toolerr.Is(err, toolerr.Misc) {
		t.Errorf("display read: got %v, want a Misc error", err)
	}
	if err := m.WriteByte(0x7800, 0xFF); !toolerr.Is(err, toolerr.Misc) {
		t.Errorf("I/O write: got %v, want a Misc error", err)
	}
}

func TestMemoryMap_ROMWritesAreBoundedBestEffort(t *testing.T) {
	rom := make([]byte, 4)
	m := NewMemoryMap(rom, 0x10)

	if err := m.WriteByte(2, 0xAB); err != nil {
		t.Fatalf("in-bounds ROM write: %v", err)
	}
	if err := m.WriteByte(0x5FFF, 0xCD); err != nil {
		t.Fatalf("out-of-bounds ROM write should be silently dropped, not error: %v", err)
	}
	got, err := m.ReadByte(2)
	if err != nil || got != 0xAB {
		t.Errorf("ReadByte(2) = (0x%X, %v), want (0xAB, nil)", got, err)
	}
}

func TestMemoryMap_RAMReadsZeroBeyondAllocatedSize(t *testing.T) {
	m := NewMemoryMap(nil, 4)
	got, err := m.ReadByte(0x8010)
	if err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	if got != 0 {
		t.Errorf("got 0x%X, want 0", got)
	}
}

func TestStep_RIPWrapsModulo16Bits(t *testing.T) {
	rom := assembleOrFatal(t, "nop")
	m := New(rom, 0x100)
	m.Regs.Write(ripRegister, 0xFFFF)

	if err := m.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := m.RIP(); got != 1 {
		t.Errorf("RIP = 0x%X, want 0x01 (wrapped)", got)
	}
}
