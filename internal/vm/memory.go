package vm

import "github.com/simpleasm/simpleasm/internal/toolerr"

// Region boundaries of the 16-bit address space.
const (
	romEnd     = 0x6000 // [0x0000, 0x6000): ROM
	displayEnd = 0x7800 // [0x6000, 0x7800): reserved display, unimplemented
	ioEnd      = 0x8000 // [0x7800, 0x8000): reserved I/O, unimplemented
	// [0x8000, 0xFFFF]: RAM, sized to the configured capacity.
)

// MemoryMap overlays ROM, reserved display, reserved I/O, and RAM over a
// single 16-bit address space.
type MemoryMap struct {
	rom []byte
	ram []byte
}

// NewMemoryMap builds a memory map with rom loaded at offset zero and ram
// sized to ramSize bytes, zeroed on boot.
func NewMemoryMap(rom []byte, ramSize int) *MemoryMap {
	return &MemoryMap{rom: rom, ram: make([]byte, ramSize)}
}

func unimplemented(addr uint16) error {
	return toolerr.New(toolerr.Misc, "unimplemented: address 0x%04X falls in a reserved display/I/O region", addr)
}

// ReadByte reads a single byte, honoring each region's semantics: ROM and
// RAM read as zero past their backing store, display/I/O is a hard error.
func (m *MemoryMap) ReadByte(addr uint16) (byte, error) {
	switch {
	case addr < romEnd:
		if int(addr) < len(m.rom) {
			return m.rom[addr], nil
		}
		return 0, nil
	case addr < ioEnd:
		return 0, unimplemented(addr)
	default:
		idx := int(addr) - ioEnd
		if idx < len(m.ram) {
			return m.ram[idx], nil
		}
		return 0, nil
	}
}

// WriteByte writes a single byte. ROM and RAM are bounded best-effort —
// writes past the backing store are silently dropped (this is a documented
// preserved quirk); display/I/O is a hard error.
func (m *MemoryMap) WriteByte(addr uint16, b byte) error {
	switch {
	case addr < romEnd:
		if int(addr) < len(m.rom) {
			m.rom[addr] = b
		}
		return nil
	case addr < ioEnd:
		return unimplemented(addr)
	default:
		idx := int(addr) - ioEnd
		if idx < len(m.ram) {
			m.ram[idx] = b
		}
		return nil
	}
}

// ReadWord reads two little-endian bytes starting at addr, wrapping the
// address in the 16-bit space.
func (m *MemoryMap) ReadWord(addr uint16) (uint16, error) {
	lo, err := m.ReadByte(addr)
	if err != nil {
		return 0, err
	}
	hi, err := m.ReadByte(addr + 1)
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

// WriteWord writes v as two little-endian bytes starting at addr, wrapping
// the address in the 16-bit space.
func (m *MemoryMap) WriteWord(addr uint16, v uint16) error {
	if err := m.WriteByte(addr, byte(v)); err != nil {
		return err
	}
	return m.WriteByte(addr+1, byte(v>>8))
}

// Fetch reads up to 6 bytes starting at addr, the widest span any
// instruction's wire encoding occupies. Each byte
// goes through ReadByte, so a reserved-region byte anywhere in the span
// fails the fetch.
func (m *MemoryMap) Fetch(addr uint16) ([]byte, error) {
	buf := make([]byte, 6)
	for i := range buf {
		b, err := m.ReadByte(addr + uint16(i))
		if err != nil {
			return nil, err
		}
		buf[i] = b
	}
	return buf, nil
}
