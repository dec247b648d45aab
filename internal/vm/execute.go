package vm

import (
	"github.com/simpleasm/simpleasm/internal/instr"
	"github.com/simpleasm/simpleasm/internal/value"
)

// execute performs the move described by ins against the register file and
// memory map. Every pointer-valued operand was already validated as word
// width by the instr package's constructors, so it can be read as a raw
// 16-bit address here without a further check.
func (vm *VM) execute(ins instr.Instr) error {
	switch v := ins.(type) {
	case instr.Nop:
		return nil

	case instr.MovI2R:
		vm.Regs.Write(v.Dst, v.Src.Value)
		return nil

	case instr.MovI2RP:
		addr := uint16(vm.Regs.Read(v.Dst))
		return vm.writeSized(addr, v.Src.Width, v.Src.Value)

	case instr.MovI2IP:
		addr := uint16(v.Dst.Value)
		return vm.writeSized(addr, v.Src.Width, v.Src.Value)

	case instr.MovIP2R:
		addr := uint16(v.Src.Value)
		val, err := vm.readSized(addr, v.Dst.Width)
		if err != nil {
			return err
		}
		vm.Regs.Write(v.Dst, val)
		return nil

	case instr.MovIP2RP:
		b, err := vm.Mem.ReadByte(uint16(v.Src.Value))
		if err != nil {
			return err
		}
		return vm.Mem.WriteByte(uint16(vm.Regs.Read(v.Dst)), b)

	case instr.MovIP2IP:
		b, err := vm.Mem.ReadByte(uint16(v.Src.Value))
		if err != nil {
			return err
		}
		return vm.Mem.WriteByte(uint16(v.Dst.Value), b)

	case instr.MovR2R:
		vm.Regs.Write(v.Dst, vm.Regs.Read(v.Src))
		return nil

	case instr.MovR2RP:
		addr := uint16(vm.Regs.Read(v.Dst))
		return vm.writeSized(addr, v.Src.Width, vm.Regs.Read(v.Src))

	case instr.MovR2IP:
		addr := uint16(v.Dst.Value)
		return vm.writeSized(addr, v.Src.Width, vm.Regs.Read(v.Src))

	case instr.MovRP2R:
		addr := uint16(vm.Regs.Read(v.Src))
		val, err := vm.readSized(addr, v.Dst.Width)
		if err != nil {
			return err
		}
		vm.Regs.Write(v.Dst, val)
		return nil

	case instr.MovRP2RP:
		b, err := vm.Mem.ReadByte(uint16(vm.Regs.Read(v.Src)))
		if err != nil {
			return err
		}
		return vm.Mem.WriteByte(uint16(vm.Regs.Read(v.Dst)), b)

	case instr.MovRP2IP:
		b, err := vm.Mem.ReadByte(uint16(vm.Regs.Read(v.Src)))
		if err != nil {
			return err
		}
		return vm.Mem.WriteByte(uint16(v.Dst.Value), b)

	default:
		return nil
	}
}

func (vm *VM) readSized(addr uint16, w value.Width) (uint64, error) {
	if w == value.Byte {
		b, err := vm.Mem.ReadByte(addr)
		return uint64(b), err
	}
	word, err := vm.Mem.ReadWord(addr)
	return uint64(word), err
}

func (vm *VM) writeSized(addr uint16, w value.Width, val uint64) error {
	if w == value.Byte {
		return vm.Mem.WriteByte(addr, byte(val))
	}
	return vm.Mem.WriteWord(addr, uint16(val))
}
