package vm

import (
	"github.com/simpleasm/simpleasm/internal/instr"
	"github.com/simpleasm/simpleasm/internal/value"
)

var ripRegister = value.NewRegister(value.RIP, value.Word)

// VM is a complete SimpleASM machine: a register file and the memory map
// it fetches instructions from and moves data through.
type VM struct {
	Regs RegisterFile
	Mem  *MemoryMap
}

// New boots a VM with rom loaded at address zero, ramSize bytes of zeroed
// RAM, and RIP at zero.
func New(rom []byte, ramSize int) *VM {
	return &VM{Mem: NewMemoryMap(rom, ramSize)}
}

// RIP returns the current instruction pointer.
func (vm *VM) RIP() uint16 {
	return uint16(vm.Regs.Read(ripRegister))
}

// Step performs one fetch/decode/execute cycle: fetch up to 6 bytes at
// RIP, decode one instruction, advance RIP by its encoded length modulo
// 2^16, then dispatch the move it describes.
func (vm *VM) Step() error {
	rip := vm.RIP()

	raw, err := vm.Mem.Fetch(rip)
	if err != nil {
		return err
	}

	ins, err := instr.Decode(raw)
	if err != nil {
		return err
	}

	vm.Regs.Write(ripRegister, uint64(rip+uint16(instr.Length(ins))))

	return vm.execute(ins)
}

// Run executes up to steps fetch/decode/execute cycles, stopping at the
// first error.
func (vm *VM) Run(steps int) error {
	for i := 0; i < steps; i++ {
		if err := vm.Step(); err != nil {
			return err
		}
	}
	return nil
}
