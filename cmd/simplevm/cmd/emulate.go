package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simpleasm/simpleasm/internal/value"
	"github.com/simpleasm/simpleasm/internal/vm"
	"github.com/simpleasm/simpleasm/internal/vmconfig"
)

// runEmulate loads the ROM at args[0], resolves the effective settings —
// flags over config file over defaults — and runs the machine.
func runEmulate(cmd *cobra.Command, args []string) error {
	romPath := args[0]
	rom, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("failed to read ROM file %q: %w", romPath, err)
	}

	cfg := vmconfig.DefaultConfig()
	if flagConfig != "" {
		cfg, err = vmconfig.LoadFrom(flagConfig)
		if err != nil {
			return err
		}
	}

	if cmd.Flags().Changed("ram-size") {
		cfg.VM.RAMSize = flagRAMSize
	}
	if cmd.Flags().Changed("steps") {
		cfg.VM.Steps = flagSteps
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug.PauseEachStep = flagDebug
	}

	if cfg.VM.Steps == 0 {
		return fmt.Errorf("a step count is required: pass --steps or set vm.steps in --config")
	}

	machine := vm.New(rom, int(cfg.VM.RAMSize))

	for i := uint64(0); i < cfg.VM.Steps; i++ {
		if cfg.Debug.PauseEachStep {
			printRegisters(cmd, machine)
			if err := waitForKeystroke(); err != nil {
				return err
			}
		}
		if err := machine.Step(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}

	printRegisters(cmd, machine)
	return nil
}

// printRegisters prints every general register plus the special registers,
// matching the emulator CLI's "prints registers" contract.
func printRegisters(cmd *cobra.Command, machine *vm.VM) {
	for i := 0; i <= value.MaxGeneralSelector; i++ {
		r := value.NewRegister(value.Selector(uint8(i)), value.Word)
		cmd.Printf("r%d = 0x%04X\n", i, machine.Regs.Read(r))
	}
	cmd.Printf("rsb   = 0x%04X\n", machine.Regs.Read(value.NewRegister(value.RSB, value.Word)))
	cmd.Printf("rsh   = 0x%04X\n", machine.Regs.Read(value.NewRegister(value.RSH, value.Word)))
	cmd.Printf("flags = 0x%04X\n", machine.Regs.Read(value.NewRegister(value.Flags, value.Word)))
	cmd.Printf("rip   = 0x%04X\n", machine.RIP())
	cmd.Printf("rinfo = 0x%04X\n", machine.Regs.Read(value.NewRegister(value.RINFO, value.Word)))
}
