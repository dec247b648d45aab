package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	flagSteps   uint64
	flagRAMSize uint32
	flagDebug   bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "simplevm <rom>",
	Short: "SimpleASM emulator",
	Long:  `simplevm loads a ROM image and runs it against the register-machine interpreter.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEmulate,
}

// Execute runs the root command, exiting nonzero on any toolchain error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Uint64Var(&flagSteps, "steps", 0, "number of fetch/decode/execute cycles to run (required unless set in --config)")
	rootCmd.Flags().Uint32Var(&flagRAMSize, "ram-size", 0, "RAM size in bytes (default 0x8000, overridable via --config)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "pause for a keystroke and print registers between steps")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "optional TOML config file overriding RAM size, step count, and debug pausing")
}
