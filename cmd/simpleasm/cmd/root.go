package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "simpleasm <input> [output]",
	Short: "SimpleASM assembler",
	Long:  `simpleasm assembles a SimpleASM source file into a raw binary ROM image.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runAssemble,
}

// Execute runs the root command, exiting nonzero on any toolchain error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
