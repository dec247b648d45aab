package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/simpleasm/simpleasm/internal/assembler"
	"github.com/simpleasm/simpleasm/internal/diag"
)

const defaultOutputName = "main.bin"

var flagTrace bool

func init() {
	rootCmd.Flags().BoolVar(&flagTrace, "trace", false, "print a per-stage diagnostic trace to stderr")
}

// runAssemble orchestrates the full assembly pipeline: resolve the input
// and output paths, read the source, assemble it, and write the ROM image.
func runAssemble(cmd *cobra.Command, args []string) error {
	inputPath, err := resolveInputPath(args)
	if err != nil {
		return err
	}

	outputPath := defaultOutputName
	if len(args) > 1 {
		outputPath = args[1]
	}

	source, err := readSourceFile(inputPath)
	if err != nil {
		return err
	}

	var dctx *diag.Context
	if flagTrace {
		dctx = diag.NewContext()
	}

	rom, err := assembler.AssembleWithDiag(source, dctx)
	if flagTrace {
		for _, entry := range dctx.Entries() {
			cmd.PrintErrln(entry.String())
		}
	}
	if err != nil {
		cmd.PrintErrln("Error:", err)
		return err
	}

	if err := os.WriteFile(outputPath, rom, 0644); err != nil {
		return fmt.Errorf("failed to write output file %q: %w", outputPath, err)
	}

	return nil
}

// resolveInputPath validates the CLI arguments and returns the absolute
// path to the assembly source file.
func resolveInputPath(args []string) (string, error) {
	if len(args) < 1 || args[0] == "" {
		return "", fmt.Errorf("no input file provided")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("unable to get current working directory: %w", err)
	}

	fullPath := args[0]
	if !filepath.IsAbs(fullPath) {
		fullPath = filepath.Join(cwd, fullPath)
	}
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return "", fmt.Errorf("input file does not exist at path: %s", fullPath)
	}

	return fullPath, nil
}

// readSourceFile reads the assembly source file and returns its contents.
func readSourceFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}
