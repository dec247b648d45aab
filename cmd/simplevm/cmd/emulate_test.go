package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunEmulate_Scenario4(t *testing.T) {
	dir := t.TempDir()
	romPath := filepath.Join(dir, "prog.bin")
	// mov 0x600D, r0
	if err := os.WriteFile(romPath, []byte{0x02, 0x00, 0x0D, 0x60}, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	flagSteps = 0
	flagRAMSize = 0
	flagDebug = false
	flagConfig = ""

	rootCmd.SetArgs([]string{romPath, "--steps", "1"})
	var out bytes.Buffer
	rootCmd.SetOut(&out)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !strings.Contains(out.String(), "r0 = 0x600D") {
		t.Errorf("expected register dump to contain r0 = 0x600D, got:\n%s", out.String())
	}
}

func TestRunEmulate_RequiresStepCount(t *testing.T) {
	dir := t.TempDir()
	romPath := filepath.Join(dir, "prog.bin")
	if err := os.WriteFile(romPath, []byte{0x00, 0x00}, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	flagSteps = 0
	flagRAMSize = 0
	flagDebug = false
	flagConfig = ""

	rootCmd.SetArgs([]string{romPath})
	rootCmd.SetOut(&bytes.Buffer{})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected an error when no step count is given")
	}
}

func TestRunEmulate_MissingROM(t *testing.T) {
	flagSteps = 0
	flagRAMSize = 0
	flagDebug = false
	flagConfig = ""

	rootCmd.SetArgs([]string{"no-such-rom.bin", "--steps", "1"})
	rootCmd.SetOut(&bytes.Buffer{})

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected an error for a missing ROM file")
	}
}
