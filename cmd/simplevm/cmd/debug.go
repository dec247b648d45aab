package cmd

import (
	"os"

	"golang.org/x/term"
)

// waitForKeystroke puts stdin into raw mode, blocks for a single byte, and
// restores the terminal before returning. Used by --debug to pause the
// emulator between steps.
func waitForKeystroke() error {
	fd := int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		// Not a terminal (e.g. piped input in a test) — nothing to pause on.
		return nil
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 1)
	_, err = os.Stdin.Read(buf)
	return err
}
