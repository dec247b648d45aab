// Command simplevm runs a SimpleASM ROM image against the register-machine
// interpreter.
package main

import "github.com/simpleasm/simpleasm/cmd/simplevm/cmd"

func main() {
	cmd.Execute()
}
