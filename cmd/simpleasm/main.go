// Command simpleasm assembles a SimpleASM source file into a raw binary
// ROM image.
package main

import "github.com/simpleasm/simpleasm/cmd/simpleasm/cmd"

func main() {
	cmd.Execute()
}
