package assembler

import (
	"strconv"
	"strings"

	"github.com/simpleasm/simpleasm/internal/value"
)

// registerFromName recognises the fixed set of register names the source
// grammar accepts: "r0".."r10" (word view), "rb0".."rb10" (byte view of the
// same storage cell), and the five special registers by name.
func registerFromName(name string) (value.Register, bool) {
	lower := strings.ToLower(name)

	switch lower {
	case "rsb":
		return value.NewRegister(value.RSB, value.Word), true
	case "rsh":
		return value.NewRegister(value.RSH, value.Word), true
	case "flags":
		return value.NewRegister(value.Flags, value.Word), true
	case "rip":
		return value.NewRegister(value.RIP, value.Word), true
	case "rinfo":
		return value.NewRegister(value.RINFO, value.Word), true
	}

	if rest, ok := strings.CutPrefix(lower, "rb"); ok {
		if n, ok := parseGeneralIndex(rest); ok {
			return value.NewRegister(value.Selector(n), value.Byte), true
		}
		return value.Register{}, false
	}
	if rest, ok := strings.CutPrefix(lower, "r"); ok {
		if n, ok := parseGeneralIndex(rest); ok {
			return value.NewRegister(value.Selector(n), value.Word), true
		}
	}
	return value.Register{}, false
}

func parseGeneralIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > int(value.MaxGeneralSelector) {
		return 0, false
	}
	return n, true
}
