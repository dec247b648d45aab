package value

// Selector identifies one of SimpleASM's sixteen register slots. General
// registers occupy 0x0–0xA; special registers occupy 0xB–0xF.
type Selector byte

// Special register selectors. All five are always word-width regardless of
// how they are spelled in source.
const (
	RSB   Selector = 0xB // stack base
	RSH   Selector = 0xC // stack head / pointer
	Flags Selector = 0xD // condition flags
	RIP   Selector = 0xE // instruction pointer
	RINFO Selector = 0xF // implementation-reserved info register
)

// MaxGeneralSelector is the highest selector naming a general-purpose
// register (r0..r10 / rb0..rb10 share selectors 0x0..0xA).
const MaxGeneralSelector = 0xA

// Register is an operand naming one of the sixteen storage slots plus the
// width under which it is being addressed. Two Registers with the same
// Selector but different Width name the same underlying storage cell —
// Width is a tag on the operand, never on the slot itself.
type Register struct {
	Selector Selector
	Width    Width
}

// IsSpecial reports whether the selector names one of the five always-word
// special registers (RSB, RSH, Flags, RIP, RINFO).
func (s Selector) IsSpecial() bool {
	return s > MaxGeneralSelector
}

// NewRegister builds a Register, forcing Word width for any special
// selector regardless of the width requested — special registers are always
// word-width.
func NewRegister(sel Selector, w Width) Register {
	if sel.IsSpecial() {
		w = Word
	}
	return Register{Selector: sel, Width: w}
}

// SpecialName returns the canonical source-text spelling of a special
// register selector ("rsb", "rsh", "flags", "rip", "rinfo"), or "" if sel
// does not name a special register.
func SpecialName(sel Selector) string {
	switch sel {
	case RSB:
		return "rsb"
	case RSH:
		return "rsh"
	case Flags:
		return "flags"
	case RIP:
		return "rip"
	case RINFO:
		return "rinfo"
	default:
		return ""
	}
}
