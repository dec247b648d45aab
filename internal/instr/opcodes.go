package instr

// Opcode assignments. These byte values are the on-disk contract of the
// wire encoding: a dense block where a byte-width and word-width pair of
// otherwise identical variants occupy adjacent codes, so the width bit is
// recoverable as opcode&1 for those pairs. Reimplementations must keep this
// exact numbering.
const (
	OpNop byte = 0x00

	OpMovI2R_B  byte = 0x01
	OpMovI2R_W  byte = 0x02
	OpMovI2RP_B byte = 0x03
	OpMovI2RP_W byte = 0x04
	OpMovI2IP_B byte = 0x05
	OpMovI2IP_W byte = 0x06
	OpMovIP2R_B byte = 0x07
	OpMovIP2R_W byte = 0x08
	OpMovIP2RP  byte = 0x09
	OpMovIP2IP  byte = 0x0A

	OpMovR2R_B  byte = 0x0B
	OpMovR2R_W  byte = 0x0C
	OpMovR2RP_B byte = 0x0D
	OpMovR2RP_W byte = 0x0E
	OpMovR2IP_B byte = 0x0F
	OpMovR2IP_W byte = 0x10
	OpMovRP2R_B byte = 0x11
	OpMovRP2R_W byte = 0x12
	OpMovRP2RP  byte = 0x13
	OpMovRP2IP  byte = 0x14
)
