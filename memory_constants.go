package bc64

// Page-level flags recorded per 256-byte page of the 64KB address space.
// mirrors the ram_page_flag bitmap the bank switcher maintains so that
// ordinary RAM reads never have to consult the bank configuration.
const (
	pageFlagZero  = 1 << 0 // page 0: zero page, read fast-pathed
	pageFlagIO    = 1 << 1 // page routes through readIO/writeIO
	pageFlagROM   = 1 << 2 // page is currently backed by a ROM image
)

// Bank-switching truth tables, indexed by the 3-bit LORAM/HIRAM/CHAREN
// value written to $01. Each table says whether that ROM/IO region
// should be mapped in for a given flag combination.
var (
	loadBasic  = [8]bool{false, false, false, true, false, false, false, true}
	loadKernal = [8]bool{false, false, true, true, false, false, true, true}
	loadIO     = [8]bool{false, false, false, false, false, true, true, true}
	loadChar   = [8]bool{false, true, true, true, false, false, false, false}
)

const (
	zeroPageBank   = 0x00
	stackBase      = 0x0100
	basicROMBase   = 0xa000
	ioSpaceBase    = 0xd000
	charROMBase    = 0xd000
	kernalROMBase  = 0xe000
	ioSpaceEnd     = 0xe000

	vicBase   = 0xd000
	sidBase   = 0xd400
	colorBase = 0xd800
	cia1Base  = 0xdc00
	cia2Base  = 0xdd00
	ioSlot1   = 0xde00
	ioSlot2   = 0xdf00
)
