package bc64

import "testing"

func testROMSet() ROMSet {
	k := make([]byte, kernalROMSize)
	b := make([]byte, basicROMSize)
	c := make([]byte, chargenROMSize)
	for i := range k {
		k[i] = 0x11
	}
	for i := range b {
		b[i] = 0x22
	}
	for i := range c {
		c[i] = 0x33
	}
	return ROMSet{Kernal: k, Basic: b, Chargen: c}
}

func newTestMachine(t *testing.T) *Machine {
	t.Helper()
	m, err := NewMachine(testROMSet())
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	return m
}

func TestMemoryBankSwitchExposesROM(t *testing.T) {
	mach := newTestMachine(t)
	mem := mach.Memory

	if got := mem.Read(0xe000); got != 0x11 {
		t.Fatalf("kernal not mapped at power-on: got $%02X", got)
	}
	if got := mem.Read(0xa000); got != 0x22 {
		t.Fatalf("basic not mapped at power-on: got $%02X", got)
	}

	mem.Write(0x0001, 0x00)
	mem.Write(0xe000, 0xaa)
	if got := mem.Read(0xe000); got != 0xaa {
		t.Fatalf("ram not exposed after banking out kernal: got $%02X", got)
	}

	mem.Write(0x0001, 0x07)
	if got := mem.Read(0xe000); got != 0x11 {
		t.Fatalf("kernal not restored after re-mapping: got $%02X", got)
	}
}

func TestMemoryWriteAlwaysUpdatesUnderlyingRAM(t *testing.T) {
	mach := newTestMachine(t)
	mem := mach.Memory

	mem.Write(0xa000, 0x99)
	mem.Write(0x0001, 0x00)
	if got := mem.Read(0xa000); got != 0x99 {
		t.Fatalf("write under ROM did not persist to RAM: got $%02X", got)
	}
}

func TestMemoryZeroPageOnePowerOnFlags(t *testing.T) {
	mach := newTestMachine(t)
	if got := mach.Memory.Read(0x0001); got != 0x07 {
		t.Fatalf("expected power-on flag value 0x07, got $%02X", got)
	}
}

func TestMemoryColorRAMWritesOnlyLowNybble(t *testing.T) {
	mach := newTestMachine(t)
	mem := mach.Memory

	mem.Write(0xd800, 0xaf)
	if got := mem.ColorNybble(0); got != 0x0f {
		t.Fatalf("color RAM should store low nybble only: got $%02X", got)
	}
	if got := mem.Read(0xd800); got&0xf0 != 0xf0 {
		t.Fatalf("color RAM readback should force upper nybble to 1s: got $%02X", got)
	}
}

func TestMemoryIOUnmappedWhenHiramClear(t *testing.T) {
	mach := newTestMachine(t)
	mem := mach.Memory

	mem.Write(0x0001, 0x00)
	mem.Write(0xd000, 0x42)
	if got := mem.Read(0xd000); got != 0x42 {
		t.Fatalf("expected RAM behavior with I/O unmapped, got $%02X", got)
	}
}

func TestROMSetValidation(t *testing.T) {
	if err := (ROMSet{}).validate(); err == nil {
		t.Fatal("expected error for empty ROM set")
	}
	set := testROMSet()
	set.Kernal = set.Kernal[:100]
	if err := set.validate(); err == nil {
		t.Fatal("expected size error for truncated kernal ROM")
	}
}
