package bc64

import "testing"

func newTestCPU(t *testing.T) (*CPU, *Memory) {
	t.Helper()
	mem := NewMemory()
	if err := mem.AttachROMs(testROMSet()); err != nil {
		t.Fatalf("AttachROMs: %v", err)
	}
	mem.attachChips(
		NewCIA(NewScheduler(), CBTimer1A, CBTimer1B, nil),
		NewCIA(NewScheduler(), CBTimer2A, CBTimer2B, nil),
		nil,
	)
	mem.Reset()
	sched := NewScheduler()
	cpu := NewCPU(mem, sched)
	mem.Write(0x0001, 0x00) // bank out ROM so test code can live at $E000
	return cpu, mem
}

func load(mem *Memory, addr uint16, code ...byte) {
	for i, b := range code {
		mem.Write(addr+uint16(i), b)
	}
}

func TestCPULDAImmediateSetsFlags(t *testing.T) {
	cpu, mem := newTestCPU(t)
	load(mem, 0xe000, 0xa9, 0x00) // LDA #$00
	cpu.PC = 0xe000
	cpu.Step()
	if !cpu.nz.zero() {
		t.Fatal("expected Z set after loading zero")
	}

	load(mem, 0xe000, 0xa9, 0x80) // LDA #$80
	cpu.PC = 0xe000
	cpu.Step()
	if !cpu.nz.negative() {
		t.Fatal("expected N set after loading a negative value")
	}
}

func TestCPUADCBinaryCarryAndOverflow(t *testing.T) {
	cpu, mem := newTestCPU(t)
	cpu.A = 0x50
	cpu.C = false
	cpu.D = false
	load(mem, 0xe000, 0x69, 0x50) // ADC #$50
	cpu.PC = 0xe000
	cpu.Step()
	if cpu.A != 0xa0 {
		t.Fatalf("A = $%02X, want $A0", cpu.A)
	}
	if !cpu.V {
		t.Fatal("expected signed overflow ($50+$50=$A0)")
	}
	if cpu.C {
		t.Fatal("unexpected carry out of $50+$50")
	}
}

func TestCPUADCDecimalMode(t *testing.T) {
	cpu, mem := newTestCPU(t)
	cpu.A = 0x09
	cpu.D = true
	cpu.C = false
	load(mem, 0xe000, 0x69, 0x01) // ADC #$01
	cpu.PC = 0xe000
	cpu.Step()
	if cpu.A != 0x10 {
		t.Fatalf("decimal 09+01 = $%02X, want $10", cpu.A)
	}
}

func TestCPUADCDecimalModeFlagsFromBinaryResult(t *testing.T) {
	cpu, mem := newTestCPU(t)
	cpu.A = 0x99
	cpu.D = true
	cpu.C = false
	load(mem, 0xe000, 0x69, 0x01) // ADC #$01
	cpu.PC = 0xe000
	cpu.Step()
	if cpu.A != 0x00 {
		t.Fatalf("decimal 99+01 = $%02X, want $00", cpu.A)
	}
	if !cpu.C {
		t.Fatal("expected decimal carry out of 99+01")
	}
	// N and Z reflect the binary result ($9A), not the BCD-corrected
	// accumulator ($00): N=1, Z=0.
	if !cpu.nz.negative() {
		t.Fatal("expected N set from binary result $9A, not BCD-corrected $00")
	}
	if cpu.nz.zero() {
		t.Fatal("expected Z clear from binary result $9A, not BCD-corrected $00")
	}
}

func TestCPUBranchTakenAddsCycleAndCrossesPage(t *testing.T) {
	cpu, mem := newTestCPU(t)
	cpu.nz = nzFromByte(0) // Z set
	load(mem, 0xe0fd, 0xf0, 0x7f)
	cpu.PC = 0xe0fd
	before := cpu.Cycles
	cpu.Step()
	if cpu.PC != 0xe17e {
		t.Fatalf("PC after taken branch = $%04X, want $E17E", cpu.PC)
	}
	if cpu.Cycles-before != 4 { // 2 base + 1 taken + 1 page cross
		t.Fatalf("cycles = %d, want 4", cpu.Cycles-before)
	}
}

func TestCPUIndirectJMPPageWrapBug(t *testing.T) {
	cpu, mem := newTestCPU(t)
	load(mem, 0x30ff, 0x00, 0x40) // low byte at $30FF, "high byte" wrongly at $3000
	mem.Write(0x3000, 0x80)
	load(mem, 0xe000, 0x6c, 0xff, 0x30) // JMP ($30FF)
	cpu.PC = 0xe000
	cpu.Step()
	if cpu.PC != 0x8000 {
		t.Fatalf("PC = $%04X, want $8000 (page-wrap bug)", cpu.PC)
	}
}

func TestCPUJSRRTSRoundTrip(t *testing.T) {
	cpu, mem := newTestCPU(t)
	cpu.SP = 0xff
	load(mem, 0xe000, 0x20, 0x00, 0xf0) // JSR $F000
	load(mem, 0xf000, 0x60)             // RTS
	cpu.PC = 0xe000
	cpu.Step()
	if cpu.PC != 0xf000 {
		t.Fatalf("PC after JSR = $%04X, want $F000", cpu.PC)
	}
	cpu.Step()
	if cpu.PC != 0xe003 {
		t.Fatalf("PC after RTS = $%04X, want $E003", cpu.PC)
	}
}

func TestCPUUnknownOpcodeJams(t *testing.T) {
	cpu, mem := newTestCPU(t)
	load(mem, 0xe000, 0x02) // JAM
	cpu.PC = 0xe000
	cpu.Step()
	if !cpu.Jammed {
		t.Fatal("expected CPU to jam on opcode $02")
	}
	if err := cpu.JamError(); err == nil {
		t.Fatal("expected a JamError")
	}
}

func TestCPUIllegalSLO(t *testing.T) {
	cpu, mem := newTestCPU(t)
	mem.Write(0x0020, 0x81) // zero page operand
	cpu.A = 0x01
	load(mem, 0xe000, 0x07, 0x20) // SLO $20 (ASL then ORA)
	cpu.PC = 0xe000
	cpu.Step()
	if mem.Read(0x0020) != 0x02 {
		t.Fatalf("SLO did not shift memory: got $%02X", mem.Read(0x0020))
	}
	if cpu.A != 0x03 {
		t.Fatalf("SLO did not OR into A: got $%02X, want $03", cpu.A)
	}
	if !cpu.C {
		t.Fatal("expected carry out of the shifted high bit")
	}
}

func TestCPUIRQRespectsIFlag(t *testing.T) {
	cpu, mem := newTestCPU(t)
	load(mem, 0xfffe, 0x00, 0xf0) // IRQ/BRK vector -> $F000
	cpu.I = true
	cpu.SetIRQLine(true)
	load(mem, 0xe000, 0xea) // NOP
	cpu.PC = 0xe000
	cpu.Step()
	if cpu.PC != 0xe001 {
		t.Fatalf("IRQ fired despite I flag set; PC = $%04X", cpu.PC)
	}

	cpu.I = false
	cpu.Step()
	if cpu.PC != 0xf000 {
		t.Fatalf("expected IRQ dispatch to $F000, got $%04X", cpu.PC)
	}
	if !cpu.I {
		t.Fatal("expected I flag set after IRQ dispatch")
	}
}
