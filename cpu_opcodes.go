package bc64

// Instruction bodies. Each operates on an already-resolved effective
// address (or, for accumulator-mode shifts, directly on A); cycle
// accounting and addressing-mode dispatch live in initOpcodeTable.

func (c *CPU) opADC(addr uint16) {
	v := c.read(addr)
	if c.D {
		c.adcDecimal(v)
		return
	}
	sum := int(c.A) + int(v)
	if c.C {
		sum++
	}
	result := byte(sum)
	c.V = (^(c.A ^ v) & (c.A ^ result) & 0x80) != 0
	c.C = sum > 0xff
	c.A = result
	c.setNZ(c.A)
}

func (c *CPU) adcDecimal(v byte) {
	carry := 0
	if c.C {
		carry = 1
	}
	lo := int(c.A&0x0f) + int(v&0x0f) + carry
	hi := int(c.A>>4) + int(v>>4)
	if lo > 9 {
		lo -= 10
		hi++
	}
	binResult := int(c.A) + int(v) + carry
	c.V = (^(int(c.A) ^ int(v)) & (int(c.A) ^ binResult) & 0x80) != 0
	if hi > 9 {
		hi -= 10
		c.C = true
	} else {
		c.C = false
	}
	c.A = byte(hi<<4 | (lo & 0x0f))
	c.setNZ(byte(binResult))
}

func (c *CPU) opSBC(addr uint16) {
	v := c.read(addr)
	if c.D {
		c.sbcDecimal(v)
		return
	}
	borrow := 0
	if !c.C {
		borrow = 1
	}
	diff := int(c.A) - int(v) - borrow
	result := byte(diff)
	c.V = ((c.A ^ v) & (c.A ^ result) & 0x80) != 0
	c.C = diff >= 0
	c.A = result
	c.setNZ(c.A)
}

func (c *CPU) sbcDecimal(v byte) {
	borrow := 0
	if !c.C {
		borrow = 1
	}
	binDiff := int(c.A) - int(v) - borrow
	c.V = ((c.A ^ v) & (c.A ^ byte(binDiff)) & 0x80) != 0
	c.C = binDiff >= 0

	lo := int(c.A&0x0f) - int(v&0x0f) - borrow
	hi := int(c.A>>4) - int(v>>4)
	if lo < 0 {
		lo += 10
		hi--
	}
	if hi < 0 {
		hi += 10
	}
	c.A = byte(hi<<4 | (lo & 0x0f))
	c.setNZ(byte(binDiff))
}

func (c *CPU) opAND(addr uint16) {
	c.A &= c.read(addr)
	c.setNZ(c.A)
}

func (c *CPU) opORA(addr uint16) {
	c.A |= c.read(addr)
	c.setNZ(c.A)
}

func (c *CPU) opEOR(addr uint16) {
	c.A ^= c.read(addr)
	c.setNZ(c.A)
}

func (c *CPU) compare(reg byte, addr uint16) {
	v := c.read(addr)
	result := reg - v
	c.C = reg >= v
	c.setNZ(result)
}

func (c *CPU) opBIT(addr uint16) {
	v := c.read(addr)
	c.V = v&0x40 != 0
	nz := nzFromByte(v & c.A)
	if v&0x80 != 0 {
		nz |= 0x80
	} else {
		nz &^= 0x80
	}
	c.nz = nz
}

func (c *CPU) asl(v byte) byte {
	c.C = v&0x80 != 0
	r := v << 1
	c.setNZ(r)
	return r
}

func (c *CPU) lsr(v byte) byte {
	c.C = v&0x01 != 0
	r := v >> 1
	c.setNZ(r)
	return r
}

func (c *CPU) rol(v byte) byte {
	carryIn := byte(0)
	if c.C {
		carryIn = 1
	}
	c.C = v&0x80 != 0
	r := (v << 1) | carryIn
	c.setNZ(r)
	return r
}

func (c *CPU) ror(v byte) byte {
	carryIn := byte(0)
	if c.C {
		carryIn = 0x80
	}
	c.C = v&0x01 != 0
	r := (v >> 1) | carryIn
	c.setNZ(r)
	return r
}

func (c *CPU) load(dst *byte, addr uint16) {
	*dst = c.read(addr)
	c.setNZ(*dst)
}

func (c *CPU) store(v byte, addr uint16) { c.write(addr, v) }

func (c *CPU) inc(addr uint16) { c.rmw(addr, func(v byte) byte { v++; return v }) }
func (c *CPU) dec(addr uint16) { c.rmw(addr, func(v byte) byte { v--; return v }) }

func (c *CPU) branch(taken bool) {
	offset := int8(c.fetch())
	if !taken {
		return
	}
	old := c.PC
	c.PC = uint16(int32(c.PC) + int32(offset))
	c.Cycles++
	if old&0xff00 != c.PC&0xff00 {
		c.Cycles++
	}
}

func (c *CPU) jsr(addr uint16) {
	c.push16(c.PC - 1)
	c.PC = addr
}

func (c *CPU) rts() {
	c.PC = c.pop16() + 1
}

func (c *CPU) rti() {
	c.setStatusByte(c.pop())
	c.PC = c.pop16()
}

func (c *CPU) brk() {
	c.PC++
	c.push16(c.PC)
	c.push(c.statusByte(true))
	c.I = true
	c.PC = c.read16(0xfffe)
}

// initOpcodeTable builds the 256-entry dispatch table. Slots left nil
// decode as JAM, matching the original's dense use of cpu6510_JAM()
// for opcodes it does not give independent semantics to. Cycle counts
// are the base (non-page-crossing) timings from the reference
// dispatch switch; where the mode can cross a page, the addressing
// helper reports the crossing and the table entry adds the +1 penalty.
func (c *CPU) initOpcodeTable() {
	t := &c.opcodeTable

	// ADC
	t[0x69] = func(c *CPU) { c.opADC(c.addrImmediate()); c.Cycles += 2 }
	t[0x65] = func(c *CPU) { c.opADC(c.addrZeroPage()); c.Cycles += 3 }
	t[0x75] = func(c *CPU) { c.opADC(c.addrZeroPageX()); c.Cycles += 4 }
	t[0x6d] = func(c *CPU) { c.opADC(c.addrAbsolute()); c.Cycles += 4 }
	t[0x7d] = func(c *CPU) { a, x := c.addrAbsoluteX(); c.opADC(a); c.Cycles += 4; if x { c.Cycles++ } }
	t[0x79] = func(c *CPU) { a, x := c.addrAbsoluteY(); c.opADC(a); c.Cycles += 4; if x { c.Cycles++ } }
	t[0x61] = func(c *CPU) { c.opADC(c.addrIndirectX()); c.Cycles += 6 }
	t[0x71] = func(c *CPU) { a, x := c.addrIndirectY(); c.opADC(a); c.Cycles += 5; if x { c.Cycles++ } }

	// SBC (0xeb is the undocumented immediate-mode duplicate of 0xe9)
	t[0xe9] = func(c *CPU) { c.opSBC(c.addrImmediate()); c.Cycles += 2 }
	t[0xeb] = t[0xe9]
	t[0xe5] = func(c *CPU) { c.opSBC(c.addrZeroPage()); c.Cycles += 3 }
	t[0xf5] = func(c *CPU) { c.opSBC(c.addrZeroPageX()); c.Cycles += 4 }
	t[0xed] = func(c *CPU) { c.opSBC(c.addrAbsolute()); c.Cycles += 4 }
	t[0xfd] = func(c *CPU) { a, x := c.addrAbsoluteX(); c.opSBC(a); c.Cycles += 4; if x { c.Cycles++ } }
	t[0xf9] = func(c *CPU) { a, x := c.addrAbsoluteY(); c.opSBC(a); c.Cycles += 4; if x { c.Cycles++ } }
	t[0xe1] = func(c *CPU) { c.opSBC(c.addrIndirectX()); c.Cycles += 6 }
	t[0xf1] = func(c *CPU) { a, x := c.addrIndirectY(); c.opSBC(a); c.Cycles += 5; if x { c.Cycles++ } }

	// AND
	t[0x29] = func(c *CPU) { c.opAND(c.addrImmediate()); c.Cycles += 2 }
	t[0x25] = func(c *CPU) { c.opAND(c.addrZeroPage()); c.Cycles += 3 }
	t[0x35] = func(c *CPU) { c.opAND(c.addrZeroPageX()); c.Cycles += 4 }
	t[0x2d] = func(c *CPU) { c.opAND(c.addrAbsolute()); c.Cycles += 4 }
	t[0x3d] = func(c *CPU) { a, x := c.addrAbsoluteX(); c.opAND(a); c.Cycles += 4; if x { c.Cycles++ } }
	t[0x39] = func(c *CPU) { a, x := c.addrAbsoluteY(); c.opAND(a); c.Cycles += 4; if x { c.Cycles++ } }
	t[0x21] = func(c *CPU) { c.opAND(c.addrIndirectX()); c.Cycles += 6 }
	t[0x31] = func(c *CPU) { a, x := c.addrIndirectY(); c.opAND(a); c.Cycles += 5; if x { c.Cycles++ } }

	// ORA
	t[0x09] = func(c *CPU) { c.opORA(c.addrImmediate()); c.Cycles += 2 }
	t[0x05] = func(c *CPU) { c.opORA(c.addrZeroPage()); c.Cycles += 3 }
	t[0x15] = func(c *CPU) { c.opORA(c.addrZeroPageX()); c.Cycles += 4 }
	t[0x0d] = func(c *CPU) { c.opORA(c.addrAbsolute()); c.Cycles += 4 }
	t[0x1d] = func(c *CPU) { a, x := c.addrAbsoluteX(); c.opORA(a); c.Cycles += 4; if x { c.Cycles++ } }
	t[0x19] = func(c *CPU) { a, x := c.addrAbsoluteY(); c.opORA(a); c.Cycles += 4; if x { c.Cycles++ } }
	t[0x01] = func(c *CPU) { c.opORA(c.addrIndirectX()); c.Cycles += 6 }
	t[0x11] = func(c *CPU) { a, x := c.addrIndirectY(); c.opORA(a); c.Cycles += 5; if x { c.Cycles++ } }

	// EOR
	t[0x49] = func(c *CPU) { c.opEOR(c.addrImmediate()); c.Cycles += 2 }
	t[0x45] = func(c *CPU) { c.opEOR(c.addrZeroPage()); c.Cycles += 3 }
	t[0x55] = func(c *CPU) { c.opEOR(c.addrZeroPageX()); c.Cycles += 4 }
	t[0x4d] = func(c *CPU) { c.opEOR(c.addrAbsolute()); c.Cycles += 4 }
	t[0x5d] = func(c *CPU) { a, x := c.addrAbsoluteX(); c.opEOR(a); c.Cycles += 4; if x { c.Cycles++ } }
	t[0x59] = func(c *CPU) { a, x := c.addrAbsoluteY(); c.opEOR(a); c.Cycles += 4; if x { c.Cycles++ } }
	t[0x41] = func(c *CPU) { c.opEOR(c.addrIndirectX()); c.Cycles += 6 }
	t[0x51] = func(c *CPU) { a, x := c.addrIndirectY(); c.opEOR(a); c.Cycles += 5; if x { c.Cycles++ } }

	// CMP / CPX / CPY
	t[0xc9] = func(c *CPU) { c.compare(c.A, c.addrImmediate()); c.Cycles += 2 }
	t[0xc5] = func(c *CPU) { c.compare(c.A, c.addrZeroPage()); c.Cycles += 3 }
	t[0xd5] = func(c *CPU) { c.compare(c.A, c.addrZeroPageX()); c.Cycles += 4 }
	t[0xcd] = func(c *CPU) { c.compare(c.A, c.addrAbsolute()); c.Cycles += 4 }
	t[0xdd] = func(c *CPU) { a, x := c.addrAbsoluteX(); c.compare(c.A, a); c.Cycles += 4; if x { c.Cycles++ } }
	t[0xd9] = func(c *CPU) { a, x := c.addrAbsoluteY(); c.compare(c.A, a); c.Cycles += 4; if x { c.Cycles++ } }
	t[0xc1] = func(c *CPU) { c.compare(c.A, c.addrIndirectX()); c.Cycles += 6 }
	t[0xd1] = func(c *CPU) { a, x := c.addrIndirectY(); c.compare(c.A, a); c.Cycles += 5; if x { c.Cycles++ } }

	t[0xe0] = func(c *CPU) { c.compare(c.X, c.addrImmediate()); c.Cycles += 2 }
	t[0xe4] = func(c *CPU) { c.compare(c.X, c.addrZeroPage()); c.Cycles += 3 }
	t[0xec] = func(c *CPU) { c.compare(c.X, c.addrAbsolute()); c.Cycles += 4 }

	t[0xc0] = func(c *CPU) { c.compare(c.Y, c.addrImmediate()); c.Cycles += 2 }
	t[0xc4] = func(c *CPU) { c.compare(c.Y, c.addrZeroPage()); c.Cycles += 3 }
	t[0xcc] = func(c *CPU) { c.compare(c.Y, c.addrAbsolute()); c.Cycles += 4 }

	// BIT
	t[0x24] = func(c *CPU) { c.opBIT(c.addrZeroPage()); c.Cycles += 3 }
	t[0x2c] = func(c *CPU) { c.opBIT(c.addrAbsolute()); c.Cycles += 4 }

	// ASL / LSR / ROL / ROR, memory and accumulator forms
	t[0x0a] = func(c *CPU) { c.A = c.asl(c.A); c.Cycles += 2 }
	t[0x06] = func(c *CPU) { c.rmw(c.addrZeroPage(), c.asl); c.Cycles += 5 }
	t[0x16] = func(c *CPU) { c.rmw(c.addrZeroPageX(), c.asl); c.Cycles += 6 }
	t[0x0e] = func(c *CPU) { c.rmw(c.addrAbsolute(), c.asl); c.Cycles += 6 }
	t[0x1e] = func(c *CPU) { a, _ := c.addrAbsoluteX(); c.rmw(a, c.asl); c.Cycles += 7 }

	t[0x4a] = func(c *CPU) { c.A = c.lsr(c.A); c.Cycles += 2 }
	t[0x46] = func(c *CPU) { c.rmw(c.addrZeroPage(), c.lsr); c.Cycles += 5 }
	t[0x56] = func(c *CPU) { c.rmw(c.addrZeroPageX(), c.lsr); c.Cycles += 6 }
	t[0x4e] = func(c *CPU) { c.rmw(c.addrAbsolute(), c.lsr); c.Cycles += 6 }
	t[0x5e] = func(c *CPU) { a, _ := c.addrAbsoluteX(); c.rmw(a, c.lsr); c.Cycles += 7 }

	t[0x2a] = func(c *CPU) { c.A = c.rol(c.A); c.Cycles += 2 }
	t[0x26] = func(c *CPU) { c.rmw(c.addrZeroPage(), c.rol); c.Cycles += 5 }
	t[0x36] = func(c *CPU) { c.rmw(c.addrZeroPageX(), c.rol); c.Cycles += 6 }
	t[0x2e] = func(c *CPU) { c.rmw(c.addrAbsolute(), c.rol); c.Cycles += 6 }
	t[0x3e] = func(c *CPU) { a, _ := c.addrAbsoluteX(); c.rmw(a, c.rol); c.Cycles += 7 }

	t[0x6a] = func(c *CPU) { c.A = c.ror(c.A); c.Cycles += 2 }
	t[0x66] = func(c *CPU) { c.rmw(c.addrZeroPage(), c.ror); c.Cycles += 5 }
	t[0x76] = func(c *CPU) { c.rmw(c.addrZeroPageX(), c.ror); c.Cycles += 6 }
	t[0x6e] = func(c *CPU) { c.rmw(c.addrAbsolute(), c.ror); c.Cycles += 6 }
	t[0x7e] = func(c *CPU) { a, _ := c.addrAbsoluteX(); c.rmw(a, c.ror); c.Cycles += 7 }

	// INC / DEC
	t[0xe6] = func(c *CPU) { c.inc(c.addrZeroPage()); c.Cycles += 5 }
	t[0xf6] = func(c *CPU) { c.inc(c.addrZeroPageX()); c.Cycles += 6 }
	t[0xee] = func(c *CPU) { c.inc(c.addrAbsolute()); c.Cycles += 6 }
	t[0xfe] = func(c *CPU) { a, _ := c.addrAbsoluteX(); c.inc(a); c.Cycles += 7 }

	t[0xc6] = func(c *CPU) { c.dec(c.addrZeroPage()); c.Cycles += 5 }
	t[0xd6] = func(c *CPU) { c.dec(c.addrZeroPageX()); c.Cycles += 6 }
	t[0xce] = func(c *CPU) { c.dec(c.addrAbsolute()); c.Cycles += 6 }
	t[0xde] = func(c *CPU) { a, _ := c.addrAbsoluteX(); c.dec(a); c.Cycles += 7 }

	t[0xe8] = func(c *CPU) { c.X++; c.setNZ(c.X); c.Cycles += 2 }
	t[0xc8] = func(c *CPU) { c.Y++; c.setNZ(c.Y); c.Cycles += 2 }
	t[0xca] = func(c *CPU) { c.X--; c.setNZ(c.X); c.Cycles += 2 }
	t[0x88] = func(c *CPU) { c.Y--; c.setNZ(c.Y); c.Cycles += 2 }

	// Loads
	t[0xa9] = func(c *CPU) { c.load(&c.A, c.addrImmediate()); c.Cycles += 2 }
	t[0xa5] = func(c *CPU) { c.load(&c.A, c.addrZeroPage()); c.Cycles += 3 }
	t[0xb5] = func(c *CPU) { c.load(&c.A, c.addrZeroPageX()); c.Cycles += 4 }
	t[0xad] = func(c *CPU) { c.load(&c.A, c.addrAbsolute()); c.Cycles += 4 }
	t[0xbd] = func(c *CPU) { a, x := c.addrAbsoluteX(); c.load(&c.A, a); c.Cycles += 4; if x { c.Cycles++ } }
	t[0xb9] = func(c *CPU) { a, x := c.addrAbsoluteY(); c.load(&c.A, a); c.Cycles += 4; if x { c.Cycles++ } }
	t[0xa1] = func(c *CPU) { c.load(&c.A, c.addrIndirectX()); c.Cycles += 6 }
	t[0xb1] = func(c *CPU) { a, x := c.addrIndirectY(); c.load(&c.A, a); c.Cycles += 5; if x { c.Cycles++ } }

	t[0xa2] = func(c *CPU) { c.load(&c.X, c.addrImmediate()); c.Cycles += 2 }
	t[0xa6] = func(c *CPU) { c.load(&c.X, c.addrZeroPage()); c.Cycles += 3 }
	t[0xb6] = func(c *CPU) { c.load(&c.X, c.addrZeroPageY()); c.Cycles += 4 }
	t[0xae] = func(c *CPU) { c.load(&c.X, c.addrAbsolute()); c.Cycles += 4 }
	t[0xbe] = func(c *CPU) { a, x := c.addrAbsoluteY(); c.load(&c.X, a); c.Cycles += 4; if x { c.Cycles++ } }

	t[0xa0] = func(c *CPU) { c.load(&c.Y, c.addrImmediate()); c.Cycles += 2 }
	t[0xa4] = func(c *CPU) { c.load(&c.Y, c.addrZeroPage()); c.Cycles += 3 }
	t[0xb4] = func(c *CPU) { c.load(&c.Y, c.addrZeroPageX()); c.Cycles += 4 }
	t[0xac] = func(c *CPU) { c.load(&c.Y, c.addrAbsolute()); c.Cycles += 4 }
	t[0xbc] = func(c *CPU) { a, x := c.addrAbsoluteX(); c.load(&c.Y, a); c.Cycles += 4; if x { c.Cycles++ } }

	// Stores
	t[0x85] = func(c *CPU) { c.store(c.A, c.addrZeroPage()); c.Cycles += 3 }
	t[0x95] = func(c *CPU) { c.store(c.A, c.addrZeroPageX()); c.Cycles += 4 }
	t[0x8d] = func(c *CPU) { c.store(c.A, c.addrAbsolute()); c.Cycles += 4 }
	t[0x9d] = func(c *CPU) { a, _ := c.addrAbsoluteX(); c.store(c.A, a); c.Cycles += 5 }
	t[0x99] = func(c *CPU) { a, _ := c.addrAbsoluteY(); c.store(c.A, a); c.Cycles += 5 }
	t[0x81] = func(c *CPU) { c.store(c.A, c.addrIndirectX()); c.Cycles += 6 }
	t[0x91] = func(c *CPU) { a, _ := c.addrIndirectY(); c.store(c.A, a); c.Cycles += 6 }

	t[0x86] = func(c *CPU) { c.store(c.X, c.addrZeroPage()); c.Cycles += 3 }
	t[0x96] = func(c *CPU) { c.store(c.X, c.addrZeroPageY()); c.Cycles += 4 }
	t[0x8e] = func(c *CPU) { c.store(c.X, c.addrAbsolute()); c.Cycles += 4 }

	t[0x84] = func(c *CPU) { c.store(c.Y, c.addrZeroPage()); c.Cycles += 3 }
	t[0x94] = func(c *CPU) { c.store(c.Y, c.addrZeroPageX()); c.Cycles += 4 }
	t[0x8c] = func(c *CPU) { c.store(c.Y, c.addrAbsolute()); c.Cycles += 4 }

	// Transfers
	t[0xaa] = func(c *CPU) { c.X = c.A; c.setNZ(c.X); c.Cycles += 2 }
	t[0xa8] = func(c *CPU) { c.Y = c.A; c.setNZ(c.Y); c.Cycles += 2 }
	t[0x8a] = func(c *CPU) { c.A = c.X; c.setNZ(c.A); c.Cycles += 2 }
	t[0x98] = func(c *CPU) { c.A = c.Y; c.setNZ(c.A); c.Cycles += 2 }
	t[0xba] = func(c *CPU) { c.X = c.SP; c.setNZ(c.X); c.Cycles += 2 }
	t[0x9a] = func(c *CPU) { c.SP = c.X; c.Cycles += 2 }

	// Stack
	t[0x48] = func(c *CPU) { c.push(c.A); c.Cycles += 3 }
	t[0x68] = func(c *CPU) { c.A = c.pop(); c.setNZ(c.A); c.Cycles += 4 }
	t[0x08] = func(c *CPU) { c.push(c.statusByte(true)); c.Cycles += 3 }
	t[0x28] = func(c *CPU) { c.setStatusByte(c.pop()); c.Cycles += 4 }

	// Flags
	t[0x18] = func(c *CPU) { c.C = false; c.Cycles += 2 }
	t[0x38] = func(c *CPU) { c.C = true; c.Cycles += 2 }
	t[0x58] = func(c *CPU) { c.I = false; c.Cycles += 2 }
	t[0x78] = func(c *CPU) { c.I = true; c.Cycles += 2 }
	t[0xb8] = func(c *CPU) { c.V = false; c.Cycles += 2 }
	t[0xd8] = func(c *CPU) { c.D = false; c.Cycles += 2 }
	t[0xf8] = func(c *CPU) { c.D = true; c.Cycles += 2 }

	// Branches
	t[0x10] = func(c *CPU) { taken := !c.nz.negative(); c.Cycles += 2; c.branch(taken) }
	t[0x30] = func(c *CPU) { taken := c.nz.negative(); c.Cycles += 2; c.branch(taken) }
	t[0x50] = func(c *CPU) { taken := !c.V; c.Cycles += 2; c.branch(taken) }
	t[0x70] = func(c *CPU) { taken := c.V; c.Cycles += 2; c.branch(taken) }
	t[0x90] = func(c *CPU) { taken := !c.C; c.Cycles += 2; c.branch(taken) }
	t[0xb0] = func(c *CPU) { taken := c.C; c.Cycles += 2; c.branch(taken) }
	t[0xd0] = func(c *CPU) { taken := !c.nz.zero(); c.Cycles += 2; c.branch(taken) }
	t[0xf0] = func(c *CPU) { taken := c.nz.zero(); c.Cycles += 2; c.branch(taken) }

	// Jumps and calls
	t[0x4c] = func(c *CPU) { c.PC = c.addrAbsolute(); c.Cycles += 3 }
	t[0x6c] = func(c *CPU) { c.PC = c.addrIndirect(); c.Cycles += 5 }
	t[0x20] = func(c *CPU) { c.jsr(c.addrAbsolute()); c.Cycles += 6 }
	t[0x60] = func(c *CPU) { c.rts(); c.Cycles += 6 }
	t[0x40] = func(c *CPU) { c.rti(); c.Cycles += 6 }
	t[0x00] = func(c *CPU) { c.brk(); c.Cycles += 7 }

	// NOP and documented-equivalent illegal NOPs (cycle-accurate, no
	// side effect besides consuming the addressing-mode bytes).
	t[0xea] = func(c *CPU) { c.Cycles += 2 }
	for _, op := range []byte{0x1a, 0x3a, 0x5a, 0x7a, 0xda, 0xfa} {
		t[op] = func(c *CPU) { c.Cycles += 2 }
	}
	for _, op := range []byte{0x80, 0x82, 0xc2, 0xe2} {
		t[op] = func(c *CPU) { c.addrImmediate(); c.Cycles += 2 }
	}
	for _, op := range []byte{0x04, 0x44, 0x64} {
		t[op] = func(c *CPU) { c.addrZeroPage(); c.Cycles += 3 }
	}
	for _, op := range []byte{0x14, 0x34, 0x54, 0x74, 0xd4, 0xf4} {
		t[op] = func(c *CPU) { c.addrZeroPageX(); c.Cycles += 4 }
	}
	t[0x0c] = func(c *CPU) { c.addrAbsolute(); c.Cycles += 4 }
	for _, op := range []byte{0x1c, 0x3c, 0x5c, 0x7c, 0xdc, 0xfc} {
		t[op] = func(c *CPU) { _, x := c.addrAbsoluteX(); c.Cycles += 4; if x { c.Cycles++ } }
	}

	c.initUndocumentedOpcodeTable()
}
