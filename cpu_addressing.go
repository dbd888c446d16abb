package bc64

// Addressing-mode helpers. Each advances PC past its operand bytes and
// returns the effective address; the *X/*Y variants also report
// whether indexing crossed a page boundary, since several opcodes
// charge an extra cycle for that and a few (the read-modify-write
// instructions) always pay it regardless.

func (c *CPU) fetch() byte {
	v := c.read(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	v := c.read16(c.PC)
	c.PC += 2
	return v
}

func (c *CPU) addrImmediate() uint16 {
	a := c.PC
	c.PC++
	return a
}

func (c *CPU) addrZeroPage() uint16 {
	return uint16(c.fetch())
}

func (c *CPU) addrZeroPageX() uint16 {
	return uint16(byte(c.fetch() + c.X))
}

func (c *CPU) addrZeroPageY() uint16 {
	return uint16(byte(c.fetch() + c.Y))
}

func (c *CPU) addrAbsolute() uint16 {
	return c.fetch16()
}

func (c *CPU) addrAbsoluteX() (uint16, bool) {
	base := c.fetch16()
	addr := base + uint16(c.X)
	return addr, (base & 0xff00) != (addr & 0xff00)
}

func (c *CPU) addrAbsoluteY() (uint16, bool) {
	base := c.fetch16()
	addr := base + uint16(c.Y)
	return addr, (base & 0xff00) != (addr & 0xff00)
}

func (c *CPU) addrIndirect() uint16 {
	ptr := c.fetch16()
	// the original 6502's indirect JMP bug: if the pointer's low byte
	// is $FF, the high byte is fetched from the start of the same page
	// instead of the next page.
	lo := uint16(c.read(ptr))
	var hiAddr uint16
	if ptr&0xff == 0xff {
		hiAddr = ptr & 0xff00
	} else {
		hiAddr = ptr + 1
	}
	hi := uint16(c.read(hiAddr))
	return lo | hi<<8
}

func (c *CPU) addrIndirectX() uint16 {
	zp := c.fetch() + c.X
	return c.zpRead16(zp)
}

func (c *CPU) addrIndirectY() (uint16, bool) {
	zp := c.fetch()
	base := c.zpRead16(zp)
	addr := base + uint16(c.Y)
	return addr, (base & 0xff00) != (addr & 0xff00)
}

// rmw reads the byte at addr, passes it through fn, writes the
// transformed value back and returns it. Real 6502 read-modify-write
// instructions perform a spurious write of the original value before
// the real one; that extra bus cycle has no visible effect on plain
// RAM but does matter against a live I/O register (e.g. INC $D019),
// so it is reproduced here rather than collapsed into a single write.
func (c *CPU) rmw(addr uint16, fn func(byte) byte) byte {
	v := c.read(addr)
	c.write(addr, v)
	nv := fn(v)
	c.write(addr, nv)
	return nv
}
