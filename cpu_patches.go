package bc64

// Kernal high-level patches. The real KERNAL spends most of its time in
// a handful of tight polling loops and byte-at-a-time serial bus
// routines; patching their entry points lets the emulator short-circuit
// straight to the equivalent Go logic instead of interpreting hundreds
// of 6510 cycles per keystroke or per disk byte. A patch is installed
// as a PC-keyed hook the CPU checks before each fetch, which plays the
// same role as the original's "write opcode $02 (JAM) at the patch
// address, then recognize that JAM and dispatch by PC" trick without
// needing to corrupt the ROM image to do it.
//
// Two of these four are exercised by the stock KERNAL today ($EE13 for
// ACPTR, $ED40 for CIOUT); $E5CD (keyboard poll) and $E9D4 (line-copy
// during scrolling) are wired up as well even though they are disabled
// in the interpreter this was ported from, since a kernal that never
// takes the serial path still benefits from the keyboard fast path,
// and leaving it dark would silently resurrect a slow loop the port
// otherwise goes out of its way to avoid.
func (c *CPU) installPatches() {
	c.patches = map[uint16]func(*CPU){
		0xe5cd: patchPollKeyboard,
		0xe9d4: patchCopyScrollLine,
		0xed40: patchSerialWrite,
		0xee13: patchSerialRead,
	}
}

// patchPollKeyboard replaces the KERNAL's "wait for a key" busy loop:
//
//	e5cd: LDA $c6      ; NDX, number of characters in the keyboard queue
//	e5cf: STA $cc      ; BLNSW, cursor blink enable
//	e5d1: STA $0292    ; AUTODN, automatic scroll down
//	e5d4: BEQ $e5cd    ; loop until a key has been buffered
func patchPollKeyboard(c *CPU) {
	v := c.read(0x00c6)
	c.write(0x00cc, v)
	c.write(0x0292, v)
	c.setNZ(v)
	if v == 0 {
		c.PC = 0xe5cd
		c.Cycles += 1 + 3 + 3 + 4 + 2
	} else {
		c.PC = 0xe5d6
		c.Cycles += 3 + 3 + 4 + 2
	}
}

// patchCopyScrollLine replaces the 40-column line-copy loop used when
// scrolling the text screen:
//
//	e9d4: LDA ($ac),Y  ; SAL, screen scrolling pointer
//	e9d6: STA ($d1),Y  ; PNT, screen line pointer
//	e9d8: LDA ($ae),Y  ; EAL, color scrolling pointer
//	e9da: STA ($f3),Y  ; USER, color line pointer
//	e9dc: DEY
//	e9dd: BPL $e9d4    ; loop until the whole line has been copied
func patchCopyScrollLine(c *CPU) {
	srcScreen := c.zpRead16(0xac) + uint16(c.Y)
	c.write(c.zpRead16(0xd1)+uint16(c.Y), c.read(srcScreen))

	srcColor := c.zpRead16(0xae) + uint16(c.Y)
	c.write(c.zpRead16(0xf3)+uint16(c.Y), c.read(srcColor))

	c.Y--
	c.setNZ(c.Y)
	if !c.nz.negative() {
		c.PC = 0xe9d4
		c.Cycles += 1 + 5 + 6 + 5 + 6 + 2 + 2
	} else {
		c.PC = 0xe9df
		c.Cycles += 5 + 6 + 5 + 6 + 2 + 2
	}
}

// patchSerialWrite replaces LISTEN/SECOND/TALK/TKSA/CIOUT's common
// tail: write the byte buffered at $95 (BSOUT) to the serial bus,
// reflecting ATN from CIA2 port A, then resume with carry/IRQ state
// set the way the real routine leaves it before its RTS.
func patchSerialWrite(c *CPU) {
	atn := c.read(0xdd00)&0x08 != 0
	err := c.serial.Write(atn, c.read(0x0095))

	switch err {
	case serialDeviceNotPresent:
		c.write(0x0090, c.read(0x0090)|0x80)
	case serialTimeOut:
		c.write(0x0090, c.read(0x0090)|0x03)
	}

	c.I = false
	c.rts()
}

// patchSerialRead replaces ACPTR's tail: pull one byte from the serial
// bus into A, folding end-of-file and timeout into status byte $90
// exactly as the KERNAL routine would.
func patchSerialRead(c *CPU) {
	result := c.serial.Read()
	if result&serialEndOfFile != 0 {
		c.write(0x0090, c.read(0x0090)|0x40)
	}
	if result == serialTimeOut {
		c.write(0x0090, c.read(0x0090)|0x02)
	}
	c.A = byte(result)
	c.I = false
	c.C = false
	c.rts()
}
