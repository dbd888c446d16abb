package bc64

// Video mode bits, matching the MCM/BMM/ECM/IDLE/DISABLED combination
// switch vic_redraw_screen_line dispatches on.
const (
	modeMCM      = 1
	modeBMM      = 2
	modeECM      = 4
	modeIdle     = 8
	modeDisabled = 16
)

const rasterLines = 312

// vicDisconnect gives, for each of the 64 register offsets, the bits
// that read back as permanently set because the real chip never wires
// them to anything (a handful of registers are only 4 or 6 bits wide).
var vicDisconnect = [0x40]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xc0, 0x00,
	0x01, 0x70, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0,
	0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0xf0, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// VIC2 is the MOS 6567/6569 video chip: a 64-byte register bank, a
// raster generator scheduled through the machine's cooperative
// scheduler rather than polled per-cycle, and the per-line renderer in
// vic2_render.go. It is one of the two sources routed to the CPU's
// IRQ line; CIA1 is the other, and CIA2 goes to NMI (both wired by
// Machine).
type VIC2 struct {
	registers [0x40]byte

	raster        int
	rasterCompare int
	videoMode     int
	borderTop     int
	borderBottom  int
	blanked       bool

	vcBase int
	rc     int

	cBuffer [40]byte
	cColors [40]byte

	mem         *Memory
	sched       *Scheduler
	onInterrupt func()
	onBadLine   func()

	presenter FramePresenter
	frame     FrameBuffer
}

const (
	frameWidth     = 403
	frameHeight    = 284
	firstVisRaster = (rasterLines - frameHeight) / 2
)

// NewVIC2 constructs a chip wired to mem for its memory-side fetches
// and sched for raster/redraw timing; onInterrupt is called whenever
// an unmasked interrupt latch bit becomes set, mirroring CIA's wiring.
func NewVIC2(mem *Memory, sched *Scheduler, onInterrupt func()) *VIC2 {
	v := &VIC2{mem: mem, sched: sched, onInterrupt: onInterrupt}
	v.frame = FrameBuffer{Width: frameWidth, Height: frameHeight, Pixels: make([]byte, frameWidth*frameHeight)}
	return v
}

// AttachPresenter installs the host-side sink redraw events are
// flushed to; nil (the zero value) is valid and simply drops frames.
func (v *VIC2) AttachPresenter(p FramePresenter) { v.presenter = p }

// AttachBadLineHook installs a callback the renderer invokes on every
// bad line, letting Machine stall the CPU for the ~40 cycles a real
// bad line steals for matrix/color fetches.
func (v *VIC2) AttachBadLineHook(fn func()) { v.onBadLine = fn }

// Reset reinitializes every register to power-on zero and arms the
// raster/redraw callback chain, mirroring vic_init followed by the
// first callback_raster registration.
func (v *VIC2) Reset() {
	for i := 0; i < 0x2f; i++ {
		v.WriteReg(i, 0)
	}
	v.registers[0x19] = 0 // write-one-to-clear, so WriteReg(0x19, 0) kept it
	v.raster = 0
	v.vcBase = -40
	v.scheduleRaster(0)
}

// scheduleRaster arms the next raster/redraw pair the way
// callback_raster does: redraw the line 8 cycles after it starts,
// advance the raster 63 cycles (one scanline) later.
func (v *VIC2) scheduleRaster(when int64) {
	v.sched.Schedule(CBRedraw, when+8, v.redrawCallback)
	v.sched.Schedule(CBRaster, when+63, func() { v.rasterCallback(when + 63) })
}

func (v *VIC2) rasterCallback(when int64) {
	v.updateRaster(v.raster)
	v.raster++
	if v.raster == rasterLines {
		v.raster = 0
		v.Present()
	}
	v.scheduleRaster(when)
}

func (v *VIC2) redrawCallback() {
	v.renderLine(v.raster)
}

// ReadReg implements a CPU-facing VIC register read at offset addr
// (0-63), mirroring vic_mem_read's special cases for the raster
// counter, light pen (unimplemented, reads 0) and the collision
// latches (clear-on-read).
func (v *VIC2) ReadReg(addr int) byte {
	addr &= 0x3f
	switch addr {
	case 0x11:
		if v.raster&0x100 != 0 {
			return v.registers[0x11] | 0x80
		}
		return v.registers[0x11] & 0x7f
	case 0x12:
		return byte(v.raster)
	case 0x13, 0x14:
		return 0
	case 0x1e, 0x1f:
		data := v.registers[addr]
		v.registers[addr] = 0
		return data
	default:
		return v.registers[addr] | vicDisconnect[addr]
	}
}

// WriteReg implements a CPU-facing VIC register write, mirroring
// vic_mem_write's side effects on the control registers, the memory
// pointer register, and the interrupt latch's write-one-to-clear
// semantics.
func (v *VIC2) WriteReg(addr int, data byte) {
	addr &= 0x3f

	switch addr {
	case 0x11:
		if data&0x80 != 0 {
			v.rasterCompare |= 0x100
		} else {
			v.rasterCompare &^= 0x100
		}
		if v.raster&0x100 != 0 {
			data |= 0x80
		} else {
			data &^= 0x80
		}
		if data&0x40 != 0 {
			v.videoMode |= modeECM
		} else {
			v.videoMode &^= modeECM
		}
		if data&0x20 != 0 {
			v.videoMode |= modeBMM
		} else {
			v.videoMode &^= modeBMM
		}
		if data&0x08 != 0 {
			v.borderTop, v.borderBottom = 0x33, 0xfb
		} else {
			v.borderTop, v.borderBottom = 0x37, 0xf7
		}

	case 0x12:
		v.rasterCompare = (v.rasterCompare & 0x100) | int(data)
		data = byte(v.raster)

	case 0x16:
		if data&0x10 != 0 {
			v.videoMode |= modeMCM
		} else {
			v.videoMode &^= modeMCM
		}

	case 0x18:
		v.mem.SetVideoMemPtr(data)

	case 0x19:
		data = v.registers[0x19] &^ data
		if data&v.registers[0x1a]&0x0f == 0 {
			data &^= 0x80 // no enabled latch left pending
		}
	}

	v.registers[addr] = data &^ vicDisconnect[addr]

	if addr == 0x19 && v.onInterrupt != nil {
		v.onInterrupt()
	}
}

// InterruptAsserted reports whether the VIC currently has an
// unmasked, unacknowledged interrupt pending ($D019 bit 7).
func (v *VIC2) InterruptAsserted() bool { return v.registers[0x19]&0x80 != 0 }

// updateRaster advances the raster counter, mirroring vic_update_raster:
// refresh the live registers, latch (and maybe interrupt) on a raster
// compare match.
func (v *VIC2) updateRaster(value int) {
	v.raster = value

	if v.raster&0x100 != 0 {
		v.registers[0x11] |= 0x80
	} else {
		v.registers[0x11] &^= 0x80
	}
	v.registers[0x12] = byte(v.raster)

	if v.raster == v.rasterCompare {
		v.registers[0x19] |= 0x01
	}
	if v.registers[0x19]&0x01 != 0 && v.registers[0x1a]&0x01 != 0 {
		v.registers[0x19] |= 0x80
		if v.onInterrupt != nil {
			v.onInterrupt()
		}
	}
}

// Present flushes the accumulated frame buffer to the attached
// presenter. rasterCallback calls it once per frame, when the raster
// counter wraps to line 0.
func (v *VIC2) Present() {
	if v.presenter != nil {
		v.presenter.Present(&v.frame)
	}
}

// setPixel stores the raw 4-bit VIC-II color code at (x, y); palette
// lookup to RGB is left to the presenter, consistent with the real
// chip emitting a color-index signal rather than composited video.
func (v *VIC2) setPixel(x, y int, code byte) {
	if x < 0 || x >= v.frame.Width || y < 0 || y >= v.frame.Height {
		return
	}
	v.frame.Pixels[y*v.frame.Width+x] = code & 0x0f
}
