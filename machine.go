package bc64

// Machine wires together one complete C64: CPU, banked memory, the two
// CIA chips, the VIC-II, the cycle scheduler they all share, and the
// peripheral serial bus. It is the composition root a host program
// talks to; nothing outside this package constructs the pieces
// separately.
type Machine struct {
	CPU       *CPU
	Memory    *Memory
	Scheduler *Scheduler
	CIA1      *CIA
	CIA2      *CIA
	VIC       *VIC2
	Keyboard  *Keyboard
	Serial    *SerialBus

	joystick1 JoystickSource
	joystick2 JoystickSource
}

// NewMachine builds and resets a complete machine around the given ROM
// images. Cartridges, a disk image, input devices and a frame
// presenter are all optional and attached afterward through the
// corresponding Attach* method.
func NewMachine(roms ROMSet) (*Machine, error) {
	m := &Machine{}

	m.Memory = NewMemory()
	if err := m.Memory.AttachROMs(roms); err != nil {
		return nil, err
	}

	m.Scheduler = NewScheduler()
	m.CPU = NewCPU(m.Memory, m.Scheduler)
	m.Keyboard = NewKeyboard()
	m.Serial = NewSerialBus()
	m.CPU.attachSerial(m.Serial)

	m.CIA1 = NewCIA(m.Scheduler, CBTimer1A, CBTimer1B, m.onCIA1Interrupt)
	m.CIA1.AttachKeyboard(m.Keyboard, jostickAdapter{&m.joystick1, 1}, jostickAdapter{&m.joystick2, 2})

	m.CIA2 = NewCIA(m.Scheduler, CBTimer2A, CBTimer2B, m.onCIA2Interrupt)

	m.VIC = NewVIC2(m.Memory, m.Scheduler, m.onVICInterrupt)
	m.VIC.AttachBadLineHook(m.onBadLine)

	m.Memory.attachChips(m.CIA1, m.CIA2, m.VIC)

	m.Reset()
	return m, nil
}

// jostickAdapter lets Machine wire a JoystickSource that can be
// attached or replaced after construction (AttachJoysticks) without the
// CIA holding a stale nil interface.
type jostickAdapter struct {
	slot *JoystickSource
	port int
}

func (j jostickAdapter) PortState(port int) byte {
	if *j.slot == nil {
		return 0xff
	}
	return (*j.slot).PortState(port)
}

// Reset reinitializes memory, the VIC-II and the keyboard matrix and
// reloads the CPU's program counter from the reset vector, as a real
// power-on or RESTORE-key restart would. The two CIAs and the serial
// bus keep their state.
func (m *Machine) Reset() {
	m.Memory.Reset()
	m.VIC.Reset()
	m.Keyboard.Reset()
	m.CPU.Reset()
}

// AttachCartridge maps a cartridge ROM image in at $8000.
func (m *Machine) AttachCartridge(cart Cartridge) {
	m.Memory.AttachCartridge(cart)
}

// AttachDisk installs the image the serial bus's device 8 serves.
func (m *Machine) AttachDisk(d DiskImage) {
	m.Serial.AttachDisk(d)
}

// AttachPresenter installs the sink each completed frame is flushed
// to.
func (m *Machine) AttachPresenter(p FramePresenter) {
	m.VIC.AttachPresenter(p)
}

// AttachJoysticks installs the two joystick port sources; either may
// be nil, reading back as "nothing pressed" (0xff).
func (m *Machine) AttachJoysticks(port1, port2 JoystickSource) {
	m.joystick1 = port1
	m.joystick2 = port2
}

// Step runs exactly one CPU instruction (or interrupt dispatch, or
// JAM) and returns the cycles it consumed.
func (m *Machine) Step() int64 {
	return m.CPU.Step()
}

// Run executes instructions until either limit cycles have elapsed or
// the CPU jams.
func (m *Machine) Run(limit int64) int64 {
	return m.CPU.Run(limit)
}

// onCIA1Interrupt and onVICInterrupt fire on every change to either
// chip's interrupt latch, set or cleared; the combined IRQ line is
// always recomputed fresh from both rather than latched here, since
// either side can deassert independently (a $DC0D read on CIA1, a
// $D019 write on the VIC).
func (m *Machine) onCIA1Interrupt() { m.recomputeIRQ() }
func (m *Machine) onVICInterrupt()  { m.recomputeIRQ() }

func (m *Machine) recomputeIRQ() {
	m.CPU.SetIRQLine(m.CIA1.InterruptAsserted() || m.VIC.InterruptAsserted())
}

// onCIA2Interrupt routes CIA2's interrupt output to NMI rather than
// IRQ, matching real hardware wiring (CIA1 -> IRQ, CIA2 -> NMI). The
// original this was ported from never modeled CIA2 as more than a
// stub, so there was nothing to route; giving it a full timer pair
// means its interrupt output needs a real destination.
func (m *Machine) onCIA2Interrupt() {
	m.CPU.PulseNMI()
}

// onBadLine gives the CPU a flat stall matching the ~40 cycles real
// hardware loses to VIC-II matrix/color fetches on a bad line. The
// scheduler model this core uses doesn't stall mid-instruction, so the
// cost is folded in as extra elapsed cycles at the bad line's start
// instead of a precise per-cycle steal.
func (m *Machine) onBadLine() {
	m.CPU.Cycles += 40
}
