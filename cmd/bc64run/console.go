package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/term"

	bc64 "github.com/brianhuffman/bc64"
)

// Console is a raw-mode stdin reader that lets a user single-step or
// set breakpoints on the running machine without the terminal waiting
// for Enter on every keystroke, grounded directly on the teacher's
// TerminalHost (term.MakeRaw/term.Restore, a stop channel, a done
// channel signalling the reader goroutine has exited).
type Console struct {
	mach *bc64.Machine

	fd           int
	oldTermState *term.State

	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once

	breakpoints map[uint16]bool
	paused      bool
	mu          sync.Mutex
}

// NewConsole builds a console driving mach.
func NewConsole(mach *bc64.Machine) *Console {
	return &Console{
		mach:        mach,
		stopCh:      make(chan struct{}),
		done:        make(chan struct{}),
		breakpoints: map[uint16]bool{},
	}
}

// Start puts stdin into raw mode and begins reading single-key
// commands in a goroutine. Call Stop to restore stdin.
func (c *Console) Start() error {
	c.fd = int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(c.fd)
	if err != nil {
		return fmt.Errorf("bc64run: console: failed to set raw mode: %w", err)
	}
	c.oldTermState = oldState

	go c.readLoop()
	return nil
}

// Stop terminates the reading goroutine and restores stdin.
func (c *Console) Stop() {
	c.stopped.Do(func() { close(c.stopCh) })
	<-c.done
	if c.oldTermState != nil {
		_ = term.Restore(c.fd, c.oldTermState)
		c.oldTermState = nil
	}
}

// ShouldStep reports whether the emulation loop should run its next
// burst this tick, i.e. whether the console is not paused. Single-step
// ('n') does not go through here: handleKey calls Step directly.
// Checked once per main-loop tick.
func (c *Console) ShouldStep() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.paused
}

// HitBreakpoint is called by the main loop after every Run burst with
// the PC the burst ended at; if that PC matches an armed breakpoint,
// the console pauses and prints the address, mirroring a debugger's
// break-on-address behavior. Addresses passed through in the middle of
// a burst are not checked.
func (c *Console) HitBreakpoint(pc uint16) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.breakpoints[pc] {
		c.paused = true
		fmt.Fprintf(os.Stderr, "\r\nbreakpoint hit at $%04X\r\n", pc)
	}
}

func (c *Console) readLoop() {
	defer close(c.done)
	r := bufio.NewReader(os.Stdin)

	for {
		select {
		case <-c.stopCh:
			return
		default:
		}

		b, err := r.ReadByte()
		if err != nil {
			return
		}
		c.handleKey(b, r)
	}
}

func (c *Console) handleKey(b byte, r *bufio.Reader) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch b {
	case 'p': // pause/resume
		c.paused = !c.paused
	case 'n': // step one instruction while paused
		if c.paused {
			c.mach.Step()
		}
	case 'b': // b<hex addr>\r - toggle a breakpoint
		line, _ := r.ReadString('\r')
		addr, err := strconv.ParseUint(strings.TrimSpace(line), 16, 16)
		if err != nil {
			return
		}
		pc := uint16(addr)
		if c.breakpoints[pc] {
			delete(c.breakpoints, pc)
		} else {
			c.breakpoints[pc] = true
		}
	case 'r': // print registers
		cpu := c.mach.CPU
		fmt.Fprintf(os.Stderr, "\r\nPC=$%04X A=$%02X X=$%02X Y=$%02X SP=$%02X\r\n",
			cpu.PC, cpu.A, cpu.X, cpu.Y, cpu.SP)
	}
}
