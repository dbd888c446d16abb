// Command bc64run is a reference host for the bc64 core: it loads ROM
// and optional cartridge/disk images from disk (transparently unpacking
// zip/7z/gzip/rar archives), drives the emulated machine in its own
// goroutine, and presents its frames through an ebiten window.
package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	bc64 "github.com/brianhuffman/bc64"
	"github.com/brianhuffman/bc64/cmd/bc64run/romloader"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "bc64run: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	roms, err := loadROMSet(cfg)
	if err != nil {
		return err
	}

	mach, err := bc64.NewMachine(roms)
	if err != nil {
		return fmt.Errorf("build machine: %w", err)
	}

	if cfg.CartPath != "" {
		data, _, err := romloader.Load(cfg.CartPath, nil)
		if err != nil {
			return fmt.Errorf("load cartridge: %w", err)
		}
		mach.AttachCartridge(bc64.Cartridge{Data: data})
	}

	if cfg.DiskPath != "" {
		disk, err := loadDiskImage(cfg.DiskPath)
		if err != nil {
			return fmt.Errorf("load disk image: %w", err)
		}
		mach.AttachDisk(disk)
	}

	presenter := NewEbitenPresenter(mach, cfg.Scale, cfg.Fullscreen)
	mach.AttachPresenter(presenter)

	// The keypad stands in for whichever joystick port the config
	// assigns it to: each of Joystick1Port/Joystick2Port that names
	// port 1 or 2 plugs the keypad into that port.
	var port1, port2 bc64.JoystickSource
	for _, port := range []int{cfg.Joystick1Port, cfg.Joystick2Port} {
		switch port {
		case 1:
			port1 = keypadJoystick{}
		case 2:
			port2 = keypadJoystick{}
		}
	}
	mach.AttachJoysticks(port1, port2)

	console := NewConsole(mach)
	if err := console.Start(); err != nil {
		return err
	}
	defer console.Stop()

	stopCh := make(chan struct{})
	var g errgroup.Group

	// The emulation loop is the goroutine that runs mach; the console
	// ('n' step, 'r' registers) and the presenter (F9 NMI, keyboard
	// matrix) also call into mach from their own goroutines without
	// further synchronization. errgroup supervises the loop's lifetime,
	// replacing hand-rolled WaitGroup + error channel plumbing.
	g.Go(func() error {
		runMachineLoop(mach, console, stopCh)
		return nil
	})

	// ebiten.RunGame must drive the OS main thread, so the presenter
	// itself stays on this goroutine rather than going through the
	// errgroup; run() returning its error is what makes the whole
	// group shut down together.
	runErr := presenter.Run()
	presenter.running = false
	close(stopCh)

	if runErr != nil {
		return fmt.Errorf("presenter: %w", runErr)
	}
	return g.Wait()
}

// runMachineLoop advances the machine a burst of cycles at a time,
// checking the console's pause/breakpoint state between bursts so a
// 'p' keypress takes effect promptly rather than after a whole frame,
// and returns once stopCh is closed (the presenter window closed).
func runMachineLoop(mach *bc64.Machine, console *Console, stopCh <-chan struct{}) {
	const burst = 1000

	for {
		select {
		case <-stopCh:
			return
		default:
		}
		if !console.ShouldStep() {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		mach.Run(burst)
		console.HitBreakpoint(mach.CPU.PC)
	}
}

func loadROMSet(cfg Config) (bc64.ROMSet, error) {
	kernal, _, err := romloader.Load(cfg.KernalPath, []string{".bin", ".rom", ".901227-03", ".901227-02", ".901227-01"})
	if err != nil {
		return bc64.ROMSet{}, fmt.Errorf("load kernal: %w", err)
	}
	basic, _, err := romloader.Load(cfg.BasicPath, []string{".bin", ".rom", ".901226-01"})
	if err != nil {
		return bc64.ROMSet{}, fmt.Errorf("load basic: %w", err)
	}
	chargen, _, err := romloader.Load(cfg.ChargenPath, []string{".bin", ".rom", ".901225-01"})
	if err != nil {
		return bc64.ROMSet{}, fmt.Errorf("load chargen: %w", err)
	}
	return bc64.ROMSet{Kernal: kernal, Basic: basic, Chargen: chargen}, nil
}
