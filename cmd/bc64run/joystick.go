package main

import "github.com/hajimehoshi/ebiten/v2"

// keypadJoystick implements bc64.JoystickSource over the numeric
// keypad (8/2/4/6 for up/down/left/right, 0 for fire), the desktop
// stand-in for a real joystick the teacher's own hotkey table reserves
// a few keys for. Bits match JoystickSource's documented convention:
// 0 up, 1 down, 2 left, 3 right, 4 fire, active low.
type keypadJoystick struct{}

func (keypadJoystick) PortState(int) byte {
	var v byte = 0xff
	if ebiten.IsKeyPressed(ebiten.KeyNumpad8) {
		v &^= 1 << 0
	}
	if ebiten.IsKeyPressed(ebiten.KeyNumpad2) {
		v &^= 1 << 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyNumpad4) {
		v &^= 1 << 2
	}
	if ebiten.IsKeyPressed(ebiten.KeyNumpad6) {
		v &^= 1 << 3
	}
	if ebiten.IsKeyPressed(ebiten.KeyNumpad0) {
		v &^= 1 << 4
	}
	return v
}
