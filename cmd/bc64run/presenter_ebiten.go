package main

import (
	"bytes"
	"image"
	"image/png"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
	"golang.org/x/image/draw"

	bc64 "github.com/brianhuffman/bc64"
)

// EbitenPresenter implements bc64.FramePresenter with an ebiten.Game,
// translating the core's palettised frame into an RGBA image and
// handling the host's debug hotkeys, grounded on the teacher's
// EbitenOutput (frame buffer behind a mutex, a buffered vsyncChan the
// caller blocks on until the first Draw call, SetFullscreen wired to
// F11). The per-color RGB lookup itself lives in the core's own
// palette.go (ColorRGB) rather than here, since every presenter needs
// the same table.
type EbitenPresenter struct {
	mach *bc64.Machine

	width, height int
	scale         int
	fullscreen    bool

	bufferMutex sync.RWMutex
	rgba        *image.RGBA
	native      *ebiten.Image

	vsyncChan chan struct{}
	running   bool
	paused    bool

	clipboardOnce sync.Once
	clipboardOK   bool

	heldKeys map[ebiten.Key]rune
}

// NewEbitenPresenter builds a presenter for mach's frames at the given
// integer scale factor.
func NewEbitenPresenter(mach *bc64.Machine, scale int, fullscreen bool) *EbitenPresenter {
	if scale < 1 {
		scale = 1
	}
	const frameW, frameH = 403, 284
	return &EbitenPresenter{
		mach:       mach,
		width:      frameW,
		height:     frameH,
		scale:      scale,
		fullscreen: fullscreen,
		rgba:       image.NewRGBA(image.Rect(0, 0, frameW, frameH)),
		vsyncChan:  make(chan struct{}, 1),
		heldKeys:   map[ebiten.Key]rune{},
	}
}

// Present implements bc64.FramePresenter. It is called from the
// machine's single emulation goroutine once per completed frame; the
// mutex hands the converted image to ebiten's own goroutine.
func (p *EbitenPresenter) Present(frame *bc64.FrameBuffer) {
	p.bufferMutex.Lock()
	defer p.bufferMutex.Unlock()

	for y := 0; y < frame.Height && y < p.height; y++ {
		row := y * frame.Width
		for x := 0; x < frame.Width && x < p.width; x++ {
			r, g, b := bc64.ColorRGB(frame.Pixels[row+x])
			o := p.rgba.PixOffset(x, y)
			p.rgba.Pix[o] = r
			p.rgba.Pix[o+1] = g
			p.rgba.Pix[o+2] = b
			p.rgba.Pix[o+3] = 0xff
		}
	}
}

// Run starts the ebiten window and blocks until it is closed or F12 is
// pressed. Like the teacher's Start(), this must run on the OS main
// thread (ebiten's own requirement, not this host's).
func (p *EbitenPresenter) Run() error {
	ebiten.SetWindowSize(p.width*p.scale, p.height*p.scale)
	ebiten.SetWindowTitle("bc64run")
	ebiten.SetWindowResizable(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetVsyncEnabled(true)
	if p.fullscreen {
		ebiten.SetFullscreen(true)
	}
	p.running = true
	return ebiten.RunGame(p)
}

func (p *EbitenPresenter) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		p.fullscreen = !p.fullscreen
		ebiten.SetFullscreen(p.fullscreen)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		p.mach.CPU.PulseNMI()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		p.paused = !p.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPrintScreen) {
		p.copyFrameToClipboard()
	}
	p.routeKeyboard()
	return nil
}

// routeKeyboard drives the machine's keyboard matrix from whichever
// ebiten keys are currently down, the same per-frame polling approach
// the teacher's handleKeyboardInput uses rather than an event queue.
func (p *EbitenPresenter) routeKeyboard() {
	for key, r := range keyRuneTable {
		pressed := ebiten.IsKeyPressed(key)
		_, wasHeld := p.heldKeys[key]
		switch {
		case pressed && !wasHeld:
			p.heldKeys[key] = r
			p.mach.Keyboard.KeyPressRune(r)
		case !pressed && wasHeld:
			delete(p.heldKeys, key)
			p.mach.Keyboard.KeyReleaseRune(r)
		}
	}
}

func (p *EbitenPresenter) Draw(screen *ebiten.Image) {
	p.bufferMutex.RLock()
	if p.native == nil {
		p.native = ebiten.NewImageFromImage(p.rgba)
	} else {
		p.native.WritePixels(p.rgba.Pix)
	}
	p.bufferMutex.RUnlock()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(p.scale), float64(p.scale))
	screen.DrawImage(p.native, op)

	select {
	case p.vsyncChan <- struct{}{}:
	default:
	}
}

func (p *EbitenPresenter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.width * p.scale, p.height * p.scale
}

// copyFrameToClipboard writes the current frame, scaled, to the host
// clipboard as a PNG-encoded image via golang.design/x/clipboard,
// grounded on the teacher's clipboard.Init/clipboard.Write usage.
func (p *EbitenPresenter) copyFrameToClipboard() {
	p.clipboardOnce.Do(func() {
		p.clipboardOK = clipboard.Init() == nil
	})
	if !p.clipboardOK {
		return
	}

	p.bufferMutex.RLock()
	scaled := image.NewRGBA(image.Rect(0, 0, p.width*p.scale, p.height*p.scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), p.rgba, p.rgba.Bounds(), draw.Over, nil)
	p.bufferMutex.RUnlock()

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
}

// waitForFirstFrame blocks until ebiten has drawn at least once,
// matching the teacher's Start() synchronization (a goroutine running
// RunGame can't be observed as "ready" any other way).
func (p *EbitenPresenter) waitForFirstFrame() {
	<-p.vsyncChan
}

// keyRuneTable maps the subset of host keys the core's keyboard matrix
// knows about (see keyboard.go's matrixPosition) to ebiten key codes.
var keyRuneTable = map[ebiten.Key]rune{
	ebiten.KeyDigit0: '0', ebiten.KeyDigit1: '1', ebiten.KeyDigit2: '2', ebiten.KeyDigit3: '3', ebiten.KeyDigit4: '4',
	ebiten.KeyDigit5: '5', ebiten.KeyDigit6: '6', ebiten.KeyDigit7: '7', ebiten.KeyDigit8: '8', ebiten.KeyDigit9: '9',
	ebiten.KeyA: 'a', ebiten.KeyB: 'b', ebiten.KeyC: 'c', ebiten.KeyD: 'd', ebiten.KeyE: 'e',
	ebiten.KeyF: 'f', ebiten.KeyG: 'g', ebiten.KeyH: 'h', ebiten.KeyI: 'i', ebiten.KeyJ: 'j',
	ebiten.KeyK: 'k', ebiten.KeyL: 'l', ebiten.KeyM: 'm', ebiten.KeyN: 'n', ebiten.KeyO: 'o',
	ebiten.KeyP: 'p', ebiten.KeyQ: 'q', ebiten.KeyR: 'r', ebiten.KeyS: 's', ebiten.KeyT: 't',
	ebiten.KeyU: 'u', ebiten.KeyV: 'v', ebiten.KeyW: 'w', ebiten.KeyX: 'x', ebiten.KeyY: 'y',
	ebiten.KeyZ: 'z', ebiten.KeySpace: ' ', ebiten.KeyEnter: '\n',
}
