package bc64

// Keyboard implements the 8x8 matrix CIA1 scans through its two ports:
// columns are selected by writing to port A, rows read back through
// port B, with a key appearing as the AND of every row the key's
// column participates in going low. A key is held down by clearing its
// bit and released by setting it, since the matrix is wired active-low
// and this type stores row state the same way, idle rows at 0xff.
type Keyboard struct {
	rows [8]byte
}

// NewKeyboard returns a keyboard with every row idle (no keys held).
func NewKeyboard() *Keyboard {
	kb := &Keyboard{}
	for i := range kb.rows {
		kb.rows[i] = 0xff
	}
	return kb
}

// RowState implements KeyboardSource: the bits of row that read low
// because some held key intersects it.
func (kb *Keyboard) RowState(row int) byte {
	return kb.rows[row&0x07]
}

// KeyPress marks the matrix position (row, col) as held.
func (kb *Keyboard) KeyPress(row, col int) {
	kb.rows[row&0x07] &^= 1 << uint(col&0x07)
}

// KeyRelease marks the matrix position (row, col) as released.
func (kb *Keyboard) KeyRelease(row, col int) {
	kb.rows[row&0x07] |= 1 << uint(col&0x07)
}

// Reset releases every held key, as happens on a cold or warm restart.
func (kb *Keyboard) Reset() {
	for i := range kb.rows {
		kb.rows[i] = 0xff
	}
}

// matrixPosition locates the (row, col) a named key sits at on the
// standard C64 keyboard, grounded on the original's keymap table. Only
// the subset a host actually needs to drive (digits, letters, SPACE and
// RETURN) is included; a host mapping its
// own input device calls KeyPress/KeyRelease directly for anything
// else.
var matrixPosition = map[rune][2]int{
	'1': {7, 0}, '2': {7, 3}, '3': {1, 0}, '4': {1, 3}, '5': {2, 0}, '6': {2, 3}, '7': {3, 0}, '8': {3, 3}, '9': {4, 0}, '0': {4, 3},
	'q': {7, 6}, 'w': {1, 1}, 'e': {1, 6}, 'r': {2, 1}, 't': {2, 6}, 'y': {3, 1}, 'u': {3, 6}, 'i': {4, 1}, 'o': {4, 6}, 'p': {5, 1},
	'a': {1, 2}, 's': {1, 5}, 'd': {2, 2}, 'f': {2, 5}, 'g': {3, 2}, 'h': {3, 5}, 'j': {4, 2}, 'k': {4, 5}, 'l': {5, 2},
	'z': {1, 4}, 'x': {2, 7}, 'c': {2, 4}, 'v': {3, 7}, 'b': {3, 4}, 'n': {4, 7}, 'm': {4, 4},
	' ': {7, 4},
	'\n': {0, 1}, // RETURN
}

// KeyPressRune is a convenience wrapper over KeyPress for hosts driving
// the keyboard from ordinary runes (a terminal or window-toolkit key
// event) rather than raw matrix coordinates. Unknown runes are ignored.
func (kb *Keyboard) KeyPressRune(r rune) {
	if pos, ok := matrixPosition[r]; ok {
		kb.KeyPress(pos[0], pos[1])
	}
}

// KeyReleaseRune is KeyPressRune's release counterpart.
func (kb *Keyboard) KeyReleaseRune(r rune) {
	if pos, ok := matrixPosition[r]; ok {
		kb.KeyRelease(pos[0], pos[1])
	}
}
