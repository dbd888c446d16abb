package bc64

// vicPalette gives the RGB value of each of the VIC-II's 16 fixed
// color codes, in the conventional numbering (0=black ... 15=light
// grey) used throughout the register map (border, background, sprite
// and character colors are all 4-bit indices into this table).
var vicPalette = [16][3]byte{
	{0x00, 0x00, 0x00}, // 0 black
	{0xff, 0xff, 0xff}, // 1 white
	{0x68, 0x37, 0x2b}, // 2 red
	{0x70, 0xa4, 0xb2}, // 3 cyan
	{0x6f, 0x3d, 0x86}, // 4 purple
	{0x58, 0x8d, 0x43}, // 5 green
	{0x35, 0x28, 0x79}, // 6 blue
	{0xb8, 0xc7, 0x6f}, // 7 yellow
	{0x6f, 0x4f, 0x25}, // 8 orange
	{0x43, 0x39, 0x00}, // 9 brown
	{0x9a, 0x67, 0x59}, // 10 light red
	{0x44, 0x44, 0x44}, // 11 dark grey
	{0x6c, 0x6c, 0x6c}, // 12 grey
	{0x9a, 0xd2, 0x84}, // 13 light green
	{0x6c, 0x5e, 0xb5}, // 14 light blue
	{0x95, 0x95, 0x95}, // 15 light grey
}

// ColorRGB resolves a VIC-II palette index (as stored in a FrameBuffer
// pixel) to its RGB triple, for presenters that need to rasterize
// rather than consume the index directly.
func ColorRGB(code byte) (r, g, b byte) {
	c := vicPalette[code&0x0f]
	return c[0], c[1], c[2]
}
