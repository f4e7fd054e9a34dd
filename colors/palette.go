package colors

// PaletteSize is the byte length of a full 256-entry, 3-bytes-per-color DAC
// palette.
const PaletteSize = 768

// ego16 holds the 6-bit DAC (0-63 scale) red/green/blue values for the 16
// standard EGA colors, in Color16 order.
var ego16 = [16][3]uint8{
	{0x00, 0x00, 0x00}, // Black
	{0x00, 0x00, 0x2A}, // Blue
	{0x00, 0x2A, 0x00}, // Green
	{0x00, 0x2A, 0x2A}, // Cyan
	{0x2A, 0x00, 0x00}, // Red
	{0x2A, 0x00, 0x2A}, // Magenta
	{0x2A, 0x15, 0x00}, // Brown
	{0x2A, 0x2A, 0x2A}, // LightGrey
	{0x15, 0x15, 0x15}, // DarkGrey
	{0x15, 0x15, 0x3F}, // LightBlue
	{0x15, 0x3F, 0x15}, // LightGreen
	{0x15, 0x3F, 0x3F}, // LightCyan
	{0x3F, 0x15, 0x15}, // LightRed
	{0x3F, 0x15, 0x3F}, // Pink
	{0x3F, 0x3F, 0x15}, // Yellow
	{0x3F, 0x3F, 0x3F}, // White
}

// DefaultPalette is the 256-entry, 6-bit-per-channel DAC palette loaded
// whenever a writer's SetMode explicitly reasserts the palette (some BIOS
// implementations disturb it across a mode switch). The literal byte table
// the original crate shipped was not available to reproduce directly, so it
// is built in init: entries 0-15 are the 16 EGA colors, 16-31 are black,
// 32-47 are a 16-step grayscale ramp, and 48-255 hold the first 208 of the
// 216 entries of a 6x6x6 color cube.
var DefaultPalette [PaletteSize]uint8

func init() {
	set := func(index int, r, g, b uint8) {
		DefaultPalette[index*3+0] = r
		DefaultPalette[index*3+1] = g
		DefaultPalette[index*3+2] = b
	}

	for i, rgb := range ego16 {
		set(i, rgb[0], rgb[1], rgb[2])
	}

	// Entries 16-31: pure black, kept at zero (matches BIOS reserved gap).

	// Entries 32-47: a 16-step grayscale ramp.
	for i := 0; i < 16; i++ {
		level := uint8(i * 0x3F / 15)
		set(32+i, level, level, level)
	}

	// Entries 48-255: a 6x6x6 color cube over the remaining 208 slots.
	steps := [6]uint8{0x00, 0x0C, 0x18, 0x24, 0x30, 0x3F}
	index := 48
	for r := 0; r < 6 && index < 256; r++ {
		for g := 0; g < 6 && index < 256; g++ {
			for b := 0; b < 6 && index < 256; b++ {
				set(index, steps[r], steps[g], steps[b])
				index++
			}
		}
	}
}
