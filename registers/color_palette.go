package registers

import "vga/ioport"

// PaletteSize is the byte length of a full 256-color palette: 256 entries
// of 3 bytes (red, green, blue) each.
const PaletteSize = 768

// ColorPaletteRegisters is the DAC's index/data port group.
type ColorPaletteRegisters struct {
	data      ioport.Port8
	indexRead ioport.Port8
	indexWrite ioport.Port8
}

// NewColorPaletteRegisters returns a ColorPaletteRegisters bound to the
// standard VGA DAC ports.
func NewColorPaletteRegisters() ColorPaletteRegisters {
	return ColorPaletteRegisters{
		data:       ioport.Port8{Addr: paletteDataAddress},
		indexRead:  ioport.Port8{Addr: paletteIndexReadAddr},
		indexWrite: ioport.Port8{Addr: paletteIndexWriteAdr},
	}
}

// LoadPalette writes all 768 bytes of palette starting at DAC index 0.
func (c *ColorPaletteRegisters) LoadPalette(palette *[PaletteSize]uint8) {
	c.indexWrite.Write(0)
	for _, b := range palette {
		c.data.Write(b)
	}
}

// ReadPalette fills palette with the 768 bytes of the current DAC contents,
// starting at index 0.
func (c *ColorPaletteRegisters) ReadPalette(palette *[PaletteSize]uint8) {
	c.indexRead.Write(0)
	for i := range palette {
		palette[i] = c.data.Read()
	}
}
