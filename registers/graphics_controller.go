package registers

import "vga/ioport"

// GraphicsControllerIndex indexes the graphics controller register file.
type GraphicsControllerIndex uint8

const (
	SetReset       GraphicsControllerIndex = 0x0
	EnableSetReset GraphicsControllerIndex = 0x1
	ColorCompare   GraphicsControllerIndex = 0x2
	DataRotate     GraphicsControllerIndex = 0x3
	ReadPlaneSelect GraphicsControllerIndex = 0x4
	GraphicsMode   GraphicsControllerIndex = 0x5
	Miscellaneous  GraphicsControllerIndex = 0x6
	ColorDontCare  GraphicsControllerIndex = 0x7
	BitMask        GraphicsControllerIndex = 0x8
	AddressMapping GraphicsControllerIndex = 0x10
	PageSelector   GraphicsControllerIndex = 0x11
	SoftwareFlags  GraphicsControllerIndex = 0x18
)

// WriteMode selects one of the four CPU-to-display-memory write modes the
// graphics controller supports (bits 0-1 of the Graphics Mode register).
type WriteMode uint8

const (
	WriteMode0 WriteMode = 0
	WriteMode1 WriteMode = 1
	WriteMode2 WriteMode = 2
	WriteMode3 WriteMode = 3
)

// GraphicsControllerRegisters is the graphics controller index/data
// register pair.
type GraphicsControllerRegisters struct {
	index ioport.Port8
	data  ioport.Port8
}

// NewGraphicsControllerRegisters returns a GraphicsControllerRegisters bound
// to the standard VGA graphics controller port pair.
func NewGraphicsControllerRegisters() GraphicsControllerRegisters {
	return GraphicsControllerRegisters{
		index: ioport.Port8{Addr: grxIndexAddress},
		data:  ioport.Port8{Addr: grxDataAddress},
	}
}

// Read returns the value of the graphics controller register selected by
// index.
func (g *GraphicsControllerRegisters) Read(index GraphicsControllerIndex) uint8 {
	g.setIndex(index)
	return g.data.Read()
}

// Write sets the graphics controller register selected by index to value.
func (g *GraphicsControllerRegisters) Write(index GraphicsControllerIndex, value uint8) {
	g.setIndex(index)
	g.data.Write(value)
}

// SetWriteMode sets bits 0-1 of the Graphics Mode register, leaving the
// other bits untouched.
func (g *GraphicsControllerRegisters) SetWriteMode(mode WriteMode) {
	current := g.Read(GraphicsMode)
	g.Write(GraphicsMode, (current&0xFC)|uint8(mode))
}

// WriteSetReset writes the low nibble of color to the Set/Reset register,
// the palette-index source write mode 0 substitutes for every masked bit.
// The register's high nibble is left untouched.
func (g *GraphicsControllerRegisters) WriteSetReset(value uint8) {
	current := g.Read(SetReset)
	g.Write(SetReset, (current&0xF0)|(value&0x0F))
}

// WriteEnableSetReset writes value to the Enable Set/Reset register,
// selecting which of the four planes honor the Set/Reset register.
func (g *GraphicsControllerRegisters) WriteEnableSetReset(value uint8) {
	g.Write(EnableSetReset, value)
}

// SetBitMask writes value to the Bit Mask register, selecting which bits of
// the CPU data a plane write in mode 2 actually applies.
func (g *GraphicsControllerRegisters) SetBitMask(value uint8) {
	g.Write(BitMask, value)
}

func (g *GraphicsControllerRegisters) setIndex(index GraphicsControllerIndex) {
	g.index.Write(uint8(index))
}
