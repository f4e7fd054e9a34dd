package registers

import "vga/ioport"

// AttributeControllerIndex indexes the attribute controller register file.
type AttributeControllerIndex uint8

const (
	PaletteRegister0 AttributeControllerIndex = 0x00
	PaletteRegister1 AttributeControllerIndex = 0x01
	PaletteRegister2 AttributeControllerIndex = 0x02
	PaletteRegister3 AttributeControllerIndex = 0x03
	PaletteRegister4 AttributeControllerIndex = 0x04
	PaletteRegister5 AttributeControllerIndex = 0x05
	PaletteRegister6 AttributeControllerIndex = 0x06
	PaletteRegister7 AttributeControllerIndex = 0x07
	PaletteRegister8 AttributeControllerIndex = 0x08
	PaletteRegister9 AttributeControllerIndex = 0x09
	PaletteRegisterA AttributeControllerIndex = 0x0A
	PaletteRegisterB AttributeControllerIndex = 0x0B
	PaletteRegisterC AttributeControllerIndex = 0x0C
	PaletteRegisterD AttributeControllerIndex = 0x0D
	PaletteRegisterE AttributeControllerIndex = 0x0E
	PaletteRegisterF AttributeControllerIndex = 0x0F
	AttributeModeControl     AttributeControllerIndex = 0x10
	OverscanColor            AttributeControllerIndex = 0x11
	MemoryPlaneEnable        AttributeControllerIndex = 0x12
	HorizontalPixelPanning   AttributeControllerIndex = 0x13
	ColorSelect              AttributeControllerIndex = 0x14
)

// AttributeControllerRegisters is the attribute controller's single
// index/data port plus the per-emulation-mode status port used to reset
// its index/data flip-flop.
type AttributeControllerRegisters struct {
	arxIndex    ioport.Port8
	arxData     ioport.Port8
	st01ReadCGA ioport.Port8
	st01ReadMDA ioport.Port8
}

// NewAttributeControllerRegisters returns an AttributeControllerRegisters
// bound to the standard VGA attribute controller ports.
func NewAttributeControllerRegisters() AttributeControllerRegisters {
	return AttributeControllerRegisters{
		arxIndex:    ioport.Port8{Addr: arxIndexAddress},
		arxData:     ioport.Port8{Addr: arxDataAddress},
		st01ReadCGA: ioport.Port8{Addr: st01ReadCGAAddress},
		st01ReadMDA: ioport.Port8{Addr: st01ReadMDAAddress},
	}
}

// Read returns the value of the attribute controller register selected by
// index.
func (a *AttributeControllerRegisters) Read(mode EmulationMode, index AttributeControllerIndex) uint8 {
	a.toggleIndex(mode)
	a.setIndex(index)
	return a.arxData.Read()
}

// Write sets the attribute controller register selected by index to value.
func (a *AttributeControllerRegisters) Write(mode EmulationMode, index AttributeControllerIndex, value uint8) {
	a.toggleIndex(mode)
	a.setIndex(index)
	a.arxIndex.Write(value)
}

// BlankScreen clears the Palette Address Source bit, making the palette
// registers accessible to the CPU and blanking video output.
func (a *AttributeControllerRegisters) BlankScreen(mode EmulationMode) {
	a.toggleIndex(mode)
	value := a.arxIndex.Read()
	a.arxIndex.Write(value & 0xDF)
}

// UnblankScreen sets the Palette Address Source bit, locking the palette
// registers and resuming video output.
func (a *AttributeControllerRegisters) UnblankScreen(mode EmulationMode) {
	a.toggleIndex(mode)
	value := a.arxIndex.Read()
	a.arxIndex.Write(value | 0x20)
}

func (a *AttributeControllerRegisters) setIndex(index AttributeControllerIndex) {
	a.arxIndex.Write(uint8(index))
}

func (a *AttributeControllerRegisters) toggleIndex(mode EmulationMode) {
	switch mode {
	case EmulationModeCga:
		a.st01ReadCGA.Read()
	case EmulationModeMda:
		a.st01ReadMDA.Read()
	}
}
