package registers

import "vga/ioport"

// CrtcControllerIndex indexes the CRTC controller register file.
type CrtcControllerIndex uint8

const (
	HorizontalTotal            CrtcControllerIndex = 0x00
	HorizontalDisplayEnableEnd CrtcControllerIndex = 0x01
	HorizontalBlankingStart    CrtcControllerIndex = 0x02
	HorizontalBlankingEnd      CrtcControllerIndex = 0x03
	HorizontalSyncStart        CrtcControllerIndex = 0x04
	HorizontalSyncEnd          CrtcControllerIndex = 0x05
	VerticalTotal              CrtcControllerIndex = 0x06
	Overflow                   CrtcControllerIndex = 0x07
	PresetRowScan              CrtcControllerIndex = 0x08
	MaximumScanLine            CrtcControllerIndex = 0x09
	TextCursorStart            CrtcControllerIndex = 0x0A
	TextCursorEnd              CrtcControllerIndex = 0x0B
	StartAddressHigh           CrtcControllerIndex = 0x0C
	StartAddressLow            CrtcControllerIndex = 0x0D
	TextCursorLocationHigh     CrtcControllerIndex = 0x0E
	TextCursorLocationLow      CrtcControllerIndex = 0x0F
	VerticalSyncStart          CrtcControllerIndex = 0x10
	VerticalSyncEnd            CrtcControllerIndex = 0x11
	VerticalDisplayEnableEnd   CrtcControllerIndex = 0x12
	Offset                     CrtcControllerIndex = 0x13
	UnderlineLocation          CrtcControllerIndex = 0x14
	VerticalBlankingStart      CrtcControllerIndex = 0x15
	VerticalBlankingEnd        CrtcControllerIndex = 0x16
	ModeControl                CrtcControllerIndex = 0x17
	LineCompare                CrtcControllerIndex = 0x18
	MemoryReadLatchData                 CrtcControllerIndex = 0x22
	ToggleStateOfAttributeController    CrtcControllerIndex = 0x24
)

// CrtcControllerRegisters is the CRTC index/data register pair, routed
// through one of two port groups depending on EmulationMode.
type CrtcControllerRegisters struct {
	indexCGA ioport.Port8
	indexMDA ioport.Port8
	dataCGA  ioport.Port8
	dataMDA  ioport.Port8
}

// NewCrtcControllerRegisters returns a CrtcControllerRegisters bound to the
// standard VGA CRTC port groups.
func NewCrtcControllerRegisters() CrtcControllerRegisters {
	return CrtcControllerRegisters{
		indexCGA: ioport.Port8{Addr: crxIndexCGAAddress},
		indexMDA: ioport.Port8{Addr: crxIndexMDAAddress},
		dataCGA:  ioport.Port8{Addr: crxDataCGAAddress},
		dataMDA:  ioport.Port8{Addr: crxDataMDAAddress},
	}
}

// Read returns the value of the CRTC register selected by index, through
// the port group mode selects.
func (c *CrtcControllerRegisters) Read(mode EmulationMode, index CrtcControllerIndex) uint8 {
	c.setIndex(mode, index)
	return c.dataPort(mode).Read()
}

// Write sets the CRTC register selected by index to value, through the
// port group mode selects.
func (c *CrtcControllerRegisters) Write(mode EmulationMode, index CrtcControllerIndex, value uint8) {
	c.setIndex(mode, index)
	c.dataPort(mode).Write(value)
}

func (c *CrtcControllerRegisters) setIndex(mode EmulationMode, index CrtcControllerIndex) {
	c.indexPort(mode).Write(uint8(index))
}

func (c *CrtcControllerRegisters) dataPort(mode EmulationMode) *ioport.Port8 {
	if mode == EmulationModeMda {
		return &c.dataMDA
	}
	return &c.dataCGA
}

func (c *CrtcControllerRegisters) indexPort(mode EmulationMode) *ioport.Port8 {
	if mode == EmulationModeMda {
		return &c.indexMDA
	}
	return &c.indexCGA
}
