package registers

import "vga/ioport"

// GeneralRegisters groups the miscellaneous input/output status and
// feature-control registers that don't belong to an indexed register file.
type GeneralRegisters struct {
	st00Read     ioport.Port8
	st01ReadCGA  ioport.Port8
	st01ReadMDA  ioport.Port8
	fcrRead      ioport.Port8
	fcrWriteCGA  ioport.Port8
	fcrWriteMDA  ioport.Port8
	msrRead      ioport.Port8
	msrWrite     ioport.Port8
}

// NewGeneralRegisters returns a GeneralRegisters bound to the standard VGA
// port addresses.
func NewGeneralRegisters() GeneralRegisters {
	return GeneralRegisters{
		st00Read:    ioport.Port8{Addr: st00ReadAddress},
		st01ReadCGA: ioport.Port8{Addr: st01ReadCGAAddress},
		st01ReadMDA: ioport.Port8{Addr: st01ReadMDAAddress},
		fcrRead:     ioport.Port8{Addr: fcrReadAddress},
		fcrWriteCGA: ioport.Port8{Addr: fcrCGAWriteAddress},
		fcrWriteMDA: ioport.Port8{Addr: fcrMDAWriteAddress},
		msrRead:     ioport.Port8{Addr: msrReadAddress},
		msrWrite:    ioport.Port8{Addr: msrWriteAddress},
	}
}

// ReadMSR returns the current value of the miscellaneous output register.
func (g *GeneralRegisters) ReadMSR() uint8 { return g.msrRead.Read() }

// WriteMSR writes value to the miscellaneous output register.
func (g *GeneralRegisters) WriteMSR(value uint8) { g.msrWrite.Write(value) }
