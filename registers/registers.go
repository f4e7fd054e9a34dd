// Package registers provides typed access to the VGA register files: the
// general, sequencer, graphics controller, attribute controller, and CRTC
// controller registers, plus the color palette DAC.
package registers

import "fmt"

// Port addresses, as wired on standard VGA hardware.
const (
	st00ReadAddress      = 0x3C2
	st01ReadCGAAddress   = 0x3DA
	st01ReadMDAAddress   = 0x3BA
	fcrReadAddress       = 0x3CA
	fcrCGAWriteAddress   = 0x3DA
	fcrMDAWriteAddress   = 0x3BA
	msrReadAddress       = 0x3CC
	msrWriteAddress      = 0x3C2
	srxIndexAddress      = 0x3C4
	srxDataAddress       = 0x3C5
	grxIndexAddress      = 0x3CE
	grxDataAddress       = 0x3CF
	arxIndexAddress      = 0x3C0
	arxDataAddress       = 0x3C1
	crxIndexCGAAddress   = 0x3D4
	crxIndexMDAAddress   = 0x3B4
	crxDataCGAAddress    = 0x3D5
	crxDataMDAAddress    = 0x3B5
	paletteDataAddress   = 0x3C9
	paletteIndexReadAddr = 0x3C7
	paletteIndexWriteAdr = 0x3C8
)

// EmulationMode distinguishes the monochrome (MDA) and color (CGA) port
// groups that the CRTC controller and attribute controller multiplex
// between, as reported by bit 0 of the miscellaneous output register.
type EmulationMode uint8

const (
	// EmulationModeMda addresses the monochrome CRTC/status port group.
	EmulationModeMda EmulationMode = 0x0
	// EmulationModeCga addresses the color CRTC/status port group.
	EmulationModeCga EmulationMode = 0x1
)

// Fault is this package's halt path for register-level invariant
// violations. It defaults to panicking, matching the freestanding code's
// halt-with-diagnostic failure mode; callers may override it to route
// through a kernel's own fatal-error path.
var Fault = func(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}

// EmulationModeFromByte converts the low bit of the miscellaneous output
// register into an EmulationMode. Only bit 0 is examined, so every byte
// maps to one of the two modes.
func EmulationModeFromByte(value uint8) EmulationMode {
	switch value & 0x1 {
	case 0x0:
		return EmulationModeMda
	case 0x1:
		return EmulationModeCga
	}
	Fault("%#x is not a valid emulation mode", value)
	return EmulationModeMda
}
