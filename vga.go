// Package vga drives standard VGA hardware and its Bochs/QEMU VBE-DISPI
// extension from a freestanding kernel: mode switching, font loading, text
// and planar/linear graphics writers, and display-resolution control, all
// built on the ioport package's port-I/O seam so the whole stack is
// exercisable under `go test` without real hardware.
package vga

import (
	"vga/fonts"
	"vga/registers"
)

// VideoMode names one of the fixed register configurations this package
// knows how to program the card into.
type VideoMode uint8

const (
	Mode40x25 VideoMode = iota
	Mode40x50
	Mode80x25
	Mode320x200x256
	Mode320x240x256
	Mode640x480x16
	Mode1280x800x256
)

func configurationFor(mode VideoMode) *vgaConfiguration {
	switch mode {
	case Mode40x25:
		return &mode40x25Configuration
	case Mode40x50:
		return &mode40x50Configuration
	case Mode80x25:
		return &mode80x25Configuration
	case Mode320x200x256:
		return &mode320x200x256Configuration
	case Mode320x240x256:
		return &mode320x240x256Configuration
	case Mode640x480x16:
		return &mode640x480x16Configuration
	case Mode1280x800x256:
		return &mode1280x800x256Configuration
	}
	Fault("%d is not a known video mode", mode)
	return nil
}

// Vga is the full VGA register state: the five register files plus the
// color palette DAC. Its fields are exported so the writers and devices
// packages can drive individual registers directly, the same way the
// Rust driver's writer types reach straight through to a Vga's register
// fields for the pixel-level operations the high-level methods below don't
// cover.
type Vga struct {
	General              registers.GeneralRegisters
	Sequencer            registers.SequencerRegisters
	GraphicsController   registers.GraphicsControllerRegisters
	AttributeController  registers.AttributeControllerRegisters
	CrtcController       registers.CrtcControllerRegisters
	ColorPalette         registers.ColorPaletteRegisters

	mostRecentVideoMode VideoMode
	haveSetVideoMode    bool

	// videoMemoryStart is the CPU-visible base address the three legacy
	// memory-map windows are offset from. It defaults to the physical
	// identity-mapped 0xA0000; a kernel that maps VGA display memory
	// somewhere else repoints it with SetMemoryStart.
	videoMemoryStart uintptr
}

// defaultVideoMemoryStart is the physical identity-mapped base every real
// VGA card answers to out of reset.
const defaultVideoMemoryStart uintptr = 0xA0000

func newVga() *Vga {
	return &Vga{
		General:             registers.NewGeneralRegisters(),
		Sequencer:           registers.NewSequencerRegisters(),
		GraphicsController:  registers.NewGraphicsControllerRegisters(),
		AttributeController: registers.NewAttributeControllerRegisters(),
		CrtcController:      registers.NewCrtcControllerRegisters(),
		ColorPalette:        registers.NewColorPaletteRegisters(),
		videoMemoryStart:    defaultVideoMemoryStart,
	}
}

var (
	singleton     = newVga()
	singletonLock spinlock
)

// Lock acquires the package-level Vga singleton's spinlock and returns it.
// Callers must call Unlock when done; there is no RAII in Go to do it for
// them, the same tradeoff the freestanding build already accepts by using a
// busy-wait spinlock instead of a scheduler-aware mutex.
func Lock() *Vga {
	singletonLock.Lock()
	return singleton
}

// Unlock releases the lock acquired by Lock.
func Unlock() {
	singletonLock.Unlock()
}

// GetEmulationMode reports which CRTC/status port group the miscellaneous
// output register currently selects.
func (v *Vga) GetEmulationMode() registers.EmulationMode {
	return registers.EmulationModeFromByte(v.General.ReadMSR())
}

// GetMostRecentVideoMode returns the VideoMode passed to the most recent
// SetVideoMode call. Calling it before SetVideoMode faults: there is no
// mode to report yet.
func (v *Vga) GetMostRecentVideoMode() VideoMode {
	if !v.haveSetVideoMode {
		Fault("GetMostRecentVideoMode called before SetVideoMode")
	}
	return v.mostRecentVideoMode
}

// GetFrameBuffer returns the CPU-visible memory window the currently active
// mode banks display memory into, relative to videoMemoryStart.
func (v *Vga) GetFrameBuffer() FrameBuffer {
	misc := v.GraphicsController.Read(registers.Miscellaneous)
	return newFrameBuffer(v.videoMemoryStart, memoryMapModeFromByte(misc))
}

// SetVideoMode programs every register file for mode and returns the frame
// buffer window the new mode uses.
func (v *Vga) SetVideoMode(mode VideoMode) FrameBuffer {
	v.setRegisters(configurationFor(mode))
	v.mostRecentVideoMode = mode
	v.haveSetVideoMode = true
	return v.GetFrameBuffer()
}

// SetMemoryStart relocates the base address GetFrameBuffer's memory-map
// windows are computed from. Callers that map the 0xA0000/0xB0000/0xB8000
// region at a different virtual address call this once so every FrameBuffer
// this package hands out from then on points at the relocated window
// instead of the physical identity-mapped default.
func (v *Vga) SetMemoryStart(base uintptr) {
	v.videoMemoryStart = base
}

// SetDisplayStartAddress repoints the CRTC start address, the display-memory
// offset scanned out first -- the mechanism behind page flipping and smooth
// scrolling.
func (v *Vga) SetDisplayStartAddress(offset uint16) {
	mode := v.GetEmulationMode()
	v.CrtcController.Write(mode, registers.StartAddressHigh, uint8(offset>>8))
	v.CrtcController.Write(mode, registers.StartAddressLow, uint8(offset&0xFF))
}

func (v *Vga) setRegisters(cfg *vgaConfiguration) {
	v.General.WriteMSR(cfg.MiscellaneousOutput)
	mode := v.GetEmulationMode()

	for _, r := range cfg.SequencerRegisters {
		v.Sequencer.Write(r.Index, r.Value)
	}

	v.unlockCrtcRegisters(mode)
	for _, r := range cfg.CrtcControllerRegisters {
		v.CrtcController.Write(mode, r.Index, r.Value)
	}

	for _, r := range cfg.GraphicsControllerRegisters {
		v.GraphicsController.Write(r.Index, r.Value)
	}

	v.AttributeController.BlankScreen(mode)
	for _, r := range cfg.AttributeControllerRegisters {
		v.AttributeController.Write(mode, r.Index, r.Value)
	}

	v.AttributeController.UnblankScreen(mode)
}

// unlockCrtcRegisters clears the write-protect bit guarding CRTC registers
// 0-7, which power-on firmware leaves set to stop a stray BIOS call from
// corrupting display timing.
func (v *Vga) unlockCrtcRegisters(mode registers.EmulationMode) {
	blankEnd := v.CrtcController.Read(mode, registers.HorizontalBlankingEnd)
	v.CrtcController.Write(mode, registers.HorizontalBlankingEnd, blankEnd|0x80)

	syncEnd := v.CrtcController.Read(mode, registers.VerticalSyncEnd)
	v.CrtcController.Write(mode, registers.VerticalSyncEnd, syncEnd&0x7F)
}

// fontCharacterStride is the byte spacing VGA text-mode character generator
// RAM expects between glyphs: 32 bytes regardless of how many scan lines the
// font itself uses.
const fontCharacterStride = 32

type fontRegisterState struct {
	planeMask       uint8
	memoryMode      uint8
	readPlaneSelect uint8
	graphicsMode    uint8
	miscellaneous   uint8
}

func (v *Vga) saveFontRegisters() fontRegisterState {
	return fontRegisterState{
		planeMask:       v.Sequencer.Read(registers.SeqPlaneMask),
		memoryMode:      v.Sequencer.Read(registers.MemoryMode),
		readPlaneSelect: v.GraphicsController.Read(registers.ReadPlaneSelect),
		graphicsMode:    v.GraphicsController.Read(registers.GraphicsMode),
		miscellaneous:   v.GraphicsController.Read(registers.Miscellaneous),
	}
}

func (v *Vga) restoreFontRegisters(s fontRegisterState) {
	v.Sequencer.Write(registers.SeqPlaneMask, s.planeMask)
	v.Sequencer.Write(registers.MemoryMode, s.memoryMode)
	v.GraphicsController.Write(registers.ReadPlaneSelect, s.readPlaneSelect)
	v.GraphicsController.Write(registers.GraphicsMode, s.graphicsMode)
	v.GraphicsController.Write(registers.Miscellaneous, s.miscellaneous)
}

// LoadFont uploads font into plane 2 of display memory, the character
// generator RAM a VGA text mode reads glyph bitmaps from. It temporarily
// reroutes the sequencer and graphics controller to address plane 2
// directly, the same register dance real VGA BIOSes use for INT 10h/1121h.
func (v *Vga) LoadFont(font fonts.Font) {
	saved := v.saveFontRegisters()

	// Switch to flat addressing.
	v.Sequencer.Write(registers.MemoryMode, saved.memoryMode|0x04)

	// Disable odd/even addressing.
	v.GraphicsController.Write(registers.GraphicsMode, saved.graphicsMode&^0x10)
	v.GraphicsController.Write(registers.Miscellaneous, saved.miscellaneous&^0x02)

	// Write font to plane 2.
	v.Sequencer.SetPlaneMask(registers.Plane2)

	fb := v.GetFrameBuffer()
	for ch := 0; ch < font.Characters; ch++ {
		for row := 0; row < font.CharacterHeight; row++ {
			fb.WriteByte(uintptr(ch*fontCharacterStride+row), font.Row(ch, row))
		}
	}

	v.restoreFontRegisters(saved)
}
