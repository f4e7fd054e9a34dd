package registers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vga/ioport"
)

func TestSequencerReadWriteRoundTrip(t *testing.T) {
	ioport.ResetFake()
	require := require.New(t)

	seq := NewSequencerRegisters()
	seq.Write(ClockingMode, 0x01)
	seq.Write(MemoryMode, 0x0E)

	require.Equal(uint8(0x01), seq.Read(ClockingMode))
	require.Equal(uint8(0x0E), seq.Read(MemoryMode))
}

func TestSequencerSetPlaneMaskMasksLowNibble(t *testing.T) {
	ioport.ResetFake()
	require := require.New(t)

	seq := NewSequencerRegisters()
	seq.SetPlaneMask(AllPlanes)
	require.Equal(uint8(0x0F), seq.Read(SeqPlaneMask))

	seq.SetPlaneMask(Plane2)
	require.Equal(uint8(0x04), seq.Read(SeqPlaneMask))

	seq.Write(SeqPlaneMask, 0xA0)
	seq.SetPlaneMask(Plane1)
	require.Equal(uint8(0xA2), seq.Read(SeqPlaneMask))
}

func TestGraphicsControllerSetWriteModePreservesOtherBits(t *testing.T) {
	ioport.ResetFake()
	require := require.New(t)

	gc := NewGraphicsControllerRegisters()
	gc.Write(GraphicsMode, 0x30)
	gc.SetWriteMode(WriteMode2)

	require.Equal(uint8(0x32), gc.Read(GraphicsMode))
}

func TestGraphicsControllerConvenienceRegisters(t *testing.T) {
	ioport.ResetFake()
	require := require.New(t)

	gc := NewGraphicsControllerRegisters()
	gc.WriteSetReset(0x05)
	require.Equal(uint8(0x05), gc.Read(SetReset))

	gc.WriteEnableSetReset(0x0F)
	require.Equal(uint8(0x0F), gc.Read(EnableSetReset))

	gc.SetBitMask(0x80)
	require.Equal(uint8(0x80), gc.Read(BitMask))
}

func TestCrtcControllerRoutesByEmulationMode(t *testing.T) {
	ioport.ResetFake()
	require := require.New(t)

	crtc := NewCrtcControllerRegisters()
	crtc.Write(EmulationModeCga, HorizontalTotal, 0x5F)
	crtc.Write(EmulationModeMda, HorizontalTotal, 0x60)

	require.Equal(uint8(0x5F), crtc.Read(EmulationModeCga, HorizontalTotal))
	require.Equal(uint8(0x60), crtc.Read(EmulationModeMda, HorizontalTotal))
}

func TestAttributeControllerFlipFlopAndReadback(t *testing.T) {
	ioport.ResetFake()
	require := require.New(t)

	arc := NewAttributeControllerRegisters()
	arc.Write(EmulationModeCga, OverscanColor, 0x2A)
	require.Equal(uint8(0x2A), arc.Read(EmulationModeCga, OverscanColor))

	arc.Write(EmulationModeCga, PaletteRegister3, 0x07)
	require.Equal(uint8(0x07), arc.Read(EmulationModeCga, PaletteRegister3))
}

func TestAttributeControllerBlankUnblankScreen(t *testing.T) {
	ioport.ResetFake()
	require := require.New(t)

	arc := NewAttributeControllerRegisters()
	arc.UnblankScreen(EmulationModeCga)
	require.Equal(uint8(0x20), arc.arxIndex.Read()&0x20)

	arc.BlankScreen(EmulationModeCga)
	require.Equal(uint8(0x00), arc.arxIndex.Read()&0x20)
}

func TestColorPaletteRoundTrip(t *testing.T) {
	ioport.ResetFake()
	require := require.New(t)

	palette := NewColorPaletteRegisters()

	var written [PaletteSize]uint8
	for i := range written {
		written[i] = uint8(i % 64)
	}

	palette.LoadPalette(&written)

	var readBack [PaletteSize]uint8
	palette.ReadPalette(&readBack)

	require.Equal(written, readBack)
}

func TestEmulationModeFromByte(t *testing.T) {
	require := require.New(t)
	require.Equal(EmulationModeMda, EmulationModeFromByte(0x00))
	require.Equal(EmulationModeCga, EmulationModeFromByte(0x01))
	require.Equal(EmulationModeCga, EmulationModeFromByte(0x67))
	require.Equal(EmulationModeMda, EmulationModeFromByte(0xFE))
}
