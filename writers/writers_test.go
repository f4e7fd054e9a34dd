package writers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vga"
	"vga/drawing"
	"vga/ioport"
	"vga/registers"
)

func resetHardwareState() {
	ioport.ResetFake()
	vga.ResetFakeMemory()
}

func TestText80x25ClearAndCharacterRoundTrip(t *testing.T) {
	resetHardwareState()
	require := require.New(t)

	tw := NewText80x25()
	tw.SetMode()
	tw.ClearScreen()

	require.Equal(BlankCharacter, tw.ReadCharacter(0, 0))
	require.Equal(BlankCharacter, tw.ReadCharacter(79, 24))

	ch := ScreenCharacter{Character: 'A', Color: BlankCharacter.Color}
	tw.WriteCharacter(5, 10, ch)
	require.Equal(ch, tw.ReadCharacter(5, 10))

	require.Equal(BlankCharacter, tw.ReadCharacter(6, 10))
}

func TestText80x25FillScreen(t *testing.T) {
	resetHardwareState()
	require := require.New(t)

	tw := NewText80x25()
	tw.SetMode()

	fill := ScreenCharacter{Character: '*', Color: BlankCharacter.Color}
	tw.FillScreen(fill)

	for y := 0; y < tw.GetHeight(); y++ {
		for x := 0; x < tw.GetWidth(); x++ {
			require.Equal(fill, tw.ReadCharacter(x, y))
		}
	}
}

func TestText80x25CursorPositionSplitsHighLowBytes(t *testing.T) {
	resetHardwareState()
	require := require.New(t)

	tw := NewText80x25()
	tw.SetMode()
	tw.SetCursorPosition(12, 3)

	v := vga.Lock()
	mode := v.GetEmulationMode()
	offset := uint16(3*80 + 12)
	require.Equal(uint8(offset&0xFF), v.CrtcController.Read(mode, registers.TextCursorLocationLow))
	require.Equal(uint8(offset>>8), v.CrtcController.Read(mode, registers.TextCursorLocationHigh))
	vga.Unlock()
}

func TestText80x25CursorShapeMasksReservedBits(t *testing.T) {
	resetHardwareState()
	require := require.New(t)

	tw := NewText80x25()
	tw.SetMode()
	tw.SetCursor(0x06, 0x07)

	v := vga.Lock()
	mode := v.GetEmulationMode()
	require.Equal(uint8(0x06), v.CrtcController.Read(mode, registers.TextCursorStart)&0x3F)
	require.Equal(uint8(0x07), v.CrtcController.Read(mode, registers.TextCursorEnd)&0x1F)
	vga.Unlock()

	tw.DisableCursor()
	v = vga.Lock()
	mode = v.GetEmulationMode()
	require.Equal(uint8(0x20), v.CrtcController.Read(mode, registers.TextCursorStart)&0x20)
	vga.Unlock()

	tw.EnableCursor()
	v = vga.Lock()
	mode = v.GetEmulationMode()
	require.Equal(uint8(0x00), v.CrtcController.Read(mode, registers.TextCursorStart)&0x20)
	vga.Unlock()
}

func TestGraphics320x200x256PixelRoundTrip(t *testing.T) {
	resetHardwareState()
	require := require.New(t)

	gw := NewGraphics320x200x256()
	gw.SetMode()

	gw.SetPixel(10, 20, 0x07)
	require.Equal(byte(0x07), gw.frameBuffer.ReadByte(uintptr(20*320+10)))
}

func TestGraphics320x200x256ClearScreenFillsEveryByte(t *testing.T) {
	resetHardwareState()
	require := require.New(t)

	gw := NewGraphics320x200x256()
	gw.SetMode()
	gw.ClearScreen(0x04)

	for offset := 0; offset < gw.GetSize(); offset += 97 {
		require.Equal(byte(0x04), gw.frameBuffer.ReadByte(uintptr(offset)))
	}
}

func TestGraphics320x240x256ClearScreenMemoryBudget(t *testing.T) {
	resetHardwareState()
	require := require.New(t)

	gw := NewGraphics320x240x256()
	gw.SetMode()
	gw.ClearScreen(0x09)

	budget := gw.GetSize() / 4
	for offset := 0; offset < budget; offset += 37 {
		require.Equal(byte(0x09), gw.frameBuffer.ReadByte(uintptr(offset)))
	}

	v := vga.Lock()
	require.Equal(uint8(registers.AllPlanes), v.Sequencer.Read(registers.SeqPlaneMask))
	vga.Unlock()
}

func TestGraphics320x240x256SetPixelSelectsPlaneByColumn(t *testing.T) {
	resetHardwareState()
	require := require.New(t)

	gw := NewGraphics320x240x256()
	gw.SetMode()

	gw.SetPixel(5, 0, 0x0A)

	v := vga.Lock()
	require.Equal(uint8(1<<(5&3)), v.Sequencer.Read(registers.SeqPlaneMask))
	vga.Unlock()

	require.Equal(byte(0x0A), gw.frameBuffer.ReadByte(uintptr((320*0+5)/4)))
}

func TestGraphics640x480x16SetPixelUsesWriteMode2AndBitMask(t *testing.T) {
	resetHardwareState()
	require := require.New(t)

	gw := NewGraphics640x480x16()
	gw.SetMode()

	gw.SetPixel(9, 3, 0x05)

	v := vga.Lock()
	require.Equal(uint8(registers.WriteMode2), v.GraphicsController.Read(registers.GraphicsMode)&0x3)
	require.Equal(uint8(0x80>>(9&7)), v.GraphicsController.Read(registers.BitMask))
	require.Equal(uint8(registers.AllPlanes), v.Sequencer.Read(registers.SeqPlaneMask))
	vga.Unlock()
}

func TestGraphics640x480x16ClearScreenMemoryBudget(t *testing.T) {
	resetHardwareState()
	require := require.New(t)

	gw := NewGraphics640x480x16()
	gw.SetMode()
	gw.ClearScreen(0x0F)

	budget := gw.GetSize() / 8
	for offset := 0; offset < budget; offset += 131 {
		require.Equal(byte(0x0F), gw.frameBuffer.ReadByte(uintptr(offset)))
	}

	v := vga.Lock()
	require.Equal(uint8(0xFF), v.GraphicsController.Read(registers.BitMask))
	vga.Unlock()
}

func TestGraphics640x480x16DrawLineUsesWriteMode0AndSetReset(t *testing.T) {
	resetHardwareState()
	require := require.New(t)

	gw := NewGraphics640x480x16()
	gw.SetMode()

	gw.DrawLine(drawing.Point{X: 0, Y: 0}, drawing.Point{X: 4, Y: 0}, 0x0C)

	v := vga.Lock()
	require.Equal(uint8(0x0C), v.GraphicsController.Read(registers.SetReset))
	require.Equal(uint8(registers.AllPlanes), v.GraphicsController.Read(registers.EnableSetReset))
	require.Equal(uint8(registers.WriteMode0), v.GraphicsController.Read(registers.GraphicsMode)&0x3)
	vga.Unlock()
}
