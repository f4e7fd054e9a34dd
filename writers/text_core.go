package writers

import (
	"vga"
	"vga/colors"
	"vga/fonts"
	"vga/registers"
)

// textCore implements the shared mechanics behind every TextWriter: screen
// geometry, mode switching, and the cursor/character register sequences
// that don't differ between the three text modes.
type textCore struct {
	width  int
	height int
	mode   vga.VideoMode
	font   fonts.Font

	frameBuffer vga.FrameBuffer
}

func (t *textCore) GetWidth() int  { return t.width }
func (t *textCore) GetHeight() int { return t.height }
func (t *textCore) GetSize() int   { return t.width * t.height }

// setMode switches the card into t.mode, reloads the default 256-color DAC
// palette, loads t.font into the character generator, and records the new
// frame buffer window.
func (t *textCore) setMode() {
	v := vga.Lock()
	defer vga.Unlock()

	t.frameBuffer = v.SetVideoMode(t.mode)
	v.ColorPalette.LoadPalette(&colors.DefaultPalette)
	v.LoadFont(t.font)
}

func (t *textCore) clearScreen() {
	t.fillScreen(BlankCharacter)
}

func (t *textCore) fillScreen(ch ScreenCharacter) {
	for offset := 0; offset < t.GetSize(); offset++ {
		t.writeCharacterAt(offset, ch)
	}
}

func (t *textCore) writeCharacter(x, y int, ch ScreenCharacter) {
	t.writeCharacterAt(y*t.width+x, ch)
}

func (t *textCore) readCharacter(x, y int) ScreenCharacter {
	return t.readCharacterAt(y*t.width + x)
}

func (t *textCore) writeCharacterAt(offset int, ch ScreenCharacter) {
	byteOffset := uintptr(offset * 2)
	t.frameBuffer.WriteByte(byteOffset, ch.Character)
	t.frameBuffer.WriteByte(byteOffset+1, uint8(ch.Color))
}

func (t *textCore) readCharacterAt(offset int) ScreenCharacter {
	byteOffset := uintptr(offset * 2)
	return ScreenCharacter{
		Character: t.frameBuffer.ReadByte(byteOffset),
		Color:     colors.TextModeColor(t.frameBuffer.ReadByte(byteOffset + 1)),
	}
}

func (t *textCore) setCursor(startScan, endScan uint8) {
	v := vga.Lock()
	defer vga.Unlock()
	mode := v.GetEmulationMode()

	start := v.CrtcController.Read(mode, registers.TextCursorStart)
	v.CrtcController.Write(mode, registers.TextCursorStart, (start&0xC0)|startScan)

	end := v.CrtcController.Read(mode, registers.TextCursorEnd)
	v.CrtcController.Write(mode, registers.TextCursorEnd, (end&0xE0)|endScan)
}

func (t *textCore) disableCursor() {
	v := vga.Lock()
	defer vga.Unlock()
	mode := v.GetEmulationMode()
	start := v.CrtcController.Read(mode, registers.TextCursorStart)
	v.CrtcController.Write(mode, registers.TextCursorStart, start|0x20)
}

func (t *textCore) enableCursor() {
	v := vga.Lock()
	defer vga.Unlock()
	mode := v.GetEmulationMode()
	start := v.CrtcController.Read(mode, registers.TextCursorStart)
	v.CrtcController.Write(mode, registers.TextCursorStart, start&^0x20)
}

func (t *textCore) setCursorPosition(x, y int) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		vga.Fault("cursor position (%d, %d) is outside the %dx%d screen", x, y, t.width, t.height)
	}
	offset := uint16(y*t.width + x)

	v := vga.Lock()
	defer vga.Unlock()
	mode := v.GetEmulationMode()
	v.CrtcController.Write(mode, registers.TextCursorLocationLow, uint8(offset&0xFF))
	v.CrtcController.Write(mode, registers.TextCursorLocationHigh, uint8(offset>>8))
}
