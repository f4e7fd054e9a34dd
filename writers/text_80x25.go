package writers

import (
	"vga"
	"vga/fonts"
)

// Text80x25 is the standard 80-column, 25-row VGA text mode.
type Text80x25 struct {
	textCore
}

// NewText80x25 returns a Text80x25 writer. Call SetMode before using it.
func NewText80x25() *Text80x25 {
	return &Text80x25{textCore{width: 80, height: 25, mode: vga.Mode80x25, font: fonts.Text8x16Font}}
}

func (t *Text80x25) SetMode()                                 { t.setMode() }
func (t *Text80x25) ClearScreen()                             { t.clearScreen() }
func (t *Text80x25) FillScreen(ch ScreenCharacter)             { t.fillScreen(ch) }
func (t *Text80x25) WriteCharacter(x, y int, ch ScreenCharacter) { t.writeCharacter(x, y, ch) }
func (t *Text80x25) ReadCharacter(x, y int) ScreenCharacter    { return t.readCharacter(x, y) }
func (t *Text80x25) SetCursor(startScan, endScan uint8)        { t.setCursor(startScan, endScan) }
func (t *Text80x25) EnableCursor()                             { t.enableCursor() }
func (t *Text80x25) DisableCursor()                            { t.disableCursor() }
func (t *Text80x25) SetCursorPosition(x, y int)                { t.setCursorPosition(x, y) }
