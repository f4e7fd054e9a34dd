package writers

import (
	"vga"
	"vga/fonts"
)

// Text40x25 is the wide-character 40-column, 25-row VGA text mode.
type Text40x25 struct {
	textCore
}

// NewText40x25 returns a Text40x25 writer. Call SetMode before using it.
func NewText40x25() *Text40x25 {
	return &Text40x25{textCore{width: 40, height: 25, mode: vga.Mode40x25, font: fonts.Text8x16Font}}
}

func (t *Text40x25) SetMode()                                 { t.setMode() }
func (t *Text40x25) ClearScreen()                             { t.clearScreen() }
func (t *Text40x25) FillScreen(ch ScreenCharacter)             { t.fillScreen(ch) }
func (t *Text40x25) WriteCharacter(x, y int, ch ScreenCharacter) { t.writeCharacter(x, y, ch) }
func (t *Text40x25) ReadCharacter(x, y int) ScreenCharacter    { return t.readCharacter(x, y) }
func (t *Text40x25) SetCursor(startScan, endScan uint8)        { t.setCursor(startScan, endScan) }
func (t *Text40x25) EnableCursor()                             { t.enableCursor() }
func (t *Text40x25) DisableCursor()                            { t.disableCursor() }
func (t *Text40x25) SetCursorPosition(x, y int)                { t.setCursorPosition(x, y) }
