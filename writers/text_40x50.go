package writers

import (
	"vga"
	"vga/fonts"
)

// Text40x50 is the 40-column, 50-row VGA text mode: double the rows of
// Text40x25 by switching to the 8x8 font instead of 8x16.
type Text40x50 struct {
	textCore
}

// NewText40x50 returns a Text40x50 writer. Call SetMode before using it.
func NewText40x50() *Text40x50 {
	return &Text40x50{textCore{width: 40, height: 50, mode: vga.Mode40x50, font: fonts.Text8x8Font}}
}

func (t *Text40x50) SetMode()                                 { t.setMode() }
func (t *Text40x50) ClearScreen()                             { t.clearScreen() }
func (t *Text40x50) FillScreen(ch ScreenCharacter)             { t.fillScreen(ch) }
func (t *Text40x50) WriteCharacter(x, y int, ch ScreenCharacter) { t.writeCharacter(x, y, ch) }
func (t *Text40x50) ReadCharacter(x, y int) ScreenCharacter    { return t.readCharacter(x, y) }
func (t *Text40x50) SetCursor(startScan, endScan uint8)        { t.setCursor(startScan, endScan) }
func (t *Text40x50) EnableCursor()                             { t.enableCursor() }
func (t *Text40x50) DisableCursor()                            { t.disableCursor() }
func (t *Text40x50) SetCursorPosition(x, y int)                { t.setCursorPosition(x, y) }
