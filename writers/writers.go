// Package writers implements the text and graphics screen writers built on
// top of the vga package's register-level control: one concrete type per
// video mode, sharing the cursor/character helpers a VGA text mode exposes
// and the line/rectangle helpers every graphics mode exposes through its
// own SetPixel.
package writers

import (
	"vga/colors"
	"vga/drawing"
	"vga/fonts"
)

// ScreenCharacter is one VGA text-mode cell: a character code and its
// packed foreground/background attribute byte.
type ScreenCharacter struct {
	Character byte
	Color     colors.TextModeColor
}

// BlankCharacter is what ClearScreen paints a cell to: a space in the
// default yellow-on-black attribute.
var BlankCharacter = ScreenCharacter{
	Character: 0x20,
	Color:     colors.NewTextModeColor(colors.Yellow, colors.Black),
}

// Screen reports the fixed dimensions of a writer's mode.
type Screen interface {
	GetWidth() int
	GetHeight() int
	GetSize() int
}

// TextWriter is the common capability set of the three text modes: mode
// setup, whole-screen fill, per-cell character access, and cursor control.
type TextWriter interface {
	Screen
	SetMode()
	ClearScreen()
	FillScreen(ch ScreenCharacter)
	WriteCharacter(x, y int, ch ScreenCharacter)
	ReadCharacter(x, y int) ScreenCharacter
	SetCursor(startScan, endScan uint8)
	EnableCursor()
	DisableCursor()
	SetCursorPosition(x, y int)
}

// GraphicsWriter is the common capability set of every graphics mode,
// parameterized by the mode's own pixel color representation (an 8-bit
// palette index for the 320x200, 320x240 and 640x480 modes, a 32-bit packed
// value for Graphics1280x800x256 and the Bochs linear framebuffer).
type GraphicsWriter[C any] interface {
	Screen
	SetMode()
	ClearScreen(color C)
	SetPixel(x, y int, color C)
	DrawCharacter(x, y int, ch rune, color C)
	DrawLine(start, end drawing.Point, color C)
	DrawRectangle(rect drawing.Rectangle, color C)
	FillRectangle(rect drawing.Rectangle, color C)
}

// drawLine is the shared DrawLine body every GraphicsWriter delegates to:
// walk the Bresenham iterator, calling the mode's own SetPixel per point.
func drawLine[C any](setPixel func(x, y int, color C), start, end drawing.Point, color C) {
	drawing.DrawLine(start, end, func(x, y int) { setPixel(x, y, color) })
}

// drawRectangle is the shared DrawRectangle body: four lines via
// drawing.DrawRectangle.
func drawRectangle[C any](setPixel func(x, y int, color C), rect drawing.Rectangle, color C) {
	drawing.DrawRectangle(rect, func(x, y int) { setPixel(x, y, color) })
}

// fillRectangle is the shared FillRectangle body: every point inside rect.
func fillRectangle[C any](setPixel func(x, y int, color C), rect drawing.Rectangle, color C) {
	drawing.FillRectangle(rect, func(x, y int) { setPixel(x, y, color) })
}

// drawCharacter is the shared DrawCharacter body: look up ch's 8x8 glyph
// (falling back to a solid block for codes outside the table), and for
// each of its 8 rows and 8 bit positions call setPixel where the bit is
// set.
func drawCharacter[C any](setPixel func(x, y int, color C), x, y int, ch rune, color C) {
	glyph := fonts.Glyph8x8(ch)
	for row := 0; row < 8; row++ {
		bits := glyph[row]
		for col := 0; col < 8; col++ {
			if bits&(0x80>>uint(col)) != 0 {
				setPixel(x+col, y+row, color)
			}
		}
	}
}

var (
	_ TextWriter = (*Text40x25)(nil)
	_ TextWriter = (*Text40x50)(nil)
	_ TextWriter = (*Text80x25)(nil)

	_ GraphicsWriter[uint8]  = (*Graphics320x200x256)(nil)
	_ GraphicsWriter[uint8]  = (*Graphics320x240x256)(nil)
	_ GraphicsWriter[uint8]  = (*Graphics640x480x16)(nil)
	_ GraphicsWriter[uint32] = (*Graphics1280x800x256)(nil)
)
