package writers

import (
	"vga"
	"vga/colors"
	"vga/drawing"
)

const (
	graphics320x200Width  = 320
	graphics320x200Height = 200
)

// Graphics320x200x256 is the classic linear 8-bit-per-pixel mode (BIOS
// mode 13h): a flat byte-per-pixel framebuffer, one palette index per
// pixel, no planar indirection at all.
type Graphics320x200x256 struct {
	frameBuffer vga.FrameBuffer
}

// NewGraphics320x200x256 returns a Graphics320x200x256 writer. Call SetMode
// before using it.
func NewGraphics320x200x256() *Graphics320x200x256 {
	return &Graphics320x200x256{}
}

func (g *Graphics320x200x256) GetWidth() int  { return graphics320x200Width }
func (g *Graphics320x200x256) GetHeight() int { return graphics320x200Height }
func (g *Graphics320x200x256) GetSize() int   { return graphics320x200Width * graphics320x200Height }

func (g *Graphics320x200x256) SetMode() {
	v := vga.Lock()
	defer vga.Unlock()
	g.frameBuffer = v.SetVideoMode(vga.Mode320x200x256)
	v.ColorPalette.LoadPalette(&colors.DefaultPalette)
}

func (g *Graphics320x200x256) ClearScreen(color uint8) {
	for offset := 0; offset < g.GetSize(); offset++ {
		g.frameBuffer.WriteByte(uintptr(offset), color)
	}
}

func (g *Graphics320x200x256) SetPixel(x, y int, color uint8) {
	g.frameBuffer.WriteByte(uintptr(y*graphics320x200Width+x), color)
}

func (g *Graphics320x200x256) DrawCharacter(x, y int, ch rune, color uint8) {
	drawCharacter(g.SetPixel, x, y, ch, color)
}

func (g *Graphics320x200x256) DrawLine(start, end drawing.Point, color uint8) {
	drawLine(g.SetPixel, start, end, color)
}

func (g *Graphics320x200x256) DrawRectangle(rect drawing.Rectangle, color uint8) {
	drawRectangle(g.SetPixel, rect, color)
}

func (g *Graphics320x200x256) FillRectangle(rect drawing.Rectangle, color uint8) {
	fillRectangle(g.SetPixel, rect, color)
}
