package writers

import (
	"vga"
	"vga/colors"
	"vga/drawing"
	"vga/registers"
)

const (
	graphics320x240Width  = 320
	graphics320x240Height = 240
)

// Graphics320x240x256 is "Mode X": 320x240 at 8 bits per pixel, stored
// 4-way interleaved across the four bit planes so that four adjacent
// pixels share one byte offset and are disambiguated by the sequencer's
// plane mask.
type Graphics320x240x256 struct {
	frameBuffer vga.FrameBuffer
}

// NewGraphics320x240x256 returns a Graphics320x240x256 writer. Call SetMode
// before using it.
func NewGraphics320x240x256() *Graphics320x240x256 {
	return &Graphics320x240x256{}
}

func (g *Graphics320x240x256) GetWidth() int  { return graphics320x240Width }
func (g *Graphics320x240x256) GetHeight() int { return graphics320x240Height }
func (g *Graphics320x240x256) GetSize() int   { return graphics320x240Width * graphics320x240Height }

func (g *Graphics320x240x256) SetMode() {
	v := vga.Lock()
	defer vga.Unlock()
	g.frameBuffer = v.SetVideoMode(vga.Mode320x240x256)
	v.ColorPalette.LoadPalette(&colors.DefaultPalette)
}

func (g *Graphics320x240x256) ClearScreen(color uint8) {
	v := vga.Lock()
	v.Sequencer.SetPlaneMask(registers.AllPlanes)
	vga.Unlock()

	for offset := 0; offset < g.GetSize()/4; offset++ {
		g.frameBuffer.WriteByte(uintptr(offset), color)
	}
}

func (g *Graphics320x240x256) SetPixel(x, y int, color uint8) {
	plane := registers.PlaneMask(1 << uint(x&3))

	v := vga.Lock()
	v.Sequencer.SetPlaneMask(plane)
	vga.Unlock()

	offset := (graphics320x240Width*y + x) / 4
	g.frameBuffer.WriteByte(uintptr(offset), color)
}

func (g *Graphics320x240x256) DrawCharacter(x, y int, ch rune, color uint8) {
	drawCharacter(g.SetPixel, x, y, ch, color)
}

func (g *Graphics320x240x256) DrawLine(start, end drawing.Point, color uint8) {
	drawLine(g.SetPixel, start, end, color)
}

func (g *Graphics320x240x256) DrawRectangle(rect drawing.Rectangle, color uint8) {
	drawRectangle(g.SetPixel, rect, color)
}

func (g *Graphics320x240x256) FillRectangle(rect drawing.Rectangle, color uint8) {
	fillRectangle(g.SetPixel, rect, color)
}
