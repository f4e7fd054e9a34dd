package writers

import (
	"vga"
	"vga/drawing"
)

// Graphics1280x800x256 draws onto a packed 32-bit-per-pixel linear
// framebuffer. Unlike the other graphics writers it does not draw through a
// legacy VGA memory-map window: it assumes something else (firmware, or a
// prior Bochs DISPI mode switch) has already established the linear
// surface, and simply writes through it.
type Graphics1280x800x256 struct {
	width, height int
	frameBuffer   vga.FrameBuffer
}

// NewGraphics1280x800x256 returns a writer over a caller-supplied linear
// framebuffer physical address.
func NewGraphics1280x800x256(base uintptr, width, height int) *Graphics1280x800x256 {
	return &Graphics1280x800x256{
		width:       width,
		height:      height,
		frameBuffer: vga.NewLinearFrameBuffer(base, uintptr(width*height*4)),
	}
}

func (g *Graphics1280x800x256) GetWidth() int  { return g.width }
func (g *Graphics1280x800x256) GetHeight() int { return g.height }
func (g *Graphics1280x800x256) GetSize() int   { return g.width * g.height }

// SetMode programs the VGA register-level state the original mode table
// expects for 1280x800x256 before the caller hands the linear framebuffer
// over for use.
func (g *Graphics1280x800x256) SetMode() {
	v := vga.Lock()
	defer vga.Unlock()
	v.SetVideoMode(vga.Mode1280x800x256)
}

func (g *Graphics1280x800x256) ClearScreen(color uint32) {
	for offset := 0; offset < g.GetSize(); offset++ {
		g.frameBuffer.WriteUint32(uintptr(offset*4), color)
	}
}

func (g *Graphics1280x800x256) SetPixel(x, y int, color uint32) {
	g.frameBuffer.WriteUint32(uintptr((y*g.width+x)*4), color)
}

func (g *Graphics1280x800x256) DrawCharacter(x, y int, ch rune, color uint32) {
	drawCharacter(g.SetPixel, x, y, ch, color)
}

func (g *Graphics1280x800x256) DrawLine(start, end drawing.Point, color uint32) {
	drawLine(g.SetPixel, start, end, color)
}

func (g *Graphics1280x800x256) DrawRectangle(rect drawing.Rectangle, color uint32) {
	drawRectangle(g.SetPixel, rect, color)
}

func (g *Graphics1280x800x256) FillRectangle(rect drawing.Rectangle, color uint32) {
	fillRectangle(g.SetPixel, rect, color)
}
