package writers

import (
	"vga"
	"vga/colors"
	"vga/drawing"
	"vga/registers"
)

const (
	graphics640x480Width     = 640
	graphics640x480Height    = 480
	graphics640x480BytesWide = graphics640x480Width / 8
)

// Graphics640x480x16 is the 4-bit planar 640x480 mode: one bit per pixel
// per plane, four planes giving a 16-color palette index per pixel. It is
// the one mode that needs the set/reset latch trick to paint more than one
// plane per CPU write.
type Graphics640x480x16 struct {
	frameBuffer vga.FrameBuffer
}

// NewGraphics640x480x16 returns a Graphics640x480x16 writer. Call SetMode
// before using it.
func NewGraphics640x480x16() *Graphics640x480x16 {
	return &Graphics640x480x16{}
}

func (g *Graphics640x480x16) GetWidth() int  { return graphics640x480Width }
func (g *Graphics640x480x16) GetHeight() int { return graphics640x480Height }
func (g *Graphics640x480x16) GetSize() int   { return graphics640x480Width * graphics640x480Height }

func (g *Graphics640x480x16) SetMode() {
	v := vga.Lock()
	defer vga.Unlock()
	g.frameBuffer = v.SetVideoMode(vga.Mode640x480x16)
	v.ColorPalette.LoadPalette(&colors.DefaultPalette)
}

func pixelOffsetAndBit(x, y int) (int, uint8) {
	return (x / 8) + y*graphics640x480BytesWide, 0x80 >> uint(x&7)
}

func (g *Graphics640x480x16) ClearScreen(color uint8) {
	v := vga.Lock()
	v.GraphicsController.SetWriteMode(registers.WriteMode2)
	v.GraphicsController.SetBitMask(0xFF)
	v.Sequencer.SetPlaneMask(registers.AllPlanes)
	vga.Unlock()

	for offset := 0; offset < g.GetSize()/8; offset++ {
		g.frameBuffer.WriteByte(uintptr(offset), color)
	}
}

// SetPixel paints a single pixel using write mode 2: the bit mask selects
// which bit of the target byte the write touches, and the color's low
// nibble selects which planes the hardware actually updates.
func (g *Graphics640x480x16) SetPixel(x, y int, color uint8) {
	offset, bit := pixelOffsetAndBit(x, y)

	v := vga.Lock()
	v.GraphicsController.SetWriteMode(registers.WriteMode2)
	v.GraphicsController.SetBitMask(bit)
	v.Sequencer.SetPlaneMask(registers.AllPlanes)
	vga.Unlock()

	// The dummy read loads the graphics controller's latches with the
	// target byte from every plane; the following write only actually
	// changes the bits selected by the bit mask, substituting color's
	// planes for the rest.
	g.frameBuffer.ReadByte(uintptr(offset))
	g.frameBuffer.WriteByte(uintptr(offset), color)
}

// DrawLine uses write mode 0 with the set/reset latch instead of per-pixel
// mode 2 writes: color is loaded into the Set/Reset register once, then
// every point on the line is painted with a single dummy-read/write pair
// that only varies the bit mask.
func (g *Graphics640x480x16) DrawLine(start, end drawing.Point, color uint8) {
	v := vga.Lock()
	v.GraphicsController.WriteSetReset(color)
	v.GraphicsController.WriteEnableSetReset(uint8(registers.AllPlanes))
	v.GraphicsController.SetWriteMode(registers.WriteMode0)
	vga.Unlock()

	drawing.DrawLine(start, end, func(x, y int) {
		offset, bit := pixelOffsetAndBit(x, y)

		lockV := vga.Lock()
		lockV.GraphicsController.SetBitMask(bit)
		vga.Unlock()

		g.frameBuffer.ReadByte(uintptr(offset))
		g.frameBuffer.WriteByte(uintptr(offset), 0)
	})
}

func (g *Graphics640x480x16) DrawCharacter(x, y int, ch rune, color uint8) {
	v := vga.Lock()
	v.GraphicsController.SetWriteMode(registers.WriteMode2)
	v.GraphicsController.SetBitMask(0xFF)
	v.Sequencer.SetPlaneMask(registers.AllPlanes)
	vga.Unlock()

	drawCharacter(g.SetPixel, x, y, ch, color)
}

// DrawRectangle draws rect's four edges via DrawLine rather than the
// shared per-pixel drawRectangle helper, so it gets DrawLine's set/reset
// fast path instead of one SetPixel call, each with its own register setup,
// per edge point.
func (g *Graphics640x480x16) DrawRectangle(rect drawing.Rectangle, color uint8) {
	p1 := drawing.Point{X: rect.Left, Y: rect.Top}
	p2 := drawing.Point{X: rect.Left, Y: rect.Bottom}
	p3 := drawing.Point{X: rect.Right, Y: rect.Bottom}
	p4 := drawing.Point{X: rect.Right, Y: rect.Top}
	g.DrawLine(p1, p2, color)
	g.DrawLine(p2, p3, color)
	g.DrawLine(p3, p4, color)
	g.DrawLine(p4, p1, color)
}

func (g *Graphics640x480x16) FillRectangle(rect drawing.Rectangle, color uint8) {
	fillRectangle(g.SetPixel, rect, color)
}
