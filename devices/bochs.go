package devices

import (
	"vga"
	"vga/drawing"
	"vga/fonts"
	"vga/ioport"
	"vga/writers"
)

var _ writers.GraphicsWriter[uint32] = (*BochsDevice)(nil)

// Bochs VBE DISPI (display interface) register indices and command values,
// addressed through one index/data 16-bit port pair.
const (
	bochsIndexPortAddr = 0x1CE
	bochsDataPortAddr  = 0x1CF

	bochsIndexXRES   = 1
	bochsIndexYRES   = 2
	bochsIndexBPP    = 3
	bochsIndexEnable = 4

	bochsGetCaps = 0x02

	bochsDisabled    = 0x00
	bochsEnabled     = 0x01
	bochsLfbEnabled  = 0x40
	bochsBitsPerPixel = 32
)

// bochsDeviceID is the Bochs/QEMU VBE-DISPI adapter's PCI vendor:device
// pair, packed the way FindPCIDevice expects (device in the high word,
// vendor in the low word).
const bochsDeviceID = 0x1111_1234

// BochsDevice drives a Bochs/QEMU VBE-DISPI adapter: capability query,
// resolution switching, and 32-bit-per-pixel linear framebuffer drawing.
// Unlike the writers package's VGA-native graphics writers, it owns its
// registers directly rather than going through the vga package's
// singleton -- the DISPI device is a separate piece of hardware with no
// register overlap with legacy VGA.
type BochsDevice struct {
	index ioport.Port16
	data  ioport.Port16

	frameBufferBase uintptr
	width, height   int
	frameBuffer     vga.FrameBuffer
}

// NewBochsDevice locates the DISPI adapter on the PCI bus and returns a
// BochsDevice bound to it, or false if no such device is present.
func NewBochsDevice() (*BochsDevice, bool) {
	pciDev, ok := FindPCIDevice(bochsDeviceID)
	if !ok {
		return nil, false
	}

	return &BochsDevice{
		index:           ioport.Port16{Addr: bochsIndexPortAddr},
		data:            ioport.Port16{Addr: bochsDataPortAddr},
		frameBufferBase: uintptr(MaskBAR(pciDev.BAR0)),
	}, true
}

func (b *BochsDevice) writeIndexed(index, value uint16) {
	b.index.Write(index)
	b.data.Write(value)
}

func (b *BochsDevice) readIndexed(index uint16) uint16 {
	b.index.Write(index)
	return b.data.Read()
}

// Capabilities returns the maximum resolution the adapter reports, probed
// by switching the ENABLE register into capability-report mode, reading
// XRES/YRES, then restoring whatever ENABLE held before the probe.
func (b *BochsDevice) Capabilities() (maxWidth, maxHeight int) {
	b.index.Write(bochsIndexEnable)
	saved := b.data.Read()

	b.data.Write(bochsGetCaps)
	maxWidth = int(b.readIndexed(bochsIndexXRES))
	maxHeight = int(b.readIndexed(bochsIndexYRES))

	b.writeIndexed(bochsIndexEnable, saved)
	return maxWidth, maxHeight
}

// CurrentResolution returns the resolution most recently passed to
// SetResolution.
func (b *BochsDevice) CurrentResolution() (width, height int) {
	return b.width, b.height
}

// SetVirtualAddress overrides the address drawing operations target,
// independent of the physical BAR0 base NewBochsDevice discovered. Callers
// that map the Bochs linear framebuffer somewhere other than its physical
// address (an identity-mapped freestanding kernel normally doesn't need
// this; one running under a higher-half or paged memory layout does) call
// this once. If a resolution is already set, the frame buffer view is
// rebound to the new base immediately; otherwise the next SetResolution
// uses it.
func (b *BochsDevice) SetVirtualAddress(addr uintptr) {
	b.frameBufferBase = addr
	if b.width != 0 && b.height != 0 {
		b.frameBuffer = vga.NewLinearFrameBuffer(b.frameBufferBase, uintptr(b.width*b.height*4))
	}
}

// SetResolution disables the display, reprograms XRES/YRES/BPP, and
// re-enables it with the linear framebuffer mapped in, then rebinds the
// device's frame buffer view to the new dimensions.
func (b *BochsDevice) SetResolution(width, height int) {
	b.disableDisplay()

	b.writeIndexed(bochsIndexXRES, uint16(width))
	b.writeIndexed(bochsIndexYRES, uint16(height))
	b.writeIndexed(bochsIndexBPP, bochsBitsPerPixel)

	b.enableDisplay()

	b.width, b.height = width, height
	b.frameBuffer = vga.NewLinearFrameBuffer(b.frameBufferBase, uintptr(width*height*4))
}

func (b *BochsDevice) disableDisplay() {
	b.writeIndexed(bochsIndexEnable, bochsDisabled)
}

func (b *BochsDevice) enableDisplay() {
	b.writeIndexed(bochsIndexEnable, bochsEnabled|bochsLfbEnabled)
}

// SetMode is a no-op beyond what SetResolution already did: the DISPI
// device has no separate "mode" register file the way legacy VGA does.
func (b *BochsDevice) SetMode() {}

func (b *BochsDevice) GetWidth() int  { return b.width }
func (b *BochsDevice) GetHeight() int { return b.height }
func (b *BochsDevice) GetSize() int   { return b.width * b.height }

func (b *BochsDevice) ClearScreen(color uint32) {
	for offset := 0; offset < b.GetSize(); offset++ {
		b.frameBuffer.WriteUint32(uintptr(offset*4), color)
	}
}

func (b *BochsDevice) SetPixel(x, y int, color uint32) {
	b.frameBuffer.WriteUint32(uintptr((y*b.width+x)*4), color)
}

func (b *BochsDevice) DrawCharacter(x, y int, ch rune, color uint32) {
	glyph := fonts.Glyph8x8(ch)
	for row := 0; row < 8; row++ {
		bits := glyph[row]
		for col := 0; col < 8; col++ {
			if bits&(0x80>>uint(col)) != 0 {
				b.SetPixel(x+col, y+row, color)
			}
		}
	}
}

func (b *BochsDevice) DrawLine(start, end drawing.Point, color uint32) {
	drawing.DrawLine(start, end, func(x, y int) { b.SetPixel(x, y, color) })
}

func (b *BochsDevice) DrawRectangle(rect drawing.Rectangle, color uint32) {
	drawing.DrawRectangle(rect, func(x, y int) { b.SetPixel(x, y, color) })
}

func (b *BochsDevice) FillRectangle(rect drawing.Rectangle, color uint32) {
	drawing.FillRectangle(rect, func(x, y int) { b.SetPixel(x, y, color) })
}
