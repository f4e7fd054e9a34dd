package devices

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vga/drawing"
	"vga/ioport"
)

func TestFindPCIDeviceFindsSeededDevice(t *testing.T) {
	ioport.ResetFake()
	require := require.New(t)

	const vendorID, deviceIDField = 0x1234, 0x1111
	const packed = uint32(deviceIDField)<<16 | uint32(vendorID)

	ioport.SeedPCIConfig(configAddress(0, 5, 0, 0x00), packed)
	ioport.SeedPCIConfig(configAddress(0, 5, 0, 0x10), 0xF0000008)

	dev, ok := FindPCIDevice(packed)
	require.True(ok)
	require.Equal(uint8(0), dev.Bus)
	require.Equal(uint8(5), dev.Slot)
	require.Equal(uint8(0), dev.Function)
	require.Equal(uint16(vendorID), dev.VendorID)
	require.Equal(uint16(deviceIDField), dev.DeviceID)
	require.Equal(uint32(0xF0000008), dev.BAR0)
}

func TestFindPCIDeviceNotFound(t *testing.T) {
	ioport.ResetFake()
	require := require.New(t)

	_, ok := FindPCIDevice(0xDEAD_BEEF)
	require.False(ok)
}

func TestMaskBARClearsLowBits(t *testing.T) {
	require := require.New(t)
	require.Equal(uint32(0xF0000000), MaskBAR(0xF000000F))
	require.Equal(uint32(0xE0000000), MaskBAR(0xE0000001))
}

func seedBochsDevice() {
	ioport.ResetFake()
	ioport.SeedPCIConfig(configAddress(0, 1, 0, 0x00), bochsDeviceID)
	ioport.SeedPCIConfig(configAddress(0, 1, 0, 0x10), 0xE0000000)
}

func TestNewBochsDeviceRequiresPCIPresence(t *testing.T) {
	ioport.ResetFake()
	require := require.New(t)

	_, ok := NewBochsDevice()
	require.False(ok)
}

func TestBochsDeviceCapabilities(t *testing.T) {
	seedBochsDevice()
	require := require.New(t)

	ioport.SeedBochsCapabilities(1920, 1080)

	dev, ok := NewBochsDevice()
	require.True(ok)

	maxWidth, maxHeight := dev.Capabilities()
	require.Equal(1920, maxWidth)
	require.Equal(1080, maxHeight)
}

func TestBochsDeviceSetResolutionTracksCurrentResolution(t *testing.T) {
	seedBochsDevice()
	require := require.New(t)

	dev, ok := NewBochsDevice()
	require.True(ok)

	dev.SetResolution(800, 600)
	w, h := dev.CurrentResolution()
	require.Equal(800, w)
	require.Equal(600, h)
	require.Equal(800, dev.GetWidth())
	require.Equal(600, dev.GetHeight())
	require.Equal(800*600, dev.GetSize())
}

func TestBochsDevicePixelRoundTrip(t *testing.T) {
	seedBochsDevice()
	require := require.New(t)

	dev, ok := NewBochsDevice()
	require.True(ok)
	dev.SetResolution(4, 4)

	dev.SetPixel(2, 1, 0xFF00FF00)
	require.Equal(uint32(0xFF00FF00), dev.frameBuffer.ReadUint32(uintptr((1*4+2)*4)))
}

func TestBochsDeviceSetVirtualAddressRebindsFrameBuffer(t *testing.T) {
	seedBochsDevice()
	require := require.New(t)

	dev, ok := NewBochsDevice()
	require.True(ok)
	dev.SetResolution(4, 4)

	dev.SetVirtualAddress(0x9000_0000)
	dev.SetPixel(1, 1, 0xCAFEBABE)
	require.Equal(uint32(0xCAFEBABE), dev.frameBuffer.ReadUint32(uintptr((1*4+1)*4)))
	require.Equal(uintptr(0x9000_0000), dev.frameBuffer.Base())
}

func TestBochsDeviceDrawLineAndRectangleTouchFrameBuffer(t *testing.T) {
	seedBochsDevice()
	require := require.New(t)

	dev, ok := NewBochsDevice()
	require.True(ok)
	dev.SetResolution(10, 10)

	dev.DrawLine(drawing.Point{X: 0, Y: 0}, drawing.Point{X: 3, Y: 0}, 0x11223344)
	for x := 0; x <= 3; x++ {
		require.Equal(uint32(0x11223344), dev.frameBuffer.ReadUint32(uintptr(x*4)))
	}

	dev.ClearScreen(0)
	dev.FillRectangle(drawing.Rectangle{Left: 1, Top: 1, Right: 3, Bottom: 3}, 0xAABBCCDD)
	require.Equal(uint32(0xAABBCCDD), dev.frameBuffer.ReadUint32(uintptr((1*10+1)*4)))
	require.Equal(uint32(0), dev.frameBuffer.ReadUint32(uintptr((3*10+3)*4)))
}
