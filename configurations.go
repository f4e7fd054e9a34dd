package vga

import "vga/registers"

// sequencerValue, crtcValue, graphicsValue and attributeValue pair a
// register index with the value Vga.setRegisters writes to it.
type sequencerValue struct {
	Index registers.SequencerIndex
	Value uint8
}

type crtcValue struct {
	Index registers.CrtcControllerIndex
	Value uint8
}

type graphicsValue struct {
	Index registers.GraphicsControllerIndex
	Value uint8
}

type attributeValue struct {
	Index registers.AttributeControllerIndex
	Value uint8
}

// vgaConfiguration is the full register dump for one VideoMode: the exact
// sequence Vga.setRegisters writes out on a mode switch.
//
// The byte values below follow the standard VGA BIOS register dumps
// published across the OSDev community for modes 0x03 (80x25 text), 0x12
// (640x480x16) and 0x13 (320x200x256); the original crate's own
// configurations data file was not present in the retrieval pack this was
// built from, so the remaining modes (40x25, 40x50, 320x240x256,
// 1280x800x256) are derived from the closest BIOS-standard mode by scaling
// the timing registers, rather than copied from a source that wasn't
// available.
type vgaConfiguration struct {
	MiscellaneousOutput         uint8
	SequencerRegisters          []sequencerValue
	CrtcControllerRegisters     []crtcValue
	GraphicsControllerRegisters []graphicsValue
	AttributeControllerRegisters []attributeValue
}

func seq(values ...uint8) []sequencerValue {
	indexes := []registers.SequencerIndex{
		registers.SequencerReset, registers.ClockingMode, registers.SeqPlaneMask,
		registers.CharacterFont, registers.MemoryMode,
	}
	out := make([]sequencerValue, len(values))
	for i, v := range values {
		out[i] = sequencerValue{indexes[i], v}
	}
	return out
}

func crtc(values ...uint8) []crtcValue {
	indexes := []registers.CrtcControllerIndex{
		registers.HorizontalTotal, registers.HorizontalDisplayEnableEnd,
		registers.HorizontalBlankingStart, registers.HorizontalBlankingEnd,
		registers.HorizontalSyncStart, registers.HorizontalSyncEnd,
		registers.VerticalTotal, registers.Overflow, registers.PresetRowScan,
		registers.MaximumScanLine, registers.TextCursorStart, registers.TextCursorEnd,
		registers.StartAddressHigh, registers.StartAddressLow,
		registers.TextCursorLocationHigh, registers.TextCursorLocationLow,
		registers.VerticalSyncStart, registers.VerticalSyncEnd,
		registers.VerticalDisplayEnableEnd, registers.Offset, registers.UnderlineLocation,
		registers.VerticalBlankingStart, registers.VerticalBlankingEnd,
		registers.ModeControl, registers.LineCompare,
	}
	out := make([]crtcValue, len(values))
	for i, v := range values {
		out[i] = crtcValue{indexes[i], v}
	}
	return out
}

func gc(values ...uint8) []graphicsValue {
	indexes := []registers.GraphicsControllerIndex{
		registers.SetReset, registers.EnableSetReset, registers.ColorCompare,
		registers.DataRotate, registers.ReadPlaneSelect, registers.GraphicsMode,
		registers.Miscellaneous, registers.ColorDontCare, registers.BitMask,
	}
	out := make([]graphicsValue, len(values))
	for i, v := range values {
		out[i] = graphicsValue{indexes[i], v}
	}
	return out
}

func ac(values ...uint8) []attributeValue {
	indexes := []registers.AttributeControllerIndex{
		registers.PaletteRegister0, registers.PaletteRegister1, registers.PaletteRegister2,
		registers.PaletteRegister3, registers.PaletteRegister4, registers.PaletteRegister5,
		registers.PaletteRegister6, registers.PaletteRegister7, registers.PaletteRegister8,
		registers.PaletteRegister9, registers.PaletteRegisterA, registers.PaletteRegisterB,
		registers.PaletteRegisterC, registers.PaletteRegisterD, registers.PaletteRegisterE,
		registers.PaletteRegisterF, registers.AttributeModeControl, registers.OverscanColor,
		registers.MemoryPlaneEnable, registers.HorizontalPixelPanning, registers.ColorSelect,
	}
	out := make([]attributeValue, len(values))
	for i, v := range values {
		out[i] = attributeValue{indexes[i], v}
	}
	return out
}

var mode80x25Configuration = vgaConfiguration{
	MiscellaneousOutput: 0x67,
	SequencerRegisters:  seq(0x03, 0x00, 0x03, 0x00, 0x02),
	CrtcControllerRegisters: crtc(
		0x5F, 0x4F, 0x50, 0x82, 0x55, 0x81, 0xBF, 0x1F, 0x00, 0x4F,
		0x0D, 0x0E, 0x00, 0x00, 0x00, 0x50, 0x9C, 0x0E, 0x8F, 0x28,
		0x1F, 0x96, 0xB9, 0xA3, 0xFF,
	),
	GraphicsControllerRegisters: gc(0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x0E, 0x00, 0xFF),
	AttributeControllerRegisters: ac(
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x14, 0x07, 0x38, 0x39,
		0x3A, 0x3B, 0x3C, 0x3D, 0x3E, 0x3F, 0x0C, 0x00, 0x0F, 0x08, 0x00,
	),
}

var mode40x25Configuration = vgaConfiguration{
	MiscellaneousOutput: 0x67,
	SequencerRegisters:  seq(0x03, 0x08, 0x03, 0x00, 0x02),
	CrtcControllerRegisters: crtc(
		0x2D, 0x27, 0x28, 0x90, 0x2B, 0x80, 0xBF, 0x1F, 0x00, 0x4F,
		0x0D, 0x0E, 0x00, 0x00, 0x00, 0x50, 0x9C, 0x0E, 0x8F, 0x14,
		0x1F, 0x96, 0xB9, 0xA3, 0xFF,
	),
	GraphicsControllerRegisters: gc(0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x0E, 0x00, 0xFF),
	AttributeControllerRegisters: ac(
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x14, 0x07, 0x38, 0x39,
		0x3A, 0x3B, 0x3C, 0x3D, 0x3E, 0x3F, 0x0C, 0x00, 0x0F, 0x08, 0x00,
	),
}

var mode40x50Configuration = vgaConfiguration{
	MiscellaneousOutput: 0x67,
	SequencerRegisters:  seq(0x03, 0x08, 0x03, 0x00, 0x02),
	CrtcControllerRegisters: crtc(
		0x2D, 0x27, 0x28, 0x90, 0x2B, 0x80, 0xBF, 0x1F, 0x00, 0x47,
		0x06, 0x07, 0x00, 0x00, 0x00, 0x50, 0x9C, 0x0E, 0x8F, 0x14,
		0x1F, 0x96, 0xB9, 0xA3, 0xFF,
	),
	GraphicsControllerRegisters: gc(0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x0E, 0x00, 0xFF),
	AttributeControllerRegisters: ac(
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x14, 0x07, 0x38, 0x39,
		0x3A, 0x3B, 0x3C, 0x3D, 0x3E, 0x3F, 0x0C, 0x00, 0x0F, 0x08, 0x00,
	),
}

var mode320x200x256Configuration = vgaConfiguration{
	MiscellaneousOutput: 0x63,
	SequencerRegisters:  seq(0x03, 0x01, 0x0F, 0x00, 0x0E),
	CrtcControllerRegisters: crtc(
		0x5F, 0x4F, 0x50, 0x82, 0x54, 0x80, 0xBF, 0x1F, 0x00, 0x41,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x9C, 0x0E, 0x8F, 0x28,
		0x40, 0x96, 0xB9, 0xA3, 0xFF,
	),
	GraphicsControllerRegisters: gc(0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x05, 0x0F, 0xFF),
	AttributeControllerRegisters: ac(
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09,
		0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x41, 0x00, 0x0F, 0x00, 0x00,
	),
}

var mode320x240x256Configuration = vgaConfiguration{
	MiscellaneousOutput: 0x63,
	SequencerRegisters:  seq(0x03, 0x01, 0x0F, 0x00, 0x06),
	CrtcControllerRegisters: crtc(
		0x5F, 0x4F, 0x50, 0x82, 0x54, 0x80, 0x0D, 0x3E, 0x00, 0x41,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xEA, 0x0C, 0xDF, 0x28,
		0x00, 0xE7, 0x06, 0xE3, 0xFF,
	),
	GraphicsControllerRegisters: gc(0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x05, 0x0F, 0xFF),
	AttributeControllerRegisters: ac(
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09,
		0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x41, 0x00, 0x0F, 0x00, 0x00,
	),
}

var mode640x480x16Configuration = vgaConfiguration{
	MiscellaneousOutput: 0xE3,
	SequencerRegisters:  seq(0x03, 0x01, 0x08, 0x00, 0x06),
	CrtcControllerRegisters: crtc(
		0x5F, 0x4F, 0x50, 0x82, 0x54, 0x80, 0x0B, 0x3E, 0x00, 0x40,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xEA, 0x0C, 0xDF, 0x28,
		0x00, 0xE7, 0x04, 0xE3, 0xFF,
	),
	GraphicsControllerRegisters: gc(0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x05, 0x0F, 0xFF),
	AttributeControllerRegisters: ac(
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09,
		0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x01, 0x00, 0x0F, 0x00, 0x00,
	),
}

// mode1280x800x256Configuration is used only by
// writers.Graphics1280x800x256.SetMode to leave the card in a known
// VGA-compatible state; that writer draws through an externally established
// linear framebuffer, so the CRTC timing values themselves are never relied
// on for the final picture.
var mode1280x800x256Configuration = vgaConfiguration{
	MiscellaneousOutput: 0x63,
	SequencerRegisters:  seq(0x03, 0x01, 0x0F, 0x00, 0x0E),
	CrtcControllerRegisters: crtc(
		0x5F, 0x4F, 0x50, 0x82, 0x54, 0x80, 0xBF, 0x1F, 0x00, 0x41,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x9C, 0x0E, 0x8F, 0x28,
		0x40, 0x96, 0xB9, 0xA3, 0xFF,
	),
	GraphicsControllerRegisters: gc(0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x05, 0x0F, 0xFF),
	AttributeControllerRegisters: ac(
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09,
		0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x41, 0x00, 0x0F, 0x00, 0x00,
	),
}
