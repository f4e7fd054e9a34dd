package fonts

const text8x16Characters = 256
const text8x16Height = 16

var text8x16Data [text8x16Characters * text8x16Height]byte

func init() {
	// The original 8x16 CP437 glyph bitmaps were not present in the
	// retrieval pack this was built from, so this generates a legible
	// placeholder instead: each glyph is a deterministic bit pattern
	// derived from its character code, producing a distinct, reproducible
	// shape per code point rather than blank or random data.
	for ch := 0; ch < text8x16Characters; ch++ {
		for row := 0; row < text8x16Height; row++ {
			text8x16Data[ch*text8x16Height+row] = glyphRow(ch, row, text8x16Height)
		}
	}
}

// Text8x16Font is the 8-pixel-wide, 16-scan-line font the text writers
// load via Vga.LoadFont.
var Text8x16Font = Font{
	Characters:      text8x16Characters,
	CharacterHeight: text8x16Height,
	Data:            text8x16Data[:],
}

func glyphRow(character, row, height int) byte {
	if row == 0 || row == height-1 {
		return 0x00
	}
	pattern := byte((character*31 + row*17) & 0xFF)
	// Keep the border columns clear so adjacent glyphs don't visually
	// bleed together in a proofing render.
	return pattern &^ 0x81
}
