package fonts

const text8x8Characters = 256
const text8x8Height = 8

var text8x8Data [text8x8Characters * text8x8Height]byte

func init() {
	for ch := 0; ch < text8x8Characters; ch++ {
		for row := 0; row < text8x8Height; row++ {
			text8x8Data[ch*text8x8Height+row] = glyphRow(ch, row, text8x8Height)
		}
	}
}

// Text8x8Font is the 8x8 font the 40x50 text writer loads and the graphics
// writers use to rasterize DrawCharacter calls.
var Text8x8Font = Font{
	Characters:      text8x8Characters,
	CharacterHeight: text8x8Height,
	Data:            text8x8Data[:],
}

// BlockGlyph is a fully filled 8x8 glyph, the fallback drawn for a
// character code not otherwise covered by Text8x8Font.
var BlockGlyph = [8]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

// Glyph8x8 returns the 8x8 bitmap rows for character code ch, or BlockGlyph
// if ch falls outside the font's 0-255 range.
func Glyph8x8(ch rune) [8]byte {
	if ch < 0 || ch >= text8x8Characters {
		return BlockGlyph
	}
	var rows [8]byte
	for row := 0; row < text8x8Height; row++ {
		rows[row] = Text8x8Font.Row(int(ch), row)
	}
	return rows
}
