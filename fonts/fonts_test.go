package fonts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFontShapes(t *testing.T) {
	require := require.New(t)

	require.Equal(256, Text8x8Font.Characters)
	require.Equal(8, Text8x8Font.CharacterHeight)
	require.Len(Text8x8Font.Data, 256*8)

	require.Equal(256, Text8x16Font.Characters)
	require.Equal(16, Text8x16Font.CharacterHeight)
	require.Len(Text8x16Font.Data, 256*16)
}

func TestFontRowIndexesFlatData(t *testing.T) {
	require := require.New(t)
	for ch := 0; ch < Text8x16Font.Characters; ch++ {
		for row := 0; row < Text8x16Font.CharacterHeight; row++ {
			require.Equal(Text8x16Font.Data[ch*Text8x16Font.CharacterHeight+row], Text8x16Font.Row(ch, row))
		}
	}
}

func TestGlyph8x8FallsBackOutsideRange(t *testing.T) {
	require := require.New(t)
	require.Equal(BlockGlyph, Glyph8x8(-1))
	require.Equal(BlockGlyph, Glyph8x8(256))
	require.Equal(BlockGlyph, Glyph8x8(1000))
}

func TestGlyph8x8MatchesFontTable(t *testing.T) {
	require := require.New(t)
	rows := Glyph8x8('A')
	for row := 0; row < 8; row++ {
		require.Equal(Text8x8Font.Row('A', row), rows[row])
	}
}
