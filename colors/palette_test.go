package colors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultPaletteShape(t *testing.T) {
	require := require.New(t)
	require.Len(DefaultPalette, PaletteSize)

	for i, b := range DefaultPalette {
		require.LessOrEqual(b, uint8(0x3F), "entry %d exceeds the 6-bit DAC range", i)
	}
}

func TestDefaultPaletteEGABlock(t *testing.T) {
	require := require.New(t)
	// Black is the all-zero entry, White the brightest of the 16 EGA colors.
	require.Equal([3]uint8{0x00, 0x00, 0x00}, [3]uint8{DefaultPalette[0], DefaultPalette[1], DefaultPalette[2]})
	require.Equal([3]uint8{0x3F, 0x3F, 0x3F}, [3]uint8{DefaultPalette[15*3], DefaultPalette[15*3+1], DefaultPalette[15*3+2]})
}
