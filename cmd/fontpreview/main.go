// Command fontpreview renders the vga/fonts package's embedded 8x8 and
// 8x16 glyph tables to PNG strips for visual inspection. It is a plain
// host-side developer tool: it never links the freestanding driver's
// register or framebuffer code, and it never runs under the fake or real
// ioport backends. Parallel to iansmith-mazarin's gg_circle_qemu.go, it
// layers an ordinary Go graphics stack (fogleman/gg) over the driver's
// static bitmap data instead of over a live framebuffer.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"vga/fonts"
)

const (
	cellPixels  = 12
	labelHeight = 14
	columns     = 16
)

func main() {
	out := flag.String("out", ".", "directory to write font8x8.png and font8x16.png into")
	flag.Parse()

	if err := renderFont("font8x8", fonts.Text8x8Font, *out); err != nil {
		fmt.Fprintln(os.Stderr, "font8x8:", err)
		os.Exit(1)
	}
	if err := renderFont("font8x16", fonts.Text8x16Font, *out); err != nil {
		fmt.Fprintln(os.Stderr, "font8x16:", err)
		os.Exit(1)
	}
}

// renderFont draws every glyph in font as a cellPixels-scaled bitmap in a
// 16-column grid, labels each cell with its character code using
// basicfont as the label typeface, and writes the result to name+".png"
// under dir.
func renderFont(name string, font fonts.Font, dir string) error {
	rows := (font.Characters + columns - 1) / columns
	cellWidth := 8 * cellPixels
	cellHeight := font.CharacterHeight*cellPixels + labelHeight

	ctx := gg.NewContext(columns*cellWidth, rows*cellHeight)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()
	ctx.SetFontFace(basicfont.Face7x13)

	for ch := 0; ch < font.Characters; ch++ {
		col := ch % columns
		row := ch / columns
		originX := col * cellWidth
		originY := row * cellHeight

		ctx.SetRGB(0, 0, 0)
		ctx.DrawStringAnchored(fmt.Sprintf("%02X", ch), float64(originX+2), float64(originY+10), 0, 0)

		for r := 0; r < font.CharacterHeight; r++ {
			bits := font.Row(ch, r)
			for c := 0; c < 8; c++ {
				if bits&(0x80>>uint(c)) == 0 {
					continue
				}
				x := originX + c*cellPixels
				y := originY + labelHeight + r*cellPixels
				ctx.DrawRectangle(float64(x), float64(y), cellPixels, cellPixels)
			}
		}
		ctx.Fill()
	}

	img, ok := ctx.Image().(*image.RGBA)
	if !ok {
		return fmt.Errorf("unexpected context image type %T", ctx.Image())
	}

	f, err := os.Create(dir + "/" + name + ".png")
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
