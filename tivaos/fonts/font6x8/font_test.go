package font6x8

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
)

type pixelGrid struct {
	set map[[2]int16]bool
}

func newPixelGrid() *pixelGrid { return &pixelGrid{set: map[[2]int16]bool{}} }

func (p *pixelGrid) Size() (x, y int16)                { return 64, 16 }
func (p *pixelGrid) SetPixel(x, y int16, c color.RGBA) { p.set[[2]int16{x, y}] = true }
func (p *pixelGrid) Display() error                    { return nil }

func TestTableCoversPrintableASCII(t *testing.T) {
	if want := (last - first + 1) * columns; len(glyphData) != want {
		t.Fatalf("glyph table has %d bytes, want %d", len(glyphData), want)
	}
}

func TestLineWidth(t *testing.T) {
	_, w := tinyfont.LineWidth(Font, "Joy 42")
	if w != 6*Width {
		t.Fatalf("LineWidth = %d, want %d", w, 6*Width)
	}
}

func TestDrawBar(t *testing.T) {
	g := newPixelGrid()
	tinyfont.WriteLine(g, Font, 0, Ascent, "|", color.RGBA{A: 0xff})

	// '|' is a single full-height column in the middle of the cell.
	for row := int16(0); row < Ascent; row++ {
		if !g.set[[2]int16{2, row}] {
			t.Fatalf("pixel (2,%d) not set", row)
		}
	}
	if len(g.set) != Ascent {
		t.Fatalf("drew %d pixels, want %d", len(g.set), Ascent)
	}
}

func TestUnknownRuneFallsBack(t *testing.T) {
	want := glyphColumns('?')
	got := glyphColumns('€')
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column %d = %#02x, want %#02x", i, got[i], want[i])
		}
	}
}
