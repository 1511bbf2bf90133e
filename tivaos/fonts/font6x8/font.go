// Package font6x8 is the panel's 6x8 monospace ASCII font.
package font6x8

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	Width   = 6
	Height  = 8
	Ascent  = 7
	first   = 0x20
	last    = 0x7e
	columns = 5
)

// Font implements tinyfont.Fonter. It reuses one glyph value, so it is not
// safe for concurrent use.
var Font tinyfont.Fonter = &font{}

type font struct {
	g glyph
}

func (f *font) GetYAdvance() uint8 { return Height }

func (f *font) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

type glyph struct {
	r rune
}

// Draw paints the glyph with its baseline at y.
func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	cols := glyphColumns(g.r)
	top := y - Ascent
	for col, bits := range cols {
		for row := int16(0); row < Ascent; row++ {
			if bits&(1<<row) != 0 {
				display.SetPixel(x+int16(col), top+row, c)
			}
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    Width,
		Height:   Height,
		XAdvance: Width,
		YOffset:  -Ascent,
	}
}

// glyphColumns returns the five column bitmaps of r, bit 0 at the top.
// Runes outside printable ASCII render as '?'.
func glyphColumns(r rune) []byte {
	if r < first || r > last {
		r = '?'
	}
	i := int(r-first) * columns
	return glyphData[i : i+columns]
}
