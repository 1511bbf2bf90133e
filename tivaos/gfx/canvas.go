// Package gfx draws rectangles and text into an RGB565 framebuffer.
package gfx

import (
	"image/color"

	"tivalab/hal"
	"tivalab/tivaos/fonts/font6x8"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var (
	Black  = color.RGBA{A: 0xff}
	White  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Red    = color.RGBA{R: 0xff, A: 0xff}
	Green  = color.RGBA{G: 0xff, A: 0xff}
	Blue   = color.RGBA{B: 0xff, A: 0xff}
	Yellow = color.RGBA{R: 0xff, G: 0xff, A: 0xff}
	Grey   = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
)

// Canvas implements drivers.Displayer on top of a hal.Framebuffer.
// Drawing outside the framebuffer is clipped.
type Canvas struct {
	fb   hal.Framebuffer
	font tinyfont.Fonter
}

var _ drivers.Displayer = (*Canvas)(nil)

// New returns a canvas for fb, or nil when fb is not an RGB565 framebuffer.
func New(fb hal.Framebuffer) *Canvas {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 || fb.Buffer() == nil {
		return nil
	}
	return &Canvas{fb: fb, font: font6x8.Font}
}

func (c *Canvas) Size() (x, y int16) {
	return int16(c.fb.Width()), int16(c.fb.Height())
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || iy < 0 || ix >= c.fb.Width() || iy >= c.fb.Height() {
		return
	}
	c.put(iy*c.fb.StrideBytes()+ix*2, hal.RGB565(col.R, col.G, col.B))
}

// Display presents the frame.
func (c *Canvas) Display() error { return c.fb.Present() }

func (c *Canvas) put(off int, p uint16) {
	buf := c.fb.Buffer()
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

// FillRect paints [x, x+w) x [y, y+h).
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	x0 := clamp(x, 0, c.fb.Width())
	y0 := clamp(y, 0, c.fb.Height())
	x1 := clamp(x+w, 0, c.fb.Width())
	y1 := clamp(y+h, 0, c.fb.Height())
	if x0 >= x1 || y0 >= y1 {
		return
	}

	p := hal.RGB565(col.R, col.G, col.B)
	stride := c.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			c.put(row+px*2, p)
		}
	}
}

func (c *Canvas) Clear(col color.RGBA) {
	c.FillRect(0, 0, c.fb.Width(), c.fb.Height(), col)
}

// Text draws s with its top-left corner at (x, y).
func (c *Canvas) Text(x, y int, s string, col color.RGBA) {
	tinyfont.WriteLine(c, c.font, int16(x), int16(y+font6x8.Ascent), s, col)
}

// TextCentred draws s centred horizontally on cx with its top at y.
func (c *Canvas) TextCentred(cx, y int, s string, col color.RGBA) {
	c.Text(cx-TextWidth(s)/2, y, s, col)
}

// TextBox clears the line box at (x, y) that is cols characters wide and
// draws s into it. It is used for values that are redrawn in place.
func (c *Canvas) TextBox(x, y, cols int, s string, fg, bg color.RGBA) {
	c.FillRect(x, y, cols*font6x8.Width, font6x8.Height, bg)
	if len(s) > cols {
		s = s[:cols]
	}
	c.Text(x, y, s, fg)
}

// TextWidth returns the width of s in pixels.
func TextWidth(s string) int {
	_, w := tinyfont.LineWidth(font6x8.Font, s)
	return int(w)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
