package gfx

import (
	"testing"

	"tivalab/hal"
)

type testFB struct {
	w, h     int
	buf      []byte
	presents int
}

func newTestFB(w, h int) *testFB {
	return &testFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) ClearRGB(r, g, b uint8)  {}
func (f *testFB) Present() error { f.presents++; return nil }

func (f *testFB) at(x, y int) uint16 {
	i := y*f.w*2 + x*2
	return uint16(f.buf[i]) | uint16(f.buf[i+1])<<8
}

func (f *testFB) count(p uint16) int {
	n := 0
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			if f.at(x, y) == p {
				n++
			}
		}
	}
	return n
}

var white565 = hal.RGB565(0xff, 0xff, 0xff)

func TestFillRectClips(t *testing.T) {
	fb := newTestFB(16, 16)
	c := New(fb)

	c.FillRect(-4, 12, 8, 10, White)
	if got := fb.count(white565); got != 4*4 {
		t.Fatalf("painted %d pixels, want 16", got)
	}
	if fb.at(3, 15) != white565 || fb.at(4, 15) != 0 {
		t.Fatal("clip edges wrong")
	}
}

func TestFillRectEmpty(t *testing.T) {
	fb := newTestFB(8, 8)
	c := New(fb)
	c.FillRect(2, 2, 0, 5, White)
	c.FillRect(20, 20, 3, 3, White)
	if fb.count(white565) != 0 {
		t.Fatal("empty or off-screen rect painted pixels")
	}
}

func TestSetPixelClips(t *testing.T) {
	fb := newTestFB(4, 4)
	c := New(fb)
	c.SetPixel(-1, 0, White)
	c.SetPixel(4, 0, White)
	c.SetPixel(3, 3, White)
	if fb.count(white565) != 1 || fb.at(3, 3) != white565 {
		t.Fatal("SetPixel did not clip")
	}
}

func TestTextCentred(t *testing.T) {
	fb := newTestFB(64, 16)
	c := New(fb)
	c.TextCentred(32, 0, "I", White)

	// 'I' is 6 wide, so its cell starts at x=29 and its stem is column 2.
	for y := 0; y < 7; y++ {
		if fb.at(31, y) != white565 {
			t.Fatalf("stem pixel (31,%d) not set", y)
		}
	}
	if fb.at(31, 7) != 0 {
		t.Fatal("text drew below the cell")
	}
}

func TestTextBoxClearsOldValue(t *testing.T) {
	fb := newTestFB(32, 8)
	c := New(fb)
	c.FillRect(0, 0, 32, 8, White)
	c.TextBox(0, 0, 3, "", White, Black)
	for x := 0; x < 18; x++ {
		if fb.at(x, 4) != 0 {
			t.Fatalf("pixel %d not cleared", x)
		}
	}
	if fb.at(18, 4) != white565 {
		t.Fatal("box cleared past its width")
	}
}

func TestDisplayPresents(t *testing.T) {
	fb := newTestFB(4, 4)
	if err := New(fb).Display(); err != nil || fb.presents != 1 {
		t.Fatalf("Display err=%v presents=%d", err, fb.presents)
	}
}

func TestNewRejectsMissingFramebuffer(t *testing.T) {
	if New(nil) != nil {
		t.Fatal("New(nil) returned a canvas")
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth("abc"); got != 18 {
		t.Fatalf("TextWidth = %d", got)
	}
}
