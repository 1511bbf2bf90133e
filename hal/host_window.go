//go:build !tinygo && cgo

package hal

import (
	"image"
	"image/color"
	"os"

	"tivalab/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// ledStrip is the height of the LED indicator drawn under the panel.
const ledStrip = 6

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Scale int
}

// RunWindow starts a desktop window that displays the framebuffer and maps
// the keyboard to the board controls. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 4
	}
	bz := newEbitenBuzzer()
	defer bz.close()

	h := newHostHAL(os.Stdout, bz)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("TivaLab (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, (h.fb.height+ledStrip)*cfg.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll(g.h.controls)
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := RGB888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)

	lum := uint8(g.h.lamp.brightness() * 255)
	strip := image.Rect(0, fb.height, fb.width, fb.height+ledStrip)
	screen.SubImage(strip).(*ebiten.Image).Fill(color.RGBA{R: lum / 4, G: lum, B: lum / 4, A: 0xFF})
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height + ledStrip
}
