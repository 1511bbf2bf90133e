//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/st7735"
)

// st7735Framebuffer keeps an RGB565 little-endian frame in RAM and pushes
// it to the panel row by row on Present.
type st7735Framebuffer struct {
	lcd    st7735.Device
	width  int
	height int
	buf    []byte
	row    []byte
}

func newST7735Framebuffer() (*st7735Framebuffer, error) {
	spi := machine.SPI0
	if err := spi.Configure(machine.SPIConfig{
		SCK:       pinLCDSCK,
		SDO:       pinLCDSDO,
		Frequency: 24_000_000,
	}); err != nil {
		return nil, err
	}

	lcd := st7735.New(spi, pinLCDRST, pinLCDDC, pinLCDCS, pinLCDBL)
	lcd.Configure(st7735.Config{
		Width:        128,
		Height:       128,
		Model:        st7735.GREENTAB,
		ColumnOffset: 2,
		RowOffset:    3,
	})
	lcd.EnableBacklight(true)

	w, h := lcd.Size()
	return &st7735Framebuffer{
		lcd:    lcd,
		width:  int(w),
		height: int(h),
		buf:    make([]byte, int(w)*int(h)*2),
		row:    make([]byte, int(w)*2),
	}, nil
}

func (f *st7735Framebuffer) Width() int          { return f.width }
func (f *st7735Framebuffer) Height() int         { return f.height }
func (f *st7735Framebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *st7735Framebuffer) StrideBytes() int    { return f.width * 2 }
func (f *st7735Framebuffer) Buffer() []byte      { return f.buf }

func (f *st7735Framebuffer) ClearRGB(r, g, b uint8) {
	pixel := RGB565(r, g, b)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = byte(pixel)
		f.buf[i+1] = byte(pixel >> 8)
	}
}

func (f *st7735Framebuffer) Present() error {
	stride := f.width * 2
	for y := 0; y < f.height; y++ {
		line := f.buf[y*stride : (y+1)*stride]
		// The panel wants big-endian pixels.
		for i := 0; i+1 < len(line); i += 2 {
			f.row[i] = line[i+1]
			f.row[i+1] = line[i]
		}
		if err := f.lcd.DrawRGBBitmap8(0, int16(y), f.row, int16(f.width), 1); err != nil {
			return err
		}
	}
	return nil
}
