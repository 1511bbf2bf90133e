package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"tivalab/hal"
	"tivalab/tivaos/fonts/font6x8"
	"tivalab/tivaos/gfx"
	"tivalab/tivaos/kernel"
)

func installPanicHandler(h hal.HAL) {
	kernel.SetPanicHandler(func(info kernel.PanicInfo) {
		lines := panicLines(info)
		if l := h.Logger(); l != nil {
			for _, line := range lines {
				l.WriteLineString(line)
			}
		}

		if disp := h.Display(); disp != nil {
			if c := gfx.New(disp.Framebuffer()); c != nil {
				drawPanic(c, lines)
			}
		}
		select {}
	})
}

func panicLines(info kernel.PanicInfo) []string {
	lines := []string{
		"Panic",
		fmt.Sprintf("task: %d", info.TaskID),
		fmt.Sprintf("tick: %d", info.Tick),
		fmt.Sprintf("panic: %v", info.Value),
	}
	if len(info.Stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, line := range strings.Split(string(info.Stack), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// drawPanic prints lines black on white, wrapped to the panel width, until
// the panel is full.
func drawPanic(c *gfx.Canvas, lines []string) {
	c.Clear(gfx.White)
	w, h := c.Size()
	cols := int(w) / font6x8.Width
	if cols <= 0 {
		cols = 1
	}

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+font6x8.Height > int(h) {
				c.Display()
				return
			}
			chunk, rest := takeRunes(line, cols)
			c.Text(0, y, chunk, gfx.Black)
			y += font6x8.Height
			line = strings.TrimLeft(rest, " \t")
		}
	}
	c.Display()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
