package segments

// Rect is an axis-aligned rectangle covering [X, X+W) x [Y, Y+H).
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Square returns the square of side size whose top-left corner is c.
func Square(c Coord, size int) Rect {
	return Rect{X: c.X, Y: c.Y, W: size, H: size}
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Overlaps reports whether r and o share at least one pixel.
//
// Edges are half-open: rectangles that only touch do not overlap, and an
// empty rectangle overlaps nothing.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Overlaps reports whether r overlaps the square of any stored segment,
// head included.
func (h *History) Overlaps(r Rect, size int) bool {
	for i := 0; i < h.n; i++ {
		if Square(h.buf[h.index(i)], size).Overlaps(r) {
			return true
		}
	}
	return false
}

// SelfOverlaps reports whether the head's square overlaps any older segment.
func (h *History) SelfOverlaps(size int) bool {
	if h.n < 2 {
		return false
	}
	head := Square(h.buf[h.index(h.n-1)], size)
	for i := 0; i < h.n-1; i++ {
		if head.Overlaps(Square(h.buf[h.index(i)], size)) {
			return true
		}
	}
	return false
}
