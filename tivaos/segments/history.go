// Package segments tracks the cells occupied by a moving body as a bounded
// FIFO of square segments, plus the overlap queries the games run against it.
package segments

import (
	"errors"
	"iter"
)

// DefaultCapacity is the longest body a round can produce.
const DefaultCapacity = 40

var (
	ErrFull  = errors.New("segments: history full")
	ErrEmpty = errors.New("segments: history empty")
)

// Coord is the top-left corner of a segment.
type Coord struct {
	X int
	Y int
}

// History is a fixed-capacity ring of coordinates ordered from the oldest
// segment (tail) to the newest one (head).
//
// Storage is allocated once by New and reused across Clear calls.
// A History is not safe for concurrent use.
type History struct {
	buf  []Coord
	head int // index of the oldest element
	n    int
}

// New returns an empty history holding at most capacity coordinates.
// A non-positive capacity selects DefaultCapacity.
func New(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{buf: make([]Coord, capacity)}
}

func (h *History) Len() int { return h.n }
func (h *History) Cap() int { return len(h.buf) }

func (h *History) IsEmpty() bool { return h.n == 0 }
func (h *History) IsFull() bool  { return h.n == len(h.buf) }

// PushBack appends c as the new head. It reports false and leaves the
// history untouched when full.
func (h *History) PushBack(c Coord) bool {
	if h.n == len(h.buf) {
		return false
	}
	h.buf[(h.head+h.n)%len(h.buf)] = c
	h.n++
	return true
}

// PopFront removes and returns the oldest coordinate.
func (h *History) PopFront() (Coord, bool) {
	if h.n == 0 {
		return Coord{}, false
	}
	c := h.buf[h.head]
	h.buf[h.head] = Coord{}
	h.n--
	if h.n == 0 {
		h.head = 0
	} else {
		h.head = (h.head + 1) % len(h.buf)
	}
	return c, true
}

// Enqueue pushes (x, y) as the new head.
func (h *History) Enqueue(x, y int) bool {
	return h.PushBack(Coord{X: x, Y: y})
}

// Dequeue pops the oldest coordinate.
func (h *History) Dequeue() (Coord, bool) {
	return h.PopFront()
}

// Clear empties the history without releasing its storage.
func (h *History) Clear() {
	h.head = 0
	h.n = 0
}

// Head returns the most recently pushed coordinate.
func (h *History) Head() (Coord, bool) {
	if h.n == 0 {
		return Coord{}, false
	}
	return h.buf[h.index(h.n-1)], true
}

// Tail returns the oldest coordinate.
func (h *History) Tail() (Coord, bool) {
	if h.n == 0 {
		return Coord{}, false
	}
	return h.buf[h.head], true
}

// At returns the i-th coordinate counting from the tail.
func (h *History) At(i int) (Coord, bool) {
	if i < 0 || i >= h.n {
		return Coord{}, false
	}
	return h.buf[h.index(i)], true
}

// All yields the stored coordinates from oldest to newest.
func (h *History) All() iter.Seq2[int, Coord] {
	return func(yield func(int, Coord) bool) {
		for i := 0; i < h.n; i++ {
			if !yield(i, h.buf[h.index(i)]) {
				return
			}
		}
	}
}

// AppendTo appends the coordinates, oldest first, to dst.
func (h *History) AppendTo(dst []Coord) []Coord {
	for i := 0; i < h.n; i++ {
		dst = append(dst, h.buf[h.index(i)])
	}
	return dst
}

func (h *History) index(i int) int {
	return (h.head + i) % len(h.buf)
}
