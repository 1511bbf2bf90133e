package segments

import (
	"math/rand"
	"testing"
)

func contents(h *History) []Coord {
	return h.AppendTo(nil)
}

func equalCoords(a, b []Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewDefaultsCapacity(t *testing.T) {
	h := New(0)
	if got := h.Cap(); got != DefaultCapacity {
		t.Fatalf("Cap() = %d, want %d", got, DefaultCapacity)
	}
	if !h.IsEmpty() || h.IsFull() {
		t.Fatalf("new history: empty=%v full=%v", h.IsEmpty(), h.IsFull())
	}
}

func TestCapacityThreeScenario(t *testing.T) {
	h := New(3)

	if !h.Enqueue(0, 0) {
		t.Fatal("Enqueue(0,0) failed")
	}
	head, _ := h.Head()
	tail, _ := h.Tail()
	if head != tail || head != (Coord{0, 0}) {
		t.Fatalf("single element: head=%v tail=%v", head, tail)
	}

	if !h.Enqueue(1, 0) || !h.Enqueue(2, 0) {
		t.Fatal("Enqueue into non-full history failed")
	}
	if !h.IsFull() {
		t.Fatal("expected full after 3 enqueues")
	}

	before := contents(h)
	if h.Enqueue(3, 0) {
		t.Fatal("Enqueue on full history succeeded")
	}
	if got := contents(h); !equalCoords(got, before) || h.Len() != 3 {
		t.Fatalf("full enqueue mutated history: got %v, want %v", got, before)
	}

	c, ok := h.Dequeue()
	if !ok || c != (Coord{0, 0}) {
		t.Fatalf("Dequeue() = %v, %v; want (0,0), true", c, ok)
	}
	if h.IsFull() {
		t.Fatal("expected not full after dequeue")
	}

	if !h.Enqueue(3, 0) {
		t.Fatal("Enqueue after dequeue failed")
	}
	want := []Coord{{1, 0}, {2, 0}, {3, 0}}
	if got := contents(h); !equalCoords(got, want) {
		t.Fatalf("order after wrap = %v, want %v", got, want)
	}
}

func TestDequeueEmpty(t *testing.T) {
	h := New(4)
	c, ok := h.Dequeue()
	if ok {
		t.Fatalf("Dequeue() on empty = %v, true; want false", c)
	}
	if c != (Coord{}) {
		t.Fatalf("Dequeue() on empty returned %v, want zero value", c)
	}
	if !h.IsEmpty() || h.Len() != 0 {
		t.Fatal("empty dequeue mutated history")
	}
}

func TestDequeueLastElementEmpties(t *testing.T) {
	h := New(2)
	h.Enqueue(-5, -7)
	c, ok := h.Dequeue()
	if !ok || c != (Coord{-5, -7}) {
		t.Fatalf("Dequeue() = %v, %v; want (-5,-7), true", c, ok)
	}
	if !h.IsEmpty() {
		t.Fatal("expected empty")
	}
	if _, ok := h.Head(); ok {
		t.Fatal("Head() on empty reported ok")
	}
}

func TestClearAlwaysEmpties(t *testing.T) {
	h := New(5)
	h.Clear()
	if !h.IsEmpty() {
		t.Fatal("Clear on fresh history not empty")
	}
	for i := 0; i < 7; i++ {
		h.Enqueue(i, i)
		if i%2 == 0 {
			h.Dequeue()
		}
	}
	h.Clear()
	if !h.IsEmpty() || h.Len() != 0 {
		t.Fatalf("Clear left %d elements", h.Len())
	}
	if h.Cap() != 5 {
		t.Fatalf("Clear changed capacity to %d", h.Cap())
	}
	if !h.Enqueue(9, 9) {
		t.Fatal("Enqueue after Clear failed")
	}
	if got := contents(h); !equalCoords(got, []Coord{{9, 9}}) {
		t.Fatalf("after Clear+Enqueue = %v", got)
	}
}

func TestFIFOAgainstModel(t *testing.T) {
	const capacity = 7
	rng := rand.New(rand.NewSource(1))
	h := New(capacity)
	var model []Coord

	for i := 0; i < 5000; i++ {
		if rng.Intn(3) != 0 {
			c := Coord{X: rng.Intn(200) - 100, Y: i}
			ok := h.PushBack(c)
			if ok != (len(model) < capacity) {
				t.Fatalf("step %d: PushBack ok=%v with model len %d", i, ok, len(model))
			}
			if ok {
				model = append(model, c)
			}
		} else {
			c, ok := h.PopFront()
			if ok != (len(model) > 0) {
				t.Fatalf("step %d: PopFront ok=%v with model len %d", i, ok, len(model))
			}
			if ok {
				if c != model[0] {
					t.Fatalf("step %d: PopFront = %v, want %v", i, c, model[0])
				}
				model = model[1:]
			}
		}
		if h.Len() > capacity {
			t.Fatalf("step %d: Len() = %d exceeds capacity", i, h.Len())
		}
		if got := contents(h); !equalCoords(got, model) {
			t.Fatalf("step %d: contents = %v, want %v", i, got, model)
		}
	}
}

func TestAtAndAll(t *testing.T) {
	h := New(3)
	h.Enqueue(1, 1)
	h.Enqueue(2, 2)
	h.Enqueue(3, 3)
	h.Dequeue()
	h.Enqueue(4, 4)

	if c, ok := h.At(0); !ok || c != (Coord{2, 2}) {
		t.Fatalf("At(0) = %v, %v", c, ok)
	}
	if c, ok := h.At(2); !ok || c != (Coord{4, 4}) {
		t.Fatalf("At(2) = %v, %v", c, ok)
	}
	if _, ok := h.At(3); ok {
		t.Fatal("At(3) out of range reported ok")
	}
	if _, ok := h.At(-1); ok {
		t.Fatal("At(-1) reported ok")
	}

	var seen []Coord
	for i, c := range h.All() {
		if i != len(seen) {
			t.Fatalf("All index %d, want %d", i, len(seen))
		}
		seen = append(seen, c)
		if len(seen) == 2 {
			break
		}
	}
	if !equalCoords(seen, []Coord{{2, 2}, {3, 3}}) {
		t.Fatalf("All with early break = %v", seen)
	}
}
