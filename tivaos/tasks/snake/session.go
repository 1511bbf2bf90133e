package snake

import (
	"errors"
	"fmt"

	"tivalab/tivaos/joystick"
	"tivalab/tivaos/segments"

	"golang.org/x/exp/rand"
)

var (
	ErrInvalidConfig = errors.New("snake: invalid config")
	ErrNoFreeCell    = errors.New("snake: no free cell for food")
)

const maxSpawnAttempts = 256

// Config describes the playfield and the sizes of the game pieces, in pixels.
type Config struct {
	Width  int
	Height int

	Segment int // side of one body square
	Step    int // head displacement per move

	Food       int // side of the food square
	FoodMargin int // keep-out border for food placement

	Capacity int // maximum body length; eating this many items wins the round

	Start segments.Coord
	Seed  uint64
}

// DefaultConfig matches the 128x128 panel layout.
func DefaultConfig() Config {
	return Config{
		Width:      128,
		Height:     128,
		Segment:    9,
		Step:       11,
		Food:       5,
		FoodMargin: 6,
		Capacity:   segments.DefaultCapacity,
		Start:      segments.Coord{X: 60, Y: 60},
		Seed:       1,
	}
}

func (c Config) validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: playfield %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Segment <= 0:
		return fmt.Errorf("%w: segment size %d", ErrInvalidConfig, c.Segment)
	case c.Step <= 0:
		return fmt.Errorf("%w: step %d", ErrInvalidConfig, c.Step)
	case c.Food <= 0:
		return fmt.Errorf("%w: food size %d", ErrInvalidConfig, c.Food)
	case c.FoodMargin < 0 || c.Food+2*c.FoodMargin > c.Width || c.Food+2*c.FoodMargin > c.Height:
		return fmt.Errorf("%w: food margin %d leaves no room", ErrInvalidConfig, c.FoodMargin)
	case c.Capacity < 1:
		return fmt.Errorf("%w: capacity %d", ErrInvalidConfig, c.Capacity)
	case !c.inBounds(c.Start):
		return fmt.Errorf("%w: start %v outside playfield", ErrInvalidConfig, c.Start)
	}
	return nil
}

func (c Config) inBounds(p segments.Coord) bool {
	return p.X >= 0 && p.Y >= 0 && p.X+c.Segment <= c.Width && p.Y+c.Segment <= c.Height
}

// Outcome is the state of the current round.
type Outcome uint8

const (
	Playing Outcome = iota
	OutOfBounds
	Collision
	Victory
	Fault
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case OutOfBounds:
		return "out_of_bounds"
	case Collision:
		return "collision"
	case Victory:
		return "victory"
	case Fault:
		return "fault"
	default:
		return "unknown"
	}
}

// Step reports what one Tick changed.
type Step struct {
	Moved bool
	Head  segments.Coord

	Erased   segments.Coord
	Shrunk   bool // Erased holds the popped tail
	Ate      bool
	NewFood  bool
	Outcome  Outcome
	Finished bool
}

// Session is the state of a snake game: body, food, score and round.
// It performs no I/O; the owning task draws whatever each Step reports.
type Session struct {
	cfg  Config
	body *segments.History
	rng  *rand.Rand

	food    segments.Rect
	hasFood bool

	grow    bool
	eaten   int
	round   int
	outcome Outcome
	err     error
}

// NewSession validates cfg and starts the first round.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s := &Session{
		cfg:  cfg,
		body: segments.New(cfg.Capacity),
		rng:  rand.New(rand.NewSource(cfg.Seed)),
	}
	s.Reset()
	return s, nil
}

// Reset starts a new round, reusing the body storage.
func (s *Session) Reset() {
	s.body.Clear()
	s.body.PushBack(s.cfg.Start)
	s.grow = false
	s.eaten = 0
	s.outcome = Playing
	s.err = nil
	s.round++
	s.spawnFood()
}

func (s *Session) Config() Config { return s.cfg }

// Body exposes the segment history for rendering. Callers must not mutate it.
func (s *Session) Body() *segments.History { return s.body }

func (s *Session) Food() (segments.Rect, bool) { return s.food, s.hasFood }
func (s *Session) Eaten() int                  { return s.eaten }
func (s *Session) Round() int                  { return s.round }
func (s *Session) Outcome() Outcome            { return s.outcome }
func (s *Session) Over() bool                  { return s.outcome != Playing }

// Err returns the last internal error of the round, if any.
func (s *Session) Err() error { return s.err }

// Tick advances the snake one move in dir. None leaves the snake in place.
func (s *Session) Tick(dir joystick.Direction) Step {
	if s.Over() {
		return Step{Outcome: s.outcome, Finished: true}
	}
	if dir == joystick.None {
		return Step{Outcome: Playing}
	}

	head, ok := s.body.Head()
	if !ok {
		return s.fail(fmt.Errorf("snake: no head: %w", segments.ErrEmpty))
	}

	var st Step
	if !s.grow {
		st.Erased, st.Shrunk = s.body.PopFront()
	}
	s.grow = false

	dx, dy := dir.Delta(s.cfg.Step)
	next := segments.Coord{X: head.X + dx, Y: head.Y + dy}
	if !s.body.PushBack(next) {
		return s.fail(fmt.Errorf("snake: push head %v: %w", next, segments.ErrFull))
	}
	st.Moved = true
	st.Head = next

	if !s.cfg.inBounds(next) {
		return s.finish(st, OutOfBounds)
	}
	if s.body.SelfOverlaps(s.cfg.Segment) {
		return s.finish(st, Collision)
	}

	if s.hasFood && segments.Square(next, s.cfg.Segment).Overlaps(s.food) {
		st.Ate = true
		s.eaten++
		s.grow = true
		s.hasFood = false
		if s.eaten >= s.cfg.Capacity {
			return s.finish(st, Victory)
		}
		s.spawnFood()
		st.NewFood = s.hasFood
	}

	st.Outcome = Playing
	return st
}

func (s *Session) finish(st Step, o Outcome) Step {
	s.outcome = o
	s.body.Clear()
	s.hasFood = false
	st.Outcome = o
	st.Finished = true
	return st
}

func (s *Session) fail(err error) Step {
	s.err = err
	return s.finish(Step{}, Fault)
}

func (s *Session) spawnFood() {
	c := s.cfg
	for i := 0; i < maxSpawnAttempts; i++ {
		r := segments.Rect{
			X: s.rng.Intn(c.Width + 1),
			Y: s.rng.Intn(c.Height + 1),
			W: c.Food,
			H: c.Food,
		}
		if s.foodFits(r) {
			s.setFood(r)
			return
		}
	}

	// Crowded board: fall back to the first free cell.
	for y := c.FoodMargin; y+c.Food <= c.Height-c.FoodMargin; y++ {
		for x := c.FoodMargin; x+c.Food <= c.Width-c.FoodMargin; x++ {
			r := segments.Rect{X: x, Y: y, W: c.Food, H: c.Food}
			if s.foodFits(r) {
				s.setFood(r)
				return
			}
		}
	}
	s.hasFood = false
	s.err = ErrNoFreeCell
}

func (s *Session) foodFits(r segments.Rect) bool {
	m := s.cfg.FoodMargin
	if r.X < m || r.Y < m || r.X+r.W > s.cfg.Width-m || r.Y+r.H > s.cfg.Height-m {
		return false
	}
	return !s.body.Overlaps(r, s.cfg.Segment)
}

func (s *Session) setFood(r segments.Rect) {
	s.food = r
	s.hasFood = true
}
