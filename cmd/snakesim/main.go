// Command snakesim plays snake rounds with a greedy autopilot and reports
// how each round ended.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"tivalab/tivaos/joystick"
	"tivalab/tivaos/segments"
	"tivalab/tivaos/tasks/snake"
)

// maxMoves ends a round that neither wins nor dies.
const maxMoves = 20000

func main() {
	var (
		rounds   = flag.Int("rounds", 10, "Rounds to play.")
		seed     = flag.Uint64("seed", 1, "Food placement seed.")
		capacity = flag.Int("capacity", segments.DefaultCapacity, "Body capacity; eating this many wins.")
		verbose  = flag.Bool("v", false, "Print every round.")
	)
	flag.Parse()

	cfg := snake.DefaultConfig()
	cfg.Seed = *seed
	cfg.Capacity = *capacity

	if *rounds <= 0 {
		fatalf("rounds must be positive")
	}
	sess, err := snake.NewSession(cfg)
	if err != nil {
		fatalf("snakesim: %v", err)
	}

	var out io.Writer = io.Discard
	if *verbose {
		out = os.Stdout
	}
	sum := play(sess, *rounds, out)
	fmt.Println(sum.line(*rounds))
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

type summary struct {
	outcomes map[snake.Outcome]int
	stalled  int
	eaten    int
}

func (s summary) line(rounds int) string {
	return fmt.Sprintf("rounds=%d victory=%d collision=%d out_of_bounds=%d fault=%d stalled=%d eaten=%d",
		rounds, s.outcomes[snake.Victory], s.outcomes[snake.Collision],
		s.outcomes[snake.OutOfBounds], s.outcomes[snake.Fault], s.stalled, s.eaten)
}

func play(sess *snake.Session, rounds int, out io.Writer) summary {
	sum := summary{outcomes: map[snake.Outcome]int{}}
	for r := 0; r < rounds; r++ {
		if r > 0 {
			sess.Reset()
		}
		moves := 0
		for !sess.Over() && moves < maxMoves {
			sess.Tick(autopilot(sess))
			moves++
		}
		sum.eaten += sess.Eaten()
		if !sess.Over() {
			sum.stalled++
			fmt.Fprintf(out, "round %d: stalled after %d moves, eaten %d\n", sess.Round(), moves, sess.Eaten())
			continue
		}
		sum.outcomes[sess.Outcome()]++
		fmt.Fprintf(out, "round %d: %s after %d moves, eaten %d\n", sess.Round(), sess.Outcome(), moves, sess.Eaten())
	}
	return sum
}

var directions = [...]joystick.Direction{joystick.Up, joystick.Right, joystick.Down, joystick.Left}

// autopilot heads for the food along the axis with the larger gap and
// avoids moves that leave the board or land on the body.
func autopilot(sess *snake.Session) joystick.Direction {
	cfg := sess.Config()
	head, ok := sess.Body().Head()
	if !ok {
		return joystick.None
	}

	var want []joystick.Direction
	if food, ok := sess.Food(); ok {
		dx := food.X + food.W/2 - (head.X + cfg.Segment/2)
		dy := food.Y + food.H/2 - (head.Y + cfg.Segment/2)
		horiz, vert := joystick.Right, joystick.Down
		if dx < 0 {
			horiz, dx = joystick.Left, -dx
		}
		if dy < 0 {
			vert, dy = joystick.Up, -dy
		}
		if dx >= dy {
			want = append(want, horiz, vert)
		} else {
			want = append(want, vert, horiz)
		}
	}
	want = append(want, directions[:]...)

	for _, d := range want {
		if safe(sess, head, d) {
			return d
		}
	}
	return want[0]
}

func safe(sess *snake.Session, head segments.Coord, d joystick.Direction) bool {
	cfg := sess.Config()
	dx, dy := d.Delta(cfg.Step)
	next := segments.Coord{X: head.X + dx, Y: head.Y + dy}
	if next.X < 0 || next.Y < 0 || next.X+cfg.Segment > cfg.Width || next.Y+cfg.Segment > cfg.Height {
		return false
	}
	return !sess.Body().Overlaps(segments.Square(next, cfg.Segment), cfg.Segment)
}
