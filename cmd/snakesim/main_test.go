package main

import (
	"bytes"
	"strings"
	"testing"

	"tivalab/tivaos/joystick"
	"tivalab/tivaos/tasks/snake"
)

func TestAutopilotHeadsForFood(t *testing.T) {
	sess, err := snake.NewSession(snake.DefaultConfig())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	food, ok := sess.Food()
	if !ok {
		t.Fatal("no food")
	}
	head, _ := sess.Body().Head()

	// Compare centre distances, the metric the autopilot steers by.
	gx := food.X + food.W/2 - (head.X + 4)
	gy := food.Y + food.H/2 - (head.Y + 4)
	d := autopilot(sess)
	dx, dy := d.Delta(11)
	before := abs(gx) + abs(gy)
	after := abs(gx-dx) + abs(gy-dy)
	if after >= before {
		t.Fatalf("autopilot moved %v away from food at %v (head %v)", d, food, head)
	}
}

func TestPlayReportsEveryRound(t *testing.T) {
	cfg := snake.DefaultConfig()
	cfg.Capacity = 3
	sess, err := snake.NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	var out bytes.Buffer
	sum := play(sess, 4, &out)

	total := sum.stalled
	for _, n := range sum.outcomes {
		total += n
	}
	if total != 4 {
		t.Fatalf("accounted for %d rounds, want 4", total)
	}
	if got := strings.Count(out.String(), "\n"); got != 4 {
		t.Fatalf("printed %d lines:\n%s", got, out.String())
	}
	if sum.outcomes[snake.Victory] == 0 {
		t.Fatalf("autopilot never won a 3-item round: %+v", sum)
	}
}

func TestSummaryLineCountsEveryOutcome(t *testing.T) {
	sum := summary{
		outcomes: map[snake.Outcome]int{snake.Victory: 2, snake.Collision: 1, snake.Fault: 1},
		stalled:  1,
		eaten:    9,
	}
	want := "rounds=5 victory=2 collision=1 out_of_bounds=0 fault=1 stalled=1 eaten=9"
	if got := sum.line(5); got != want {
		t.Fatalf("line = %q, want %q", got, want)
	}
}

func TestSafeRejectsWalls(t *testing.T) {
	sess, err := snake.NewSession(snake.DefaultConfig())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	head, _ := sess.Body().Head()
	head.X = 0
	if safe(sess, head, joystick.Left) {
		t.Fatal("move off the left edge reported safe")
	}
	if !safe(sess, head, joystick.Right) {
		t.Fatal("move into open board reported unsafe")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
