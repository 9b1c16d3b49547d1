package entity

import (
	"testing"

	"snake-arcade/game/types"
)

var (
	cell   = types.Size{Width: 10, Height: 10}
	screen = types.Bounds{Width: 800, Height: 600}
)

func TestSteerIgnoresReversal(t *testing.T) {
	for _, h := range []Heading{Left, Right, Up, Down} {
		s := NewSnake(cell)
		s.Heading = h
		s.Steer(types.NewKeySet(h.Opposite().Key()))
		if s.Heading != h {
			t.Errorf("heading %v turned to %v on opposite key", h, s.Heading)
		}
	}
}

func TestSteerPriority(t *testing.T) {
	tests := []struct {
		name    string
		heading Heading
		keys    types.KeySet
		want    Heading
	}{
		{"left wins over up", Up, types.NewKeySet(types.KeyLeft, types.KeyUp), Left},
		{"right wins over down", Up, types.NewKeySet(types.KeyRight, types.KeyDown), Right},
		{"blocked left falls through to up", Right, types.NewKeySet(types.KeyLeft, types.KeyUp), Up},
		{"up wins over down", Left, types.NewKeySet(types.KeyUp, types.KeyDown), Up},
		{"all keys while heading right", Right, types.NewKeySet(types.KeyLeft, types.KeyRight, types.KeyUp, types.KeyDown), Right},
		{"all keys while heading down", Down, types.NewKeySet(types.KeyLeft, types.KeyRight, types.KeyUp, types.KeyDown), Left},
		{"no keys", Down, 0, Down},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(cell)
			s.Heading = tt.heading
			s.Steer(tt.keys)
			if s.Heading != tt.want {
				t.Fatalf("heading = %v, want %v", s.Heading, tt.want)
			}
		})
	}
}

func TestAdvanceMovesBySpeed(t *testing.T) {
	s := NewSnake(cell)
	s.Pos = types.Point{X: 100, Y: 100}

	s.Advance(0, screen, 1, 1)
	if s.Pos != (types.Point{X: 101, Y: 100}) {
		t.Fatalf("pos after 1 step = %+v, want (101,100)", s.Pos)
	}

	s.Advance(types.NewKeySet(types.KeyDown), screen, 1, 2)
	if s.Pos != (types.Point{X: 101, Y: 102}) {
		t.Fatalf("pos after boosted step down = %+v, want (101,102)", s.Pos)
	}
	if got := s.Trail[len(s.Trail)-1]; got != s.Pos {
		t.Fatalf("last trail point = %+v, want head %+v", got, s.Pos)
	}
}

func TestWrapRightEdgeIsStrict(t *testing.T) {
	s := NewSnake(cell)
	s.Pos = types.Point{X: 799, Y: 50}

	s.Advance(0, screen, 1, 1)
	if s.Pos.X != 800 {
		t.Fatalf("x = %v, want 800 (no wrap at the bound itself)", s.Pos.X)
	}
	s.Advance(0, screen, 1, 1)
	if s.Pos.X != 0 {
		t.Fatalf("x = %v, want 0 after crossing the bound", s.Pos.X)
	}
}

func TestWrapEdges(t *testing.T) {
	tests := []struct {
		name    string
		heading Heading
		start   types.Point
		want    types.Point
	}{
		{"left re-enters at width", Left, types.Point{X: -10, Y: 50}, types.Point{X: 800, Y: 50}},
		{"left inside overhang", Left, types.Point{X: -9, Y: 50}, types.Point{X: -10, Y: 50}},
		{"up re-enters at height", Up, types.Point{X: 50, Y: -10}, types.Point{X: 50, Y: 600}},
		{"down leaves to top", Down, types.Point{X: 50, Y: 600}, types.Point{X: 50, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(cell)
			s.Heading = tt.heading
			s.Pos = tt.start
			s.Advance(0, screen, 1, 1)
			if s.Pos != tt.want {
				t.Fatalf("pos = %+v, want %+v", s.Pos, tt.want)
			}
		})
	}
}

func TestTrailBoundedByScore(t *testing.T) {
	s := NewSnake(cell)
	big := types.Bounds{Width: 10000, Height: 10000}

	for i := 0; i < 250; i++ {
		before := len(s.Trail)
		s.Advance(0, big, 1, 1)
		if len(s.Trail) > types.TrailPerScore {
			t.Fatalf("step %d: trail length %d exceeds bound %d", i, len(s.Trail), types.TrailPerScore)
		}
		if d := len(s.Trail) - before; d != 0 && d != 1 {
			t.Fatalf("step %d: trail length changed by %d", i, d)
		}
	}
	if len(s.Trail) != types.TrailPerScore-1 {
		t.Fatalf("steady trail length = %d, want %d", len(s.Trail), types.TrailPerScore-1)
	}

	// A higher score lets the trail grow again
	for i := 0; i < 50; i++ {
		s.Advance(0, big, 2, 1)
	}
	if len(s.Trail) != types.TrailPerScore-1+50 {
		t.Fatalf("trail length after score rise = %d, want %d", len(s.Trail), types.TrailPerScore+49)
	}
}

func TestSelfCollisionKillsWithoutTrailChange(t *testing.T) {
	s := NewSnake(cell)
	s.Pos = types.Point{X: 4, Y: 0}
	s.Trail = []types.Point{{X: 5, Y: 0}, {X: 6, Y: 0}, {X: 4, Y: 0}}

	s.Advance(0, screen, 1, 1)
	if s.Alive {
		t.Fatalf("expected snake to die entering its own trail")
	}
	if len(s.Trail) != 3 || s.Trail[0] != (types.Point{X: 5, Y: 0}) {
		t.Fatalf("trail mutated on death: %+v", s.Trail)
	}

	pos := s.Pos
	s.Advance(types.NewKeySet(types.KeyUp), screen, 1, 1)
	if s.Pos != pos || s.Alive {
		t.Fatalf("dead snake moved or revived: pos=%+v alive=%v", s.Pos, s.Alive)
	}
}

func TestViewIsACopy(t *testing.T) {
	s := NewSnake(cell)
	s.Advance(0, screen, 1, 1)
	v := s.View()
	s.Advance(0, screen, 1, 1)

	if len(v.Trail) != 1 || v.Head != (types.Point{X: 1, Y: 0}) {
		t.Fatalf("view changed with the snake: %+v", v)
	}
}

func TestDeltaPanicsOnInvalidHeading(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for invalid heading")
		}
	}()
	Heading(42).Delta()
}
