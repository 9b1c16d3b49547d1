package entity

import (
	"image/color"

	"snake-arcade/game/types"

	"golang.org/x/exp/slices"
)

type Snake struct {
	Pos     types.Point
	Heading Heading
	Step    int8
	Trail   []types.Point
	Alive   bool
	Size    types.Size
	Color   color.RGBA
}

// View is a read-only copy of the snake taken once per frame for collision
// checks by the other entities.
type View struct {
	Head  types.Point
	Trail []types.Point
	Alive bool
}

func NewSnake(size types.Size) *Snake {
	return &Snake{
		Heading: Right, // Start moving right
		Step:    types.StepSize,
		Trail:   make([]types.Point, 0),
		Alive:   true,
		Size:    size,
		Color:   types.SnakeColor,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Pos
}

// View copies the trail so later mutation of the snake does not leak into
// the snapshot.
func (s *Snake) View() View {
	return View{
		Head:  s.Pos,
		Trail: slices.Clone(s.Trail),
		Alive: s.Alive,
	}
}

// Steer applies at most one heading change from keys. Keys are tried in the
// order left, right, up, down and a key is ignored when it would reverse the
// snake onto itself.
func (s *Snake) Steer(keys types.KeySet) {
	for _, h := range steerOrder {
		if keys.Has(h.Key()) && s.Heading != h.Opposite() {
			s.Heading = h
			return
		}
	}
}

// Advance moves the snake one frame. score bounds the trail length at
// score*TrailPerScore and speed scales the step. A dead snake does not move.
func (s *Snake) Advance(keys types.KeySet, bounds types.Bounds, score uint, speed float32) {
	if !s.Alive {
		return
	}

	s.Steer(keys)

	d := s.Heading.Delta()
	step := float32(s.Step) * speed
	s.Pos.X += d.X * step
	s.Pos.Y += d.Y * step

	s.wrap(bounds)

	if slices.Contains(s.Trail, s.Pos) {
		s.Alive = false
		return
	}

	s.Move(s.Pos)
	if uint(len(s.Trail)) >= score*types.TrailPerScore {
		s.RemoveTail()
	}
}

// wrap teleports the head to the opposite edge. Leaving uses the raw screen
// bound; re-entering from the left or top allows one body size of overhang.
func (s *Snake) wrap(b types.Bounds) {
	if s.Pos.X > b.Width {
		s.Pos.X = 0
	}
	if s.Pos.Y > b.Height {
		s.Pos.Y = 0
	}
	if s.Pos.Y < -s.Size.Height {
		s.Pos.Y = b.Height
	}
	if s.Pos.X < -s.Size.Width {
		s.Pos.X = b.Width
	}
}

func (s *Snake) Move(newHead types.Point) {
	s.Trail = append(s.Trail, newHead)
}

func (s *Snake) RemoveTail() {
	if len(s.Trail) > 0 {
		s.Trail = s.Trail[1:]
	}
}

// Draw redraws the whole trail.
func (s *Snake) Draw(c types.Canvas) {
	for _, p := range s.Trail {
		c.DrawRect(p, s.Size, s.Color)
	}
}
