package entity

import (
	"fmt"

	"snake-arcade/game/types"
)

// Heading is one of the four directions the snake can travel in
type Heading int

const (
	Left Heading = iota
	Right
	Up
	Down
)

// Opposite returns the heading pointing the other way.
func (h Heading) Opposite() Heading {
	switch h {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Delta returns the unit displacement for one step in this heading.
func (h Heading) Delta() types.Point {
	switch h {
	case Left:
		return types.Point{X: -1, Y: 0}
	case Right:
		return types.Point{X: 1, Y: 0}
	case Up:
		return types.Point{X: 0, Y: -1}
	case Down:
		return types.Point{X: 0, Y: 1}
	}
	panic(fmt.Sprintf("entity: invalid heading %d", int(h)))
}

// Key returns the key that turns the snake toward this heading.
func (h Heading) Key() types.Key {
	switch h {
	case Left:
		return types.KeyLeft
	case Right:
		return types.KeyRight
	case Up:
		return types.KeyUp
	default:
		return types.KeyDown
	}
}

func (h Heading) String() string {
	switch h {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Heading(%d)", int(h))
}

// steerOrder is the priority in which held keys are considered. Only the
// first acceptable key is applied per update.
var steerOrder = [...]Heading{Left, Right, Up, Down}
