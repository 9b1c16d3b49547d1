package types

import "image/color"

// Point is a position in screen pixels
type Point struct {
	X, Y float32
}

// Size is the width and height of a drawn cell
type Size struct {
	Width  float32
	Height float32
}

// Bounds represents the current screen dimensions
type Bounds struct {
	Width  float32
	Height float32
}

// Window is a closed numeric range [Min, Max] used to decide whether two
// positions are close enough to collide.
type Window struct {
	Min float32
	Max float32
}

// Contains reports whether v lies within the window, inclusive on both ends.
func (w Window) Contains(v float32) bool {
	return v >= w.Min && v <= w.Max
}

// Game constants
const (
	StartScore       = 1   // Food score at session start; displayed score is Score-1
	TrailPerScore    = 100 // Trail length bound is Score*TrailPerScore
	SpecialEvery     = 10  // Food is special when Score%SpecialEvery == 0
	SpecialBonus     = 5   // Score granted by special food
	NormalBonus      = 1   // Score granted by normal food
	BoostStep        = 0.3 // Speed boost granted by special food
	StepSize         = 1   // Magnitude of one snake step in pixels
	DefaultCellSize  = 10
	DefaultObstacles = 20
)

// Palette
var (
	SnakeColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	FoodColor     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	SpecialColor  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ObstacleColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	TextColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	MutedColor    = color.RGBA{R: 130, G: 130, B: 130, A: 255}
)
