package entity

import (
	"image/color"

	"snake-arcade/game/types"
)

// Obstacles is a fixed set of blocks placed once per session.
type Obstacles struct {
	Positions []types.Point
	Size      types.Size
	Color     color.RGBA
	Hit       bool
}

func NewObstacles(positions []types.Point, size types.Size) *Obstacles {
	return &Obstacles{
		Positions: positions,
		Size:      size,
		Color:     types.ObstacleColor,
	}
}

func (o *Obstacles) Draw(c types.Canvas) {
	for _, p := range o.Positions {
		c.DrawRect(p, o.Size, o.Color)
	}
}
