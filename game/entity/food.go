package entity

import (
	"image/color"

	"snake-arcade/game/types"
)

// Food is the single piece of food on screen. It also carries the session
// score and the speed boost earned from special food.
type Food struct {
	Pos        types.Point
	Size       types.Size
	Alive      bool
	Score      uint
	Special    bool
	SpeedBoost float32
}

func NewFood(size types.Size) *Food {
	return &Food{
		Size:       size,
		Score:      types.StartScore,
		SpeedBoost: 1,
	}
}

// DisplayScore is the score shown to the player, which starts at zero.
func (f *Food) DisplayScore() uint {
	return f.Score - types.StartScore
}

func (f *Food) Color() color.RGBA {
	if f.Special {
		return types.SpecialColor
	}
	return types.FoodColor
}

func (f *Food) Draw(c types.Canvas) {
	c.DrawRect(f.Pos, f.Size, f.Color())
}
