package manager

import (
	"math"

	"snake-arcade/game/types"

	"golang.org/x/exp/slices"
)

type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// IsTrailCollision reports whether pos exactly matches a point of the trail
func (cm *CollisionManager) IsTrailCollision(pos types.Point, trail []types.Point) bool {
	return slices.Contains(trail, pos)
}

// ValidateSpawnPosition checks if a position is free for placing food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, trail []types.Point) bool {
	return !cm.IsTrailCollision(pos, trail)
}

// ToleranceWindows returns the per-axis windows within which two positions
// count as touching, scaled by the speed boost.
func (cm *CollisionManager) ToleranceWindows(size types.Size, boost float32) (x, y types.Window) {
	x = types.Window{Min: -size.Width * boost, Max: size.Width * boost}
	y = types.Window{Min: -size.Height * boost, Max: size.Height * boost}
	return x, y
}

// IsNear compares the rounded axis differences between target and head
// against the tolerance windows.
func (cm *CollisionManager) IsNear(target, head types.Point, size types.Size, boost float32) bool {
	wx, wy := cm.ToleranceWindows(size, boost)
	dx := round(target.X) - round(head.X)
	dy := round(target.Y) - round(head.Y)
	return wx.Contains(dx) && wy.Contains(dy)
}

// IsAnyNear reports whether head touches any of the targets
func (cm *CollisionManager) IsAnyNear(targets []types.Point, head types.Point, size types.Size, boost float32) bool {
	for _, t := range targets {
		if cm.IsNear(t, head, size, boost) {
			return true
		}
	}
	return false
}

func round(v float32) float32 {
	return float32(math.Round(float64(v)))
}
