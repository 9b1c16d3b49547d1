package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

type ObstacleManager struct {
	rng          Random
	collisionMgr *CollisionManager
}

func NewObstacleManager(rng Random, collisionMgr *CollisionManager) *ObstacleManager {
	return &ObstacleManager{
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Generate places count+1 obstacles uniformly over the screen. They never
// move for the rest of the session.
func (om *ObstacleManager) Generate(count int, bounds types.Bounds, size types.Size) *entity.Obstacles {
	positions := make([]types.Point, 0, count+1)
	for i := 0; i <= count; i++ {
		y := om.rng.Float32() * bounds.Height
		x := om.rng.Float32() * bounds.Width
		positions = append(positions, types.Point{X: x, Y: y})
	}
	return entity.NewObstacles(positions, size)
}

// Update recomputes the hit flag against the snake head.
func (om *ObstacleManager) Update(obstacles *entity.Obstacles, head types.Point, boost float32) bool {
	obstacles.Hit = om.collisionMgr.IsAnyNear(obstacles.Positions, head, obstacles.Size, boost)
	return obstacles.Hit
}
