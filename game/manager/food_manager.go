package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"github.com/golang/glog"
)

// Random produces uniform floats in [0, 1). *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Random interface {
	Float32() float32
}

// Meal describes what happened to the food during an update
type Meal int

const (
	NoMeal Meal = iota
	NormalMeal
	SpecialMeal
)

type FoodManager struct {
	rng          Random
	collisionMgr *CollisionManager
	maxAttempts  int
	speedBoost   bool
}

// NewFoodManager creates a food manager. maxAttempts caps the rejection
// sampling when placing food; speedBoost controls whether special food
// raises the speed multiplier.
func NewFoodManager(rng Random, collisionMgr *CollisionManager, maxAttempts int, speedBoost bool) *FoodManager {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &FoodManager{
		rng:          rng,
		collisionMgr: collisionMgr,
		maxAttempts:  maxAttempts,
		speedBoost:   speedBoost,
	}
}

// Update respawns eaten food, refreshes the special flag and checks whether
// the snake head has reached the food.
func (fm *FoodManager) Update(food *entity.Food, snake entity.View, bounds types.Bounds) Meal {
	if !food.Alive {
		food.Pos = fm.GenerateFood(snake.Trail, bounds)
		food.Alive = true
	}

	food.Special = food.Score%types.SpecialEvery == 0

	if !fm.collisionMgr.IsNear(food.Pos, snake.Head, food.Size, food.SpeedBoost) {
		return NoMeal
	}

	food.Alive = false
	if food.Special {
		food.Score += types.SpecialBonus
		if fm.speedBoost {
			food.SpeedBoost += types.BoostStep
		}
		glog.V(1).Infof("Special food eaten: score=%d boost=%.1f", food.Score, food.SpeedBoost)
		return SpecialMeal
	}
	food.Score += types.NormalBonus
	glog.V(1).Infof("Food eaten: score=%d", food.Score)
	return NormalMeal
}

// GenerateFood samples uniform positions until one is off the trail. After
// maxAttempts rejections the last sample is used as is.
func (fm *FoodManager) GenerateFood(trail []types.Point, bounds types.Bounds) types.Point {
	var food types.Point
	for attempt := 1; attempt <= fm.maxAttempts; attempt++ {
		food = types.Point{
			X: fm.rng.Float32() * bounds.Width,
			Y: fm.rng.Float32() * bounds.Height,
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, trail) {
			if attempt > 1 {
				glog.V(2).Infof("Food placed after %d attempts", attempt)
			}
			return food
		}
	}
	glog.Warningf("No free food position after %d attempts, placing on trail at (%.0f, %.0f)", fm.maxAttempts, food.X, food.Y)
	return food
}
