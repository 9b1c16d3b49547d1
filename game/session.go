package game

import (
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/google/uuid"
)

// State of a session
type State int

const (
	Running State = iota
	Terminated
)

// Cause records why a session terminated
type Cause int

const (
	NoCause Cause = iota
	SelfCollision
	ObstacleCollision
	WindowClosed
)

func (c Cause) String() string {
	switch c {
	case SelfCollision:
		return "self"
	case ObstacleCollision:
		return "obstacle"
	case WindowClosed:
		return "closed"
	}
	return "none"
}

// Session is one play-through: a snake, its food and optionally a set of
// obstacles, all discarded when the snake dies.
type Session struct {
	ID        string
	Snake     *entity.Snake
	Food      *entity.Food
	Obstacles *entity.Obstacles
	State     State
	Cause     Cause
	Frames    int
	Meals     int // food eaten, special included
	Specials  int
	StartTime time.Time
	EndTime   time.Time

	// view is the snake as it was before the current frame's updates
	view entity.View
}

func newSession(opts Options, bounds types.Bounds, obstacleMgr *manager.ObstacleManager) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Snake:     entity.NewSnake(opts.CellSize),
		Food:      entity.NewFood(opts.CellSize),
		State:     Running,
		StartTime: time.Now(),
	}
	if opts.Obstacles > 0 {
		s.Obstacles = obstacleMgr.Generate(opts.Obstacles, bounds, opts.CellSize)
	}
	return s
}

// Score is the score shown to the player.
func (s *Session) Score() uint {
	return s.Food.DisplayScore()
}

func (s *Session) eat(meal manager.Meal) {
	switch meal {
	case manager.SpecialMeal:
		s.Specials++
		s.Meals++
	case manager.NormalMeal:
		s.Meals++
	}
}

func (s *Session) terminate(cause Cause) {
	s.State = Terminated
	s.Cause = cause
	s.EndTime = time.Now()
}

// Record summarizes the session for the score history.
func (s *Session) Record() manager.SessionRecord {
	return manager.SessionRecord{
		ID:        s.ID,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Score:     s.Score(),
		Meals:     s.Meals,
		Specials:  s.Specials,
		Cause:     s.Cause.String(),
	}
}
