package game

import (
	"fmt"
	"strconv"

	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/golang/glog"
)

// DeathPolicy decides what happens once a session terminates
type DeathPolicy int

const (
	Restart DeathPolicy = iota
	Halt
)

// Options configures the game variant.
type Options struct {
	CellSize      types.Size
	Obstacles     int // 0 disables obstacles
	SpeedBoost    bool
	SpawnAttempts int
	OnDeath       DeathPolicy
}

type Game struct {
	opts         Options
	surface      types.Surface
	keyboard     types.Keyboard
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	obstacleMgr  *manager.ObstacleManager
	stateMgr     *manager.StateManager
}

func NewGame(opts Options, surface types.Surface, keyboard types.Keyboard, rng manager.Random, stateMgr *manager.StateManager) *Game {
	collisionMgr := manager.NewCollisionManager()
	return &Game{
		opts:         opts,
		surface:      surface,
		keyboard:     keyboard,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(rng, collisionMgr, opts.SpawnAttempts, opts.SpeedBoost),
		obstacleMgr:  manager.NewObstacleManager(rng, collisionMgr),
		stateMgr:     stateMgr,
	}
}

// NewSession starts a fresh session sized to the current screen.
func (g *Game) NewSession() *Session {
	s := newSession(g.opts, g.surface.Bounds(), g.obstacleMgr)
	glog.Infof("Session %s started", s.ID)
	return s
}

// Step runs one frame of s: draw the UI, snapshot the snake, wait for the
// next frame, then update food, snake and obstacles in that order.
func (g *Game) Step(s *Session) State {
	if s.State == Terminated {
		return Terminated
	}

	g.drawUI(s)
	s.view = s.Snake.View()

	if !g.surface.NextFrame() {
		s.terminate(WindowClosed)
		return s.State
	}
	s.Frames++
	bounds := g.surface.Bounds()

	s.eat(g.foodMgr.Update(s.Food, s.view, bounds))
	s.Food.Draw(g.surface)

	keys := g.keyboard.PressedKeys()
	s.Snake.Advance(keys, bounds, s.Food.Score, s.Food.SpeedBoost)
	s.Snake.Draw(g.surface)

	hit := false
	if s.Obstacles != nil {
		s.Obstacles.Draw(g.surface)
		hit = g.obstacleMgr.Update(s.Obstacles, s.Snake.GetHead(), s.Food.SpeedBoost)
	}

	switch {
	case !s.Snake.Alive:
		s.terminate(SelfCollision)
	case hit:
		s.terminate(ObstacleCollision)
	}
	return s.State
}

// Play runs a new session until it terminates and records it.
func (g *Game) Play() *Session {
	s := g.NewSession()
	for g.Step(s) == Running {
	}

	glog.Infof("Session %s ended: cause=%s score=%d meals=%d specials=%d frames=%d duration=%s",
		s.ID, s.Cause, s.Score(), s.Meals, s.Specials, s.Frames, s.EndTime.Sub(s.StartTime))

	if s.Cause != WindowClosed {
		g.drawBanner(s)
		if err := g.stateMgr.Record(s.Record()); err != nil {
			glog.Warningf("Could not save stats: %v", err)
		}
	}
	return s
}

// Run plays sessions back to back. It returns after the first session under
// the Halt policy, or once the window is closed.
func (g *Game) Run() {
	for {
		s := g.Play()
		if s.Cause == WindowClosed || g.opts.OnDeath == Halt {
			return
		}
	}
}

func (g *Game) drawUI(s *Session) {
	g.surface.DrawText(strconv.FormatUint(uint64(s.Score()), 10), 100, 100, 50, types.TextColor)

	if g.stateMgr.GetGamesPlayed() == 0 {
		return
	}
	summary := fmt.Sprintf("Best: %d  Avg: %.1f  Games: %d",
		g.stateMgr.GetHighScore(), g.stateMgr.GetAverageScore(), g.stateMgr.GetGamesPlayed())
	g.surface.DrawText(summary, 100, 160, 20, types.MutedColor)

	history := fmt.Sprintf("Median: %.1f  Avg time: %.1fs",
		g.stateMgr.GetMedianScore(), g.stateMgr.GetAverageDuration())
	g.surface.DrawText(history, 100, 185, 20, types.MutedColor)
}

// drawBanner marks the final frame of a finished session. It is presented
// by the next NextFrame call, or by closing the surface.
func (g *Game) drawBanner(s *Session) {
	banner := fmt.Sprintf("Game over (%s): %d", s.Cause, s.Score())
	g.surface.DrawText(banner, 100, 250, 40, types.TextColor)
}
