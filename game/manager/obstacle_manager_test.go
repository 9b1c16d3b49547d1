package manager

import (
	"testing"

	"snake-arcade/game/types"
)

func TestGeneratePlacesCountPlusOne(t *testing.T) {
	rng := &seqRandom{vals: []float32{0.5, 0.25}}
	om := NewObstacleManager(rng, NewCollisionManager())

	o := om.Generate(20, screen, cell)
	if len(o.Positions) != 21 {
		t.Fatalf("obstacles = %d, want 21", len(o.Positions))
	}
	// y is sampled before x
	if o.Positions[0] != (types.Point{X: 200, Y: 300}) {
		t.Fatalf("first obstacle = %+v, want (200,300)", o.Positions[0])
	}
	for _, p := range o.Positions {
		if p.X < 0 || p.X >= screen.Width || p.Y < 0 || p.Y >= screen.Height {
			t.Fatalf("obstacle off screen: %+v", p)
		}
	}
}

func TestObstacleHitFollowsHead(t *testing.T) {
	om := NewObstacleManager(&seqRandom{vals: []float32{0}}, NewCollisionManager())
	o := om.Generate(0, screen, cell)
	o.Positions[0] = types.Point{X: 300, Y: 300}

	if !om.Update(o, types.Point{X: 305, Y: 295}, 1) || !o.Hit {
		t.Fatalf("expected hit near obstacle")
	}
	if om.Update(o, types.Point{X: 350, Y: 300}, 1) || o.Hit {
		t.Fatalf("hit flag not cleared away from obstacle")
	}
}
