package ui

import (
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyMap = []struct {
	raylib int32
	key    types.Key
}{
	{rl.KeyLeft, types.KeyLeft},
	{rl.KeyRight, types.KeyRight},
	{rl.KeyUp, types.KeyUp},
	{rl.KeyDown, types.KeyDown},
}

// Keyboard reads held keys from the raylib window.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) PressedKeys() types.KeySet {
	var keys types.KeySet
	for _, m := range keyMap {
		if rl.IsKeyDown(m.raylib) {
			keys |= types.NewKeySet(m.key)
		}
	}
	return keys
}
