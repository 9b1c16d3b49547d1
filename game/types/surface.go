package types

import "image/color"

// Key is a directional key the game reacts to
type Key uint8

const (
	KeyLeft Key = 1 << iota
	KeyRight
	KeyUp
	KeyDown
)

// KeySet is a snapshot of the keys held down at one instant
type KeySet uint8

// NewKeySet builds a set from the given keys.
func NewKeySet(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s |= KeySet(k)
	}
	return s
}

// Has reports whether k is held in the set.
func (s KeySet) Has(k Key) bool {
	return s&KeySet(k) != 0
}

// Canvas is the drawing side of the render surface. Entities draw themselves
// through it.
type Canvas interface {
	DrawRect(pos Point, size Size, c color.RGBA)
	DrawText(text string, x, y, fontSize int32, c color.RGBA)
}

// Keyboard exposes the keys currently held down.
type Keyboard interface {
	PressedKeys() KeySet
}

// Surface is the window the game runs in. NextFrame presents the frame drawn
// so far and blocks until the next one may be drawn; it returns false once the
// window has been closed.
type Surface interface {
	Canvas
	NextFrame() bool
	Bounds() Bounds
}
