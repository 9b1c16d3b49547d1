package ui

import (
	"image/color"

	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer is a raylib window implementing types.Surface. A frame stays open
// from construction until Close or until the window is closed, so entities
// may draw at any time.
type Renderer struct {
	frame *frame
}

// frame tracks whether BeginDrawing has been called without a matching
// EndDrawing.
type frame struct {
	open  bool
	begin func()
	end   func()
}

func (f *frame) Begin() {
	if f.open {
		return
	}
	f.begin()
	f.open = true
}

func (f *frame) End() {
	if !f.open {
		return
	}
	f.end()
	f.open = false
}

// NewRenderer opens the window and begins the first frame.
func NewRenderer(width, height int, title string, fps int) *Renderer {
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetTargetFPS(int32(fps))

	r := &Renderer{frame: &frame{
		begin: func() {
			rl.BeginDrawing()
			rl.ClearBackground(rl.Black)
		},
		end: rl.EndDrawing,
	}}
	r.frame.Begin()
	return r
}

func (r *Renderer) DrawRect(pos types.Point, size types.Size, c color.RGBA) {
	rl.DrawRectangleV(
		rl.Vector2{X: pos.X, Y: pos.Y},
		rl.Vector2{X: size.Width, Y: size.Height},
		c)
}

func (r *Renderer) DrawText(text string, x, y, fontSize int32, c color.RGBA) {
	rl.DrawText(text, x, y, fontSize, c)
}

// NextFrame presents the current frame, waits for the frame pacing set by
// the target FPS and opens the next frame.
func (r *Renderer) NextFrame() bool {
	r.frame.End()
	if rl.WindowShouldClose() {
		return false
	}
	r.frame.Begin()
	return true
}

func (r *Renderer) Bounds() types.Bounds {
	return types.Bounds{
		Width:  float32(rl.GetScreenWidth()),
		Height: float32(rl.GetScreenHeight()),
	}
}

// Close presents a frame left open by the last session, then closes the
// window.
func (r *Renderer) Close() {
	r.frame.End()
	rl.CloseWindow()
}
