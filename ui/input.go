package ui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"wheel-picker/game"
	"wheel-picker/game/snake"
)

// keyDirections is checked in order, so when several keys land in one frame
// the last accepted turn wins the same way every time.
var keyDirections = []struct {
	key int32
	dir snake.Direction
}{
	{rl.KeyUp, snake.UP},
	{rl.KeyW, snake.UP},
	{rl.KeyDown, snake.DOWN},
	{rl.KeyS, snake.DOWN},
	{rl.KeyLeft, snake.LEFT},
	{rl.KeyA, snake.LEFT},
	{rl.KeyRight, snake.RIGHT},
	{rl.KeyD, snake.RIGHT},
}

// HandleInput turns this frame's clicks and key presses into picker events.
func (r *Renderer) HandleInput(p *game.Picker, now time.Time) {
	clicked := rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	mouse := rl.GetMousePosition()

	if p.Snake() != nil {
		for _, kd := range keyDirections {
			if rl.IsKeyPressed(kd.key) {
				p.Steer(kd.dir)
			}
		}
		if clicked {
			for d, rect := range r.arrows {
				if rl.CheckCollisionPointRec(mouse, rect) {
					p.Steer(d)
				}
			}
		}
		return
	}

	if !p.CanSpin() {
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEnter) ||
		(clicked && rl.CheckCollisionPointRec(mouse, r.spinBtn)) {
		p.Spin(now)
	}
}
