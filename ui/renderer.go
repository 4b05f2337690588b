package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"wheel-picker/game"
	"wheel-picker/game/confetti"
	"wheel-picker/game/snake"
	"wheel-picker/game/types"
	"wheel-picker/game/wheel"
)

const (
	borderPadding = 10
	labelInset    = 20
	wheelSegments = 64
	buttonHeight  = 56
	arrowButton   = 56
	arrowGap      = 16
)

var overlayColor = rl.NewColor(0, 0, 0, 230)

type Renderer struct {
	screenWidth  int32
	screenHeight int32

	center  rl.Vector2
	radius  float32
	spinBtn rl.Rectangle

	board    rl.Rectangle
	cellSize float32
	arrows   map[snake.Direction]rl.Rectangle

	font rl.Font
}

func NewRenderer() *Renderer {
	r := &Renderer{
		arrows: make(map[snake.Direction]rl.Rectangle, 4),
		font:   rl.GetFontDefault(),
	}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions recomputes the layout from the window size.
func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	w := float32(r.screenWidth)
	h := float32(r.screenHeight)
	short := min(w, h)

	r.radius = short * 0.38
	r.center = rl.Vector2{X: w / 2, Y: h * 0.45}

	btnWidth := short * 0.4
	r.spinBtn = rl.Rectangle{
		X:      (w - btnWidth) / 2,
		Y:      r.center.Y + r.radius + 32,
		Width:  btnWidth,
		Height: buttonHeight,
	}

	boardSize := short * 0.62
	r.board = rl.Rectangle{X: (w - boardSize) / 2, Y: h * 0.12, Width: boardSize, Height: boardSize}

	padTop := r.board.Y + r.board.Height + 20
	mid := w / 2
	r.arrows[snake.UP] = rl.Rectangle{X: mid - arrowButton/2, Y: padTop, Width: arrowButton, Height: arrowButton}
	r.arrows[snake.LEFT] = rl.Rectangle{X: mid - arrowButton*1.5 - arrowGap/2, Y: padTop + arrowButton, Width: arrowButton, Height: arrowButton}
	r.arrows[snake.RIGHT] = rl.Rectangle{X: mid + arrowButton/2 + arrowGap/2, Y: padTop + arrowButton, Width: arrowButton, Height: arrowButton}
	r.arrows[snake.DOWN] = rl.Rectangle{X: mid - arrowButton/2, Y: padTop + arrowButton*2, Width: arrowButton, Height: arrowButton}
}

// Screen returns the window size in the game's coordinate type.
func (r *Renderer) Screen() types.Vec2 {
	return types.Vec2{X: float64(r.screenWidth), Y: float64(r.screenHeight)}
}

func (r *Renderer) Draw(p *game.Picker, now time.Time) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	fontSize := r.screenHeight / 32
	r.drawCentered(p.Label(), int32(float32(r.screenHeight)*0.1), fontSize, rl.Black)

	r.drawWheel(p.Wheel())
	r.drawPointer()
	r.drawSpinButton(p.CanSpin())
	r.drawFooter(p, fontSize/2+4)

	if g := p.Snake(); g != nil {
		r.drawSnakeOverlay(g)
	}
	if burst := p.Confetti(); burst != nil {
		alpha := float32(burst.Alpha(now))
		for _, d := range burst.Visible(now, float64(r.screenHeight)) {
			rl.DrawCircleV(
				rl.Vector2{X: float32(d.Pos.X), Y: float32(d.Pos.Y)},
				confetti.Radius,
				rl.Fade(toRL(d.Color), alpha))
		}
	}

	rl.EndDrawing()
}

func (r *Renderer) drawWheel(w *wheel.Wheel) {
	n := w.Len()
	sweep := float32(w.AnglePerItem())
	rotation := float32(w.Rotation())

	for i := 0; i < n; i++ {
		start := float32(wheel.SegmentStart(i, n)) + rotation
		rl.DrawCircleSector(r.center, r.radius, start, start+sweep, wheelSegments, toRL(wheel.SegmentColor(i)))
	}

	for i := 0; i < n; i++ {
		item := w.Item(i)
		size := float32(wheel.FitLabelSize(func(s float64) float64 {
			return float64(rl.MeasureTextEx(r.font, item, float32(s), 1).X)
		}, float64(r.radius)))
		width := rl.MeasureTextEx(r.font, item, size, 1).X

		// right-aligned against the rim, rotated around the wheel centre
		origin := rl.Vector2{X: -(r.radius - labelInset - width), Y: size / 2}
		angle := float32(wheel.LabelAngle(i, n)) + rotation
		rl.DrawTextPro(r.font, item, r.center, origin, angle, size, 1, toRL(wheel.LabelColor(i)))
	}
	rl.DrawCircleLines(int32(r.center.X), int32(r.center.Y), r.radius, rl.DarkGray)
}

func (r *Renderer) drawPointer() {
	const half = 15
	top := r.center.Y - r.radius - half
	tip := rl.Vector2{X: r.center.X, Y: top + 2*half}
	right := rl.Vector2{X: r.center.X + half, Y: top}
	left := rl.Vector2{X: r.center.X - half, Y: top}
	rl.DrawTriangle(tip, right, left, rl.Black)
}

func (r *Renderer) drawSpinButton(enabled bool) {
	color := rl.DarkBlue
	if !enabled {
		color = rl.Gray
	} else if rl.CheckCollisionPointRec(rl.GetMousePosition(), r.spinBtn) {
		color = rl.Blue
	}
	rl.DrawRectangleRounded(r.spinBtn, 0.5, 8, color)

	size := int32(r.spinBtn.Height / 2)
	text := "Spin"
	width := rl.MeasureText(text, size)
	rl.DrawText(text,
		int32(r.spinBtn.X+r.spinBtn.Width/2)-width/2,
		int32(r.spinBtn.Y+r.spinBtn.Height/2)-size/2,
		size, rl.White)
}

func (r *Renderer) drawFooter(p *game.Picker, fontSize int32) {
	s := p.Stats
	line := fmt.Sprintf("Spins: %d   Snake best: %d   Avg: %.1f", s.SpinCount(), s.GetMaxScore(), s.GetAverageScore())
	if fav, count := s.Favorite(); count > 1 {
		line += fmt.Sprintf("   Favorite: %s (%d)", fav, count)
	}
	r.drawCentered(line, r.screenHeight-fontSize-borderPadding, fontSize, rl.DarkGray)
}

func (r *Renderer) drawSnakeOverlay(g *snake.Game) {
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, overlayColor)

	if g.IsOver() {
		size := r.screenHeight / 26
		r.drawCentered(fmt.Sprintf("Game Over! Score: %d", g.Score()), r.screenHeight/2-size/2, size, rl.White)
		return
	}

	titleSize := r.screenHeight / 40
	r.drawCentered(fmt.Sprintf("Snake Game (Score: %d)", g.Score()), int32(r.board.Y)-titleSize-16, titleSize, rl.White)

	rl.DrawRectangleRec(r.board, rl.DarkGray)
	rl.DrawRectangleLinesEx(r.board, 2, rl.White)

	r.cellSize = r.board.Width / float32(g.Grid.Width)
	r.drawCell(g.Food(), rl.Red)
	for _, p := range g.Body() {
		r.drawCell(p, rl.Green)
	}

	mouse := rl.GetMousePosition()
	for d, rect := range r.arrows {
		color := rl.DarkBlue
		if rl.CheckCollisionPointRec(mouse, rect) {
			color = rl.Blue
		}
		rl.DrawRectangleRounded(rect, 0.3, 6, color)
		drawArrow(rect, d)
	}
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	rl.DrawRectangleRec(rl.Rectangle{
		X:      r.board.X + float32(p.X)*r.cellSize,
		Y:      r.board.Y + float32(p.Y)*r.cellSize,
		Width:  r.cellSize,
		Height: r.cellSize,
	}, color)
}

// drawArrow draws a triangle pointing d inside rect. Vertices go
// counter-clockwise on screen as raylib expects.
func drawArrow(rect rl.Rectangle, d snake.Direction) {
	cx := rect.X + rect.Width/2
	cy := rect.Y + rect.Height/2
	s := rect.Width / 4

	var tip, a, b rl.Vector2
	switch d {
	case snake.UP:
		tip, a, b = rl.Vector2{X: cx, Y: cy - s}, rl.Vector2{X: cx - s, Y: cy + s}, rl.Vector2{X: cx + s, Y: cy + s}
	case snake.DOWN:
		tip, a, b = rl.Vector2{X: cx, Y: cy + s}, rl.Vector2{X: cx + s, Y: cy - s}, rl.Vector2{X: cx - s, Y: cy - s}
	case snake.LEFT:
		tip, a, b = rl.Vector2{X: cx - s, Y: cy}, rl.Vector2{X: cx + s, Y: cy + s}, rl.Vector2{X: cx + s, Y: cy - s}
	case snake.RIGHT:
		tip, a, b = rl.Vector2{X: cx + s, Y: cy}, rl.Vector2{X: cx - s, Y: cy - s}, rl.Vector2{X: cx - s, Y: cy + s}
	default:
		return
	}
	rl.DrawTriangle(tip, a, b, rl.White)
}

func (r *Renderer) drawCentered(text string, y, size int32, color rl.Color) {
	width := rl.MeasureText(text, size)
	rl.DrawText(text, r.screenWidth/2-width/2, y, size, color)
}

func toRL(c types.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
