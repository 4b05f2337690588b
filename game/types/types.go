package types

// Point is a cell on the snake grid
type Point struct {
	X, Y int
}

// Add returns p moved by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Vec2 is a position in screen space
type Vec2 struct {
	X, Y float64
}

type Color struct {
	R, G, B uint8
}

// Game constants
const (
	GridSize = 20 // Snake overlay is a square grid
)
