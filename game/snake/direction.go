package snake

import "wheel-picker/game/types"

// Direction is a cardinal heading on the grid
type Direction int

const (
	NONE  Direction = iota // 0
	UP                     // 1
	RIGHT                  // 2
	DOWN                   // 3
	LEFT                   // 4
)

// ToPoint converts a Direction into a one-cell step
func (d Direction) ToPoint() types.Point {
	switch d {
	case UP:
		return types.Point{X: 0, Y: -1}
	case RIGHT:
		return types.Point{X: 1, Y: 0}
	case DOWN:
		return types.Point{X: 0, Y: 1}
	case LEFT:
		return types.Point{X: -1, Y: 0}
	default:
		return types.Point{X: 0, Y: 0}
	}
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return NONE
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}
