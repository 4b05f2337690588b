package snake

import (
	"time"

	"golang.org/x/exp/rand"

	"wheel-picker/game/types"
)

// State of a snake round
type State int

const (
	Running State = iota
	Over
)

func (s State) String() string {
	if s == Over {
		return "over"
	}
	return "running"
}

// CollisionType represents the type of collision that ended the round
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Outcome describes what a single Step did
type Outcome int

const (
	Idle Outcome = iota // round already over, nothing changed
	Moved
	Ate
	Died
)

type Game struct {
	Grid types.Grid

	body              []types.Point // head first
	food              types.Point
	direction         Direction
	score             int
	state             State
	steps             int
	lastCollisionType CollisionType
	startTime         time.Time
	endTime           time.Time
	rng               *rand.Rand
}

// NewGame starts a round with a one-cell snake in the middle of the grid
// heading right and the food down and to the right of it.
func NewGame(grid types.Grid, rng *rand.Rand, now time.Time) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(now.UnixNano())))
	}
	return &Game{
		Grid:      grid,
		body:      []types.Point{{X: grid.Width / 2, Y: grid.Height / 2}},
		food:      types.Point{X: grid.Width * 3 / 4, Y: grid.Height * 3 / 4},
		direction: RIGHT,
		state:     Running,
		startTime: now,
		rng:       rng,
	}
}

func (g *Game) Head() types.Point { return g.body[0] }

// Body returns a copy of the snake cells, head first.
func (g *Game) Body() []types.Point {
	out := make([]types.Point, len(g.body))
	copy(out, g.body)
	return out
}

func (g *Game) Len() int { return len(g.body) }
func (g *Game) Food() types.Point { return g.food }
func (g *Game) Direction() Direction { return g.direction }
func (g *Game) Score() int { return g.score }
func (g *Game) State() State { return g.state }
func (g *Game) IsOver() bool { return g.state == Over }
func (g *Game) Steps() int { return g.steps }
func (g *Game) Collision() CollisionType { return g.lastCollisionType }
func (g *Game) Span() (time.Time, time.Time) { return g.startTime, g.endTime }

// SetDirection changes heading unless the request is the exact reverse of
// the current one. Returns whether the heading was accepted.
func (g *Game) SetDirection(d Direction) bool {
	if g.state == Over || d == NONE {
		return false
	}
	if d == g.direction.Opposite() {
		return false
	}
	g.direction = d
	return true
}

// Step advances the round by one tick.
func (g *Game) Step(now time.Time) Outcome {
	if g.state == Over {
		return Idle
	}
	g.steps++

	newHead := g.Head().Add(g.direction.ToPoint())

	if collision := g.checkCollision(newHead); collision != NoCollision {
		g.state = Over
		g.lastCollisionType = collision
		g.endTime = now
		return Died
	}

	g.body = append(g.body, types.Point{})
	copy(g.body[1:], g.body)
	g.body[0] = newHead

	if newHead == g.food {
		g.score++
		g.food = g.generateFood()
		return Ate
	}
	g.body = g.body[:len(g.body)-1]
	return Moved
}

func (g *Game) checkCollision(pos types.Point) CollisionType {
	if !g.Grid.Contains(pos) {
		return WallCollision
	}
	for _, part := range g.body {
		if pos == part {
			return SelfCollision
		}
	}
	return NoCollision
}

// generateFood picks any cell on the grid, snake-covered or not.
func (g *Game) generateFood() types.Point {
	return types.Point{
		X: g.rng.Intn(g.Grid.Width),
		Y: g.rng.Intn(g.Grid.Height),
	}
}
