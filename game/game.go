package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"wheel-picker/game/confetti"
	"wheel-picker/game/snake"
	"wheel-picker/game/stats"
	"wheel-picker/game/types"
	"wheel-picker/game/wheel"
)

// Prompt is shown until the first spin settles.
const Prompt = "Spin the wheel!"

// Phase of the picker screen
type Phase int

const (
	Idle Phase = iota
	Spinning
	Celebrating
)

func (p Phase) String() string {
	switch p {
	case Spinning:
		return "spinning"
	case Celebrating:
		return "celebrating"
	default:
		return "idle"
	}
}

type Options struct {
	Items    []string
	Wheel    wheel.Config
	Grid     types.Grid
	Tick     time.Duration
	Confetti confetti.Config
	// Screen is the confetti origin and the bottom bound particles fall past.
	Screen types.Vec2
	Seed   uint64
}

// Picker is the single screen: the wheel, the snake overlay shown while it
// spins, and the confetti once it lands.
type Picker struct {
	UUID  string
	Stats *stats.SessionStats

	wheel    *wheel.Wheel
	runner   *snake.Runner
	burst    *confetti.Burst
	phase    Phase
	label    string
	spinID   string
	opts     Options
	rng      *rand.Rand
	logger   *zap.Logger
	lastSpin time.Time
}

func NewPicker(opts Options, logger *zap.Logger) (*Picker, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	if opts.Grid.Width <= 0 || opts.Grid.Height <= 0 {
		opts.Grid = types.Grid{Width: types.GridSize, Height: types.GridSize}
	}
	if opts.Tick <= 0 {
		opts.Tick = snake.DefaultTick
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	w, err := wheel.New(opts.Items, opts.Wheel, rng)
	if err != nil {
		return nil, fmt.Errorf("build wheel: %w", err)
	}

	p := &Picker{
		UUID:   uuid.New().String(),
		Stats:  stats.NewSessionStats(),
		wheel:  w,
		phase:  Idle,
		label:  Prompt,
		opts:   opts,
		rng:    rng,
		logger: logger,
	}
	p.logger.Info("picker ready",
		zap.String("session", p.UUID),
		zap.Int("items", w.Len()),
		zap.Uint64("seed", opts.Seed))
	return p, nil
}

func (p *Picker) Wheel() *wheel.Wheel { return p.wheel }

func (p *Picker) Phase() Phase { return p.phase }

// Label is the current result line above the wheel.
func (p *Picker) Label() string { return p.label }

func (p *Picker) SpinID() string { return p.spinID }

// CanSpin reports whether the spin button is enabled.
func (p *Picker) CanSpin() bool { return p.phase != Spinning }

// Snake returns the round shown in the overlay, nil when no overlay is up.
func (p *Picker) Snake() *snake.Game {
	if p.phase != Spinning || p.runner == nil {
		return nil
	}
	return p.runner.Game()
}

// Confetti returns the active burst, nil outside the celebration.
func (p *Picker) Confetti() *confetti.Burst {
	if p.phase != Celebrating {
		return nil
	}
	return p.burst
}

// SetScreen updates the confetti origin and bounds after a resize.
func (p *Picker) SetScreen(size types.Vec2) {
	p.opts.Screen = size
}

// Spin starts the wheel and a fresh snake round. Ignored while spinning.
func (p *Picker) Spin(now time.Time) bool {
	if p.phase == Spinning {
		return false
	}
	target, ok := p.wheel.Spin(now)
	if !ok {
		return false
	}

	p.burst = nil
	p.spinID = uuid.New().String()
	p.lastSpin = now
	round := snake.NewGame(p.opts.Grid, p.rng, now)
	p.runner = snake.NewRunner(round, p.opts.Tick, now, p.logger.With(zap.String("spin", p.spinID)))
	p.phase = Spinning

	p.logger.Info("spin started",
		zap.String("spin", p.spinID),
		zap.Float64("from", p.wheel.Rotation()),
		zap.Float64("target", target))
	return true
}

// Steer passes direction input to the snake overlay.
func (p *Picker) Steer(d snake.Direction) bool {
	if p.phase != Spinning || p.runner == nil {
		return false
	}
	return p.runner.Steer(d)
}

// Update advances everything to now. Call once per frame.
func (p *Picker) Update(now time.Time) {
	switch p.phase {
	case Spinning:
		p.runner.Update(now)
		if idx, settled := p.wheel.Update(now); settled {
			p.settle(idx, now)
		}
	case Celebrating:
		if p.burst == nil || p.burst.Done(now) {
			p.logger.Debug("confetti done", zap.String("spin", p.spinID))
			p.burst = nil
			p.phase = Idle
		}
	}
}

func (p *Picker) settle(idx int, now time.Time) {
	p.label = p.wheel.Item(idx)

	round := p.runner.Game()
	p.runner.Stop()
	end := now
	if round.IsOver() {
		_, end = round.Span()
	}
	p.Stats.AddRound(round.Score(), p.lastSpin, end)
	p.Stats.AddSpin(p.label)

	origin := types.Vec2{X: p.opts.Screen.X / 2, Y: p.opts.Screen.Y / 2}
	p.burst = confetti.New(p.rng, origin, p.opts.Confetti, now)
	p.phase = Celebrating

	p.logger.Info("spin landed",
		zap.String("spin", p.spinID),
		zap.Int("index", idx),
		zap.String("item", p.label),
		zap.Float64("angle", wheel.Normalize(p.wheel.Rotation())),
		zap.Int("snake_score", round.Score()),
		zap.Duration("took", now.Sub(p.lastSpin)))
}
