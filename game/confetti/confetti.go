package confetti

import (
	"math"
	"time"

	"golang.org/x/exp/rand"

	"wheel-picker/game/types"
)

const (
	DefaultCount    = 100
	DefaultDuration = 2 * time.Second
	DefaultGravity  = 0.8
	// DefaultTimeScale converts linear progress 0..1 into simulation time.
	DefaultTimeScale = 50.0
	DefaultMinSpeed  = 10.0
	DefaultMaxSpeed  = 30.0
	Radius           = 10.0
)

// Palette holds the particle colors.
var Palette = []types.Color{
	{R: 255, G: 0, B: 0},
	{R: 0, G: 0, B: 255},
	{R: 0, G: 255, B: 0},
	{R: 255, G: 255, B: 0},
	{R: 255, G: 0, B: 255},
	{R: 0, G: 255, B: 255},
}

// Config tunes a burst. Zero fields take the package defaults, so a zero
// Gravity means DefaultGravity; a burst cannot be made weightless.
type Config struct {
	Count     int
	Duration  time.Duration
	Gravity   float64
	TimeScale float64
	MinSpeed  float64
	MaxSpeed  float64
}

func (c Config) withDefaults() Config {
	if c.Count <= 0 {
		c.Count = DefaultCount
	}
	if c.Duration <= 0 {
		c.Duration = DefaultDuration
	}
	if c.Gravity == 0 {
		c.Gravity = DefaultGravity
	}
	if c.TimeScale <= 0 {
		c.TimeScale = DefaultTimeScale
	}
	if c.MinSpeed <= 0 {
		c.MinSpeed = DefaultMinSpeed
	}
	if c.MaxSpeed <= c.MinSpeed {
		c.MaxSpeed = c.MinSpeed + (DefaultMaxSpeed - DefaultMinSpeed)
	}
	return c
}

// Particle moves on a fixed velocity plus gravity.
type Particle struct {
	Color  types.Color
	VX, VY float64
}

// Burst is one confetti explosion. Positions are closed-form in time, so
// nothing is integrated or removed while it plays.
type Burst struct {
	Origin    types.Vec2
	Particles []Particle

	cfg       Config
	startedAt time.Time
}

func New(rng *rand.Rand, origin types.Vec2, cfg Config, now time.Time) *Burst {
	cfg = cfg.withDefaults()
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(now.UnixNano())))
	}

	particles := make([]Particle, cfg.Count)
	for i := range particles {
		angle := rng.Float64() * 2 * math.Pi
		speed := cfg.MinSpeed + rng.Float64()*(cfg.MaxSpeed-cfg.MinSpeed)
		particles[i] = Particle{
			Color: Palette[rng.Intn(len(Palette))],
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
		}
	}

	return &Burst{
		Origin:    origin,
		Particles: particles,
		cfg:       cfg,
		startedAt: now,
	}
}

// Progress is the linear animation progress in [0,1].
func (b *Burst) Progress(now time.Time) float64 {
	p := float64(now.Sub(b.startedAt)) / float64(b.cfg.Duration)
	return math.Max(0, math.Min(1, p))
}

// SimTime converts wall-clock time into simulation time.
func (b *Burst) SimTime(now time.Time) float64 {
	return b.Progress(now) * b.cfg.TimeScale
}

// Position of p at simulation time t.
func (b *Burst) Position(p Particle, t float64) types.Vec2 {
	return types.Vec2{
		X: b.Origin.X + p.VX*t,
		Y: b.Origin.Y + p.VY*t + b.cfg.Gravity*t*t,
	}
}

// Alpha fades linearly to zero over the burst.
func (b *Burst) Alpha(now time.Time) float64 {
	return 1 - b.Progress(now)
}

// Done reports whether the burst has run its full duration.
func (b *Burst) Done(now time.Time) bool {
	return b.Progress(now) >= 1
}

// Expired reports whether a particle at pos has fallen past the bottom bound.
func Expired(pos types.Vec2, bottom float64) bool {
	return pos.Y >= bottom
}

// Visible returns the positions of particles still above bottom at now.
func (b *Burst) Visible(now time.Time, bottom float64) []Drawn {
	t := b.SimTime(now)
	out := make([]Drawn, 0, len(b.Particles))
	for _, p := range b.Particles {
		pos := b.Position(p, t)
		if Expired(pos, bottom) {
			continue
		}
		out = append(out, Drawn{Pos: pos, Color: p.Color})
	}
	return out
}

// Drawn is a particle ready to render.
type Drawn struct {
	Pos   types.Vec2
	Color types.Color
}
