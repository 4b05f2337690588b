package wheel

import (
	"errors"
	"math"
	"time"

	"golang.org/x/exp/rand"

	"wheel-picker/game/types"
)

const (
	DefaultSpins    = 15
	DefaultDuration = 15 * time.Second

	// PointerAngle is where the pointer sits, in degrees clockwise from 3 o'clock.
	PointerAngle = -90.0

	MaxLabelSize  = 40.0
	MinLabelSize  = 12.0
	labelSizeStep = 2.0
	labelFill     = 0.85
)

// Palette is cycled across the segments.
var Palette = []types.Color{
	{R: 0xFF, G: 0xC1, B: 0x07},
	{R: 0xFF, G: 0x57, B: 0x22},
	{R: 0x4C, G: 0xAF, B: 0x50},
	{R: 0x21, G: 0x96, B: 0xF3},
	{R: 0x9C, G: 0x27, B: 0xB0},
	{R: 0xE9, G: 0x1E, B: 0x63},
}

var ErrNoItems = errors.New("wheel needs at least one item")

type Config struct {
	Spins    int
	Duration time.Duration
}

// Wheel holds the rotation of the picker wheel and animates spins towards
// a random target.
type Wheel struct {
	items    []string
	rotation float64
	spins    int
	duration time.Duration
	easing   Easing
	rng      *rand.Rand

	spinning  bool
	from      float64
	target    float64
	startedAt time.Time
}

func New(items []string, cfg Config, rng *rand.Rand) (*Wheel, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if cfg.Spins <= 0 {
		cfg.Spins = DefaultSpins
	}
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	own := make([]string, len(items))
	copy(own, items)

	return &Wheel{
		items:    own,
		spins:    cfg.Spins,
		duration: cfg.Duration,
		easing:   FastOutSlowIn,
		rng:      rng,
	}, nil
}

// Items returns a copy of the wheel labels in segment order.
func (w *Wheel) Items() []string {
	out := make([]string, len(w.items))
	copy(out, w.items)
	return out
}

func (w *Wheel) Item(i int) string { return w.items[i] }

func (w *Wheel) Len() int { return len(w.items) }

func (w *Wheel) Rotation() float64 { return w.rotation }

func (w *Wheel) Spinning() bool { return w.spinning }

func (w *Wheel) Target() float64 { return w.target }

func (w *Wheel) AnglePerItem() float64 {
	return 360 / float64(len(w.items))
}

// Spin starts a new spin at now. The target is the current rotation plus
// the configured number of full turns and a random extra 0..360 degrees.
// A spin already in progress is left alone.
func (w *Wheel) Spin(now time.Time) (float64, bool) {
	if w.spinning {
		return w.target, false
	}
	w.spinning = true
	w.from = w.rotation
	w.target = w.rotation + 360*float64(w.spins) + float64(w.rng.Intn(361))
	w.startedAt = now
	return w.target, true
}

// Update moves the rotation along the eased curve. When the spin settles it
// returns the index under the pointer and true, exactly once per spin.
func (w *Wheel) Update(now time.Time) (int, bool) {
	if !w.spinning {
		return 0, false
	}

	elapsed := now.Sub(w.startedAt)
	if elapsed >= w.duration {
		w.rotation = w.target
		w.spinning = false
		return ResolveIndex(w.target, len(w.items)), true
	}

	progress := float64(elapsed) / float64(w.duration)
	w.rotation = w.from + (w.target-w.from)*w.easing(progress)
	return 0, false
}

// Normalize reduces an angle in degrees into [0,360).
func Normalize(angle float64) float64 {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// ResolveIndex returns the item under the top pointer once the wheel has
// been rotated clockwise by angle degrees. Item 0 starts at the pointer.
func ResolveIndex(angle float64, n int) int {
	if n <= 0 {
		panic("wheel: ResolveIndex with no items")
	}
	anglePerItem := 360 / float64(n)
	norm := Normalize(angle)
	idx := int(math.Floor(math.Mod(360-norm, 360)/anglePerItem)) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

// SegmentStart is the unrotated start angle of segment i, clockwise from 3 o'clock.
func SegmentStart(i, n int) float64 {
	return float64(i)*360/float64(n) + PointerAngle
}

// LabelAngle is the unrotated angle of the bisector of segment i.
func LabelAngle(i, n int) float64 {
	sweep := 360 / float64(n)
	return SegmentStart(i, n) + sweep/2
}

func SegmentColor(i int) types.Color {
	return Palette[i%len(Palette)]
}

func LabelColor(i int) types.Color {
	if i%2 == 0 {
		return types.Color{R: 255, G: 255, B: 255}
	}
	return types.Color{}
}

// FitLabelSize shrinks the label font until measure(size) fits inside the
// wheel radius or the minimum size is reached.
func FitLabelSize(measure func(size float64) float64, radius float64) float64 {
	maxWidth := radius * labelFill
	size := MaxLabelSize
	for measure(size) > maxWidth && size > MinLabelSize {
		size -= labelSizeStep
	}
	return size
}
