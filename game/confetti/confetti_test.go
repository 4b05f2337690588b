package confetti

import (
	"math"
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"wheel-picker/game/types"
)

var epoch = time.Unix(1700000000, 0)

func newBurst(seed uint64) *Burst {
	return New(rand.New(rand.NewSource(seed)), types.Vec2{X: 200, Y: 400}, Config{}, epoch)
}

func TestNewUsesDefaults(t *testing.T) {
	b := newBurst(1)
	if len(b.Particles) != DefaultCount {
		t.Fatalf("particles = %d, want %d", len(b.Particles), DefaultCount)
	}
	for i, p := range b.Particles {
		speed := math.Hypot(p.VX, p.VY)
		if speed < DefaultMinSpeed-1e-9 || speed >= DefaultMaxSpeed+1e-9 {
			t.Fatalf("particle %d speed %v outside [%v,%v)", i, speed, DefaultMinSpeed, DefaultMaxSpeed)
		}
		found := false
		for _, c := range Palette {
			if c == p.Color {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("particle %d color %v not in palette", i, p.Color)
		}
	}
}

func TestPositionAtZeroIsOrigin(t *testing.T) {
	b := newBurst(2)
	for i, p := range b.Particles {
		if pos := b.Position(p, 0); pos != b.Origin {
			t.Fatalf("particle %d at t=0 is %v, want origin %v", i, pos, b.Origin)
		}
	}
	if b.SimTime(epoch) != 0 {
		t.Fatalf("sim time at start = %v", b.SimTime(epoch))
	}
}

func TestPositionClosedForm(t *testing.T) {
	b := newBurst(3)
	p := Particle{VX: 2, VY: -3}
	got := b.Position(p, 10)
	want := types.Vec2{X: 200 + 20, Y: 400 - 30 + 0.8*100}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Fatalf("Position = %v, want %v", got, want)
	}
}

func TestProgressAndDone(t *testing.T) {
	b := newBurst(4)
	tests := []struct {
		at       time.Duration
		progress float64
		done     bool
	}{
		{-time.Second, 0, false},
		{0, 0, false},
		{time.Second, 0.5, false},
		{2 * time.Second, 1, true},
		{5 * time.Second, 1, true},
	}
	for _, tt := range tests {
		now := epoch.Add(tt.at)
		if got := b.Progress(now); math.Abs(got-tt.progress) > 1e-9 {
			t.Errorf("Progress(%v) = %v, want %v", tt.at, got, tt.progress)
		}
		if got := b.Done(now); got != tt.done {
			t.Errorf("Done(%v) = %v, want %v", tt.at, got, tt.done)
		}
		if got := b.Alpha(now); math.Abs(got-(1-tt.progress)) > 1e-9 {
			t.Errorf("Alpha(%v) = %v", tt.at, got)
		}
	}
	if got := b.SimTime(epoch.Add(time.Second)); got != 25 {
		t.Errorf("SimTime halfway = %v, want 25", got)
	}
}

func TestVisibleDropsFallenParticles(t *testing.T) {
	b := newBurst(5)
	if got := len(b.Visible(epoch, 800)); got != DefaultCount {
		t.Fatalf("visible at start = %d, want all", got)
	}
	// by the end gravity has pulled every particle at least 0.8*50^2 - 30*50 = 500px down
	if got := len(b.Visible(epoch.Add(2*time.Second), 800)); got != 0 {
		t.Fatalf("visible at end = %d, want 0", got)
	}
	if !Expired(types.Vec2{Y: 800}, 800) || Expired(types.Vec2{Y: 799}, 800) {
		t.Fatal("Expired bound is wrong")
	}
}
