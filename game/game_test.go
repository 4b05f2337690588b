package game

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"wheel-picker/game/confetti"
	"wheel-picker/game/snake"
	"wheel-picker/game/types"
	"wheel-picker/game/wheel"
)

var epoch = time.Unix(1700000000, 0)

var restaurants = []string{
	"Kings Hawaiian Grill",
	"Global Kitchen",
	"Holy Guacamole",
	"Campus Club",
	"Coffman Market",
	"Starbucks Coffee",
	"Einstein Bros. Bagels",
	"Erbert & Gerbert's",
	"Wild Blue Sushi",
	"Panda Express",
}

func newTestPicker(t *testing.T) *Picker {
	t.Helper()
	p, err := NewPicker(Options{
		Items:    restaurants,
		Wheel:    wheel.Config{Spins: 15, Duration: 15 * time.Second},
		Tick:     200 * time.Millisecond,
		Confetti: confetti.Config{Duration: 2 * time.Second},
		Screen:   types.Vec2{X: 400, Y: 800},
		Seed:     99,
	}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewPicker() error = %v", err)
	}
	return p
}

func TestNewPickerRejectsEmptyItems(t *testing.T) {
	_, err := NewPicker(Options{}, zaptest.NewLogger(t))
	if !errors.Is(err, wheel.ErrNoItems) {
		t.Fatalf("error = %v, want wheel.ErrNoItems", err)
	}
}

func TestPickerStartsIdle(t *testing.T) {
	p := newTestPicker(t)
	if p.Phase() != Idle || p.Label() != Prompt || !p.CanSpin() {
		t.Fatalf("phase %v label %q canSpin %v", p.Phase(), p.Label(), p.CanSpin())
	}
	if p.Snake() != nil || p.Confetti() != nil {
		t.Fatal("overlays visible before the first spin")
	}
	if p.Steer(snake.UP) {
		t.Fatal("steering accepted while idle")
	}
}

func TestFullSpinCycle(t *testing.T) {
	p := newTestPicker(t)

	if !p.Spin(epoch) {
		t.Fatal("Spin() refused")
	}
	if p.Phase() != Spinning || p.CanSpin() {
		t.Fatalf("phase %v canSpin %v after spin", p.Phase(), p.CanSpin())
	}
	if p.Spin(epoch.Add(time.Second)) {
		t.Fatal("second Spin() accepted mid-spin")
	}
	if p.SpinID() == "" {
		t.Fatal("spin has no id")
	}

	round := p.Snake()
	if round == nil {
		t.Fatal("snake overlay missing while spinning")
	}
	if !p.Steer(snake.DOWN) {
		t.Fatal("steer down refused")
	}

	for ms := 200; ms <= 1000; ms += 200 {
		p.Update(epoch.Add(time.Duration(ms) * time.Millisecond))
	}
	if round.Steps() != 5 {
		t.Fatalf("snake steps after 1s = %d, want 5", round.Steps())
	}

	target := p.Wheel().Target()
	p.Update(epoch.Add(15 * time.Second))
	if p.Phase() != Celebrating {
		t.Fatalf("phase after settle = %v, want celebrating", p.Phase())
	}
	want := restaurants[wheel.ResolveIndex(target, len(restaurants))]
	if p.Label() != want {
		t.Fatalf("label = %q, want %q", p.Label(), want)
	}
	if p.Snake() != nil {
		t.Fatal("snake overlay still up after settle")
	}
	steps := round.Steps()
	p.Update(epoch.Add(16 * time.Second))
	if round.Steps() != steps {
		t.Fatal("snake kept ticking after the overlay was dismissed")
	}

	burst := p.Confetti()
	if burst == nil {
		t.Fatal("no confetti after settle")
	}
	if burst.Origin != (types.Vec2{X: 200, Y: 400}) {
		t.Fatalf("confetti origin = %v", burst.Origin)
	}
	if !p.CanSpin() {
		t.Fatal("spin disabled during celebration")
	}

	p.Update(epoch.Add(17 * time.Second))
	if p.Phase() != Idle || p.Confetti() != nil {
		t.Fatalf("phase %v after confetti, want idle", p.Phase())
	}
	if p.Label() != want {
		t.Fatal("label reset after confetti")
	}

	if p.Stats.SpinCount() != 1 || p.Stats.Tally(want) != 1 || p.Stats.RoundsPlayed() != 1 {
		t.Fatal("session stats not updated")
	}
}

func TestSpinDuringCelebrationClearsConfetti(t *testing.T) {
	p := newTestPicker(t)
	p.Spin(epoch)
	p.Update(epoch.Add(15 * time.Second))
	if p.Confetti() == nil {
		t.Fatal("expected confetti")
	}

	firstID := p.SpinID()
	if !p.Spin(epoch.Add(15500 * time.Millisecond)) {
		t.Fatal("spin refused during celebration")
	}
	if p.Confetti() != nil {
		t.Fatal("confetti not cleared by new spin")
	}
	if p.SpinID() == firstID {
		t.Fatal("spin id reused")
	}
	if g := p.Snake(); g == nil || g.Steps() != 0 || g.Len() != 1 {
		t.Fatal("new spin did not start a fresh snake round")
	}
}

func TestSnakeGameOverStaysVisibleUntilSettle(t *testing.T) {
	p := newTestPicker(t)
	p.Spin(epoch)
	// heading right from (10,10) hits the wall on the 10th tick
	for ms := 200; ms <= 5000; ms += 200 {
		p.Update(epoch.Add(time.Duration(ms) * time.Millisecond))
	}

	g := p.Snake()
	if g == nil || !g.IsOver() {
		t.Fatal("expected a finished snake round in the overlay")
	}
	if g.Collision() != snake.WallCollision {
		t.Fatalf("collision = %v", g.Collision())
	}

	p.Update(epoch.Add(15 * time.Second))
	if p.Stats.GetMaxScore() != 0 {
		t.Fatalf("max score = %d", p.Stats.GetMaxScore())
	}
	if got := p.Stats.GetAverageDuration(); got != 2 {
		t.Fatalf("round duration = %vs, want 2s", got)
	}
}
