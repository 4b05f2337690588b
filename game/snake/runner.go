package snake

import (
	"time"

	"go.uber.org/zap"
)

const DefaultTick = 200 * time.Millisecond

// Runner drives a Game from the frame clock.
type Runner struct {
	game     *Game
	interval time.Duration
	last     time.Time
	stopped  bool
	logger   *zap.Logger
}

func NewRunner(game *Game, interval time.Duration, now time.Time, logger *zap.Logger) *Runner {
	if interval <= 0 {
		interval = DefaultTick
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		game:     game,
		interval: interval,
		last:     now,
		logger:   logger,
	}
}

func (r *Runner) Game() *Game { return r.game }

// Update runs at most one Step when a tick interval has passed since the
// last step. A stalled frame does not replay the missed ticks.
func (r *Runner) Update(now time.Time) bool {
	if r.stopped || r.game.IsOver() {
		return false
	}
	if now.Sub(r.last) < r.interval {
		return false
	}
	r.last = now

	switch r.game.Step(now) {
	case Ate:
		r.logger.Debug("snake ate", zap.Int("score", r.game.Score()), zap.Int("length", r.game.Len()))
	case Died:
		r.logger.Info("snake game over",
			zap.Int("score", r.game.Score()),
			zap.Stringer("collision", r.game.Collision()),
			zap.Int("steps", r.game.Steps()))
	}
	return true
}

// Steer forwards a direction request to the game.
func (r *Runner) Steer(d Direction) bool {
	if r.stopped {
		return false
	}
	return r.game.SetDirection(d)
}

// Stop ends ticking, used when the overlay is dismissed.
func (r *Runner) Stop() { r.stopped = true }
