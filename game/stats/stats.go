package stats

import (
	"sort"
	"sync"
	"time"
)

// RoundRecord is one finished snake round.
type RoundRecord struct {
	StartTime time.Time
	EndTime   time.Time
	Score     int
}

func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// SessionStats keeps what happened since the app started. Nothing is
// written to disk.
type SessionStats struct {
	rounds []RoundRecord
	spins  []string
	tally  map[string]int
	mutex  sync.RWMutex
}

func NewSessionStats() *SessionStats {
	return &SessionStats{
		rounds: make([]RoundRecord, 0),
		spins:  make([]string, 0),
		tally:  make(map[string]int),
	}
}

// AddRound records a finished snake round.
func (s *SessionStats) AddRound(score int, startTime, endTime time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.rounds = append(s.rounds, RoundRecord{
		StartTime: startTime,
		EndTime:   endTime,
		Score:     score,
	})
}

// AddSpin records the label a spin landed on.
func (s *SessionStats) AddSpin(label string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.spins = append(s.spins, label)
	s.tally[label]++
}

func (s *SessionStats) RoundsPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.rounds)
}

func (s *SessionStats) SpinCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.spins)
}

// GetAverageScore returns the mean snake score, 0 with no rounds.
func (s *SessionStats) GetAverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.rounds) == 0 {
		return 0
	}
	total := 0
	for _, r := range s.rounds {
		total += r.Score
	}
	return float64(total) / float64(len(s.rounds))
}

// GetMaxScore returns the best snake score.
func (s *SessionStats) GetMaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	maxScore := 0
	for _, r := range s.rounds {
		if r.Score > maxScore {
			maxScore = r.Score
		}
	}
	return maxScore
}

// GetAverageDuration returns the mean round length in seconds.
func (s *SessionStats) GetAverageDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.rounds) == 0 {
		return 0
	}
	var total float64
	for _, r := range s.rounds {
		total += r.Duration().Seconds()
	}
	return total / float64(len(s.rounds))
}

func (s *SessionStats) Tally(label string) int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tally[label]
}

// LastSpin returns the most recent result, "" before the first spin.
func (s *SessionStats) LastSpin() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.spins) == 0 {
		return ""
	}
	return s.spins[len(s.spins)-1]
}

// Favorite returns the most frequent result; ties go to the label that
// sorts first.
func (s *SessionStats) Favorite() (string, int) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	labels := make([]string, 0, len(s.tally))
	for l := range s.tally {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	best, count := "", 0
	for _, l := range labels {
		if s.tally[l] > count {
			best, count = l, s.tally[l]
		}
	}
	return best, count
}
