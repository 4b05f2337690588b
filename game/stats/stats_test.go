package stats

import (
	"math"
	"testing"
	"time"
)

func TestEmptyStats(t *testing.T) {
	s := NewSessionStats()
	if s.GetAverageScore() != 0 || s.GetMaxScore() != 0 || s.GetAverageDuration() != 0 {
		t.Fatal("empty stats should report zeros")
	}
	if s.LastSpin() != "" {
		t.Fatalf("LastSpin() = %q", s.LastSpin())
	}
	if l, n := s.Favorite(); l != "" || n != 0 {
		t.Fatalf("Favorite() = %q, %d", l, n)
	}
}

func TestRounds(t *testing.T) {
	s := NewSessionStats()
	start := time.Unix(0, 0)
	s.AddRound(2, start, start.Add(4*time.Second))
	s.AddRound(5, start, start.Add(2*time.Second))
	s.AddRound(0, start, start)

	if s.RoundsPlayed() != 3 {
		t.Fatalf("RoundsPlayed() = %d", s.RoundsPlayed())
	}
	if got := s.GetAverageScore(); math.Abs(got-7.0/3) > 1e-9 {
		t.Fatalf("GetAverageScore() = %v", got)
	}
	if s.GetMaxScore() != 5 {
		t.Fatalf("GetMaxScore() = %d", s.GetMaxScore())
	}
	if got := s.GetAverageDuration(); math.Abs(got-2) > 1e-9 {
		t.Fatalf("GetAverageDuration() = %v", got)
	}
}

func TestSpins(t *testing.T) {
	s := NewSessionStats()
	for _, l := range []string{"Panda Express", "Campus Club", "Panda Express", "Campus Club", "Global Kitchen"} {
		s.AddSpin(l)
	}
	if s.SpinCount() != 5 {
		t.Fatalf("SpinCount() = %d", s.SpinCount())
	}
	if s.Tally("Panda Express") != 2 || s.Tally("Nowhere") != 0 {
		t.Fatal("tally mismatch")
	}
	if s.LastSpin() != "Global Kitchen" {
		t.Fatalf("LastSpin() = %q", s.LastSpin())
	}
	if l, n := s.Favorite(); l != "Campus Club" || n != 2 {
		t.Fatalf("Favorite() = %q, %d; want Campus Club, 2", l, n)
	}
}
