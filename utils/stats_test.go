package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 90, 100*time.Millisecond)
	if s.AveragePopulation != 100 {
		t.Fatalf("AveragePopulation = %v, want 100", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 10 {
		t.Fatalf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 150, 0)
	if s.AveragePopulation != 110 {
		t.Fatalf("AveragePopulation = %v, want 110", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 10 {
		t.Fatal("zero duration must keep the previous rate")
	}
	if s.TotalGenerations != 2 || s.Population != 200 || s.VisibleCells != 150 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}
