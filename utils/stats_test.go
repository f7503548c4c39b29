package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 100*time.Millisecond)
	if s.GenerationsPerSecond != 10 {
		t.Fatalf("gen/sec = %v, want 10", s.GenerationsPerSecond)
	}
	if s.AveragePopulation != 100 {
		t.Fatalf("avg population = %v, want 100", s.AveragePopulation)
	}

	s.Update(2, 200, 0)
	if s.GenerationsPerSecond != 10 {
		t.Fatal("zero duration should keep the previous rate")
	}
	if s.AveragePopulation != 110 {
		t.Fatalf("avg population = %v, want 110", s.AveragePopulation)
	}
	if s.TotalGenerations != 2 || s.LivingCells != 200 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}
