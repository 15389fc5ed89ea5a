package solarwind

import (
	"testing"
	"time"
)

// TestSinceKeepsSuffix verifies that with a 6h lookback evaluated at t, only
// the samples at t-5h and t-1h survive, in order; t-7h is dropped.
func TestSinceKeepsSuffix(t *testing.T) {
	now := time.Date(2025, 11, 6, 18, 0, 0, 0, time.UTC)
	series := JoinedSeries{
		Times: []time.Time{now.Add(-7 * time.Hour), now.Add(-5 * time.Hour), now.Add(-1 * time.Hour)},
		Bz:    []float64{-1.0, -2.0, -3.0},
		Speed: []float64{400, 410, 420},
	}

	filtered := series.Since(now.Add(-6 * time.Hour))

	if filtered.Len() != 2 {
		t.Fatalf("expected 2 samples, got %d", filtered.Len())
	}
	if !filtered.Times[0].Equal(now.Add(-5*time.Hour)) || !filtered.Times[1].Equal(now.Add(-1*time.Hour)) {
		t.Fatalf("unexpected order: %v", filtered.Times)
	}
	if filtered.Bz[0] != -2.0 || filtered.Speed[1] != 420 {
		t.Fatalf("parallel values not carried: bz=%v speed=%v", filtered.Bz, filtered.Speed)
	}
}

// TestSinceCutoffInclusive verifies a sample exactly at the cutoff survives.
func TestSinceCutoffInclusive(t *testing.T) {
	cutoff := time.Date(2025, 11, 6, 12, 0, 0, 0, time.UTC)
	series := JoinedSeries{
		Times: []time.Time{cutoff},
		Bz:    []float64{1.0},
		Speed: []float64{400},
	}

	if filtered := series.Since(cutoff); filtered.Len() != 1 {
		t.Fatalf("expected the boundary sample to survive, got %d", filtered.Len())
	}
}

// TestSinceAllStale verifies an all-stale series filters to empty without
// error; callers treat this as "no current data".
func TestSinceAllStale(t *testing.T) {
	now := time.Date(2025, 11, 6, 18, 0, 0, 0, time.UTC)
	series := JoinedSeries{
		Times: []time.Time{now.Add(-48 * time.Hour)},
		Bz:    []float64{1.0},
		Speed: []float64{400},
	}

	if filtered := series.Since(now.Add(-6 * time.Hour)); filtered.Len() != 0 {
		t.Fatalf("expected empty result, got %d samples", filtered.Len())
	}
}
