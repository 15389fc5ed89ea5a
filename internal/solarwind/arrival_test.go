package solarwind

import (
	"testing"
	"time"
)

// TestArrivalTimeOneHourTransit verifies that a speed covering the L1-Earth
// distance in exactly one hour yields measured time plus one hour.
func TestArrivalTimeOneHourTransit(t *testing.T) {
	measured := time.Date(2025, 11, 6, 12, 0, 0, 0, time.UTC)
	speed := float64(L1ToEarthKM) / 3600.0

	arrival, ok := ArrivalTime(measured, speed)
	if !ok {
		t.Fatal("expected a defined arrival time")
	}
	if want := measured.Add(time.Hour); !arrival.Equal(want) {
		t.Fatalf("expected %v, got %v", want, arrival)
	}
}

// TestArrivalTimeUndefinedForNonPositiveSpeed verifies speed <= 0 yields an
// absent result, not a panic or an infinite time.
func TestArrivalTimeUndefinedForNonPositiveSpeed(t *testing.T) {
	measured := time.Date(2025, 11, 6, 12, 0, 0, 0, time.UTC)

	for _, speed := range []float64{0, -5} {
		if _, ok := ArrivalTime(measured, speed); ok {
			t.Fatalf("expected undefined arrival for speed %v", speed)
		}
	}
}

// TestArrivalTimeTypicalSpeed checks the derived transit for a realistic
// 450 km/s wind: 1,500,000/450 seconds, about 3333.3s after measurement.
func TestArrivalTimeTypicalSpeed(t *testing.T) {
	measured := time.Date(2025, 11, 6, 12, 0, 0, 0, time.UTC)

	arrival, ok := ArrivalTime(measured, 450)
	if !ok {
		t.Fatal("expected a defined arrival time")
	}

	transit := arrival.Sub(measured)
	transitSeconds := 1_500_000.0 / 450.0
	want := time.Duration(transitSeconds * float64(time.Second))
	if diff := transit - want; diff < -time.Millisecond || diff > time.Millisecond {
		t.Fatalf("expected transit ~%v, got %v", want, transit)
	}
}
