package solarwind

import (
	"context"
	"time"
)

// Series maps measurement timestamps (UTC) to a single scalar reading.
// Timestamps are keys, so a duplicate row in the feed overwrites (last wins).
type Series map[time.Time]float64

// JoinedSeries holds the inner join of the magnetometer and plasma series
// as three parallel slices ordered by ascending timestamp. The slices are
// always the same length.
type JoinedSeries struct {
	Times []time.Time `json:"times"`
	Bz    []float64   `json:"bz"`
	Speed []float64   `json:"speed"`
}

// Len returns the number of joined samples.
func (j JoinedSeries) Len() int { return len(j.Times) }

// Sample is a single joined measurement. Arrival is nil when the measured
// speed does not define a transit time (speed <= 0).
type Sample struct {
	Time    time.Time  `json:"time"`
	Bz      float64    `json:"bz"`
	Speed   float64    `json:"speed"`
	Arrival *time.Time `json:"arrival,omitempty"`
}

// Snapshot is the result of one successful refresh. Each refresh fully
// replaces the previous snapshot; nothing is carried over.
type Snapshot struct {
	Series    JoinedSeries
	FetchedAt time.Time
}

// Feed abstracts one of the SWPC solar-wind endpoints (magnetometer, plasma).
type Feed interface {
	Name() string
	Fetch(ctx context.Context) (Series, error)
}

// Store is the contract the in-memory store must satisfy.
type Store interface {
	Replace(snapshot Snapshot)
	Current() (Snapshot, error)
}
