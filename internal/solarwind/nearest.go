package solarwind

import "time"

// Nearest finds the sample closest in time to the given instant, for hover
// inspection on the chart. Samples further away than tolerance do not match;
// ok is false when nothing qualifies.
func (j JoinedSeries) Nearest(at time.Time, tolerance time.Duration) (Sample, bool) {
	best := -1
	var bestDiff time.Duration

	for i, ts := range j.Times {
		diff := ts.Sub(at)
		if diff < 0 {
			diff = -diff
		}
		if diff > tolerance {
			continue
		}
		if best < 0 || diff < bestDiff {
			best = i
			bestDiff = diff
		}
	}

	if best < 0 {
		return Sample{}, false
	}
	return j.sampleAt(best), true
}

func (j JoinedSeries) sampleAt(i int) Sample {
	s := Sample{
		Time:  j.Times[i],
		Bz:    j.Bz[i],
		Speed: j.Speed[i],
	}
	if arrival, ok := ArrivalTime(s.Time, s.Speed); ok {
		s.Arrival = &arrival
	}
	return s
}

// Samples expands the parallel slices into per-sample values with their
// derived arrival estimates.
func (j JoinedSeries) Samples() []Sample {
	samples := make([]Sample, 0, j.Len())
	for i := range j.Times {
		samples = append(samples, j.sampleAt(i))
	}
	return samples
}
