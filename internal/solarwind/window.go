package solarwind

import "time"

// Since returns the samples with timestamp at or after cutoff, preserving
// order. An empty result means "no current data" and is not an error; the
// caller skips rendering.
func (j JoinedSeries) Since(cutoff time.Time) JoinedSeries {
	filtered := JoinedSeries{}
	for i, ts := range j.Times {
		if ts.Before(cutoff) {
			continue
		}
		filtered.Times = append(filtered.Times, ts)
		filtered.Bz = append(filtered.Bz, j.Bz[i])
		filtered.Speed = append(filtered.Speed, j.Speed[i])
	}
	return filtered
}
