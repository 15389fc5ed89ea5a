package solarwind

import (
	"sort"
	"time"
)

// Join computes the inner join of the magnetometer and plasma series on
// exact timestamp equality. Samples present in only one series are dropped;
// there is no gap-filling. An empty intersection yields empty slices.
func Join(mag, plasma Series) JoinedSeries {
	common := make([]time.Time, 0, len(mag))
	for ts := range mag {
		if _, ok := plasma[ts]; ok {
			common = append(common, ts)
		}
	}
	sort.Slice(common, func(i, j int) bool { return common[i].Before(common[j]) })

	joined := JoinedSeries{
		Times: make([]time.Time, 0, len(common)),
		Bz:    make([]float64, 0, len(common)),
		Speed: make([]float64, 0, len(common)),
	}
	for _, ts := range common {
		joined.Times = append(joined.Times, ts)
		joined.Bz = append(joined.Bz, mag[ts])
		joined.Speed = append(joined.Speed, plasma[ts])
	}

	return joined
}
