package solarwind

import "time"

// L1ToEarthKM is the distance from the DSCOVR spacecraft at the L1 Lagrange
// point to Earth, used to estimate when measured conditions arrive.
const L1ToEarthKM = 1_500_000

// ArrivalTime estimates when solar wind measured at L1 at the given instant
// reaches Earth, assuming the measured bulk speed (km/s) holds for the whole
// transit. The estimate is undefined for speed <= 0; ok is false then.
func ArrivalTime(measured time.Time, speedKmS float64) (arrival time.Time, ok bool) {
	if speedKmS <= 0 {
		return time.Time{}, false
	}
	transit := time.Duration(L1ToEarthKM / speedKmS * float64(time.Second))
	return measured.Add(transit), true
}
