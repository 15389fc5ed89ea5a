package solarwind

import (
	"strconv"
	"time"
)

// TimeColumn is the position of the time_tag field in every SWPC product row.
const TimeColumn = 0

// The feed is UTC-normalized; fractional seconds vary between products.
var timeLayouts = []string{
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05.000000",
	"2006-01-02 15:04:05",
}

// ParseSeries converts a decoded feed payload into a Series. Row 0 is the
// header and is discarded. A row is dropped silently when it is too short,
// its timestamp does not parse, or the value cell is null or non-numeric.
// Duplicate timestamps within one payload overwrite (last wins).
func ParseSeries(payload [][]any, valueCol int) Series {
	series := make(Series)
	if len(payload) < 2 {
		return series
	}

	for _, row := range payload[1:] {
		if len(row) <= TimeColumn || len(row) <= valueCol {
			continue
		}

		ts, ok := parseTimestamp(row[TimeColumn])
		if !ok {
			continue
		}

		value, ok := parseValue(row[valueCol])
		if !ok {
			continue
		}

		series[ts] = value
	}

	return series
}

func parseTimestamp(cell any) (time.Time, bool) {
	s, ok := cell.(string)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// parseValue accepts the cell encodings SWPC uses: a quoted number, a bare
// JSON number, or null. Null and anything else are dropped.
func parseValue(cell any) (float64, bool) {
	switch v := cell.(type) {
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
