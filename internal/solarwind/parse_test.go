package solarwind

import (
	"testing"
	"time"
)

var header = []any{"time_tag", "bx_gsm", "by_gsm", "bz_gsm"}

// TestParseSeriesWellFormedRow verifies a valid row yields exactly one entry.
func TestParseSeriesWellFormedRow(t *testing.T) {
	payload := [][]any{
		header,
		{"2025-11-06 00:23:00.000", "1.1", "2.2", "-3.4"},
	}

	series := ParseSeries(payload, 3)
	if len(series) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(series))
	}

	want := time.Date(2025, 11, 6, 0, 23, 0, 0, time.UTC)
	got, ok := series[want]
	if !ok {
		t.Fatalf("expected entry at %v, keys: %v", want, series)
	}
	if got != -3.4 {
		t.Fatalf("expected -3.4, got %v", got)
	}
}

// TestParseSeriesDropsBadRows verifies row-level failures never surface:
// null values, non-numeric values, short rows, and bad timestamps are all
// dropped silently.
func TestParseSeriesDropsBadRows(t *testing.T) {
	payload := [][]any{
		header,
		{"2025-11-06 00:23:00.000", "1.1", "2.2", nil},            // null value
		{"2025-11-06 00:24:00.000", "1.1", "2.2", "not-a-number"}, // non-numeric
		{"2025-11-06 00:25:00.000", "1.1"},                        // too few columns
		{"06/11/2025 00:26", "1.1", "2.2", "1.0"},                 // bad timestamp
		{nil, "1.1", "2.2", "1.0"},                                // non-string timestamp
		{"2025-11-06 00:27:00.000", "1.1", "2.2", "0.5"},          // the one good row
	}

	series := ParseSeries(payload, 3)
	if len(series) != 1 {
		t.Fatalf("expected only the well-formed row to survive, got %d entries", len(series))
	}
	if v := series[time.Date(2025, 11, 6, 0, 27, 0, 0, time.UTC)]; v != 0.5 {
		t.Fatalf("expected 0.5, got %v", v)
	}
}

// TestParseSeriesDuplicateTimestampLastWins verifies overwrite semantics.
func TestParseSeriesDuplicateTimestampLastWins(t *testing.T) {
	payload := [][]any{
		header,
		{"2025-11-06 00:23:00.000", "1.1", "2.2", "1.0"},
		{"2025-11-06 00:23:00.000", "1.1", "2.2", "2.0"},
	}

	series := ParseSeries(payload, 3)
	if len(series) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(series))
	}
	if v := series[time.Date(2025, 11, 6, 0, 23, 0, 0, time.UTC)]; v != 2.0 {
		t.Fatalf("expected last row to win with 2.0, got %v", v)
	}
}

// TestParseSeriesNumericCell verifies a bare JSON number is accepted in the
// value column.
func TestParseSeriesNumericCell(t *testing.T) {
	payload := [][]any{
		header,
		{"2025-11-06 00:23:00.000", "1.1", "2.2", float64(400)},
	}

	series := ParseSeries(payload, 3)
	if v := series[time.Date(2025, 11, 6, 0, 23, 0, 0, time.UTC)]; v != 400 {
		t.Fatalf("expected 400, got %v", v)
	}
}

// TestParseSeriesHeaderOnly verifies a payload with no data rows yields an
// empty series, not an error.
func TestParseSeriesHeaderOnly(t *testing.T) {
	if series := ParseSeries([][]any{header}, 3); len(series) != 0 {
		t.Fatalf("expected empty series, got %d entries", len(series))
	}
	if series := ParseSeries(nil, 3); len(series) != 0 {
		t.Fatalf("expected empty series for nil payload, got %d entries", len(series))
	}
}
