package solarwind

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// ErrRefreshInProgress is returned when a refresh is triggered while another
// one is still running. Refreshes are not re-entrant; repeated triggers
// mid-fetch are rejected rather than queued.
var ErrRefreshInProgress = errors.New("refresh already in progress")

// Service orchestrates fetching both feeds, joining them, and replacing the
// stored snapshot. The pipeline itself is stateless; all mutable state lives
// in the store and is swapped wholesale per refresh.
type Service struct {
	store  Store
	mag    Feed
	plasma Feed

	lookback       time.Duration
	hoverTolerance time.Duration

	refreshing sync.Mutex
	now        func() time.Time
}

// NewService creates a new Service.
func NewService(store Store, mag, plasma Feed, lookback, hoverTolerance time.Duration) *Service {
	return &Service{
		store:          store,
		mag:            mag,
		plasma:         plasma,
		lookback:       lookback,
		hoverTolerance: hoverTolerance,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Refresh fetches both feeds concurrently, joins them by timestamp, and
// replaces the current snapshot. A failed fetch leaves the prior snapshot
// untouched; the next scheduled refresh is the only recovery mechanism.
func (s *Service) Refresh(ctx context.Context) error {
	if !s.refreshing.TryLock() {
		return ErrRefreshInProgress
	}
	defer s.refreshing.Unlock()

	var (
		wg        sync.WaitGroup
		magSeries Series
		magErr    error
		plaSeries Series
		plaErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		magSeries, magErr = s.mag.Fetch(ctx)
	}()
	go func() {
		defer wg.Done()
		plaSeries, plaErr = s.plasma.Fetch(ctx)
	}()
	wg.Wait()

	if magErr != nil {
		log.Printf("refresh: %s fetch failed: %v; keeping last snapshot", s.mag.Name(), magErr)
		return fmt.Errorf("fetch %s: %w", s.mag.Name(), magErr)
	}
	if plaErr != nil {
		log.Printf("refresh: %s fetch failed: %v; keeping last snapshot", s.plasma.Name(), plaErr)
		return fmt.Errorf("fetch %s: %w", s.plasma.Name(), plaErr)
	}

	joined := Join(magSeries, plaSeries)
	log.Printf("refresh: mag=%d plasma=%d joined=%d", len(magSeries), len(plaSeries), joined.Len())

	s.store.Replace(Snapshot{Series: joined, FetchedAt: s.now()})
	return nil
}

// View is what the presentation layer renders: the window-filtered joined
// series with derived arrival estimates, plus a summary of the newest sample.
type View struct {
	FetchedAt time.Time `json:"fetchedAt"`
	Samples   []Sample  `json:"samples"`
	Latest    *Latest   `json:"latest,omitempty"`
}

// Latest summarizes the most recent joined sample, including the estimated
// transit time to Earth when the measured speed defines one.
type Latest struct {
	Time           time.Time  `json:"time"`
	Bz             float64    `json:"bz"`
	Speed          float64    `json:"speed"`
	TransitMinutes *float64   `json:"transitMinutes,omitempty"`
	Arrival        *time.Time `json:"arrival,omitempty"`
}

// Current returns the view for the trailing lookback window. It returns the
// store's ErrNoData sentinel when nothing has been fetched yet; an empty
// Samples slice with a nil error means no sample falls inside the window.
func (s *Service) Current() (View, error) {
	snap, err := s.store.Current()
	if err != nil {
		return View{}, err
	}

	windowed := snap.Series.Since(s.now().Add(-s.lookback))
	view := View{
		FetchedAt: snap.FetchedAt,
		Samples:   windowed.Samples(),
	}

	if n := len(view.Samples); n > 0 {
		last := view.Samples[n-1]
		latest := Latest{
			Time:    last.Time,
			Bz:      last.Bz,
			Speed:   last.Speed,
			Arrival: last.Arrival,
		}
		if last.Arrival != nil {
			minutes := last.Arrival.Sub(last.Time).Minutes()
			latest.TransitMinutes = &minutes
		}
		view.Latest = &latest
	}

	return view, nil
}

// Nearest resolves a hover hit-test against the current window: the sample
// closest to the given instant within the configured tolerance.
func (s *Service) Nearest(at time.Time) (Sample, bool, error) {
	snap, err := s.store.Current()
	if err != nil {
		return Sample{}, false, err
	}

	windowed := snap.Series.Since(s.now().Add(-s.lookback))
	sample, ok := windowed.Nearest(at, s.hoverTolerance)
	return sample, ok, nil
}
