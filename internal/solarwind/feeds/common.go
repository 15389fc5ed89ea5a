package feeds

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/heliowatch/solarwind/internal/solarwind"
	"github.com/sony/gobreaker"
)

var (
	errServerError  = errors.New("server error")
	errUnexpected   = errors.New("unexpected status code")
	errCircuitOpen  = errors.New("circuit breaker open")
	errNoHTTPClient = errors.New("http client not configured")
)

// client is the shared implementation behind both SWPC product clients. The
// two endpoints are structurally identical; only the URL and the value
// column differ.
type client struct {
	name     string
	url      string
	valueCol int
	http     *http.Client
	circuit  *gobreaker.CircuitBreaker
}

func newClient(name, url string, valueCol int, httpClient *http.Client) *client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &client{
		name:     name,
		url:      url,
		valueCol: valueCol,
		http:     httpClient,
		circuit:  cb,
	}
}

func (c *client) Name() string {
	return c.name
}

// Fetch retrieves and parses the product. Transport failures and a
// malformed top-level payload are returned as errors so the caller can keep
// its last snapshot; row-level problems are dropped inside ParseSeries and
// never surface here.
func (c *client) Fetch(ctx context.Context) (solarwind.Series, error) {
	payload, err := c.fetchPayload(ctx)
	if err != nil {
		return nil, err
	}
	return solarwind.ParseSeries(payload, c.valueCol), nil
}

// fetchPayload performs one attempt per refresh cycle through the circuit
// breaker. There is deliberately no retry backoff: the next scheduled
// refresh is the only recovery mechanism.
func (c *client) fetchPayload(ctx context.Context) ([][]any, error) {
	if c.http == nil {
		return nil, errNoHTTPClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}

	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, execErr := c.http.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return nil, fmt.Errorf("%w: %d", errServerError, resp.StatusCode)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
		}

		var payload [][]any
		if decErr := json.NewDecoder(resp.Body).Decode(&payload); decErr != nil {
			return nil, fmt.Errorf("decode payload: %w", decErr)
		}
		return payload, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}
		return nil, err
	}

	payload, ok := result.([][]any)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return payload, nil
}
