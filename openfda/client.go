package openfda

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/fdatools/openfda-mcp/logging"
	"github.com/fdatools/openfda-mcp/metrics"
)

// Fixed upstream tunables. These are deliberately not configurable at
// runtime.
const (
	openFDAURL     = "https://api.fda.gov/drug/label.json"
	requestTimeout = 30 * time.Second
	maxRetries     = 3
)

// Client queries the openFDA drug-label endpoint. The zero value is not
// usable; create one with NewClient.
type Client struct {
	url     string
	timeout time.Duration
}

// NewClient returns a client pointed at the public openFDA endpoint.
func NewClient() *Client {
	return &Client{url: openFDAURL, timeout: requestTimeout}
}

// Fetch runs one logical search with up to three sequential attempts.
// Timeouts, transport errors and unexpected upstream statuses are retried
// immediately; the last error is surfaced once the attempt budget is
// spent. A 404 from openFDA means "no matching labels" and yields an
// empty response rather than an error.
func (c *Client) Fetch(ctx context.Context, query string, limit int) (*SearchResponse, error) {
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		resp, err := c.fetchOnce(ctx, query, limit, attempt)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		logging.Warn("openFDA request failed",
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err)
	}
	return nil, fmt.Errorf("openFDA request failed after %d attempts: %w", maxRetries, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, query string, limit int, attempt int) (*SearchResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build openFDA request: %w", err)
	}
	q := req.URL.Query()
	q.Set("search", query)
	q.Set("limit", strconv.Itoa(limit))
	req.URL.RawQuery = q.Encode()

	logging.Debug("openFDA query", "attempt", attempt, "search", query, "limit", limit)

	// One connection scope per attempt, torn down with the request.
	client := &http.Client{Timeout: c.timeout}

	start := time.Now()
	response, err := client.Do(req)
	duration := time.Since(start)
	if err != nil {
		metrics.OpenFDARequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("openFDA request failed: %w", err)
	}
	defer func() {
		if err := response.Body.Close(); err != nil {
			logging.Warn("Failed to close response body", "error", err)
		}
	}()

	metrics.OpenFDARequestsTotal.WithLabelValues(strconv.Itoa(response.StatusCode)).Inc()
	metrics.OpenFDARequestDuration.Observe(duration.Seconds())

	// openFDA signals "no matches" with a 404, not an empty result list.
	if response.StatusCode == http.StatusNotFound {
		logging.Info("No results found", "search", query)
		return &SearchResponse{Results: []LabelResult{}}, nil
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openFDA returned status %d", response.StatusCode)
	}

	var result SearchResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode openFDA response: %w", err)
	}

	logging.Info("openFDA query completed",
		"results", len(result.Results),
		"duration_ms", duration.Milliseconds())

	return &result, nil
}
