// Package owl is the HTTP client for the Owl code-execution judge. Rookery
// delegates all grading to Owl: it ships the submitted source together with
// the problem's test cases and receives aggregate pass/fail/error counts
// plus per-test detail.
package owl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var (
	jobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "rookery",
		Subsystem: "owl",
		Name:      "job_duration_seconds",
		Help:      "Duration of grading requests sent to the judge",
	})

	jobFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rookery",
		Subsystem: "owl",
		Name:      "job_failures_total",
		Help:      "Number of grading requests that the judge rejected or that failed in transit",
	}, []string{"kind"})
)

// Client grades jobs. Implementations other than the HTTP client exist only
// in tests.
type Client interface {
	NewJob(ctx context.Context, job Job) (Result, error)
}

// Error is returned when the judge answers with a non-2xx status. The body
// is kept so callers can log what the judge complained about.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("owl rejected job: status %d: %s", e.StatusCode, e.Body)
}

// Option configures the HTTP client.
type Option func(*HTTPClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = client
	}
}

// WithTimeout sets the underlying HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = timeout
	}
}

// HTTPClient talks to a configured Owl endpoint.
type HTTPClient struct {
	endpoint   string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient builds a judge client for the given endpoint.
func NewClient(endpoint string, logger zerolog.Logger, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger.With().Str("component", "owl_client").Logger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewJob submits a grading job and returns the judge's verdict. A transport
// failure and a judge-side rejection are both surfaced as errors; the judge
// rejection carries the response body as an *Error.
func (c *HTTPClient) NewJob(ctx context.Context, job Job) (Result, error) {
	payload, err := json.Marshal(job)
	if err != nil {
		return Result{}, fmt.Errorf("marshal job: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("build job request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	jobDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		jobFailures.WithLabelValues("transport").Inc()
		return Result{}, fmt.Errorf("post job: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		jobFailures.WithLabelValues("transport").Inc()
		return Result{}, fmt.Errorf("read job response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		jobFailures.WithLabelValues("rejected").Inc()
		c.logger.Warn().Int("status", resp.StatusCode).Str("language", job.Language).Msg("judge rejected job")
		return Result{}, &Error{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		jobFailures.WithLabelValues("decode").Inc()
		return Result{}, fmt.Errorf("decode job response: %w", err)
	}

	return result, nil
}
