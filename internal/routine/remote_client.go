package routine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fitroutine/internal/telemetry/metrics"
	"github.com/2beens/fitroutine/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

var ErrRemoteUnavailable = errors.New("remote routine service unavailable")

// maxResponseBytes caps the routine payload read from the remote service.
const maxResponseBytes = 4 << 20

type remoteResponse struct {
	Status bool           `json:"status"`
	Data   *WeeklyRoutine `json:"data"`
	Error  string         `json:"error"`
}

// RemoteClient talks to the routine generation service, which owns the weekly routines.
type RemoteClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	metrics    *metrics.Manager
}

func NewRemoteClient(baseURL string, timeout time.Duration, metricsManager *metrics.Manager) *RemoteClient {
	return NewRemoteClientWithHTTPClient(
		baseURL,
		&http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
		metricsManager,
	)
}

func NewRemoteClientWithHTTPClient(baseURL string, httpClient *http.Client, metricsManager *metrics.Manager) *RemoteClient {
	return &RemoteClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		metrics:    metricsManager,
	}
}

// WithAPIKey makes the client send the key in the x-api-key header, as the API gateway
// in front of the routine service expects.
func (c *RemoteClient) WithAPIKey(apiKey string) *RemoteClient {
	c.apiKey = apiKey
	return c
}

// FetchCurrent gets the current weekly routine of the user the bearer token belongs to.
func (c *RemoteClient) FetchCurrent(ctx context.Context, token string) (_ *WeeklyRoutine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "remote.routine.fetch-current")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	outcome := "error"
	defer func(begin time.Time) {
		if c.metrics != nil {
			c.metrics.HistogramRemoteFetchDuration.Observe(time.Since(begin).Seconds())
			c.metrics.CounterRemoteFetch.WithLabelValues(outcome).Inc()
		}
	}(time.Now())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/routine/current", nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warnf("close remote routine response body: %s", closeErr)
		}
	}()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var payload remoteResponse
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil && resp.StatusCode < 300 {
			return nil, fmt.Errorf("unmarshal routine response: %w", err)
		}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		outcome = "not_found"
		return nil, ErrRoutineNotFound
	case resp.StatusCode >= 300:
		msg := payload.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: status %d: %s", ErrRemoteUnavailable, resp.StatusCode, msg)
	}

	// the service answers with an empty routine (id 0) when the user has none
	if payload.Data == nil || payload.Data.ID == 0 {
		outcome = "not_found"
		return nil, ErrRoutineNotFound
	}

	outcome = "ok"
	return payload.Data, nil
}
