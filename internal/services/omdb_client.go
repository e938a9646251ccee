package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"movie-insight/internal/apperrors"
	"movie-insight/internal/config"
	"movie-insight/internal/metrics"
	"movie-insight/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
)

const (
	maxResponseBytes = 1 << 20

	// pingID is a long-lived title used for liveness checks.
	pingID = "tt0111161"
)

// OMDbClient talks to the OMDb movie database.
type OMDbClient interface {
	// Lookup fetches a movie by IMDb identifier. A lookup the API answers with
	// Response "False" yields a not-found error wrapping models.ErrMovieNotFound.
	Lookup(ctx context.Context, imdbID string) (*models.MovieDetail, error)
	// Search runs a title search. Response "False" is not an error; the
	// returned response simply reports Found() == false.
	Search(ctx context.Context, query models.SearchQuery) (*models.SearchResponse, error)
	Ping(ctx context.Context) error
	BreakerState() string
}

// HTTPStatusError reports a non-2xx answer from the movie database.
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("OMDb API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("OMDb API returned status %d: %s", e.StatusCode, e.Body)
}

type omdbClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[struct{}]
	metrics    *metrics.UpstreamMetrics
	logger     *logrus.Logger
}

func NewOMDbClient(cfg config.OMDbConfig, m *metrics.UpstreamMetrics, logger *logrus.Logger) OMDbClient {
	c := &omdbClient{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		metrics: m,
		logger:  logger,
	}

	threshold := uint32(cfg.BreakerFailures)
	c.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "omdb",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// a caller giving up says nothing about the upstream's health
		IsExcluded: func(err error) bool {
			return errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
			m.BreakerState.Set(stateToFloat(to))
		},
	})

	return c
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func (c *omdbClient) BreakerState() string {
	return c.breaker.State().String()
}

func (c *omdbClient) Lookup(ctx context.Context, imdbID string) (*models.MovieDetail, error) {
	params := url.Values{}
	params.Set("i", imdbID)
	params.Set("plot", "full")

	var movie models.MovieDetail
	if err := c.fetch(ctx, "lookup", params, &movie); err != nil {
		return nil, err
	}

	if !movie.Found() {
		c.logger.WithFields(logrus.Fields{
			"imdb_id": imdbID,
			"reason":  movie.Error,
		}).Debug("OMDb lookup found no movie")
		return nil, apperrors.NotFoundError("movie not found", models.ErrMovieNotFound).
			WithField("imdb_id", imdbID)
	}

	return &movie, nil
}

func (c *omdbClient) Search(ctx context.Context, query models.SearchQuery) (*models.SearchResponse, error) {
	params := url.Values{}
	params.Set("s", query.Term)
	if query.Type != "" {
		params.Set("type", query.Type)
	}
	if query.Year != "" {
		params.Set("y", query.Year)
	}
	if query.Page > 1 {
		params.Set("page", strconv.Itoa(query.Page))
	}

	var result models.SearchResponse
	if err := c.fetch(ctx, "search", params, &result); err != nil {
		return nil, err
	}

	if !result.Found() {
		c.logger.WithFields(logrus.Fields{
			"term":   query.Term,
			"year":   query.Year,
			"reason": result.Error,
		}).Debug("OMDb search returned no results")
	}

	return &result, nil
}

func (c *omdbClient) Ping(ctx context.Context) error {
	_, err := c.Lookup(ctx, pingID)
	if apperrors.Is(err, apperrors.TypeNotFound) {
		// reachable and answering JSON is all we need
		return nil
	}
	return err
}

// fetch sends one GET through the circuit breaker and decodes the JSON body into out.
func (c *omdbClient) fetch(ctx context.Context, operation string, params url.Values, out any) error {
	params.Set("apikey", c.apiKey)

	start := time.Now()
	_, err := c.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, c.get(ctx, params, out)
	})
	elapsed := time.Since(start)

	if err != nil {
		outcome := metrics.OutcomeError
		switch {
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			outcome = metrics.OutcomeBreakerOpen
		case errors.Is(err, context.Canceled):
			outcome = metrics.OutcomeCanceled
		}
		c.metrics.Observe(operation, outcome, elapsed)

		entry := c.logger.WithError(err).WithFields(logrus.Fields{
			"operation": operation,
			"elapsed":   elapsed.String(),
		})
		if outcome == metrics.OutcomeCanceled {
			entry.Debug("OMDb request canceled")
		} else {
			entry.Error("OMDb request failed")
		}

		return apperrors.UpstreamUnavailableError(fmt.Sprintf("omdb %s failed", operation), err).
			WithField("operation", operation)
	}

	outcome := metrics.OutcomeOK
	if found, ok := out.(interface{ Found() bool }); ok && !found.Found() {
		outcome = metrics.OutcomeNotFound
	}
	c.metrics.Observe(operation, outcome, elapsed)
	return nil
}

func (c *omdbClient) get(ctx context.Context, params url.Values, out any) error {
	endpoint := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// keep the api key out of logs
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = c.baseURL
		}
		return fmt.Errorf("failed to fetch from OMDb: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read OMDb response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPStatusError{StatusCode: resp.StatusCode, Body: truncate(string(body), 200)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode OMDb response: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
