package handlers

import (
	"context"
	"sync"
	"time"

	"movie-insight/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	upstreamCheckTimeout = 3 * time.Second

	// DefaultUpstreamCheckTTL is how long an upstream ping result is reused.
	// Each ping spends OMDb quota.
	DefaultUpstreamCheckTTL = 30 * time.Second
)

type HealthHandler struct {
	client services.OMDbClient
	logger *logrus.Logger
	ttl    time.Duration
	now    func() time.Time

	mu        sync.Mutex
	checkedAt time.Time
	lastErr   error
}

func NewHealthHandler(client services.OMDbClient, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		client: client,
		logger: logger,
		ttl:    DefaultUpstreamCheckTTL,
		now:    time.Now,
	}
}

// Check godoc
// @Summary Health check
// @Description Service status, movie database reachability and circuit breaker state
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	breakerState := h.client.BreakerState()

	status := "ok"
	upstream := "healthy"
	// an open breaker already says the upstream is down
	if breakerState == "open" {
		status = "degraded"
		upstream = "unhealthy"
	} else if err := h.checkUpstream(c.Context()); err != nil {
		status = "degraded"
		upstream = "unhealthy"
	}

	return c.JSON(fiber.Map{
		"status":          status,
		"service":         "movie-insight",
		"version":         "1.0.0",
		"omdb":            upstream,
		"circuit_breaker": breakerState,
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
}

// checkUpstream pings OMDb at most once per ttl and otherwise returns the
// previous result.
func (h *HealthHandler) checkUpstream(parent context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	if !h.checkedAt.IsZero() && now.Sub(h.checkedAt) < h.ttl {
		return h.lastErr
	}

	ctx, cancel := context.WithTimeout(parent, upstreamCheckTimeout)
	defer cancel()

	h.lastErr = h.client.Ping(ctx)
	h.checkedAt = now
	if h.lastErr != nil {
		h.logger.WithError(h.lastErr).Warn("Movie database health check failed")
	}
	return h.lastErr
}
