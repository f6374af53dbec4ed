package ratelimit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Prometheus metrics for quota tracking.
var (
	quotaRequestsRemaining = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "genai_quota_requests_remaining",
		Help: "Number of requests remaining in the current quota window",
	})

	quotaBlocksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "genai_quota_blocks_total",
		Help: "Total number of requests blocked due to critical quota level",
	})

	quotaThrottlesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "genai_quota_throttles_total",
		Help: "Total number of requests throttled due to low quota",
	})
)

// Tracker monitors API quota headers and gates requests.
type Tracker struct {
	redis  *redis.Client
	logger zerolog.Logger
}

// NewTracker creates a new quota tracker.
func NewTracker(redisClient *redis.Client, logger zerolog.Logger) *Tracker {
	return &Tracker{
		redis:  redisClient,
		logger: logger,
	}
}

// GetState retrieves the current quota state from Redis.
// Returns a default healthy state if no data exists in Redis.
func (t *Tracker) GetState(ctx context.Context) (*QuotaState, error) {
	remaining, err := t.redis.Get(ctx, RedisKeyRequestsRemaining).Int()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("get requests remaining: %w", err)
	}

	resetTimestamp, err := t.redis.Get(ctx, RedisKeyResetTimestamp).Int64()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("get reset timestamp: %w", err)
	}

	lastUpdateStr, err := t.redis.Get(ctx, RedisKeyLastUpdate).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("get last update: %w", err)
	}

	// No state in Redis yet
	if err == redis.Nil {
		t.logger.Debug().Msg("No quota state in Redis, returning default healthy state")
		return &QuotaState{
			RequestsRemaining: 100, // Assume healthy until we get real data
			ResetAt:           time.Now().Add(60 * time.Second),
			LastUpdate:        time.Now(),
			IsHealthy:         true,
		}, nil
	}

	var lastUpdate time.Time
	if lastUpdateStr != "" {
		if err := json.Unmarshal([]byte(lastUpdateStr), &lastUpdate); err != nil {
			return nil, fmt.Errorf("parse last update: %w", err)
		}
	}

	state := &QuotaState{
		RequestsRemaining: remaining,
		ResetAt:           time.Unix(resetTimestamp, 0),
		LastUpdate:        lastUpdate,
	}
	state.UpdateHealth()

	return state, nil
}

// UpdateFromHeaders parses quota headers and updates Redis state.
// Responses without an X-RateLimit-Remaining header leave the state alone.
func (t *Tracker) UpdateFromHeaders(ctx context.Context, headers http.Header) error {
	remainStr := headers.Get("X-RateLimit-Remaining")
	if remainStr == "" {
		return nil
	}

	remain, err := strconv.Atoi(remainStr)
	if err != nil {
		return fmt.Errorf("parse X-RateLimit-Remaining header: %w", err)
	}

	resetSeconds := 0
	if resetStr := headers.Get("X-RateLimit-Reset"); resetStr != "" {
		resetSeconds, err = strconv.Atoi(resetStr)
		if err != nil {
			return fmt.Errorf("parse X-RateLimit-Reset header: %w", err)
		}
	}

	// Retry-After on rejected requests overrides the window reset
	if retryStr := headers.Get("Retry-After"); retryStr != "" {
		if retrySeconds, err := strconv.Atoi(retryStr); err == nil && retrySeconds > resetSeconds {
			resetSeconds = retrySeconds
		}
	}

	now := time.Now()
	state := &QuotaState{
		RequestsRemaining: remain,
		ResetAt:           now.Add(time.Duration(resetSeconds) * time.Second),
		LastUpdate:        now,
	}
	state.UpdateHealth()

	// Store in Redis atomically
	pipe := t.redis.Pipeline()
	pipe.Set(ctx, RedisKeyRequestsRemaining, remain, 0)
	pipe.Set(ctx, RedisKeyResetTimestamp, state.ResetAt.Unix(), 0)

	lastUpdateJSON, err := json.Marshal(state.LastUpdate)
	if err != nil {
		return fmt.Errorf("marshal last update: %w", err)
	}
	pipe.Set(ctx, RedisKeyLastUpdate, lastUpdateJSON, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store quota state in redis: %w", err)
	}

	quotaRequestsRemaining.Set(float64(remain))

	logEvent := t.logger.Info().
		Int("requests_remaining", remain).
		Time("reset_at", state.ResetAt).
		Bool("is_healthy", state.IsHealthy)

	if state.NeedsCriticalBlock() {
		logEvent = t.logger.Error()
		logEvent.Msg("API quota CRITICAL - requests will be blocked")
	} else if state.NeedsThrottling() {
		logEvent = t.logger.Warn()
		logEvent.Msg("API quota low - requests will be throttled")
	} else {
		logEvent.Msg("API quota state updated")
	}

	return nil
}

// ShouldAllowRequest checks if a request should be allowed based on the
// current quota state. Returns false when the critical threshold is
// reached; in the warning band it delays the request briefly instead.
func (t *Tracker) ShouldAllowRequest(ctx context.Context) (bool, error) {
	state, err := t.GetState(ctx)
	if err != nil {
		return false, fmt.Errorf("get quota state: %w", err)
	}

	// Critical: block until the window resets
	if state.NeedsCriticalBlock() {
		t.logger.Error().
			Int("requests_remaining", state.RequestsRemaining).
			Dur("wait_duration", state.TimeUntilReset()).
			Msg("API quota critical - blocking request")

		quotaBlocksTotal.Inc()
		return false, nil
	}

	// Warning: slow down
	if state.NeedsThrottling() {
		t.logger.Warn().
			Int("requests_remaining", state.RequestsRemaining).
			Msg("API quota low - throttling request")

		quotaThrottlesTotal.Inc()
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(1 * time.Second):
		}
	}

	return true, nil
}
