// Package ratelimit implements GenAI API quota tracking and request gating.
// It monitors the X-RateLimit-Remaining and X-RateLimit-Reset headers (and
// Retry-After on rejected requests) to keep the client inside its request
// quota instead of burning it on rejected calls.
package ratelimit

import (
	"time"
)

// Redis keys for quota state storage.
const (
	RedisKeyRequestsRemaining = "genai:quota:requests_remaining"
	RedisKeyResetTimestamp    = "genai:quota:reset_timestamp"
	RedisKeyLastUpdate        = "genai:quota:last_update"
)

// Thresholds for quota decisions.
const (
	// QuotaThresholdCritical blocks all requests when remaining quota falls
	// below this value, keeping headroom for in-flight requests.
	QuotaThresholdCritical = 2

	// QuotaThresholdWarning applies throttling when remaining quota falls
	// below this value.
	QuotaThresholdWarning = 10

	// QuotaThresholdHealthy indicates normal operation. At or above this
	// value no restrictions apply.
	QuotaThresholdHealthy = 25
)

// QuotaState represents the current API quota state.
// This state is shared across all client instances via Redis.
type QuotaState struct {
	// RequestsRemaining is the number of requests left in the current quota
	// window, from the X-RateLimit-Remaining header.
	RequestsRemaining int `json:"requests_remaining"`

	// ResetAt is when the quota window resets, from the X-RateLimit-Reset
	// header (seconds until reset).
	ResetAt time.Time `json:"reset_at"`

	// LastUpdate is when this state was last refreshed from headers.
	LastUpdate time.Time `json:"last_update"`

	// IsHealthy is true while RequestsRemaining >= QuotaThresholdHealthy.
	IsHealthy bool `json:"is_healthy"`
}

// IsStale returns true if the state data is older than the given duration.
func (s *QuotaState) IsStale(maxAge time.Duration) bool {
	return time.Since(s.LastUpdate) > maxAge
}

// NeedsCriticalBlock returns true if requests should be blocked until the
// window resets.
func (s *QuotaState) NeedsCriticalBlock() bool {
	return s.RequestsRemaining < QuotaThresholdCritical
}

// NeedsThrottling returns true if requests should be slowed down.
func (s *QuotaState) NeedsThrottling() bool {
	return s.RequestsRemaining < QuotaThresholdWarning && !s.NeedsCriticalBlock()
}

// TimeUntilReset returns the duration until the quota window resets.
// Returns 0 if the reset time has already passed.
func (s *QuotaState) TimeUntilReset() time.Duration {
	duration := time.Until(s.ResetAt)
	if duration < 0 {
		return 0
	}
	return duration
}

// UpdateHealth updates the IsHealthy field from RequestsRemaining.
func (s *QuotaState) UpdateHealth() {
	s.IsHealthy = s.RequestsRemaining >= QuotaThresholdHealthy
}
