// Package client provides the GenAI HTTP client with quota gating, response
// caching, retry logic, and the typed list endpoints that feed pagers.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/skandig/genai-list-client/pkg/cache"
	"github.com/skandig/genai-list-client/pkg/ratelimit"
)

// Prometheus metrics for GenAI client operations.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "genai_requests_total",
		Help: "Total GenAI API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "genai_request_duration_seconds",
		Help:    "GenAI API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "genai_errors_total",
		Help: "Total GenAI API errors by class",
	}, []string{"class"})
)

// ErrorClass represents a classification of HTTP errors.
type ErrorClass string

const (
	// ErrorClassClient represents 4xx client errors (except 429).
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx server errors.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassRateLimit represents 429 quota errors.
	ErrorClassRateLimit ErrorClass = "rate_limit"

	// ErrorClassNetwork represents network/timeout errors.
	ErrorClassNetwork ErrorClass = "network"
)

// Client is the GenAI API client.
type Client struct {
	httpClient *http.Client
	redis      *redis.Client
	quota      *ratelimit.Tracker
	cache      *cache.Manager
	config     Config
	logger     zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// BaseURL of the GenAI API, without the version segment
	BaseURL string

	// APIVersion selects the API surface (e.g., "v1beta")
	APIVersion string

	// APIKey is sent as a Bearer token on every request
	APIKey string

	// UserAgent header sent on every request
	UserAgent string

	// Redis enables response caching and shared quota state when set.
	// Without it the client runs uncached and ungated.
	Redis *redis.Client

	// Retry
	MaxRetries     int
	InitialBackoff time.Duration

	// RequestTimeout bounds a single HTTP request
	RequestTimeout time.Duration
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(baseURL, apiKey string) Config {
	return Config{
		BaseURL:        baseURL,
		APIVersion:     "v1beta",
		APIKey:         apiKey,
		UserAgent:      "genai-list-client/0.1.0",
		MaxRetries:     3,
		InitialBackoff: 1 * time.Second,
		RequestTimeout: 30 * time.Second,
	}
}

// New creates a new GenAI client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	if cfg.APIVersion == "" {
		cfg.APIVersion = "v1beta"
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = "genai-list-client/0.1.0"
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	logger := log.With().Str("component", "genai-client").Logger()

	c := &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		redis:  cfg.Redis,
		config: cfg,
		logger: logger,
	}

	// Caching and quota gating need shared state
	if cfg.Redis != nil {
		c.quota = ratelimit.NewTracker(cfg.Redis, logger)
		c.cache = cache.NewManager(cfg.Redis)
	}

	return c, nil
}

// Do performs an HTTP request with quota gating, caching, retry and error
// classification. This is the core request method.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	endpoint := req.URL.Path

	startTime := time.Now()
	defer func() {
		requestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	// Step 1: quota gate
	if c.quota != nil {
		allowed, err := c.quota.ShouldAllowRequest(ctx)
		if err != nil {
			c.logger.Error().Err(err).Msg("Quota check failed")
			return nil, fmt.Errorf("quota check: %w", err)
		}
		if !allowed {
			c.logger.Warn().
				Str("endpoint", endpoint).
				Msg("Request blocked by quota gate")
			requestsTotal.WithLabelValues(endpoint, "quota_blocked").Inc()
			return nil, ErrQuotaExceeded
		}
	}

	// Step 2: cache lookup
	cacheKey := cache.CacheKey{
		Path:       endpoint,
		APIVersion: c.config.APIVersion,
		Query:      req.URL.Query(),
	}

	var cachedEntry *cache.CacheEntry
	if c.cache != nil {
		var err error
		cachedEntry, err = c.cache.Get(ctx, cacheKey)
		if err != nil && err != cache.ErrCacheMiss {
			c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("Cache get error")
		}
	}

	// Step 3: conditional request on cache hit
	if cachedEntry != nil && cache.ShouldMakeConditionalRequest(cachedEntry) {
		cache.AddConditionalHeaders(req, cachedEntry)
		cache.ConditionalRequestsSent.Inc()
		c.logger.Debug().
			Str("endpoint", endpoint).
			Str("etag", cachedEntry.ETag).
			Msg("Making conditional request")
	}

	// Step 4: standard headers
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("method", req.Method).
		Msg("Executing GenAI request")

	// Step 5: execute with retry
	var resp *http.Response

	retryErr := retryWithBackoff(ctx, c.config.MaxRetries, func() (ErrorClass, error) {
		var reqErr error
		resp, reqErr = c.httpClient.Do(req)

		if reqErr != nil {
			c.logger.Error().Err(reqErr).Str("endpoint", endpoint).Msg("HTTP request failed")
			errorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
			requestsTotal.WithLabelValues(endpoint, "network_error").Inc()
			return ErrorClassNetwork, reqErr
		}

		// Keep shared quota state current
		if c.quota != nil {
			if err := c.quota.UpdateFromHeaders(ctx, resp.Header); err != nil {
				c.logger.Warn().Err(err).Msg("Failed to update quota from headers")
			}
		}

		// 304 Not Modified is handled after the retry loop
		if resp.StatusCode == http.StatusNotModified {
			return "", nil
		}

		if resp.StatusCode >= 400 {
			errClass := classifyStatus(resp.StatusCode)
			errorsTotal.WithLabelValues(string(errClass)).Inc()
			requestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

			c.logger.Warn().
				Str("endpoint", endpoint).
				Int("status", resp.StatusCode).
				Str("error_class", string(errClass)).
				Msg("GenAI request error")

			apiErr := &APIError{
				StatusCode: resp.StatusCode,
				ErrorClass: errClass,
				Message:    readErrorMessage(resp),
			}
			resp.Body.Close()
			return errClass, apiErr
		}

		requestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()
		return "", nil
	})

	if retryErr != nil {
		return nil, retryErr
	}

	// Step 6: serve 304 from cache
	if resp.StatusCode == http.StatusNotModified {
		c.logger.Debug().Str("endpoint", endpoint).Msg("304 Not Modified - using cache")
		requestsTotal.WithLabelValues(endpoint, "304").Inc()
		cache.NotModifiedResponses.Inc()

		if c.cache != nil && cachedEntry != nil {
			if expiresStr := resp.Header.Get("Expires"); expiresStr != "" {
				if newExpires, err := http.ParseTime(expiresStr); err == nil {
					if err := c.cache.UpdateTTL(ctx, cacheKey, newExpires); err != nil {
						c.logger.Warn().Err(err).Msg("Failed to update cache TTL")
					}
				}
			}

			resp.Body.Close()
			return cache.EntryToResponse(cachedEntry), nil
		}

		// 304 without a cached entry should not happen; treat as empty response
		return resp, nil
	}

	// Step 7: cache successful responses
	if c.cache != nil && resp.StatusCode == http.StatusOK {
		entry, err := cache.ResponseToEntry(resp)
		if err != nil {
			c.logger.Warn().Err(err).Msg("Failed to create cache entry")
		} else if entry.TTL() > 0 {
			if err := c.cache.Set(ctx, cacheKey, entry); err != nil {
				c.logger.Warn().Err(err).Msg("Failed to cache response")
			} else {
				c.logger.Debug().
					Str("endpoint", endpoint).
					Dur("ttl", entry.TTL()).
					Msg("Cached response")
			}
		}
	}

	return resp, nil
}

// classifyStatus categorizes an HTTP status for retry and observability.
func classifyStatus(status int) ErrorClass {
	switch {
	case status == http.StatusTooManyRequests:
		return ErrorClassRateLimit
	case status >= 400 && status < 500:
		return ErrorClassClient
	case status >= 500:
		return ErrorClassServer
	default:
		return ""
	}
}

// readErrorMessage extracts a short error message from a response body.
func readErrorMessage(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(body) == 0 {
		return resp.Status
	}

	var apiBody struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &apiBody); err == nil && apiBody.Error.Message != "" {
		return apiBody.Error.Message
	}

	return strings.TrimSpace(string(body))
}

// Get performs a GET request against a versioned API path.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*http.Response, error) {
	u := fmt.Sprintf("%s/%s/%s",
		strings.TrimRight(c.config.BaseURL, "/"),
		c.config.APIVersion,
		strings.TrimLeft(path, "/"))
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return c.Do(req)
}

// getJSON performs a GET request and decodes the JSON response into v.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, v any) error {
	resp, err := c.Get(ctx, path, query)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}

// Close closes the client and releases resources.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
