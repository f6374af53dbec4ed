// Package testutil provides testing utilities for the GenAI list client.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"time"
)

// MockResponse defines the behavior for a mock endpoint response.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// ListPage is one page of a mocked list endpoint.
type ListPage struct {
	// Items are marshalled into the collection field of the response.
	Items []any

	// NextToken is the continuation token handed out with this page.
	// Empty marks the final page.
	NextToken string
}

// MockGenAI is a configurable mock GenAI API server for testing.
type MockGenAI struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	RequestCount      int
	ConditionalCount  int
	LastQuery         url.Values
	LastAuthorization string
}

// NewMockGenAI creates a new mock GenAI server.
func NewMockGenAI() *MockGenAI {
	mock := &MockGenAI{
		handlers: make(map[string]func(w http.ResponseWriter, r *http.Request)),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		if r.Header.Get("If-None-Match") != "" || r.Header.Get("If-Modified-Since") != "" {
			mock.ConditionalCount++
		}
		mock.LastQuery = r.URL.Query()
		mock.LastAuthorization = r.Header.Get("Authorization")
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		mock.defaultHandler(w, r)
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockGenAI) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockGenAI) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockGenAI) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.ConditionalCount = 0
	m.LastQuery = nil
	m.LastAuthorization = ""
}

// SetHandler sets a custom handler for a specific path.
func (m *MockGenAI) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a simple response for a path.
func (m *MockGenAI) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}

		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}

		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetPages configures a token-chained list endpoint. field names the
// collection field of the response (e.g., "models"). The first page is
// served for requests without a pageToken; each subsequent page is reachable
// through the previous page's NextToken. Unknown tokens get a 400.
func (m *MockGenAI) SetPages(path, field string, pages []ListPage) {
	byToken := make(map[string]ListPage, len(pages))
	token := ""
	for _, page := range pages {
		byToken[token] = page
		token = page.NextToken
	}

	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		page, ok := byToken[r.URL.Query().Get("pageToken")]
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"message": "invalid page token"}}`))
			return
		}

		items := page.Items
		if items == nil {
			items = []any{}
		}
		body, _ := json.Marshal(map[string]any{
			field:           items,
			"nextPageToken": page.NextToken,
		})

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-RateLimit-Remaining", "100")
		w.Header().Set("X-RateLimit-Reset", "60")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockGenAI) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// GetConditionalCount returns the number of conditional requests received.
func (m *MockGenAI) GetConditionalCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ConditionalCount
}

// defaultHandler provides a default healthy API response.
func (m *MockGenAI) defaultHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-RateLimit-Remaining", "100")
	w.Header().Set("X-RateLimit-Reset", "60")
	w.Header().Set("Content-Type", "application/json")

	if r.Header.Get("If-None-Match") != "" {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", `"default-etag"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{}`))
}

// NewConditionalHandler returns a handler that serves data with a stable
// ETag and answers matching If-None-Match requests with 304 Not Modified.
func NewConditionalHandler(etag, data string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "100")
		w.Header().Set("X-RateLimit-Reset", "60")
		w.Header().Set("ETag", etag)

		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(data))
	}
}

// NewHealthyResponse creates a standard 200 OK response with quota headers.
func NewHealthyResponse(data string) MockResponse {
	return MockResponse{
		StatusCode: http.StatusOK,
		Body:       data,
		Headers: map[string]string{
			"X-RateLimit-Remaining": "100",
			"X-RateLimit-Reset":     "60",
			"ETag":                  `"test-etag-123"`,
			"Content-Type":          "application/json; charset=utf-8",
		},
	}
}

// NewRateLimitResponse creates a 429 Too Many Requests response.
func NewRateLimitResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusTooManyRequests,
		Body:       `{"error": {"message": "Resource has been exhausted"}}`,
		Headers: map[string]string{
			"X-RateLimit-Remaining": "0",
			"X-RateLimit-Reset":     "30",
			"Retry-After":           "30",
			"Content-Type":          "application/json; charset=utf-8",
		},
	}
}

// NewServerErrorResponse creates a 500 Internal Server Error response.
func NewServerErrorResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       `{"error": {"message": "Internal error encountered"}}`,
		Headers: map[string]string{
			"X-RateLimit-Remaining": "95",
			"X-RateLimit-Reset":     "60",
			"Content-Type":          "application/json; charset=utf-8",
		},
	}
}

// NewNotFoundResponse creates a 404 Not Found response.
func NewNotFoundResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusNotFound,
		Body:       `{"error": {"message": "Resource not found"}}`,
		Headers: map[string]string{
			"Content-Type": "application/json; charset=utf-8",
		},
	}
}
