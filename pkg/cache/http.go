package cache

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultTTL is the fallback TTL when the response carries no caching headers
	DefaultTTL = 60 * time.Second
)

// ResponseToEntry converts an HTTP response to a CacheEntry.
// It derives the expiry from Cache-Control/Expires headers and reads the
// response body. The response body is restored after reading.
func ResponseToEntry(resp *http.Response) (*CacheEntry, error) {
	if resp == nil {
		return nil, fmt.Errorf("response cannot be nil")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	resp.Body.Close()

	// Restore body for caller
	resp.Body = io.NopCloser(bytes.NewReader(body))

	entry := &CacheEntry{
		Data:       body,
		ETag:       resp.Header.Get("ETag"),
		StatusCode: resp.StatusCode,
		Headers:    resp.Header.Clone(),
		CachedAt:   time.Now(),
	}

	entry.Expires = parseExpiry(resp.Header)

	if lastModStr := resp.Header.Get("Last-Modified"); lastModStr != "" {
		if lastMod, err := http.ParseTime(lastModStr); err == nil {
			entry.LastModified = lastMod
		}
	}

	return entry, nil
}

// parseExpiry derives the entry expiry from response headers.
// Cache-Control max-age wins over Expires; without either the DefaultTTL
// applies.
func parseExpiry(headers http.Header) time.Time {
	if maxAge, ok := parseMaxAge(headers.Get("Cache-Control")); ok {
		return time.Now().Add(maxAge)
	}

	expiresStr := headers.Get("Expires")
	if expiresStr == "" {
		return time.Now().Add(DefaultTTL)
	}

	expires, err := http.ParseTime(expiresStr)
	if err != nil {
		return time.Now().Add(DefaultTTL)
	}

	if expires.Before(time.Now()) {
		// Already expired - use minimal TTL
		return time.Now()
	}

	return expires
}

// parseMaxAge extracts the max-age directive from a Cache-Control header.
// no-store and no-cache force a zero lifetime.
func parseMaxAge(cacheControl string) (time.Duration, bool) {
	if cacheControl == "" {
		return 0, false
	}

	for _, directive := range strings.Split(cacheControl, ",") {
		directive = strings.TrimSpace(strings.ToLower(directive))

		if directive == "no-store" || directive == "no-cache" {
			return 0, true
		}

		if value, found := strings.CutPrefix(directive, "max-age="); found {
			seconds, err := strconv.Atoi(value)
			if err != nil || seconds < 0 {
				return 0, false
			}
			return time.Duration(seconds) * time.Second, true
		}
	}

	return 0, false
}

// ShouldMakeConditionalRequest determines if we should add conditional
// request headers (If-None-Match or If-Modified-Since) based on the cache entry.
func ShouldMakeConditionalRequest(entry *CacheEntry) bool {
	if entry == nil {
		return false
	}
	return entry.ETag != "" || !entry.LastModified.IsZero()
}

// AddConditionalHeaders adds If-None-Match (ETag) or If-Modified-Since headers
// to the request if the cache entry supports conditional requests.
func AddConditionalHeaders(req *http.Request, entry *CacheEntry) {
	if entry == nil || req == nil {
		return
	}

	// Prefer ETag over Last-Modified (more accurate)
	if entry.ETag != "" {
		req.Header.Set("If-None-Match", entry.ETag)
	} else if !entry.LastModified.IsZero() {
		req.Header.Set("If-Modified-Since", entry.LastModified.Format(http.TimeFormat))
	}
}

// EntryToResponse converts a cache entry back into an HTTP response, so a
// 304 revalidation can hand the cached body to the caller.
func EntryToResponse(entry *CacheEntry) *http.Response {
	return &http.Response{
		StatusCode: entry.StatusCode,
		Status:     http.StatusText(entry.StatusCode),
		Header:     entry.Headers.Clone(),
		Body:       io.NopCloser(bytes.NewReader(entry.Data)),
	}
}
