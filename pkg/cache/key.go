package cache

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// CacheKey identifies one cached GenAI response.
type CacheKey struct {
	// Path is the request path (e.g., "/models").
	Path string

	// APIVersion is the API version the request targeted (e.g., "v1beta").
	APIVersion string

	// Query are the request's query parameters. The continuation token is
	// part of the key, so every page caches separately.
	Query url.Values
}

// String generates a deterministic cache key string.
// Format: genai:version:path:query1=val1:query2=val2
//
// Example:
//
//	genai:v1beta:models:pageSize=50:pageToken=AMEw9yO5
func (k CacheKey) String() string {
	parts := []string{"genai"}

	if k.APIVersion != "" {
		parts = append(parts, k.APIVersion)
	}

	path := strings.Trim(k.Path, "/")
	if path != "" {
		parts = append(parts, path)
	}

	// Query params sorted for determinism
	if len(k.Query) > 0 {
		keys := make([]string, 0, len(k.Query))
		for key := range k.Query {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", key, k.Query.Get(key)))
		}
	}

	return strings.Join(parts, ":")
}
