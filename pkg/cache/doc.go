// Package cache provides response caching for the GenAI client with a Redis
// backend and ETag support for conditional requests.
//
// List responses are cached under a key derived from the request path, API
// version and query parameters. Entry lifetime follows the response's
// Cache-Control max-age, falling back to the Expires header and finally a
// short default. Cached entries carry the ETag so a revalidation request can
// be answered from cache on 304 Not Modified.
//
// Example usage:
//
//	manager := cache.NewManager(redisClient)
//	entry, err := manager.Get(ctx, key)
//	if err == cache.ErrCacheMiss {
//		// fetch from the API
//	}
//
// The cache operates below the pager: it stores transport responses, it
// never replays a page the pager has already consumed.
package cache
