package pager

import (
	"fmt"
	"reflect"

	"github.com/fatih/structs"
	"github.com/mitchellh/copystructure"
)

// RequestOptions is the set of request parameters carried between page
// fetches. The pager reserves two keys for itself:
//
//   - OptionPageToken holds the continuation token for the next fetch and is
//     overwritten from every response.
//   - OptionPageSize is the requested page size, recorded as a hint only.
//
// All other keys pass through to the request function untouched.
type RequestOptions map[string]any

// Reserved RequestOptions keys.
const (
	OptionPageToken = "page_token"
	OptionPageSize  = "page_size"
)

// normalizeOptions converts caller-supplied configuration into an owned
// RequestOptions map. Accepted forms:
//
//   - nil: empty options
//   - RequestOptions / map[string]any: deep copy
//   - struct or pointer to struct: field-to-value mapping, honoring
//     `structs` tags
//
// The result shares no map storage with the input, so later mutation of the
// caller's value never changes pager behavior.
func normalizeOptions(config any) (RequestOptions, error) {
	if config == nil {
		return RequestOptions{}, nil
	}

	switch c := config.(type) {
	case RequestOptions:
		return copyOptions(map[string]any(c))
	case map[string]any:
		return copyOptions(c)
	}

	rv := reflect.ValueOf(config)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return RequestOptions{}, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("unsupported config type %T", config)
	}

	return RequestOptions(structs.Map(config)), nil
}

// copyOptions deep-copies a string-keyed map into fresh storage.
func copyOptions(src map[string]any) (RequestOptions, error) {
	if len(src) == 0 {
		return RequestOptions{}, nil
	}
	copied, err := copystructure.Copy(src)
	if err != nil {
		return nil, fmt.Errorf("copy request options: %w", err)
	}
	return RequestOptions(copied.(map[string]any)), nil
}

// cloneOptions makes a flat copy for handing out snapshots.
func cloneOptions(src RequestOptions) RequestOptions {
	dst := make(RequestOptions, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// optionInt reads an integer-valued option, tolerating the numeric types a
// JSON decode or caller literal may produce.
func optionInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
