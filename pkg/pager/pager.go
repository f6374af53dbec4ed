package pager

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/rs/zerolog/log"
)

// Collection identifies which paged item kind a pager iterates. The set is
// closed: each value names the response field holding the page's items.
type Collection string

// Paged item kinds supported by the GenAI list APIs.
const (
	CollectionBatchJobs      Collection = "batch_jobs"
	CollectionModels         Collection = "models"
	CollectionTuningJobs     Collection = "tuning_jobs"
	CollectionFiles          Collection = "files"
	CollectionCachedContents Collection = "cached_contents"
)

// PageResponse is one page of a list endpoint as seen by the pager. The
// transport layer's typed responses implement it.
type PageResponse[T any] interface {
	// PagedItems returns the items held under the given collection field,
	// or nil when the response carries none.
	PagedItems(name Collection) []T

	// NextPageToken returns the continuation token for the following page.
	// Empty means no further pages exist.
	NextPageToken() string
}

// RequestFunc fetches one page with the given request options, blocking
// until the response arrives.
type RequestFunc[T any] func(opts RequestOptions) (PageResponse[T], error)

// pageState holds everything a pager knows between fetches: the current
// page, the carried request options (including the continuation token), the
// page-size hint, and the iteration cursor. Both pager flavors embed it and
// differ only in how they invoke the fetch.
type pageState[T any] struct {
	name     Collection
	items    []T
	pageSize int
	opts     RequestOptions
	idx      int
}

// newPageState builds a state from one response. The caller's config is
// normalized into owned storage, the response's continuation token replaces
// any caller-supplied token, and the page-size hint falls back to the item
// count when no page_size option is set.
func newPageState[T any](name Collection, resp PageResponse[T], config any) (pageState[T], error) {
	opts, err := normalizeOptions(config)
	if err != nil {
		return pageState[T]{}, err
	}

	items := resp.PagedItems(name)
	if items == nil {
		items = []T{}
	}
	opts[OptionPageToken] = resp.NextPageToken()

	size := len(items)
	if v, ok := opts[OptionPageSize]; ok {
		if n, ok := optionInt(v); ok {
			size = n
		}
	}

	return pageState[T]{
		name:     name,
		items:    items,
		pageSize: size,
		opts:     opts,
		idx:      0,
	}, nil
}

// Page returns the items of the current page. The slice is the pager's live
// page and must not be modified by the caller.
func (s *pageState[T]) Page() []T {
	return s.items
}

// Name returns the collection this pager iterates (for example "models").
func (s *pageState[T]) Name() Collection {
	return s.name
}

// PageSize returns the page-size hint: the configured page_size option if
// one is carried, otherwise the current page's item count. It is recorded
// for introspection only and not enforced against responses.
func (s *pageState[T]) PageSize() int {
	return s.pageSize
}

// Config returns a snapshot of the request options for the next fetch,
// including the live continuation token under OptionPageToken. Mutating the
// returned map does not affect the pager.
func (s *pageState[T]) Config() RequestOptions {
	return cloneOptions(s.opts)
}

// Len returns the number of items in the current page.
func (s *pageState[T]) Len() int {
	return len(s.items)
}

// At returns the item at the given position of the current page.
func (s *pageState[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, fmt.Errorf("%w: index %d, page length %d", ErrIndexOutOfRange, i, len(s.items))
	}
	return s.items[i], nil
}

// token returns the carried continuation token, empty when exhausted.
func (s *pageState[T]) token() string {
	tok, _ := s.opts[OptionPageToken].(string)
	return tok
}

// replace swaps in a state rebuilt from resp, carrying the current options
// forward so non-token parameters persist across pages. Items, options and
// cursor change together or not at all.
func (s *pageState[T]) replace(resp PageResponse[T]) error {
	next, err := newPageState(s.name, resp, s.opts)
	if err != nil {
		return err
	}
	*s = next
	return nil
}

// advance fetches the page after the current one. The state is untouched on
// any failure, so the caller may retry.
func (s *pageState[T]) advance(fetch func(RequestOptions) (PageResponse[T], error)) error {
	if s.token() == "" {
		pagerExhaustedTotal.WithLabelValues(string(s.name)).Inc()
		return ErrNoMorePages
	}

	start := time.Now()
	resp, err := fetch(cloneOptions(s.opts))
	if err != nil {
		pagerFetchErrorsTotal.WithLabelValues(string(s.name)).Inc()
		return err
	}
	if err := s.replace(resp); err != nil {
		return err
	}

	pagerPagesFetchedTotal.WithLabelValues(string(s.name)).Inc()
	pagerFetchDurationSeconds.WithLabelValues(string(s.name)).Observe(time.Since(start).Seconds())

	log.Debug().
		Str("collection", string(s.name)).
		Int("items", len(s.items)).
		Bool("has_more", s.token() != "").
		Dur("duration", time.Since(start)).
		Msg("Fetched next page")

	return nil
}

// nextItem is the shared pull transition. It yields the item under the
// cursor, fetching across page boundaries as needed; a fetched page may be
// empty while a token remains, so fetching repeats until an item or the
// terminal state is reached. ok is false with a nil error at the end of the
// collection.
func (s *pageState[T]) nextItem(fetch func(RequestOptions) (PageResponse[T], error)) (item T, ok bool, err error) {
	var zero T
	for s.idx >= len(s.items) {
		if err := s.advance(fetch); err != nil {
			if errors.Is(err, ErrNoMorePages) {
				return zero, false, nil
			}
			return zero, false, err
		}
	}

	item = s.items[s.idx]
	s.idx++
	return item, true, nil
}

// Pager iterates a paginated list endpoint with blocking fetches.
//
// A Pager is not safe for concurrent use: page transitions mutate its state
// in place. Serialize access externally or use independent pagers.
type Pager[T any] struct {
	pageState[T]
	request RequestFunc[T]
}

// NewPager creates a pager seeded from an initial list response. config may
// be nil, a RequestOptions/map, or an options struct; see RequestOptions for
// the reserved keys.
func NewPager[T any](name Collection, request RequestFunc[T], resp PageResponse[T], config any) (*Pager[T], error) {
	state, err := newPageState(name, resp, config)
	if err != nil {
		return nil, err
	}
	return &Pager[T]{pageState: state, request: request}, nil
}

// fetch adapts the blocking request function to the shared transition.
func (p *Pager[T]) fetch(opts RequestOptions) (PageResponse[T], error) {
	return p.request(opts)
}

// NextPage fetches the next page, replacing the current one, and returns the
// new page's items. It returns ErrNoMorePages without issuing a request when
// no continuation token is carried. On transport failure the error
// propagates unchanged and the pager stays on its current page.
func (p *Pager[T]) NextPage() ([]T, error) {
	if err := p.advance(p.fetch); err != nil {
		return nil, err
	}
	return p.items, nil
}

// Next returns the next item in the collection, fetching the following page
// when the current one is exhausted. A pull that crosses a page boundary
// blocks on network I/O. ok is false once all pages are consumed; a non-nil
// error is a transport failure and leaves the cursor where it was.
func (p *Pager[T]) Next() (item T, ok bool, err error) {
	return p.nextItem(p.fetch)
}

// All resets the cursor to the start of the current page and returns an
// iterator over every remaining item across all pages. Already-advanced
// pages are not replayed. A transport failure is yielded once with a zero
// item, then iteration stops.
func (p *Pager[T]) All() iter.Seq2[T, error] {
	p.idx = 0
	return func(yield func(T, error) bool) {
		for {
			item, ok, err := p.Next()
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !ok {
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}
