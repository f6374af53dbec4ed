package pager

import (
	"context"
	"iter"
)

// AsyncRequestFunc fetches one page with the given request options,
// suspending the calling goroutine on ctx until the response arrives.
type AsyncRequestFunc[T any] func(ctx context.Context, opts RequestOptions) (PageResponse[T], error)

// AsyncPager iterates a paginated list endpoint with context-aware fetches.
// It shares the Pager state machine; the only difference is that a page
// advance suspends on the request's context instead of blocking
// unconditionally, so callers can bound or cancel the in-flight fetch.
// Suspension happens only at page boundaries, never mid-page.
//
// An AsyncPager is not safe for concurrent use; two overlapping NextPage
// calls race on the same state. Serialize access externally or use
// independent pagers.
type AsyncPager[T any] struct {
	pageState[T]
	request AsyncRequestFunc[T]
}

// NewAsyncPager creates an async pager seeded from an initial list response.
// config may be nil, a RequestOptions/map, or an options struct.
func NewAsyncPager[T any](name Collection, request AsyncRequestFunc[T], resp PageResponse[T], config any) (*AsyncPager[T], error) {
	state, err := newPageState(name, resp, config)
	if err != nil {
		return nil, err
	}
	return &AsyncPager[T]{pageState: state, request: request}, nil
}

// fetch binds ctx into the shared transition's fetch shape.
func (p *AsyncPager[T]) fetch(ctx context.Context) func(RequestOptions) (PageResponse[T], error) {
	return func(opts RequestOptions) (PageResponse[T], error) {
		return p.request(ctx, opts)
	}
}

// NextPage fetches the next page, replacing the current one, and returns the
// new page's items. It returns ErrNoMorePages without issuing a request when
// no continuation token is carried. On transport failure (including context
// cancellation surfaced by the request function) the error propagates
// unchanged and the pager stays on its current page.
func (p *AsyncPager[T]) NextPage(ctx context.Context) ([]T, error) {
	if err := p.advance(p.fetch(ctx)); err != nil {
		return nil, err
	}
	return p.items, nil
}

// Next returns the next item in the collection, fetching the following page
// when the current one is exhausted. ok is false once all pages are
// consumed; a non-nil error is a transport failure and leaves the cursor
// where it was.
func (p *AsyncPager[T]) Next(ctx context.Context) (item T, ok bool, err error) {
	return p.nextItem(p.fetch(ctx))
}

// All resets the cursor to the start of the current page and returns an
// iterator over every remaining item across all pages. Already-advanced
// pages are not replayed. A transport failure is yielded once with a zero
// item, then iteration stops.
func (p *AsyncPager[T]) All(ctx context.Context) iter.Seq2[T, error] {
	p.idx = 0
	return func(yield func(T, error) bool) {
		for {
			item, ok, err := p.Next(ctx)
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
