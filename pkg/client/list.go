package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/skandig/genai-list-client/pkg/pager"
)

// ListOptions configures a list request. The zero value asks for the
// server's defaults.
type ListOptions struct {
	// PageSize requests at most this many items per page.
	PageSize int `structs:"page_size"`

	// PageToken resumes listing from a continuation token. The pager
	// overwrites it from every response after the first.
	PageToken string `structs:"page_token"`

	// Filter is a server-side filter expression.
	Filter string `structs:"filter"`
}

// requestOptions converts the options into the pager's carried form.
func (o *ListOptions) requestOptions() pager.RequestOptions {
	opts := pager.RequestOptions{}
	if o == nil {
		return opts
	}
	if o.PageSize > 0 {
		opts[pager.OptionPageSize] = o.PageSize
	}
	if o.PageToken != "" {
		opts[pager.OptionPageToken] = o.PageToken
	}
	if o.Filter != "" {
		opts["filter"] = o.Filter
	}
	return opts
}

// listQuery converts carried request options into URL query parameters.
// The reserved pager keys map to the API's camelCase parameter names; all
// other options pass through under their own names.
func listQuery(opts pager.RequestOptions) url.Values {
	query := url.Values{}
	for key, value := range opts {
		switch key {
		case pager.OptionPageToken:
			if token, ok := value.(string); ok && token != "" {
				query.Set("pageToken", token)
			}
		case pager.OptionPageSize:
			if size, ok := queryInt(value); ok && size > 0 {
				query.Set("pageSize", strconv.Itoa(size))
			}
		default:
			if s, ok := value.(string); ok {
				query.Set(key, s)
			}
		}
	}
	return query
}

// queryInt reads an integer option value, tolerating JSON numerics.
func queryInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

// newListPager issues the initial list request and seeds an async pager
// whose subsequent fetches go through the same endpoint.
func newListPager[T any](ctx context.Context, c *Client, name pager.Collection, path string,
	newResponse func() pager.PageResponse[T], opts *ListOptions) (*pager.AsyncPager[T], error) {

	request := func(ctx context.Context, ro pager.RequestOptions) (pager.PageResponse[T], error) {
		resp := newResponse()
		if err := c.getJSON(ctx, path, listQuery(ro), resp); err != nil {
			return nil, err
		}
		return resp, nil
	}

	first, err := request(ctx, opts.requestOptions())
	if err != nil {
		return nil, err
	}

	return pager.NewAsyncPager(name, request, first, opts.requestOptions())
}

// ListModels returns a pager over the available models.
func (c *Client) ListModels(ctx context.Context, opts *ListOptions) (*pager.AsyncPager[Model], error) {
	return newListPager(ctx, c, pager.CollectionModels, "/models",
		func() pager.PageResponse[Model] { return &ListModelsResponse{} }, opts)
}

// ListFiles returns a pager over the uploaded files.
func (c *Client) ListFiles(ctx context.Context, opts *ListOptions) (*pager.AsyncPager[File], error) {
	return newListPager(ctx, c, pager.CollectionFiles, "/files",
		func() pager.PageResponse[File] { return &ListFilesResponse{} }, opts)
}

// ListTuningJobs returns a pager over the tuning jobs.
func (c *Client) ListTuningJobs(ctx context.Context, opts *ListOptions) (*pager.AsyncPager[TuningJob], error) {
	return newListPager(ctx, c, pager.CollectionTuningJobs, "/tuningJobs",
		func() pager.PageResponse[TuningJob] { return &ListTuningJobsResponse{} }, opts)
}

// ListBatchJobs returns a pager over the batch prediction jobs.
func (c *Client) ListBatchJobs(ctx context.Context, opts *ListOptions) (*pager.AsyncPager[BatchJob], error) {
	return newListPager(ctx, c, pager.CollectionBatchJobs, "/batchJobs",
		func() pager.PageResponse[BatchJob] { return &ListBatchJobsResponse{} }, opts)
}

// ListCachedContents returns a pager over the cached contents.
func (c *Client) ListCachedContents(ctx context.Context, opts *ListOptions) (*pager.AsyncPager[CachedContent], error) {
	return newListPager(ctx, c, pager.CollectionCachedContents, "/cachedContents",
		func() pager.PageResponse[CachedContent] { return &ListCachedContentsResponse{} }, opts)
}
