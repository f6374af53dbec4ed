package client

import (
	"context"
	"errors"
	"testing"

	"github.com/skandig/genai-list-client/internal/testutil"
	"github.com/skandig/genai-list-client/pkg/pager"
)

func TestListModels_SinglePage(t *testing.T) {
	mock := testutil.NewMockGenAI()
	defer mock.Close()
	mock.SetPages("/v1beta/models", "models", []testutil.ListPage{
		{Items: []any{
			map[string]any{"name": "models/alpha"},
			map[string]any{"name": "models/beta"},
		}},
	})

	c := newTestClient(t, mock)

	p, err := c.ListModels(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListModels() error = %v", err)
	}

	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	if p.Name() != pager.CollectionModels {
		t.Errorf("Name() = %q, want models", p.Name())
	}
	if _, err := p.NextPage(context.Background()); !errors.Is(err, pager.ErrNoMorePages) {
		t.Errorf("NextPage() error = %v, want ErrNoMorePages", err)
	}
}

func TestListModels_PagesAcrossBoundaries(t *testing.T) {
	mock := testutil.NewMockGenAI()
	defer mock.Close()
	mock.SetPages("/v1beta/models", "models", []testutil.ListPage{
		{Items: []any{
			map[string]any{"name": "models/alpha"},
			map[string]any{"name": "models/beta"},
		}, NextToken: "T1"},
		{Items: []any{
			map[string]any{"name": "models/gamma"},
		}},
	})

	c := newTestClient(t, mock)

	p, err := c.ListModels(context.Background(), &ListOptions{PageSize: 2})
	if err != nil {
		t.Fatalf("ListModels() error = %v", err)
	}
	if p.PageSize() != 2 {
		t.Errorf("PageSize() = %d, want 2", p.PageSize())
	}

	var names []string
	for model, err := range p.All(context.Background()) {
		if err != nil {
			t.Fatalf("iteration error = %v", err)
		}
		names = append(names, model.Name)
	}

	want := []string{"models/alpha", "models/beta", "models/gamma"}
	if len(names) != len(want) {
		t.Fatalf("iterated %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	// Initial fetch plus one page advance.
	if mock.GetRequestCount() != 2 {
		t.Errorf("request count = %d, want 2", mock.GetRequestCount())
	}
	// The advance carried the continuation token and page size.
	if got := mock.LastQuery.Get("pageToken"); got != "T1" {
		t.Errorf("pageToken = %q, want T1", got)
	}
	if got := mock.LastQuery.Get("pageSize"); got != "2" {
		t.Errorf("pageSize = %q, want 2", got)
	}
}

func TestListBatchJobs_EmptyFirstPage(t *testing.T) {
	mock := testutil.NewMockGenAI()
	defer mock.Close()
	mock.SetPages("/v1beta/batchJobs", "batchJobs", []testutil.ListPage{
		{Items: nil, NextToken: "T1"},
		{Items: []any{
			map[string]any{"name": "batches/one", "state": "SUCCEEDED"},
		}},
	})

	c := newTestClient(t, mock)

	p, err := c.ListBatchJobs(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListBatchJobs() error = %v", err)
	}
	if p.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 (empty first page)", p.Len())
	}

	page, err := p.NextPage(context.Background())
	if err != nil {
		t.Fatalf("NextPage() error = %v", err)
	}
	if len(page) != 1 || page[0].Name != "batches/one" {
		t.Errorf("NextPage() = %v, want [batches/one]", page)
	}
}

func TestListFiles_FilterPassthrough(t *testing.T) {
	mock := testutil.NewMockGenAI()
	defer mock.Close()
	mock.SetPages("/v1beta/files", "files", []testutil.ListPage{
		{Items: []any{map[string]any{"name": "files/f1"}}},
	})

	c := newTestClient(t, mock)

	if _, err := c.ListFiles(context.Background(), &ListOptions{Filter: "state=ACTIVE"}); err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	if got := mock.LastQuery.Get("filter"); got != "state=ACTIVE" {
		t.Errorf("filter = %q, want state=ACTIVE", got)
	}
}

func TestListTuningJobs_TransportErrorMidIteration(t *testing.T) {
	mock := testutil.NewMockGenAI()
	defer mock.Close()
	mock.SetPages("/v1beta/tuningJobs", "tuningJobs", []testutil.ListPage{
		{Items: []any{map[string]any{"name": "tuningJobs/j1"}}, NextToken: "bad-token-next"},
		// "bad-token-next" is not registered past this point
	})

	c := newTestClient(t, mock)

	p, err := c.ListTuningJobs(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTuningJobs() error = %v", err)
	}

	// Second page is gone server-side; the pager surfaces the API error and
	// keeps its current page.
	mock.SetPages("/v1beta/tuningJobs", "tuningJobs", nil)

	var jobs []string
	var iterErr error
	for job, err := range p.All(context.Background()) {
		if err != nil {
			iterErr = err
			break
		}
		jobs = append(jobs, job.Name)
	}

	if len(jobs) != 1 || jobs[0] != "tuningJobs/j1" {
		t.Errorf("iterated %v before failure, want [tuningJobs/j1]", jobs)
	}
	var apiErr *APIError
	if !errors.As(iterErr, &apiErr) {
		t.Fatalf("iteration error = %v, want *APIError", iterErr)
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d after failed advance, want 1", p.Len())
	}
}

func TestListCachedContents_IndexedAccess(t *testing.T) {
	mock := testutil.NewMockGenAI()
	defer mock.Close()
	mock.SetPages("/v1beta/cachedContents", "cachedContents", []testutil.ListPage{
		{Items: []any{
			map[string]any{"name": "cachedContents/c1"},
			map[string]any{"name": "cachedContents/c2"},
		}},
	})

	c := newTestClient(t, mock)

	p, err := c.ListCachedContents(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListCachedContents() error = %v", err)
	}

	item, err := p.At(1)
	if err != nil {
		t.Fatalf("At(1) error = %v", err)
	}
	if item.Name != "cachedContents/c2" {
		t.Errorf("At(1) = %q, want cachedContents/c2", item.Name)
	}

	if _, err := p.At(5); !errors.Is(err, pager.ErrIndexOutOfRange) {
		t.Errorf("At(5) error = %v, want ErrIndexOutOfRange", err)
	}
}
