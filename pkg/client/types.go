package client

import (
	"time"

	"github.com/skandig/genai-list-client/pkg/pager"
)

// Model is a generative model available through the API.
type Model struct {
	Name             string   `json:"name"`
	DisplayName      string   `json:"displayName,omitempty"`
	Description      string   `json:"description,omitempty"`
	Version          string   `json:"version,omitempty"`
	InputTokenLimit  int      `json:"inputTokenLimit,omitempty"`
	OutputTokenLimit int      `json:"outputTokenLimit,omitempty"`
	SupportedActions []string `json:"supportedActions,omitempty"`
}

// File is an uploaded file usable in generation requests.
type File struct {
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName,omitempty"`
	MimeType    string    `json:"mimeType,omitempty"`
	SizeBytes   int64     `json:"sizeBytes,omitempty"`
	State       string    `json:"state,omitempty"`
	CreateTime  time.Time `json:"createTime,omitzero"`
	UpdateTime  time.Time `json:"updateTime,omitzero"`
	ExpireTime  time.Time `json:"expireTime,omitzero"`
}

// TuningJob is a model tuning job.
type TuningJob struct {
	Name        string    `json:"name"`
	State       string    `json:"state,omitempty"`
	BaseModel   string    `json:"baseModel,omitempty"`
	TunedModel  string    `json:"tunedModel,omitempty"`
	CreateTime  time.Time `json:"createTime,omitzero"`
	UpdateTime  time.Time `json:"updateTime,omitzero"`
	Description string    `json:"description,omitempty"`
}

// BatchJob is a batch prediction job.
type BatchJob struct {
	Name       string    `json:"name"`
	Model      string    `json:"model,omitempty"`
	State      string    `json:"state,omitempty"`
	CreateTime time.Time `json:"createTime,omitzero"`
	UpdateTime time.Time `json:"updateTime,omitzero"`
}

// CachedContent is server-side cached context reusable across requests.
type CachedContent struct {
	Name        string    `json:"name"`
	Model       string    `json:"model,omitempty"`
	DisplayName string    `json:"displayName,omitempty"`
	CreateTime  time.Time `json:"createTime,omitzero"`
	ExpireTime  time.Time `json:"expireTime,omitzero"`
}

// ListModelsResponse is one page of the models list endpoint.
type ListModelsResponse struct {
	Models    []Model `json:"models"`
	NextToken string  `json:"nextPageToken"`
}

// PagedItems implements pager.PageResponse.
func (r *ListModelsResponse) PagedItems(name pager.Collection) []Model {
	if name != pager.CollectionModels {
		return nil
	}
	return r.Models
}

// NextPageToken implements pager.PageResponse.
func (r *ListModelsResponse) NextPageToken() string { return r.NextToken }

// ListFilesResponse is one page of the files list endpoint.
type ListFilesResponse struct {
	Files     []File `json:"files"`
	NextToken string `json:"nextPageToken"`
}

// PagedItems implements pager.PageResponse.
func (r *ListFilesResponse) PagedItems(name pager.Collection) []File {
	if name != pager.CollectionFiles {
		return nil
	}
	return r.Files
}

// NextPageToken implements pager.PageResponse.
func (r *ListFilesResponse) NextPageToken() string { return r.NextToken }

// ListTuningJobsResponse is one page of the tuning jobs list endpoint.
type ListTuningJobsResponse struct {
	TuningJobs []TuningJob `json:"tuningJobs"`
	NextToken  string      `json:"nextPageToken"`
}

// PagedItems implements pager.PageResponse.
func (r *ListTuningJobsResponse) PagedItems(name pager.Collection) []TuningJob {
	if name != pager.CollectionTuningJobs {
		return nil
	}
	return r.TuningJobs
}

// NextPageToken implements pager.PageResponse.
func (r *ListTuningJobsResponse) NextPageToken() string { return r.NextToken }

// ListBatchJobsResponse is one page of the batch jobs list endpoint.
type ListBatchJobsResponse struct {
	BatchJobs []BatchJob `json:"batchJobs"`
	NextToken string     `json:"nextPageToken"`
}

// PagedItems implements pager.PageResponse.
func (r *ListBatchJobsResponse) PagedItems(name pager.Collection) []BatchJob {
	if name != pager.CollectionBatchJobs {
		return nil
	}
	return r.BatchJobs
}

// NextPageToken implements pager.PageResponse.
func (r *ListBatchJobsResponse) NextPageToken() string { return r.NextToken }

// ListCachedContentsResponse is one page of the cached contents list endpoint.
type ListCachedContentsResponse struct {
	CachedContents []CachedContent `json:"cachedContents"`
	NextToken      string          `json:"nextPageToken"`
}

// PagedItems implements pager.PageResponse.
func (r *ListCachedContentsResponse) PagedItems(name pager.Collection) []CachedContent {
	if name != pager.CollectionCachedContents {
		return nil
	}
	return r.CachedContents
}

// NextPageToken implements pager.PageResponse.
func (r *ListCachedContentsResponse) NextPageToken() string { return r.NextToken }
