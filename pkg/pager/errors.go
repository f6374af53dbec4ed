package pager

import "errors"

// Common errors returned by pagers.
var (
	// ErrNoMorePages is returned by NextPage when the current page carries no
	// continuation token. It signals the legitimate end of the collection,
	// not a transport failure; iteration translates it into normal
	// termination.
	ErrNoMorePages = errors.New("no more pages to fetch")

	// ErrIndexOutOfRange is returned by At when the index falls outside the
	// current page.
	ErrIndexOutOfRange = errors.New("page index out of range")
)
