package domain

import "errors"

var (
	// ErrInvalidQuery signals an empty or malformed search keyword.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrSearchUnavailable signals that the search engine was unreachable at startup.
	ErrSearchUnavailable = errors.New("search engine unavailable")
	// ErrSearchFailed signals a failed call to the search engine.
	ErrSearchFailed = errors.New("search request failed")
)
