package domain

import "errors"

var (
	// ErrInvalidPage signals a page number below 1.
	ErrInvalidPage = errors.New("invalid page")
	// ErrInvalidLimit signals a page size outside the allowed range.
	ErrInvalidLimit = errors.New("invalid limit")
	// ErrUpstream signals a catalog provider transport failure or non-success status.
	ErrUpstream = errors.New("upstream catalog error")
	// ErrUpstreamDecode signals an upstream body that does not match the expected shape.
	ErrUpstreamDecode = errors.New("upstream catalog decode error")
)
