package page

import (
	"fmt"
	"math"

	"github.com/kailas-cloud/pokedex/internal/domain"
)

// Request is a validated page request (value object).
type Request struct {
	number int
	limit  int
}

// New validates and creates a page request.
// number starts at 1; limit must be in [1, maxLimit].
func New(number, limit, maxLimit int) (Request, error) {
	if number < 1 {
		return Request{}, fmt.Errorf("%w: page must be >= 1, got %d", domain.ErrInvalidPage, number)
	}
	if limit < 1 {
		return Request{}, fmt.Errorf("%w: limit must be >= 1, got %d", domain.ErrInvalidLimit, limit)
	}
	if maxLimit > 0 && limit > maxLimit {
		return Request{}, fmt.Errorf("%w: limit must be <= %d, got %d", domain.ErrInvalidLimit, maxLimit, limit)
	}
	if number > math.MaxInt/limit+1 {
		return Request{}, fmt.Errorf("%w: page %d is out of range for limit %d", domain.ErrInvalidPage, number, limit)
	}
	return Request{number: number, limit: limit}, nil
}

// Number returns the 1-based page number.
func (r Request) Number() int { return r.number }

// Limit returns the page size.
func (r Request) Limit() int { return r.limit }

// Offset returns the number of items preceding this page.
func (r Request) Offset() int { return (r.number - 1) * r.limit }
