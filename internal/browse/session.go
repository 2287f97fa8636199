// Package browse holds the view state of the catalog browser: the accumulated
// item list, the page counter, the in-flight gate and the search query, plus the
// transitions that move between them.
//
// A Session is owned by exactly one view and mutated only from that view's event
// loop. Network I/O happens elsewhere (see Fetcher); results come back as
// PageResult values applied with Complete.
package browse

import (
	"sync/atomic"

	"github.com/kailas-cloud/pokedex/internal/domain"
)

var sessionSeq atomic.Uint64

// FetchRequest identifies one fetch-and-append cycle.
type FetchRequest struct {
	Session uint64
	Page    int
	Limit   int
}

// PageResult is the outcome of a FetchRequest.
type PageResult struct {
	Session uint64
	Page    int
	Items   []domain.Pokemon
	Err     error
}

// Session is the explicit state container of one browsing session.
type Session struct {
	id       uint64
	pageSize int

	items     []domain.Pokemon
	page      int
	requested int // last page handed out by BeginFetch
	inFlight  bool
	exhausted bool
	query     string
	lastErr   error
	closed    bool
}

// NewSession starts a session at page 1 with an empty list.
func NewSession(pageSize int) *Session {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &Session{
		id:       sessionSeq.Add(1),
		pageSize: pageSize,
		page:     1,
	}
}

// ID distinguishes results of this session from those of a discarded one.
func (s *Session) ID() uint64 { return s.id }

// Page returns the page counter.
func (s *Session) Page() int { return s.page }

// PageSize returns the fixed number of items requested per page.
func (s *Session) PageSize() int { return s.pageSize }

// InFlight reports whether a fetch cycle is outstanding.
func (s *Session) InFlight() bool { return s.inFlight }

// Exhausted reports whether the source returned an empty page.
func (s *Session) Exhausted() bool { return s.exhausted }

// Closed reports whether the owning view has been torn down.
func (s *Session) Closed() bool { return s.closed }

// Query returns the current search string.
func (s *Session) Query() string { return s.query }

// SetQuery replaces the search string. The accumulated list is not touched.
func (s *Session) SetQuery(q string) { s.query = q }

// LastError returns the error of the most recent failed fetch, if any.
func (s *Session) LastError() error { return s.lastErr }

// Len returns the size of the accumulated list.
func (s *Session) Len() int { return len(s.items) }

// Items returns a copy of the accumulated list in arrival order.
func (s *Session) Items() []domain.Pokemon {
	out := make([]domain.Pokemon, len(s.items))
	copy(out, s.items)
	return out
}

// Filtered derives the visible list from the accumulated list and the query.
// The result never aliases the accumulated list.
func (s *Session) Filtered() []domain.Pokemon {
	if s.query == "" {
		return s.Items()
	}
	return Filter(s.items, s.query)
}

// BeginFetch closes the in-flight gate for the current page.
// It refuses when a fetch is outstanding, when the current page was already
// requested, when the source is exhausted, or after Close.
func (s *Session) BeginFetch() (FetchRequest, bool) {
	if s.closed || s.inFlight || s.exhausted || s.requested == s.page {
		return FetchRequest{}, false
	}
	s.inFlight = true
	s.requested = s.page
	return FetchRequest{Session: s.id, Page: s.page, Limit: s.pageSize}, true
}

// Complete applies a fetch outcome and reopens the gate.
// Results of another session, or arriving after Close, are discarded and
// false is returned. A failed page leaves the list unchanged and is not
// retried; an empty successful page marks the session exhausted.
func (s *Session) Complete(res PageResult) bool {
	if s.closed || res.Session != s.id || !s.inFlight || res.Page != s.requested {
		return false
	}
	s.inFlight = false

	if res.Err != nil {
		s.lastErr = res.Err
		return true
	}
	s.lastErr = nil
	if len(res.Items) == 0 {
		s.exhausted = true
		return true
	}
	s.items = append(s.items, res.Items...)
	return true
}

// Advance moves the page counter forward by one.
// It is a no-op while a fetch is outstanding, while the current page has not
// been requested yet, once exhausted, or after Close.
func (s *Session) Advance() bool {
	if s.closed || s.inFlight || s.exhausted || s.requested != s.page {
		return false
	}
	s.page++
	return true
}

// Close marks the session torn down; every later transition is a no-op.
func (s *Session) Close() {
	s.closed = true
}
