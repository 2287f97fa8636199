package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/pokedex/internal/domain"
	"github.com/kailas-cloud/pokedex/internal/transport/pokeapi"
	cataloguc "github.com/kailas-cloud/pokedex/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/pokedex/internal/usecase/health"
)

// --- Mocks ---

type mockCatalog struct {
	items     []domain.Pokemon
	err       error
	gotNumber int
	gotLimit  int
}

func (m *mockCatalog) Page(_ context.Context, number, limit int) ([]domain.Pokemon, error) {
	m.gotNumber, m.gotLimit = number, limit
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

// unreachableUpstream fails the test if the catalog service calls it.
type unreachableUpstream struct{ t *testing.T }

func (u unreachableUpstream) List(_ context.Context, offset, limit int) ([]pokeapi.Ref, error) {
	u.t.Errorf("unexpected upstream list offset=%d limit=%d", offset, limit)
	return nil, nil
}

func (u unreachableUpstream) Detail(_ context.Context, url string) (domain.Pokemon, error) {
	u.t.Errorf("unexpected upstream detail %s", url)
	return domain.Pokemon{}, nil
}

type mockHealth struct {
	report healthuc.Report
}

func (m *mockHealth) Check(context.Context) healthuc.Report { return m.report }

func newTestRouter(cat *mockCatalog, h *mockHealth) http.Handler {
	if h == nil {
		h = &mockHealth{report: healthuc.Report{Status: healthuc.Healthy, Checks: map[string]healthuc.CheckResult{}}}
	}
	return NewRouter(NewServer(cat, h, zap.NewNop()), zap.NewNop(), nil)
}

func do(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, http.NoBody))
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var e ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode error body %q: %v", rr.Body.String(), err)
	}
	return e
}

// --- Tests ---

func TestListPokemons_OK(t *testing.T) {
	cat := &mockCatalog{items: []domain.Pokemon{
		domain.NewPokemon("bulbasaur", "https://img/1.png", []string{"grass", "poison"}, 7, 69),
	}}
	rr := do(t, newTestRouter(cat, nil), "/api/pokemons?page=2&limit=20")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if cat.gotNumber != 2 || cat.gotLimit != 20 {
		t.Errorf("expected page=2 limit=20, got page=%d limit=%d", cat.gotNumber, cat.gotLimit)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}

	var got []map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("body is not a JSON array: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
	for _, key := range []string{"name", "image", "types", "height", "weight"} {
		if _, ok := got[0][key]; !ok {
			t.Errorf("missing key %q in %v", key, got[0])
		}
	}
}

func TestListPokemons_Defaults(t *testing.T) {
	cat := &mockCatalog{items: []domain.Pokemon{}}
	rr := do(t, newTestRouter(cat, nil), "/api/pokemons")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if cat.gotNumber != 1 || cat.gotLimit != 0 {
		t.Errorf("expected page=1 and service default limit, got page=%d limit=%d", cat.gotNumber, cat.gotLimit)
	}
	if body := rr.Body.String(); body != "[]\n" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestListPokemons_BadParams(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantCode ErrorCode
	}{
		{"non-numeric page", "/api/pokemons?page=abc", ErrorCodeBadRequest},
		{"non-numeric limit", "/api/pokemons?limit=ten", ErrorCodeBadRequest},
		{"zero limit", "/api/pokemons?limit=0", ErrorCodeInvalidLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, newTestRouter(&mockCatalog{}, nil), tt.target)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rr.Code)
			}
			if e := decodeError(t, rr); e.Code != tt.wantCode {
				t.Errorf("expected code %q, got %q", tt.wantCode, e.Code)
			}
		})
	}
}

func TestListPokemons_PageOverflowRejected(t *testing.T) {
	h := &mockHealth{report: healthuc.Report{Status: healthuc.Healthy, Checks: map[string]healthuc.CheckResult{}}}
	svc := cataloguc.New(unreachableUpstream{t: t})
	router := NewRouter(NewServer(svc, h, zap.NewNop()), zap.NewNop(), nil)

	rr := do(t, router, "/api/pokemons?page=922337203685477580&limit=20")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if e := decodeError(t, rr); e.Code != ErrorCodeInvalidPage {
		t.Errorf("expected code %q, got %q", ErrorCodeInvalidPage, e.Code)
	}
}

func TestListPokemons_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   ErrorCode
	}{
		{"invalid page", fmt.Errorf("x: %w", domain.ErrInvalidPage), http.StatusBadRequest, ErrorCodeInvalidPage},
		{"invalid limit", fmt.Errorf("x: %w", domain.ErrInvalidLimit), http.StatusBadRequest, ErrorCodeInvalidLimit},
		{"upstream", fmt.Errorf("x: %w", domain.ErrUpstream), http.StatusBadGateway, ErrorCodeUpstreamError},
		{"decode", fmt.Errorf("x: %w", domain.ErrUpstreamDecode), http.StatusBadGateway, ErrorCodeUpstreamError},
		{"unknown", errors.New("kaboom"), http.StatusInternalServerError, ErrorCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, newTestRouter(&mockCatalog{err: tt.err}, nil), "/api/pokemons?page=1")
			if rr.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rr.Code)
			}
			e := decodeError(t, rr)
			if e.Code != tt.wantCode {
				t.Errorf("expected code %q, got %q", tt.wantCode, e.Code)
			}
			if e.Message == "kaboom" {
				t.Error("internal error text leaked to client")
			}
		})
	}
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		status     healthuc.Status
		wantStatus int
	}{
		{"healthy", healthuc.Healthy, http.StatusOK},
		{"degraded", healthuc.Degraded, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &mockHealth{report: healthuc.Report{
				Status: tt.status,
				Checks: map[string]healthuc.CheckResult{"upstream": healthuc.CheckOK},
			}}
			rr := do(t, newTestRouter(&mockCatalog{}, h), "/health")
			if rr.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rr.Code)
			}
			var body HealthResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Status != string(tt.status) || body.Checks["upstream"] != "ok" {
				t.Errorf("unexpected body %+v", body)
			}
		})
	}
}

func TestRouter_RequestIDAndCORS(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/pokemons", http.NoBody)
	req.Header.Set("Origin", "http://localhost:3000")
	newTestRouter(&mockCatalog{items: []domain.Pokemon{}}, nil).ServeHTTP(rr, req)

	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard CORS origin, got %q", got)
	}
}

func TestRouter_NotFoundIsJSON(t *testing.T) {
	rr := do(t, newTestRouter(&mockCatalog{}, nil), "/api/unknown")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	decodeError(t, rr)
}

func TestJSONRecoverer(t *testing.T) {
	h := JSONRecoverer(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if e := decodeError(t, rr); e.Code != ErrorCodeInternalError {
		t.Errorf("expected internal_error, got %q", e.Code)
	}
}
