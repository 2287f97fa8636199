package pokedex

// Pokemon is one catalog entry as returned by GET /api/pokemons.
type Pokemon struct {
	Name   string   `json:"name"`
	Image  string   `json:"image"`  // official artwork URL, may be empty
	Types  []string `json:"types"`  // ordered type names
	Height int      `json:"height"` // decimetres
	Weight int      `json:"weight"` // hectograms
}

// DefaultPageSize is the page size the API uses when none is requested.
const DefaultPageSize = 20

// HealthStatus represents the aggregated server health.
type HealthStatus struct {
	Status string            `json:"status"` // "ok", "degraded"
	Checks map[string]string `json:"checks"` // component → "ok"/"error"
}
