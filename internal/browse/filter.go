package browse

import (
	"strings"

	"github.com/kailas-cloud/pokedex/internal/domain"
)

// Filter returns the items whose name contains query, ignoring case, in input order.
// An empty query returns items unchanged.
func Filter(items []domain.Pokemon, query string) []domain.Pokemon {
	if query == "" {
		return items
	}

	q := strings.ToLower(query)
	out := make([]domain.Pokemon, 0, len(items))
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}
