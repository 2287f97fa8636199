package catalog

import (
	"context"

	"github.com/kailas-cloud/pokedex/internal/domain"
	"github.com/kailas-cloud/pokedex/internal/transport/pokeapi"
)

// Upstream is the third-party catalog contract.
type Upstream interface {
	List(ctx context.Context, offset, limit int) ([]pokeapi.Ref, error)
	Detail(ctx context.Context, url string) (domain.Pokemon, error)
}
