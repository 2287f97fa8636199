package cli

import (
	"context"

	"github.com/kailas-cloud/pokedex/internal/domain"
	pokedex "github.com/kailas-cloud/pokedex/pkg/sdk"
)

// pager is the slice of the SDK client the browser needs.
type pager interface {
	ListPokemons(ctx context.Context, page, limit int) ([]pokedex.Pokemon, error)
}

// sdkSource adapts the public SDK client to browse.Source.
type sdkSource struct {
	client pager
}

func (s sdkSource) ListPokemons(ctx context.Context, page, limit int) ([]domain.Pokemon, error) {
	items, err := s.client.ListPokemons(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Pokemon, len(items))
	for i, p := range items {
		out[i] = domain.NewPokemon(p.Name, p.Image, p.Types, p.Height, p.Weight)
	}
	return out, nil
}
