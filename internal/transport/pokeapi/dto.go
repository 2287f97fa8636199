package pokeapi

import "github.com/kailas-cloud/pokedex/internal/domain"

// listResponse is the upstream named-resource listing.
type listResponse struct {
	Count   int           `json:"count"`
	Next    *string       `json:"next"`
	Results []resourceRef `json:"results"`
}

type resourceRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// detailResponse keeps only the fields the catalog reshapes.
type detailResponse struct {
	Name    string     `json:"name"`
	Height  int        `json:"height"`
	Weight  int        `json:"weight"`
	Sprites spriteSet  `json:"sprites"`
	Types   []typeSlot `json:"types"`
}

type spriteSet struct {
	FrontDefault *string `json:"front_default"`
	Other        struct {
		OfficialArtwork struct {
			FrontDefault *string `json:"front_default"`
		} `json:"official-artwork"`
	} `json:"other"`
}

type typeSlot struct {
	Slot int `json:"slot"`
	Type struct {
		Name string `json:"name"`
	} `json:"type"`
}

// Ref is a listed catalog entry pointing at its detail resource.
type Ref struct {
	Name string
	URL  string
}

func (d detailResponse) toDomain() domain.Pokemon {
	types := make([]string, 0, len(d.Types))
	for _, t := range d.Types {
		types = append(types, t.Type.Name)
	}

	var image string
	if art := d.Sprites.Other.OfficialArtwork.FrontDefault; art != nil {
		image = *art
	}

	return domain.NewPokemon(d.Name, image, types, d.Height, d.Weight)
}
