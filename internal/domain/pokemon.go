package domain

// Pokemon is one catalog entry with display metadata (immutable value object).
type Pokemon struct {
	Name   string   `json:"name"`
	Image  string   `json:"image"`
	Types  []string `json:"types"`
	Height int      `json:"height"`
	Weight int      `json:"weight"`
}

// NewPokemon creates a Pokemon, copying types so the caller keeps no alias.
func NewPokemon(name, image string, types []string, height, weight int) Pokemon {
	return Pokemon{
		Name:   name,
		Image:  image,
		Types:  cloneStrings(types),
		Height: height,
		Weight: weight,
	}
}

// TypeNames returns a copy of the ordered type names.
func (p Pokemon) TypeNames() []string {
	return cloneStrings(p.Types)
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
