package browse

import (
	"fmt"
	"net/url"

	"github.com/kailas-cloud/pokedex/internal/domain"
)

// FallbackImage replaces artwork that is missing or cannot be loaded.
const FallbackImage = "https://via.placeholder.com/128x128?text=Pokemon"

// DisplayState is the single top-level state the list area is in.
type DisplayState int

// Display states.
const (
	DisplayPopulated DisplayState = iota
	DisplayEmpty
)

// RenderInput is everything the list area depends on.
type RenderInput struct {
	Filtered []domain.Pokemon
	InFlight bool
	Query    string
	Total    int // size of the accumulated list
	// Exhausted is set once the source returned an empty page.
	Exhausted bool
}

// Display is what the list area shows.
type Display struct {
	State DisplayState
	// Message is the empty-state text. It is empty when nothing has loaded
	// yet, in which case no message is shown at all.
	Message string
	Spinner bool
	Hint    bool
	// Sentinel reports whether the scroll sentinel is rendered.
	Sentinel bool
}

// Decide selects the display state.
func Decide(in RenderInput) Display {
	if len(in.Filtered) == 0 && !in.InFlight {
		d := Display{State: DisplayEmpty}
		if in.Total > 0 {
			if in.Query != "" {
				d.Message = fmt.Sprintf("No results for %q", in.Query)
			} else {
				d.Message = "No Pokémon available"
			}
		}
		return d
	}

	return Display{
		State:    DisplayPopulated,
		Spinner:  in.InFlight,
		Hint:     !in.InFlight && !in.Exhausted && len(in.Filtered) > 0,
		Sentinel: true,
	}
}

// ImageOrFallback returns src when it is an absolute http(s) URL, else FallbackImage.
func ImageOrFallback(src string) string {
	u, err := url.Parse(src)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return FallbackImage
	}
	return src
}
