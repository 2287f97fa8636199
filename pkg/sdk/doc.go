// Package pokedex provides a Go client for the pokedex catalog proxy API.
//
// The API serves the catalog one page at a time as a bare JSON array, with no
// total count or next-page token:
//
//	client, _ := pokedex.New("http://127.0.0.1:8000")
//	items, err := client.ListPokemons(ctx, 1, 20)
//
// Failures are classified with errors.Is: ErrFetch for transport failures and
// non-success statuses, ErrDecode for bodies that are not a JSON array of items.
package pokedex
