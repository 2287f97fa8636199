package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kailas-cloud/pokedex/internal/browse"
)

// pageLoadedMsg carries a fetch outcome back onto the event loop.
type pageLoadedMsg struct {
	result browse.PageResult
}

// carouselTickMsg is one timer period of the carousel, tagged with the
// generation it was scheduled under.
type carouselTickMsg struct {
	gen int
}

// fetchPage runs the request off the event loop.
func fetchPage(ctx context.Context, f *browse.Fetcher, req browse.FetchRequest) tea.Cmd {
	return func() tea.Msg {
		return pageLoadedMsg{result: f.Fetch(ctx, req)}
	}
}

func carouselTick(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return carouselTickMsg{gen: gen}
	})
}
