package tui

import "github.com/charmbracelet/lipgloss"

// typeColors mirrors the badge palette of the web frontend.
var typeColors = map[string]lipgloss.AdaptiveColor{
	"grass":    {Light: "#166534", Dark: "#86EFAC"},
	"poison":   {Light: "#6B21A8", Dark: "#D8B4FE"},
	"fire":     {Light: "#991B1B", Dark: "#FCA5A5"},
	"water":    {Light: "#1E40AF", Dark: "#93C5FD"},
	"electric": {Light: "#854D0E", Dark: "#FDE047"},
	"flying":   {Light: "#3730A3", Dark: "#A5B4FC"},
}

var defaultTypeColor = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#D1D5DB"}

// Styles holds every style the view uses.
type Styles struct {
	Carousel   lipgloss.Style
	Banner     lipgloss.Style
	SidePanel  lipgloss.Style
	Search     lipgloss.Style
	SearchOn   lipgloss.Style
	Card       lipgloss.Style
	CardName   lipgloss.Style
	CardImage  lipgloss.Style
	Badge      lipgloss.Style
	Spinner    lipgloss.Style
	Hint       lipgloss.Style
	EmptyTitle lipgloss.Style
	EmptyText  lipgloss.Style
	Dot        lipgloss.Style
	DotActive  lipgloss.Style
}

// DefaultStyles returns the built-in look.
func DefaultStyles() Styles {
	border := lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"}
	accent := lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#60A5FA"}
	muted := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	return Styles{
		Carousel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		Banner: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		SidePanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Foreground(muted).
			Align(lipgloss.Center),
		Search: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		SearchOn: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		CardName:   lipgloss.NewStyle().Bold(true),
		CardImage:  lipgloss.NewStyle().Foreground(muted),
		Badge:      lipgloss.NewStyle().Padding(0, 1).Bold(true),
		Spinner:    lipgloss.NewStyle().Foreground(accent),
		Hint:       lipgloss.NewStyle().Foreground(muted),
		EmptyTitle: lipgloss.NewStyle().Bold(true),
		EmptyText:  lipgloss.NewStyle().Foreground(muted),
		Dot:        lipgloss.NewStyle().Foreground(muted),
		DotActive:  lipgloss.NewStyle().Foreground(accent).Bold(true),
	}
}

// badge renders one type label in its colour.
func (s Styles) badge(typ string) string {
	c, ok := typeColors[typ]
	if !ok {
		c = defaultTypeColor
	}
	return s.Badge.Foreground(c).Render(typ)
}
