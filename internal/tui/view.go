package tui

import (
	"fmt"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/kailas-cloud/pokedex/internal/browse"
	"github.com/kailas-cloud/pokedex/internal/domain"
)

const (
	cardWidth      = 30 // outer width including border
	minPanelsWidth = 100
	minCenterWidth = 20
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	center := lipgloss.JoinVertical(lipgloss.Left, m.renderSearch(), m.list.View())
	body := center
	if pw := m.panelWidth(); pw > 0 {
		h := lipgloss.Height(center)
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderPanel(browse.LeftSidePanel, pw, h),
			center,
			m.renderPanel(browse.RightSidePanel, pw, h),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderHelp())
}

// layout sizes the components after a resize or a focus change.
func (m *Model) layout() {
	cw := m.centerWidth()
	m.search.Width = max(cw-8, 10)
	m.list.Width = cw

	used := lipgloss.Height(m.renderHeader()) +
		lipgloss.Height(m.renderSearch()) +
		lipgloss.Height(m.renderHelp())
	m.list.Height = max(m.height-used, 1)
}

func (m Model) panelWidth() int {
	if m.width < minPanelsWidth {
		return 0
	}
	return m.width / 6
}

func (m Model) centerWidth() int {
	return max(m.width-2*m.panelWidth(), minCenterWidth)
}

// refresh rebuilds the list content and records where the sentinel landed.
func (m *Model) refresh() {
	content, sentinel := m.renderList()
	m.list.SetContent(content)
	m.sentinelLine = sentinel
}

func (m Model) renderList() (string, int) {
	filtered := m.session.Filtered()
	d := browse.Decide(browse.RenderInput{
		Filtered:  filtered,
		InFlight:  m.session.InFlight(),
		Query:     m.session.Query(),
		Total:     m.session.Len(),
		Exhausted: m.session.Exhausted(),
	})

	if d.State == browse.DisplayEmpty {
		if d.Message == "" {
			return "", -1
		}
		return m.center(lipgloss.JoinVertical(lipgloss.Center,
			"",
			m.styles.EmptyTitle.Render("No Pokémon Found"),
			m.styles.EmptyText.Render(d.Message),
			m.styles.EmptyText.Render("Try adjusting your search"),
		)), -1
	}

	var blocks []string
	if grid := m.renderGrid(filtered); grid != "" {
		blocks = append(blocks, grid)
	}
	if d.Spinner {
		blocks = append(blocks, m.center(m.spinner.View()+" Loading more Pokémon..."))
	}

	sentinel := -1
	if d.Sentinel {
		sentinel = lineCount(blocks)
		blocks = append(blocks, "")
	}
	if d.Hint {
		blocks = append(blocks,
			m.center(m.styles.Hint.Render("Scroll down to load more Pokémon")),
			m.center(m.styles.Hint.Render("↓")),
		)
	}
	return strings.Join(blocks, "\n"), sentinel
}

func (m Model) renderGrid(items []domain.Pokemon) string {
	if len(items) == 0 {
		return ""
	}

	cols := max(m.list.Width/cardWidth, 1)
	rows := make([]string, 0, (len(items)+cols-1)/cols)
	for i := 0; i < len(items); i += cols {
		end := min(i+cols, len(items))
		cards := make([]string, 0, end-i)
		for _, p := range items[i:end] {
			cards = append(cards, m.renderCard(p))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCard(p domain.Pokemon) string {
	inner := cardWidth - 4

	badges := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		badges = append(badges, m.styles.badge(t))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.CardName.Render(displayName(p.Name)),
		lipgloss.JoinHorizontal(lipgloss.Top, badges...),
		fmt.Sprintf("%.1f m · %.1f kg", float64(p.Height)/10, float64(p.Weight)/10),
		m.styles.CardImage.MaxWidth(inner).Render(browse.ImageOrFallback(p.Image)),
	)
	return m.styles.Card.Width(cardWidth - 2).Render(body)
}

func (m Model) renderHeader() string {
	width := max(m.width, minCenterWidth*2)
	cw := width * 2 / 3
	bw := width - cw

	n := m.carousel.Len()
	dots := make([]string, n)
	for i := range dots {
		if i == m.carousel.Index() {
			dots[i] = m.styles.DotActive.Render("●")
		} else {
			dots[i] = m.styles.Dot.Render("○")
		}
	}

	slide := m.styles.Carousel.Width(cw - 2).Height(4).Render(lipgloss.JoinVertical(lipgloss.Left,
		"‹ "+m.carousel.Current()+" ›",
		"",
		strings.Join(dots, " ")+"   "+fmt.Sprintf("%d / %d", m.carousel.Index()+1, n),
	))

	banners := make([]string, 0, len(browse.TopBanners))
	for _, b := range browse.TopBanners {
		banners = append(banners, m.styles.Banner.Width(bw-2).Render(b))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, slide, lipgloss.JoinVertical(lipgloss.Left, banners...))
}

func (m Model) renderSearch() string {
	style := m.styles.Search
	if m.search.Focused() {
		style = m.styles.SearchOn
	}
	return style.Width(m.centerWidth() - 2).Render(m.search.View())
}

func (m Model) renderPanel(src string, width, height int) string {
	return m.styles.SidePanel.
		Width(width - 2).
		Height(max(height-2, 1)).
		Render(path.Base(src))
}

func (m Model) renderHelp() string {
	if m.search.Focused() {
		return m.help.View(searchHelp{k: m.keys})
	}
	return m.help.View(m.keys)
}

func (m Model) center(s string) string {
	return lipgloss.PlaceHorizontal(m.list.Width, lipgloss.Center, s)
}

func lineCount(blocks []string) int {
	if len(blocks) == 0 {
		return 0
	}
	return strings.Count(strings.Join(blocks, "\n"), "\n") + 1
}

func displayName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
