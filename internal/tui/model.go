// Package tui is the terminal catalog browser: a carousel header, a search
// bar and an infinitely scrolling grid of cards fed page by page from the
// pokedex API.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/kailas-cloud/pokedex/internal/browse"
)

const defaultCarouselInterval = 3 * time.Second

// Options configures a browser Model.
type Options struct {
	PageSize         int
	ScrollMargin     int // lines below the viewport that still count as visible
	CarouselInterval time.Duration
	RequestTimeout   time.Duration
	Logger           *zap.Logger
}

// Model is the bubbletea model of the browser.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	logger *zap.Logger

	// Browsing state
	fetcher  *browse.Fetcher
	session  *browse.Session
	trigger  *browse.Trigger
	carousel *browse.Carousel

	// Components
	search  textinput.Model
	list    viewport.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	styles  Styles

	width        int
	height       int
	sentinelLine int // line of the sentinel inside the list content, -1 if absent
	carouselGen  int
	quitting     bool
}

// New creates a browser reading pages from src. Cancelling ctx aborts any
// outstanding request.
func New(ctx context.Context, src browse.Source, opts Options) Model {
	ctx, cancel := context.WithCancel(ctx)

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	interval := opts.CarouselInterval
	if interval <= 0 {
		interval = defaultCarouselInterval
	}

	styles := DefaultStyles()

	search := textinput.New()
	search.Placeholder = "Search Pokémon by name..."
	search.Prompt = "⌕ "
	search.CharLimit = 64

	trigger := browse.NewTrigger(opts.ScrollMargin)
	trigger.Attach()

	carousel := browse.NewCarousel(browse.CarouselSlides, interval)

	return Model{
		ctx:          ctx,
		cancel:       cancel,
		logger:       logger,
		fetcher:      browse.NewFetcher(src, opts.RequestTimeout, logger),
		session:      browse.NewSession(opts.PageSize),
		trigger:      trigger,
		carousel:     carousel,
		search:       search,
		list:         viewport.New(0, 0),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Spinner)),
		help:         help.New(),
		keys:         defaultKeyMap(),
		styles:       styles,
		sentinelLine: -1,
		carouselGen:  carousel.Start(),
	}
}

// Init loads the first page and starts the carousel timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.startFetch(),
		carouselTick(m.carousel.Interval(), m.carouselGen),
		m.spinner.Tick,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		cmd := m.sync()
		return m, cmd

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmd = tea.Batch(cmd, m.sync())
		return m, cmd

	case pageLoadedMsg:
		if !m.session.Complete(msg.result) {
			m.logger.Debug("discarding stale page",
				zap.Int("page", msg.result.Page),
				zap.Uint64("session", msg.result.Session),
			)
			return m, nil
		}
		cmd := m.sync()
		return m, cmd

	case carouselTickMsg:
		if !m.carousel.Tick(msg.gen) {
			return m, nil
		}
		return m, carouselTick(m.carousel.Interval(), msg.gen)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.session.InFlight() {
			m.refresh()
		}
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQ) {
		return m.quit()
	}

	if m.search.Focused() {
		if key.Matches(msg, m.keys.Blur) {
			m.search.Blur()
			m.layout()
			return m.sync()
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if q := m.search.Value(); q != m.session.Query() {
			m.session.SetQuery(q)
			m.list.GotoTop()
		}
		return tea.Batch(cmd, m.sync())
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Search):
		cmd := m.search.Focus()
		m.layout()
		return cmd
	case key.Matches(msg, m.keys.Prev):
		return m.restartCarousel(m.carousel.Prev())
	case key.Matches(msg, m.keys.Next):
		return m.restartCarousel(m.carousel.Next())
	case key.Matches(msg, m.keys.Slide):
		gen, ok := m.carousel.Jump(int(msg.String()[0] - '1'))
		if !ok {
			return nil
		}
		return m.restartCarousel(gen)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return tea.Batch(cmd, m.sync())
}

func (m *Model) restartCarousel(gen int) tea.Cmd {
	m.carouselGen = gen
	return carouselTick(m.carousel.Interval(), gen)
}

// sync re-renders the list, lets the trigger observe the result and starts a
// fetch when the page counter moved.
func (m *Model) sync() tea.Cmd {
	m.refresh()
	if m.trigger.Observe(m.viewportState(), m.session) {
		m.logger.Debug("sentinel reached", zap.Int("page", m.session.Page()))
	}
	cmd := m.startFetch()
	if cmd != nil {
		m.refresh()
	}
	return cmd
}

func (m *Model) startFetch() tea.Cmd {
	req, ok := m.session.BeginFetch()
	if !ok {
		return nil
	}
	m.logger.Debug("fetching page", zap.Int("page", req.Page), zap.Int("limit", req.Limit))
	return fetchPage(m.ctx, m.fetcher, req)
}

func (m Model) viewportState() browse.Viewport {
	return browse.Viewport{
		Offset:       m.list.YOffset,
		Height:       m.list.Height,
		SentinelLine: m.sentinelLine,
	}
}

func (m *Model) quit() tea.Cmd {
	m.teardown()
	return tea.Quit
}

// teardown unsubscribes the trigger, releases the timer, drops any late page
// and aborts the outstanding request. Safe to call twice.
func (m *Model) teardown() {
	m.trigger.Detach()
	m.carousel.Stop()
	m.session.Close()
	m.cancel()
	m.quitting = true
}

// Run starts the browser and blocks until the user quits or ctx is done.
func Run(ctx context.Context, src browse.Source, opts Options) error {
	m := New(ctx, src, opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.teardown()
	} else {
		m.teardown()
	}
	return err
}
