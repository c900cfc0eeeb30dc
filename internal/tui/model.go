// Package tui is the terminal menu browser.
package tui

import (
	"context"
	"slices"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dinemenu/internal/domain/menu"
	"github.com/kailas-cloud/dinemenu/internal/domain/menu/expand"
	"github.com/kailas-cloud/dinemenu/internal/domain/menu/filter"
	"github.com/kailas-cloud/dinemenu/internal/domain/menu/rate"
)

// Loader supplies the menu collection.
type Loader interface {
	Items(ctx context.Context) ([]menu.Item, error)
	Refresh(ctx context.Context) ([]menu.Item, error)
}

// loadedMsg carries the result of a load started by fetch.
type loadedMsg struct {
	items   []menu.Item
	err     error
	refresh bool
}

// Model is the bubbletea model of the browser. All state changes happen in
// Update.
type Model struct {
	ctx    context.Context
	loader Loader
	logger *zap.Logger

	input   textinput.Model
	spinner spinner.Model

	items      []menu.Item
	categories []string
	category   int
	visible    []menu.Item
	expanded   expand.Set
	cursor     int

	loading bool
	loaded  bool
	err     error
	height  int
}

// New creates a browser model. The first load starts from Init.
func New(ctx context.Context, loader Loader, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "Search items, codes, categories..."
	ti.Prompt = "/ "
	ti.CharLimit = filter.MaxQueryLength
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = spinnerStyle

	return Model{
		ctx:        ctx,
		loader:     loader,
		logger:     logger,
		input:      ti,
		spinner:    sp,
		categories: []string{menu.AllCategories},
		loading:    true,
	}
}

// Init starts the initial load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.fetch(false))
}

// fetch loads the collection off the update loop.
func (m Model) fetch(refresh bool) tea.Cmd {
	ctx, loader := m.ctx, m.loader
	return func() tea.Msg {
		var (
			items []menu.Item
			err   error
		)
		if refresh {
			items, err = loader.Refresh(ctx)
		} else {
			items, err = loader.Items(ctx)
		}
		return loadedMsg{items: items, err: err, refresh: refresh}
	}
}

// Update handles keys, window sizes and load results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case loadedMsg:
		m.onLoaded(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.onKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.cycleCategory(1)
		return m, nil
	case "shift+tab":
		m.cycleCategory(-1)
		return m, nil
	case "up":
		m.moveCursor(-1)
		return m, nil
	case "down":
		m.moveCursor(1)
		return m, nil
	case "enter":
		m.toggleSelected()
		return m, nil
	case " ":
		// Space types into a non-empty query.
		if m.input.Value() == "" {
			m.toggleSelected()
			return m, nil
		}
	case "ctrl+r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.fetch(true))
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		m.applyFilter()
	}
	return m, cmd
}

func (m *Model) onLoaded(msg loadedMsg) {
	m.loading = false
	if msg.err != nil {
		m.err = msg.err
		m.logger.Warn("Menu load failed", zap.Bool("refresh", msg.refresh), zap.Error(msg.err))
		return
	}

	m.err = nil
	m.loaded = true
	m.items = msg.items

	selected := m.Category()
	m.categories = filter.Categories(m.items)
	m.category = max(slices.Index(m.categories, selected), 0)
	m.applyFilter()
}

func (m *Model) cycleCategory(step int) {
	n := len(m.categories)
	m.category = ((m.category+step)%n + n) % n
	m.applyFilter()
}

func (m *Model) moveCursor(step int) {
	if len(m.visible) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor+step, 0), len(m.visible)-1)
}

// toggleSelected flips the selected item. Items without additional rates
// have nothing to expand.
func (m *Model) toggleSelected() {
	item, ok := m.Selected()
	if !ok || !rate.HasAdditional(&item) {
		return
	}
	m.expanded.Toggle(item.ID)
}

func (m *Model) applyFilter() {
	m.visible = filter.Apply(m.items, m.Category(), m.input.Value())
	m.moveCursor(0)
}

// Query returns the current search text.
func (m Model) Query() string { return m.input.Value() }

// Category returns the selected category.
func (m Model) Category() string { return m.categories[m.category] }

// Visible returns the items currently shown.
func (m Model) Visible() []menu.Item { return m.visible }

// Selected returns the item under the cursor.
func (m Model) Selected() (menu.Item, bool) {
	if m.cursor >= len(m.visible) {
		return menu.Item{}, false
	}
	return m.visible[m.cursor], true
}

// Expanded reports whether the item with id shows all of its rates.
func (m Model) Expanded(id int64) bool { return m.expanded.Has(id) }

// Err returns the last load error, if the last load failed.
func (m Model) Err() error { return m.err }

// Run starts the browser on the terminal and blocks until it exits.
func Run(ctx context.Context, loader Loader, logger *zap.Logger, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(New(ctx, loader, logger), opts...).Run()
	return err
}
