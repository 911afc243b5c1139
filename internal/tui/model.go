// Package tui is the terminal front end of the lookup page. It drives the
// same controller as the web page, with the four display regions rendered
// by lipgloss instead of HTML.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pokecard/internal/catalog"
	"pokecard/internal/config"
	"pokecard/internal/controller"
	"pokecard/internal/display"
	"pokecard/internal/models"
)

// settledMsg reports a finished lookup.
type settledMsg struct {
	outcome   string
	syncInput bool
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx   context.Context
	title string

	page  *display.Page
	ctrl  *controller.Controller
	input textinput.Model

	// pending counts lookups that have not settled yet.
	pending int
}

// New creates a model whose page starts cleared.
func New(ctx context.Context, client catalog.Client, cfg *config.Config, logger *slog.Logger) (*Model, error) {
	page := &display.Page{}
	ctrl, err := controller.New(&controller.Config{
		Catalog:     client,
		Regions:     controller.RegionsFor(page),
		Messages:    cfg.Messages,
		CatalogSize: cfg.CatalogSize,
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}
	ctrl.Handle(ctx, controller.Clear{})

	ti := textinput.New()
	ti.Placeholder = "e.g. pikachu or 25"
	ti.Prompt = "> "
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	title := cfg.SiteTitle
	if title == "" {
		title = "Pokémon Lookup"
	}

	return &Model{
		ctx:   ctx,
		title: title,
		page:  page,
		ctrl:  ctrl,
		input: ti,
	}, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settledMsg:
		m.pending--
		if msg.syncInput && msg.outcome != models.OutcomeStale {
			m.input.SetValue(m.page.Input.Text())
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			text := m.input.Value()
			m.page.Input.SetText(text)
			return m, m.run(controller.Submit{Text: text}, false)
		case tea.KeyCtrlR:
			return m, m.run(controller.RandomPick{}, true)
		case tea.KeyEsc:
			m.ctrl.Handle(m.ctx, controller.Clear{})
			m.input.Reset()
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.page.Input.SetText(m.input.Value())
		m.ctrl.Handle(m.ctx, controller.KeyUp{Text: m.input.Value()})
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// run hands cmd to the controller off the update loop.
func (m *Model) run(cmd controller.Command, syncInput bool) tea.Cmd {
	m.pending++
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return settledMsg{outcome: ctrl.Handle(ctx, cmd), syncInput: syncInput}
	}
}
