package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/appengine-ltd/dungeon-crawler/internal/console"
	"github.com/appengine-ltd/dungeon-crawler/internal/game"
	"github.com/appengine-ltd/dungeon-crawler/internal/logger"
)

type AppConfig struct {
	Version string
	Log     logrus.FieldLogger
}

type App struct {
	cfg  AppConfig
	game *game.Game
}

func NewApp(cfg AppConfig, g *game.Game) *App {
	if g == nil {
		g = game.New()
	}
	return &App{cfg: cfg, game: g}
}

func (a *App) Run() error {
	m := newModel(a.cfg, a.game)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type model struct {
	cfg     AppConfig
	game    *game.Game
	console *console.Console
	log     logrus.FieldLogger

	keys   keyMap
	help   help.Model
	input  textinput.Model
	typing bool

	cursor int
	width  int
}

func newModel(cfg AppConfig, g *game.Game) model {
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "take arrow, drop sword 2, stats..."
	in.CharLimit = 80

	return model{
		cfg:     cfg,
		game:    g,
		console: console.New(g, log),
		log:     log,
		keys:    newKeyMap(),
		help:    help.New(),
		input:   in,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// Update handles one message, then drains the events it queued so the next
// View reflects them.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m, cmd = m.handle(msg)
	logger.Applied(m.log, m.game.Update())
	m.cursor = clampCursor(m.cursor, len(console.Rows(m.game)))
	return m, cmd
}

func (m model) handle(msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.typing {
			return m.handleTyping(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.console.Clarifying() {
		if n, ok := optionNumber(msg); ok {
			out, _ := m.console.Choose(n)
			if out.Quit {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.NextView):
		m.setMode(nextMode(m.game.Mode()))
	case key.Matches(msg, m.keys.Stats):
		m.setMode(game.ModeStats)
	case key.Matches(msg, m.keys.Inventory):
		m.setMode(game.ModeInventory)
	case key.Matches(msg, m.keys.Command):
		m.typing = true
		return m, m.input.Focus()
	}

	if m.game.Mode() != game.ModeInventory {
		return m, nil
	}
	rows := console.Rows(m.game)
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Drop):
		if r, ok := console.RowAt(rows, m.cursor); ok && r.Held {
			m.queue(r.Action())
		}
	case key.Matches(msg, m.keys.PickUp):
		if r, ok := console.RowAt(rows, m.cursor); ok && !r.Held {
			m.queue(r.Action())
		}
	case key.Matches(msg, m.keys.Select):
		if r, ok := console.RowAt(rows, m.cursor); ok {
			m.queue(r.Action())
		}
	}
	return m, nil
}

func (m model) setMode(mode game.Mode) {
	if mode == m.game.Mode() {
		return
	}
	m.game.SetMode(mode)
	m.log.WithField("mode", mode.String()).Debug("view switched")
}

func (m model) queue(e game.Event) {
	m.game.Enqueue(e)
	m.console.Say(console.Describe(e))
}

func (m model) handleTyping(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.typing = false
		m.input.Blur()
		m.input.SetValue("")
		return m, nil
	case tea.KeyEnter:
		raw := m.input.Value()
		m.input.SetValue("")
		m.typing = false
		m.input.Blur()
		if out := m.console.Submit(raw); out.Quit {
			return m, tea.Quit
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func nextMode(cur game.Mode) game.Mode {
	modes := game.Modes()
	for i, mode := range modes {
		if mode == cur {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}

func optionNumber(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
