package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/dungeon-crawler/internal/console"
	"github.com/appengine-ltd/dungeon-crawler/internal/game"
)

// --- Styles (retro green) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	activeTab   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")).Padding(0, 1)
	tab         = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Padding(0, 1)
)

const rule = "----------------------------------------"

const historyLines = 5

var renderers = map[game.Mode]func(model) string{
	game.ModeStats:     renderStats,
	game.ModeInventory: renderInventory,
}

func (m model) View() string {
	var b strings.Builder
	title := brightGreen.Render("DUNGEON CRAWLER")
	if m.cfg.Version != "" {
		title += dimGreen.Render("  v" + m.cfg.Version)
	}
	b.WriteString(title + "\n")
	b.WriteString(renderNav(m.game.Mode()) + "\n")
	b.WriteString(border.Render(rule) + "\n\n")

	if render, ok := renderers[m.game.Mode()]; ok {
		b.WriteString(render(m))
	}

	b.WriteString("\n" + border.Render(rule) + "\n")
	for _, line := range m.console.Recent(historyLines) {
		b.WriteString(dimGreen.Render(line) + "\n")
	}
	if m.typing {
		b.WriteString(m.input.View() + "\n")
	}
	b.WriteString(m.help.View(m.keys) + "\n")
	return b.String()
}

func renderNav(active game.Mode) string {
	tabs := make([]string, 0, len(game.Modes()))
	for _, mode := range game.Modes() {
		if mode == active {
			tabs = append(tabs, activeTab.Render(mode.String()))
			continue
		}
		tabs = append(tabs, tab.Render(mode.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderStats(m model) string {
	var b strings.Builder
	for _, line := range m.game.Stats().Lines() {
		b.WriteString(green.Render(line) + "\n")
	}
	return b.String()
}

func renderInventory(m model) string {
	var b strings.Builder
	rows := console.Rows(m.game)
	held := 0
	for held < len(rows) && rows[held].Held {
		held++
	}
	writeSection(&b, "Inventory", "(empty)", rows[:held], 0, m.cursor)
	b.WriteString("\n")
	writeSection(&b, "Nearby", "(nothing)", rows[held:], held, m.cursor)
	return b.String()
}

func writeSection(b *strings.Builder, title, empty string, rows []console.Row, offset, cursor int) {
	b.WriteString(brightGreen.Render(title) + "\n")
	if len(rows) == 0 {
		b.WriteString(dimGreen.Render("  "+empty) + "\n")
		return
	}
	for i, r := range rows {
		prefix, label := "  ", green.Render(r.Stack.Label())
		if offset+i == cursor {
			prefix, label = "> ", brightGreen.Render(r.Stack.Label())
		}
		b.WriteString(prefix + label + "  " + dimGreen.Render("["+hint(r)+"]") + "\n")
	}
}

func hint(r console.Row) string {
	if r.Held {
		return "d: drop"
	}
	return "p: pick up"
}
