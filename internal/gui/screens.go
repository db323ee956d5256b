package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/dungeon-crawler/internal/console"
	"github.com/appengine-ltd/dungeon-crawler/internal/game"
)

var screens = map[game.Mode]func(*gameUI, rl.Rectangle){
	game.ModeStats:     (*gameUI).drawStats,
	game.ModeInventory: (*gameUI).drawInventory,
}

func (ui *gameUI) draw() {
	ui.drawNav()
	if draw, ok := screens[ui.game.Mode()]; ok {
		draw(ui, ui.layout.Content)
	}
	ui.drawConsole()
}

func (ui *gameUI) drawNav() {
	for i, mode := range game.Modes() {
		if i >= len(ui.layout.Nav) {
			break
		}
		if ui.button(ui.layout.Nav[i], mode.String(), mode == ui.game.Mode()) {
			ui.setMode(mode)
		}
	}
	if ui.cfg.Version != "" {
		label := "v" + ui.cfg.Version
		drawHint(label, ui.width-measureText(label, typeScale.Small)-int32(margin), int32(margin+spaceS))
	}
}

func (ui *gameUI) drawStats(area rl.Rectangle) {
	panel := rl.NewRectangle(area.X, area.Y, min(area.Width, 480), area.Height)
	drawPanel(panel, "Stats")

	s := ui.game.Stats()
	x := panel.X + spaceM
	y := panel.Y + spaceS + float32(typeScale.Header) + spaceM
	w := panel.Width - 2*spaceM

	hpCur, hpMax := s.HP.Get()
	drawMeter("HP", hpCur, hpMax, rl.NewRectangle(x, y, w, 40), colorDanger)
	y += 48
	manaCur, manaMax := s.Mana.Get()
	drawMeter("Mana", manaCur, manaMax, rl.NewRectangle(x, y, w, 40), colorMana)
	y += 56

	// HP and Mana are shown as meters above.
	for _, line := range s.Lines()[2:] {
		drawText(line, int32(x), int32(y), typeScale.Body, colorText)
		y += float32(typeScale.Body) + 10
	}
}

func (ui *gameUI) drawInventory(area rl.Rectangle) {
	left, right := splitColumns(area)
	rows := console.Rows(ui.game)
	held := 0
	for held < len(rows) && rows[held].Held {
		held++
	}
	ui.drawRowPanel(left, "Inventory", "Empty-handed.", rows[:held], 0)
	ui.drawRowPanel(right, "Nearby", "Nothing here.", rows[held:], held)
}

func (ui *gameUI) drawRowPanel(panel rl.Rectangle, title, empty string, rows []console.Row, offset int) {
	drawPanel(panel, title)
	rects := listRows(panel, len(rows))
	if len(rows) == 0 {
		drawHint(empty, int32(panel.X+spaceM), int32(panel.Y+spaceS+float32(typeScale.Header)+spaceM))
		return
	}
	for i, r := range rows {
		rect := rects[i]
		if rect.Y+rect.Height > panel.Y+panel.Height {
			break
		}
		idx := offset + i
		if ui.clicked && pointIn(ui.mouse, rect) && !pointIn(ui.mouse, actionRect(rect)) {
			ui.focus = idx
		}
		drawListRow(rect, idx == ui.focus, r.Stack.Label())
		if ui.button(actionRect(rect), r.ActionLabel(), false) {
			ui.focus = idx
			ui.queue(r.Action())
		}
	}
}

func (ui *gameUI) drawConsole() {
	drawPanel(ui.layout.Console, "")
	lines := ui.console.Recent(consoleLines)
	y := int32(ui.layout.Console.Y + spaceM)
	for _, line := range lines {
		drawText(line, int32(ui.layout.Console.X+spaceM), y, typeScale.Small, colorDim)
		y += typeScale.Small + 6
	}

	hint := "Tab view | Up/Down select | D drop | P pick up | / command"
	if ui.console.Clarifying() {
		hint = fmt.Sprintf("Press 1-%d to choose", len(ui.console.Options()))
	}
	drawInputField(ui.layout.Input, ui.input, hint, ui.typing)
}

func (ui *gameUI) rows() []console.Row {
	return console.Rows(ui.game)
}
