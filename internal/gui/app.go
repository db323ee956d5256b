package gui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"

	"github.com/appengine-ltd/dungeon-crawler/internal/config"
	"github.com/appengine-ltd/dungeon-crawler/internal/console"
	"github.com/appengine-ltd/dungeon-crawler/internal/game"
	"github.com/appengine-ltd/dungeon-crawler/internal/logger"
)

type AppConfig struct {
	Version string
	Window  config.Window
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
	ui := newGameUI(a.cfg, a.game)
	return ui.Run()
}

type gameUI struct {
	cfg     AppConfig
	game    *game.Game
	console *console.Console
	log     logrus.FieldLogger

	width  int32
	height int32
	layout screenLayout

	mouse   rl.Vector2
	clicked bool

	focus  int
	typing bool
	input  string
	quit   bool
}

func newGameUI(cfg AppConfig, g *game.Game) *gameUI {
	log := cfg.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &gameUI{
		cfg:     cfg,
		game:    g,
		console: console.New(g, log),
		log:     log,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "dungeon-crawler")
	rl.SetExitKey(0)
	rl.SetTargetFPS(ui.cfg.Window.TargetFPS)
	initTypography()
	ui.log.WithFields(logrus.Fields{
		"width":  ui.width,
		"height": ui.height,
		"fps":    ui.cfg.Window.TargetFPS,
	}).Info("window opened")

	for !ui.quit && !rl.WindowShouldClose() {
		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())
		ui.layout = layoutScreen(ui.width, ui.height, len(game.Modes()))
		ui.mouse = rl.GetMousePosition()
		ui.clicked = rl.IsMouseButtonPressed(rl.MouseButtonLeft)

		ui.update()

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		ui.draw()
		rl.EndDrawing()

		// Everything queued by this frame's input and widgets lands here,
		// after the frame rendered against the old state.
		logger.Applied(ui.log, ui.game.Update())
		ui.focus = clampIndex(ui.focus, len(ui.rows()))
	}

	shutdownTypography()
	rl.CloseWindow()
	ui.log.Info("window closed")
	return nil
}

func (ui *gameUI) update() {
	if ui.typing {
		ui.updateInput()
		return
	}
	if ctrlDown() && rl.IsKeyPressed(rl.KeyQ) {
		ui.quit = true
		return
	}
	if ui.console.Clarifying() {
		if n, ok := pressedDigit(); ok {
			out, _ := ui.console.Choose(n)
			ui.quit = out.Quit
			return
		}
	}
	switch {
	case rl.IsKeyPressed(rl.KeyTab):
		ui.setMode(nextMode(ui.game.Mode()))
	case rl.IsKeyPressed(rl.KeyS):
		ui.setMode(game.ModeStats)
	case rl.IsKeyPressed(rl.KeyI):
		ui.setMode(game.ModeInventory)
	case rl.IsKeyPressed(rl.KeySlash), rl.IsKeyPressed(rl.KeySemicolon):
		ui.typing = true
		ui.input = ""
		// Drain the opening keystroke so it does not land in the buffer.
		for rl.GetCharPressed() > 0 {
		}
		return
	}

	if ui.game.Mode() != game.ModeInventory {
		return
	}
	rows := ui.rows()
	switch {
	case rl.IsKeyPressed(rl.KeyUp):
		ui.focus = clampIndex(ui.focus-1, len(rows))
	case rl.IsKeyPressed(rl.KeyDown):
		ui.focus = clampIndex(ui.focus+1, len(rows))
	case rl.IsKeyPressed(rl.KeyD):
		if r, ok := console.RowAt(rows, ui.focus); ok && r.Held {
			ui.queue(r.Action())
		}
	case rl.IsKeyPressed(rl.KeyP):
		if r, ok := console.RowAt(rows, ui.focus); ok && !r.Held {
			ui.queue(r.Action())
		}
	case rl.IsKeyPressed(rl.KeyEnter):
		if r, ok := console.RowAt(rows, ui.focus); ok {
			ui.queue(r.Action())
		}
	}
}

func (ui *gameUI) updateInput() {
	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		ui.typing = false
		ui.input = ""
	case rl.IsKeyPressed(rl.KeyEnter):
		raw := strings.TrimSpace(ui.input)
		ui.typing = false
		ui.input = ""
		if out := ui.console.Submit(raw); out.Quit {
			ui.quit = true
		}
	default:
		captureTextInput(&ui.input, 80)
	}
}

func (ui *gameUI) setMode(mode game.Mode) {
	if mode == ui.game.Mode() {
		return
	}
	ui.game.SetMode(mode)
	ui.log.WithField("mode", mode.String()).Debug("view switched")
}

func (ui *gameUI) queue(e game.Event) {
	ui.game.Enqueue(e)
	ui.console.Say(console.Describe(e))
}

// button draws a clickable button and reports whether it was clicked this
// frame.
func (ui *gameUI) button(rect rl.Rectangle, label string, selected bool) bool {
	hovered := pointIn(ui.mouse, rect)
	state := buttonNormal
	switch {
	case selected:
		state = buttonSelected
	case hovered:
		state = buttonHovered
	}
	drawButton(rect, state, label)
	return hovered && ui.clicked
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
