//go:build cgo

package main

import (
	"github.com/sirupsen/logrus"

	"github.com/appengine-ltd/dungeon-crawler/internal/config"
	"github.com/appengine-ltd/dungeon-crawler/internal/game"
	"github.com/appengine-ltd/dungeon-crawler/internal/gui"
)

const guiAvailable = true

func runGUI(cfg config.Config, g *game.Game, log logrus.FieldLogger) error {
	return gui.NewApp(gui.AppConfig{
		Version: version,
		Window:  cfg.Window,
		Log:     log,
	}, g).Run()
}
