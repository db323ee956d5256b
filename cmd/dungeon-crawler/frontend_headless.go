//go:build !cgo

package main

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/appengine-ltd/dungeon-crawler/internal/config"
	"github.com/appengine-ltd/dungeon-crawler/internal/game"
)

// raylib needs cgo; headless builds only ship the terminal front end.
const guiAvailable = false

func runGUI(config.Config, *game.Game, logrus.FieldLogger) error {
	return errors.New("window front end requires a cgo build")
}
