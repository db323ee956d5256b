package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/appengine-ltd/dungeon-crawler/internal/config"
	"github.com/appengine-ltd/dungeon-crawler/internal/game"
	"github.com/appengine-ltd/dungeon-crawler/internal/logger"
	"github.com/appengine-ltd/dungeon-crawler/internal/ui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		frontend    string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&frontend, "frontend", "", "front end to run: gui or tui (overrides DUNGEON_FRONTEND)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Dungeon Crawler %s (%s) %s\n", version, commit, date)
		return
	}

	if err := run(frontend); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(frontend string) error {
	if frontend != "" {
		if err := os.Setenv("DUNGEON_FRONTEND", frontend); err != nil {
			return fmt.Errorf("set frontend: %w", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal front end owns stdout and stderr, so it only logs to a file.
	var fallback io.Writer = os.Stderr
	if cfg.Frontend == config.FrontendTUI || !guiAvailable {
		fallback = nil
	}
	log, closeLog, err := logger.New(cfg.Log, fallback)
	if err != nil {
		return err
	}
	defer closeLogger(log, closeLog)

	entry := log.WithFields(logrus.Fields{
		"version":  version,
		"frontend": cfg.Frontend,
	})
	entry.Info("starting")

	g := game.New()
	if cfg.Frontend == config.FrontendGUI {
		if guiAvailable {
			return runGUI(cfg, g, entry)
		}
		entry.Warn("built without cgo, falling back to the terminal front end")
	}
	return ui.NewApp(ui.AppConfig{Version: version, Log: entry}, g).Run()
}

func closeLogger(log logrus.FieldLogger, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.WithError(err).Warn("close log file")
	}
}
