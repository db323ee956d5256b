package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/appengine-ltd/dungeon-crawler/internal/config"
	"github.com/appengine-ltd/dungeon-crawler/internal/game"
)

// New builds the application logger. Output goes to cfg.File when set,
// otherwise to fallback. The returned close func releases the log file.
func New(cfg config.Log, fallback io.Writer) (*logrus.Logger, func() error, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(cfg.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	closeFn := func() error { return nil }
	out := fallback
	if out == nil {
		out = io.Discard
	}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}
	log.SetOutput(out)
	return log, closeFn, nil
}

// Applied logs each event drained by a game cycle at debug level.
func Applied(log logrus.FieldLogger, events []game.Event) {
	for _, e := range events {
		log.WithFields(logrus.Fields{
			"event": e.Kind.String(),
			"item":  e.Item.String(),
			"count": e.Count,
		}).Debug("event applied")
	}
}
