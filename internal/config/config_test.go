package config

import (
	"errors"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Frontend != FrontendGUI {
		t.Fatalf("expected gui frontend, got %q", cfg.Frontend)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" || cfg.Log.File != "" {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
	if cfg.Window.Width != 960 || cfg.Window.Height != 640 || cfg.Window.TargetFPS != 60 {
		t.Fatalf("unexpected window defaults %+v", cfg.Window)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DUNGEON_FRONTEND", " TUI ")
	t.Setenv("DUNGEON_LOG_LEVEL", "debug")
	t.Setenv("DUNGEON_LOG_FORMAT", "JSON")
	t.Setenv("DUNGEON_LOG_FILE", "/tmp/dungeon.log")
	t.Setenv("DUNGEON_WINDOW_WIDTH", "1280")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Frontend != FrontendTUI {
		t.Fatalf("expected tui frontend, got %q", cfg.Frontend)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" || cfg.Log.File != "/tmp/dungeon.log" {
		t.Fatalf("unexpected log config %+v", cfg.Log)
	}
	if cfg.Window.Width != 1280 {
		t.Fatalf("expected width 1280, got %d", cfg.Window.Width)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{key: "DUNGEON_FRONTEND", value: "web"},
		{key: "DUNGEON_LOG_FORMAT", value: "xml"},
		{key: "DUNGEON_LOG_LEVEL", value: "loud"},
		{key: "DUNGEON_WINDOW_HEIGHT", value: "0"},
		{key: "DUNGEON_TARGET_FPS", value: "-1"},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid for %s=%s, got %v", tc.key, tc.value, err)
			}
		})
	}
}

func TestLoadReportsParseErrors(t *testing.T) {
	t.Setenv("DUNGEON_WINDOW_WIDTH", "wide")
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error for non-numeric width")
	}
}
