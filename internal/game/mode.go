package game

import (
	"fmt"
	"strings"
)

// Mode selects which view the front end renders. The zero value is the
// inventory view.
type Mode uint8

const (
	ModeInventory Mode = iota
	ModeStats
)

// Modes lists the views in navigation order.
func Modes() []Mode {
	return []Mode{ModeStats, ModeInventory}
}

func (m Mode) String() string {
	switch m {
	case ModeStats:
		return "Stats"
	case ModeInventory:
		return "Inventory"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

func ParseMode(raw string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "stats":
		return ModeStats, nil
	case "inventory", "inv":
		return ModeInventory, nil
	default:
		return 0, fmt.Errorf("unknown mode: %q", raw)
	}
}
