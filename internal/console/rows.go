package console

import (
	"fmt"

	"github.com/appengine-ltd/dungeon-crawler/internal/game"
)

// Row is one selectable line of the inventory view.
type Row struct {
	Held  bool
	Stack game.Stack
}

// Rows lists held stacks first, then nearby stacks, each in item order.
func Rows(g *game.Game) []Row {
	held := g.Held()
	nearby := g.Nearby()
	out := make([]Row, 0, len(held)+len(nearby))
	for _, s := range held {
		out = append(out, Row{Held: true, Stack: s})
	}
	for _, s := range nearby {
		out = append(out, Row{Stack: s})
	}
	return out
}

func RowAt(rows []Row, i int) (Row, bool) {
	if i < 0 || i >= len(rows) {
		return Row{}, false
	}
	return rows[i], true
}

// Action is the event a row produces: held rows drop one, nearby rows pick
// up the whole nearby stack.
func (r Row) Action() game.Event {
	if r.Held {
		return game.Drop(r.Stack.Item)
	}
	return game.PickUp(r.Stack.Item, r.Stack.Count)
}

func (r Row) ActionLabel() string {
	if r.Held {
		return "Drop"
	}
	return "Pick up"
}

func Describe(e game.Event) string {
	switch e.Kind {
	case game.EventDrop:
		return fmt.Sprintf("You drop %s.", game.Stack{Item: e.Item, Count: 1}.Label())
	case game.EventPickUp:
		return fmt.Sprintf("You pick up %s.", game.Stack{Item: e.Item, Count: e.Count}.Label())
	default:
		return e.String()
	}
}
