package game

import (
	"fmt"
	"strconv"
	"strings"
)

// CommandResult reports what a text command did. Handled is false when the
// verb is not a game command at all.
type CommandResult struct {
	Handled  bool
	Message  string
	Queued   []Event
	Mode     Mode
	Switched bool
}

const commandHelp = "Commands: take <item> [all], drop <item> [n|all], stats, inventory, help, quit."

// ExecuteCommand runs a canonical command such as "take arrow" or
// "drop sword 2". Item changes are only queued; the caller still runs Update.
func (g *Game) ExecuteCommand(raw string) CommandResult {
	fields := strings.Fields(strings.TrimSpace(strings.ToLower(raw)))
	if len(fields) == 0 {
		return CommandResult{Handled: false}
	}

	switch fields[0] {
	case "help", "commands":
		return CommandResult{Handled: true, Message: commandHelp}
	case "stats", "inventory":
		mode, _ := ParseMode(fields[0])
		g.SetMode(mode)
		return CommandResult{Handled: true, Message: fmt.Sprintf("Showing %s.", mode), Mode: mode, Switched: true}
	case "take":
		return g.executeTakeCommand(fields[1:])
	case "drop":
		return g.executeDropCommand(fields[1:])
	default:
		return CommandResult{Handled: false}
	}
}

func (g *Game) executeTakeCommand(args []string) CommandResult {
	if len(args) == 0 {
		return CommandResult{Handled: true, Message: "Usage: take <item>"}
	}
	item, err := ParseItem(args[0])
	if err != nil {
		return CommandResult{Handled: true, Message: fmt.Sprintf("There is no %s here.", args[0])}
	}
	// Picking up always moves the whole nearby stack.
	if len(args) > 1 && args[1] != "all" {
		return CommandResult{Handled: true, Message: fmt.Sprintf("Invalid amount: %s (take picks up the whole stack)", args[1])}
	}
	count, ok := g.NearbyCount(item)
	if !ok {
		return CommandResult{Handled: true, Message: fmt.Sprintf("There is no %s nearby.", item)}
	}
	e := PickUp(item, count)
	g.Enqueue(e)
	return CommandResult{
		Handled: true,
		Message: fmt.Sprintf("You pick up %s.", Stack{Item: item, Count: count}.Label()),
		Queued:  []Event{e},
	}
}

func (g *Game) executeDropCommand(args []string) CommandResult {
	if len(args) == 0 {
		return CommandResult{Handled: true, Message: "Usage: drop <item> [n|all]"}
	}
	item, err := ParseItem(args[0])
	if err != nil {
		return CommandResult{Handled: true, Message: fmt.Sprintf("You don't have any %s.", args[0])}
	}
	held, ok := g.HeldCount(item)
	if !ok {
		return CommandResult{Handled: true, Message: fmt.Sprintf("You don't have any %s.", item)}
	}

	n := 1
	if len(args) > 1 {
		switch args[1] {
		case "all":
			n = int(held)
		default:
			parsed, err := strconv.Atoi(args[1])
			if err != nil || parsed < 1 {
				return CommandResult{Handled: true, Message: fmt.Sprintf("Invalid amount: %s", args[1])}
			}
			n = min(parsed, int(held))
		}
	}

	queued := make([]Event, 0, n)
	for range n {
		queued = append(queued, Drop(item))
	}
	g.Enqueue(queued...)
	return CommandResult{
		Handled: true,
		Message: fmt.Sprintf("You drop %s.", Stack{Item: item, Count: uint8(n)}.Label()),
		Queued:  queued,
	}
}
