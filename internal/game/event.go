package game

import "fmt"

type EventKind uint8

const (
	EventPickUp EventKind = iota + 1
	EventDrop
)

func (k EventKind) String() string {
	switch k {
	case EventPickUp:
		return "pick_up"
	case EventDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// Event is a user intent queued during a cycle and applied once by Update.
// Build it with PickUp or Drop; the zero value is not a valid event.
type Event struct {
	Kind  EventKind
	Item  Item
	Count uint8
}

func PickUp(item Item, count uint8) Event {
	return Event{Kind: EventPickUp, Item: item, Count: count}
}

func Drop(item Item) Event {
	return Event{Kind: EventDrop, Item: item}
}

func (e Event) String() string {
	switch e.Kind {
	case EventPickUp:
		return fmt.Sprintf("PickUp(%s, %d)", e.Item, e.Count)
	case EventDrop:
		return fmt.Sprintf("Drop(%s)", e.Item)
	default:
		return "Event(unknown)"
	}
}

func (e Event) apply(inv *Inventory) {
	switch e.Kind {
	case EventPickUp:
		inv.AddItem(e.Item, e.Count)
	case EventDrop:
		inv.DropItem(e.Item)
	}
}
