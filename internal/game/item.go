package game

import (
	"fmt"
	"strings"
)

// Item identifies an inventory object kind. Declaration order is the sort
// order used by every listing.
type Item uint8

const (
	Sword Item = iota
	Shield
	Bow
	Arrow
	Helm
	Chestpiece
)

var itemNames = [...]string{
	Sword:      "Sword",
	Shield:     "Shield",
	Bow:        "Bow",
	Arrow:      "Arrow",
	Helm:       "Helm",
	Chestpiece: "Chestpiece",
}

func AllItems() []Item {
	items := make([]Item, len(itemNames))
	for i := range itemNames {
		items[i] = Item(i)
	}
	return items
}

func (i Item) Valid() bool {
	return int(i) < len(itemNames)
}

func (i Item) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Item(%d)", uint8(i))
	}
	return itemNames[i]
}

func ParseItem(raw string) (Item, error) {
	name := strings.TrimSpace(raw)
	for i, n := range itemNames {
		if strings.EqualFold(n, name) {
			return Item(i), nil
		}
	}
	return 0, fmt.Errorf("unknown item: %q", raw)
}
