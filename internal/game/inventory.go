package game

import (
	"maps"
	"slices"

	"github.com/appengine-ltd/dungeon-crawler/internal/curmax"
)

// Stack is one inventory row: an item kind and how many of it.
type Stack struct {
	Item  Item  `json:"item"`
	Count uint8 `json:"count"`
}

// Inventory holds the carried items and the nearby pool they are picked up
// from. A held key always has a count above zero. Nearby never changes once
// built; picking up does not deplete it.
type Inventory struct {
	held   map[Item]uint8
	nearby map[Item]uint8
}

func NewInventory(held, nearby []Stack) Inventory {
	inv := Inventory{
		held:   make(map[Item]uint8, len(held)),
		nearby: make(map[Item]uint8, len(nearby)),
	}
	for _, s := range held {
		inv.AddItem(s.Item, s.Count)
	}
	for _, s := range nearby {
		inv.nearby[s.Item] = s.Count
	}
	return inv
}

// AddItem merges count into the held stack with saturating addition. A zero
// count for an item not yet held is ignored so no zero entry is created.
func (inv *Inventory) AddItem(item Item, count uint8) {
	if inv.held == nil {
		inv.held = make(map[Item]uint8)
	}
	old, ok := inv.held[item]
	if !ok {
		if count == 0 {
			return
		}
		inv.held[item] = count
		return
	}
	inv.held[item] = curmax.SaturatingAdd(old, count)
}

// DropItem removes one of item. Dropping something not held is a no-op.
func (inv *Inventory) DropItem(item Item) {
	count, ok := inv.held[item]
	if !ok {
		return
	}
	count = curmax.SaturatingSub(count, 1)
	if count == 0 {
		delete(inv.held, item)
		return
	}
	inv.held[item] = count
}

func (inv Inventory) HeldCount(item Item) (uint8, bool) {
	n, ok := inv.held[item]
	return n, ok
}

func (inv Inventory) NearbyCount(item Item) (uint8, bool) {
	n, ok := inv.nearby[item]
	return n, ok
}

func (inv Inventory) Held() []Stack {
	return sortedStacks(inv.held)
}

func (inv Inventory) Nearby() []Stack {
	return sortedStacks(inv.nearby)
}

func sortedStacks(counts map[Item]uint8) []Stack {
	keys := slices.Sorted(maps.Keys(counts))
	out := make([]Stack, 0, len(keys))
	for _, item := range keys {
		out = append(out, Stack{Item: item, Count: counts[item]})
	}
	return out
}
