package game

// Game is the aggregate root for one character. The front end owns the only
// *Game and drives it once per frame: render from the accessors, Enqueue the
// events produced by input, then call Update.
type Game struct {
	mode    Mode
	stats   Stats
	inv     Inventory
	pending []Event
}

// New returns the starting state: full health and mana, a sword and shield
// in hand, and six kinds of item lying nearby.
func New() *Game {
	return &Game{
		mode:  ModeInventory,
		stats: startingStats(),
		inv: NewInventory(
			[]Stack{{Sword, 1}, {Shield, 1}},
			[]Stack{
				{Sword, 1},
				{Shield, 1},
				{Bow, 1},
				{Arrow, 5},
				{Helm, 1},
				{Chestpiece, 1},
			},
		),
	}
}

func (g *Game) Mode() Mode {
	return g.mode
}

func (g *Game) SetMode(m Mode) {
	g.mode = m
}

func (g *Game) Stats() Stats {
	return g.stats
}

func (g *Game) Held() []Stack {
	return g.inv.Held()
}

func (g *Game) Nearby() []Stack {
	return g.inv.Nearby()
}

func (g *Game) HeldCount(item Item) (uint8, bool) {
	return g.inv.HeldCount(item)
}

func (g *Game) NearbyCount(item Item) (uint8, bool) {
	return g.inv.NearbyCount(item)
}

// AddItem and DropItem mutate the inventory immediately, bypassing the queue.
func (g *Game) AddItem(item Item, count uint8) {
	g.inv.AddItem(item, count)
}

func (g *Game) DropItem(item Item) {
	g.inv.DropItem(item)
}

// Enqueue buffers events for the next Update. Nothing is applied until then,
// so listings read during the same frame stay stable.
func (g *Game) Enqueue(events ...Event) {
	g.pending = append(g.pending, events...)
}

func (g *Game) Pending() []Event {
	return append([]Event(nil), g.pending...)
}

// Update drains the queue in FIFO order and returns the events it applied.
func (g *Game) Update() []Event {
	if len(g.pending) == 0 {
		return nil
	}
	applied := g.pending
	g.pending = nil
	for _, e := range applied {
		e.apply(&g.inv)
	}
	return applied
}

// Cycle enqueues events and runs Update in one call.
func (g *Game) Cycle(events ...Event) []Event {
	g.Enqueue(events...)
	return g.Update()
}
