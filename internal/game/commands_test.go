package game

import (
	"slices"
	"strings"
	"testing"
)

func TestCommandTakeQueuesNearbyCount(t *testing.T) {
	g := New()
	res := g.ExecuteCommand("take arrow")
	if !res.Handled {
		t.Fatalf("expected take to be handled")
	}
	if !slices.Equal(res.Queued, []Event{PickUp(Arrow, 5)}) {
		t.Fatalf("expected PickUp(Arrow, 5), got %v", res.Queued)
	}
	if _, ok := g.HeldCount(Arrow); ok {
		t.Fatalf("command must only queue, not apply")
	}
	g.Update()
	if n, _ := g.HeldCount(Arrow); n != 5 {
		t.Fatalf("expected 5 arrows after update, got %d", n)
	}
}

func TestCommandTakeRejectsUnknownAndMissing(t *testing.T) {
	g := New()
	res := g.ExecuteCommand("take dagger")
	if !res.Handled || len(res.Queued) != 0 {
		t.Fatalf("expected handled with nothing queued, got %+v", res)
	}
	if !strings.Contains(res.Message, "dagger") {
		t.Fatalf("expected message to name dagger, got %q", res.Message)
	}
	res = g.ExecuteCommand("take")
	if !strings.HasPrefix(res.Message, "Usage") {
		t.Fatalf("expected usage message, got %q", res.Message)
	}
}

func TestCommandTakeAmounts(t *testing.T) {
	tests := []struct {
		raw     string
		queued  []Event
		message string
	}{
		{raw: "take arrow 2", message: "Invalid amount: 2"},
		{raw: "take arrow 0", message: "Invalid amount: 0"},
		{raw: "take arrow some", message: "Invalid amount: some"},
		{raw: "take arrow all", queued: []Event{PickUp(Arrow, 5)}, message: "You pick up"},
	}
	for _, tc := range tests {
		g := New()
		res := g.ExecuteCommand(tc.raw)
		if !res.Handled {
			t.Fatalf("%q: expected handled", tc.raw)
		}
		if !slices.Equal(res.Queued, tc.queued) {
			t.Fatalf("%q: expected queued %v, got %v", tc.raw, tc.queued, res.Queued)
		}
		if !strings.Contains(res.Message, tc.message) {
			t.Fatalf("%q: expected message containing %q, got %q", tc.raw, tc.message, res.Message)
		}
		if got := g.Update(); len(got) != len(tc.queued) {
			t.Fatalf("%q: expected %d applied events, got %v", tc.raw, len(tc.queued), got)
		}
	}
}

func TestCommandDropAmounts(t *testing.T) {
	g := New()
	g.AddItem(Arrow, 5)

	res := g.ExecuteCommand("drop arrow 2")
	if len(res.Queued) != 2 {
		t.Fatalf("expected 2 drops queued, got %v", res.Queued)
	}
	g.Update()
	if n, _ := g.HeldCount(Arrow); n != 3 {
		t.Fatalf("expected 3 arrows, got %d", n)
	}

	res = g.ExecuteCommand("drop arrow all")
	if len(res.Queued) != 3 {
		t.Fatalf("expected 3 drops queued, got %v", res.Queued)
	}
	g.Update()
	if _, ok := g.HeldCount(Arrow); ok {
		t.Fatalf("expected arrows gone")
	}

	res = g.ExecuteCommand("drop sword 9")
	if len(res.Queued) != 1 {
		t.Fatalf("expected amount capped at held count, got %v", res.Queued)
	}
}

func TestCommandDropRejectsBadInput(t *testing.T) {
	g := New()
	if res := g.ExecuteCommand("drop bow"); len(res.Queued) != 0 || !strings.Contains(res.Message, "Bow") {
		t.Fatalf("expected not-held message, got %+v", res)
	}
	if res := g.ExecuteCommand("drop sword zero"); len(res.Queued) != 0 || !strings.Contains(res.Message, "Invalid amount") {
		t.Fatalf("expected invalid amount, got %+v", res)
	}
}

func TestCommandModeSwitch(t *testing.T) {
	g := New()
	res := g.ExecuteCommand("STATS")
	if !res.Switched || g.Mode() != ModeStats {
		t.Fatalf("expected switch to stats, got %+v mode=%v", res, g.Mode())
	}
	g.ExecuteCommand("inventory")
	if g.Mode() != ModeInventory {
		t.Fatalf("expected inventory mode")
	}
}

func TestCommandUnknownNotHandled(t *testing.T) {
	g := New()
	if res := g.ExecuteCommand("dance"); res.Handled {
		t.Fatalf("expected unknown command to be unhandled")
	}
	if res := g.ExecuteCommand("   "); res.Handled {
		t.Fatalf("expected blank command to be unhandled")
	}
	if res := g.ExecuteCommand("help"); !strings.Contains(res.Message, "take <item>") {
		t.Fatalf("expected help text, got %q", res.Message)
	}
}
