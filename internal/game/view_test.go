package game

import (
	"slices"
	"testing"
)

func TestStatsLines(t *testing.T) {
	want := []string{
		"HP: 100/100",
		"Mana: 100/100",
		"Atk: 5",
		"Def: 0",
		"Gold: $0.00",
	}
	if got := New().Stats().Lines(); !slices.Equal(got, want) {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestFormatGoldGroupsThousands(t *testing.T) {
	if got := FormatGold(1234.5); got != "$1,234.50" {
		t.Fatalf("expected $1,234.50, got %q", got)
	}
}

func TestStackLabel(t *testing.T) {
	if got := (Stack{Item: Arrow, Count: 5}).Label(); got != "5 × Arrow" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestNamesFollowListings(t *testing.T) {
	g := New()
	if got := g.HeldNames(); !slices.Equal(got, []string{"Sword", "Shield"}) {
		t.Fatalf("unexpected held names %v", got)
	}
	if got := g.NearbyNames(); len(got) != 6 || got[5] != "Chestpiece" {
		t.Fatalf("unexpected nearby names %v", got)
	}
}
