package game

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Lines renders the stats page rows in display order.
func (s Stats) Lines() []string {
	hpCur, hpMax := s.HP.Get()
	manaCur, manaMax := s.Mana.Get()
	return []string{
		fmt.Sprintf("HP: %d/%d", hpCur, hpMax),
		fmt.Sprintf("Mana: %d/%d", manaCur, manaMax),
		fmt.Sprintf("Atk: %d", s.Atk),
		fmt.Sprintf("Def: %d", s.Def),
		"Gold: " + FormatGold(s.Gold),
	}
}

// FormatGold renders gold with two decimals and thousands separators.
func FormatGold(gold float32) string {
	return printer.Sprintf("$%.2f", gold)
}

func (s Stack) Label() string {
	return fmt.Sprintf("%d × %s", s.Count, s.Item)
}

func itemNamesOf(stacks []Stack) []string {
	out := make([]string, 0, len(stacks))
	for _, s := range stacks {
		out = append(out, s.Item.String())
	}
	return out
}

// HeldNames and NearbyNames feed the command parser's entity resolution.
func (g *Game) HeldNames() []string {
	return itemNamesOf(g.Held())
}

func (g *Game) NearbyNames() []string {
	return itemNamesOf(g.Nearby())
}
