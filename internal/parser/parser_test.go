package parser

import "testing"

var dungeonCtx = ParseContext{
	Inventory: []string{"Sword", "Shield"},
	Nearby:    []string{"Sword", "Shield", "Bow", "Arrow", "Helm", "Chestpiece"},
}

func TestNormalisationTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  INVENTRY  ", want: "inventry"},
		{in: "pick-up   ARROW!!", want: "pick up arrow"},
		{in: "drop   Chest_piece", want: "drop chest piece"},
	}
	for _, tc := range tests {
		got := normaliseInput(tc.in)
		if got != tc.want {
			t.Fatalf("normaliseInput(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestAliasInvMapsToInventory(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "inv")
	if intent.Verb != "inventory" {
		t.Fatalf("expected inventory verb, got %q", intent.Verb)
	}
	if intent.Kind != Query {
		t.Fatalf("expected query kind, got %v", intent.Kind)
	}
	if intent.Clarify != nil {
		t.Fatalf("did not expect clarify: %+v", intent.Clarify)
	}
}

func TestTypoInventryMapsToInventory(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "inventry")
	if intent.Verb != "inventory" {
		t.Fatalf("expected inventory verb, got %q", intent.Verb)
	}
	if intent.Confidence < 0.6 {
		t.Fatalf("expected decent confidence for typo correction, got %.2f", intent.Confidence)
	}
}

func TestPickUpResolvesTypoAgainstNearby(t *testing.T) {
	p := New()
	intent := p.Parse(dungeonCtx, "pick up arow")
	if intent.Verb != "take" {
		t.Fatalf("expected take verb, got %q", intent.Verb)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "arrow" {
		t.Fatalf("expected arrow, got %+v", intent.Args)
	}
	if got := IntentToCommandString(intent); got != "take arrow" {
		t.Fatalf("expected canonical take arrow, got %q", got)
	}
}

func TestDropWithQuantity(t *testing.T) {
	p := New()
	ctx := ParseContext{Inventory: []string{"Arrow"}}
	intent := p.Parse(ctx, "drop 2 arrows")
	if intent.Clarify != nil {
		t.Fatalf("unexpected clarify: %+v", intent.Clarify)
	}
	if got := IntentToCommandString(intent); got != "drop arrow 2" {
		t.Fatalf("expected drop arrow 2, got %q", got)
	}

	intent = p.Parse(ctx, "discard all the arrows")
	if got := IntentToCommandString(intent); got != "drop arrow all" {
		t.Fatalf("expected drop arrow all, got %q", got)
	}
}

func TestMultiWordItemIsSquashed(t *testing.T) {
	p := New()
	intent := p.Parse(dungeonCtx, "grab chest piece")
	if got := IntentToCommandString(intent); got != "take chestpiece" {
		t.Fatalf("expected take chestpiece, got %q (%+v)", got, intent)
	}
}

func TestMissingTargetReturnsClarify(t *testing.T) {
	p := New()
	intent := p.Parse(dungeonCtx, "take")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify for target-less take")
	}
	if len(intent.Clarify.Options) < 2 {
		t.Fatalf("expected at least 2 clarify options, got %d", len(intent.Clarify.Options))
	}
	if intent.Clarify.Options[0].Args[0] != "sword" {
		t.Fatalf("expected nearby options in listing order, got %+v", intent.Clarify.Options[0])
	}
}

func TestTiedTargetsReturnClarify(t *testing.T) {
	p := New()
	ctx := ParseContext{Nearby: []string{"stick", "stock"}}
	intent := p.Parse(ctx, "take stck")
	if intent.Clarify == nil || len(intent.Clarify.Options) != 2 {
		t.Fatalf("expected two-way clarify, got %+v", intent.Clarify)
	}
}

func TestPronounResolvesLastEntity(t *testing.T) {
	p := New()
	ctx := dungeonCtx
	ctx.LastEntity = "Shield"
	intent := p.Parse(ctx, "drop it")
	if intent.Clarify != nil {
		t.Fatalf("unexpected clarify: %+v", intent.Clarify)
	}
	if len(intent.Args) == 0 || intent.Args[0] != "shield" {
		t.Fatalf("expected pronoun to resolve to shield, got %+v", intent.Args)
	}

	intent = p.Parse(dungeonCtx, "drop it")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify without a last entity")
	}
}

func TestFreeTextInference(t *testing.T) {
	p := New()
	if intent := p.Parse(dungeonCtx, "what do i have"); intent.Verb != "inventory" {
		t.Fatalf("expected inventory inference, got %q", intent.Verb)
	}
	if intent := p.Parse(dungeonCtx, "how am i doing"); intent.Verb != "stats" {
		t.Fatalf("expected stats inference, got %q", intent.Verb)
	}
	intent := p.Parse(dungeonCtx, "i want the bow")
	if intent.Verb != "take" || len(intent.Args) != 1 || intent.Args[0] != "bow" {
		t.Fatalf("expected take bow, got %+v", intent)
	}
}

func TestGibberishAsksToRephrase(t *testing.T) {
	p := New()
	intent := p.Parse(dungeonCtx, "zzzz qqqq")
	if intent.Kind != Unknown || intent.Clarify == nil {
		t.Fatalf("expected unknown intent with clarify, got %+v", intent)
	}
}
