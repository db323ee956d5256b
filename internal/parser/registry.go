package parser

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

type commandPhrase struct {
	canonical string
	alias     string
	tokens    []string
}

type Registry struct {
	commands map[string]CommandDef
	phrases  []commandPhrase
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]CommandDef),
	}
}

func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	if c.HandlerKey == "" {
		c.HandlerKey = c.Canonical
	}
	r.commands[c.Canonical] = c

	for _, a := range append([]string{c.Canonical}, c.Aliases...) {
		n := normaliseInput(a)
		if n == "" {
			continue
		}
		r.phrases = append(r.phrases, commandPhrase{
			canonical: c.Canonical,
			alias:     n,
			tokens:    tokenise(n),
		})
	}
}

func (r *Registry) command(canonical string) (CommandDef, bool) {
	cmd, ok := r.commands[normaliseInput(canonical)]
	return cmd, ok
}

// Canonicals lists registered command names, sorted.
func (r *Registry) Canonicals() []string {
	out := make([]string, 0, len(r.commands))
	for name := range r.commands {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

type commandCandidate struct {
	Canonical string
	Alias     string
	Consumed  int
	Score     float64
	Source    string
}

// scorePhrase rates how well the leading tokens match one phrase. Exact and
// alias hits win outright; single-word prefixes come next; otherwise an edit
// distance within levenshteinLimit gives a fuzzy score.
func scorePhrase(tokens []string, in string, phrase commandPhrase) (commandCandidate, bool) {
	consumed := min(len(tokens), len(phrase.tokens))
	prefix := strings.Join(tokens[:consumed], " ")
	cand := commandCandidate{Canonical: phrase.canonical, Alias: phrase.alias}

	if consumed == len(phrase.tokens) && prefix == phrase.alias {
		cand.Consumed, cand.Score, cand.Source = consumed, 1.0, "exact"
		if phrase.alias != phrase.canonical {
			cand.Score, cand.Source = 0.97, "alias"
		}
		return cand, true
	}

	if len(phrase.tokens) == 1 && len(tokens[0]) >= 2 && strings.HasPrefix(phrase.alias, tokens[0]) {
		cand.Consumed, cand.Score, cand.Source = 1, 0.9, "prefix"
		return cand, true
	}

	cut, compare := consumed, prefix
	if len(phrase.tokens) > 1 && len(tokens) >= len(phrase.tokens) {
		cut = len(phrase.tokens)
		compare = strings.Join(tokens[:cut], " ")
	}
	if cut == 0 || len(compare) < 3 {
		return cand, false
	}
	dist := levenshtein.ComputeDistance(compare, phrase.alias)
	if dist > levenshteinLimit(len(phrase.alias)) {
		return cand, false
	}
	score := 0.72 - (0.08 * float64(dist))
	if strings.Contains(in, phrase.alias) {
		score += 0.04
	}
	if phrase.alias != phrase.canonical {
		score += 0.03
	}
	cand.Consumed, cand.Score, cand.Source = cut, score, "lev"
	return cand, true
}

func (r *Registry) matchCommand(tokens []string) (commandCandidate, []commandCandidate) {
	if len(tokens) == 0 {
		return commandCandidate{}, nil
	}
	in := strings.Join(tokens, " ")
	cands := make([]commandCandidate, 0, len(r.phrases))
	for _, phrase := range r.phrases {
		if len(phrase.tokens) == 0 {
			continue
		}
		if c, ok := scorePhrase(tokens, in, phrase); ok {
			cands = append(cands, c)
		}
	}
	if len(cands) == 0 {
		return commandCandidate{}, nil
	}

	slices.SortStableFunc(cands, func(a, b commandCandidate) int {
		if a.Score != b.Score {
			return cmp.Compare(b.Score, a.Score)
		}
		if a.Consumed != b.Consumed {
			return cmp.Compare(b.Consumed, a.Consumed)
		}
		return cmp.Compare(a.Canonical, b.Canonical)
	})

	best := cands[0]
	alts := make([]commandCandidate, 0, 4)
	seen := map[string]bool{best.Canonical: true}
	for _, c := range cands[1:] {
		if seen[c.Canonical] {
			continue
		}
		seen[c.Canonical] = true
		alts = append(alts, c)
		if len(alts) >= 4 {
			break
		}
	}
	return best, alts
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: "help", Aliases: []string{"h", "commands", "?"}, MinArgs: 0, MaxArgs: 0, HandlerKey: "help"},
		{Canonical: "inventory", Aliases: []string{"inv", "bag", "items", "my bag", "check bag"}, MinArgs: 0, MaxArgs: 0, HandlerKey: "inventory"},
		{Canonical: "stats", Aliases: []string{"status", "character", "char", "sheet"}, MinArgs: 0, MaxArgs: 0, HandlerKey: "stats"},
		{Canonical: "take", Aliases: []string{"get", "pickup", "pick up", "grab", "loot"}, MinArgs: 1, MaxArgs: 1, HandlerKey: "take"},
		{Canonical: "drop", Aliases: []string{"discard", "leave", "throw away"}, MinArgs: 1, MaxArgs: 1, HandlerKey: "drop"},
		{Canonical: "quit", Aliases: []string{"exit"}, MinArgs: 0, MaxArgs: 0, HandlerKey: "quit"},
	}
	for _, cmd := range commands {
		r.RegisterCommand(cmd)
	}
	return r
}
