package parser

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		if inferred := inferFreeTextIntent(ctx, intent.Raw, intent.Normalised); inferred != nil {
			return *inferred
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt: fmt.Sprintf("I couldn't map that to a command. Try %s.", strings.Join(p.registry.Canonicals(), ", ")),
		}
		return intent
	}

	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Did you mean:",
			Options: []Intent{
				verbIntent(raw, cmdMatch.Canonical, cmdMatch.Score),
				verbIntent(raw, alternates[0].Canonical, alternates[0].Score),
			},
		}
		return intent
	}

	intent.Verb = cmdMatch.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(cmdMatch.Score)

	argsTokens := tokens[min(cmdMatch.Consumed, len(tokens)):]
	argsTokens, intent.Quantity = splitQuantity(argsTokens)

	def, _ := p.registry.command(intent.Verb)
	resolved, clarify, argScore := resolveArgs(ctx, def, argsTokens)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = resolved
	if len(argsTokens) > 0 {
		intent.Confidence = clampScore((intent.Confidence * 0.75) + (argScore * 0.25))
	}

	if len(intent.Args) < def.MinArgs {
		if options := buildEntityOptions(ctx, def.Canonical, 5); len(options) > 0 {
			intent.Clarify = &ClarifyQuestion{
				Prompt:  fmt.Sprintf("What should I %s?", def.Canonical),
				Options: options,
			}
			intent.Confidence = 0.46
			return intent
		}
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("There is nothing to %s.", def.Canonical)}
		intent.Confidence = 0.42
		return intent
	}

	if len(intent.Args) > def.MaxArgs {
		intent.Args = append([]string(nil), intent.Args[:def.MaxArgs]...)
		intent.Confidence = clampScore(intent.Confidence - 0.05)
	}

	if intent.Confidence < 0.52 {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that parse. Please rephrase."}
	}
	return intent
}

func verbIntent(raw, verb string, confidence float64) Intent {
	return Intent{
		Raw:        raw,
		Normalised: verb,
		Kind:       commandKind(verb),
		Verb:       verb,
		Confidence: confidence,
	}
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "inventory", "stats":
		return Query
	default:
		return Command
	}
}

func splitQuantity(tokens []string) ([]string, *Quantity) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(tokens))
	var q *Quantity
	for _, token := range tokens {
		if q == nil {
			if candidate := parseQuantityToken(token); candidate != nil {
				q = candidate
				continue
			}
		}
		if isFiller(token) {
			continue
		}
		out = append(out, token)
	}
	return out, q
}

// resolveArgs treats all remaining tokens as one item name, since every item
// verb takes a single target.
func resolveArgs(ctx ParseContext, def CommandDef, args []string) ([]string, *ClarifyQuestion, float64) {
	if len(args) == 0 {
		return nil, nil, 0.9
	}
	if !expectsEntity(def.Canonical) {
		return args, nil, 0.88
	}

	if len(args) == 1 && isPronoun(args[0]) {
		if strings.TrimSpace(ctx.LastEntity) == "" {
			return nil, &ClarifyQuestion{Prompt: "What does that refer to?"}, 0.4
		}
		return []string{normaliseInput(ctx.LastEntity)}, nil, 0.82
	}

	joined := strings.Join(args, " ")
	entity, confidence, tie := resolveEntity(joined, ctx, def.Canonical)
	if tie && len(entity) >= 2 {
		options := make([]Intent, 0, 2)
		for idx := range 2 {
			options = append(options, Intent{
				Kind:       commandKind(def.Canonical),
				Verb:       def.Canonical,
				Args:       []string{entity[idx]},
				Confidence: confidence - float64(idx)*0.01,
			})
		}
		return nil, &ClarifyQuestion{
			Prompt:  fmt.Sprintf("Which one should I %s?", def.Canonical),
			Options: options,
		}, 0.52
	}
	if len(entity) == 1 {
		return entity, nil, confidence
	}
	return []string{joined}, nil, 0.7
}

func expectsEntity(verb string) bool {
	switch verb {
	case "take", "drop":
		return true
	default:
		return false
	}
}

func resolveEntity(token string, ctx ParseContext, verb string) ([]string, float64, bool) {
	n := normaliseInput(token)
	if n == "" {
		return nil, 0, false
	}
	near := normaliseAll(ctx.Nearby)
	inv := normaliseAll(ctx.Inventory)

	var nearBoost, invBoost []string
	switch verb {
	case "take":
		nearBoost = near
	case "drop":
		invBoost = inv
	}
	return bestMatches(n, mergeUnique(near, inv), nearBoost, invBoost)
}

func bestMatches(token string, all []string, nearbyBoost []string, inventoryBoost []string) ([]string, float64, bool) {
	if len(all) == 0 {
		return nil, 0, false
	}
	type scored struct {
		val   string
		score float64
	}

	squashed := strings.ReplaceAll(token, " ", "")
	results := make([]scored, 0, len(all))
	for _, cand := range all {
		score := 0.0
		switch {
		case token == cand || squashed == cand:
			score = 1.0
		case len(token) >= 2 && strings.HasPrefix(cand, token):
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(squashed, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		if slices.Contains(nearbyBoost, cand) {
			score += 0.08
		}
		if slices.Contains(inventoryBoost, cand) {
			score += 0.08
		}
		results = append(results, scored{val: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	slices.SortStableFunc(results, func(a, b scored) int {
		if a.score != b.score {
			return cmp.Compare(b.score, a.score)
		}
		return cmp.Compare(a.val, b.val)
	})

	best := results[0]
	if len(results) > 1 && (best.score-results[1].score) < 0.05 && results[1].score > 0.6 {
		return []string{best.val, results[1].val}, best.score, true
	}
	return []string{best.val}, best.score, false
}

func buildEntityOptions(ctx ParseContext, verb string, maxOptions int) []Intent {
	pool := ctx.Inventory
	if verb == "take" {
		pool = ctx.Nearby
	}
	options := make([]Intent, 0, maxOptions)
	for _, entity := range normaliseAll(pool) {
		options = append(options, Intent{
			Kind:       commandKind(verb),
			Verb:       verb,
			Args:       []string{entity},
			Confidence: 0.88,
		})
		if len(options) >= maxOptions {
			break
		}
	}
	return options
}

func inferFreeTextIntent(ctx ParseContext, raw string, normalised string) *Intent {
	makeIntent := func(kind IntentKind, verb string, args []string, confidence float64) *Intent {
		return &Intent{
			Raw:        raw,
			Normalised: normalised,
			Kind:       kind,
			Verb:       verb,
			Args:       args,
			Confidence: clampScore(confidence),
		}
	}

	if containsAnyPhrase(normalised, "what do i have", "what am i carrying", "what have i got", "my inventory", "open bag") {
		return makeIntent(Query, "inventory", nil, 0.92)
	}
	if containsAnyPhrase(normalised, "how am i", "my stats", "my health", "how much gold") {
		return makeIntent(Query, "stats", nil, 0.88)
	}
	if containsAnyPhrase(normalised, "what is here", "whats here", "what s here", "look around") {
		return makeIntent(Query, "inventory", nil, 0.8)
	}

	tokens := tokenise(normalised)
	for i, token := range tokens {
		if token != "want" && token != "need" {
			continue
		}
		rest := strings.Join(dropFillers(tokens[i+1:]), " ")
		if rest == "" {
			break
		}
		if m, confidence, tie := resolveEntity(rest, ctx, "take"); len(m) == 1 && !tie {
			return makeIntent(Command, "take", m, confidence-0.1)
		}
		break
	}
	return nil
}

func dropFillers(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if isFiller(t) || t == "a" || t == "an" || t == "to" || t == "take" {
			continue
		}
		out = append(out, t)
	}
	return out
}

func containsAnyPhrase(value string, phrases ...string) bool {
	for _, phrase := range phrases {
		p := normaliseInput(phrase)
		if p != "" && strings.Contains(" "+value+" ", " "+p+" ") {
			return true
		}
	}
	return false
}

func normaliseAll(list []string) []string {
	return mergeUnique(list, nil)
}

func mergeUnique(a, b []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(a)+len(b))
	for _, v := range slices.Concat(a, b) {
		n := normaliseInput(v)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func clampScore(v float64) float64 {
	return max(0, min(1, v))
}

// IntentToCommandString renders an intent as the canonical command text the
// game understands, e.g. "drop arrow 2".
func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	args := make([]string, 0, len(intent.Args)+1)
	for _, arg := range intent.Args {
		if n := strings.ReplaceAll(normaliseInput(arg), " ", ""); n != "" {
			args = append(args, n)
		}
	}
	if intent.Quantity != nil && intent.Quantity.Raw != "" {
		args = append(args, normaliseInput(intent.Quantity.Raw))
	}
	if len(args) == 0 {
		return verb
	}
	return verb + " " + strings.Join(args, " ")
}
