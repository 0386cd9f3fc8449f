package match

import (
	"cmp"
	"slices"
)

// MinSuggestionScore is the lowest normalized similarity Suggest reports.
const MinSuggestionScore = 0.5

// Suggest returns up to limit candidates resembling name, best first.
// Names are compared after NormalizeIdent; ties keep candidate order.
// An exact match of name itself is not suggested.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	norm := NormalizeIdent(name)

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Similarity(norm, NormalizeIdent(c))
		if score >= MinSuggestionScore {
			ranked = append(ranked, scored{name: c, score: score})
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}
