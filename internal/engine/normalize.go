package engine

import (
	"strings"
)

// Normalize maps a free-form wedding type to the canonical name stored in the
// snapshot. Resolution order, first hit wins: exact match, case-insensitive
// match, then fuzzy token/substring scoring with a tie-break that prefers the
// candidate with more color rules. Unmatched input is returned trimmed but
// otherwise unchanged; downstream lookups will simply miss.
func (s *Snapshot) Normalize(rawType string) string {
	trimmed := strings.TrimSpace(rawType)

	for _, name := range s.typeNames {
		if name == trimmed {
			return name
		}
	}

	folded := fold(trimmed)
	for _, name := range s.typeNames {
		if fold(name) == folded {
			return name
		}
	}

	inputWords := make(map[string]bool)
	for _, w := range strings.Fields(folded) {
		inputWords[w] = true
	}

	type scoredMatch struct {
		name  string
		score float64
	}
	var matches []scoredMatch
	var bestMatch string
	bestScore := 0.0

	for _, name := range s.typeNames {
		foldedName := fold(name)
		common := 0
		for _, w := range strings.Fields(foldedName) {
			if inputWords[w] {
				common++
			}
		}
		score := float64(common)
		// Substring containment in either direction is a strong signal.
		if folded != "" && (strings.Contains(foldedName, folded) || strings.Contains(folded, foldedName)) {
			score += 10
		}
		// Slight penalty for longer names so the shorter, more specific
		// candidate wins otherwise-equal scores.
		score -= float64(len(name)) / 100.0

		matches = append(matches, scoredMatch{name: name, score: score})
		if score > bestScore {
			bestScore = score
			bestMatch = name
		}
	}

	// Several candidates within 90% of the best: prefer the one with the
	// most color rules, since more rules means more complete data. This
	// re-rank can disagree with the length penalty above; the source order
	// of the two heuristics is deliberate and preserved.
	if len(matches) > 1 {
		var contenders []scoredMatch
		for _, m := range matches {
			if m.score >= bestScore*0.9 {
				contenders = append(contenders, m)
			}
		}
		if len(contenders) > 1 {
			bestMatch = ""
			maxRules := 0
			for _, m := range contenders {
				if count := s.RuleCount(m.name); count > maxRules {
					maxRules = count
					bestMatch = m.name
				}
			}
		}
	}

	if bestMatch != "" && bestScore > 0 {
		return bestMatch
	}
	return trimmed
}
