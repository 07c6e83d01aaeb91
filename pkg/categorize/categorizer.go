package categorize

import "strings"

// General is the fallback label for text that matches no topic keywords.
const General = "General"

type topic struct {
	name     string
	keywords []string
}

// topics is deliberately a slice, not a map: ties are broken by enumeration
// order (a later topic must strictly beat the current best), so the order
// here is part of the contract.
var topics = []topic{
	{"Technology", []string{"tech", "ai", "software", "computer", "digital", "cyber", "startup", "app"}},
	{"Business", []string{"market", "economy", "business", "finance", "stock", "company", "trade", "bank"}},
	{"Health", []string{"health", "medical", "disease", "hospital", "vaccine", "doctor", "patient"}},
	{"Sports", []string{"sport", "game", "team", "player", "match", "championship", "win", "score"}},
	{"Entertainment", []string{"movie", "music", "celebrity", "film", "actor", "show", "star"}},
	{"Science", []string{"science", "research", "study", "scientist", "discovery", "experiment"}},
	{"Environment", []string{"climate", "environment", "energy", "pollution", "weather", "carbon"}},
	{"Politics", []string{"election", "government", "president", "congress", "policy", "minister", "vote"}},
}

// Categories returns the closed label set in enumeration order, General last.
func Categories() []string {
	out := make([]string, 0, len(topics)+1)
	for _, t := range topics {
		out = append(out, t.name)
	}
	return append(out, General)
}

// Categorize assigns a topic label by keyword-overlap scoring: the input is
// lower-cased and each topic scores one point per keyword occurring anywhere
// in the text as a substring. The highest count wins; on a tie the earlier
// topic keeps the slot. Zero matches fall through to General.
func Categorize(text string) string {
	lower := strings.ToLower(text)

	best := General
	bestMatches := 0

	for _, t := range topics {
		matches := 0
		for _, kw := range t.keywords {
			if strings.Contains(lower, kw) {
				matches++
			}
		}
		if matches > bestMatches {
			bestMatches = matches
			best = t.name
		}
	}

	return best
}
