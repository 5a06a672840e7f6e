package match

import (
	"cmp"
	"slices"
	"strings"
)

// Suggestion is a name with its similarity to the query.
type Suggestion struct {
	Name  string
	Score float64
}

// minScore drops suggestions too far from the query to be useful.
const minScore = 0.5

// Rank returns up to limit names most similar to query, best first.
// Names containing the normalized query as a substring score at least
// as high as minScore. Duplicate names are reported once.
func Rank(query string, names []string, limit int) []Suggestion {
	if limit <= 0 {
		return nil
	}

	q := Normalize(query)
	seen := make(map[string]struct{}, len(names))

	var out []Suggestion

	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}

		seen[name] = struct{}{}

		n := Normalize(name)
		score := Similarity(q, n)

		if q != "" && strings.Contains(n, q) {
			score = max(score, minScore)
		}

		if score < minScore {
			continue
		}

		out = append(out, Suggestion{Name: name, Score: score})
	}

	slices.SortStableFunc(out, func(a, b Suggestion) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out
}
