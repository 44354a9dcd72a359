package match

import (
	"sort"
	"strings"
)

// MinScore is the lowest similarity Suggest accepts.
const MinScore = 0.5

// Candidate is a known name scored against the unknown one.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every known name against name, ignoring case, and returns
// them best first. Equal scores keep the order of known.
func Rank(name string, known []string) []Candidate {
	norm := strings.ToLower(name)

	candidates := make([]Candidate, 0, len(known))
	for _, k := range known {
		candidates = append(candidates, Candidate{
			Name:  k,
			Score: LevenshteinNormalized(norm, strings.ToLower(k)),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}

// Suggest returns the known name closest to name, if any scores at least
// MinScore.
func Suggest(name string, known []string) (string, bool) {
	ranked := Rank(name, known)
	if len(ranked) == 0 || ranked[0].Score < MinScore {
		return "", false
	}

	return ranked[0].Name, true
}
