// Package match scores postings against free text by token overlap.
package match

import (
	"sort"
	"strings"

	"intern_scout/internal/domain"
)

// minTokenLen excludes stop-word sized tokens from scoring.
const minTokenLen = 3

// Score counts the distinct tokens of the posting's searchable content
// (title plus skills, commas collapsed) longer than two characters that also
// appear in referenceText. Repeated content tokens count once.
func Score(referenceText string, p domain.Posting) int {
	reference := strings.ToLower(referenceText)
	content := strings.ToLower(p.Title + " " + p.Skills)
	content = strings.ReplaceAll(content, ",", " ")

	seen := make(map[string]struct{})
	score := 0
	for _, token := range strings.Fields(content) {
		if len(token) < minTokenLen {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		if strings.Contains(reference, token) {
			score++
		}
	}
	return score
}

// Rank scores each enriched posting against referenceText and returns the
// positive scorers ordered by descending score, capped at limit. Ties keep
// the input order.
func Rank(referenceText string, postings []domain.EnrichedPosting, limit int) []domain.EnrichedPosting {
	var matches []domain.EnrichedPosting
	for _, p := range postings {
		score := Score(referenceText, p.Posting)
		if score == 0 {
			continue
		}
		p.MatchScore = score
		matches = append(matches, p)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
