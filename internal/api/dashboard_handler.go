package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/araddon/dateparse"

	"intern_scout/internal/domain"
)

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DashboardResponse struct {
	Total       int                      `json:"total"`
	InstCount   int                      `json:"inst_count"`
	CityCount   int                      `json:"city_count"`
	Trends      []WordCount              `json:"trends"`
	Urgent      []domain.EnrichedPosting `json:"urgent"`
	Leaderboard []NameCount              `json:"leaderboard"`
	CityStats   map[string]int           `json:"city_stats"`
}

// DashboardHandler summarizes the live posting set.
func (a *API) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	enriched, err := a.listEnriched(r.Context())
	if err != nil {
		a.storeError(w, err)
		return
	}

	resp := DashboardResponse{
		Total:       len(enriched),
		Trends:      []WordCount{},
		Urgent:      []domain.EnrichedPosting{},
		Leaderboard: []NameCount{},
		CityStats:   map[string]int{},
	}

	instCounts := make(map[string]int)
	for _, p := range enriched {
		instCounts[p.FullName]++
		resp.CityStats[p.CityName]++
	}
	resp.InstCount = len(instCounts)
	resp.CityCount = len(resp.CityStats)
	resp.Trends = titleTrends(enriched, 5)
	resp.Urgent = urgentPostings(enriched, 4)
	resp.Leaderboard = topCounts(instCounts, 5)

	a.writeJSON(w, http.StatusOK, resp)
}

// titleTrends counts words across all titles and keeps the top n.
func titleTrends(postings []domain.EnrichedPosting, n int) []WordCount {
	counts := make(map[string]int)
	for _, p := range postings {
		for _, word := range strings.Fields(strings.ToLower(p.Title)) {
			counts[word]++
		}
	}

	trends := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		trends = append(trends, WordCount{Word: word, Count: count})
	}
	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Count != trends[j].Count {
			return trends[i].Count > trends[j].Count
		}
		return trends[i].Word < trends[j].Word
	})

	if len(trends) > n {
		trends = trends[:n]
	}
	return trends
}

// urgentPostings returns the n postings closing soonest. Only postings with
// a concrete day count qualify; N/A and Check PDF are excluded.
func urgentPostings(postings []domain.EnrichedPosting, n int) []domain.EnrichedPosting {
	type dated struct {
		posting  domain.EnrichedPosting
		deadline int64
	}

	var candidates []dated
	for _, p := range postings {
		if p.DeadlineStatus == domain.StatusNA || p.DeadlineStatus == domain.StatusCheckPDF {
			continue
		}
		if p.Deadline == nil {
			continue
		}
		parsed, err := dateparse.ParseAny(strings.TrimSpace(*p.Deadline))
		if err != nil {
			continue
		}
		candidates = append(candidates, dated{posting: p, deadline: parsed.Unix()})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].deadline < candidates[j].deadline
	})

	urgent := make([]domain.EnrichedPosting, 0, n)
	for i, c := range candidates {
		if i == n {
			break
		}
		urgent = append(urgent, c.posting)
	}
	return urgent
}

// topCounts keeps the n largest entries, ties broken by name.
func topCounts(counts map[string]int, n int) []NameCount {
	ranked := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		ranked = append(ranked, NameCount{Name: name, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
