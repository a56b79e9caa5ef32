package api

import (
	"net/http"
	"strings"

	"intern_scout/internal/domain"
)

// SearchResponse distinguishes "no filters submitted" from "filters matched
// nothing": both carry empty results, only the latter sets ShowResults.
type SearchResponse struct {
	Results     []domain.EnrichedPosting `json:"results"`
	ShowResults bool                     `json:"show_results"`
	Cities      []string                 `json:"cities"`
	Institutes  []string                 `json:"institutes"`
}

// SearchHandler filters the enriched posting set by city, institute and
// skills. Filters combine with AND; no filters means no results.
func (a *API) SearchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	city := strings.TrimSpace(r.URL.Query().Get("city"))
	inst := strings.TrimSpace(r.URL.Query().Get("institute"))
	skills := strings.TrimSpace(r.URL.Query().Get("skills"))

	resp := SearchResponse{
		Results:    []domain.EnrichedPosting{},
		Cities:     a.directory.Cities(),
		Institutes: a.directory.Institutes(),
	}

	if city == "" && inst == "" && skills == "" {
		a.writeJSON(w, http.StatusOK, resp)
		return
	}
	resp.ShowResults = true

	enriched, err := a.listEnriched(r.Context())
	if err != nil {
		a.storeError(w, err)
		return
	}

	skillsLower := strings.ToLower(skills)
	for _, p := range enriched {
		if city != "" && p.CityName != city {
			continue
		}
		if inst != "" && p.FullName != inst {
			continue
		}
		if skills != "" &&
			!strings.Contains(strings.ToLower(p.Title), skillsLower) &&
			!strings.Contains(strings.ToLower(p.Skills), skillsLower) {
			continue
		}
		resp.Results = append(resp.Results, p)
	}

	a.writeJSON(w, http.StatusOK, resp)
}
