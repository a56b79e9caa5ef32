package api

import (
	"net/http"
	"strings"

	"intern_scout/internal/domain"
	"intern_scout/internal/match"
)

// resumeMatchLimit caps the ranked matches returned for one resume.
const resumeMatchLimit = 10

type MatchResponse struct {
	Matches []domain.EnrichedPosting `json:"matches"`
}

// MatchResumeHandler ranks live postings against an uploaded resume.
// A missing file, an unreadable document or empty extracted text all degrade
// to an empty match list; only store failure is an error.
func (a *API) MatchResumeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	empty := MatchResponse{Matches: []domain.EnrichedPosting{}}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		a.writeJSON(w, http.StatusOK, empty)
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		a.writeJSON(w, http.StatusOK, empty)
		return
	}
	defer file.Close()

	text, err := a.parser.ExtractText(header.Filename, file)
	if err != nil {
		a.logger.Warn("resume extraction failed", "file", header.Filename, "error", err)
		a.writeJSON(w, http.StatusOK, empty)
		return
	}
	if strings.TrimSpace(text) == "" {
		a.writeJSON(w, http.StatusOK, empty)
		return
	}

	enriched, err := a.listEnriched(r.Context())
	if err != nil {
		a.storeError(w, err)
		return
	}

	matches := match.Rank(text, enriched, resumeMatchLimit)
	if matches == nil {
		matches = []domain.EnrichedPosting{}
	}

	a.writeJSON(w, http.StatusOK, MatchResponse{Matches: matches})
}
