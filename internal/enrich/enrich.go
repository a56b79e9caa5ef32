// Package enrich derives display and classification fields from stored
// postings. Pure transforms, no I/O.
package enrich

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"intern_scout/internal/domain"
	"intern_scout/internal/institute"
)

// adhocKeywords classify a posting as an ad-hoc project when any of them
// occurs as a substring of the lowercased title.
var adhocKeywords = []string{
	"jrf", "srf", "ra", "project assistant", "technical assistant",
	"scientist", "pa", "adhoc", "fellow",
}

// deadlineSentinels mean "no deadline recorded".
var deadlineSentinels = map[string]struct{}{
	"": {}, "none": {}, "nan": {}, "n/a": {},
}

// Enricher turns stored postings into enriched view records.
type Enricher struct {
	directory *institute.Directory
}

func New(directory *institute.Directory) *Enricher {
	return &Enricher{directory: directory}
}

// Enrich derives the display fields for one posting. Deterministic for a
// given posting and now.
func (e *Enricher) Enrich(p domain.Posting, now time.Time) domain.EnrichedPosting {
	entry := e.directory.Lookup(p.InstituteCode)

	email := entry.Email
	if p.Email != nil && *p.Email != "" {
		email = *p.Email
	}

	return domain.EnrichedPosting{
		Posting:         p,
		FullName:        entry.Full,
		CityName:        entry.City,
		OpportunityType: classify(p.Title),
		DeadlineStatus:  DeadlineStatus(p.Deadline, now),
		ResolvedEmail:   email,
	}
}

// EnrichAll enriches a slice, preserving order.
func (e *Enricher) EnrichAll(postings []domain.Posting, now time.Time) []domain.EnrichedPosting {
	enriched := make([]domain.EnrichedPosting, len(postings))
	for i, p := range postings {
		enriched[i] = e.Enrich(p, now)
	}
	return enriched
}

func classify(title string) domain.OpportunityType {
	lower := strings.ToLower(title)
	for _, k := range adhocKeywords {
		if strings.Contains(lower, k) {
			return domain.TypeAdhocProject
		}
	}
	return domain.TypeResearchInternship
}

// DeadlineStatus interprets a raw deadline against now. Missing or sentinel
// values are "N/A", parseable dates report the remaining days, and anything
// else defers to the linked document.
func DeadlineStatus(raw *string, now time.Time) string {
	if raw == nil {
		return domain.StatusNA
	}
	trimmed := strings.TrimSpace(*raw)
	if _, ok := deadlineSentinels[strings.ToLower(trimmed)]; ok {
		return domain.StatusNA
	}

	deadline, err := dateparse.ParseAny(trimmed)
	if err != nil {
		return domain.StatusCheckPDF
	}

	diff := daysBetween(now, deadline)
	if diff == 0 {
		return domain.StatusClosingToday
	}
	return fmt.Sprintf("%d days left", diff)
}

// daysBetween counts calendar days from a to b, both truncated to midnight.
func daysBetween(a, b time.Time) int {
	aDay := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bDay := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bDay.Sub(aDay).Hours() / 24)
}
