package domain

import "time"

// Posting is one opportunity record as stored. Deadline keeps the raw
// representation from the source; display interpretation happens in enrich.
type Posting struct {
	ID            int64     `db:"id" json:"id"`
	InstituteCode string    `db:"institute_code" json:"institute_code"`
	Title         string    `db:"title" json:"title"`
	Skills        string    `db:"skills" json:"skills"`
	Deadline      *string   `db:"deadline" json:"deadline"`
	Link          string    `db:"link" json:"link"` // unique, the sole dedup key
	Email         *string   `db:"email" json:"email,omitempty"`
	PostedOn      time.Time `db:"posted_on" json:"posted_on"`
}

// OpportunityType classifies a posting by its title.
type OpportunityType string

const (
	TypeAdhocProject       OpportunityType = "Ad-hoc Project"
	TypeResearchInternship OpportunityType = "Research Internship"
)

// Deadline status forms. "N days left" is formatted, not a constant.
const (
	StatusNA           = "N/A"
	StatusCheckPDF     = "Check PDF"
	StatusClosingToday = "Closing Today"
)

// EnrichedPosting is a Posting plus derived display fields. Never persisted.
type EnrichedPosting struct {
	Posting
	FullName        string          `json:"full_name"`
	CityName        string          `json:"city_name"`
	OpportunityType OpportunityType `json:"opportunity_type"`
	DeadlineStatus  string          `json:"deadline_status"`
	ResolvedEmail   string          `json:"resolved_email"`
	MatchScore      int             `json:"match_score,omitempty"`
}

// CrawlState tracks cumulative crawl progress per run history.
type CrawlState struct {
	ID            int64     `db:"id"`
	LastCrawledAt time.Time `db:"last_crawled_at"`
	TotalInserted int64     `db:"total_inserted"`
}
