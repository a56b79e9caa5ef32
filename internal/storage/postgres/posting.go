package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/jmoiron/sqlx"

	"intern_scout/internal/domain"
)

// PostingStore is the repository for the postings table. Insert is
// insert-or-ignore on the unique link; ListAll sweeps expired rows first.
type PostingStore struct {
	db *sqlx.DB
}

func NewPostingStore(db *sqlx.DB) *PostingStore {
	return &PostingStore{db: db}
}

// Insert creates a posting unless its link already exists. Returns whether a
// new row was created; a link collision is not an error.
func (s *PostingStore) Insert(ctx context.Context, p *domain.Posting) (bool, error) {
	query := `
		INSERT INTO postings (
			institute_code, title, skills, deadline, deadline_date,
			link, email, posted_on
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (link) DO NOTHING`

	res, err := s.db.ExecContext(ctx, query,
		p.InstituteCode,
		p.Title,
		p.Skills,
		p.Deadline,
		deadlineDate(p.Deadline),
		p.Link,
		p.Email,
		p.PostedOn,
	)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListAll deletes postings whose deadline has passed, then returns the
// remaining rows in insertion order.
func (s *PostingStore) ListAll(ctx context.Context) ([]domain.Posting, error) {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM postings WHERE deadline_date IS NOT NULL AND deadline_date < CURRENT_DATE")
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, institute_code, title, skills, deadline, link, email, posted_on
		FROM postings
		ORDER BY id`

	var postings []domain.Posting
	if err := s.db.SelectContext(ctx, &postings, query); err != nil {
		return nil, err
	}
	return postings, nil
}

// Search returns up to limit postings whose title, skills or institute code
// contains term, case-insensitively.
func (s *PostingStore) Search(ctx context.Context, term string, limit int) ([]domain.Posting, error) {
	query := `
		SELECT id, institute_code, title, skills, deadline, link, email, posted_on
		FROM postings
		WHERE title ILIKE $1 OR skills ILIKE $1 OR institute_code ILIKE $1
		ORDER BY id
		LIMIT $2`

	var postings []domain.Posting
	err := s.db.SelectContext(ctx, &postings, query, "%"+term+"%", limit)
	if err != nil {
		return nil, err
	}
	return postings, nil
}

// deadlineDate normalizes a raw deadline to a calendar date for the expiry
// sweep. Sentinels and unparseable text map to nil and are never swept.
func deadlineDate(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*raw)
	switch strings.ToLower(trimmed) {
	case "", "none", "nan", "n/a":
		return nil
	}

	parsed, err := dateparse.ParseAny(trimmed)
	if err != nil {
		return nil
	}
	day := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	return &day
}
