package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"intern_scout/internal/domain"
)

// CrawlStateStore tracks the last crawl run and the cumulative insert count.
// Single-row table; id is always 1.
type CrawlStateStore struct {
	db *sqlx.DB
}

func NewCrawlStateStore(db *sqlx.DB) *CrawlStateStore {
	return &CrawlStateStore{db: db}
}

func (s *CrawlStateStore) Get(ctx context.Context) (*domain.CrawlState, error) {
	var state domain.CrawlState
	query := `SELECT id, last_crawled_at, total_inserted FROM crawl_state WHERE id = 1`

	err := s.db.GetContext(ctx, &state, query)
	if err == sql.ErrNoRows {
		return &domain.CrawlState{ID: 1, LastCrawledAt: time.Time{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *CrawlStateStore) Update(ctx context.Context, state *domain.CrawlState) error {
	query := `
		INSERT INTO crawl_state (id, last_crawled_at, total_inserted)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			last_crawled_at = EXCLUDED.last_crawled_at,
			total_inserted = EXCLUDED.total_inserted`

	_, err := s.db.ExecContext(ctx, query, state.LastCrawledAt, state.TotalInserted)
	return err
}
