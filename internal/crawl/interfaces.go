package crawl

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"intern_scout/internal/domain"
	"intern_scout/internal/source"
)

// PostingStore is the serialized write path into the postings table.
type PostingStore interface {
	Insert(ctx context.Context, p *domain.Posting) (bool, error)
}

// CrawlStateStore persists crawl run bookkeeping.
type CrawlStateStore interface {
	Get(ctx context.Context) (*domain.CrawlState, error)
	Update(ctx context.Context, state *domain.CrawlState) error
}

// Extractor turns one source page into candidate postings.
type Extractor interface {
	Extract(ctx context.Context, src source.Descriptor) ([]domain.Posting, error)
}

// Publisher notifies downstream consumers of newly inserted postings.
type Publisher interface {
	Publish(ctx context.Context, p *domain.Posting) error
	Close() error
}
