// Package crawl runs the write path: registry sources through extraction
// into the posting store.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"intern_scout/internal/config"
	"intern_scout/internal/domain"
	"intern_scout/internal/source"
)

// Service crawls the source registry with a bounded worker pool and funnels
// every candidate through the store's insert-or-ignore contract.
type Service struct {
	sources    []source.Descriptor
	extractor  Extractor
	postings   PostingStore
	crawlState CrawlStateStore
	publisher  Publisher
	logger     *slog.Logger
	config     config.CrawlerConfig
}

func NewService(
	sources []source.Descriptor,
	extractor Extractor,
	postings PostingStore,
	crawlState CrawlStateStore,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.CrawlerConfig,
) *Service {
	return &Service{
		sources:    sources,
		extractor:  extractor,
		postings:   postings,
		crawlState: crawlState,
		publisher:  publisher,
		logger:     logger.With("component", "crawl"),
		config:     cfg,
	}
}

// sourceResult is one worker's outcome for one source.
type sourceResult struct {
	failed     bool
	found      int
	created    int
	duplicates int
	published  int
	errors     int
}

// Run executes one crawl over the whole registry. Per-source failures are
// counted, never fatal; only crawl-state persistence can return an error.
func (s *Service) Run(ctx context.Context) (*domain.CrawlStats, error) {
	startTime := time.Now()
	s.logger.Info("starting crawl",
		"sources", len(s.sources),
		"workers", s.config.Workers,
		"cooldown", s.config.Cooldown,
	)

	jobs := make(chan source.Descriptor)
	results := make(chan sourceResult, len(s.sources))

	var wg sync.WaitGroup
	for i := 0; i < s.config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.worker(ctx, jobs, results)
		}()
	}

	for _, src := range s.sources {
		select {
		case <-ctx.Done():
		case jobs <- src:
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	stats := &domain.CrawlStats{Sources: len(s.sources)}
	for r := range results {
		if r.failed {
			stats.Failed++
		}
		stats.Found += r.found
		stats.New += r.created
		stats.Duplicates += r.duplicates
		stats.Published += r.published
		stats.Errors += r.errors
	}

	if err := s.updateCrawlState(ctx, stats); err != nil {
		return stats, fmt.Errorf("update crawl state: %w", err)
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("crawl completed",
		"found", stats.Found,
		"new", stats.New,
		"duplicates", stats.Duplicates,
		"failed_sources", stats.Failed,
		"errors", stats.Errors,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

// worker drains the job channel, pausing for the cooldown between its own
// successive fetches. The cooldown is politeness toward third-party servers,
// applied per worker rather than globally.
func (s *Service) worker(ctx context.Context, jobs <-chan source.Descriptor, results chan<- sourceResult) {
	first := true
	for src := range jobs {
		if !first {
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.config.Cooldown):
			}
		}
		first = false

		results <- s.crawlSource(ctx, src)
	}
}

func (s *Service) crawlSource(ctx context.Context, src source.Descriptor) sourceResult {
	candidates, err := s.extractor.Extract(ctx, src)
	if err != nil {
		s.logger.Warn("source fetch failed",
			"url", src.URL,
			"institute", src.Institute,
			"error", err,
		)
		return sourceResult{failed: true}
	}

	result := sourceResult{found: len(candidates)}
	for i := range candidates {
		candidate := &candidates[i]

		created, err := s.postings.Insert(ctx, candidate)
		if err != nil {
			s.logger.Error("insert failed", "link", candidate.Link, "error", err)
			result.errors++
			continue
		}
		if !created {
			result.duplicates++
			continue
		}
		result.created++

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, candidate); err != nil {
				s.logger.Warn("publish failed", "link", candidate.Link, "error", err)
				result.errors++
			} else {
				result.published++
			}
		}
	}

	s.logger.Debug("source crawled",
		"url", src.URL,
		"found", result.found,
		"new", result.created,
	)

	return result
}

func (s *Service) updateCrawlState(ctx context.Context, stats *domain.CrawlStats) error {
	state, err := s.crawlState.Get(ctx)
	if err != nil {
		return err
	}

	state.LastCrawledAt = time.Now()
	state.TotalInserted += int64(stats.New)

	return s.crawlState.Update(ctx, state)
}
