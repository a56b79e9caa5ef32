package domain

import "time"

// CrawlStats holds statistics about one crawl run over the source registry.
type CrawlStats struct {
	Sources    int
	Failed     int
	Found      int
	New        int
	Duplicates int
	Published  int
	Errors     int
	Duration   time.Duration
}
