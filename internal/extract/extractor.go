// Package extract pulls candidate opportunity postings out of institutional
// web pages using a keyword heuristic over anchor tags.
package extract

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"intern_scout/internal/domain"
	"intern_scout/internal/institute"
	"intern_scout/internal/source"
)

// Anchors shorter than this are icon/navigation noise.
const defaultMinTitleLen = 8

// rawDeadline marks candidates whose deadline lives in a linked document.
// It is deliberately unparseable so enrichment reports "Check PDF".
const rawDeadline = "unknown"

var positiveKeywords = []string{
	"intern",
	"internship",
	"summer",
	"project",
	"research",
	"application",
	"apply",
	"jrf",
	"srf",
}

var negativeKeywords = []string{
	"login", "email", "contact", "privacy",
	"committee", "report", "evaluation",
	"certificate", "guidelines", "form",
	"menu", "footer",
}

// Config holds extractor configuration.
type Config struct {
	Timeout            time.Duration
	InsecureSkipVerify bool
	MinTitleLen        int
}

// Extractor fetches one source's HTML and emits candidate postings.
type Extractor struct {
	httpClient  *http.Client
	directory   *institute.Directory
	minTitleLen int
	logger      *slog.Logger
}

// New creates an extractor. InsecureSkipVerify exists because several
// institutional sites serve expired or self-signed certificates.
func New(cfg Config, directory *institute.Directory, logger *slog.Logger) *Extractor {
	if cfg.Timeout == 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.MinTitleLen == 0 {
		cfg.MinTitleLen = defaultMinTitleLen
	}

	transport := &http.Transport{}
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Extractor{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		directory:   directory,
		minTitleLen: cfg.MinTitleLen,
		logger:      logger.With("component", "extractor"),
	}
}

// Extract fetches the source page and returns candidate postings. A failed
// fetch returns an error and zero candidates; heuristic misses are silent.
func (e *Extractor) Extract(ctx context.Context, src source.Descriptor) ([]domain.Posting, error) {
	doc, err := e.fetch(ctx, src.URL)
	if err != nil {
		return nil, err
	}
	return e.Parse(src, doc), nil
}

func (e *Extractor) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	return doc, nil
}

// Parse applies the anchor heuristic to an already-fetched document.
// Duplicate links on the same page are not deduplicated here; the store's
// link uniqueness handles that.
func (e *Extractor) Parse(src source.Descriptor, doc *goquery.Document) []domain.Posting {
	base, err := url.Parse(src.URL)
	if err != nil {
		e.logger.Warn("invalid source url", "url", src.URL, "error", err)
		return nil
	}

	defaultEmail := e.directory.Lookup(src.Institute).Email
	today := time.Now()

	var candidates []domain.Posting
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		title := strings.TrimSpace(a.Text())
		href, _ := a.Attr("href")
		if title == "" || len(title) < e.minTitleLen {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		link := base.ResolveReference(ref).String()

		haystack := strings.ToLower(title + " " + link)
		for _, nk := range negativeKeywords {
			if strings.Contains(haystack, nk) {
				return
			}
		}

		accepted := false
		for _, pk := range positiveKeywords {
			if strings.Contains(haystack, pk) {
				accepted = true
				break
			}
		}
		if !accepted {
			return
		}

		deadline := rawDeadline
		email := defaultEmail
		candidates = append(candidates, domain.Posting{
			InstituteCode: src.Institute,
			Title:         title,
			Skills:        "",
			Deadline:      &deadline,
			Link:          link,
			Email:         &email,
			PostedOn:      today,
		})
	})

	e.logger.Debug("extracted candidates",
		"source", src.URL,
		"count", len(candidates),
	)

	return candidates
}
