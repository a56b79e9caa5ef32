// Package chat answers conversational queries with canned intent replies,
// falling back to a free-text posting search.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"intern_scout/internal/domain"
	"intern_scout/internal/institute"
)

// fallbackLimit caps the rows a free-text search reply enumerates.
const fallbackLimit = 4

// stopWords are stripped from a query before the free-text search.
var stopWords = map[string]struct{}{
	"find": {}, "show": {}, "me": {}, "jobs": {},
	"internships": {}, "in": {}, "at": {}, "for": {},
}

const unsureReply = "I'm not sure about that. Try asking <b>'Find Python'</b> or <b>'Show IITM'</b>."

// PostingSearcher is the store operation the fallback search needs.
type PostingSearcher interface {
	Search(ctx context.Context, term string, limit int) ([]domain.Posting, error)
}

// Responder handles one chat query at a time. Intent matching runs first;
// only when no pattern matches does the free-text fallback execute.
type Responder struct {
	table     IntentTable
	store     PostingSearcher
	directory *institute.Directory
	rng       *rand.Rand
	logger    *slog.Logger
}

// New creates a responder. The rng is injected so response selection is
// deterministic under test.
func New(
	table IntentTable,
	store PostingSearcher,
	directory *institute.Directory,
	rng *rand.Rand,
	logger *slog.Logger,
) *Responder {
	return &Responder{
		table:     table,
		store:     store,
		directory: directory,
		rng:       rng,
		logger:    logger.With("component", "responder"),
	}
}

// Respond answers a chat message. The only error it can return is a store
// failure during the fallback search.
func (r *Responder) Respond(ctx context.Context, message string) (string, error) {
	msg := strings.ToLower(strings.TrimSpace(message))

	if reply, ok := r.matchIntent(msg); ok {
		return reply, nil
	}
	return r.searchFallback(ctx, msg)
}

// matchIntent scans the table in order and returns a random response from
// the first entry with a matching pattern.
func (r *Responder) matchIntent(msg string) (string, bool) {
	for _, intent := range r.table.Intents {
		for _, pattern := range intent.Patterns {
			if pattern == "" {
				continue
			}
			if strings.Contains(msg, strings.ToLower(pattern)) {
				if len(intent.Responses) == 0 {
					return "", false
				}
				return intent.Responses[r.rng.Intn(len(intent.Responses))], true
			}
		}
	}
	return "", false
}

func (r *Responder) searchFallback(ctx context.Context, msg string) (string, error) {
	var kept []string
	for _, w := range strings.Fields(msg) {
		if _, skip := stopWords[w]; skip {
			continue
		}
		kept = append(kept, w)
	}
	term := strings.Join(kept, " ")

	if len(term) <= 1 {
		return unsureReply, nil
	}

	rows, err := r.store.Search(ctx, term, fallbackLimit)
	if err != nil {
		return "", fmt.Errorf("search postings: %w", err)
	}

	if len(rows) == 0 {
		return fmt.Sprintf(
			"I couldn't find any open positions for '<b>%s</b>'. Try a different keyword like 'Machine Learning' or 'IIT'.",
			term,
		), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "I found %d matches for '<b>%s</b>':<br>", len(rows), term)
	for _, row := range rows {
		name := r.directory.Lookup(row.InstituteCode).Full
		deadline := domain.StatusCheckPDF
		if row.Deadline != nil && *row.Deadline != "" {
			deadline = *row.Deadline
		}
		fmt.Fprintf(&sb,
			"<div class='chat-result'><strong>%s</strong><br><span>%s</span><br><span>Deadline: %s</span></div>",
			name, row.Title, deadline,
		)
	}
	sb.WriteString("<br><a href='/search'>View all results</a>")

	return sb.String(), nil
}
