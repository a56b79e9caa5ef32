// Package api serves the read path: search, dashboard, resume matching
// and chat.
package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"intern_scout/internal/domain"
	"intern_scout/internal/enrich"
	"intern_scout/internal/institute"
)

// PostingStore is the read-side repository contract.
type PostingStore interface {
	ListAll(ctx context.Context) ([]domain.Posting, error)
	Search(ctx context.Context, term string, limit int) ([]domain.Posting, error)
}

// ResumeParser converts an uploaded document to plain text.
type ResumeParser interface {
	ExtractText(filename string, reader io.Reader) (string, error)
}

// Responder answers a chat message.
type Responder interface {
	Respond(ctx context.Context, message string) (string, error)
}

type API struct {
	store     PostingStore
	enricher  *enrich.Enricher
	directory *institute.Directory
	parser    ResumeParser
	responder Responder
	logger    *slog.Logger
	now       func() time.Time
}

func New(
	store PostingStore,
	enricher *enrich.Enricher,
	directory *institute.Directory,
	parser ResumeParser,
	responder Responder,
	logger *slog.Logger,
) *API {
	return &API{
		store:     store,
		enricher:  enricher,
		directory: directory,
		parser:    parser,
		responder: responder,
		logger:    logger.With("component", "api"),
		now:       time.Now,
	}
}

// listEnriched reads the live posting set and enriches it in one snapshot.
func (a *API) listEnriched(ctx context.Context) ([]domain.EnrichedPosting, error) {
	postings, err := a.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return a.enricher.EnrichAll(postings, a.now()), nil
}

func (a *API) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Error("encode response", "error", err)
	}
}

func (a *API) storeError(w http.ResponseWriter, err error) {
	a.logger.Error("store unavailable", "error", err)
	http.Error(w, "storage unavailable", http.StatusInternalServerError)
}
