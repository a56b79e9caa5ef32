package chat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intern_scout/internal/domain"
	"intern_scout/internal/institute"
	"intern_scout/testdata/utils"
)

// stubSearcher records the term/limit it was called with.
type stubSearcher struct {
	rows   []domain.Posting
	err    error
	term   string
	limit  int
	called bool
}

func (s *stubSearcher) Search(_ context.Context, term string, limit int) ([]domain.Posting, error) {
	s.called = true
	s.term = term
	s.limit = limit
	return s.rows, s.err
}

func newResponder(table IntentTable, store PostingSearcher) *Responder {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(table, store, institute.NewDirectory(), rand.New(rand.NewSource(1)), logger)
}

func greetingTable() IntentTable {
	return IntentTable{Intents: []Intent{
		{
			Patterns:  []string{"hello", "hi"},
			Responses: []string{"Hello! Ask me about open positions.", "Hi there!"},
		},
		{
			Patterns:  []string{"thanks"},
			Responses: []string{"You're welcome."},
		},
	}}
}

func TestRespond_IntentPrecedence(t *testing.T) {
	store := &stubSearcher{rows: []domain.Posting{{Title: "hi related posting"}}}
	r := newResponder(greetingTable(), store)

	reply, err := r.Respond(context.Background(), "hi there")

	require.NoError(t, err)
	assert.Contains(t, greetingTable().Intents[0].Responses, reply)
	// An intent match terminates the query; the store is never consulted.
	assert.False(t, store.called)
}

func TestRespond_FirstMatchingEntryWins(t *testing.T) {
	table := IntentTable{Intents: []Intent{
		{Patterns: []string{"python"}, Responses: []string{"first"}},
		{Patterns: []string{"python intern"}, Responses: []string{"second"}},
	}}
	r := newResponder(table, &stubSearcher{})

	reply, err := r.Respond(context.Background(), "python intern openings")

	require.NoError(t, err)
	assert.Equal(t, "first", reply)
}

func TestRespond_DeterministicWithSeededRand(t *testing.T) {
	pick := func() string {
		r := newResponder(greetingTable(), &stubSearcher{})
		reply, err := r.Respond(context.Background(), "hello")
		require.NoError(t, err)
		return reply
	}

	assert.Equal(t, pick(), pick())
}

func TestRespond_FallbackStripsStopWords(t *testing.T) {
	store := &stubSearcher{rows: []domain.Posting{
		{InstituteCode: "IITM", Title: "Research Intern", Deadline: utils.Ptr("2026-10-01")},
	}}
	r := newResponder(IntentTable{}, store)

	reply, err := r.Respond(context.Background(), "show iitm internships")

	require.NoError(t, err)
	assert.Equal(t, "iitm", store.term)
	assert.Equal(t, 4, store.limit)
	assert.Contains(t, reply, "IIT Madras")
	assert.Contains(t, reply, "Research Intern")
	assert.Contains(t, reply, "2026-10-01")
}

func TestRespond_ShortTermReturnsUnsure(t *testing.T) {
	store := &stubSearcher{}
	r := newResponder(IntentTable{}, store)

	reply, err := r.Respond(context.Background(), "find me jobs")

	require.NoError(t, err)
	assert.Equal(t, unsureReply, reply)
	assert.False(t, store.called)
}

func TestRespond_NoRowsNamesTerm(t *testing.T) {
	r := newResponder(IntentTable{}, &stubSearcher{})

	reply, err := r.Respond(context.Background(), "quantum computing")

	require.NoError(t, err)
	assert.Contains(t, reply, "quantum computing")
	assert.Contains(t, reply, "couldn't find")
}

func TestRespond_MissingDeadlineShowsCheckPDF(t *testing.T) {
	store := &stubSearcher{rows: []domain.Posting{
		{InstituteCode: "IITD", Title: "JRF Opening"},
	}}
	r := newResponder(IntentTable{}, store)

	reply, err := r.Respond(context.Background(), "jrf opening")

	require.NoError(t, err)
	assert.Contains(t, reply, "Deadline: Check PDF")
}

func TestRespond_StoreErrorPropagates(t *testing.T) {
	store := &stubSearcher{err: errors.New("connection refused")}
	r := newResponder(IntentTable{}, store)

	_, err := r.Respond(context.Background(), "machine learning")

	assert.Error(t, err)
}

func TestLoadIntents_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intents.json")
	payload := `{"intents":[{"patterns":["hi"],"responses":["Hello!"]}]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	table, err := LoadIntents(path)

	require.NoError(t, err)
	require.Len(t, table.Intents, 1)
	assert.Equal(t, []string{"hi"}, table.Intents[0].Patterns)
}

func TestLoadIntents_MissingFile(t *testing.T) {
	_, err := LoadIntents(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadIntents_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intents.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadIntents(path)
	assert.Error(t, err)
}
