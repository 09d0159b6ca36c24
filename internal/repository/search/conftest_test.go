package search

import (
	"context"
	"testing"

	"github.com/oku-lab/wikisearch/internal/es"
)

// mockEngine implements the consumer interface for tests.
type mockEngine struct {
	searchFn func(ctx context.Context, body *es.SearchBody) (*es.SearchResponse, error)
	lastBody *es.SearchBody
}

func (m *mockEngine) Search(ctx context.Context, body *es.SearchBody) (*es.SearchResponse, error) {
	m.lastBody = body
	if m.searchFn != nil {
		return m.searchFn(ctx, body)
	}
	return &es.SearchResponse{}, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockEngine) {
	t.Helper()
	me := &mockEngine{}
	return New(me), me
}
