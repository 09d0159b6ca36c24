package search

import (
	"context"
	"errors"
	"testing"

	"github.com/oku-lab/wikisearch/internal/domain"
	"github.com/oku-lab/wikisearch/internal/domain/search/hit"
	"github.com/oku-lab/wikisearch/internal/domain/search/request"
)

// --- Mocks ---

type mockRepo struct {
	hits    []hit.Hit
	total   int
	err     error
	lastReq *request.Request
	called  bool
}

func (m *mockRepo) Search(_ context.Context, req *request.Request) ([]hit.Hit, int, error) {
	m.called = true
	m.lastReq = req
	return m.hits, m.total, m.err
}

// --- Tests ---

func TestSearchPages_AggregatesAcrossHits(t *testing.T) {
	repo := &mockRepo{
		hits: []hit.Hit{
			hit.New("d1", 2.0, map[string]any{"body": "wiki [[A]]\nwiki [[B]]"}, nil),
			hit.New("d2", 1.0, map[string]any{"body": "wiki [[B]]\nwiki [[C]]"}, nil),
		},
		total: 2,
	}
	svc := New(repo)

	titles, err := svc.SearchPages(context.Background(), "wiki")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"A", "B", "C"}
	if len(titles) != len(want) {
		t.Fatalf("titles = %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("titles[%d] = %q, want %q", i, titles[i], want[i])
		}
	}
	if repo.lastReq.Mode() != request.ModePage {
		t.Errorf("mode = %q, want page", repo.lastReq.Mode())
	}
}

func TestSearchPages_FirstOccurrenceWins(t *testing.T) {
	repo := &mockRepo{
		hits: []hit.Hit{
			hit.New("d1", 2.0, map[string]any{"body": "wiki [[B]]"}, nil),
			hit.New("d2", 1.0, map[string]any{"body": "wiki [[A]]\nwiki [[B]]"}, nil),
		},
	}
	svc := New(repo)

	titles, err := svc.SearchPages(context.Background(), "wiki")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(titles) != 2 || titles[0] != "B" || titles[1] != "A" {
		t.Errorf("titles = %v, want [B A]", titles)
	}
}

func TestSearchPages_SkipsHitsWithoutBody(t *testing.T) {
	repo := &mockRepo{
		hits: []hit.Hit{
			hit.New("d1", 2.0, map[string]any{"title": "no body"}, nil),
			hit.New("d2", 1.0, map[string]any{"body": "wiki [[A]]"}, nil),
		},
	}
	svc := New(repo)

	titles, err := svc.SearchPages(context.Background(), "wiki")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(titles) != 1 || titles[0] != "A" {
		t.Errorf("titles = %v, want [A]", titles)
	}
}

func TestSearchPages_BodyAsLineSequence(t *testing.T) {
	repo := &mockRepo{
		hits: []hit.Hit{
			hit.New("d1", 2.0, map[string]any{"body": []any{"wiki [[A]]", "wiki [[B]]"}}, nil),
		},
	}
	svc := New(repo)

	titles, err := svc.SearchPages(context.Background(), "wiki")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(titles) != 2 || titles[0] != "A" || titles[1] != "B" {
		t.Errorf("titles = %v, want [A B]", titles)
	}
}

func TestSearchPages_EmptyKeyword(t *testing.T) {
	repo := &mockRepo{}
	svc := New(repo)

	_, err := svc.SearchPages(context.Background(), "")
	if !errors.Is(err, domain.ErrInvalidQuery) {
		t.Errorf("expected ErrInvalidQuery, got %v", err)
	}
	if repo.called {
		t.Error("repository must not be called for an invalid keyword")
	}
}

func TestSearchPages_NoHits(t *testing.T) {
	svc := New(&mockRepo{})

	titles, err := svc.SearchPages(context.Background(), "wiki")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if titles == nil || len(titles) != 0 {
		t.Errorf("titles = %#v, want empty non-nil slice", titles)
	}
}

func TestSearchRanked_Orders(t *testing.T) {
	repo := &mockRepo{
		hits: []hit.Hit{
			hit.New("d1", 2.0, map[string]any{"body": "wiki"}, nil),
			hit.New("d2", 2.0, map[string]any{"body": "wiki wiki wiki"}, nil),
		},
	}
	svc := New(repo)

	entries, err := svc.SearchRanked(context.Background(), "wiki")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[0].ID() != "d2" {
		t.Errorf("entries[0] = %s, want d2 (higher count on score tie)", entries[0].ID())
	}
	if repo.lastReq.Mode() != request.ModeRanked {
		t.Errorf("mode = %q, want ranked", repo.lastReq.Mode())
	}
}

func TestSearchRanked_Unavailable(t *testing.T) {
	svc := New(nil)

	_, err := svc.SearchRanked(context.Background(), "wiki")
	if !errors.Is(err, domain.ErrSearchUnavailable) {
		t.Errorf("expected ErrSearchUnavailable, got %v", err)
	}
}

func TestSearchHighlight_Snippets(t *testing.T) {
	repo := &mockRepo{
		hits: []hit.Hit{
			hit.New("d1", 2.0, map[string]any{
				"title":             "FrontPage",
				"title_url_encoded": "FrontPage",
				"modified":          "2024-05-01",
			}, []string{"a <mark>wiki</mark>", "b"}),
			hit.New("d2", 1.0, map[string]any{"title": "Other"}, nil),
		},
		total: 17,
	}
	svc := New(repo)

	snippets, total, err := svc.SearchHighlight(context.Background(), "wiki")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 17 {
		t.Errorf("total = %d, want engine total 17", total)
	}
	if len(snippets) != 2 {
		t.Fatalf("got %d snippets", len(snippets))
	}
	if snippets[0].Text() != "a <mark>wiki</mark> ... b" {
		t.Errorf("Text() = %q", snippets[0].Text())
	}
	if snippets[0].Title() != "FrontPage" || snippets[0].Modified() != "2024-05-01" {
		t.Errorf("snippet fields = %+v", snippets[0])
	}
	if snippets[1].Text() != "" {
		t.Errorf("Text() = %q, want empty for hit without highlight", snippets[1].Text())
	}
	if repo.lastReq.Mode() != request.ModeHighlight {
		t.Errorf("mode = %q, want highlight", repo.lastReq.Mode())
	}
}

func TestSearch_RepoErrorPropagates(t *testing.T) {
	repo := &mockRepo{err: errors.New("boom")}
	svc := New(repo)

	if _, err := svc.SearchPages(context.Background(), "wiki"); err == nil {
		t.Error("expected error from SearchPages")
	}
	if _, err := svc.SearchRanked(context.Background(), "wiki"); err == nil {
		t.Error("expected error from SearchRanked")
	}
	if _, _, err := svc.SearchHighlight(context.Background(), "wiki"); err == nil {
		t.Error("expected error from SearchHighlight")
	}
}
