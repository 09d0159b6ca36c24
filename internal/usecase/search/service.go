// Package search implements the keyword search use cases: page-title
// aggregation, ranked file listing, and highlighted multi-field search.
package search

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/oku-lab/wikisearch/internal/domain"
	"github.com/oku-lab/wikisearch/internal/domain/search/hit"
	"github.com/oku-lab/wikisearch/internal/domain/search/request"
	"github.com/oku-lab/wikisearch/internal/domain/search/result"
	"github.com/oku-lab/wikisearch/internal/domain/wikilink"
)

// Service handles keyword searches against the wiki index.
type Service struct {
	repo    Repository
	queries *prometheus.CounterVec

	pageLimit      int
	rankedLimit    int
	highlightLimit int
}

// New creates a search service. repo may be nil when the search engine was
// unreachable at startup; every call then returns ErrSearchUnavailable.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// WithMetrics attaches a {mode, status} query counter.
func (s *Service) WithMetrics(queries *prometheus.CounterVec) *Service {
	s.queries = queries
	return s
}

// WithLimits overrides the per-mode result caps. Zero keeps the default.
func (s *Service) WithLimits(page, ranked, highlight int) *Service {
	s.pageLimit = page
	s.rankedLimit = ranked
	s.highlightLimit = highlight
	return s
}

// SearchPages runs the page-title search: extracts bracketed page references
// from the body of every hit and merges them into one deduplicated list,
// first occurrence winning, order preserved.
func (s *Service) SearchPages(ctx context.Context, keyword string) ([]string, error) {
	req, err := request.NewPage(keyword, s.pageLimit)
	if err != nil {
		return nil, err
	}

	hits, _, err := s.search(ctx, &req)
	if err != nil {
		return nil, err
	}

	titles := []string{}
	seen := make(map[string]struct{})
	for i := range hits {
		body, ok := hits[i].BodyText()
		if !ok {
			continue
		}
		for _, title := range wikilink.Extract(body, keyword) {
			if _, dup := seen[title]; dup {
				continue
			}
			seen[title] = struct{}{}
			titles = append(titles, title)
		}
	}
	return titles, nil
}

// SearchRanked runs the ranked file-list search: counts keyword term
// occurrences per hit and orders hits by (score, count), both descending.
func (s *Service) SearchRanked(ctx context.Context, keyword string) ([]result.Entry, error) {
	req, err := request.NewRanked(keyword, s.rankedLimit)
	if err != nil {
		return nil, err
	}

	hits, _, err := s.search(ctx, &req)
	if err != nil {
		return nil, err
	}

	return rankHits(hits, keyword), nil
}

// SearchHighlight runs the multi-field search with highlighted snippets.
// The returned total is the engine's total hit count.
func (s *Service) SearchHighlight(ctx context.Context, keyword string) ([]result.Snippet, int, error) {
	req, err := request.NewHighlight(keyword, s.highlightLimit)
	if err != nil {
		return nil, 0, err
	}

	hits, total, err := s.search(ctx, &req)
	if err != nil {
		return nil, 0, err
	}

	snippets := make([]result.Snippet, 0, len(hits))
	for i := range hits {
		h := &hits[i]
		snippets = append(snippets, result.NewSnippet(
			h.ID(),
			h.StringField("title"),
			h.StringField("title_url_encoded"),
			h.StringField("modified"),
			joinFragments(h.Fragments()),
		))
	}
	return snippets, total, nil
}

// search runs one repository call, recording the outcome metric.
func (s *Service) search(ctx context.Context, req *request.Request) ([]hit.Hit, int, error) {
	if s.repo == nil {
		s.observe(req.Mode(), "unavailable")
		return nil, 0, domain.ErrSearchUnavailable
	}

	hits, total, err := s.repo.Search(ctx, req)
	if err != nil {
		s.observe(req.Mode(), "error")
		return nil, 0, err
	}
	s.observe(req.Mode(), "ok")
	return hits, total, nil
}

func (s *Service) observe(m request.Mode, status string) {
	if s.queries != nil {
		s.queries.WithLabelValues(string(m), status).Inc()
	}
}
