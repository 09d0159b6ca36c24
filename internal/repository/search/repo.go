// Package search adapts the search engine client to the domain contract.
package search

import (
	"context"
	"fmt"

	"github.com/oku-lab/wikisearch/internal/domain"
	"github.com/oku-lab/wikisearch/internal/domain/search/hit"
	"github.com/oku-lab/wikisearch/internal/domain/search/request"
	"github.com/oku-lab/wikisearch/internal/es"
)

// engine is the consumer interface for search calls (ISP).
type engine interface {
	Search(ctx context.Context, body *es.SearchBody) (*es.SearchResponse, error)
}

// Repo implements usecase/search.Repository against the search engine.
type Repo struct {
	engine engine
}

// New creates a search repository.
func New(e engine) *Repo {
	return &Repo{engine: e}
}

// Search executes a domain request and returns hits in engine order plus the
// engine's total hit count. A failed call is wrapped as ErrSearchFailed.
func (r *Repo) Search(ctx context.Context, req *request.Request) ([]hit.Hit, int, error) {
	resp, err := r.engine.Search(ctx, buildBody(req))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", domain.ErrSearchFailed, err)
	}

	hits := make([]hit.Hit, 0, len(resp.Hits.Hits))
	for _, h := range resp.Hits.Hits {
		hits = append(hits, hit.New(h.ID, h.Score, h.Source, h.Highlight["body"]))
	}
	return hits, resp.Hits.Total.Value, nil
}

// buildBody translates a validated domain request into the engine's JSON body.
// Single field uses a match clause, several fields a multi_match clause; the
// operator is always AND.
func buildBody(req *request.Request) *es.SearchBody {
	body := &es.SearchBody{
		Size:   req.Limit(),
		Source: req.SourceFields(),
	}

	fields := req.Fields()
	if len(fields) == 1 {
		body.Query.Match = map[string]es.MatchClause{
			fields[0]: {Query: req.Keyword(), Operator: "and"},
		}
	} else {
		body.Query.MultiMatch = &es.MultiMatch{
			Query:    req.Keyword(),
			Fields:   fields,
			Operator: "and",
		}
	}

	if hl := req.Highlight(); hl != nil {
		body.Highlight = &es.Highlight{
			Fields: map[string]es.HighlightField{
				hl.Field: {
					FragmentSize:      hl.FragmentSize,
					NumberOfFragments: hl.FragmentCount,
				},
			},
			PreTags:  []string{hl.PreTag},
			PostTags: []string{hl.PostTag},
		}
	}

	return body
}
