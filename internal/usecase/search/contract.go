package search

import (
	"context"

	"github.com/oku-lab/wikisearch/internal/domain/search/hit"
	"github.com/oku-lab/wikisearch/internal/domain/search/request"
)

// Repository defines the search engine contract. Search returns hits in
// engine order plus the engine's total hit count.
type Repository interface {
	Search(ctx context.Context, req *request.Request) ([]hit.Hit, int, error)
}
