package health

import "context"

// SearchPinger checks search engine availability.
type SearchPinger interface {
	Ping(ctx context.Context) error
}
