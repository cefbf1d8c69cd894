package search

import (
	"context"
)

// Backend is a minimal interface over search transports. The HTTP client is
// the normal implementation; a file-based one exists for offline use and
// tests.
type Backend interface {
	Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error)
	Name() string
}
