package search

import "context"

// Result is one web hit from any backend.
type Result struct {
	Title   string
	Snippet string
}

// Backend is one concrete search engine. Backends may error or return no
// results; the Service above them decides what that means.
type Backend interface {
	// Search returns up to maxResults hits plus an optional AI-written
	// summary (empty for backends that do not produce one).
	Search(ctx context.Context, query string, maxResults int) (summary string, results []Result, err error)
}
