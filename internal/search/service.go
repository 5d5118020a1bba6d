package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Yuguda999/SautiNa/internal/cache"
)

// snippetBudget caps each snippet so search context cannot blow up the
// prompt.
const snippetBudget = 300

// DefaultMaxResults is used by callers that do not care to tune the cap.
const DefaultMaxResults = 5

// Service is the best-effort search used for real-time context. It tries
// the primary backend, falls through to the fallback, and returns "" when
// nothing usable comes back. It never errors: search failures degrade the
// reply, they do not block it.
type Service struct {
	primary  Backend // may be nil when unconfigured
	fallback Backend // may be nil
	cache    cache.Cache
	cacheTTL time.Duration
	log      *logrus.Logger
}

func NewService(primary, fallback Backend, c cache.Cache, cacheTTL time.Duration, log *logrus.Logger) *Service {
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	return &Service{primary: primary, fallback: fallback, cache: c, cacheTTL: cacheTTL, log: log}
}

// Search returns a formatted text block of web results, or "" when no
// backend produced anything.
func (s *Service) Search(ctx context.Context, query string, maxResults int) string {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	if s.cache != nil {
		if v, hit, err := s.cache.Get(ctx, cacheKey(query)); err == nil && hit {
			s.log.WithField("query", query).Debug("search cache hit")
			return v
		}
	}

	out := s.try(ctx, s.primary, "primary", query, maxResults)
	if out == "" {
		out = s.try(ctx, s.fallback, "fallback", query, maxResults)
	}
	if out == "" {
		s.log.WithField("query", query).Warn("no search backend produced results")
		return ""
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey(query), out, s.cacheTTL); err != nil {
			s.log.WithError(err).Debug("search cache write failed")
		}
	}
	return out
}

func (s *Service) try(ctx context.Context, b Backend, tier, query string, maxResults int) string {
	if b == nil {
		return ""
	}
	summary, results, err := b.Search(ctx, query, maxResults)
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"tier":  tier,
			"query": query,
		}).Warn("search backend failed")
		return ""
	}
	if summary == "" && len(results) == 0 {
		return ""
	}
	return format(summary, results, maxResults)
}

func format(summary string, results []Result, maxResults int) string {
	var b strings.Builder
	b.WriteString("Web Search Results:\n\n")

	if summary != "" {
		fmt.Fprintf(&b, "Summary: %s\n\n", summary)
	}

	for i, r := range results {
		if i >= maxResults {
			break
		}
		title := r.Title
		if title == "" {
			title = "No title"
		}
		snippet := r.Snippet
		if len(snippet) > snippetBudget {
			snippet = snippet[:snippetBudget]
		}
		fmt.Fprintf(&b, "%d. %s: %s\n\n", i+1, title, snippet)
	}
	return b.String()
}

func cacheKey(query string) string {
	return "search:" + strings.ToLower(strings.TrimSpace(query))
}
