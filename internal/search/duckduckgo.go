package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const ddgEndpoint = "https://api.duckduckgo.com/"

// DuckDuckGo is the keyless fallback backend, built on the Instant Answer
// API. Coverage is thinner than Tavily but it needs no configuration.
type DuckDuckGo struct {
	hc *http.Client
}

func NewDuckDuckGo() *DuckDuckGo {
	return &DuckDuckGo{hc: &http.Client{Timeout: 15 * time.Second}}
}

type ddgTopic struct {
	Text     string     `json:"Text"`
	Topics   []ddgTopic `json:"Topics"`
	FirstURL string     `json:"FirstURL"`
}

type ddgResponse struct {
	AbstractText  string     `json:"AbstractText"`
	Heading       string     `json:"Heading"`
	RelatedTopics []ddgTopic `json:"RelatedTopics"`
}

func (d *DuckDuckGo) Search(ctx context.Context, query string, maxResults int) (string, []Result, error) {
	u := ddgEndpoint + "?" + url.Values{
		"q":           {query},
		"format":      {"json"},
		"no_redirect": {"1"},
		"no_html":     {"1"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", nil, err
	}

	resp, err := d.hc.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("duckduckgo: unexpected status %d", resp.StatusCode)
	}

	var out ddgResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", nil, fmt.Errorf("duckduckgo: decode response: %w", err)
	}

	var results []Result
	if out.AbstractText != "" {
		results = append(results, Result{Title: out.Heading, Snippet: out.AbstractText})
	}
	results = append(results, flattenTopics(out.RelatedTopics, maxResults-len(results))...)
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return "", results, nil
}

func flattenTopics(topics []ddgTopic, limit int) []Result {
	var out []Result
	for _, t := range topics {
		if len(out) >= limit {
			break
		}
		if t.Text != "" {
			out = append(out, Result{Title: t.FirstURL, Snippet: t.Text})
			continue
		}
		out = append(out, flattenTopics(t.Topics, limit-len(out))...)
	}
	return out
}
