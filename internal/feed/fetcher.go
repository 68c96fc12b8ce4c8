// Package feed retrieves the newline-delimited JSON recipe feed and
// materializes it into recipe records.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"chili-report/internal/domain"
	"chili-report/internal/httpx"
)

// LineError reports a non-blank feed line that is not valid JSON.
type LineError struct {
	Line    int // 1-based
	Snippet string
	Err     error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("feed: line %d: invalid JSON %q: %v", e.Line, e.Snippet, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Stats describes what the decoder saw.
type Stats struct {
	Lines     int // non-blank lines
	Blank     int
	Malformed int // only populated in lenient mode
}

// Fetcher downloads and decodes the feed. The zero value is not usable; use
// New.
type Fetcher struct {
	URL  string
	HTTP *http.Client

	// Lenient skips malformed lines (counting them) instead of failing the
	// whole run.
	Lenient bool

	Retry httpx.RetryConfig
}

func New(url string) *Fetcher {
	return &Fetcher{
		URL: url,
		HTTP: &http.Client{
			Timeout: 2 * time.Minute, // per-request
		},
		Retry: httpx.DefaultRetryConfig(),
	}
}

// Fetch GETs the feed and decodes one recipe per non-blank line. Blank lines
// are skipped. In strict mode (default) the first malformed line aborts with
// a *LineError naming the line.
func (f *Fetcher) Fetch(ctx context.Context) ([]domain.Recipe, Stats, error) {
	body, err := httpx.Get(ctx, f.HTTP, f.URL, f.Retry)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("feed: fetch %s: %w", f.URL, err)
	}
	return f.decode(body)
}

func (f *Fetcher) decode(body []byte) ([]domain.Recipe, Stats, error) {
	var stats Stats
	var recipes []domain.Recipe

	for i, line := range strings.Split(string(body), "\n") {
		if strings.TrimSpace(line) == "" {
			stats.Blank++
			continue
		}
		stats.Lines++

		var r domain.Recipe
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			lerr := &LineError{Line: i + 1, Snippet: snippet(line), Err: err}
			if !f.Lenient {
				return nil, stats, lerr
			}
			stats.Malformed++
			log.Printf("WARN: %v (skipped)", lerr)
			continue
		}
		recipes = append(recipes, r)
	}

	return recipes, stats, nil
}

func snippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 80 {
		return s[:80] + "..."
	}
	return s
}
