// Package pipeline sequences the whole batch run: fetch the feed, filter
// and classify, emit the deduplicated recipe report, then the per-difficulty
// averages report.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"chili-report/internal/aggregate"
	"chili-report/internal/classify"
	"chili-report/internal/feed"
	"chili-report/internal/report"
)

const (
	DefaultRecipesFile  = "Chilies.csv"
	DefaultAveragesFile = "Results.csv"
)

type Config struct {
	FeedURL string
	OutDir  string

	// Lenient makes malformed feed lines skip-and-count instead of failing
	// the run.
	Lenient bool

	RecipesFile  string // defaults to DefaultRecipesFile
	AveragesFile string // defaults to DefaultAveragesFile
}

// Stats summarizes one run. The counts are observational output, not part of
// the report contract.
type Stats struct {
	Fetched            int
	Matched            int
	UniqueRows         int
	SkippedRecords     int
	MalformedDurations int
	DroppedUnknown     int
	SkippedLines       int

	RecipesPath  string
	AveragesPath string
}

// Run executes the pipeline. Each stage completes over the full in-memory
// collection before the next starts; output order is deterministic, so an
// unchanged feed produces byte-identical reports.
func Run(ctx context.Context, cfg Config) (Stats, error) {
	var stats Stats

	if cfg.FeedURL == "" {
		return stats, fmt.Errorf("pipeline: feed URL is required")
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	if cfg.RecipesFile == "" {
		cfg.RecipesFile = DefaultRecipesFile
	}
	if cfg.AveragesFile == "" {
		cfg.AveragesFile = DefaultAveragesFile
	}

	fetcher := feed.New(cfg.FeedURL)
	fetcher.Lenient = cfg.Lenient

	recipes, fstats, err := fetcher.Fetch(ctx)
	if err != nil {
		return stats, err
	}
	stats.Fetched = len(recipes)
	stats.SkippedLines = fstats.Malformed
	log.Printf("Fetched %d recipes", stats.Fetched)

	classified, cstats := classify.Filter(recipes)
	stats.Matched = len(classified)
	stats.SkippedRecords = cstats.SkippedRecords
	stats.MalformedDurations = cstats.MalformedDurations
	log.Printf("Extracted %d chili recipes", stats.Matched)

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return stats, fmt.Errorf("pipeline: create out dir: %w", err)
	}

	unique := report.NewDeduper().Unique(classified)
	stats.UniqueRows = len(unique)
	stats.RecipesPath = filepath.Join(cfg.OutDir, cfg.RecipesFile)
	if err := report.WriteRecipes(stats.RecipesPath, unique); err != nil {
		return stats, err
	}
	log.Printf("Unique chili recipes saved to %s (%d rows)", stats.RecipesPath, stats.UniqueRows)

	groups := aggregate.Build(classified)
	stats.DroppedUnknown = groups.DroppedUnknown
	if groups.DroppedUnknown > 0 {
		log.Printf("WARN: %d recipes classified Unknown are absent from the averages report", groups.DroppedUnknown)
	}
	stats.AveragesPath = filepath.Join(cfg.OutDir, cfg.AveragesFile)
	if err := report.WriteAverages(stats.AveragesPath, groups.Averages()); err != nil {
		return stats, err
	}
	log.Printf("Average times calculated and saved to %s", stats.AveragesPath)

	return stats, nil
}
