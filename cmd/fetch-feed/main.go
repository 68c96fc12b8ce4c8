// fetch-feed pulls the recipe feed and prints what the pipeline would see.
// Debug tool; it writes no reports.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"chili-report/internal/classify"
	"chili-report/internal/config"
	"chili-report/internal/feed"
)

func main() {
	var (
		feedURL = flag.String("feed-url", "", "override FEED_URL from the environment")
		limit   = flag.Int("limit", 10, "number of matched recipes to print (0 = all)")
		lenient = flag.Bool("lenient", false, "skip malformed feed lines instead of failing")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()
	if *feedURL != "" {
		cfg.FeedURL = *feedURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fetcher := feed.New(cfg.FeedURL)
	fetcher.Lenient = *lenient

	recipes, fstats, err := fetcher.Fetch(ctx)
	if err != nil {
		log.Fatalf("fetch error: %v", err)
	}

	fmt.Printf("OK: fetched %d recipes (%d blank lines, %d malformed skipped)\n",
		len(recipes), fstats.Blank, fstats.Malformed)

	classified, cstats := classify.Filter(recipes)
	fmt.Printf("OK: %d chili recipes (%d skipped, %d malformed durations)\n",
		len(classified), cstats.SkippedRecords, cstats.MalformedDurations)

	for i, c := range classified {
		if *limit > 0 && i >= *limit {
			fmt.Printf("... and %d more\n", len(classified)-i)
			break
		}
		total := "?"
		if c.TimeKnown {
			total = fmt.Sprintf("%dm", c.TotalMinutes)
		}
		fmt.Printf("%d) %s [%s, prep=%s cook=%s total=%s]\n",
			i+1, c.Name, c.Difficulty, c.PrepTime, c.CookTime, total)
	}
}
