package classify

import (
	"log"
	"strings"

	"chili-report/internal/domain"
	"chili-report/internal/duration"
)

// Ingredient substrings that select a recipe, matched case-insensitively.
var chiliMarkers = []string{"chili", "chiles"}

// FilterStats counts what the filter saw besides the matches themselves.
type FilterStats struct {
	SkippedRecords     int // recipes missing a required field
	MalformedDurations int // matches whose prep or cook time failed to parse
}

// Filter selects recipes whose ingredients mention chili and attaches a
// difficulty to each, preserving input order among matches. A recipe missing
// a required field is skipped and counted; a malformed duration downgrades
// the classification to Unknown instead of failing the run.
func Filter(recipes []domain.Recipe) ([]domain.Classified, FilterStats) {
	var stats FilterStats
	var out []domain.Classified

	for _, r := range recipes {
		if r.Ingredients == "" {
			// The match cannot be evaluated without ingredients.
			stats.SkippedRecords++
			log.Printf("WARN: skipping recipe %q: no ingredients field", r.Name)
			continue
		}
		if !MatchesChili(r.Ingredients) {
			continue
		}
		if missing := r.MissingFields(); len(missing) > 0 {
			stats.SkippedRecords++
			log.Printf("WARN: skipping recipe %q: missing fields %v", r.Name, missing)
			continue
		}
		out = append(out, classifyOne(r, &stats))
	}
	return out, stats
}

// MatchesChili reports whether an ingredients text mentions chili.
func MatchesChili(ingredients string) bool {
	lower := strings.ToLower(ingredients)
	for _, m := range chiliMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

func classifyOne(r domain.Recipe, stats *FilterStats) domain.Classified {
	c := domain.Classified{Recipe: r}

	prep, perr := duration.ParseMinutes(r.PrepTime)
	cook, cerr := duration.ParseMinutes(r.CookTime)
	if perr != nil || cerr != nil {
		stats.MalformedDurations++
		c.Difficulty = domain.DifficultyUnknown
		return c
	}

	c.TotalMinutes = prep + cook
	c.TimeKnown = true
	c.Difficulty = ForMinutes(c.TotalMinutes)
	return c
}
