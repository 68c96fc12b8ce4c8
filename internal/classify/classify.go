// Package classify selects chili recipes from the feed and labels each with
// a cooking difficulty derived from its total preparation+cooking time.
package classify

import "chili-report/internal/domain"

// Difficulty thresholds in total minutes. 30 and 60 are inclusive upper
// bounds: a total of exactly 30 or exactly 60 is Medium.
const (
	easyBelow  = 30
	mediumUpTo = 60
)

// ForMinutes maps a known total time to a difficulty. Callers with no
// determinable total use domain.DifficultyUnknown instead.
func ForMinutes(total int) domain.Difficulty {
	switch {
	case total < easyBelow:
		return domain.DifficultyEasy
	case total <= mediumUpTo:
		return domain.DifficultyMedium
	default:
		return domain.DifficultyHard
	}
}
