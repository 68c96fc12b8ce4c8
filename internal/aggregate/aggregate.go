// Package aggregate computes the per-difficulty average-time summary.
package aggregate

import "chili-report/internal/domain"

// SeededLabels is the fixed set and emission order of the averages report.
// Unknown is deliberately absent: recipes without a determinable time join
// no group and are dropped from this report.
var SeededLabels = []domain.Difficulty{
	domain.DifficultyEasy,
	domain.DifficultyMedium,
	domain.DifficultyHard,
}

// Groups partitions classified recipes by difficulty. It is built from the
// full classified set, duplicates included; only the filtered-recipe report
// deduplicates.
type Groups struct {
	byLabel map[domain.Difficulty][]domain.Classified

	// DroppedUnknown counts recipes classified Unknown, which have no seeded
	// group to join.
	DroppedUnknown int
}

// Build seeds the Easy/Medium/Hard groups and assigns every recipe to its
// label's group.
func Build(recipes []domain.Classified) *Groups {
	g := &Groups{byLabel: make(map[domain.Difficulty][]domain.Classified, len(SeededLabels))}
	for _, label := range SeededLabels {
		g.byLabel[label] = nil
	}

	for _, r := range recipes {
		if _, seeded := g.byLabel[r.Difficulty]; !seeded {
			g.DroppedUnknown++
			continue
		}
		g.byLabel[r.Difficulty] = append(g.byLabel[r.Difficulty], r)
	}
	return g
}

// Len returns the number of recipes in a label's group.
func (g *Groups) Len(label domain.Difficulty) int {
	return len(g.byLabel[label])
}

// Average is one row of the summary report.
type Average struct {
	Label   domain.Difficulty
	Minutes int
}

// Averages returns the per-label average total time in seeding order. The
// average is the group's summed cached total minutes integer-divided by its
// size, truncating; an empty group reports 0.
func (g *Groups) Averages() []Average {
	out := make([]Average, 0, len(SeededLabels))
	for _, label := range SeededLabels {
		group := g.byLabel[label]

		avg := 0
		if len(group) > 0 {
			sum := 0
			for _, r := range group {
				sum += r.TotalMinutes
			}
			avg = sum / len(group)
		}
		out = append(out, Average{Label: label, Minutes: avg})
	}
	return out
}
