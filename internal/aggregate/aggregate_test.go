package aggregate

import (
	"testing"

	"chili-report/internal/domain"
)

func classified(name string, d domain.Difficulty, total int) domain.Classified {
	return domain.Classified{
		Recipe:       domain.Recipe{Name: name},
		Difficulty:   d,
		TotalMinutes: total,
		TimeKnown:    d != domain.DifficultyUnknown,
	}
}

func TestBuildSeedsAllLabels(t *testing.T) {
	g := Build(nil)

	averages := g.Averages()
	if len(averages) != 3 {
		t.Fatalf("got %d averages, want 3", len(averages))
	}

	// Seeding order is the emission order.
	expected := []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard}
	for i, a := range averages {
		if a.Label != expected[i] {
			t.Errorf("averages[%d].Label = %q, want %q", i, a.Label, expected[i])
		}
		if a.Minutes != 0 {
			t.Errorf("empty group %q average = %d, want 0", a.Label, a.Minutes)
		}
	}
}

func TestAverages(t *testing.T) {
	g := Build([]domain.Classified{
		classified("a", domain.DifficultyMedium, 40),
		classified("b", domain.DifficultyMedium, 50),
		classified("c", domain.DifficultyEasy, 10),
		classified("d", domain.DifficultyHard, 100),
		classified("e", domain.DifficultyHard, 101), // 201/2 truncates to 100
	})

	averages := g.Averages()
	byLabel := map[domain.Difficulty]int{}
	for _, a := range averages {
		byLabel[a.Label] = a.Minutes
	}

	if byLabel[domain.DifficultyMedium] != 45 {
		t.Errorf("Medium average = %d, want 45", byLabel[domain.DifficultyMedium])
	}
	if byLabel[domain.DifficultyEasy] != 10 {
		t.Errorf("Easy average = %d, want 10", byLabel[domain.DifficultyEasy])
	}
	if byLabel[domain.DifficultyHard] != 100 {
		t.Errorf("Hard average = %d, want 100", byLabel[domain.DifficultyHard])
	}
}

func TestBuildCountsDuplicates(t *testing.T) {
	// Aggregation runs over the non-deduplicated set: duplicates weigh in.
	dup := classified("same", domain.DifficultyMedium, 30)
	g := Build([]domain.Classified{dup, dup, classified("other", domain.DifficultyMedium, 60)})

	if g.Len(domain.DifficultyMedium) != 3 {
		t.Fatalf("Medium group size = %d, want 3", g.Len(domain.DifficultyMedium))
	}
	if avg := g.Averages()[1].Minutes; avg != 40 {
		t.Errorf("Medium average = %d, want 40", avg)
	}
}

func TestBuildDropsUnknown(t *testing.T) {
	g := Build([]domain.Classified{
		classified("known", domain.DifficultyEasy, 5),
		classified("mystery", domain.DifficultyUnknown, 0),
	})

	if g.DroppedUnknown != 1 {
		t.Errorf("DroppedUnknown = %d, want 1", g.DroppedUnknown)
	}
	for _, a := range g.Averages() {
		if a.Label == domain.DifficultyUnknown {
			t.Errorf("Unknown must not appear in the averages report")
		}
	}
}
