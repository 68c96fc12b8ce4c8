package classify

import (
	"testing"

	"chili-report/internal/domain"
)

func testRecipe(name, ingredients, prep, cook string) domain.Recipe {
	return domain.Recipe{
		Name:          name,
		Ingredients:   ingredients,
		URL:           "https://example.com/" + name,
		Image:         "https://example.com/" + name + ".jpg",
		CookTime:      cook,
		RecipeYield:   "4",
		DatePublished: "2013-01-01",
		PrepTime:      prep,
		Description:   "A recipe.",
	}
}

func TestMatchesChili(t *testing.T) {
	testCases := []struct {
		ingredients string
		expected    bool
	}{
		{"2 tbsp Chili Powder", true},
		{"dried chiles, onion", true},
		{"CHILI FLAKES", true},
		{"eggs, ham, bread", false},
		{"chilled butter", false}, // "chili" is not a substring of "chilled"
		{"", false},
	}

	for _, tc := range testCases {
		if got := MatchesChili(tc.ingredients); got != tc.expected {
			t.Errorf("MatchesChili(%q) = %v, want %v", tc.ingredients, got, tc.expected)
		}
	}
}

func TestFilterSelectsAndClassifies(t *testing.T) {
	recipes := []domain.Recipe{
		testRecipe("con-carne", "beef, Chili Powder", "PT30M", "PT1H"),
		testRecipe("sandwich", "egg, ham", "PT5M", "PT5M"),
		testRecipe("salsa", "tomato, chiles", "PT10M", "PT"),
	}

	got, stats := Filter(recipes)
	if len(got) != 2 {
		t.Fatalf("Filter returned %d recipes, want 2", len(got))
	}
	if stats.SkippedRecords != 0 || stats.MalformedDurations != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	// Input order preserved among matches.
	if got[0].Name != "con-carne" || got[1].Name != "salsa" {
		t.Errorf("match order = %q, %q", got[0].Name, got[1].Name)
	}

	// PT30M + PT1H = 90 minutes = Hard.
	if got[0].Difficulty != domain.DifficultyHard || got[0].TotalMinutes != 90 || !got[0].TimeKnown {
		t.Errorf("con-carne classified %+v", got[0])
	}

	// 10 + 0 = 10 minutes = Easy.
	if got[1].Difficulty != domain.DifficultyEasy || got[1].TotalMinutes != 10 {
		t.Errorf("salsa classified %+v", got[1])
	}
}

func TestFilterMalformedDuration(t *testing.T) {
	recipes := []domain.Recipe{
		testRecipe("bad-prep", "chili oil", "PTxH", "PT10M"),
		testRecipe("bad-cook", "chili oil", "PT10M", "PTM"),
	}

	got, stats := Filter(recipes)
	if len(got) != 2 {
		t.Fatalf("Filter returned %d recipes, want 2", len(got))
	}
	if stats.MalformedDurations != 2 {
		t.Errorf("MalformedDurations = %d, want 2", stats.MalformedDurations)
	}
	for _, c := range got {
		if c.Difficulty != domain.DifficultyUnknown {
			t.Errorf("%s difficulty = %q, want Unknown", c.Name, c.Difficulty)
		}
		if c.TimeKnown {
			t.Errorf("%s TimeKnown = true, want false", c.Name)
		}
	}
}

func TestFilterSkipsIncompleteRecords(t *testing.T) {
	missingURL := testRecipe("no-url", "chili paste", "PT10M", "PT10M")
	missingURL.URL = ""

	noIngredients := testRecipe("no-ingredients", "x", "PT10M", "PT10M")
	noIngredients.Ingredients = ""

	recipes := []domain.Recipe{
		missingURL,
		noIngredients,
		testRecipe("ok", "chili flakes", "PT10M", "PT10M"),
	}

	got, stats := Filter(recipes)
	if len(got) != 1 || got[0].Name != "ok" {
		t.Fatalf("Filter returned %d recipes, want only %q", len(got), "ok")
	}
	if stats.SkippedRecords != 2 {
		t.Errorf("SkippedRecords = %d, want 2", stats.SkippedRecords)
	}
}
