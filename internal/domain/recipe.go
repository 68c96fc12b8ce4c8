package domain

// Recipe is one record of the upstream recipe feed. Field names match the
// feed's JSON keys exactly; every field is written verbatim into the
// filtered-recipe report.
type Recipe struct {
	Name          string `json:"name"`
	Ingredients   string `json:"ingredients"`
	URL           string `json:"url"`
	Image         string `json:"image"`
	CookTime      string `json:"cookTime"`
	RecipeYield   string `json:"recipeYield"`
	DatePublished string `json:"datePublished"`
	PrepTime      string `json:"prepTime"`
	Description   string `json:"description"`
}

// Key identifies a recipe for deduplication. Two rows with the same key are
// the same recipe even when other fields differ.
type Key struct {
	Name        string
	Ingredients string
	URL         string
}

func (r Recipe) Key() Key {
	return Key{Name: r.Name, Ingredients: r.Ingredients, URL: r.URL}
}

// MissingFields returns the JSON names of required fields the record did not
// carry. The feed contract makes every field mandatory; an absent key and an
// empty value are indistinguishable after decoding and are treated alike.
func (r Recipe) MissingFields() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", r.Name},
		{"ingredients", r.Ingredients},
		{"url", r.URL},
		{"image", r.Image},
		{"cookTime", r.CookTime},
		{"recipeYield", r.RecipeYield},
		{"datePublished", r.DatePublished},
		{"prepTime", r.PrepTime},
		{"description", r.Description},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Difficulty is the closed set of labels a recipe can be classified under.
type Difficulty string

const (
	DifficultyEasy    Difficulty = "Easy"
	DifficultyMedium  Difficulty = "Medium"
	DifficultyHard    Difficulty = "Hard"
	DifficultyUnknown Difficulty = "Unknown"
)

// Classified is a recipe augmented with its computed difficulty. It is built
// once during filtering; emission and aggregation read it without
// recomputing anything. TotalMinutes caches the parsed prep+cook time so
// both reports see the same value; it is only meaningful when TimeKnown is
// true.
type Classified struct {
	Recipe
	Difficulty   Difficulty
	TotalMinutes int
	TimeKnown    bool
}
