// Package report writes the pipe-delimited output files and owns the
// dedup-on-emission rule.
package report

import (
	"encoding/csv"
	"io"

	"chili-report/internal/domain"
)

// Filtered-recipe report columns. Keep header order EXACT.
var recipeHeader = []string{
	"name",
	"ingredients",
	"url",
	"image",
	"cookTime",
	"recipeYield",
	"datePublished",
	"prepTime",
	"description",
	"difficulty",
}

// WriteRecipesTo writes the filtered-recipe report: one header line, one row
// per recipe, '|'-separated. Values containing the delimiter, quotes or
// newlines are quoted by the csv writer instead of corrupting the row.
func WriteRecipesTo(w io.Writer, recipes []domain.Classified) error {
	cw := csv.NewWriter(w)
	cw.Comma = '|'

	if err := cw.Write(recipeHeader); err != nil {
		return err
	}
	for _, r := range recipes {
		if err := cw.Write(toRecipeRow(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRecipes publishes the report atomically at path.
func WriteRecipes(path string, recipes []domain.Classified) error {
	return writeAtomic(path, func(w io.Writer) error {
		return WriteRecipesTo(w, recipes)
	})
}

func toRecipeRow(r domain.Classified) []string {
	return []string{
		r.Name,
		r.Ingredients,
		r.URL,
		r.Image,
		r.CookTime,
		r.RecipeYield,
		r.DatePublished,
		r.PrepTime,
		r.Description,
		string(r.Difficulty),
	}
}
