package recipe

import (
	"errors"

	"github.com/hammamikhairi/forkcook/internal/domain"
)

// DefaultServings is used because recipe APIs do not report a serving count.
const DefaultServings = 4

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	servings int
}

// WithDefaultServings overrides DefaultServings for built recipes.
func WithDefaultServings(n int) BuildOption {
	return func(c *buildConfig) {
		if n >= MinServings {
			c.servings = n
		}
	}
}

// Build runs the recipe pipeline over raw: ingredients are parsed first,
// then the serving count is set. The returned recipe is ready for display
// and scaling. Ingredient lines that fail to parse are kept as unparsed
// entries and reported in Recipe.Issues.
func Build(raw *domain.RawRecipe, opts ...BuildOption) *domain.Recipe {
	cfg := buildConfig{servings: DefaultServings}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &domain.Recipe{
		ID:        raw.ID,
		Title:     raw.Title,
		Author:    raw.Author,
		ImageURL:  raw.ImageURL,
		SourceURL: raw.SourceURL,
	}
	r.Ingredients, r.Issues = ParseIngredients(raw.IngredientLines)
	r.Servings = CalcServings(cfg.servings)
	return r
}

// ParseIngredients parses every line in order. A line that fails is kept as
// an Unparsed ingredient carrying the cleaned line, and its error is
// returned alongside.
func ParseIngredients(lines []string) ([]domain.Ingredient, []domain.LineError) {
	out := make([]domain.Ingredient, 0, len(lines))
	var issues []domain.LineError
	for i, line := range lines {
		ing, err := ParseLine(line)
		if err != nil {
			var perr *domain.ParseError
			if !errors.As(err, &perr) {
				perr = &domain.ParseError{Line: line, Err: err}
			}
			issues = append(issues, domain.LineError{Index: i, Line: line, Err: perr})
			ing = domain.Ingredient{Description: CleanLine(line), Unparsed: true}
		}
		out = append(out, ing)
	}
	return out, issues
}

// CalcServings returns the serving count a freshly built recipe starts with.
func CalcServings(def int) int {
	if def < MinServings {
		return DefaultServings
	}
	return def
}

// UpdateServings scales r one serving up or down. At the floor it returns
// domain.ErrServingFloor without changing r.
func UpdateServings(r *domain.Recipe, dir domain.Direction) error {
	next, err := ScaleServings(r.Ingredients, r.Servings, dir)
	if err != nil {
		return err
	}
	r.Servings = next
	return nil
}
