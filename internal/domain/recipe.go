// Package domain defines the core types and interfaces for the recipe browser.
// All other packages depend on domain; domain depends on nothing.
package domain

// Recipe is an opened recipe with parsed, scalable ingredients.
type Recipe struct {
	ID          string
	Title       string
	Author      string
	ImageURL    string
	SourceURL   string
	Ingredients []Ingredient
	Servings    int
	Issues      []LineError // lines that could not be decomposed
}

// minutesPerBatch is the prep time charged per started group of three ingredients.
const minutesPerBatch = 15

// EstimatedMinutes derives the prep time from the ingredient count.
// It is recomputed on every call and never stored.
func (r *Recipe) EstimatedMinutes() int {
	n := len(r.Ingredients)
	batches := (n + 2) / 3
	return batches * minutesPerBatch
}

// RawRecipe is a recipe as delivered by a RecipeSource, before parsing.
type RawRecipe struct {
	ID              string
	Title           string
	Author          string
	ImageURL        string
	SourceURL       string
	IngredientLines []string
}

// RecipeSummary is a lightweight view of a recipe for search results.
type RecipeSummary struct {
	ID       string
	Title    string
	Author   string
	ImageURL string
}

// Ingredient is one ingredient line decomposed into quantity, unit and
// description.
type Ingredient struct {
	Quantity    float64
	Unit        string // "" or a canonical abbreviation: tbsp, oz, tsp, cup, pound, kg, g
	Description string
	Unparsed    bool // quantity expression could not be evaluated; Quantity is 0
}

// LineError records an ingredient line that failed to parse.
type LineError struct {
	Index int
	Line  string
	Err   error
}

// Direction is a serving-count change.
type Direction int

const (
	Increment Direction = iota
	Decrement
)

// String returns a human-readable direction.
func (d Direction) String() string {
	switch d {
	case Increment:
		return "inc"
	case Decrement:
		return "dec"
	default:
		return "unknown"
	}
}

// Like is a bookmarked recipe.
type Like struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Image  string `json:"img"`
}

// ShoppingItem is one entry on the shopping list.
type ShoppingItem struct {
	ID         string
	Count      float64
	Unit       string
	Ingredient string
}
