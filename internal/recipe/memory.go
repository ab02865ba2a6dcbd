package recipe

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/hammamikhairi/forkcook/internal/domain"
	"github.com/hammamikhairi/forkcook/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*MemorySource)(nil)

// MemorySource serves built-in raw recipes. Safe for concurrent reads.
type MemorySource struct {
	mu      sync.RWMutex
	recipes map[string]*domain.RawRecipe
	log     *logger.Logger
}

// NewMemorySource creates a recipe source preloaded with built-in recipes.
func NewMemorySource(log *logger.Logger) *MemorySource {
	src := &MemorySource{
		recipes: make(map[string]*domain.RawRecipe),
		log:     log,
	}
	src.seed()
	return src
}

// Add registers a raw recipe, replacing any recipe with the same ID.
func (s *MemorySource) Add(r *domain.RawRecipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes[r.ID] = r
}

// Get returns a copy of the raw recipe with the given ID.
func (s *MemorySource) Get(ctx context.Context, id string) (*domain.RawRecipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.recipes[id]
	if !ok {
		s.log.Debug("recipe not found: %s", id)
		return nil, domain.ErrNotFound
	}
	cp := *r
	cp.IngredientLines = append([]string(nil), r.IngredientLines...)
	return &cp, nil
}

// Search returns recipes whose title, author or ingredients contain the
// query, ordered by title.
func (s *MemorySource) Search(ctx context.Context, query string) ([]domain.RecipeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	s.log.Debug("searching recipes for: %s", q)

	var out []domain.RecipeSummary
	for _, r := range s.recipes {
		if s.matches(r, q) {
			out = append(out, domain.RecipeSummary{
				ID:       r.ID,
				Title:    r.Title,
				Author:   r.Author,
				ImageURL: r.ImageURL,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (s *MemorySource) matches(r *domain.RawRecipe, query string) bool {
	if query == "" {
		return false
	}
	if strings.Contains(strings.ToLower(r.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Author), query) {
		return true
	}
	for _, line := range r.IngredientLines {
		if strings.Contains(strings.ToLower(line), query) {
			return true
		}
	}
	return false
}

// seed populates the source with built-in recipes.
func (s *MemorySource) seed() {
	recipes := []*domain.RawRecipe{
		pizzaDough(),
		chickenAlfredo(),
		vegetableStirFry(),
	}
	for _, r := range recipes {
		s.recipes[r.ID] = r
	}
	s.log.Debug("seeded %d recipes", len(recipes))
}

func pizzaDough() *domain.RawRecipe {
	return &domain.RawRecipe{
		ID:        "47746",
		Title:     "Best Pizza Dough Ever",
		Author:    "101 Cookbooks",
		ImageURL:  "http://forkify-api.herokuapp.com/images/best_pizza_dough_recipe1b20.jpg",
		SourceURL: "http://www.101cookbooks.com/archives/001199.html",
		IngredientLines: []string{
			"4 1/2 cups (20.25 ounces) unbleached high-gluten, bread, or all-purpose flour, chilled",
			"1 3/4 (.44 ounce) teaspoons salt",
			"1 teaspoon (.11 ounce) instant yeast",
			"1/4 cup (2 ounces) olive oil (optional)",
			"1 3/4 cups (14 ounces) water, ice cold (40F)",
			"Semolina flour OR cornmeal for dusting",
		},
	}
}

func chickenAlfredo() *domain.RawRecipe {
	return &domain.RawRecipe{
		ID:        "chicken-alfredo",
		Title:     "Chicken Alfredo",
		Author:    "Forkcook Kitchen",
		SourceURL: "",
		IngredientLines: []string{
			"250 g spaghetti",
			"2 chicken breasts (medium)",
			"1 cup creme fraiche",
			"1 cup gruyere cheese, grated",
			"3 Tablespoons margarine",
			"4 cloves garlic",
			"1 tablespoon olive oil",
			"salt to taste",
			"black pepper to taste",
		},
	}
}

func vegetableStirFry() *domain.RawRecipe {
	return &domain.RawRecipe{
		ID:     "vegetable-stir-fry",
		Title:  "Vegetable Stir Fry",
		Author: "Forkcook Kitchen",
		IngredientLines: []string{
			"1 large bell pepper",
			"2 cups broccoli florets",
			"1 carrot (medium)",
			"1 cup snap peas",
			"3 cloves garlic",
			"1 tablespoon fresh ginger, grated",
			"2 tablespoons soy sauce",
			"1 tablespoon sesame oil",
			"2 tablespoons vegetable oil",
			"1 teaspoon cornstarch (optional)",
			"1 cup rice",
		},
	}
}
