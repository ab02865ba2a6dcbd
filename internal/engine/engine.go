// Package engine implements the application controllers: search,
// recipe, shopping list and likes. All application state lives in one
// Engine value; every operation runs synchronously in response to a single
// user action.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/hammamikhairi/forkcook/internal/domain"
	"github.com/hammamikhairi/forkcook/internal/likes"
	"github.com/hammamikhairi/forkcook/internal/logger"
	"github.com/hammamikhairi/forkcook/internal/recipe"
	"github.com/hammamikhairi/forkcook/internal/search"
	"github.com/hammamikhairi/forkcook/internal/shopping"
)

// Option configures the engine.
type Option func(*Engine)

// WithServingsDefault sets the serving count newly opened recipes start at.
func WithServingsDefault(n int) Option {
	return func(e *Engine) {
		e.defaultServings = n
	}
}

// WithPageSize sets the number of search results per page.
func WithPageSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.pageSize = n
		}
	}
}

// State is the full application state. It is owned by the Engine and only
// exposed through accessors.
type State struct {
	Search *search.Results
	Page   int
	Recipe *domain.Recipe
	List   *shopping.List
	Likes  *likes.Book
}

// Engine owns the application state and runs the controllers.
type Engine struct {
	recipes         domain.RecipeSource
	log             *logger.Logger
	state           State
	defaultServings int
	pageSize        int
}

// New creates an engine reading recipes from recipes and persisting likes
// to store.
func New(recipes domain.RecipeSource, store domain.BlobStore, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		recipes:         recipes,
		log:             log,
		defaultServings: recipe.DefaultServings,
		pageSize:        search.DefaultPerPage,
		state: State{
			List:  shopping.NewList(),
			Likes: likes.NewBook(store, log),
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ── Search controller ────────────────────────────────────────────

// Search runs a new search and resets to its first page.
func (e *Engine) Search(ctx context.Context, query string) (search.Page, error) {
	if query == "" {
		return search.Page{}, fmt.Errorf("empty search query")
	}

	found, err := e.recipes.Search(ctx, query)
	if errors.Is(err, domain.ErrNotFound) {
		// The API reports an empty result set as an error.
		found, err = nil, nil
	}
	if err != nil {
		return search.Page{}, fmt.Errorf("searching %q: %w", query, err)
	}

	e.state.Search = &search.Results{Query: query, Recipes: found}
	e.state.Page = 1
	e.log.Info("search %q: %d results", query, len(found))
	return e.SearchPage()
}

// GoToPage moves to page n of the current search.
func (e *Engine) GoToPage(n int) (search.Page, error) {
	if e.state.Search == nil {
		return search.Page{}, domain.ErrNoSearch
	}
	p := e.state.Search.Page(n, e.pageSize)
	e.state.Page = p.Pagination.Page
	return p, nil
}

// SearchPage returns the page currently shown.
func (e *Engine) SearchPage() (search.Page, error) {
	if e.state.Search == nil {
		return search.Page{}, domain.ErrNoSearch
	}
	return e.state.Search.Page(e.state.Page, e.pageSize), nil
}

// Query returns the query of the current search, or "".
func (e *Engine) Query() string {
	if e.state.Search == nil {
		return ""
	}
	return e.state.Search.Query
}

// ResultAt resolves a 1-based position on the current page to a recipe ID.
func (e *Engine) ResultAt(pos int) (string, error) {
	if e.state.Search == nil {
		return "", domain.ErrNoSearch
	}
	r, ok := e.state.Search.At(e.state.Page, e.pageSize, pos)
	if !ok {
		return "", fmt.Errorf("no result #%d on page %d: %w", pos, e.state.Page, domain.ErrNotFound)
	}
	return r.ID, nil
}

// ── Recipe controller ────────────────────────────────────────────

// OpenRecipe fetches and builds the recipe with the given ID. It replaces
// the open recipe only on success.
func (e *Engine) OpenRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	raw, err := e.recipes.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting recipe %s: %w", id, err)
	}

	r := recipe.Build(raw, recipe.WithDefaultServings(e.defaultServings))
	for _, issue := range r.Issues {
		e.log.Warn("recipe %s: ingredient %d not parsed: %v", r.ID, issue.Index+1, issue.Err)
	}

	e.state.Recipe = r
	e.log.Info("opened recipe %s %q (%d ingredients, %d min)", r.ID, r.Title, len(r.Ingredients), r.EstimatedMinutes())
	return r, nil
}

// Recipe returns the open recipe, or nil.
func (e *Engine) Recipe() *domain.Recipe {
	return e.state.Recipe
}

// CanDecrease reports whether the open recipe can lose a serving.
func (e *Engine) CanDecrease() bool {
	return e.state.Recipe != nil && recipe.CanDecrease(e.state.Recipe.Servings)
}

// IncreaseServings scales the open recipe up by one serving.
func (e *Engine) IncreaseServings() (*domain.Recipe, error) {
	return e.updateServings(domain.Increment)
}

// DecreaseServings scales the open recipe down by one serving. At one
// serving it returns domain.ErrServingFloor and leaves the recipe as is.
func (e *Engine) DecreaseServings() (*domain.Recipe, error) {
	if e.state.Recipe != nil && !e.CanDecrease() {
		return e.state.Recipe, domain.ErrServingFloor
	}
	return e.updateServings(domain.Decrement)
}

func (e *Engine) updateServings(dir domain.Direction) (*domain.Recipe, error) {
	r := e.state.Recipe
	if r == nil {
		return nil, domain.ErrNoRecipe
	}
	if err := recipe.UpdateServings(r, dir); err != nil {
		return r, err
	}
	e.log.Debug("recipe %s servings %s -> %d", r.ID, dir, r.Servings)
	return r, nil
}

// ── List controller ──────────────────────────────────────────────

// AddRecipeToList adds every ingredient of the open recipe, at its current
// quantity, to the shopping list.
func (e *Engine) AddRecipeToList() ([]domain.ShoppingItem, error) {
	r := e.state.Recipe
	if r == nil {
		return nil, domain.ErrNoRecipe
	}
	added := e.state.List.AddIngredients(r.Ingredients)
	e.log.Info("added %d items from %s to shopping list", len(added), r.ID)
	return added, nil
}

// DeleteListItem removes an item. ref is an ID, an ID prefix or "#n".
func (e *Engine) DeleteListItem(ref string) error {
	id, err := e.state.List.Find(ref)
	if err != nil {
		return err
	}
	return e.state.List.DeleteItem(id)
}

// UpdateListCount sets the count of an item. ref is as for DeleteListItem.
func (e *Engine) UpdateListCount(ref string, count float64) error {
	id, err := e.state.List.Find(ref)
	if err != nil {
		return err
	}
	return e.state.List.UpdateCount(id, count)
}

// ShoppingItems returns the current shopping list.
func (e *Engine) ShoppingItems() []domain.ShoppingItem {
	return e.state.List.Items()
}

// ── Like controller ──────────────────────────────────────────────

// RestoreLikes loads persisted likes. Call once at startup.
func (e *Engine) RestoreLikes(ctx context.Context) error {
	return e.state.Likes.Restore(ctx)
}

// ToggleLike likes the open recipe, or unlikes it if already liked.
// It reports whether the recipe is liked afterwards.
func (e *Engine) ToggleLike(ctx context.Context) (bool, error) {
	r := e.state.Recipe
	if r == nil {
		return false, domain.ErrNoRecipe
	}

	if e.state.Likes.IsLiked(r.ID) {
		if err := e.state.Likes.Delete(ctx, r.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return true, err
		}
		return false, nil
	}

	_, err := e.state.Likes.Add(ctx, domain.Like{
		ID:     r.ID,
		Title:  r.Title,
		Author: r.Author,
		Image:  r.ImageURL,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// IsLiked reports whether the recipe with id is liked.
func (e *Engine) IsLiked(id string) bool {
	return e.state.Likes.IsLiked(id)
}

// Likes returns all liked recipes.
func (e *Engine) Likes() []domain.Like {
	return e.state.Likes.All()
}

// ── Status ───────────────────────────────────────────────────────

// Status is a snapshot for the status bar.
type Status struct {
	RecipeTitle string
	Servings    int
	ListItems   int
	Likes       int
}

// Status returns a snapshot of the current state.
func (e *Engine) Status() Status {
	s := Status{
		ListItems: e.state.List.Len(),
		Likes:     e.state.Likes.Count(),
	}
	if r := e.state.Recipe; r != nil {
		s.RecipeTitle = r.Title
		s.Servings = r.Servings
	}
	return s
}
