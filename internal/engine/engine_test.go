package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/hammamikhairi/forkcook/internal/domain"
	"github.com/hammamikhairi/forkcook/internal/logger"
	"github.com/hammamikhairi/forkcook/internal/recipe"
	"github.com/hammamikhairi/forkcook/internal/storage"
)

func setupEngine(t *testing.T, opts ...Option) (*Engine, *storage.MemoryStore, context.Context) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	recipes := recipe.NewMemorySource(log)
	store := storage.NewMemoryStore(log)
	eng := New(recipes, store, log, opts...)
	return eng, store, context.Background()
}

// failingSource fails every call like an unreachable API.
type failingSource struct{}

func (failingSource) Search(context.Context, string) ([]domain.RecipeSummary, error) {
	return nil, &domain.FetchError{Op: "search", Err: errors.New("connection refused")}
}

func (failingSource) Get(context.Context, string) (*domain.RawRecipe, error) {
	return nil, &domain.FetchError{Op: "get", Err: errors.New("connection refused")}
}

func TestSearchAndPaging(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := recipe.NewMemorySource(log)
	for i := 1; i <= 12; i++ {
		src.Add(&domain.RawRecipe{
			ID:              fmt.Sprintf("soup-%02d", i),
			Title:           fmt.Sprintf("Soup %02d", i),
			IngredientLines: []string{"1 cup water"},
		})
	}
	eng := New(src, storage.NewMemoryStore(log), log, WithPageSize(5))
	ctx := context.Background()

	if _, err := eng.GoToPage(2); !errors.Is(err, domain.ErrNoSearch) {
		t.Fatalf("expected ErrNoSearch before searching, got %v", err)
	}

	page, err := eng.Search(ctx, "soup")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if page.Pages != 3 || page.Page != 1 || page.Next != 2 || page.Prev != 0 {
		t.Fatalf("unexpected first page: %+v", page.Pagination)
	}
	if len(page.Recipes) != 5 || page.Recipes[0].ID != "soup-01" {
		t.Fatalf("unexpected first page recipes: %+v", page.Recipes)
	}
	if eng.Query() != "soup" {
		t.Fatalf("expected query soup, got %q", eng.Query())
	}

	page, err = eng.GoToPage(3)
	if err != nil {
		t.Fatalf("go to page: %v", err)
	}
	if len(page.Recipes) != 2 || page.Prev != 2 || page.Next != 0 {
		t.Fatalf("unexpected last page: %+v", page)
	}

	id, err := eng.ResultAt(2)
	if err != nil {
		t.Fatalf("result at: %v", err)
	}
	if id != "soup-12" {
		t.Fatalf("expected soup-12, got %s", id)
	}
	if _, err := eng.ResultAt(3); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	eng, _, ctx := setupEngine(t)
	if _, err := eng.Search(ctx, ""); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestOpenRecipe(t *testing.T) {
	eng, _, ctx := setupEngine(t)

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{"pizza", "47746", nil},
		{"alfredo", "chicken-alfredo", nil},
		{"missing", "nope", domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := eng.OpenRecipe(ctx, tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.ID != tt.id || eng.Recipe() != r {
				t.Fatalf("recipe not made current: %+v", r)
			}
			if r.Servings != recipe.DefaultServings {
				t.Fatalf("expected %d servings, got %d", recipe.DefaultServings, r.Servings)
			}
		})
	}

	// A failed open keeps the previous recipe.
	if eng.Recipe() == nil || eng.Recipe().ID != "chicken-alfredo" {
		t.Fatalf("expected chicken-alfredo to stay open, got %+v", eng.Recipe())
	}
}

func TestFetchFailuresSurface(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	eng := New(failingSource{}, storage.NewMemoryStore(log), log)
	ctx := context.Background()

	var ferr *domain.FetchError
	if _, err := eng.Search(ctx, "pizza"); !errors.As(err, &ferr) {
		t.Fatalf("expected FetchError from search, got %v", err)
	}
	if _, err := eng.OpenRecipe(ctx, "47746"); !errors.As(err, &ferr) {
		t.Fatalf("expected FetchError from open, got %v", err)
	}
}

// emptySource answers every search the way the API does when nothing matches.
type emptySource struct{ failingSource }

func (emptySource) Search(context.Context, string) ([]domain.RecipeSummary, error) {
	return nil, &domain.FetchError{Op: "search", Err: domain.ErrNotFound}
}

func TestSearchNoResults(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	eng := New(emptySource{}, storage.NewMemoryStore(log), log)

	page, err := eng.Search(context.Background(), "xyz")
	if err != nil {
		t.Fatalf("expected empty results, got %v", err)
	}
	if len(page.Recipes) != 0 || page.Next != 0 || page.Prev != 0 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if _, err := eng.ResultAt(1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServings(t *testing.T) {
	eng, _, ctx := setupEngine(t, WithServingsDefault(2))

	if _, err := eng.IncreaseServings(); !errors.Is(err, domain.ErrNoRecipe) {
		t.Fatalf("expected ErrNoRecipe, got %v", err)
	}

	r, err := eng.OpenRecipe(ctx, "47746")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if r.Servings != 2 {
		t.Fatalf("expected 2 servings, got %d", r.Servings)
	}
	flour := r.Ingredients[0].Quantity

	if _, err := eng.DecreaseServings(); err != nil {
		t.Fatalf("decrease: %v", err)
	}
	if eng.CanDecrease() {
		t.Fatal("CanDecrease should be false at one serving")
	}

	before := append([]domain.Ingredient(nil), r.Ingredients...)
	if _, err := eng.DecreaseServings(); !errors.Is(err, domain.ErrServingFloor) {
		t.Fatalf("expected ErrServingFloor, got %v", err)
	}
	if r.Servings != 1 {
		t.Fatalf("servings changed at floor: %d", r.Servings)
	}
	for i := range before {
		if r.Ingredients[i].Quantity != before[i].Quantity {
			t.Fatalf("ingredient %d mutated at floor", i)
		}
	}

	if _, err := eng.IncreaseServings(); err != nil {
		t.Fatalf("increase: %v", err)
	}
	if _, err := eng.IncreaseServings(); err != nil {
		t.Fatalf("increase: %v", err)
	}
	if r.Servings != 3 {
		t.Fatalf("expected 3 servings, got %d", r.Servings)
	}
	if math.Abs(r.Ingredients[0].Quantity-flour*1.5) > 1e-9 {
		t.Fatalf("expected flour %v, got %v", flour*1.5, r.Ingredients[0].Quantity)
	}
}

func TestShoppingList(t *testing.T) {
	eng, _, ctx := setupEngine(t)

	if _, err := eng.AddRecipeToList(); !errors.Is(err, domain.ErrNoRecipe) {
		t.Fatalf("expected ErrNoRecipe, got %v", err)
	}

	r, err := eng.OpenRecipe(ctx, "47746")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := eng.IncreaseServings(); err != nil {
		t.Fatalf("increase: %v", err)
	}

	added, err := eng.AddRecipeToList()
	if err != nil {
		t.Fatalf("add to list: %v", err)
	}
	if len(added) != len(r.Ingredients) {
		t.Fatalf("expected %d items, got %d", len(r.Ingredients), len(added))
	}
	if added[0].Count != r.Ingredients[0].Quantity || added[0].Unit != "cup" {
		t.Fatalf("list item does not carry scaled quantity: %+v", added[0])
	}

	if err := eng.UpdateListCount("#1", 3); err != nil {
		t.Fatalf("update count: %v", err)
	}
	if err := eng.DeleteListItem("#2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := eng.DeleteListItem("#99"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	items := eng.ShoppingItems()
	if len(items) != len(r.Ingredients)-1 {
		t.Fatalf("expected %d items, got %d", len(r.Ingredients)-1, len(items))
	}
	if items[0].Count != 3 {
		t.Fatalf("expected first count 3, got %v", items[0].Count)
	}
	if got := eng.Status().ListItems; got != len(items) {
		t.Fatalf("status list items = %d, want %d", got, len(items))
	}
}

func TestToggleLikePersists(t *testing.T) {
	eng, store, ctx := setupEngine(t)

	if _, err := eng.ToggleLike(ctx); !errors.Is(err, domain.ErrNoRecipe) {
		t.Fatalf("expected ErrNoRecipe, got %v", err)
	}

	if _, err := eng.OpenRecipe(ctx, "47746"); err != nil {
		t.Fatalf("open: %v", err)
	}
	liked, err := eng.ToggleLike(ctx)
	if err != nil || !liked {
		t.Fatalf("expected liked, got %v, %v", liked, err)
	}
	if !eng.IsLiked("47746") || eng.Status().Likes != 1 {
		t.Fatal("like not recorded")
	}

	// A fresh engine on the same store sees the like after restore.
	log := logger.New(logger.LevelOff, nil)
	other := New(recipe.NewMemorySource(log), store, log)
	if err := other.RestoreLikes(ctx); err != nil {
		t.Fatalf("restore: %v", err)
	}
	got := other.Likes()
	if len(got) != 1 || got[0].ID != "47746" || got[0].Title != "Best Pizza Dough Ever" {
		t.Fatalf("unexpected restored likes: %+v", got)
	}

	liked, err = eng.ToggleLike(ctx)
	if err != nil || liked {
		t.Fatalf("expected unliked, got %v, %v", liked, err)
	}
	if eng.IsLiked("47746") {
		t.Fatal("like not removed")
	}
}
