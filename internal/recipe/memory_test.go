package recipe

import (
	"context"
	"testing"

	"github.com/hammamikhairi/forkcook/internal/domain"
	"github.com/hammamikhairi/forkcook/internal/logger"
)

func TestMemorySourceGet(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := NewMemorySource(log)
	ctx := context.Background()

	tests := []struct {
		id      string
		wantErr error
	}{
		{"47746", nil},
		{"chicken-alfredo", nil},
		{"vegetable-stir-fry", nil},
		{"nonexistent", domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			r, err := src.Get(ctx, tt.id)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.ID != tt.id {
				t.Fatalf("expected ID %s, got %s", tt.id, r.ID)
			}
			if len(r.IngredientLines) == 0 {
				t.Fatal("recipe has no ingredient lines")
			}
		})
	}
}

func TestMemorySourceGetReturnsCopy(t *testing.T) {
	src := NewMemorySource(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	first, err := src.Get(ctx, "47746")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	first.IngredientLines[0] = "changed"

	second, err := src.Get(ctx, "47746")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if second.IngredientLines[0] == "changed" {
		t.Fatal("Get leaked internal state")
	}
}

func TestMemorySourceSearch(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := NewMemorySource(log)
	ctx := context.Background()

	tests := []struct {
		query string
		count int
	}{
		{"pizza", 1},
		{"chicken", 1},
		{"garlic", 2},
		{"forkcook", 2},
		{"", 0},
		{"nonexistent-query-xyz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results, err := src.Search(ctx, tt.query)
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			if len(results) != tt.count {
				t.Fatalf("query=%q: expected %d results, got %d", tt.query, tt.count, len(results))
			}
		})
	}
}

func TestMemorySourceRecipesBuild(t *testing.T) {
	src := NewMemorySource(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	raw, err := src.Get(ctx, "47746")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	r := Build(raw)
	if len(r.Issues) != 0 {
		t.Fatalf("built-in recipe has parse issues: %+v", r.Issues)
	}
	first := r.Ingredients[0]
	if first.Quantity != 4.5 || first.Unit != "cup" {
		t.Fatalf("unexpected first ingredient: %+v", first)
	}
}
