package shopping

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/hammamikhairi/forkcook/internal/domain"
)

// sequentialIDs makes item IDs predictable.
func sequentialIDs(l *List) {
	n := 0
	l.newID = func() string {
		n++
		return fmt.Sprintf("item-%d", n)
	}
}

func TestAddItemUsesUUID(t *testing.T) {
	l := NewList()
	item := l.AddItem(2, "cup", "flour")

	if _, err := uuid.Parse(item.ID); err != nil {
		t.Fatalf("item ID %q is not a UUID: %v", item.ID, err)
	}
	if item.Count != 2 || item.Unit != "cup" || item.Ingredient != "flour" {
		t.Fatalf("unexpected item: %+v", item)
	}
	if l.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", l.Len())
	}
}

func TestAddIngredients(t *testing.T) {
	l := NewList()
	sequentialIDs(l)

	added := l.AddIngredients([]domain.Ingredient{
		{Quantity: 5.625, Unit: "cup", Description: "flour"},
		{Quantity: 1, Description: "salt"},
	})
	if len(added) != 2 || l.Len() != 2 {
		t.Fatalf("expected 2 items, got added=%d len=%d", len(added), l.Len())
	}
	if added[0].ID != "item-1" || added[0].Count != 5.625 || added[1].Ingredient != "salt" {
		t.Fatalf("unexpected items: %+v", added)
	}
}

func TestDeleteAndUpdate(t *testing.T) {
	l := NewList()
	sequentialIDs(l)
	l.AddItem(1, "", "eggs")
	l.AddItem(2, "tbsp", "butter")
	l.AddItem(3, "g", "sugar")

	if err := l.DeleteItem("item-2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := l.DeleteItem("item-2"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := l.UpdateCount("item-3", 250); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := l.UpdateCount("missing", 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		if err := l.UpdateCount("item-3", bad); err == nil {
			t.Fatalf("expected error for count %v", bad)
		}
	}

	items := l.Items()
	if len(items) != 2 || items[0].ID != "item-1" || items[1].Count != 250 {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestFind(t *testing.T) {
	l := NewList()
	l.newID = func() func() string {
		ids := []string{"abc-1", "abd-2", "xyz-3"}
		i := 0
		return func() string {
			i++
			return ids[i-1]
		}
	}()
	l.AddItem(1, "", "a")
	l.AddItem(1, "", "b")
	l.AddItem(1, "", "c")

	tests := []struct {
		ref     string
		want    string
		wantErr bool
	}{
		{"#1", "abc-1", false},
		{"#3", "xyz-3", false},
		{"#4", "", true},
		{"#0", "", true},
		{"abd-2", "abd-2", false},
		{"x", "xyz-3", false},
		{"ab", "", true}, // ambiguous
		{"nope", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := l.Find(tt.ref)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Find(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}
