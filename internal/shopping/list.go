// Package shopping implements the in-memory shopping list.
package shopping

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/hammamikhairi/forkcook/internal/domain"
)

// List is an ordered shopping list. Not safe for concurrent use.
type List struct {
	items []domain.ShoppingItem
	newID func() string
}

// NewList creates an empty list.
func NewList() *List {
	return &List{newID: uuid.NewString}
}

// AddItem appends an item with a fresh ID and returns it.
func (l *List) AddItem(count float64, unit, ingredient string) domain.ShoppingItem {
	item := domain.ShoppingItem{
		ID:         l.newID(),
		Count:      count,
		Unit:       unit,
		Ingredient: ingredient,
	}
	l.items = append(l.items, item)
	return item
}

// AddIngredients appends one item per ingredient, using its current
// (possibly scaled) quantity.
func (l *List) AddIngredients(ings []domain.Ingredient) []domain.ShoppingItem {
	added := make([]domain.ShoppingItem, 0, len(ings))
	for _, ing := range ings {
		added = append(added, l.AddItem(ing.Quantity, ing.Unit, ing.Description))
	}
	return added
}

// DeleteItem removes the item with the given ID.
func (l *List) DeleteItem(id string) error {
	idx := l.index(id)
	if idx < 0 {
		return domain.ErrNotFound
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return nil
}

// UpdateCount sets the count of the item with the given ID.
func (l *List) UpdateCount(id string, count float64) error {
	if count < 0 || math.IsNaN(count) || math.IsInf(count, 0) {
		return fmt.Errorf("shopping: invalid count %v", count)
	}
	idx := l.index(id)
	if idx < 0 {
		return domain.ErrNotFound
	}
	l.items[idx].Count = count
	return nil
}

// Find resolves ref to an item ID. ref is either a full ID, a unique ID
// prefix, or a 1-based position like "#2".
func (l *List) Find(ref string) (string, error) {
	if len(ref) > 1 && ref[0] == '#' {
		var n int
		if _, err := fmt.Sscanf(ref[1:], "%d", &n); err != nil || n < 1 || n > len(l.items) {
			return "", domain.ErrNotFound
		}
		return l.items[n-1].ID, nil
	}

	match := ""
	for _, it := range l.items {
		if it.ID == ref {
			return it.ID, nil
		}
		if ref != "" && len(ref) < len(it.ID) && it.ID[:len(ref)] == ref {
			if match != "" {
				return "", fmt.Errorf("shopping: ambiguous item %q", ref)
			}
			match = it.ID
		}
	}
	if match == "" {
		return "", domain.ErrNotFound
	}
	return match, nil
}

// Items returns a copy of the list.
func (l *List) Items() []domain.ShoppingItem {
	return append([]domain.ShoppingItem(nil), l.items...)
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

func (l *List) index(id string) int {
	for i, it := range l.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
