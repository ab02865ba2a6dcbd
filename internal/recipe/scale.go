package recipe

import "github.com/hammamikhairi/forkcook/internal/domain"

// MinServings is the smallest serving count a recipe can be scaled to.
const MinServings = 1

// CanDecrease reports whether servings can go down by one.
func CanDecrease(servings int) bool {
	return servings > MinServings
}

// ScaleServings moves servings one step in dir and multiplies every
// quantity in ings by new/old, in place. The multiplication applies to the
// current quantities, so successive calls chain.
//
// Decrementing at MinServings returns domain.ErrServingFloor and leaves
// ings untouched.
func ScaleServings(ings []domain.Ingredient, servings int, dir domain.Direction) (int, error) {
	next := servings + 1
	if dir == domain.Decrement {
		if !CanDecrease(servings) {
			return servings, domain.ErrServingFloor
		}
		next = servings - 1
	}

	factor := float64(next) / float64(servings)
	for i := range ings {
		ings[i].Quantity *= factor
	}
	return next, nil
}
