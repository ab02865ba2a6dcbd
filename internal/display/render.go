package display

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hammamikhairi/forkcook/internal/domain"
	"github.com/hammamikhairi/forkcook/internal/search"
)

// TitleLimit is the title length used in result and like lists.
const TitleLimit = 17

// LimitTitle shortens title to at most limit letters, cutting on word
// boundaries and appending " ...". Spaces do not count towards the limit.
// Once a word does not fit, no later word is kept.
func LimitTitle(title string, limit int) string {
	if utf8.RuneCountInString(title) <= limit {
		return title
	}

	var kept []string
	acc := 0
	for _, word := range strings.Split(title, " ") {
		n := utf8.RuneCountInString(word)
		if acc+n <= limit {
			kept = append(kept, word)
		}
		acc += n
	}
	return strings.Join(kept, " ") + " ..."
}

// maxDenominator bounds the fractions FormatQuantity produces.
const maxDenominator = 16

// FormatQuantity renders an ingredient quantity the way recipes print
// them: whole numbers plain, common fractions as "1/2" or "4 1/2", and
// anything else with at most two decimals.
func FormatQuantity(q float64) string {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return "?"
	}
	if q < 0 {
		return "-" + FormatQuantity(-q)
	}

	whole, frac := math.Modf(q)
	const eps = 1e-3
	if frac < eps {
		return strconv.FormatFloat(whole, 'f', 0, 64)
	}
	if 1-frac < eps {
		return strconv.FormatFloat(whole+1, 'f', 0, 64)
	}

	for den := 2; den <= maxDenominator; den++ {
		num := math.Round(frac * float64(den))
		if num == 0 || num == float64(den) {
			continue
		}
		if math.Abs(frac-num/float64(den)) < eps {
			f := fmt.Sprintf("%d/%d", int(num), den)
			if whole == 0 {
				return f
			}
			return fmt.Sprintf("%d %s", int(whole), f)
		}
	}
	return strings.TrimRight(strings.TrimRight(strconv.FormatFloat(q, 'f', 2, 64), "0"), ".")
}

// RenderPage draws one page of search results. Positions are numbered from
// 1 so "#n" refers to them.
func RenderPage(p search.Page, query string) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("  Results for %q", query)))
	b.WriteByte('\n')

	if len(p.Recipes) == 0 {
		b.WriteString(secondaryStyle.Render("  No recipes found."))
		b.WriteByte('\n')
		return b.String()
	}

	for i, r := range p.Recipes {
		fmt.Fprintf(&b, "  %s %s %s\n",
			labelStyle.Render(fmt.Sprintf("#%d", i+1)),
			primaryStyle.Render(LimitTitle(r.Title, TitleLimit)),
			secondaryStyle.Render(fmt.Sprintf("%s · id %s", r.Author, r.ID)))
	}

	b.WriteString(secondaryStyle.Render("  " + pageFooter(p.Pagination)))
	b.WriteByte('\n')
	return b.String()
}

func pageFooter(p search.Pagination) string {
	parts := []string{fmt.Sprintf("page %d/%d", p.Page, p.Pages)}
	if p.Prev != 0 {
		parts = append(parts, fmt.Sprintf("prev: page %d", p.Prev))
	}
	if p.Next != 0 {
		parts = append(parts, fmt.Sprintf("next: page %d", p.Next))
	}
	return strings.Join(parts, "  ")
}

// RenderRecipe draws a recipe with its current quantities.
func RenderRecipe(r *domain.Recipe, liked bool) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("  " + r.Title))
	if liked {
		b.WriteString(" " + likedStyle.Render("♥"))
	}
	b.WriteByte('\n')
	if r.Author != "" {
		b.WriteString(secondaryStyle.Render("  by " + r.Author))
		b.WriteByte('\n')
	}
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %d min · %d servings", r.EstimatedMinutes(), r.Servings)))
	b.WriteString("\n\n")

	for _, ing := range r.Ingredients {
		b.WriteString(primaryStyle.Render("  • " + FormatIngredient(ing)))
		b.WriteByte('\n')
	}

	if r.SourceURL != "" {
		b.WriteByte('\n')
		b.WriteString(secondaryStyle.Render("  Directions: " + r.SourceURL))
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatIngredient renders one ingredient as "<qty> <unit> <description>".
// Unparsed lines show only their text.
func FormatIngredient(ing domain.Ingredient) string {
	if ing.Unparsed {
		return ing.Description
	}
	parts := []string{FormatQuantity(ing.Quantity)}
	if ing.Unit != "" {
		parts = append(parts, ing.Unit)
	}
	if ing.Description != "" {
		parts = append(parts, ing.Description)
	}
	return strings.Join(parts, " ")
}

// idPrefixLen is how much of a shopping item ID is shown.
const idPrefixLen = 8

// RenderList draws the shopping list.
func RenderList(items []domain.ShoppingItem) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("  Shopping list"))
	b.WriteByte('\n')

	if len(items) == 0 {
		b.WriteString(secondaryStyle.Render("  The list is empty. Open a recipe and type \"add\"."))
		b.WriteByte('\n')
		return b.String()
	}

	for i, it := range items {
		line := FormatQuantity(it.Count)
		if it.Unit != "" {
			line += " " + it.Unit
		}
		line += " " + it.Ingredient

		id := it.ID
		if len(id) > idPrefixLen {
			id = id[:idPrefixLen]
		}
		fmt.Fprintf(&b, "  %s %s %s\n",
			labelStyle.Render(fmt.Sprintf("#%d", i+1)),
			primaryStyle.Render(line),
			secondaryStyle.Render(id))
	}
	return b.String()
}

// RenderLikes draws the liked recipes.
func RenderLikes(likes []domain.Like) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("  Liked recipes"))
	b.WriteByte('\n')

	if len(likes) == 0 {
		b.WriteString(secondaryStyle.Render("  Nothing liked yet."))
		b.WriteByte('\n')
		return b.String()
	}

	for _, l := range likes {
		fmt.Fprintf(&b, "  %s %s %s\n",
			likedStyle.Render("♥"),
			primaryStyle.Render(LimitTitle(l.Title, TitleLimit)),
			secondaryStyle.Render(fmt.Sprintf("%s · id %s", l.Author, l.ID)))
	}
	return b.String()
}
