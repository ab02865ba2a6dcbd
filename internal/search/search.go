// Package search holds a result set and slices it into pages.
package search

import "github.com/hammamikhairi/forkcook/internal/domain"

// DefaultPerPage is the number of results shown per page.
const DefaultPerPage = 10

// Results is the outcome of one search.
type Results struct {
	Query   string
	Recipes []domain.RecipeSummary
}

// Pagination describes where a page sits in the result set.
// Prev and Next are 0 when there is no such page.
type Pagination struct {
	Page  int
	Pages int
	Prev  int
	Next  int
}

// Page is one page of results.
type Page struct {
	Recipes []domain.RecipeSummary
	Pagination
}

// Pages returns the number of pages for perPage results per page.
func (r *Results) Pages(perPage int) int {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return (len(r.Recipes) + perPage - 1) / perPage
}

// Page returns results [(page-1)*perPage, page*perPage). Pages outside
// 1..Pages are clamped into range.
func (r *Results) Page(page, perPage int) Page {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	pages := r.Pages(perPage)
	if page > pages {
		page = pages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * perPage
	end := min(page*perPage, len(r.Recipes))
	if start > end {
		start = end
	}

	p := Page{
		Recipes:    r.Recipes[start:end],
		Pagination: Pagination{Page: page, Pages: pages},
	}
	if page > 1 && pages > 1 {
		p.Prev = page - 1
	}
	if page < pages {
		p.Next = page + 1
	}
	return p
}

// At returns the recipe at a 1-based position within page.
func (r *Results) At(page, perPage, pos int) (domain.RecipeSummary, bool) {
	p := r.Page(page, perPage)
	if pos < 1 || pos > len(p.Recipes) {
		return domain.RecipeSummary{}, false
	}
	return p.Recipes[pos-1], true
}
