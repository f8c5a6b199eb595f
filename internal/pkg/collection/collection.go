// Package collection implements the list-view filter and pagination engine.
// Filtering preserves the source order and never mutates the input slice,
// so running the same filters twice yields the same result.
package collection

import (
	"strings"

	"github.com/samber/lo"
)

// Predicate reports whether an item survives a filter.
type Predicate[T any] func(item T) bool

// Filter applies every predicate in order, keeping items that satisfy all
// of them. A nil or empty predicate list returns a copy of the input.
func Filter[T any](items []T, predicates ...Predicate[T]) []T {
	result := lo.Filter(items, func(item T, _ int) bool {
		for _, p := range predicates {
			if p != nil && !p(item) {
				return false
			}
		}
		return true
	})
	return result
}

// Page is one pagination window over a filtered collection.
type Page[T any] struct {
	Items      []T
	Total      int
	TotalPages int
	Page       int
	PageSize   int
}

// Paginate windows items for the given 1-based page number. Pages out of
// range yield an empty item list; an empty collection has zero total pages.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}
}

// MatchesSearchTerm reports a case-insensitive substring match of term
// against any of the given fields. An empty term matches everything.
func MatchesSearchTerm(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
