// Package query implements the generic search/filter/sort/paginate pipeline
// shared by every listable entity type.
package query

import (
	"sort"
	"strings"

	"sanctuary-api/internal/util"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type Params struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

type Page[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

func coercePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func coercePageSize(pageSize int) int {
	if pageSize < 1 {
		return DefaultPageSize
	}
	if pageSize > MaxPageSize {
		return MaxPageSize
	}
	return pageSize
}

// Paginate slices items into a 1-based page. TotalItems counts the
// post-filter, pre-slice collection; TotalPages is never below 1.
func Paginate[T any](items []T, params Params) Page[T] {
	page := coercePage(params.Page)
	pageSize := coercePageSize(params.PageSize)

	totalItems := len(items)
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	if start > totalItems {
		start = totalItems
	}
	end := start + pageSize
	if end > totalItems {
		end = totalItems
	}

	data := make([]T, end-start)
	copy(data, items[start:end])

	return Page[T]{
		Data: data,
		Meta: Meta{
			Page:       page,
			PageSize:   pageSize,
			TotalItems: totalItems,
			TotalPages: totalPages,
		},
	}
}

// Search keeps items whose folded text from ANY selector contains the folded
// term. An empty term keeps everything.
func Search[T any](items []T, term string, selectors ...func(T) string) []T {
	if term == "" {
		return items
	}

	folded := util.Fold(term)
	out := items[:0:0]
	for _, item := range items {
		for _, selector := range selectors {
			if strings.Contains(util.Fold(selector(item)), folded) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Filter keeps items satisfying every non-nil predicate; nil predicates are
// skipped so callers can pass optional filters unconditionally.
func Filter[T any](items []T, predicates ...func(T) bool) []T {
	active := predicates[:0:0]
	for _, predicate := range predicates {
		if predicate != nil {
			active = append(active, predicate)
		}
	}
	if len(active) == 0 {
		return items
	}

	out := items[:0:0]
	for _, item := range items {
		keep := true
		for _, predicate := range active {
			if !predicate(item) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out
}

// SortStable sorts items in place, preserving the order of equal elements.
func SortStable[T any](items []T, less func(a, b T) bool) {
	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
}
