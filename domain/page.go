package domain

import (
	"context"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	// MaxPageLimit caps limit so a single request cannot pull a whole collection.
	MaxPageLimit = 100

	SortAsc  = "asc"
	SortDesc = "desc"

	// DefaultSortField is used when no sort field or an unknown one is given.
	DefaultSortField = "createdAt"
)

// PageQuery is the shared page/limit/sort input of every listing.
type PageQuery struct {
	Page      int
	Limit     int
	SortField string
	SortDir   string
}

// ParsePageQuery builds a normalized PageQuery from raw query-string values.
// Non-numeric or missing page/limit fall back to their defaults.
func ParsePageQuery(page, limit, sortField, sortDir string) PageQuery {
	q := PageQuery{
		SortField: strings.TrimSpace(sortField),
		SortDir:   strings.ToLower(strings.TrimSpace(sortDir)),
	}
	if p, err := strconv.Atoi(strings.TrimSpace(page)); err == nil {
		q.Page = p
	}
	if l, err := strconv.Atoi(strings.TrimSpace(limit)); err == nil {
		q.Limit = l
	}
	return q.Normalize()
}

// Normalize coerces page and limit to positive integers, bounds limit and defaults the sort.
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxPageLimit {
		q.Limit = MaxPageLimit
	}
	if q.SortField == "" {
		q.SortField = DefaultSortField
	}
	if q.SortDir != SortAsc {
		q.SortDir = SortDesc
	}
	return q
}

// Offset is the number of items skipped before this page.
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

func (q PageQuery) Descending() bool {
	return q.SortDir != SortAsc
}

// TotalPages is ceil(total / limit).
func (q PageQuery) TotalPages(total int64) int {
	if total <= 0 || q.Limit < 1 {
		return 0
	}
	limit := int64(q.Limit)
	return int((total + limit - 1) / limit)
}

// Page is one window of a filtered, sorted collection.
type Page[T any] struct {
	Items       []T
	TotalCount  int64
	CurrentPage int
	TotalPages  int
	Limit       int
}

// NewPage wraps items with the pagination metadata for q.
func NewPage[T any](items []T, total int64, q PageQuery) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:       items,
		TotalCount:  total,
		CurrentPage: q.Page,
		TotalPages:  q.TotalPages(total),
		Limit:       q.Limit,
	}
}

// PageSource returns one window of a collection plus the filtered total before skip/limit.
type PageSource[T any] func(ctx context.Context, filter ListFilter, q PageQuery) ([]T, int64, error)

// ListPage normalizes q, reads one window from src and attaches the page metadata.
func ListPage[T any](ctx context.Context, src PageSource[T], filter ListFilter, q PageQuery) (Page[T], error) {
	q = q.Normalize()
	items, total, err := src(ctx, filter, q)
	if err != nil {
		return Page[T]{}, err
	}
	return NewPage(items, total, q), nil
}
