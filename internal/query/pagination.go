package query

import (
	"math"
	"strconv"
	"strings"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"

	DefaultPage   = 1
	DefaultLimit  = 10
	DefaultSortBy = "created_at"
)

// PaginationOptions is the raw, possibly empty, request input.
type PaginationOptions struct {
	Page      string
	Limit     string
	SortBy    string
	SortOrder string
}

// Pagination is always fully defined: Page >= 1, Limit >= 1, Skip >= 0.
// Skip saturates at math.MaxInt.
type Pagination struct {
	Page      int
	Limit     int
	Skip      int
	SortBy    string
	SortOrder string
}

// Desc reports whether results are ordered descending.
func (p Pagination) Desc() bool {
	return p.SortOrder == SortDesc
}

// Paginator holds the configurable defaults.
type Paginator struct {
	DefaultLimit  int
	DefaultSortBy string
}

func NewPaginator(defaultLimit int) Paginator {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	return Paginator{DefaultLimit: defaultLimit, DefaultSortBy: DefaultSortBy}
}

// Calculate never fails: absent or invalid numbers fall back to defaults.
// No upper bound is placed on Limit.
func (p Paginator) Calculate(opts PaginationOptions) Pagination {
	defaultLimit := p.DefaultLimit
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	defaultSortBy := p.DefaultSortBy
	if defaultSortBy == "" {
		defaultSortBy = DefaultSortBy
	}

	page := positiveInt(opts.Page, DefaultPage)
	limit := positiveInt(opts.Limit, defaultLimit)

	// A page past the addressable range is empty, not page 1.
	skip := math.MaxInt
	if page-1 <= math.MaxInt/limit {
		skip = (page - 1) * limit
	}

	sortBy := strings.TrimSpace(opts.SortBy)
	if sortBy == "" {
		sortBy = defaultSortBy
	}

	sortOrder := strings.ToLower(strings.TrimSpace(opts.SortOrder))
	if sortOrder != SortAsc && sortOrder != SortDesc {
		sortOrder = SortDesc
	}

	return Pagination{
		Page:      page,
		Limit:     limit,
		Skip:      skip,
		SortBy:    sortBy,
		SortOrder: sortOrder,
	}
}

func positiveInt(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
