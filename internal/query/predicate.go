package query

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// SearchTermParam is the filter key that carries free-text search.
const SearchTermParam = "search_term"

// Filters are the raw request filters. Unknown keys are ignored.
type Filters map[string]string

// Schema is the static allow-list of one resource.
type Schema struct {
	Searchable []string
	Filterable []Field
	// Sortable maps public sort names to columns.
	Sortable map[string]string
}

// BuildPredicate returns nil when nothing was requested, meaning "match all".
//
// A search term becomes an OR of case-insensitive substring matches over the
// searchable columns. Every filterable field present in filters adds an AND
// term; presence, not truthiness, decides, so "false" and "0" filter.
func BuildPredicate(filters Filters, searchable []string, filterable []Field) (sq.Sqlizer, error) {
	var and sq.And

	if term := strings.TrimSpace(filters[SearchTermParam]); term != "" && len(searchable) > 0 {
		pattern := "%" + strings.ToLower(term) + "%"

		or := make(sq.Or, 0, len(searchable))
		for _, column := range searchable {
			or = append(or, sq.Like{fmt.Sprintf("LOWER(%s)", column): pattern})
		}
		and = append(and, or)
	}

	for _, f := range filterable {
		raw, ok := filters[f.Name]
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}

		v, err := f.Parse(raw)
		if err != nil {
			return nil, err
		}

		switch f.Comparison {
		case GreaterOrEqual:
			and = append(and, sq.GtOrEq{f.Column: v})
		case LessOrEqual:
			and = append(and, sq.LtOrEq{f.Column: v})
		default:
			and = append(and, sq.Eq{f.Column: v})
		}
	}

	if len(and) == 0 {
		return nil, nil
	}
	return and, nil
}

// Predicate applies BuildPredicate with the schema's allow-lists.
func (s Schema) Predicate(filters Filters) (sq.Sqlizer, error) {
	return BuildPredicate(filters, s.Searchable, s.Filterable)
}

// OrderColumn resolves a public sort name, falling back to created_at.
func (s Schema) OrderColumn(sortBy string) string {
	if column, ok := s.Sortable[sortBy]; ok {
		return column
	}
	return DefaultSortBy
}
