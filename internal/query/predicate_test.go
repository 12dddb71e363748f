package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/booking-api/internal/domain/resource"
)

var testSchema = Schema{
	Searchable: []string{"name", "description"},
	Filterable: []Field{
		Eq("category_id", "category_id", KindUUID),
		Eq("is_available", "is_available", KindBool),
		Eq("location", "location", KindString),
		Gte("min_price", "price", KindFloat),
		Lte("max_price", "price", KindFloat),
	},
	Sortable: map[string]string{"name": "name", "created_at": "created_at"},
}

func TestPredicateEmptyMatchesAll(t *testing.T) {
	for _, f := range []Filters{
		nil,
		{},
		{"search_term": "   "},
		{"unknown": "x"},
		{"location": ""},
	} {
		w, err := testSchema.Predicate(f)
		require.NoError(t, err)
		assert.Nil(t, w, "filters %v", f)
	}
}

func TestPredicateSearchTerm(t *testing.T) {
	w, err := testSchema.Predicate(Filters{"search_term": "CuT"})
	require.NoError(t, err)
	require.NotNil(t, w)

	sql, args, err := w.ToSql()
	require.NoError(t, err)

	assert.Equal(t, "((LOWER(name) LIKE ? OR LOWER(description) LIKE ?))", sql)
	assert.Equal(t, []any{"%cut%", "%cut%"}, args)
}

func TestPredicateSearchWithoutSearchableColumns(t *testing.T) {
	w, err := BuildPredicate(Filters{"search_term": "x"}, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestPredicateFiltersAreAnded(t *testing.T) {
	id := "7b0c0e0a-3b7e-4a53-9d0f-1c1b2f7e4a10"

	w, err := testSchema.Predicate(Filters{
		"search_term": "hair",
		"category_id": id,
		"min_price":   "10",
		"max_price":   "99.5",
		"ignored":     "x",
	})
	require.NoError(t, err)

	sql, args, err := w.ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"((LOWER(name) LIKE ? OR LOWER(description) LIKE ?) AND category_id = ? AND price >= ? AND price <= ?)",
		sql,
	)
	assert.Equal(t, []any{"%hair%", "%hair%", id, 10.0, 99.5}, args)
}

func TestPredicateFalsyValuesStillFilter(t *testing.T) {
	w, err := testSchema.Predicate(Filters{"is_available": "false", "min_price": "0"})
	require.NoError(t, err)
	require.NotNil(t, w)

	sql, args, err := w.ToSql()
	require.NoError(t, err)

	assert.Equal(t, "(is_available = ? AND price >= ?)", sql)
	assert.Equal(t, []any{false, 0.0}, args)
}

func TestPredicateRejectsMalformedValues(t *testing.T) {
	tests := map[string]Filters{
		"is_available": {"is_available": "maybe"},
		"category_id":  {"category_id": "not-a-uuid"},
		"min_price":    {"min_price": "cheap"},
	}

	for field, filters := range tests {
		t.Run(field, func(t *testing.T) {
			_, err := testSchema.Predicate(filters)

			var ve *resource.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, field, ve.Field)
		})
	}
}

func TestOrderColumn(t *testing.T) {
	assert.Equal(t, "name", testSchema.OrderColumn("name"))
	assert.Equal(t, "created_at", testSchema.OrderColumn("price; DROP TABLE services"))
	assert.Equal(t, "created_at", testSchema.OrderColumn(""))
}
