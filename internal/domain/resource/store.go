package resource

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

// Criteria selects one page of rows. A nil Where matches every row.
type Criteria struct {
	Where   sq.Sqlizer
	Skip    int
	Limit   int
	OrderBy string
	Desc    bool
}

// Store is the persistence port used by the resource service.
type Store[T any] interface {
	FindMany(ctx context.Context, c Criteria) ([]T, error)
	Count(ctx context.Context, where sq.Sqlizer) (int64, error)

	// Create persists the row together with its nested owned children and
	// returns it with its immediate relations loaded.
	Create(ctx context.Context, row *T) (*T, error)

	// FindByID returns ErrNotFound when no row matches.
	FindByID(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, id string, fields map[string]any) (*T, error)
	Delete(ctx context.Context, id string) (*T, error)
}

// Cache is an optional read-through cache for single rows.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// Entity is any row addressable by a string primary key.
type Entity interface {
	PrimaryKey() string
}
