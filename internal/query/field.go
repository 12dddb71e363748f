package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/booking-api/internal/domain/resource"
)

// Kind is the value type of a column exposed to filtering or updates.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindFloat
	KindUUID
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindUUID:
		return "uuid"
	case KindDate:
		return "date (YYYY-MM-DD)"
	default:
		return "string"
	}
}

// Comparison is how a filter value is matched against its column.
type Comparison int

const (
	Equal Comparison = iota
	GreaterOrEqual
	LessOrEqual
)

// Field describes one allow-listed column. Name is the public (query or JSON)
// name, Column the database column it maps to.
type Field struct {
	Name       string
	Column     string
	Kind       Kind
	Comparison Comparison
	Nullable   bool

	// bounds apply to numeric updates only.
	bounded  bool
	min, max float64
}

// Between returns a copy of f that rejects numeric updates outside [min, max].
func (f Field) Between(min, max float64) Field {
	f.bounded, f.min, f.max = true, min, max
	return f
}

func Eq(name, column string, kind Kind) Field {
	return Field{Name: name, Column: column, Kind: kind, Comparison: Equal}
}

func Gte(name, column string, kind Kind) Field {
	return Field{Name: name, Column: column, Kind: kind, Comparison: GreaterOrEqual}
}

func Lte(name, column string, kind Kind) Field {
	return Field{Name: name, Column: column, Kind: kind, Comparison: LessOrEqual}
}

// Parse converts a raw query-string value into the column's Go type.
func (f Field) Parse(raw string) (any, error) {
	raw = strings.TrimSpace(raw)

	switch f.Kind {
	case KindBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, f.invalid()
		}
		return v, nil
	case KindInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, f.invalid()
		}
		return v, nil
	case KindFloat:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, f.invalid()
		}
		return v, nil
	case KindUUID:
		v, err := uuid.Parse(raw)
		if err != nil {
			return nil, f.invalid()
		}
		return v.String(), nil
	case KindDate:
		if _, err := time.Parse(time.DateOnly, raw); err != nil {
			return nil, f.invalid()
		}
		return raw, nil
	default:
		return raw, nil
	}
}

// Coerce validates a JSON-decoded value (string, float64, bool or nil).
func (f Field) Coerce(v any) (any, error) {
	if v == nil {
		if f.Nullable {
			return nil, nil
		}
		return nil, f.invalid()
	}

	switch f.Kind {
	case KindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case KindInt:
		if n, ok := v.(float64); ok && n == math.Trunc(n) && math.Abs(n) <= math.MaxInt32 {
			if err := f.inBounds(n); err != nil {
				return nil, err
			}
			return int(n), nil
		}
	case KindFloat:
		if n, ok := v.(float64); ok {
			if err := f.inBounds(n); err != nil {
				return nil, err
			}
			return n, nil
		}
	case KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case KindUUID, KindDate:
		if s, ok := v.(string); ok {
			return f.Parse(s)
		}
	}

	return nil, f.invalid()
}

func (f Field) inBounds(n float64) error {
	if f.bounded && (n < f.min || n > f.max) {
		return resource.NewValidationError(f.Name, fmt.Sprintf("must be between %g and %g", f.min, f.max))
	}
	return nil
}

func (f Field) invalid() error {
	return resource.NewValidationError(f.Name, fmt.Sprintf("must be a valid %s", f.Kind))
}
