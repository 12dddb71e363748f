package resource

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/booking-api/internal/domain/resource"
	"github.com/BruksfildServices01/booking-api/internal/query"
)

// Definition is the static description of one resource.
type Definition struct {
	Name      string
	Schema    query.Schema
	Updatable []query.Field
}

// ======================================================
// SERVICE
// ======================================================

type Service[T domain.Entity] struct {
	store     domain.Store[T]
	def       Definition
	paginator query.Paginator
	cache     domain.Cache
	onWrite   []func(ctx context.Context, row *T)
	log       zerolog.Logger
}

func NewService[T domain.Entity](
	store domain.Store[T],
	def Definition,
	paginator query.Paginator,
	log zerolog.Logger,
) *Service[T] {
	return &Service[T]{
		store:     store,
		def:       def,
		paginator: paginator,
		log:       log.With().Str("resource", def.Name).Logger(),
	}
}

// WithCache enables read-through caching of GetByID.
func (s *Service[T]) WithCache(cache domain.Cache) *Service[T] {
	s.cache = cache
	return s
}

// OnWrite registers fn to run with every row written through s. Update
// calls it with the row before and after the change.
func (s *Service[T]) OnWrite(fn func(ctx context.Context, row *T)) *Service[T] {
	s.onWrite = append(s.onWrite, fn)
	return s
}

func (s *Service[T]) Definition() Definition {
	return s.def
}

// ======================================================
// LIST
// ======================================================

// List returns one page of rows matching filters. Meta.Total counts the
// filtered set, independent of page and limit.
func (s *Service[T]) List(
	ctx context.Context,
	opts query.PaginationOptions,
	filters query.Filters,
) (*domain.ListResult[T], error) {

	p := s.paginator.Calculate(opts)

	where, err := s.def.Schema.Predicate(filters)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.FindMany(ctx, domain.Criteria{
		Where:   where,
		Skip:    p.Skip,
		Limit:   p.Limit,
		OrderBy: s.def.Schema.OrderColumn(p.SortBy),
		Desc:    p.Desc(),
	})
	if err != nil {
		return nil, err
	}

	total, err := s.store.Count(ctx, where)
	if err != nil {
		return nil, err
	}

	return &domain.ListResult[T]{
		Meta: domain.Meta{
			Total: total,
			Page:  p.Page,
			Limit: p.Limit,
		},
		Data: rows,
	}, nil
}

// ======================================================
// SINGLE ROW
// ======================================================

// Create surfaces store errors unmodified; there is no retry.
func (s *Service[T]) Create(ctx context.Context, row *T) (*T, error) {
	created, err := s.store.Create(ctx, row)
	if err != nil {
		return nil, err
	}

	s.written(ctx, created)
	return created, nil
}

// GetByID returns (nil, nil) when the row does not exist.
func (s *Service[T]) GetByID(ctx context.Context, id string) (*T, error) {
	if !validID(id) {
		return nil, nil
	}

	if s.cache != nil {
		var cached T
		if ok, err := s.cache.Get(ctx, s.cacheKey(id), &cached); err != nil {
			s.log.Warn().Err(err).Str("id", id).Msg("cache read failed")
		} else if ok {
			return &cached, nil
		}
	}

	row, err := s.store.FindByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, s.cacheKey(id), row); err != nil {
			s.log.Warn().Err(err).Str("id", id).Msg("cache write failed")
		}
	}

	return row, nil
}

// Update applies the allow-listed keys of patch; other keys are ignored.
func (s *Service[T]) Update(
	ctx context.Context,
	id string,
	patch map[string]any,
) (*T, error) {

	if !validID(id) {
		return nil, domain.ErrNotFound
	}

	fields := make(map[string]any, len(patch))
	for _, f := range s.def.Updatable {
		raw, ok := patch[f.Name]
		if !ok {
			continue
		}
		v, err := f.Coerce(raw)
		if err != nil {
			return nil, err
		}
		fields[f.Column] = v
	}

	var prior *T
	if len(s.onWrite) > 0 {
		// Absence is reported by the store update below.
		prior, _ = s.store.FindByID(ctx, id)
	}

	row, err := s.store.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.Invalidate(ctx, id)
	s.written(ctx, prior)
	s.written(ctx, row)
	return row, nil
}

// Delete returns the row as it was before removal.
func (s *Service[T]) Delete(ctx context.Context, id string) (*T, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}

	row, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.Invalidate(ctx, id)
	s.written(ctx, row)
	return row, nil
}

// ======================================================
// BULK DELETE
// ======================================================

// DeleteMany attempts every id in order, one at a time, and never stops
// early. Each id lands in exactly one of Deleted, NotFound or Failed.
func (s *Service[T]) DeleteMany(
	ctx context.Context,
	ids []string,
) domain.BulkDeleteResult[T] {

	out := domain.BulkDeleteResult[T]{
		Deleted:  []T{},
		NotFound: []string{},
		Failed:   []domain.DeleteFailure{},
	}

	for _, id := range ids {
		row, err := s.Delete(ctx, id)

		switch {
		case err == nil:
			out.Deleted = append(out.Deleted, *row)
		case errors.Is(err, domain.ErrNotFound):
			out.NotFound = append(out.NotFound, id)
		default:
			s.log.Error().Err(err).Str("id", id).Msg("bulk delete failed")
			out.Failed = append(out.Failed, domain.DeleteFailure{
				ID:     id,
				Reason: failureReason(err),
			})
		}
	}

	return out
}

// ======================================================
// HELPERS
// ======================================================

func (s *Service[T]) cacheKey(id string) string {
	return s.def.Name + ":" + id
}

// Invalidate drops the cached copy of id, e.g. after one of its relations changed.
func (s *Service[T]) Invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, s.cacheKey(id)); err != nil {
		s.log.Warn().Err(err).Str("id", id).Msg("cache invalidation failed")
	}
}

func (s *Service[T]) written(ctx context.Context, row *T) {
	if row == nil {
		return
	}
	for _, fn := range s.onWrite {
		fn(ctx, row)
	}
}

func failureReason(err error) string {
	var ce *domain.ConstraintError
	if errors.As(err, &ce) {
		return ce.Error()
	}
	return "internal_error"
}

// Ids are UUIDs; anything else cannot exist in the store.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
