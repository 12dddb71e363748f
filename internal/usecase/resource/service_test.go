package resource_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/booking-api/internal/domain/resource"
	"github.com/BruksfildServices01/booking-api/internal/infra/repository"
	"github.com/BruksfildServices01/booking-api/internal/logger"
	"github.com/BruksfildServices01/booking-api/internal/models"
	"github.com/BruksfildServices01/booking-api/internal/query"
	"github.com/BruksfildServices01/booking-api/internal/testutil"
	ucResource "github.com/BruksfildServices01/booking-api/internal/usecase/resource"
)

const missingID = "00000000-0000-4000-8000-000000000000"

type fixture struct {
	categories *ucResource.Service[models.Category]
	services   *ucResource.Service[models.Service]
	category   models.Category
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	db := testutil.NewDB(t)
	paginator := query.NewPaginator(query.DefaultLimit)

	return fixture{
		categories: ucResource.NewService[models.Category](
			repository.NewResourceGormRepository[models.Category](db, repository.CategoryRelations),
			ucResource.CategoryDefinition,
			paginator,
			logger.Nop(),
		),
		services: ucResource.NewService[models.Service](
			repository.NewResourceGormRepository[models.Service](db, repository.ServiceRelations),
			ucResource.ServiceDefinition,
			paginator,
			logger.Nop(),
		),
		category: testutil.CreateCategory(t, db, "Hair"),
	}
}

func (f fixture) createService(t *testing.T, s models.Service) *models.Service {
	t.Helper()

	s.CategoryID = f.category.ID
	created, err := f.services.Create(context.Background(), &s)
	require.NoError(t, err)
	return created
}

// ======================================================
// LIST
// ======================================================

func TestListReturnsPageAndTotal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, name := range []string{"Haircut", "Beard trim", "Shave"} {
		f.createService(t, models.Service{Name: name, Price: 10, IsAvailable: true})
	}

	res, err := f.services.List(ctx, query.PaginationOptions{Page: "1", Limit: "2"}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(3), res.Meta.Total)
	assert.Equal(t, 1, res.Meta.Page)
	assert.Equal(t, 2, res.Meta.Limit)
	assert.Len(t, res.Data, 2)

	res, err = f.services.List(ctx, query.PaginationOptions{Page: "2", Limit: "2"}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Meta.Total)
	assert.Len(t, res.Data, 1)
}

func TestListEmptyStore(t *testing.T) {
	f := newFixture(t)

	res, err := f.services.List(context.Background(), query.PaginationOptions{}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.Meta.Total)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestListPastAddressableRangeIsEmpty(t *testing.T) {
	f := newFixture(t)
	f.createService(t, models.Service{Name: "Haircut", Price: 10})

	res, err := f.services.List(context.Background(), query.PaginationOptions{
		Page:  "9223372036854775807",
		Limit: "2",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.Meta.Total)
	assert.Empty(t, res.Data)
}

func TestListSearchIsCaseInsensitiveSubstring(t *testing.T) {
	f := newFixture(t)

	f.createService(t, models.Service{Name: "Haircut", Description: "classic"})
	f.createService(t, models.Service{Name: "Massage", Description: "after a HAIRcut"})
	f.createService(t, models.Service{Name: "Manicure"})

	res, err := f.services.List(context.Background(), query.PaginationOptions{}, query.Filters{
		"search_term": "haircut",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), res.Meta.Total)
	for _, s := range res.Data {
		assert.NotEqual(t, "Manicure", s.Name)
	}
}

func TestListFiltersUseExactValuesIncludingFalse(t *testing.T) {
	f := newFixture(t)

	f.createService(t, models.Service{Name: "Open", IsAvailable: true, Price: 30})
	f.createService(t, models.Service{Name: "Closed", IsAvailable: false, Price: 80})

	res, err := f.services.List(context.Background(), query.PaginationOptions{}, query.Filters{
		"is_available": "false",
	})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Closed", res.Data[0].Name)

	res, err = f.services.List(context.Background(), query.PaginationOptions{}, query.Filters{
		"min_price": "50",
	})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Closed", res.Data[0].Name)
}

func TestListSortsByAllowListedColumn(t *testing.T) {
	f := newFixture(t)

	f.createService(t, models.Service{Name: "B", Price: 20})
	f.createService(t, models.Service{Name: "A", Price: 30})
	f.createService(t, models.Service{Name: "C", Price: 10})

	res, err := f.services.List(context.Background(), query.PaginationOptions{
		SortBy:    "price",
		SortOrder: "asc",
	}, nil)
	require.NoError(t, err)
	require.Len(t, res.Data, 3)

	assert.Equal(t, []string{"C", "B", "A"}, []string{res.Data[0].Name, res.Data[1].Name, res.Data[2].Name})
}

func TestListRejectsMalformedFilter(t *testing.T) {
	f := newFixture(t)

	_, err := f.services.List(context.Background(), query.PaginationOptions{}, query.Filters{
		"is_available": "perhaps",
	})

	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
}

// ======================================================
// SINGLE ROW
// ======================================================

func TestCreateWithNestedImages(t *testing.T) {
	f := newFixture(t)

	created := f.createService(t, models.Service{
		Name:  "Coloring",
		Price: 120,
		Images: []models.Image{
			{FilePath: "https://cdn.example.com/a.webp"},
			{FilePath: "https://cdn.example.com/b.webp"},
		},
	})

	assert.NotEmpty(t, created.ID)
	require.Len(t, created.Images, 2)
	require.NotNil(t, created.Category)
	assert.Equal(t, "Hair", created.Category.Title)

	got, err := f.services.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Coloring", got.Name)
	assert.Len(t, got.Images, 2)
	for _, img := range got.Images {
		assert.Equal(t, created.ID, img.ServiceID)
	}
}

func TestCreateIgnoresClientSuppliedRelations(t *testing.T) {
	f := newFixture(t)

	created := f.createService(t, models.Service{
		Name:     "Sneaky",
		Category: &models.Category{Title: "Injected"},
	})
	assert.Equal(t, "Hair", created.Category.Title)

	res, err := f.categories.List(context.Background(), query.PaginationOptions{}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Meta.Total)
}

func TestCreateUniqueViolation(t *testing.T) {
	f := newFixture(t)

	_, err := f.categories.Create(context.Background(), &models.Category{Title: "Hair"})

	var ce *domain.ConstraintError
	require.True(t, errors.As(err, &ce), "got %v", err)
	assert.Equal(t, domain.ConstraintUnique, ce.Kind)
}

func TestGetByIDAbsent(t *testing.T) {
	f := newFixture(t)

	for _, id := range []string{missingID, "not-a-uuid", ""} {
		got, err := f.services.GetByID(context.Background(), id)
		assert.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestUpdatePartial(t *testing.T) {
	f := newFixture(t)
	created := f.createService(t, models.Service{Name: "Haircut", Price: 50, IsAvailable: true})

	updated, err := f.services.Update(context.Background(), created.ID, map[string]any{
		"price":        75.0,
		"is_available": false,
		"id":           missingID,
		"unknown":      "ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Haircut", updated.Name)
	assert.Equal(t, 75.0, updated.Price)
	assert.False(t, updated.IsAvailable)
}

func TestUpdateValidation(t *testing.T) {
	f := newFixture(t)
	created := f.createService(t, models.Service{Name: "Haircut"})

	_, err := f.services.Update(context.Background(), created.ID, map[string]any{"price": -1.0})

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "price", ve.Field)
}

func TestUpdateAbsent(t *testing.T) {
	f := newFixture(t)

	for _, id := range []string{missingID, "garbage"} {
		_, err := f.services.Update(context.Background(), id, map[string]any{"name": "x"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	}
}

func TestDeleteReturnsPriorStateAndRemovesRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.createService(t, models.Service{Name: "Haircut"})

	deleted, err := f.services.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Equal(t, "Haircut", deleted.Name)

	got, err := f.services.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = f.services.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ======================================================
// BULK DELETE
// ======================================================

func TestDeleteManyPartitionsIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.createService(t, models.Service{Name: "A"})
	c := f.createService(t, models.Service{Name: "C"})
	b := missingID

	res := f.services.DeleteMany(ctx, []string{a.ID, b, c.ID})

	require.Len(t, res.Deleted, 2)
	assert.Equal(t, a.ID, res.Deleted[0].ID)
	assert.Equal(t, c.ID, res.Deleted[1].ID)
	assert.Equal(t, []string{b}, res.NotFound)
	assert.Empty(t, res.Failed)

	again := f.services.DeleteMany(ctx, []string{a.ID, b, c.ID})
	assert.Empty(t, again.Deleted)
	assert.Equal(t, []string{a.ID, b, c.ID}, again.NotFound)
}

func TestDeleteManyEmptyInput(t *testing.T) {
	f := newFixture(t)

	res := f.services.DeleteMany(context.Background(), nil)
	assert.NotNil(t, res.Deleted)
	assert.NotNil(t, res.NotFound)
	assert.NotNil(t, res.Failed)
	assert.Empty(t, res.Deleted)
}

func TestDeleteManyRecordsConstraintFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Services reference the category with ON DELETE RESTRICT.
	f.createService(t, models.Service{Name: "Haircut"})
	empty, err := f.categories.Create(ctx, &models.Category{Title: "Nails"})
	require.NoError(t, err)

	res := f.categories.DeleteMany(ctx, []string{f.category.ID, empty.ID, "junk"})

	require.Len(t, res.Deleted, 1)
	assert.Equal(t, empty.ID, res.Deleted[0].ID)
	assert.Equal(t, []string{"junk"}, res.NotFound)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, f.category.ID, res.Failed[0].ID)
	assert.Contains(t, res.Failed[0].Reason, "foreign_key")
}

// fakeStore fails deletes of ids listed in broken with a non-domain error.
type fakeStore struct {
	domain.Store[models.Feedback]
	rows   map[string]models.Feedback
	broken map[string]bool
}

func (s *fakeStore) Delete(_ context.Context, id string) (*models.Feedback, error) {
	if s.broken[id] {
		return nil, errors.New("connection reset by peer")
	}
	row, ok := s.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(s.rows, id)
	return &row, nil
}

func TestDeleteManyContinuesAfterUnexpectedErrors(t *testing.T) {
	ids := []string{
		"11111111-1111-4111-8111-111111111111",
		"22222222-2222-4222-8222-222222222222",
		"33333333-3333-4333-8333-333333333333",
		"44444444-4444-4444-8444-444444444444",
	}

	store := &fakeStore{
		rows: map[string]models.Feedback{
			ids[0]: {Base: models.Base{ID: ids[0]}},
			ids[2]: {Base: models.Base{ID: ids[2]}},
		},
		broken: map[string]bool{ids[1]: true},
	}

	svc := ucResource.NewService[models.Feedback](
		store,
		ucResource.FeedbackDefinition,
		query.NewPaginator(query.DefaultLimit),
		logger.Nop(),
	)

	res := svc.DeleteMany(context.Background(), ids)

	require.Len(t, res.Deleted, 2)
	assert.Equal(t, []string{ids[3]}, res.NotFound)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, domain.DeleteFailure{ID: ids[1], Reason: "internal_error"}, res.Failed[0])
	assert.Equal(t, len(ids), len(res.Deleted)+len(res.NotFound)+len(res.Failed))
}

// ======================================================
// CACHE
// ======================================================

type memoryCache struct {
	rows map[string]any
	gets int
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.gets++
	v, ok := c.rows[key]
	if !ok {
		return false, nil
	}
	*(dest.(*models.Category)) = v.(models.Category)
	return true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value any) error {
	c.rows[key] = *(value.(*models.Category))
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.rows, k)
	}
	return nil
}

func TestGetByIDReadThroughCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cache := &memoryCache{rows: map[string]any{}}
	f.categories.WithCache(cache)

	got, err := f.categories.GetByID(ctx, f.category.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Contains(t, cache.rows, "category:"+f.category.ID)

	// Served from the cache, not the store.
	cache.rows["category:"+f.category.ID] = models.Category{Base: got.Base, Title: "Cached"}
	got, err = f.categories.GetByID(ctx, f.category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cached", got.Title)

	_, err = f.categories.Update(ctx, f.category.ID, map[string]any{"title": "Barber"})
	require.NoError(t, err)
	assert.NotContains(t, cache.rows, "category:"+f.category.ID)

	got, err = f.categories.GetByID(ctx, f.category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Barber", got.Title)
}

func TestOnWriteEvictsCachedParent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cache := &memoryCache{rows: map[string]any{}}
	f.categories.WithCache(cache)
	f.services.OnWrite(func(ctx context.Context, s *models.Service) {
		f.categories.Invalidate(ctx, s.CategoryID)
	})

	got, err := f.categories.GetByID(ctx, f.category.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Services)

	created := f.createService(t, models.Service{Name: "Haircut", Price: 10, IsAvailable: true})

	got, err = f.categories.GetByID(ctx, f.category.ID)
	require.NoError(t, err)
	require.Len(t, got.Services, 1)
	assert.Equal(t, "Haircut", got.Services[0].Name)

	res, err := f.categories.List(ctx, query.PaginationOptions{}, nil)
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Len(t, res.Data[0].Services, len(got.Services))

	_, err = f.services.Update(ctx, created.ID, map[string]any{"name": "Fade"})
	require.NoError(t, err)
	got, err = f.categories.GetByID(ctx, f.category.ID)
	require.NoError(t, err)
	require.Len(t, got.Services, 1)
	assert.Equal(t, "Fade", got.Services[0].Name)

	_, err = f.services.Delete(ctx, created.ID)
	require.NoError(t, err)
	got, err = f.categories.GetByID(ctx, f.category.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Services)
}

func TestOnWriteSeesBothParentsWhenMoved(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other, err := f.categories.Create(ctx, &models.Category{Title: "Nails"})
	require.NoError(t, err)
	created := f.createService(t, models.Service{Name: "Haircut", Price: 10})

	var parents []string
	f.services.OnWrite(func(_ context.Context, s *models.Service) {
		parents = append(parents, s.CategoryID)
	})

	_, err = f.services.Update(ctx, created.ID, map[string]any{"category_id": other.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{f.category.ID, other.ID}, parents)
}
