package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/booking-api/internal/domain/resource"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

// Relations lists the gorm associations of a resource.
type Relations struct {
	// Preload is loaded on list and single-row reads.
	Preload []string
	// Nested associations are written together with the parent on create.
	// Every other association is omitted from the insert.
	Nested []string
	// Created is loaded on the row returned by Create.
	Created []string
}

type ResourceGormRepository[T resource.Entity] struct {
	db        *gorm.DB
	relations Relations
}

func NewResourceGormRepository[T resource.Entity](
	db *gorm.DB,
	relations Relations,
) *ResourceGormRepository[T] {
	return &ResourceGormRepository[T]{db: db, relations: relations}
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *ResourceGormRepository[T]) FindMany(
	ctx context.Context,
	c resource.Criteria,
) ([]T, error) {

	q, err := where(r.db.WithContext(ctx).Model(new(T)), c.Where)
	if err != nil {
		return nil, err
	}

	q = preload(q, r.relations.Preload)

	if c.OrderBy != "" {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: c.OrderBy}, Desc: c.Desc})
	}

	var rows []T
	if err := q.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
		Offset(c.Skip).
		Limit(c.Limit).
		Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}

	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

func (r *ResourceGormRepository[T]) Count(
	ctx context.Context,
	w sq.Sqlizer,
) (int64, error) {

	q, err := where(r.db.WithContext(ctx).Model(new(T)), w)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, translateError(err)
	}
	return total, nil
}

func (r *ResourceGormRepository[T]) FindByID(
	ctx context.Context,
	id string,
) (*T, error) {
	return r.findByID(r.db.WithContext(ctx), id, r.relations.Preload)
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *ResourceGormRepository[T]) Create(
	ctx context.Context,
	row *T,
) (*T, error) {

	db := r.db.WithContext(ctx)

	omit, err := r.omitOnCreate(db)
	if err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if len(omit) > 0 {
			tx = tx.Omit(omit...)
		}
		return tx.Create(row).Error
	})
	if err != nil {
		return nil, translateError(err)
	}

	return r.findByID(db, (*row).PrimaryKey(), r.relations.Created)
}

func (r *ResourceGormRepository[T]) Update(
	ctx context.Context,
	id string,
	fields map[string]any,
) (*T, error) {

	var updated *T

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row T
		if err := tx.First(&row, "id = ?", id).Error; err != nil {
			return err
		}

		if len(fields) > 0 {
			if err := tx.Model(&row).Updates(fields).Error; err != nil {
				return err
			}
		}

		fresh, err := r.findByID(tx, id, nil)
		if err != nil {
			return err
		}
		updated = fresh
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}

	return updated, nil
}

func (r *ResourceGormRepository[T]) Delete(
	ctx context.Context,
	id string,
) (*T, error) {

	var row T

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&row).Error
	})
	if err != nil {
		return nil, translateError(err)
	}

	return &row, nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (r *ResourceGormRepository[T]) findByID(
	db *gorm.DB,
	id string,
	relations []string,
) (*T, error) {

	var row T
	if err := preload(db, relations).First(&row, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// omitOnCreate lists every association of T that is not nested, so a
// client payload can never upsert related rows it does not own.
func (r *ResourceGormRepository[T]) omitOnCreate(db *gorm.DB) ([]string, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(new(T)); err != nil {
		return nil, err
	}

	nested := make(map[string]struct{}, len(r.relations.Nested))
	for _, n := range r.relations.Nested {
		nested[n] = struct{}{}
	}

	var omit []string
	for name := range stmt.Schema.Relationships.Relations {
		if _, ok := nested[name]; !ok {
			omit = append(omit, name)
		}
	}
	return omit, nil
}

func where(q *gorm.DB, w sq.Sqlizer) (*gorm.DB, error) {
	if w == nil {
		return q, nil
	}

	sql, args, err := w.ToSql()
	if err != nil {
		return nil, err
	}
	return q.Where(sql, args...), nil
}

func preload(q *gorm.DB, relations []string) *gorm.DB {
	for _, rel := range relations {
		q = q.Preload(rel)
	}
	return q
}

// Compile-time check
var _ resource.Store[models.Service] = (*ResourceGormRepository[models.Service])(nil)
