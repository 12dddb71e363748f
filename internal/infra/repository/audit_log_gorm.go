package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/booking-api/internal/domain/resource"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

// AuditLogGormRepository reads the audit trail; writes go through audit.Logger.
type AuditLogGormRepository struct {
	db *gorm.DB
}

func NewAuditLogGormRepository(db *gorm.DB) *AuditLogGormRepository {
	return &AuditLogGormRepository{db: db}
}

// List returns one page of entries and the size of the filtered set.
func (r *AuditLogGormRepository) List(
	ctx context.Context,
	c resource.Criteria,
) ([]models.AuditLog, int64, error) {

	q, err := where(r.db.WithContext(ctx).Model(&models.AuditLog{}), c.Where)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var logs []models.AuditLog
	if err := q.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: c.Desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: c.Desc}).
		Offset(c.Skip).
		Limit(c.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, translateError(err)
	}

	return logs, total, nil
}
