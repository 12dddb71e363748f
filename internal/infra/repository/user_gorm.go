package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-api/internal/domain/resource"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

// UserGormRepository adds the lookups auth needs to the generic store.
type UserGormRepository struct {
	*ResourceGormRepository[models.User]
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{
		ResourceGormRepository: NewResourceGormRepository[models.User](db, UserRelations),
	}
}

func (r *UserGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

var _ resource.Store[models.User] = (*UserGormRepository)(nil)
