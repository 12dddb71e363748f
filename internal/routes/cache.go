package routes

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-api/internal/models"
	ucResource "github.com/BruksfildServices01/booking-api/internal/usecase/resource"
)

// evictParents keeps the cached categories and services in step with the
// rows preloaded into them. A write to a child row drops its parent's key.
func evictParents(
	db *gorm.DB,
	log zerolog.Logger,
	categories *ucResource.Service[models.Category],
	services *ucResource.Service[models.Service],
	availability *ucResource.Service[models.Availability],
	bookings *ucResource.Service[models.Booking],
	reviews *ucResource.Service[models.Review],
) {
	services.OnWrite(func(ctx context.Context, s *models.Service) {
		categories.Invalidate(ctx, s.CategoryID)
	})

	// Services embed their category.
	categories.OnWrite(func(ctx context.Context, c *models.Category) {
		var ids []string
		if err := db.WithContext(ctx).
			Model(&models.Service{}).
			Where("category_id = ?", c.ID).
			Pluck("id", &ids).Error; err != nil {
			log.Warn().Err(err).Str("category_id", c.ID).Msg("cache invalidation failed")
			return
		}
		for _, id := range ids {
			services.Invalidate(ctx, id)
		}
	})

	availability.OnWrite(func(ctx context.Context, a *models.Availability) {
		services.Invalidate(ctx, a.ServiceID)
	})
	bookings.OnWrite(func(ctx context.Context, b *models.Booking) {
		services.Invalidate(ctx, b.ServiceID)
	})
	reviews.OnWrite(func(ctx context.Context, r *models.Review) {
		services.Invalidate(ctx, r.ServiceID)
	})
}
