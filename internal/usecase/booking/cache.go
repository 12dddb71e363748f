package booking

import (
	"context"

	"github.com/BruksfildServices01/booking-api/internal/models"
)

// ServiceCache drops the cached copy of a service whose slots changed.
type ServiceCache interface {
	Invalidate(ctx context.Context, id string)
}

func evictService(ctx context.Context, c ServiceCache, b *models.Booking) {
	if c == nil || b.AvailabilityID == nil {
		return
	}
	c.Invalidate(ctx, b.ServiceID)
}
