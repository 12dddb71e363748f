package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/booking-api/internal/audit"
	domain "github.com/BruksfildServices01/booking-api/internal/domain/booking"
	"github.com/BruksfildServices01/booking-api/internal/domain/resource"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/models"
	"github.com/BruksfildServices01/booking-api/internal/timezone"
)

// Actor is the authenticated caller of a lifecycle transition.
type Actor struct {
	UserID  string
	IsAdmin bool
}

// Transition moves a booking through its lifecycle.
type Transition struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	services ServiceCache
	timezone string
}

func NewTransition(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *Transition {
	return &Transition{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

// WithServiceCache evicts the booked service when a slot is released.
func (uc *Transition) WithServiceCache(c ServiceCache) *Transition {
	uc.services = c
	return uc
}

// Confirm is reserved for admins.
func (uc *Transition) Confirm(
	ctx context.Context,
	actor Actor,
	bookingID string,
) (*models.Booking, error) {

	if !actor.IsAdmin {
		return nil, httperr.ErrBusiness("forbidden")
	}

	return uc.apply(ctx, actor, bookingID, "booking_confirmed", false, domain.Confirm)
}

// Cancel releases the reserved availability slot.
func (uc *Transition) Cancel(
	ctx context.Context,
	actor Actor,
	bookingID string,
) (*models.Booking, error) {

	now := timezone.NowIn(uc.timezone)
	return uc.apply(ctx, actor, bookingID, "booking_cancelled", true, func(b *models.Booking) error {
		return domain.Cancel(b, now)
	})
}

// Complete is reserved for admins.
func (uc *Transition) Complete(
	ctx context.Context,
	actor Actor,
	bookingID string,
) (*models.Booking, error) {

	if !actor.IsAdmin {
		return nil, httperr.ErrBusiness("forbidden")
	}

	now := timezone.NowIn(uc.timezone)
	return uc.apply(ctx, actor, bookingID, "booking_completed", false, func(b *models.Booking) error {
		return domain.Complete(b, now)
	})
}

func (uc *Transition) apply(
	ctx context.Context,
	actor Actor,
	bookingID string,
	action string,
	releaseSlot bool,
	change func(*models.Booking) error,
) (*models.Booking, error) {

	b, err := loadOwned(ctx, uc.repo, actor, bookingID)
	if err != nil {
		return nil, err
	}

	if err := change(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b, releaseSlot); err != nil {
		return nil, err
	}
	if releaseSlot {
		evictService(ctx, uc.services, b)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   action,
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}

// loadOwned hides bookings of other users behind booking_not_found.
func loadOwned(
	ctx context.Context,
	repo domain.Repository,
	actor Actor,
	bookingID string,
) (*models.Booking, error) {

	if _, err := uuid.Parse(bookingID); err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	b, err := repo.GetBooking(ctx, bookingID)
	if errors.Is(err, resource.ErrNotFound) {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin && b.UserID != actor.UserID {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	return b, nil
}
