package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/booking-api/internal/audit"
	domain "github.com/BruksfildServices01/booking-api/internal/domain/booking"
	"github.com/BruksfildServices01/booking-api/internal/domain/resource"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/models"
	"github.com/BruksfildServices01/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID         string
	ServiceID      string
	AvailabilityID string
	Notes          string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	services ServiceCache
	timezone string
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		audit:    audit,
		timezone: tz,
	}
}

// WithServiceCache evicts the booked service once its slot is reserved.
func (uc *CreateBooking) WithServiceCache(c ServiceCache) *CreateBooking {
	uc.services = c
	return uc
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if _, err := uuid.Parse(in.ServiceID); err != nil {
		return nil, resource.NewValidationError("service_id", "must be a valid uuid")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if resource.IsNotFound(err) {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if err != nil {
		return nil, err
	}

	if !service.IsAvailable {
		return nil, httperr.ErrBusiness("service_unavailable")
	}

	b := &models.Booking{
		UserID:    in.UserID,
		ServiceID: service.ID,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
	}

	if in.AvailabilityID != "" {
		if _, err := uuid.Parse(in.AvailabilityID); err != nil {
			return nil, resource.NewValidationError("availability_id", "must be a valid uuid")
		}
		if err := uc.checkSlotStart(ctx, in.AvailabilityID); err != nil {
			return nil, err
		}
		slot := in.AvailabilityID
		b.AvailabilityID = &slot
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}
	evictService(ctx, uc.services, b)

	b.Service = service

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}

// checkSlotStart rejects slots that already started in the business timezone.
// Reservation itself happens atomically in the repository.
func (uc *CreateBooking) checkSlotStart(ctx context.Context, availabilityID string) error {
	slot, err := uc.repo.GetAvailability(ctx, availabilityID)
	if resource.IsNotFound(err) {
		return httperr.ErrBusiness("availability_not_found")
	}
	if err != nil {
		return err
	}

	start, err := timezone.SlotTime(slot.Date, slot.StartTime, uc.timezone)
	if err != nil {
		return resource.NewValidationError("availability_id", "references a slot with an invalid date or time")
	}
	if start.Before(timezone.NowIn(uc.timezone)) {
		return httperr.ErrBusiness("slot_in_past")
	}
	return nil
}
