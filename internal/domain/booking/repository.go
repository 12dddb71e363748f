package booking

import (
	"context"

	"github.com/BruksfildServices01/booking-api/internal/models"
)

type Repository interface {
	// -------- Service --------
	GetService(
		ctx context.Context,
		serviceID string,
	) (*models.Service, error)

	// -------- Availability --------
	GetAvailability(
		ctx context.Context,
		availabilityID string,
	) (*models.Availability, error)

	// -------- Booking --------

	// CreateBooking inserts b and, when it references an availability slot,
	// marks the slot booked in the same transaction. It fails with
	// "slot_unavailable" when the slot is already taken or belongs to
	// another service.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		bookingID string,
	) (*models.Booking, error)

	// UpdateBooking saves b; releaseSlot frees its availability slot too.
	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
		releaseSlot bool,
	) error
}

// CheckoutItem is what the payment provider is asked to charge.
type CheckoutItem struct {
	BookingID   string
	Title       string
	Description string
	UnitPrice   float64
}

type Preference struct {
	ID        string `json:"preference_id"`
	InitPoint string `json:"init_point"`
}

type PaymentGateway interface {
	CreatePreference(ctx context.Context, item CheckoutItem) (*Preference, error)
}
