package booking

import "github.com/BruksfildServices01/booking-api/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ===============================
// Validations
// ===============================

// CanConfirm: only a pending booking can be confirmed.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel: pending and confirmed bookings can be cancelled.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete: only a confirmed booking can be completed.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCheckout: payment is only requested for live bookings.
func CanCheckout(current Status) error {
	return CanCancel(current)
}

// HoldsSlot reports whether a booking in this status keeps its
// availability slot reserved. Cancelling is the only transition that
// releases it.
func HoldsSlot(current Status) bool {
	return current != StatusCancelled
}

func InitialStatus() Status {
	return StatusPending
}
