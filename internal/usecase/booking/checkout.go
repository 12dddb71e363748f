package booking

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/booking-api/internal/audit"
	domain "github.com/BruksfildServices01/booking-api/internal/domain/booking"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
)

type Checkout struct {
	repo     domain.Repository
	payments domain.PaymentGateway
	audit    *audit.Dispatcher
}

// NewCheckout accepts a nil gateway; Execute then fails with payments_disabled.
func NewCheckout(
	repo domain.Repository,
	payments domain.PaymentGateway,
	audit *audit.Dispatcher,
) *Checkout {
	return &Checkout{
		repo:     repo,
		payments: payments,
		audit:    audit,
	}
}

func (uc *Checkout) Enabled() bool {
	return uc.payments != nil
}

func (uc *Checkout) Execute(
	ctx context.Context,
	actor Actor,
	bookingID string,
) (*domain.Preference, error) {

	if uc.payments == nil {
		return nil, httperr.ErrBusiness("payments_disabled")
	}

	b, err := loadOwned(ctx, uc.repo, actor, bookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanCheckout(domain.Status(b.Status)); err != nil {
		return nil, err
	}

	if b.Service == nil {
		return nil, fmt.Errorf("booking %s has no service loaded", b.ID)
	}

	pref, err := uc.payments.CreatePreference(ctx, domain.CheckoutItem{
		BookingID:   b.ID,
		Title:       b.Service.Name,
		Description: b.Service.Description,
		UnitPrice:   b.Service.Price,
	})
	if err != nil {
		return nil, err
	}

	b.PaymentPreferenceID = pref.ID
	if err := uc.repo.UpdateBooking(ctx, b, false); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "booking_checkout",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]string{"preference_id": pref.ID},
	})

	return pref, nil
}
