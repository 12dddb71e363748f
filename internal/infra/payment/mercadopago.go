package payment

import (
	"context"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	domain "github.com/BruksfildServices01/booking-api/internal/domain/booking"
)

// PreferenceCreator is the part of preference.Client the gateway needs.
type PreferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type MercadoPagoGateway struct {
	client   PreferenceCreator
	currency string
}

func NewMercadoPagoClient(accessToken string) (preference.Client, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return preference.NewClient(cfg), nil
}

func NewMercadoPagoGateway(client PreferenceCreator) *MercadoPagoGateway {
	return &MercadoPagoGateway{client: client, currency: "BRL"}
}

func (g *MercadoPagoGateway) CreatePreference(
	ctx context.Context,
	item domain.CheckoutItem,
) (*domain.Preference, error) {

	res, err := g.client.Create(ctx, preference.Request{
		ExternalReference: item.BookingID,
		Items: []preference.ItemRequest{
			{
				ID:          item.BookingID,
				Title:       item.Title,
				Description: item.Description,
				Quantity:    1,
				UnitPrice:   item.UnitPrice,
				CurrencyID:  g.currency,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	return &domain.Preference{
		ID:        res.ID,
		InitPoint: res.InitPoint,
	}, nil
}

// Compile-time check
var _ domain.PaymentGateway = (*MercadoPagoGateway)(nil)
