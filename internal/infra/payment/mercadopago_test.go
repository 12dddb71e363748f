package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/booking-api/internal/domain/booking"
)

type fakePreferences struct {
	req preference.Request
	err error
}

func (f *fakePreferences) Create(_ context.Context, req preference.Request) (*preference.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &preference.Response{ID: "123-abc", InitPoint: "https://mp.example.com/checkout/123-abc"}, nil
}

func TestCreatePreference(t *testing.T) {
	client := &fakePreferences{}
	g := NewMercadoPagoGateway(client)

	pref, err := g.CreatePreference(context.Background(), domain.CheckoutItem{
		BookingID:   "b-1",
		Title:       "Haircut",
		Description: "Classic haircut",
		UnitPrice:   50,
	})
	require.NoError(t, err)

	assert.Equal(t, "123-abc", pref.ID)
	assert.Equal(t, "https://mp.example.com/checkout/123-abc", pref.InitPoint)

	assert.Equal(t, "b-1", client.req.ExternalReference)
	require.Len(t, client.req.Items, 1)
	item := client.req.Items[0]
	assert.Equal(t, "Haircut", item.Title)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, 50.0, item.UnitPrice)
	assert.Equal(t, "BRL", item.CurrencyID)
}

func TestCreatePreferenceError(t *testing.T) {
	g := NewMercadoPagoGateway(&fakePreferences{err: errors.New("unauthorized")})

	_, err := g.CreatePreference(context.Background(), domain.CheckoutItem{BookingID: "b-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}
