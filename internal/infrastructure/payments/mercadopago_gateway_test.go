package payments

import (
	"context"
	"testing"

	"towdispatch/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestMockGateway_CreateThenGet(t *testing.T) {
	g := NewMockGateway()
	ctx := context.Background()

	pp, err := g.CreatePayment(ctx, entities.PaymentRequest{Amount: 15050, Currency: "NZD", ExternalReference: "HT-1:c-1"})
	require.NoError(t, err)
	require.NotEmpty(t, pp.ID)
	require.True(t, pp.Approved())
	require.Equal(t, "HT-1:c-1", pp.ExternalReference)
	require.Contains(t, pp.ClientSecret, pp.ID)

	got, err := g.GetPayment(ctx, pp.ID)
	require.NoError(t, err)
	require.Equal(t, pp.ID, got.ID)

	_, err = g.GetPayment(ctx, "404")
	require.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("mock mode from env", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		g, err := NewMercadoPagoGateway("", "")
		require.NoError(t, err)
		require.True(t, g.mockMode)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		_, err := NewMercadoPagoGateway("", "")
		require.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
	})

	t.Run("nil gateway", func(t *testing.T) {
		var g *MercadoPagoGateway
		_, err := g.CreatePayment(context.Background(), entities.PaymentRequest{})
		require.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
	})
}

func TestToSDKRequest(t *testing.T) {
	req := toSDKRequest(entities.PaymentRequest{
		Amount:            8550,
		Currency:          "NZD",
		Description:       "Tow booking HT-1",
		ReceiverEmail:     "jo@example.com",
		ExternalReference: "HT-1",
		Metadata:          map[string]string{"booking_id": "HT-1"},
	}, DefaultPaymentMethod, "https://tow.example/v1/payments/webhook")

	require.InDelta(t, 85.50, req.TransactionAmount, 0.0001)
	require.Equal(t, "HT-1", req.ExternalReference)
	require.NotNil(t, req.Payer)
	require.Equal(t, "jo@example.com", req.Payer.Email)
	require.Equal(t, "HT-1", req.Metadata["booking_id"])
	require.Equal(t, "NZD", req.Metadata["currency"])
}

func TestParseProviderPayment(t *testing.T) {
	pp, err := parseProviderPayment([]byte(`{"id":123,"status":"pending","external_reference":"HT-9","point_of_interaction":{"transaction_data":{"qr_code":"qr"}}}`))
	require.NoError(t, err)
	require.Equal(t, "123", pp.ID)
	require.Equal(t, "qr", pp.ClientSecret)
	require.False(t, pp.Approved())
}
