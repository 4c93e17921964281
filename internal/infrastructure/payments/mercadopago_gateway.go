package payments

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrPaymentNotFound = errors.New("payment not found")

// DefaultPaymentMethod is the checkout the payment object is created for.
const DefaultPaymentMethod = "account_money"

type MercadoPagoGateway struct {
	client          payment.Client
	notificationURL string
	paymentMethod   string

	mockMode bool
	mu       sync.Mutex
	mocked   map[string]entities.ProviderPayment
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the gateway. With PAYMENT_GATEWAY_MOCK or
// MERCADOPAGO_MOCK set it keeps payments in memory and approves them.
func NewMercadoPagoGateway(accessToken, notificationURL string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return NewMockGateway(), nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		client:          payment.NewClient(cfg),
		notificationURL: notificationURL,
		paymentMethod:   DefaultPaymentMethod,
	}, nil
}

func NewMockGateway() *MercadoPagoGateway {
	return &MercadoPagoGateway{mockMode: true, mocked: map[string]entities.ProviderPayment{}}
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.ProviderPayment, error) {
	if g != nil && g.mockMode {
		return g.mockCreate(req)
	}
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start external_reference=%s amount=%d", req.ExternalReference, req.Amount)

	resp, err := g.client.Create(ctx, toSDKRequest(req, g.paymentMethod, g.notificationURL))
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed external_reference=%s err=%v", req.ExternalReference, err)
		return entities.ProviderPayment{}, errors.Wrap(err, "mercado pago create")
	}

	pp, err := fromSDKResponse(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return entities.ProviderPayment{}, err
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%s provider_status=%s", pp.ID, pp.Status)
	return pp, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (entities.ProviderPayment, error) {
	if g != nil && g.mockMode {
		g.mu.Lock()
		defer g.mu.Unlock()
		pp, ok := g.mocked[providerPaymentID]
		if !ok {
			return entities.ProviderPayment{}, ErrPaymentNotFound
		}
		return pp, nil
	}
	if g == nil || g.client == nil {
		return entities.ProviderPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(providerPaymentID))
	if err != nil {
		return entities.ProviderPayment{}, errors.Wrapf(ErrPaymentNotFound, "payment id %q", providerPaymentID)
	}
	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed provider_payment_id=%s err=%v", providerPaymentID, err)
		return entities.ProviderPayment{}, errors.Wrap(err, "mercado pago get")
	}
	return fromSDKResponse(resp)
}

func toSDKRequest(req entities.PaymentRequest, method, notificationURL string) payment.Request {
	metadata := make(map[string]any, len(req.Metadata)+1)
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	metadata["currency"] = req.Currency

	out := payment.Request{
		TransactionAmount: entities.CentsToAmount(req.Amount),
		Description:       req.Description,
		ExternalReference: req.ExternalReference,
		PaymentMethodID:   method,
		NotificationURL:   notificationURL,
		Metadata:          metadata,
	}
	if req.ReceiverEmail != "" {
		out.Payer = &payment.PayerRequest{Email: req.ReceiverEmail}
	}
	return out
}

// sdkPaymentView picks the fields we read back out of a payment response.
type sdkPaymentView struct {
	ID                 int64  `json:"id"`
	Status             string `json:"status"`
	ExternalReference  string `json:"external_reference"`
	PointOfInteraction struct {
		TransactionData struct {
			TicketURL string `json:"ticket_url"`
			QRCode    string `json:"qr_code"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

func fromSDKResponse(resp *payment.Response) (entities.ProviderPayment, error) {
	if resp == nil {
		return entities.ProviderPayment{}, errors.New("empty payment response")
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return entities.ProviderPayment{}, err
	}
	return parseProviderPayment(raw)
}

func parseProviderPayment(raw json.RawMessage) (entities.ProviderPayment, error) {
	var v sdkPaymentView
	if err := json.Unmarshal(raw, &v); err != nil {
		return entities.ProviderPayment{}, errors.Wrap(err, "decode payment response")
	}
	secret := v.PointOfInteraction.TransactionData.TicketURL
	if secret == "" {
		secret = v.PointOfInteraction.TransactionData.QRCode
	}
	return entities.ProviderPayment{
		ID:                strconv.FormatInt(v.ID, 10),
		Status:            v.Status,
		ExternalReference: v.ExternalReference,
		ClientSecret:      secret,
		Raw:               raw,
	}, nil
}

func (g *MercadoPagoGateway) mockCreate(req entities.PaymentRequest) (entities.ProviderPayment, error) {
	now := time.Now().UTC()
	id := now.UnixNano()
	raw, err := json.Marshal(map[string]any{
		"id":                 id,
		"status":             "approved",
		"status_detail":      "accredited",
		"external_reference": req.ExternalReference,
		"transaction_amount": entities.CentsToAmount(req.Amount),
		"currency_id":        req.Currency,
		"description":        req.Description,
		"date_created":       now.Format(time.RFC3339Nano),
		"date_approved":      now.Format(time.RFC3339Nano),
		"point_of_interaction": map[string]any{
			"transaction_data": map[string]any{"ticket_url": "https://mock.mercadopago.local/checkout/" + strconv.FormatInt(id, 10)},
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] mock response marshal failed err=%v", err)
		return entities.ProviderPayment{}, err
	}
	pp, err := parseProviderPayment(raw)
	if err != nil {
		return entities.ProviderPayment{}, err
	}

	g.mu.Lock()
	g.mocked[pp.ID] = pp
	g.mu.Unlock()
	log.Printf("[payment][gateway] mock create success provider_payment_id=%s external_reference=%s", pp.ID, req.ExternalReference)
	return pp, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
