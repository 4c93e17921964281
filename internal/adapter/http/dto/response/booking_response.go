package response

import (
	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase"
)

type BookingResponse struct {
	Success      bool            `json:"success"`
	BookingID    string          `json:"bookingId"`
	Status       string          `json:"status"`
	Price        int64           `json:"price"`
	PaymentID    string          `json:"paymentId,omitempty"`
	ClientSecret string          `json:"clientSecret,omitempty"`
	Quote        *entities.Quote `json:"quote,omitempty"`
}

func FromBooking(r usecase.BookingResult) BookingResponse {
	return BookingResponse{
		Success:      true,
		BookingID:    r.Job.BookingID,
		Status:       string(r.Job.Status),
		Price:        r.Job.Price,
		PaymentID:    r.Payment.ID,
		ClientSecret: r.Payment.ClientSecret,
		Quote:        r.Quote,
	}
}

// PaymentResponse omits the provider payload.
type PaymentResponse struct {
	Success      bool   `json:"success"`
	PaymentID    string `json:"paymentId"`
	BookingID    string `json:"bookingId"`
	ChargeID     string `json:"chargeId,omitempty"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
	ClientSecret string `json:"clientSecret,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		Success:      true,
		PaymentID:    p.ID,
		BookingID:    p.BookingID,
		ChargeID:     p.ChargeID,
		Amount:       p.Amount,
		Currency:     p.Currency,
		Status:       string(p.Status),
		ClientSecret: p.ClientSecret,
	}
}

type PaymentListResponse struct {
	Success  bool               `json:"success"`
	Payments []entities.Payment `json:"payments"`
}

func FromPayments(p []entities.Payment) PaymentListResponse {
	if p == nil {
		p = []entities.Payment{}
	}
	return PaymentListResponse{Success: true, Payments: p}
}

type WebhookResponse struct {
	Success bool                  `json:"success"`
	Result  usecase.WebhookResult `json:"result"`
}

type QuoteResponse struct {
	Success bool           `json:"success"`
	Quote   entities.Quote `json:"quote"`
}

type VehicleResponse struct {
	Success bool             `json:"success"`
	Vehicle entities.Vehicle `json:"vehicle"`
}

type DistanceResponse struct {
	Success  bool                    `json:"success"`
	Distance entities.DistanceResult `json:"distance"`
}

type TrackVisitResponse struct {
	Success   bool   `json:"success"`
	VisitorID string `json:"visitorId"`
}
