package request

import (
	"strings"

	"towdispatch/internal/usecase"
)

// BookingRequest is the public booking form. Price is optional; when absent
// the booking is quoted from the locations.
type BookingRequest struct {
	CustomerName    string   `json:"customerName" binding:"required"`
	CustomerPhone   string   `json:"customerPhone" binding:"required"`
	CustomerEmail   string   `json:"customerEmail" binding:"required,email"`
	Rego            string   `json:"rego" binding:"required"`
	PickupLocation  string   `json:"pickupLocation" binding:"required"`
	DropoffLocation string   `json:"dropoffLocation" binding:"required"`
	PickupLat       *float64 `json:"pickupLat"`
	PickupLng       *float64 `json:"pickupLng"`
	DropoffLat      *float64 `json:"dropoffLat"`
	DropoffLng      *float64 `json:"dropoffLng"`
	Make            string   `json:"make"`
	Model           string   `json:"model"`
	Color           string   `json:"color"`
	Year            string   `json:"year"`
	Notes           string   `json:"notes"`
	Price           int64    `json:"price" binding:"gte=0"`
}

func (r BookingRequest) ToInput() usecase.BookingInput {
	return usecase.BookingInput{
		CustomerName:    strings.TrimSpace(r.CustomerName),
		CustomerPhone:   strings.TrimSpace(r.CustomerPhone),
		CustomerEmail:   strings.TrimSpace(r.CustomerEmail),
		Rego:            r.Rego,
		PickupLocation:  strings.TrimSpace(r.PickupLocation),
		DropoffLocation: strings.TrimSpace(r.DropoffLocation),
		PickupLat:       r.PickupLat,
		PickupLng:       r.PickupLng,
		DropoffLat:      r.DropoffLat,
		DropoffLng:      r.DropoffLng,
		Make:            r.Make,
		Model:           r.Model,
		Color:           r.Color,
		Year:            r.Year,
		Notes:           r.Notes,
		Price:           r.Price,
	}
}

type QuoteRequest struct {
	Pickup  string `json:"pickup" binding:"required"`
	Dropoff string `json:"dropoff" binding:"required"`
}

type DistanceRequest struct {
	Locations []string `json:"locations" binding:"required,min=2"`
}

// PaymentWebhookRequest accepts the Mercado Pago notification body
// ({"type":"payment","data":{"id":"123"}}).
type PaymentWebhookRequest struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// ResolvePaymentID falls back to the data.id and id query parameters the
// provider also sends.
func (r PaymentWebhookRequest) ResolvePaymentID(query func(string) string) string {
	if v := strings.TrimSpace(r.Data.ID); v != "" {
		return v
	}
	if v := strings.TrimSpace(query("data.id")); v != "" {
		return v
	}
	return strings.TrimSpace(query("id"))
}

// IsPaymentEvent treats an empty type as a payment event.
func (r PaymentWebhookRequest) IsPaymentEvent(query func(string) string) bool {
	t := r.Type
	if t == "" {
		t = query("type")
	}
	if t == "" {
		t = query("topic")
	}
	return t == "" || t == "payment"
}

type VisitRequest struct {
	VisitorID string `json:"visitorId"`
	Page      string `json:"page"`
	Source    string `json:"utm_source"`
	Medium    string `json:"utm_medium"`
	Campaign  string `json:"utm_campaign"`
	Referrer  string `json:"referrer"`
	Device    string `json:"device"`
}

func (r VisitRequest) ToInput(userAgent string) usecase.VisitInput {
	return usecase.VisitInput{
		VisitorID: strings.TrimSpace(r.VisitorID),
		Page:      r.Page,
		Source:    r.Source,
		Medium:    r.Medium,
		Campaign:  r.Campaign,
		Referrer:  r.Referrer,
		Device:    r.Device,
		UserAgent: userAgent,
	}
}
