package request

import (
	"strings"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase"
)

// CreateJobRequest is the admin payload for a new job. Money is integer cents.
type CreateJobRequest struct {
	BookingID       string   `json:"bookingId"`
	Rego            string   `json:"rego" binding:"required"`
	CustomerName    string   `json:"customerName"`
	CustomerPhone   string   `json:"customerPhone"`
	CustomerEmail   string   `json:"customerEmail"`
	PickupLocation  string   `json:"pickupLocation"`
	DropoffLocation string   `json:"dropoffLocation"`
	PickupLat       *float64 `json:"pickupLat"`
	PickupLng       *float64 `json:"pickupLng"`
	DropoffLat      *float64 `json:"dropoffLat"`
	DropoffLng      *float64 `json:"dropoffLng"`
	Make            string   `json:"make"`
	Model           string   `json:"model"`
	Color           string   `json:"color"`
	Year            string   `json:"year"`
	VIN             string   `json:"vin"`
	Fuel            string   `json:"fuel"`
	CCRating        string   `json:"cc"`
	Price           int64    `json:"price" binding:"gte=0"`
	Status          string   `json:"status"`
	Notes           string   `json:"notes"`
}

func (r CreateJobRequest) ToEntity() entities.JobRecord {
	return entities.JobRecord{
		BookingID:       strings.TrimSpace(r.BookingID),
		Rego:            r.Rego,
		CustomerName:    strings.TrimSpace(r.CustomerName),
		CustomerPhone:   strings.TrimSpace(r.CustomerPhone),
		CustomerEmail:   strings.TrimSpace(r.CustomerEmail),
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
		VIN:             r.VIN,
		Fuel:            r.Fuel,
		CCRating:        r.CCRating,
		Price:           r.Price,
		Status:          entities.JobStatus(strings.TrimSpace(r.Status)),
		Notes:           r.Notes,
	}
}

type AssignSupplierRequest struct {
	Name    string   `json:"name" binding:"required"`
	Address string   `json:"address"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	Phone   string   `json:"phone"`
	Mobile  string   `json:"mobile"`
	Email   string   `json:"email"`
	Price   int64    `json:"price" binding:"gte=0"`
	Notes   string   `json:"notes"`
	Notify  bool     `json:"notify"`
}

func (r AssignSupplierRequest) ToInput(by string) usecase.AssignSupplierInput {
	return usecase.AssignSupplierInput{
		Supplier: entities.SupplierAssignment{
			Name:    strings.TrimSpace(r.Name),
			Address: r.Address,
			Lat:     r.Lat,
			Lng:     r.Lng,
			Phone:   r.Phone,
			Mobile:  r.Mobile,
			Email:   r.Email,
			Price:   r.Price,
			Notes:   r.Notes,
		},
		Notify: r.Notify,
		By:     by,
	}
}

// CancelJobRequest defaults both notify flags to true when omitted.
type CancelJobRequest struct {
	Reason         string `json:"reason"`
	NotifyCustomer *bool  `json:"notifyCustomer"`
	NotifySupplier *bool  `json:"notifySupplier"`
}

func (r CancelJobRequest) ToInput(by string) usecase.CancelJobInput {
	return usecase.CancelJobInput{
		Reason:         strings.TrimSpace(r.Reason),
		By:             by,
		NotifyCustomer: r.NotifyCustomer == nil || *r.NotifyCustomer,
		NotifySupplier: r.NotifySupplier == nil || *r.NotifySupplier,
	}
}

type AddChargeRequest struct {
	Amount  int64  `json:"amount" binding:"required,gt=0"`
	Reason  string `json:"reason" binding:"required"`
	Collect bool   `json:"collect"`
}

func (r AddChargeRequest) ToInput(by string) usecase.AddChargeInput {
	return usecase.AddChargeInput{Amount: r.Amount, Reason: strings.TrimSpace(r.Reason), By: by, Collect: r.Collect}
}

type MarkChargePaidRequest struct {
	TransactionID string `json:"transactionId"`
}
