package entities

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// JobStatus is the dispatch lifecycle of a job.
//
//	pending -> booked | awaiting_supplier | assigned -> in_progress -> completed
//	any non-terminal status -> cancelled
type JobStatus string

const (
	JobStatusPending          JobStatus = "pending"
	JobStatusBooked           JobStatus = "booked"
	JobStatusAwaitingSupplier JobStatus = "awaiting_supplier"
	JobStatusAssigned         JobStatus = "assigned"
	JobStatusInProgress       JobStatus = "in_progress"
	JobStatusCompleted        JobStatus = "completed"
	JobStatusCancelled        JobStatus = "cancelled"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusBooked, JobStatusAwaitingSupplier, JobStatusAssigned,
		JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusCancelled
}

// History actions written by the lifecycle operations.
const (
	ActionCreated          = "created"
	ActionUpdated          = "updated"
	ActionSupplierAssigned = "supplier_assigned"
	ActionSupplierAccepted = "supplier_accepted"
	ActionSupplierDeclined = "supplier_declined"
	ActionSupplierInvoiced = "supplier_invoiced"
	ActionCancelled        = "cancelled"
	ActionChargeAdded      = "charge_added"
	ActionChargePaid       = "charge_paid"
	ActionChargeCancelled  = "charge_cancelled"
	ActionPaymentReceived  = "payment_received"
	ActionInvoiceRequested = "invoice_requested"
)

// BookingIDPrefix marks identifiers minted by GenerateBookingID.
const BookingIDPrefix = "HT-"

// JobTTL is stored as expiresAt on new jobs. Nothing sweeps expired jobs.
const JobTTL = 30 * 24 * time.Hour

// JobRecord is the central dispatch entity.
//
// Storage model (KV hash):
//   - canonical key job:<bookingId>
//   - legacy keys job:<REGO> and booking:<bookingId> are still read
//   - each top-level JSON field is one hash field holding its JSON encoding
//
// Money is integer cents.
type JobRecord struct {
	BookingID string `json:"bookingId"`
	Rego      string `json:"rego"`

	CustomerName  string `json:"customerName,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
	CustomerEmail string `json:"customerEmail,omitempty"`

	PickupLocation  string   `json:"pickupLocation,omitempty"`
	DropoffLocation string   `json:"dropoffLocation,omitempty"`
	PickupLat       *float64 `json:"pickupLat,omitempty"`
	PickupLng       *float64 `json:"pickupLng,omitempty"`
	DropoffLat      *float64 `json:"dropoffLat,omitempty"`
	DropoffLng      *float64 `json:"dropoffLng,omitempty"`
	DistanceMeters  int64    `json:"distanceMeters,omitempty"`

	Make     string `json:"make,omitempty"`
	Model    string `json:"model,omitempty"`
	Color    string `json:"color,omitempty"`
	Year     string `json:"year,omitempty"`
	VIN      string `json:"vin,omitempty"`
	Fuel     string `json:"fuel,omitempty"`
	CCRating string `json:"cc,omitempty"`

	Price         int64     `json:"price"`
	Status        JobStatus `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	PaymentID     string    `json:"paymentId,omitempty"`
	PaymentStatus string    `json:"paymentStatus,omitempty"`

	Supplier           *SupplierAssignment `json:"supplier,omitempty"`
	SupplierRef        string              `json:"supplierRef,omitempty"`
	SupplierInvoiceRef string              `json:"supplierInvoiceRef,omitempty"`
	InvoiceRequestedAt *time.Time          `json:"invoiceRequestedAt,omitempty"`

	CancelledAt  *time.Time `json:"cancelledAt,omitempty"`
	CancelReason string     `json:"cancelReason,omitempty"`
	CancelledBy  string     `json:"cancelledBy,omitempty"`

	AdditionalCharges []AdditionalCharge `json:"additionalCharges"`
	History           []HistoryEntry     `json:"history"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ExpiresAt time.Time `json:"expiresAt"`

	// StorageKey is the key the record was read from; never serialised.
	StorageKey string `json:"-"`
}

// SupplierAssignment is populated once a tow operator is assigned.
type SupplierAssignment struct {
	Name       string    `json:"name"`
	Address    string    `json:"address,omitempty"`
	Lat        *float64  `json:"lat,omitempty"`
	Lng        *float64  `json:"lng,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Mobile     string    `json:"mobile,omitempty"`
	Email      string    `json:"email,omitempty"`
	Price      int64     `json:"price"`
	Notes      string    `json:"notes,omitempty"`
	AssignedAt time.Time `json:"assignedAt"`
	AssignedBy string    `json:"assignedBy,omitempty"`
}

type HistoryEntry struct {
	Action    string            `json:"action"`
	Timestamp time.Time         `json:"timestamp"`
	By        string            `json:"by"`
	Data      map[string]string `json:"data,omitempty"`
}

// AppendHistory is the only way history grows; entries are never removed.
func (j *JobRecord) AppendHistory(action, by string, at time.Time, data map[string]string) {
	if by == "" {
		by = "system"
	}
	j.History = append(j.History, HistoryEntry{Action: action, Timestamp: at, By: by, Data: data})
}

// SupplierName is empty when no supplier is assigned.
func (j JobRecord) SupplierName() string {
	if j.Supplier == nil {
		return ""
	}
	return j.Supplier.Name
}

// NormalizeRego uppercases a plate and strips whitespace.
func NormalizeRego(rego string) string {
	return strings.ToUpper(strings.Join(strings.Fields(rego), ""))
}

// LooksLikeBookingID reports whether id carries the booking id prefix.
func LooksLikeBookingID(id string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(id)), BookingIDPrefix)
}

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateBookingID returns HT-<base36 millis>-<4 random base36>.
func GenerateBookingID(now time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	var suffix [4]byte
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36))))
		if err != nil {
			suffix[i] = base36[now.UnixNano()%36]
			continue
		}
		suffix[i] = base36[n.Int64()]
	}
	return BookingIDPrefix + ts + "-" + string(suffix[:])
}
