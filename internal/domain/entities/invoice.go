package entities

import (
	"github.com/shopspring/decimal"
)

// gstFraction is the GST share of a GST-inclusive amount (15/115).
var gstFraction = decimal.NewFromInt(3).Div(decimal.NewFromInt(23))

// Invoice is derived on demand from a job: the base price plus every paid
// additional charge. Nothing about it is stored.
type Invoice struct {
	BookingID      string             `json:"bookingId"`
	Currency       string             `json:"currency"`
	BasePrice      int64              `json:"basePrice"`
	PaidCharges    int64              `json:"paidCharges"`
	PendingCharges int64              `json:"pendingCharges"`
	Total          int64              `json:"total"`
	GST            int64              `json:"gst"`
	TotalDisplay   string             `json:"totalDisplay"`
	Lines          []AdditionalCharge `json:"lines"`
}

func BuildInvoice(job JobRecord, currency string) Invoice {
	paid := job.PaidChargesTotal()
	total := job.Price + paid
	lines := make([]AdditionalCharge, 0, len(job.AdditionalCharges))
	for _, c := range job.AdditionalCharges {
		if c.Status == ChargeStatusPaid {
			lines = append(lines, c)
		}
	}
	return Invoice{
		BookingID:      job.BookingID,
		Currency:       currency,
		BasePrice:      job.Price,
		PaidCharges:    paid,
		PendingCharges: job.PendingChargesTotal(),
		Total:          total,
		GST:            GSTComponent(total),
		TotalDisplay:   FormatCents(total),
		Lines:          lines,
	}
}

// GSTComponent returns the GST included in a GST-inclusive amount, rounded
// to the nearest cent.
func GSTComponent(cents int64) int64 {
	return decimal.NewFromInt(cents).Mul(gstFraction).Round(0).IntPart()
}

// FormatCents renders 12345 as "123.45".
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// CentsToAmount converts cents to the major-unit float payment providers expect.
func CentsToAmount(cents int64) float64 {
	return decimal.New(cents, -2).InexactFloat64()
}

// ParseAmount converts a major-unit string such as "85.50" into cents.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.Shift(2).Round(0).IntPart(), nil
}
