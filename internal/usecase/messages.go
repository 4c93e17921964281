package usecase

import (
	"fmt"
	"html"
	"strings"

	"towdispatch/internal/domain/entities"
)

func supplierJobLink(baseURL, ref string) string {
	return strings.TrimRight(baseURL, "/") + "/supplier/jobs/" + ref
}

func supplierOfferSMS(job entities.JobRecord, link string) string {
	return fmt.Sprintf("New tow %s: %s to %s, %s. Accept or decline: %s",
		job.BookingID, job.PickupLocation, job.DropoffLocation, job.Rego, link)
}

func supplierOfferEmail(job entities.JobRecord, price int64, link string) (string, string) {
	subject := fmt.Sprintf("New tow job %s", job.BookingID)
	body := fmt.Sprintf(`<p>You have been offered tow job <b>%s</b>.</p>
<p>Vehicle: %s %s %s<br>Pickup: %s<br>Drop-off: %s<br>Agreed price: $%s</p>
<p><a href="%s">Accept or decline this job</a></p>`,
		html.EscapeString(job.BookingID),
		html.EscapeString(job.Rego), html.EscapeString(job.Make), html.EscapeString(job.Model),
		html.EscapeString(job.PickupLocation), html.EscapeString(job.DropoffLocation),
		entities.FormatCents(price), link)
	return subject, body
}

func cancellationSMS(job entities.JobRecord) string {
	return fmt.Sprintf("Tow %s for %s has been cancelled.", job.BookingID, job.Rego)
}

func cancellationEmail(job entities.JobRecord) (string, string) {
	subject := fmt.Sprintf("Booking %s cancelled", job.BookingID)
	body := fmt.Sprintf(`<p>Booking <b>%s</b> for vehicle %s has been cancelled.</p>`,
		html.EscapeString(job.BookingID), html.EscapeString(job.Rego))
	if job.CancelReason != "" {
		body += fmt.Sprintf("<p>Reason: %s</p>", html.EscapeString(job.CancelReason))
	}
	return subject, body
}

func invoiceRequestEmail(job entities.JobRecord, link string) (string, string) {
	subject := fmt.Sprintf("Please invoice job %s", job.BookingID)
	body := fmt.Sprintf(`<p>Job <b>%s</b> (%s) is complete.</p>
<p><a href="%s">Submit your invoice</a></p>`,
		html.EscapeString(job.BookingID), html.EscapeString(job.Rego), link)
	return subject, body
}
