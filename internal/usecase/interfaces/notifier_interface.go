package interfaces

import "context"

// INotifier sends customer and supplier notifications. SMS is delivered
// through an email-to-SMS gateway, so both calls share one transport.
type INotifier interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
	SendSMS(ctx context.Context, mobile, body string) error
}
