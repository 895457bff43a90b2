package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// BookingEmailData holds the fields shown in booking notification emails.
type BookingEmailData struct {
	Email     string
	BookingID string
	VenueName string
	Date      string
	Slots     []string
	Attendees int
	Purpose   string
}

// BookingNotifier tells the requester about a booking change. It is invoked by
// callers after a successful lifecycle operation, never by the lifecycle itself.
type BookingNotifier interface {
	BookingConfirmed(ctx context.Context, b *Booking) error
	BookingUpdated(ctx context.Context, b *Booking) error
	BookingCancelled(ctx context.Context, b *Booking) error
}
