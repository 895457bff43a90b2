package services

import (
	"context"
	"fmt"
	"log/slog"

	"venuebooking/internal/domain"
)

type emailNotifier struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	venues   domain.VenueRegistry
	logger   *slog.Logger
}

// NewEmailNotifier returns a BookingNotifier that mails the booking's contact address
// using the given Mailer and template renderer. Bookings without a contact address are skipped.
func NewEmailNotifier(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, venues domain.VenueRegistry, logger *slog.Logger) domain.BookingNotifier {
	return &emailNotifier{mailer: mailer, renderer: renderer, venues: venues, logger: logger}
}

// BookingConfirmed sends the "booking_confirmed" template.
func (n *emailNotifier) BookingConfirmed(ctx context.Context, b *domain.Booking) error {
	return n.send(ctx, "booking_confirmed", b)
}

// BookingUpdated sends the "booking_updated" template.
func (n *emailNotifier) BookingUpdated(ctx context.Context, b *domain.Booking) error {
	return n.send(ctx, "booking_updated", b)
}

// BookingCancelled sends the "booking_cancelled" template.
func (n *emailNotifier) BookingCancelled(ctx context.Context, b *domain.Booking) error {
	return n.send(ctx, "booking_cancelled", b)
}

func (n *emailNotifier) send(ctx context.Context, templateName string, b *domain.Booking) error {
	if b == nil {
		return fmt.Errorf("booking is nil")
	}
	if b.ContactEmail == "" {
		return nil
	}
	venueName := b.VenueID
	if v, err := n.venues.Get(b.VenueID); err == nil {
		venueName = v.Name
	}
	data := &domain.BookingEmailData{
		Email:     b.ContactEmail,
		BookingID: b.ID,
		VenueName: venueName,
		Date:      b.Date.String(),
		Slots:     b.Slots,
		Attendees: b.Attendees,
		Purpose:   b.Purpose,
	}
	subject, htmlBody, textBody, err := n.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", templateName, err)
	}
	if err := n.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", templateName, err)
	}
	n.logger.InfoContext(ctx, "booking email sent", "template", templateName, "booking_id", b.ID, "to", data.Email)
	return nil
}
