package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"venuebooking/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := newSESMailer(client, "bookings@example.com", "Venue Booking", discardLogger())

	require.NoError(t, m.Send(context.Background(), "a@b.com", "Booked", "<p>hi</p>", "hi"))
	require.NotNil(t, client.input)
	assert.Equal(t, "Venue Booking <bookings@example.com>", aws.ToString(client.input.Source))
	assert.Equal(t, []string{"a@b.com"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "Booked", aws.ToString(client.input.Message.Subject.Data))
	assert.Equal(t, "<p>hi</p>", aws.ToString(client.input.Message.Body.Html.Data))
	assert.Equal(t, "hi", aws.ToString(client.input.Message.Body.Text.Data))

	client = &fakeSES{}
	m = newSESMailer(client, "bookings@example.com", "", discardLogger())
	require.NoError(t, m.Send(context.Background(), "a@b.com", "Booked", "", "hi"))
	assert.Equal(t, "bookings@example.com", aws.ToString(client.input.Source))
	assert.Nil(t, client.input.Message.Body.Html)

	m = newSESMailer(&fakeSES{err: errors.New("throttled")}, "bookings@example.com", "", discardLogger())
	require.ErrorContains(t, m.Send(context.Background(), "a@b.com", "s", "", "t"), "throttled")
}

func TestNewMailer(t *testing.T) {
	logger := discardLogger()

	m, err := NewMailer(MailerConfig{Provider: "noop"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)
	require.NoError(t, m.Send(context.Background(), "a@b.com", "s", "h", "t"))

	m, err = NewMailer(MailerConfig{Provider: "carrier-pigeon"}, logger)
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)

	_, err = NewMailer(MailerConfig{Provider: "ses"}, logger)
	require.Error(t, err)

	m, err = NewMailer(MailerConfig{
		Provider:    "ses",
		FromAddress: "bookings@example.com",
		SES:         SESConfig{Region: "eu-west-1", AccessKeyID: "id", SecretAccessKey: "secret"},
	}, logger)
	require.NoError(t, err)
	assert.IsType(t, &sesMailer{}, m)
}

func TestTemplateRenderer(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	data := &domain.BookingEmailData{
		Email:     "a@b.com",
		BookingID: "bk-1",
		VenueName: "Design <Studio>",
		Date:      "2026-10-20",
		Slots:     []string{"09:00-10:00", "10:00-11:00"},
		Attendees: 5,
		Purpose:   "demo",
	}
	for _, name := range []string{"booking_confirmed", "booking_updated", "booking_cancelled"} {
		t.Run(name, func(t *testing.T) {
			subject, html, text, err := r.Render(name, data)
			require.NoError(t, err)
			assert.NotEmpty(t, subject)
			assert.NotContains(t, subject, "\n")
			assert.Contains(t, html, "Design &lt;Studio&gt;")
			assert.Contains(t, text, "2026-10-20")
			assert.Contains(t, text, "bk-1")
		})
	}

	subject, _, text, err := r.Render("booking_confirmed", data)
	require.NoError(t, err)
	assert.Contains(t, subject, "Design <Studio>")
	assert.Contains(t, text, "Slots: 09:00-10:00, 10:00-11:00")

	_, _, _, err = r.Render("no_such_template", data)
	require.Error(t, err)
}
