package notify

import (
	"bytes"
	"text/template"

	"travel-booking/internal/domain/money"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/shared"
)

const dateLayout = "2006-01-02"

var confirmationBody = template.Must(template.New("booking_confirmed").Parse(`Dear {{.GuestName}},

Thank you for your booking!

Booking Details:
- Listing: {{.Title}}
- Location: {{.Location}}
- Check-in: {{.CheckIn}}
- Check-out: {{.CheckOut}}
- Total Amount: ${{.Total}}
- Booking Reference: #{{.BookingID}}

Your booking has been confirmed. We look forward to hosting you!

Best regards,
Travel Booking Team
`))

type confirmationView struct {
	GuestName string
	Title     string
	Location  string
	CheckIn   string
	CheckOut  string
	Total     string
	BookingID int64
}

// BookingConfirmation renders the guest email for a confirmed booking.
func BookingConfirmation(b *shared.BookingSnapshot, l *shared.ListingSnapshot, from string) (Message, error) {
	var body bytes.Buffer
	err := confirmationBody.Execute(&body, confirmationView{
		GuestName: b.GuestName,
		Title:     l.Title,
		Location:  l.Location,
		CheckIn:   b.StartDate.Format(dateLayout),
		CheckOut:  b.EndDate.Format(dateLayout),
		Total:     money.FromCents(b.TotalPriceCents).String(),
		BookingID: b.ID,
	})
	if err != nil {
		return Message{}, errs.Wrap(err, "render booking confirmation")
	}

	return Message{
		BookingID: b.ID,
		From:      from,
		To:        b.GuestEmail,
		Subject:   "Booking Confirmation - " + l.Title,
		Body:      body.String(),
	}, nil
}
