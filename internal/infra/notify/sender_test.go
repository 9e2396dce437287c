//go:build unit

package notify

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"travel-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmationMessage() Message {
	return Message{
		BookingID: 7,
		From:      "noreply@example.com",
		To:        "jane@example.com",
		Subject:   "Booking Confirmation - Beach House",
		Body:      "Dear Jane Doe,\nYour booking is confirmed.",
	}
}

func TestFormatMIME(t *testing.T) {
	raw := string(FormatMIME(confirmationMessage()))

	head, body, found := strings.Cut(raw, "\r\n\r\n")
	require.True(t, found)
	assert.Contains(t, head, "From: noreply@example.com\r\n")
	assert.Contains(t, head, "To: jane@example.com\r\n")
	assert.Contains(t, head, "Subject: Booking Confirmation - Beach House\r\n")
	assert.Contains(t, head, "Content-Type: text/plain")
	assert.Equal(t, "Dear Jane Doe,\r\nYour booking is confirmed.", body)
}

func TestFormatMIME_HeaderValues(t *testing.T) {
	t.Run("line breaks cannot add headers", func(t *testing.T) {
		msg := confirmationMessage()
		msg.Subject = "Booking Confirmation - Villa\r\nBcc: someone@example.net\r\n\r\nhello"
		msg.To = "jane@example.com\nCc: other@example.net"

		head, _, found := strings.Cut(string(FormatMIME(msg)), "\r\n\r\n")
		require.True(t, found)
		assert.NotContains(t, head, "\r\nBcc:")
		assert.NotContains(t, head, "\r\nCc:")
		assert.Contains(t, head, "Subject: Booking Confirmation - Villa Bcc: someone@example.net hello\r\n")
		assert.Contains(t, head, "To: jane@example.com Cc: other@example.net\r\n")
	})

	t.Run("non-ASCII subject is encoded", func(t *testing.T) {
		msg := confirmationMessage()
		msg.Subject = "Booking Confirmation - Café"

		raw := string(FormatMIME(msg))
		assert.Contains(t, raw, "Subject: =?utf-8?q?Booking_Confirmation_-_Caf=C3=A9?=\r\n")
	})
}

func TestSMTPSender_Send(t *testing.T) {
	cfg := config.SMTPConfig{Host: "mail.example.com", Port: "2525", Username: "user", Password: "pass"}

	t.Run("hands the message to the relay", func(t *testing.T) {
		s := NewSMTPSender(cfg)
		var gotAddr, gotFrom string
		var gotTo []string
		s.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo = addr, from, to
			assert.NotNil(t, a)
			assert.Contains(t, string(msg), "Subject: Booking Confirmation - Beach House")
			return nil
		}

		require.NoError(t, s.Send(context.Background(), confirmationMessage()))
		assert.Equal(t, "mail.example.com:2525", gotAddr)
		assert.Equal(t, "noreply@example.com", gotFrom)
		assert.Equal(t, []string{"jane@example.com"}, gotTo)
	})

	t.Run("relay error is wrapped", func(t *testing.T) {
		s := NewSMTPSender(config.SMTPConfig{Host: "localhost", Port: "25"})
		relayErr := errors.New("550 mailbox unavailable")
		s.send = func(string, smtp.Auth, string, []string, []byte) error { return relayErr }

		err := s.Send(context.Background(), confirmationMessage())
		assert.ErrorIs(t, err, relayErr)
		assert.Nil(t, s.auth)
	})
}

func TestNewSender(t *testing.T) {
	tests := []struct {
		transport string
		wantErr   bool
		check     func(t *testing.T, s Sender)
	}{
		{"", false, func(t *testing.T, s Sender) { assert.IsType(t, &LogSender{}, s) }},
		{"LOG", false, func(t *testing.T, s Sender) { assert.IsType(t, &LogSender{}, s) }},
		{"smtp", false, func(t *testing.T, s Sender) { assert.IsType(t, &SMTPSender{}, s) }},
		{"pigeon", true, nil},
	}
	for _, tt := range tests {
		t.Run("transport "+tt.transport, func(t *testing.T) {
			cfg := config.NewTestConfig()
			cfg.Notification.Transport = tt.transport

			s, cleanup, err := NewSender(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer cleanup()
			tt.check(t, s)
		})
	}
}
