package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Message struct {
	BookingID int64
	From      string
	To        string
	Subject   string
	Body      string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender picks the transport named by cfg.Notification.Transport.
func NewSender(cfg config.Config) (Sender, func(), error) {
	switch strings.ToLower(cfg.Notification.Transport) {
	case "", "log":
		return NewLogSender(), func() {}, nil
	case "smtp":
		return NewSMTPSender(cfg.SMTP), func() {}, nil
	case "amqp":
		s, err := NewAMQPSender(cfg.AMQP)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {
			if cerr := s.Close(); cerr != nil {
				slog.Warn("Failed to close AMQP sender", "error", cerr)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown notification transport %q", cfg.Notification.Transport)
	}
}

type LogSender struct{}

func NewLogSender() *LogSender { return &LogSender{} }

func (LogSender) Send(_ context.Context, msg Message) error {
	slog.Info("Notification delivered to log",
		"booking_id", msg.BookingID,
		"to", msg.To,
		"subject", msg.Subject)
	return nil
}

type SMTPSender struct {
	addr string
	auth smtp.Auth
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPSender{
		addr: net.JoinHostPort(cfg.Host, cfg.Port),
		auth: auth,
		send: smtp.SendMail,
	}
}

func (s *SMTPSender) Send(_ context.Context, msg Message) error {
	if err := s.send(s.addr, s.auth, msg.From, []string{msg.To}, FormatMIME(msg)); err != nil {
		return errs.Wrap(err, "smtp send")
	}
	return nil
}

// FormatMIME renders a plain-text RFC 5322 message. Header values are kept on
// one line and a non-ASCII subject is Q-encoded.
func FormatMIME(msg Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", headerValue(msg.From))
	fmt.Fprintf(&b, "To: %s\r\n", headerValue(msg.To))
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", headerValue(msg.Subject)))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return []byte(b.String())
}

// headerValue drops CR and LF so a value cannot start a new header line.
func headerValue(v string) string {
	return strings.Join(strings.FieldsFunc(v, func(r rune) bool { return r == '\r' || r == '\n' }), " ")
}

type AMQPSender struct {
	conn       *amqp.Connection
	ch         *amqp.Channel
	exchange   string
	routingKey string
}

func NewAMQPSender(cfg config.AMQPConfig) (*AMQPSender, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "declare exchange")
	}
	return &AMQPSender{conn: conn, ch: ch, exchange: cfg.Exchange, routingKey: cfg.RoutingKey}, nil
}

type bookingConfirmedEvent struct {
	BookingID int64     `json:"booking_id"`
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	SentAt    time.Time `json:"sent_at"`
}

func (s *AMQPSender) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(bookingConfirmedEvent{
		BookingID: msg.BookingID,
		To:        msg.To,
		Subject:   msg.Subject,
		Body:      msg.Body,
		SentAt:    time.Now().UTC(),
	})
	if err != nil {
		return errs.Wrap(err, "marshal booking confirmed event")
	}
	err = s.ch.PublishWithContext(ctx, s.exchange, s.routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return errs.Wrap(err, "publish booking confirmed event")
	}
	return nil
}

func (s *AMQPSender) Close() error {
	if s.ch != nil {
		_ = s.ch.Close()
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
