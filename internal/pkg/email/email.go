package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// ErrNoRecipients is returned when a message has neither To nor Bcc addresses
var ErrNoRecipients = errors.New("email has no recipients")

// Message is a single HTML email
type Message struct {
	To      []string
	Bcc     []string
	Subject string
	HTML    string
}

// Mailer sends email messages
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
}

// SMTPMailer implements Mailer over gomail
type SMTPMailer struct {
	config SMTPConfig
	dialer *gomail.Dialer
	logger zerolog.Logger
}

// NewSMTPMailer creates a new SMTP mailer. Without credentials it only logs
// outgoing mail, which keeps local development free of an SMTP server.
func NewSMTPMailer(config SMTPConfig, logger zerolog.Logger) *SMTPMailer {
	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if config.UseTLS {
		d.TLSConfig = &tls.Config{ServerName: config.Host}
	}
	return &SMTPMailer{
		config: config,
		dialer: d,
		logger: logger,
	}
}

// From returns the sender address
func (m *SMTPMailer) From() string {
	return m.config.FromEmail
}

// Send delivers msg, honouring ctx cancellation before dialing
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 && len(msg.Bcc) == 0 {
		return ErrNoRecipients
	}

	if m.config.Username == "" || m.config.Password == "" {
		m.logger.Warn().
			Strs("to", msg.To).
			Int("bccCount", len(msg.Bcc)).
			Str("subject", msg.Subject).
			Msg("SMTP credentials not configured - email not sent")
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", m.config.FromEmail, m.config.FromName)
	to := msg.To
	if len(to) == 0 {
		// BCC-only fan-out is addressed to the sender
		to = []string{m.config.FromEmail}
	}
	gm.SetHeader("To", to...)
	if len(msg.Bcc) > 0 {
		gm.SetHeader("Bcc", msg.Bcc...)
	}
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTML)

	if err := m.dialer.DialAndSend(gm); err != nil {
		m.logger.Error().Err(err).
			Str("server", fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)).
			Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Debug().Str("subject", msg.Subject).Int("recipients", len(to)+len(msg.Bcc)).Msg("Email sent")
	return nil
}
