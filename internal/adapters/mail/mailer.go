// Package mail implements the notification mailer over SMTP. Sends are
// fire-and-forget from the caller's perspective; a mailer without an SMTP
// host configured logs instead of sending.
package mail

import (
	"log/slog"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports"
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends notification mail through an SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

var _ ports.Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer creates a mailer. An empty host produces a log-only mailer
// so local development works without a relay.
func NewSMTPMailer(host string, port int, username, password, from string, logger *slog.Logger) *SMTPMailer {
	m := &SMTPMailer{from: from, logger: logger}
	if host != "" {
		m.dialer = gomail.NewDialer(host, port, username, password)
	}
	return m
}

// Send delivers a plain-text message.
func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.dialer == nil {
		m.logger.Info("SMTP not configured, logging mail instead",
			slog.String("to", to), slog.String("subject", subject))
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
