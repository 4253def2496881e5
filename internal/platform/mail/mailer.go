// Package mail provides the outbound email transport used for
// assignment notifications.
package mail

import (
	"log/slog"

	"gopkg.in/gomail.v2"

	"github.com/taskmaster/api/internal/config"
)

// Sender delivers a message to an address. Implementations report
// transport failures through the returned error; callers decide whether
// delivery is best-effort.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender implements Sender over SMTP using gomail.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender creates an SMTP-backed Sender from the mail
// configuration.
func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

var _ Sender = (*SMTPSender)(nil)

// Send implements Sender. Each call dials a fresh connection; assignment
// volume does not justify connection pooling.
func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, "TASKMASTER")
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetHeader("X-Mailer", "TASKMASTER")
	m.SetBody("text/plain", body)

	return s.dialer.DialAndSend(m)
}

// NoopSender implements Sender by dropping messages. Used when no SMTP
// transport is configured so assignment notifications still get their
// database rows.
type NoopSender struct {
	logger *slog.Logger
}

// NewNoopSender creates a Sender that logs and discards every message.
func NewNoopSender(log *slog.Logger) *NoopSender {
	if log == nil {
		log = slog.Default()
	}
	return &NoopSender{logger: log}
}

var _ Sender = (*NoopSender)(nil)

// Send implements Sender.
func (s *NoopSender) Send(to, subject, _ string) error {
	s.logger.Debug("mail transport not configured, dropping message",
		slog.String("to", to),
		slog.String("subject", subject))
	return nil
}
