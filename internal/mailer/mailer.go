// Package mailer implements outbound mail delivery over SMTP.
// It is the transport behind every notification the service sends:
// the welcome message and the verification / password-reset one-time codes.
package mailer

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends plain-text messages through a configured SMTP relay.
// A fresh dialer is used per send; the SMTP session is not kept open
// between calls.
type SMTPMailer struct {
	cfg    config.Mail
	logger *logger.Logger
}

// NewSMTPMailer constructs an [SMTPMailer] from the mail configuration.
func NewSMTPMailer(cfg config.Mail, logger *logger.Logger) *SMTPMailer {
	logger.Debug().Str("host", cfg.Host).Str("from", cfg.From).Msg("creating smtp mailer")
	return &SMTPMailer{
		cfg:    cfg,
		logger: logger,
	}
}

// Send delivers a plain-text message to a single recipient.
//
// The context is consulted before dialing; gomail itself does not support
// cancellation mid-send, so an already-cancelled context is the only early
// exit.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("mail send cancelled: %w", err)
	}

	log := logger.FromContext(ctx)

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.From, m.cfg.SenderName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Err(err).Str("to", to).Str("subject", subject).Msg("error sending mail")
		return fmt.Errorf("error sending mail: %w", err)
	}

	log.Debug().Str("to", to).Str("subject", subject).Msg("mail sent")
	return nil
}
