// Package mail delivers outbound application email. The SMTP client wraps
// goemail; a log-only implementation is provided for development and tests
// where no SMTP server is available.
package mail

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/mail"
	"net/url"

	"github.com/dajohi/goemail"
)

// Mailer sends a single HTML email to one recipient.
type Mailer interface {
	Send(to, subject, body string) error
}

// client is an SMTP-backed Mailer.
type client struct {
	smtp        *goemail.SMTP
	mailName    string // From name
	mailAddress string // From email address
}

// Send sends an email to a single recipient address.
func (c *client) Send(to, subject, body string) error {
	msg := goemail.NewHTMLMessage(c.mailAddress, subject, body)
	msg.SetName(c.mailName)
	msg.AddTo(to)
	return c.smtp.Send(msg)
}

// NewClient connects to the given SMTP host and returns a Mailer that
// delivers through it. from must be a parseable address, optionally with a
// display name ("Drift Board <noreply@example.org>").
func NewClient(host string, port int, user, password, from string) (Mailer, error) {
	h := fmt.Sprintf("smtps://%v:%v@%v:%v", user, password, host, port)
	u, err := url.Parse(h)
	if err != nil {
		return nil, fmt.Errorf("parse smtp host: %w", err)
	}

	a, err := mail.ParseAddress(from)
	if err != nil {
		return nil, fmt.Errorf("parse from address: %w", err)
	}

	smtp, err := goemail.NewSMTP(u.String(), &tls.Config{})
	if err != nil {
		return nil, fmt.Errorf("smtp setup: %w", err)
	}

	return &client{
		smtp:        smtp,
		mailName:    a.Name,
		mailAddress: a.Address,
	}, nil
}

// LogMailer writes would-be emails to the log instead of sending them. Used
// when no SMTP host is configured.
type LogMailer struct {
	Logger *slog.Logger
}

// Send logs the email and reports success.
func (m *LogMailer) Send(to, subject, body string) error {
	logger := m.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("mail delivery skipped, no smtp host configured",
		"to", to,
		"subject", subject,
		"body", body,
	)
	return nil
}
